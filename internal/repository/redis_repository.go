package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	redis_v9 "github.com/redis/go-redis/v9"
)

type RedisRepository struct {
	client *redis_v9.Client
}

func NewRedisRepository(client *redis_v9.Client) *RedisRepository {
	return &RedisRepository{client: client}
}

func (r *RedisRepository) SaveStructCached(ctx context.Context, key string, model any, ttl time.Duration) error {
	val, err := json.Marshal(model)
	if err != nil {
		return fmt.Errorf("error marshaling struct for cache: %w", err)
	}
	if err := r.client.Set(ctx, key, val, ttl).Err(); err != nil {
		return fmt.Errorf("error saving struct to cache: %w", err)
	}
	return nil
}

func (r *RedisRepository) GetStructCached(ctx context.Context, key string, model any) error {
	encoded, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		return fmt.Errorf("error get struct in cache: %w", err)
	}
	return json.Unmarshal(encoded, model)
}

func (r *RedisRepository) SaveInt(ctx context.Context, key string, value int64, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("error saving int value to cache: %w", err)
	}
	return nil
}

// GetInt returns 0 when the key is absent or unreadable.
func (r *RedisRepository) GetInt(ctx context.Context, key string) int64 {
	value, err := r.client.Get(ctx, key).Int64()
	if err != nil {
		if err != redis_v9.Nil {
			log.Printf("error get int value in cache: %s", err)
		}
		return 0
	}
	return value
}

func (r *RedisRepository) Incr(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	value, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("error incrementing cache key: %w", err)
	}
	if value == 1 {
		if err := r.client.Expire(ctx, key, ttl).Err(); err != nil {
			log.Printf("error setting ttl on key %s: %s", key, err)
		}
	}
	return value, nil
}

func (r *RedisRepository) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}
