package service

import (
	"career-service/internal/config"
	"career-service/internal/models"
	"career-service/internal/repository"
	"context"
	"errors"
	"time"

	redis_v9 "github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "career-service-session-"

type SessionService struct {
	RedisRepo *repository.RedisRepository
}

func NewSessionService(redisRepo *repository.RedisRepository) *SessionService {
	return &SessionService{RedisRepo: redisRepo}
}

func (s *SessionService) SaveSession(ctx context.Context, username, token, userID string) error {
	session := &models.Session{
		Username:  username,
		UserID:    userID,
		Token:     token,
		CreatedAt: int(time.Now().Unix()),
	}
	return s.RedisRepo.SaveStructCached(ctx, sessionKeyPrefix+username, session, config.ServiceConfig.Auth.SessionTTL)
}

// GetSession returns nil without error when no session is cached.
func (s *SessionService) GetSession(ctx context.Context, username string) (*models.Session, error) {
	var session models.Session
	if err := s.RedisRepo.GetStructCached(ctx, sessionKeyPrefix+username, &session); err != nil {
		if errors.Is(err, redis_v9.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (s *SessionService) DeleteSession(ctx context.Context, username string) error {
	return s.RedisRepo.Delete(ctx, sessionKeyPrefix+username)
}
