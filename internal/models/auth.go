package models

import (
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type UserAuth struct {
	ID           bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Username     string        `json:"username" bson:"username"`
	Email        string        `json:"email" bson:"email"`
	PasswordHash string        `json:"-" bson:"passwordHash"`
	IsActive     bool          `json:"isActive" bson:"isActive"`
	CreatedAt    int           `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int           `json:"updatedAt" bson:"updatedAt"`
}

type Claims struct {
	jwt.RegisteredClaims
	Id          string   `json:"id"`
	UserID      string   `json:"userId"`
	Username    string   `json:"username"`
	Email       string   `json:"email"`
	Permissions []string `json:"permissions"`
}

type Session struct {
	UserID         string `json:"userId"`
	Username       string `json:"username"`
	Token          string `json:"token"`
	CreatedAt      int    `json:"createdAt"`
	LastActivityAt int    `json:"lastActivityAt"`
	IsValid        bool   `json:"isValid"`
}
