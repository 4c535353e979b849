package service

import (
	"career-service/internal/config"
	"career-service/internal/event"
	"career-service/internal/middleware"
	"career-service/internal/models"
	"career-service/internal/repository"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountLocked      = errors.New("account temporarily locked after too many failed logins")
)

const failedLoginKeyPrefix = "career-service-failed-login-"

type AuthService struct {
	AuthRepo       *repository.UserAuthRepository
	UserRepo       *repository.UserRepository
	RedisRepo      *repository.RedisRepository
	JWTService     *JWTService
	SessionService *SessionService
	Publisher      event.Publisher
}

func NewAuthService(
	authRepo *repository.UserAuthRepository,
	userRepo *repository.UserRepository,
	redisRepo *repository.RedisRepository,
	jwtService *JWTService,
	sessionService *SessionService,
	publisher event.Publisher,
) *AuthService {
	return &AuthService{
		AuthRepo:       authRepo,
		UserRepo:       userRepo,
		RedisRepo:      redisRepo,
		JWTService:     jwtService,
		SessionService: sessionService,
		Publisher:      publisher,
	}
}

// Register creates the credential record and a blank profile. The
// profile starts without grade or major so the first login routes to
// onboarding.
func (s *AuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.UserProfile, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if username == "" || email == "" || req.Password == "" {
		return nil, fmt.Errorf("username, email and password are required")
	}
	if len(req.Password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}

	existing, err := s.AuthRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("error checking username: %w", err)
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	existing, err = s.AuthRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error checking email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	authUser, err := s.AuthRepo.NewUser(ctx, &models.UserAuth{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		IsActive:     true,
	})
	if err != nil {
		return nil, err
	}

	profile, err := s.UserRepo.New(ctx, &models.UserProfile{
		UserID: authUser.ID.Hex(),
		Name:   req.Name,
		Email:  email,
		Role:   models.RoleUser,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating profile: %w", err)
	}

	if err := s.Publisher.PublishCareerEvent(&models.CareerEvent{
		EventType: models.EventTypeUserRegistered,
		UserID:    profile.UserID,
		Payload: map[string]any{
			"username": username,
			"email":    email,
		},
	}); err != nil {
		log.Printf("Warning: failed to publish registration event: %v", err)
	}

	return profile, nil
}

// Login verifies credentials, enforces the failed-login lockout and
// returns a signed token plus the profile.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (string, *models.UserProfile, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return "", nil, ErrInvalidCredentials
	}

	lockKey := failedLoginKeyPrefix + username
	failures := s.RedisRepo.GetInt(ctx, lockKey)
	if failures >= int64(config.ServiceConfig.Auth.MaxFailedLogins) {
		return "", nil, ErrAccountLocked
	}

	authUser, err := s.AuthRepo.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, fmt.Errorf("error finding user: %w", err)
	}
	if authUser == nil || !authUser.IsActive {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(authUser.PasswordHash), []byte(req.Password)); err != nil {
		if _, incErr := s.RedisRepo.Incr(ctx, lockKey, config.ServiceConfig.Auth.LoginLockDuration); incErr != nil {
			log.Printf("error recording failed login for %s: %v", username, incErr)
		}
		return "", nil, ErrInvalidCredentials
	}

	if err := s.RedisRepo.Delete(ctx, lockKey); err != nil {
		log.Printf("error clearing failed logins for %s: %v", username, err)
	}

	userID := authUser.ID.Hex()
	profile, err := s.UserRepo.FindByUserID(ctx, userID)
	if err != nil {
		return "", nil, fmt.Errorf("error loading profile: %w", err)
	}

	// Reuse a live session instead of minting a second token.
	session, err := s.SessionService.GetSession(ctx, authUser.Username)
	if err != nil {
		log.Printf("error reading session for %s: %v", authUser.Username, err)
	}
	if token, ok := reusableSessionToken(session, userID); ok {
		return token, profile, nil
	}

	permissions := []string{middleware.ReadCareerPermission, middleware.WriteCareerPermission}
	if profile.IsAdmin() {
		permissions = append(permissions, middleware.AdminPermission)
	}

	token, err := s.JWTService.GenerateNewToken(permissions, authUser.Username, authUser.Email, userID)
	if err != nil {
		return "", nil, err
	}

	if err := s.SessionService.SaveSession(ctx, authUser.Username, token, userID); err != nil {
		log.Printf("error saving session for %s: %v", authUser.Username, err)
	}

	return token, profile, nil
}

// reusableSessionToken decides whether a cached session can stand in
// for a fresh token. The session must exist, carry a token and belong
// to the same user id.
func reusableSessionToken(session *models.Session, userID string) (string, bool) {
	if session == nil || session.Token == "" {
		return "", false
	}
	if session.UserID != userID {
		return "", false
	}
	return session.Token, true
}

func (s *AuthService) Logout(ctx context.Context, username string) error {
	return s.SessionService.DeleteSession(ctx, username)
}
