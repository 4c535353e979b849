package handlers

import (
	"career-service/internal/models"
	"career-service/internal/service"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Counter for total login attempts
	loginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "career_login_attempts_total",
			Help: "Total number of login attempts",
		},
		[]string{"status"},
	)

	// Counter for registrations
	registrationAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "career_registration_attempts_total",
			Help: "Total number of registration attempts",
		},
		[]string{"status"},
	)

	// Histogram for login duration
	loginDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "career_login_duration_seconds",
			Help:    "Time spent processing login requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"status"},
	)
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func (h *AuthHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/health", h.HealthCheck)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	authGroup := app.Group("/public/auth")

	authGroup.Post("/register", h.Register)
	authGroup.Post("/login", h.Login)

	app.Post("/protected/auth/logout", h.Logout)
}

func (h *AuthHandler) HealthCheck(c fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "healthy",
		"service": "career-service",
	})
}

func (h *AuthHandler) Register(c fiber.Ctx) error {
	var registerRequest models.RegisterRequest

	if err := c.Bind().Body(&registerRequest); err != nil {
		registrationAttempts.WithLabelValues("failure").Inc()
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if registerRequest.Username == "" || registerRequest.Email == "" || registerRequest.Password == "" {
		registrationAttempts.WithLabelValues("failure").Inc()
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Username, email, and password are required",
		})
	}

	profile, err := h.authService.Register(c.Context(), &registerRequest)
	if err != nil {
		registrationAttempts.WithLabelValues("failure").Inc()
		status := fiber.StatusBadRequest
		if errors.Is(err, service.ErrUsernameTaken) || errors.Is(err, service.ErrEmailTaken) {
			status = fiber.StatusConflict
		}
		return c.Status(status).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	registrationAttempts.WithLabelValues("success").Inc()

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User Created Successfully",
		"data": fiber.Map{
			"userId": profile.UserID,
		},
	})
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	start := time.Now()

	var loginRequest models.LoginRequest

	if err := c.Bind().Body(&loginRequest); err != nil {
		loginAttempts.WithLabelValues("failure").Inc()
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if loginRequest.Username == "" || loginRequest.Password == "" {
		loginAttempts.WithLabelValues("failure").Inc()
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Username and password are required",
		})
	}

	token, profile, err := h.authService.Login(c.Context(), &loginRequest)
	if err != nil {
		loginAttempts.WithLabelValues("failure").Inc()
		loginDuration.WithLabelValues("failure").Observe(time.Since(start).Seconds())

		if errors.Is(err, service.ErrAccountLocked) {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Account temporarily locked, try again later",
			})
		}
		log.Printf("Error login with username: %s : %s", loginRequest.Username, err)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
		})
	}

	loginAttempts.WithLabelValues("success").Inc()
	loginDuration.WithLabelValues("success").Observe(time.Since(start).Seconds())

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Login successful",
		"data": fiber.Map{
			"token":              token,
			"profile":            profile,
			"onboardingComplete": profile.OnboardingComplete(),
		},
	})
}

func (h *AuthHandler) Logout(c fiber.Ctx) error {
	username := c.Get("X-User-Name")
	if username == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Not authenticated",
		})
	}

	if err := h.authService.Logout(c.Context(), username); err != nil {
		log.Printf("Error logging out %s: %v", username, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to log out",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Logged out",
	})
}
