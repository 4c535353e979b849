package main

import (
	"career-service/internal/config"
	"career-service/internal/database/mongo"
	"career-service/internal/event"
	"career-service/internal/handlers"
	"career-service/internal/middleware"
	"career-service/internal/repository"
	"career-service/internal/service"
	"career-service/pkg/discovery"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"

	redisdb "career-service/internal/database/redis"
)

func setupLogging() (*os.File, error) {
	logDir := filepath.Join("/evolvia", "log", "career_service")
	err := os.MkdirAll(logDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create log directory: %v", err)
	}

	currentTime := time.Now()
	logFileName := fmt.Sprintf("log_%s.log", currentTime.Format("2006-01-02"))
	logFile := filepath.Join(logDir, logFileName)

	file, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %v", err)
	}

	log.SetOutput(file)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	return file, nil
}

func main() {
	logFile, err := setupLogging()
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	cfg := config.ServiceConfig

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"*"},
	}))

	// Initialize repositories
	userRepo := repository.NewUserRepository(mongo.Mongo_Database)
	authRepo := repository.NewUserAuthRepository(mongo.Mongo_Database)
	activityRepo := repository.NewActivityRepository(mongo.Mongo_Database)
	roadmapRepo := repository.NewRoadmapRepository(mongo.Mongo_Database)
	portfolioRepo := repository.NewPortfolioRepository(mongo.Mongo_Database)
	redisRepo := repository.NewRedisRepository(redisdb.Redis_Client)

	// Create database indexes
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	for name, create := range map[string]func(context.Context) error{
		"users":      userRepo.CreateIndexes,
		"users_auth": authRepo.CreateIndexes,
		"activities": activityRepo.CreateIndexes,
		"portfolios": portfolioRepo.CreateIndexes,
	} {
		if err := create(ctx); err != nil {
			log.Printf("Warning: Failed to create %s indexes: %v", name, err)
		}
	}
	cancel()

	eventPublisher, err := event.NewEventPublisher(cfg.RabbitMQ.URI, cfg.RabbitMQ.Exchange)
	if err != nil {
		log.Printf("Warning: Failed to initialize event publisher: %v", err)
		eventPublisher, _ = event.NewEventPublisher("", cfg.RabbitMQ.Exchange)
	}

	eventConsumer, err := event.NewEventConsumer(cfg.RabbitMQ.URI, cfg.RabbitMQ.QueueName, userRepo)
	if err != nil {
		log.Printf("Warning: Failed to initialize event consumer: %v", err)
	} else {
		if err := eventConsumer.Start(); err != nil {
			log.Printf("Warning: Failed to start event consumer: %v", err)
			eventConsumer.Close()
		} else {
			log.Println("Successfully started event consumer")
			defer eventConsumer.Close()
		}
	}

	// Initialize services
	jwtService := service.NewJWTService()
	sessionService := service.NewSessionService(redisRepo)
	authService := service.NewAuthService(authRepo, userRepo, redisRepo, jwtService, sessionService, eventPublisher)
	userService := service.NewUserService(userRepo, activityRepo, portfolioRepo, eventPublisher)
	activityService := service.NewActivityService(activityRepo, userRepo, eventPublisher)
	roadmapService := service.NewRoadmapService(roadmapRepo, userRepo)

	// Everything under /protected requires a valid token
	app.Use("/protected", middleware.AuthRequired(jwtService))

	// Initialize and register handlers
	handlers.NewAuthHandler(authService).RegisterRoutes(app)
	handlers.NewUserHandler(userService).RegisterRoutes(app)
	handlers.NewActivityHandler(activityService).RegisterRoutes(app)
	handlers.NewRoadmapHandler(roadmapService).RegisterRoutes(app)

	shutdownChan := make(chan os.Signal, 1)
	doneChan := make(chan bool, 1)

	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := app.Listen(fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
		doneChan <- true
	}()

	<-shutdownChan
	log.Println("Shutting down server...")

	ctx, cancel = context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("Error shutting down HTTP server: %v", err)
	}

	// Close event publisher
	if eventPublisher != nil {
		if err := eventPublisher.Close(); err != nil {
			log.Printf("Error closing event publisher: %v", err)
		}
	}

	// Disconnect from MongoDB
	mongo.DisconnectMongo()

	// Deregister from service discovery
	if discovery.ServiceDiscovery != nil {
		if err := discovery.ServiceDiscovery.Deregister(); err != nil {
			log.Printf("Error deregistering from service discovery: %v", err)
		}
	}

	<-doneChan
	log.Println("Server shutdown complete")
}
