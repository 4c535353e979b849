package handlers

import (
	"career-service/internal/middleware"
	"career-service/internal/models"
	"career-service/internal/service"
	"context"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type ActivityHandler struct {
	activityService *service.ActivityService
}

func NewActivityHandler(activityService *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
	}
}

func (h *ActivityHandler) RegisterRoutes(app *fiber.App) {
	dashboardGroup := app.Group("/protected/dashboard")
	dashboardGroup.Get("/activities", h.Dashboard)
	dashboardGroup.Get("/activities/:id", h.GetActivity)

	adminGroup := app.Group("/protected/admin/activities", middleware.AdminRequired())
	adminGroup.Get("/", h.Catalog)
	adminGroup.Post("/", h.CreateActivity)
	adminGroup.Put("/:id", h.UpdateActivity)
	adminGroup.Delete("/:id", h.DeleteActivity)
}

// Dashboard serves the personalized feed. Query params: category
// (hiring|internship|contest|certification|all), search, sort
// (default|matchRateDesc).
func (h *ActivityHandler) Dashboard(c fiber.Ctx) error {
	userID := c.Get("X-User-ID")
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in request context",
		})
	}

	category := models.ActivityCategory(c.Query("category", string(models.CategoryAll)))
	if category != models.CategoryAll && !category.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown category",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	activities, profile, err := h.activityService.Dashboard(ctx, userID, category, c.Query("search"), c.Query("sort"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Profile not found",
			})
		}
		if profile != nil && !profile.OnboardingComplete() {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Onboarding incomplete",
			})
		}
		log.Printf("Failed to build dashboard for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load dashboard",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": fiber.Map{
			"activities": activities,
			"totalCount": len(activities),
			"major":      profile.Major,
		},
	})
}

func (h *ActivityHandler) GetActivity(c fiber.Ctx) error {
	activityID := c.Params("id")
	if activityID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Activity ID is required",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	activity, err := h.activityService.GetByID(ctx, activityID, c.Get("X-User-ID"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Activity not found",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": activity,
	})
}

// ADMIN ENDPOINTS

func (h *ActivityHandler) Catalog(c fiber.Ctx) error {
	category := models.ActivityCategory(c.Query("category", string(models.CategoryAll)))
	if category != models.CategoryAll && !category.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown category",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	activities, err := h.activityService.Catalog(ctx, category, c.Query("search"))
	if err != nil {
		log.Printf("Failed to list activity catalog: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list activities",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": fiber.Map{
			"activities": activities,
			"totalCount": len(activities),
		},
	})
}

func (h *ActivityHandler) CreateActivity(c fiber.Ctx) error {
	var req models.ActivityDTO
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	activity, err := h.activityService.Create(ctx, &req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Activity created",
		"data":    activity,
	})
}

func (h *ActivityHandler) UpdateActivity(c fiber.Ctx) error {
	activityID := c.Params("id")
	if activityID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Activity ID is required",
		})
	}

	var req models.ActivityDTO
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	activity, err := h.activityService.Update(ctx, activityID, &req)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Activity not found",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Activity updated",
		"data":    activity,
	})
}

func (h *ActivityHandler) DeleteActivity(c fiber.Ctx) error {
	activityID := c.Params("id")
	if activityID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Activity ID is required",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := h.activityService.Delete(ctx, activityID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Activity not found",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Activity deleted",
	})
}
