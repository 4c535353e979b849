package handlers

import (
	"career-service/internal/middleware"
	"career-service/internal/models"
	"career-service/internal/service"
	"context"
	"errors"
	"log"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type RoadmapHandler struct {
	roadmapService *service.RoadmapService
}

func NewRoadmapHandler(roadmapService *service.RoadmapService) *RoadmapHandler {
	return &RoadmapHandler{
		roadmapService: roadmapService,
	}
}

func (h *RoadmapHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/protected/dashboard/roadmap", h.MyRoadmap)

	adminGroup := app.Group("/protected/admin/roadmaps", middleware.AdminRequired())
	adminGroup.Get("/:major", h.GetRoadmap)
	adminGroup.Put("/:major", h.ReplaceRoadmap)
	adminGroup.Delete("/:major", h.DeleteRoadmap)
}

// MyRoadmap returns the roadmap for the caller's major plus the step
// for the caller's grade.
func (h *RoadmapHandler) MyRoadmap(c fiber.Ctx) error {
	userID := c.Get("X-User-ID")
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in request context",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	roadmap, currentStep, err := h.roadmapService.ForUser(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Roadmap not found",
			})
		}
		log.Printf("Failed to load roadmap for user %s: %v", userID, err)
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": fiber.Map{
			"roadmap":     roadmap,
			"currentStep": currentStep,
		},
	})
}

// ADMIN ENDPOINTS

// majorParam decodes the :major path segment. Major names contain a
// slash, so clients must URL-encode it.
func majorParam(c fiber.Ctx) models.Major {
	raw := c.Params("major")
	if decoded, err := url.PathUnescape(raw); err == nil {
		raw = decoded
	}
	return models.Major(raw)
}

func (h *RoadmapHandler) GetRoadmap(c fiber.Ctx) error {
	major := majorParam(c)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	roadmap, err := h.roadmapService.ForMajor(ctx, major)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Roadmap not found",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": roadmap,
	})
}

func (h *RoadmapHandler) ReplaceRoadmap(c fiber.Ctx) error {
	major := majorParam(c)

	var req struct {
		Steps []models.RoadmapStepRequest `json:"steps"`
	}
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	roadmap, err := h.roadmapService.ReplaceSteps(ctx, major, req.Steps)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Roadmap saved",
		"data":    roadmap,
	})
}

func (h *RoadmapHandler) DeleteRoadmap(c fiber.Ctx) error {
	major := majorParam(c)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := h.roadmapService.Delete(ctx, major); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Roadmap not found",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Roadmap deleted",
	})
}
