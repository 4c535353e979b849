package service

import (
	"context"
	"testing"

	"career-service/internal/models"
)

func TestReplaceStepsValidation(t *testing.T) {
	svc := NewRoadmapService(nil, nil)
	ctx := context.Background()

	step := func(grade int, title string) models.RoadmapStepRequest {
		return models.RoadmapStepRequest{Grade: grade, Title: title}
	}

	tests := []struct {
		name  string
		major models.Major
		reqs  []models.RoadmapStepRequest
	}{
		{"unknown major", "Astrology", []models.RoadmapStepRequest{step(1, "Explore")}},
		{"grade too low", models.MajorComputerScience, []models.RoadmapStepRequest{step(0, "Explore")}},
		{"grade too high", models.MajorComputerScience, []models.RoadmapStepRequest{step(6, "Explore")}},
		{"duplicate grade", models.MajorComputerScience, []models.RoadmapStepRequest{step(2, "One"), step(2, "Two")}},
		{"empty title", models.MajorComputerScience, []models.RoadmapStepRequest{step(1, "  ")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.ReplaceSteps(ctx, tt.major, tt.reqs); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}
