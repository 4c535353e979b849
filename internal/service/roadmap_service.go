package service

import (
	"career-service/internal/models"
	"career-service/internal/repository"
	"context"
	"fmt"
	"sort"
	"strings"
)

type RoadmapService struct {
	RoadmapRepo *repository.RoadmapRepository
	UserRepo    *repository.UserRepository
}

func NewRoadmapService(roadmapRepo *repository.RoadmapRepository, userRepo *repository.UserRepository) *RoadmapService {
	return &RoadmapService{
		RoadmapRepo: roadmapRepo,
		UserRepo:    userRepo,
	}
}

// ForUser returns the roadmap for the user's major together with the
// step matching the user's grade, when one exists.
func (s *RoadmapService) ForUser(ctx context.Context, userID string) (*models.Roadmap, *models.RoadmapStep, error) {
	profile, err := s.UserRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if !profile.OnboardingComplete() {
		return nil, nil, fmt.Errorf("onboarding incomplete")
	}

	roadmap, err := s.RoadmapRepo.FindByMajor(ctx, profile.Major)
	if err != nil {
		return nil, nil, err
	}

	return roadmap, roadmap.StepForGrade(profile.Grade), nil
}

func (s *RoadmapService) ForMajor(ctx context.Context, major models.Major) (*models.Roadmap, error) {
	if !major.Valid() {
		return nil, fmt.Errorf("unknown major: %s", major)
	}
	return s.RoadmapRepo.FindByMajor(ctx, major)
}

// ReplaceSteps validates and stores the full step list for a major.
// Steps are kept sorted by grade; duplicate grades are rejected.
func (s *RoadmapService) ReplaceSteps(ctx context.Context, major models.Major, reqs []models.RoadmapStepRequest) (*models.Roadmap, error) {
	if !major.Valid() {
		return nil, fmt.Errorf("unknown major: %s", major)
	}

	seen := make(map[int]bool, len(reqs))
	steps := make([]models.RoadmapStep, 0, len(reqs))
	for _, req := range reqs {
		if !models.ValidGrade(req.Grade) {
			return nil, fmt.Errorf("grade must be between %d and %d", models.MinGrade, models.MaxGrade)
		}
		if seen[req.Grade] {
			return nil, fmt.Errorf("duplicate step for grade %d", req.Grade)
		}
		seen[req.Grade] = true

		if strings.TrimSpace(req.Title) == "" {
			return nil, fmt.Errorf("step title is required")
		}

		steps = append(steps, models.RoadmapStep{
			Grade:                   req.Grade,
			Title:                   strings.TrimSpace(req.Title),
			Description:             req.Description,
			Recommendations:         req.Recommendations,
			RecommendedCompetencies: req.RecommendedCompetencies,
		})
	}

	sort.Slice(steps, func(i, j int) bool {
		return steps[i].Grade < steps[j].Grade
	})

	return s.RoadmapRepo.UpsertSteps(ctx, major, steps)
}

func (s *RoadmapService) Delete(ctx context.Context, major models.Major) error {
	if !major.Valid() {
		return fmt.Errorf("unknown major: %s", major)
	}
	return s.RoadmapRepo.Delete(ctx, major)
}
