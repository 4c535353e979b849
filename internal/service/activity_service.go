package service

import (
	"career-service/internal/event"
	"career-service/internal/matching"
	"career-service/internal/models"
	"career-service/internal/repository"
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type ActivityService struct {
	ActivityRepo *repository.ActivityRepository
	UserRepo     *repository.UserRepository
	Publisher    event.Publisher
}

func NewActivityService(activityRepo *repository.ActivityRepository, userRepo *repository.UserRepository, publisher event.Publisher) *ActivityService {
	return &ActivityService{
		ActivityRepo: activityRepo,
		UserRepo:     userRepo,
		Publisher:    publisher,
	}
}

// Dashboard returns the personalized feed for one user: activities
// targeting the user's major, optionally filtered and searched, each
// annotated with the match rate against the user's competencies.
func (s *ActivityService) Dashboard(ctx context.Context, userID string, category models.ActivityCategory, search, sortParam string) ([]models.ActivityWithMatchRate, *models.UserProfile, error) {
	profile, err := s.UserRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if !profile.OnboardingComplete() {
		return nil, profile, fmt.Errorf("onboarding incomplete")
	}

	activities, err := s.ActivityRepo.FindForMajor(ctx, profile.Major, category)
	if err != nil {
		return nil, nil, err
	}

	annotated := matching.SelectActivities(activities, profile.Competencies, matching.SelectOptions{
		Major:      profile.Major,
		Category:   category,
		SearchTerm: search,
		Sort:       matching.ParseSortOrder(sortParam),
	}, time.Now())

	return annotated, profile, nil
}

func (s *ActivityService) GetByID(ctx context.Context, rawID, userID string) (*models.ActivityWithMatchRate, error) {
	id, err := bson.ObjectIDFromHex(rawID)
	if err != nil {
		return nil, fmt.Errorf("invalid activity id: %w", err)
	}

	activity, err := s.ActivityRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var competencies []string
	if userID != "" {
		profile, err := s.UserRepo.FindByUserID(ctx, userID)
		if err == nil {
			competencies = profile.Competencies
		}
	}

	annotated := matching.Annotate(*activity, competencies, time.Now())
	return &annotated, nil
}

// Catalog lists activities for admin management: optional category
// filter at the store, then an in-memory search over title, company,
// content and required competencies.
func (s *ActivityService) Catalog(ctx context.Context, category models.ActivityCategory, search string) ([]models.Activity, error) {
	activities, err := s.ActivityRepo.FindCatalog(ctx, category)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(strings.TrimSpace(search))
	if term == "" {
		return activities, nil
	}

	filtered := make([]models.Activity, 0, len(activities))
	for _, a := range activities {
		if catalogMatches(a, term) {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}

func catalogMatches(a models.Activity, term string) bool {
	if strings.Contains(strings.ToLower(a.Title), term) {
		return true
	}
	if strings.Contains(strings.ToLower(a.CompanyName), term) {
		return true
	}
	if strings.Contains(strings.ToLower(a.Content), term) {
		return true
	}
	for _, c := range a.RequiredCompetencies {
		if strings.Contains(strings.ToLower(c), term) {
			return true
		}
	}
	return false
}

func (s *ActivityService) Create(ctx context.Context, req *models.ActivityDTO) (*models.Activity, error) {
	activity, err := activityFromDTO(req)
	if err != nil {
		return nil, err
	}

	created, err := s.ActivityRepo.New(ctx, activity)
	if err != nil {
		return nil, err
	}

	s.publishActivityEvent(models.EventTypeActivityCreated, created.ID.Hex())
	return created, nil
}

func (s *ActivityService) Update(ctx context.Context, rawID string, req *models.ActivityDTO) (*models.Activity, error) {
	id, err := bson.ObjectIDFromHex(rawID)
	if err != nil {
		return nil, fmt.Errorf("invalid activity id: %w", err)
	}

	existing, err := s.ActivityRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	activity, err := activityFromDTO(req)
	if err != nil {
		return nil, err
	}
	activity.ID = existing.ID
	activity.CreatedAt = existing.CreatedAt

	updated, err := s.ActivityRepo.Update(ctx, id, activity)
	if err != nil {
		return nil, err
	}

	s.publishActivityEvent(models.EventTypeActivityUpdated, rawID)
	return updated, nil
}

func (s *ActivityService) Delete(ctx context.Context, rawID string) error {
	id, err := bson.ObjectIDFromHex(rawID)
	if err != nil {
		return fmt.Errorf("invalid activity id: %w", err)
	}

	if err := s.ActivityRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.publishActivityEvent(models.EventTypeActivityDeleted, rawID)
	return nil
}

// activityFromDTO validates and converts the admin payload. Required
// competencies keep their original casing for display; matching
// lower-cases on the fly.
func activityFromDTO(req *models.ActivityDTO) (*models.Activity, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if !req.Category.Valid() {
		return nil, fmt.Errorf("unknown category: %s", req.Category)
	}
	if len(req.TargetMajors) == 0 {
		return nil, fmt.Errorf("at least one target major is required")
	}
	for _, m := range req.TargetMajors {
		if !models.Major(m).Valid() {
			return nil, fmt.Errorf("unknown major: %s", m)
		}
	}

	deadline, err := time.ParseInLocation("2006-01-02", req.ApplicationDeadline, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid application deadline: %w", err)
	}

	return &models.Activity{
		Title:                title,
		Content:              req.Content,
		CompanyName:          req.CompanyName,
		EmploymentType:       req.EmploymentType,
		Location:             req.Location,
		Category:             req.Category,
		RequiredCompetencies: req.RequiredCompetencies,
		TargetMajors:         req.TargetMajors,
		ApplicationDeadline:  deadline,
		ApplyURL:             req.ApplyURL,
	}, nil
}

func (s *ActivityService) publishActivityEvent(eventType models.EventType, activityID string) {
	if err := s.Publisher.PublishCareerEvent(&models.CareerEvent{
		EventType:  eventType,
		ActivityID: activityID,
	}); err != nil {
		log.Printf("Warning: failed to publish activity event: %v", err)
	}
}
