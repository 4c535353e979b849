package service

import (
	"career-service/internal/event"
	"career-service/internal/matching"
	"career-service/internal/models"
	"career-service/internal/repository"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type UserService struct {
	UserRepo      *repository.UserRepository
	ActivityRepo  *repository.ActivityRepository
	PortfolioRepo *repository.PortfolioRepository
	Publisher     event.Publisher
}

func NewUserService(userRepo *repository.UserRepository, activityRepo *repository.ActivityRepository, portfolioRepo *repository.PortfolioRepository, publisher event.Publisher) *UserService {
	return &UserService{
		UserRepo:      userRepo,
		ActivityRepo:  activityRepo,
		PortfolioRepo: portfolioRepo,
		Publisher:     publisher,
	}
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	return s.UserRepo.FindByUserID(ctx, userID)
}

// CompleteOnboarding records grade and major. Both are required before
// the dashboard becomes available.
func (s *UserService) CompleteOnboarding(ctx context.Context, userID string, req *models.OnboardingRequest) (*models.UserProfile, error) {
	if !models.ValidGrade(req.Grade) {
		return nil, fmt.Errorf("grade must be between %d and %d", models.MinGrade, models.MaxGrade)
	}
	major := models.Major(req.Major)
	if !major.Valid() {
		return nil, fmt.Errorf("unknown major: %s", req.Major)
	}

	profile, err := s.UserRepo.MergeFields(ctx, userID, bson.M{
		"grade": req.Grade,
		"major": major,
	})
	if err != nil {
		return nil, err
	}

	s.publishProfileUpdated(userID, "onboarding")
	return profile, nil
}

// UpdateCompetencies replaces the competency list. Entries are trimmed,
// lower-cased and deduplicated before storage.
func (s *UserService) UpdateCompetencies(ctx context.Context, userID string, competencies []string) (*models.UserProfile, error) {
	normalized := matching.NormalizeCompetencies(competencies)

	profile, err := s.UserRepo.SetCompetencies(ctx, userID, normalized)
	if err != nil {
		return nil, err
	}

	s.publishProfileUpdated(userID, "competencies")
	return profile, nil
}

func (s *UserService) AddMyActivity(ctx context.Context, userID string, req *models.AddMyActivityRequest) (*models.UserProfile, error) {
	if !req.Type.Valid() {
		return nil, fmt.Errorf("unknown activity type: %s", req.Type)
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("title is required")
	}

	entry := models.MyActivity{
		ID:          bson.NewObjectID().Hex(),
		Type:        req.Type,
		Title:       strings.TrimSpace(req.Title),
		Date:        req.Date,
		Description: req.Description,
	}

	profile, err := s.UserRepo.PushCompletedActivity(ctx, userID, entry)
	if err != nil {
		return nil, err
	}

	s.publishProfileUpdated(userID, "myActivities")
	return profile, nil
}

func (s *UserService) RemoveMyActivity(ctx context.Context, userID, activityID string) (*models.UserProfile, error) {
	profile, err := s.UserRepo.PullCompletedActivity(ctx, userID, activityID)
	if err != nil {
		return nil, err
	}

	s.publishProfileUpdated(userID, "myActivities")
	return profile, nil
}

// ToggleLike flips the liked state for one activity. The new list is
// computed locally first; if persisting fails the local change is
// discarded and the result reports the prior state with Persisted
// false instead of an error.
func (s *UserService) ToggleLike(ctx context.Context, userID, activityID string) (*models.ToggleLikeResult, error) {
	profile, err := s.UserRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	wasLiked := profile.HasLiked(activityID)

	var next []string
	if wasLiked {
		next = make([]string, 0, len(profile.LikedActivityIDs))
		for _, id := range profile.LikedActivityIDs {
			if id != activityID {
				next = append(next, id)
			}
		}
	} else {
		next = append(append([]string{}, profile.LikedActivityIDs...), activityID)
	}

	if err := s.UserRepo.SetLikedActivityIDs(ctx, userID, next); err != nil {
		log.Printf("like toggle rollback for user %s activity %s: %v", userID, activityID, err)
		return &models.ToggleLikeResult{
			ActivityID: activityID,
			Liked:      wasLiked,
			Persisted:  false,
		}, nil
	}

	eventType := models.EventTypeActivityLiked
	if wasLiked {
		eventType = models.EventTypeActivityUnliked
	}
	if err := s.Publisher.PublishCareerEvent(&models.CareerEvent{
		EventType:  eventType,
		UserID:     userID,
		ActivityID: activityID,
	}); err != nil {
		log.Printf("Warning: failed to publish like event: %v", err)
	}

	return &models.ToggleLikeResult{
		ActivityID: activityID,
		Liked:      !wasLiked,
		Persisted:  true,
	}, nil
}

// LikedActivities resolves the user's liked ids to catalog entries
// annotated with the current match rate. Stale ids that no longer
// resolve are silently dropped.
func (s *UserService) LikedActivities(ctx context.Context, userID string) ([]models.ActivityWithMatchRate, error) {
	profile, err := s.UserRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]bson.ObjectID, 0, len(profile.LikedActivityIDs))
	for _, raw := range profile.LikedActivityIDs {
		id, err := bson.ObjectIDFromHex(raw)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	activities, err := s.ActivityRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	return matching.AnnotateAll(activities, profile.Competencies, time.Now()), nil
}

// GetPortfolio returns the user's portfolio, or a blank one prefilled
// with the profile name when none has been saved yet.
func (s *UserService) GetPortfolio(ctx context.Context, userID string) (*models.Portfolio, error) {
	portfolio, err := s.PortfolioRepo.FindByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, err
		}
		profile, err := s.UserRepo.FindByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		return defaultPortfolio(profile), nil
	}
	return portfolio, nil
}

func (s *UserService) SavePortfolio(ctx context.Context, userID string, req *models.PortfolioRequest) (*models.Portfolio, error) {
	portfolio, err := s.PortfolioRepo.Upsert(ctx, userID, &models.Portfolio{
		Name:       strings.TrimSpace(req.Name),
		Summary:    req.Summary,
		Skills:     req.Skills,
		Experience: req.Experience,
		Activities: req.Activities,
	})
	if err != nil {
		return nil, err
	}

	s.publishProfileUpdated(userID, "portfolio")
	return portfolio, nil
}

func (s *UserService) DeletePortfolio(ctx context.Context, userID string) error {
	if err := s.PortfolioRepo.Delete(ctx, userID); err != nil {
		return err
	}

	s.publishProfileUpdated(userID, "portfolio")
	return nil
}

func defaultPortfolio(profile *models.UserProfile) *models.Portfolio {
	return &models.Portfolio{
		UserID: profile.UserID,
		Name:   profile.Name,
	}
}

func (s *UserService) publishProfileUpdated(userID, field string) {
	if err := s.Publisher.PublishCareerEvent(&models.CareerEvent{
		EventType: models.EventTypeProfileUpdated,
		UserID:    userID,
		Payload:   map[string]any{"field": field},
	}); err != nil {
		log.Printf("Warning: failed to publish profile event: %v", err)
	}
}
