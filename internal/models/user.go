package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// MyActivity is a user's self-reported completed activity. It lives
// embedded inside the profile document, never as its own collection.
type MyActivity struct {
	ID          string         `json:"id" bson:"id"`
	Type        MyActivityType `json:"type" bson:"type"`
	Title       string         `json:"title" bson:"title"`
	Date        string         `json:"date" bson:"date"`
	Description string         `json:"description,omitempty" bson:"description,omitempty"`
}

type Metadata struct {
	CreatedAt int `json:"createdAt" bson:"createdAt"`
	UpdatedAt int `json:"updatedAt" bson:"updatedAt"`
}

// UserProfile is keyed by the identity provider's user id. Competency
// strings are stored lower-cased so matching stays case-insensitive.
type UserProfile struct {
	ID                  bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID              string        `json:"userId" bson:"userId"`
	Name                string        `json:"name" bson:"name"`
	Email               string        `json:"email" bson:"email"`
	Competencies        []string      `json:"competencies" bson:"competencies"`
	Grade               int           `json:"grade,omitempty" bson:"grade,omitempty"`
	Major               Major         `json:"major,omitempty" bson:"major,omitempty"`
	CompletedActivities []MyActivity  `json:"completedActivities,omitempty" bson:"completedActivities,omitempty"`
	LikedActivityIDs    []string      `json:"likedActivityIds,omitempty" bson:"likedActivityIds,omitempty"`
	Role                Role          `json:"role" bson:"role"`
	Metadata            Metadata      `json:"metadata" bson:"metadata"`
}

// OnboardingComplete reports whether grade and major have been
// collected. An incomplete profile routes to onboarding, never to the
// dashboard.
func (p *UserProfile) OnboardingComplete() bool {
	return ValidGrade(p.Grade) && p.Major.Valid()
}

func (p *UserProfile) IsAdmin() bool {
	return p.Role == RoleAdmin
}

func (p *UserProfile) HasLiked(activityID string) bool {
	for _, id := range p.LikedActivityIDs {
		if id == activityID {
			return true
		}
	}
	return false
}
