package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Activity is a catalog entry managed by admin users.
// RequiredCompetencies and TargetMajors are sets: order irrelevant,
// competency membership case-insensitive, major membership exact.
type Activity struct {
	ID                   bson.ObjectID    `json:"id,omitempty" bson:"_id,omitempty"`
	Title                string           `json:"title" bson:"title"`
	Content              string           `json:"content" bson:"content"`
	CompanyName          string           `json:"companyName" bson:"companyName"`
	EmploymentType       string           `json:"employmentType,omitempty" bson:"employmentType,omitempty"`
	Location             string           `json:"location,omitempty" bson:"location,omitempty"`
	Category             ActivityCategory `json:"category" bson:"category"`
	RequiredCompetencies []string         `json:"requiredCompetencies" bson:"requiredCompetencies"`
	TargetMajors         []string         `json:"targetMajors" bson:"targetMajors"`
	ApplicationDeadline  time.Time        `json:"applicationDeadline" bson:"applicationDeadline"`
	CreatedAt            time.Time        `json:"createdAt" bson:"createdAt"`
	UpdatedAt            time.Time        `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
	ApplyURL             string           `json:"applyUrl,omitempty" bson:"applyUrl,omitempty"`
}

// ActivityWithMatchRate is an activity annotated for display.
type ActivityWithMatchRate struct {
	Activity `bson:",inline"`
	MatchRate int    `json:"matchRate"`
	MatchTier string `json:"matchTier"`
	Deadline  string `json:"deadlineStatus"`
	DaysLeft  int    `json:"daysLeft,omitempty"`
}
