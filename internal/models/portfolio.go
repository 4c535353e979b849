package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Portfolio is the user's free-text self-presentation document, one
// per user. Skills is kept as raw text (comma- or newline-separated)
// rather than a parsed list; it is display content, not matcher input.
type Portfolio struct {
	ID         bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID     string        `json:"userId" bson:"userId"`
	Name       string        `json:"name" bson:"name"`
	Summary    string        `json:"summary" bson:"summary"`
	Skills     string        `json:"skills" bson:"skills"`
	Experience string        `json:"experience" bson:"experience"`
	Activities string        `json:"activities" bson:"activities"`
	Metadata   Metadata      `json:"metadata" bson:"metadata"`
}

type PortfolioRequest struct {
	Name       string `json:"name"`
	Summary    string `json:"summary"`
	Skills     string `json:"skills"`
	Experience string `json:"experience"`
	Activities string `json:"activities"`
}
