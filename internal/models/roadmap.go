package models

import "strings"

// RoadmapStep is a per-grade curated guidance record.
type RoadmapStep struct {
	Grade                   int      `json:"grade" bson:"grade"`
	Title                   string   `json:"title" bson:"title"`
	Description             string   `json:"description" bson:"description"`
	Recommendations         []string `json:"recommendations" bson:"recommendations"`
	RecommendedCompetencies []string `json:"recommendedCompetencies" bson:"recommendedCompetencies"`
}

// Roadmap holds the ordered steps for all grades of one major.
// Steps are kept sorted ascending by grade.
type Roadmap struct {
	ID    string        `json:"id" bson:"_id"`
	Major Major         `json:"major" bson:"major"`
	Steps []RoadmapStep `json:"steps" bson:"steps"`
}

// RoadmapDocID derives the document id for a major. The slash in major
// names is not a legal id character in the original document store, so
// it maps to a comma.
func RoadmapDocID(major Major) string {
	return strings.ReplaceAll(string(major), "/", ",")
}

// StepForGrade returns the step matching grade, or nil.
func (r *Roadmap) StepForGrade(grade int) *RoadmapStep {
	for i := range r.Steps {
		if r.Steps[i].Grade == grade {
			return &r.Steps[i]
		}
	}
	return nil
}
