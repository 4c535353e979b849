package models

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type OnboardingRequest struct {
	Grade int    `json:"grade"`
	Major string `json:"major"`
}

type UpdateCompetenciesRequest struct {
	Competencies []string `json:"competencies"`
}

type AddMyActivityRequest struct {
	Type        MyActivityType `json:"type"`
	Title       string         `json:"title"`
	Date        string         `json:"date"`
	Description string         `json:"description"`
}

type ActivityDTO struct {
	Title                string           `json:"title"`
	Content              string           `json:"content"`
	CompanyName          string           `json:"companyName"`
	EmploymentType       string           `json:"employmentType"`
	Location             string           `json:"location"`
	Category             ActivityCategory `json:"category"`
	RequiredCompetencies []string         `json:"requiredCompetencies"`
	TargetMajors         []string         `json:"targetMajors"`
	ApplicationDeadline  string           `json:"applicationDeadline"` // yyyy-mm-dd
	ApplyURL             string           `json:"applyUrl"`
}

type RoadmapStepRequest struct {
	Grade                   int      `json:"grade"`
	Title                   string   `json:"title"`
	Description             string   `json:"description"`
	Recommendations         []string `json:"recommendations"`
	RecommendedCompetencies []string `json:"recommendedCompetencies"`
}

// ToggleLikeResult reports the outcome of an optimistic like toggle.
// Liked is the state after the toggle; when Persisted is false the
// local change was rolled back and Liked reflects the prior state.
type ToggleLikeResult struct {
	ActivityID string `json:"activityId"`
	Liked      bool   `json:"liked"`
	Persisted  bool   `json:"persisted"`
}
