package models

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ActivityCategory classifies catalog entries.
type ActivityCategory string

const (
	CategoryHiring        ActivityCategory = "hiring"
	CategoryInternship    ActivityCategory = "internship"
	CategoryContest       ActivityCategory = "contest"
	CategoryCertification ActivityCategory = "certification"

	// CategoryAll is the filter value that disables category filtering.
	// It is never stored on an activity.
	CategoryAll ActivityCategory = "all"
)

func (c ActivityCategory) Valid() bool {
	switch c {
	case CategoryHiring, CategoryInternship, CategoryContest, CategoryCertification:
		return true
	}
	return false
}

// MyActivityType classifies a user's self-reported completed activity.
// Distinct from ActivityCategory: no hiring, adds "other".
type MyActivityType string

const (
	MyActivityInternship    MyActivityType = "internship"
	MyActivityContest       MyActivityType = "contest"
	MyActivityCertification MyActivityType = "certification"
	MyActivityOther         MyActivityType = "other"
)

func (t MyActivityType) Valid() bool {
	switch t {
	case MyActivityInternship, MyActivityContest, MyActivityCertification, MyActivityOther:
		return true
	}
	return false
}

// Majors form a fixed enumeration; targetMajors membership is tested
// by exact string comparison.
const (
	MajorComputerScience Major = "Computer Science/Software"
	MajorMechanical      Major = "Mechanical Engineering"
	MajorElectrical      Major = "Electrical/Electronic Engineering"
	MajorChemical        Major = "Chemical Engineering"
)

type Major string

func Majors() []Major {
	return []Major{MajorComputerScience, MajorMechanical, MajorElectrical, MajorChemical}
}

func (m Major) Valid() bool {
	switch m {
	case MajorComputerScience, MajorMechanical, MajorElectrical, MajorChemical:
		return true
	}
	return false
}

// Grade 5 denotes "graduate".
const (
	MinGrade      = 1
	MaxGrade      = 5
	GraduateGrade = 5
)

func ValidGrade(grade int) bool {
	return grade >= MinGrade && grade <= MaxGrade
}
