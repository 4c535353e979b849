package service

import (
	"testing"
	"time"

	"career-service/internal/models"
)

func validDTO() *models.ActivityDTO {
	return &models.ActivityDTO{
		Title:                "Backend Developer Internship",
		Content:              "Summer internship on the platform team",
		CompanyName:          "Acme Corp",
		Category:             models.CategoryInternship,
		RequiredCompetencies: []string{"Java", "Spring"},
		TargetMajors:         []string{string(models.MajorComputerScience)},
		ApplicationDeadline:  "2026-03-01",
	}
}

func TestActivityFromDTO(t *testing.T) {
	activity, err := activityFromDTO(validDTO())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if activity.Title != "Backend Developer Internship" {
		t.Errorf("title = %q", activity.Title)
	}
	want := time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)
	if !activity.ApplicationDeadline.Equal(want) {
		t.Errorf("deadline = %v, want %v", activity.ApplicationDeadline, want)
	}
}

func TestActivityFromDTOValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.ActivityDTO)
	}{
		{"empty title", func(d *models.ActivityDTO) { d.Title = "  " }},
		{"bad category", func(d *models.ActivityDTO) { d.Category = "meetup" }},
		{"category all not storable", func(d *models.ActivityDTO) { d.Category = models.CategoryAll }},
		{"no target majors", func(d *models.ActivityDTO) { d.TargetMajors = nil }},
		{"unknown major", func(d *models.ActivityDTO) { d.TargetMajors = []string{"Astrology"} }},
		{"bad deadline", func(d *models.ActivityDTO) { d.ApplicationDeadline = "03/01/2026" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dto := validDTO()
			tt.mutate(dto)
			if _, err := activityFromDTO(dto); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestCatalogMatches(t *testing.T) {
	activity := models.Activity{
		Title:                "Cloud Engineer",
		CompanyName:          "Nimbus Systems",
		Content:              "Operate the Kubernetes fleet",
		RequiredCompetencies: []string{"Terraform", "AWS"},
	}

	tests := []struct {
		term string
		want bool
	}{
		{"cloud", true},
		{"nimbus", true},
		{"kubernetes", true},
		{"terraform", true},
		{"aws", true},
		{"python", false},
	}

	for _, tt := range tests {
		if got := catalogMatches(activity, tt.term); got != tt.want {
			t.Errorf("catalogMatches(%q) = %v, want %v", tt.term, got, tt.want)
		}
	}
}
