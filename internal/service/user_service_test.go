package service

import (
	"testing"

	"career-service/internal/models"
)

func TestDefaultPortfolioPrefillsName(t *testing.T) {
	profile := &models.UserProfile{
		UserID: "u1",
		Name:   "Kim Jihyun",
		Email:  "jihyun@example.com",
	}

	portfolio := defaultPortfolio(profile)

	if portfolio.UserID != "u1" {
		t.Errorf("UserID = %q, want %q", portfolio.UserID, "u1")
	}
	if portfolio.Name != "Kim Jihyun" {
		t.Errorf("Name = %q, want %q", portfolio.Name, "Kim Jihyun")
	}
	if portfolio.Summary != "" || portfolio.Skills != "" || portfolio.Experience != "" || portfolio.Activities != "" {
		t.Error("expected blank portfolio body")
	}
}
