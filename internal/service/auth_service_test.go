package service

import (
	"testing"

	"career-service/internal/models"
)

func TestReusableSessionToken(t *testing.T) {
	tests := []struct {
		name      string
		session   *models.Session
		userID    string
		wantToken string
		wantOK    bool
	}{
		{"no session", nil, "u1", "", false},
		{"empty token", &models.Session{UserID: "u1"}, "u1", "", false},
		{"other user", &models.Session{UserID: "u2", Token: "tok"}, "u1", "", false},
		{"live session", &models.Session{UserID: "u1", Token: "tok"}, "u1", "tok", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, ok := reusableSessionToken(tt.session, tt.userID)
			if ok != tt.wantOK || token != tt.wantToken {
				t.Errorf("got (%q, %v), want (%q, %v)", token, ok, tt.wantToken, tt.wantOK)
			}
		})
	}
}
