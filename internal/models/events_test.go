package models

import (
	"encoding/json"
	"testing"
)

func TestUserRegisteredRoundTrip(t *testing.T) {
	published := CareerEvent{
		EventType: EventTypeUserRegistered,
		UserID:    "683f1c2d4e5a6b7c8d9e0f10",
		Payload: map[string]any{
			"username": "jihyun",
			"email":    "jihyun@example.com",
		},
	}

	body, err := json.Marshal(&published)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var received CareerEvent
	if err := json.Unmarshal(body, &received); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	registered := received.UserRegistered()
	if registered.UserID != published.UserID {
		t.Errorf("UserID = %q, want %q", registered.UserID, published.UserID)
	}
	if registered.Username != "jihyun" {
		t.Errorf("Username = %q, want %q", registered.Username, "jihyun")
	}
	if registered.Email != "jihyun@example.com" {
		t.Errorf("Email = %q, want %q", registered.Email, "jihyun@example.com")
	}
}

func TestUserRegisteredTolerantOfSparsePayload(t *testing.T) {
	evt := CareerEvent{
		EventType: EventTypeUserRegistered,
		UserID:    "u1",
		Payload:   map[string]any{"username": 42},
	}

	registered := evt.UserRegistered()
	if registered.UserID != "u1" {
		t.Errorf("UserID = %q, want %q", registered.UserID, "u1")
	}
	if registered.Username != "" || registered.Email != "" {
		t.Errorf("expected empty username/email, got %q / %q", registered.Username, registered.Email)
	}
}
