package models

import (
	"time"
)

type EventType string

const (
	EventTypeUserRegistered  EventType = "user.registered"
	EventTypeProfileUpdated  EventType = "profile.updated"
	EventTypeActivityCreated EventType = "activity.created"
	EventTypeActivityUpdated EventType = "activity.updated"
	EventTypeActivityDeleted EventType = "activity.deleted"
	EventTypeActivityLiked   EventType = "activity.liked"
	EventTypeActivityUnliked EventType = "activity.unliked"
)

type CareerEvent struct {
	EventType  EventType      `json:"eventType"`
	UserID     string         `json:"userId,omitempty"`
	ActivityID string         `json:"activityId,omitempty"`
	Timestamp  time.Time      `json:"timestamp"`
	Payload    map[string]any `json:"payload,omitempty"`
}

// UserRegisteredEvent is the parsed form of a user.registered message,
// used to provision a blank profile for a new user.
type UserRegisteredEvent struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UserRegistered extracts the registration details from the event
// envelope. Username and email travel in the payload map; missing or
// mistyped entries come back empty rather than failing.
func (e *CareerEvent) UserRegistered() UserRegisteredEvent {
	out := UserRegisteredEvent{UserID: e.UserID}
	if v, ok := e.Payload["username"].(string); ok {
		out.Username = v
	}
	if v, ok := e.Payload["email"].(string); ok {
		out.Email = v
	}
	return out
}
