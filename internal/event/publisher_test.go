package event

import (
	"testing"

	"career-service/internal/models"
)

func TestMockPublisherRecordsEvents(t *testing.T) {
	pub := NewMockPublisher()

	events := []models.CareerEvent{
		{EventType: models.EventTypeUserRegistered, UserID: "u1"},
		{EventType: models.EventTypeActivityLiked, UserID: "u1", ActivityID: "a1"},
		{EventType: models.EventTypeActivityUnliked, UserID: "u1", ActivityID: "a1"},
	}

	for i := range events {
		if err := pub.PublishCareerEvent(&events[i]); err != nil {
			t.Fatalf("publish: %v", err)
		}
	}

	got := pub.GetEvents()
	if len(got) != len(events) {
		t.Fatalf("recorded %d events, want %d", len(got), len(events))
	}
	for i, e := range events {
		if got[i].EventType != e.EventType || got[i].ActivityID != e.ActivityID {
			t.Errorf("event %d = %+v, want %+v", i, got[i], e)
		}
	}

	pub.ClearEvents()
	if len(pub.GetEvents()) != 0 {
		t.Error("ClearEvents left events behind")
	}
}

func TestDisabledPublisherIsNoop(t *testing.T) {
	pub, err := NewEventPublisher("", "career.events")
	if err != nil {
		t.Fatalf("constructing disabled publisher: %v", err)
	}

	if err := pub.PublishCareerEvent(&models.CareerEvent{
		EventType: models.EventTypeProfileUpdated,
		UserID:    "u1",
	}); err != nil {
		t.Errorf("disabled publish returned error: %v", err)
	}

	if err := pub.Close(); err != nil {
		t.Errorf("disabled close returned error: %v", err)
	}
}
