package matching

import (
	"testing"
	"time"
)

func TestDaysUntil(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.Local)

	testCases := []struct {
		name         string
		deadline     time.Time
		expected     DeadlineStatus
		expectedDays int
	}{
		{"yesterday is closed", now.AddDate(0, 0, -1), DeadlineClosed, 0},
		{"well past is closed", now.AddDate(0, -2, 0), DeadlineClosed, 0},
		{"today late evening is due today", time.Date(2025, 6, 15, 23, 59, 0, 0, time.Local), DeadlineDueToday, 0},
		{"today early morning is due today", time.Date(2025, 6, 15, 0, 1, 0, 0, time.Local), DeadlineDueToday, 0},
		{"tomorrow just after midnight is one day", time.Date(2025, 6, 16, 0, 1, 0, 0, time.Local), DeadlineUpcoming, 1},
		{"a week out", now.AddDate(0, 0, 7), DeadlineUpcoming, 7},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := DaysUntil(tc.deadline, now)
			if got.Status != tc.expected {
				t.Errorf("status = %s, want %s", got.Status, tc.expected)
			}
			if got.DaysLeft != tc.expectedDays {
				t.Errorf("days = %d, want %d", got.DaysLeft, tc.expectedDays)
			}
		})
	}
}

func TestDaysUntilIgnoresTimeOfDay(t *testing.T) {
	// A near-midnight "now" must not shift the classification.
	now := time.Date(2025, 6, 15, 23, 58, 0, 0, time.Local)
	deadline := time.Date(2025, 6, 16, 0, 5, 0, 0, time.Local)

	got := DaysUntil(deadline, now)
	if got.Status != DeadlineUpcoming || got.DaysLeft != 1 {
		t.Errorf("got %+v, want upcoming/1", got)
	}
}
