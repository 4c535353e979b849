package matching

import (
	"testing"
)

func TestComputeMatchRate(t *testing.T) {
	testCases := []struct {
		name     string
		required []string
		user     []string
		expected int
	}{
		{"empty required", []string{}, []string{"java", "sql"}, 0},
		{"nil required", nil, []string{"java"}, 0},
		{"empty user", []string{"python", "tensorflow", "docker"}, []string{}, 0},
		{"nil user", []string{"java"}, nil, 0},
		{"both empty", nil, nil, 0},
		{"full match single", []string{"Java"}, []string{"java"}, 100},
		{"case insensitive both sides", []string{"JAVA", "Spring"}, []string{"java", "SPRING"}, 100},
		{"half match", []string{"java", "spring"}, []string{"Java", "SQL"}, 50},
		{"no overlap", []string{"python", "tensorflow", "docker"}, []string{"java"}, 0},
		{"one of three rounds", []string{"a", "b", "c"}, []string{"a"}, 33},
		{"two of three rounds", []string{"a", "b", "c"}, []string{"a", "b"}, 67},
		{"duplicates in required do not skew", []string{"java", "java", "spring"}, []string{"java"}, 50},
		{"duplicates in user do not inflate", []string{"java", "spring"}, []string{"java", "java", "java"}, 50},
		{"user extras ignored", []string{"go"}, []string{"go", "rust", "zig"}, 100},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeMatchRate(tc.required, tc.user)
			if got != tc.expected {
				t.Errorf("ComputeMatchRate(%v, %v) = %d, want %d", tc.required, tc.user, got, tc.expected)
			}
			if got < 0 || got > 100 {
				t.Errorf("rate %d out of [0,100]", got)
			}
		})
	}
}

func TestComputeMatchRateMonotonic(t *testing.T) {
	required := []string{"java", "spring", "sql", "docker"}

	prev := -1
	user := []string{}
	for _, c := range required {
		user = append(user, c)
		rate := ComputeMatchRate(required, user)
		if rate < prev {
			t.Fatalf("rate decreased from %d to %d after adding %q", prev, rate, c)
		}
		prev = rate
	}
	if prev != 100 {
		t.Errorf("full coverage should be 100, got %d", prev)
	}
}

func TestComputeMatchRatePure(t *testing.T) {
	required := []string{"Java", "SQL"}
	user := []string{"java"}

	first := ComputeMatchRate(required, user)
	second := ComputeMatchRate(required, user)
	if first != second {
		t.Errorf("not deterministic: %d then %d", first, second)
	}

	if required[0] != "Java" || user[0] != "java" {
		t.Error("inputs were mutated")
	}
}

func TestTierFor(t *testing.T) {
	testCases := []struct {
		rate     int
		expected Tier
	}{
		{100, TierHigh},
		{71, TierHigh},
		{70, TierMedium},
		{50, TierMedium},
		{41, TierMedium},
		{40, TierLow},
		{1, TierLow},
		{0, TierLow},
	}

	for _, tc := range testCases {
		if got := TierFor(tc.rate); got != tc.expected {
			t.Errorf("TierFor(%d) = %s, want %s", tc.rate, got, tc.expected)
		}
	}
}

func TestNormalizeCompetencies(t *testing.T) {
	got := NormalizeCompetencies([]string{" Java ", "SQL", "", "  ", "react", "JAVA"})
	want := []string{"java", "sql", "react"}

	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %q, want %q", i, got[i], want[i])
		}
	}
}
