// Package matching holds the competency matcher and the activity
// filter/search/sort pipeline. Everything here is a pure computation
// over values already in memory: no I/O, no shared state, deterministic
// for fixed inputs.
package matching

import (
	"math"
	"strings"
)

// Tier buckets a match rate for display.
type Tier string

const (
	TierHigh   Tier = "high"
	TierMedium Tier = "medium"
	TierLow    Tier = "low"
)

// TierFor classifies a match rate. Thresholds are strict: 71 is high,
// 70 is medium, 40 is low. Fixed business rule, not configurable.
func TierFor(rate int) Tier {
	switch {
	case rate > 70:
		return TierHigh
	case rate > 40:
		return TierMedium
	default:
		return TierLow
	}
}

// ComputeMatchRate returns the percentage of an activity's required
// competencies present in the user's competency list, rounded to the
// nearest integer, always in [0, 100].
//
// Matching is case-insensitive. The required list is deduplicated
// (after lower-casing) before counting, so duplicate entries skew
// neither numerator nor denominator. Either list empty or nil is the
// defined zero-match case.
func ComputeMatchRate(required, userCompetencies []string) int {
	if len(required) == 0 || len(userCompetencies) == 0 {
		return 0
	}

	userSet := make(map[string]struct{}, len(userCompetencies))
	for _, c := range userCompetencies {
		userSet[strings.ToLower(c)] = struct{}{}
	}

	requiredSet := make(map[string]struct{}, len(required))
	for _, c := range required {
		requiredSet[strings.ToLower(c)] = struct{}{}
	}

	matched := 0
	for c := range requiredSet {
		if _, ok := userSet[c]; ok {
			matched++
		}
	}

	return int(math.Round(float64(matched) / float64(len(requiredSet)) * 100))
}

// NormalizeCompetencies lower-cases and trims a competency list,
// dropping empties and duplicates while keeping first-seen order.
// Profiles store competencies in this form so the matcher never has to
// re-normalize the user side.
func NormalizeCompetencies(competencies []string) []string {
	seen := make(map[string]struct{}, len(competencies))
	out := make([]string, 0, len(competencies))
	for _, c := range competencies {
		c = strings.ToLower(strings.TrimSpace(c))
		if c == "" {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
