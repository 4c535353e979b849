package matching

import (
	"sort"
	"strings"
	"time"

	"career-service/internal/models"
)

type SortOrder string

const (
	// SortDefault preserves source order (the store returns newest
	// first).
	SortDefault SortOrder = "default"
	// SortMatchRateDesc orders by match rate descending; ties keep
	// their source order.
	SortMatchRateDesc SortOrder = "matchRateDesc"
)

func ParseSortOrder(s string) SortOrder {
	if s == string(SortMatchRateDesc) {
		return SortMatchRateDesc
	}
	return SortDefault
}

// SelectOptions controls the activity pipeline. A zero Category or
// CategoryAll disables category filtering.
type SelectOptions struct {
	Major      models.Major
	Category   models.ActivityCategory
	SearchTerm string
	Sort       SortOrder
}

// SelectActivities runs the full display pipeline: eligibility filter,
// free-text search, match-rate annotation, then ordering. The input
// slice is never mutated; the result is freshly allocated.
//
// The eligibility stage normally runs at the store boundary as a query
// filter; it is reproduced here so the pipeline is self-contained over
// any in-memory snapshot.
func SelectActivities(activities []models.Activity, userCompetencies []string, opts SelectOptions, now time.Time) []models.ActivityWithMatchRate {
	eligible := make([]models.Activity, 0, len(activities))
	for _, a := range activities {
		if !containsExact(a.TargetMajors, string(opts.Major)) {
			continue
		}
		if opts.Category != "" && opts.Category != models.CategoryAll && a.Category != opts.Category {
			continue
		}
		eligible = append(eligible, a)
	}

	term := strings.ToLower(strings.TrimSpace(opts.SearchTerm))
	if term != "" {
		searched := eligible[:0:0]
		for _, a := range eligible {
			if matchesSearch(a, term) {
				searched = append(searched, a)
			}
		}
		eligible = searched
	}

	annotated := AnnotateAll(eligible, userCompetencies, now)

	if opts.Sort == SortMatchRateDesc {
		sort.SliceStable(annotated, func(i, j int) bool {
			return annotated[i].MatchRate > annotated[j].MatchRate
		})
	}

	return annotated
}

// AnnotateAll attaches match rate, tier and deadline classification to
// every activity. Callers re-run it whenever the competency list
// changes; the activity snapshot is not re-fetched for that.
func AnnotateAll(activities []models.Activity, userCompetencies []string, now time.Time) []models.ActivityWithMatchRate {
	out := make([]models.ActivityWithMatchRate, 0, len(activities))
	for _, a := range activities {
		out = append(out, Annotate(a, userCompetencies, now))
	}
	return out
}

func Annotate(a models.Activity, userCompetencies []string, now time.Time) models.ActivityWithMatchRate {
	rate := ComputeMatchRate(a.RequiredCompetencies, userCompetencies)
	countdown := DaysUntil(a.ApplicationDeadline, now)
	return models.ActivityWithMatchRate{
		Activity:  a,
		MatchRate: rate,
		MatchTier: string(TierFor(rate)),
		Deadline:  string(countdown.Status),
		DaysLeft:  countdown.DaysLeft,
	}
}

// Reannotate recomputes rates over an already-annotated list, keeping
// the original ordering.
func Reannotate(activities []models.ActivityWithMatchRate, userCompetencies []string, now time.Time) []models.ActivityWithMatchRate {
	out := make([]models.ActivityWithMatchRate, 0, len(activities))
	for _, a := range activities {
		out = append(out, Annotate(a.Activity, userCompetencies, now))
	}
	return out
}

// matchesSearch tests term against title, company name and each
// required competency; term must already be trimmed and lower-cased.
func matchesSearch(a models.Activity, term string) bool {
	if strings.Contains(strings.ToLower(a.Title), term) {
		return true
	}
	if strings.Contains(strings.ToLower(a.CompanyName), term) {
		return true
	}
	for _, c := range a.RequiredCompetencies {
		if strings.Contains(strings.ToLower(c), term) {
			return true
		}
	}
	return false
}

func containsExact(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
