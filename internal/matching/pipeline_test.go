package matching

import (
	"testing"
	"time"

	"career-service/internal/models"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)

func makeActivity(title, company string, category models.ActivityCategory, required []string, majors []string) models.Activity {
	return models.Activity{
		Title:                title,
		CompanyName:          company,
		Category:             category,
		RequiredCompetencies: required,
		TargetMajors:         majors,
		ApplicationDeadline:  testNow.AddDate(0, 0, 7),
	}
}

func csMajors() []string {
	return []string{string(models.MajorComputerScience)}
}

func TestSelectActivitiesEligibility(t *testing.T) {
	activities := []models.Activity{
		makeActivity("Backend Intern", "Acme", models.CategoryInternship, []string{"go"}, csMajors()),
		makeActivity("CAD Contest", "MechCo", models.CategoryContest, []string{"catia"}, []string{string(models.MajorMechanical)}),
		makeActivity("Cloud Cert", "CertOrg", models.CategoryCertification, []string{"aws"}, csMajors()),
	}

	got := SelectActivities(activities, nil, SelectOptions{Major: models.MajorComputerScience, Category: models.CategoryAll}, testNow)
	if len(got) != 2 {
		t.Fatalf("expected 2 eligible activities, got %d", len(got))
	}

	got = SelectActivities(activities, nil, SelectOptions{Major: models.MajorComputerScience, Category: models.CategoryCertification}, testNow)
	if len(got) != 1 || got[0].Title != "Cloud Cert" {
		t.Fatalf("category filter failed: %+v", got)
	}
}

func TestSelectActivitiesSearch(t *testing.T) {
	activities := []models.Activity{
		makeActivity("Backend Intern", "Acme", models.CategoryInternship, []string{"go", "sql"}, csMajors()),
		makeActivity("Frontend Intern", "Globex", models.CategoryInternship, []string{"react"}, csMajors()),
		makeActivity("Data Intern", "Initech", models.CategoryInternship, []string{"python", "SQL"}, csMajors()),
	}
	opts := SelectOptions{Major: models.MajorComputerScience, Category: models.CategoryAll}

	testCases := []struct {
		name     string
		term     string
		expected int
	}{
		{"empty term is no-op", "", 3},
		{"whitespace only is no-op", "   ", 3},
		{"title substring", "backend", 1},
		{"company substring case-insensitive", "GLOBEX", 1},
		{"competency substring", "sql", 2},
		{"no hits", "kubernetes", 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			opts := opts
			opts.SearchTerm = tc.term
			got := SelectActivities(activities, nil, opts, testNow)
			if len(got) != tc.expected {
				t.Errorf("search %q: got %d activities, want %d", tc.term, len(got), tc.expected)
			}
		})
	}
}

func TestSelectActivitiesEmptySearchMatchesNoSearch(t *testing.T) {
	activities := []models.Activity{
		makeActivity("A", "a", models.CategoryHiring, []string{"go"}, csMajors()),
		makeActivity("B", "b", models.CategoryContest, []string{"java"}, csMajors()),
	}
	base := SelectOptions{Major: models.MajorComputerScience, Category: models.CategoryAll}

	withEmpty := base
	withEmpty.SearchTerm = ""
	a := SelectActivities(activities, []string{"go"}, base, testNow)
	b := SelectActivities(activities, []string{"go"}, withEmpty, testNow)

	if len(a) != len(b) {
		t.Fatalf("empty search changed result size: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Title != b[i].Title || a[i].MatchRate != b[i].MatchRate {
			t.Errorf("index %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestSelectActivitiesSortStable(t *testing.T) {
	// Both "First" and "Second" match at 100; "Low" at 0. Stable sort
	// must keep First before Second.
	activities := []models.Activity{
		makeActivity("Low", "x", models.CategoryHiring, []string{"cobol"}, csMajors()),
		makeActivity("First", "x", models.CategoryHiring, []string{"go"}, csMajors()),
		makeActivity("Second", "x", models.CategoryHiring, []string{"go"}, csMajors()),
	}

	got := SelectActivities(activities, []string{"go"}, SelectOptions{
		Major:    models.MajorComputerScience,
		Category: models.CategoryAll,
		Sort:     SortMatchRateDesc,
	}, testNow)

	if len(got) != 3 {
		t.Fatalf("expected 3 activities, got %d", len(got))
	}
	if got[0].Title != "First" || got[1].Title != "Second" || got[2].Title != "Low" {
		t.Errorf("unexpected order: %s, %s, %s", got[0].Title, got[1].Title, got[2].Title)
	}
}

func TestSelectActivitiesDefaultSortPreservesSourceOrder(t *testing.T) {
	activities := []models.Activity{
		makeActivity("Newest", "x", models.CategoryHiring, []string{"cobol"}, csMajors()),
		makeActivity("Older", "x", models.CategoryHiring, []string{"go"}, csMajors()),
	}

	got := SelectActivities(activities, []string{"go"}, SelectOptions{
		Major:    models.MajorComputerScience,
		Category: models.CategoryAll,
		Sort:     SortDefault,
	}, testNow)

	if got[0].Title != "Newest" || got[1].Title != "Older" {
		t.Errorf("default sort reordered: %s, %s", got[0].Title, got[1].Title)
	}
}

func TestSelectActivitiesDoesNotMutateInput(t *testing.T) {
	activities := []models.Activity{
		makeActivity("B", "x", models.CategoryHiring, []string{"go"}, csMajors()),
		makeActivity("A", "x", models.CategoryHiring, []string{"go", "sql"}, csMajors()),
	}

	SelectActivities(activities, []string{"go", "sql"}, SelectOptions{
		Major:    models.MajorComputerScience,
		Category: models.CategoryAll,
		Sort:     SortMatchRateDesc,
	}, testNow)

	if activities[0].Title != "B" || activities[1].Title != "A" {
		t.Error("input slice was reordered")
	}
}

func TestAnnotateEndToEnd(t *testing.T) {
	testCases := []struct {
		name         string
		required     []string
		user         []string
		expectedRate int
		expectedTier string
	}{
		{"half match is medium", []string{"java", "spring"}, []string{"Java", "SQL"}, 50, "medium"},
		{"no competencies is low", []string{"python", "tensorflow", "docker"}, []string{}, 0, "low"},
		{"full match is high", []string{"go"}, []string{"GO"}, 100, "high"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := makeActivity("T", "c", models.CategoryHiring, tc.required, csMajors())
			got := Annotate(a, tc.user, testNow)
			if got.MatchRate != tc.expectedRate {
				t.Errorf("rate = %d, want %d", got.MatchRate, tc.expectedRate)
			}
			if got.MatchTier != tc.expectedTier {
				t.Errorf("tier = %s, want %s", got.MatchTier, tc.expectedTier)
			}
		})
	}
}

func TestReannotateKeepsOrderAndRecomputes(t *testing.T) {
	activities := []models.Activity{
		makeActivity("A", "x", models.CategoryHiring, []string{"go"}, csMajors()),
		makeActivity("B", "x", models.CategoryHiring, []string{"rust"}, csMajors()),
	}
	annotated := AnnotateAll(activities, []string{"go"}, testNow)
	if annotated[0].MatchRate != 100 || annotated[1].MatchRate != 0 {
		t.Fatalf("unexpected initial rates: %d, %d", annotated[0].MatchRate, annotated[1].MatchRate)
	}

	// Competencies change; snapshot is re-annotated without a re-fetch.
	re := Reannotate(annotated, []string{"rust"}, testNow)
	if re[0].Title != "A" || re[1].Title != "B" {
		t.Error("re-annotation reordered activities")
	}
	if re[0].MatchRate != 0 || re[1].MatchRate != 100 {
		t.Errorf("rates not recomputed: %d, %d", re[0].MatchRate, re[1].MatchRate)
	}
}
