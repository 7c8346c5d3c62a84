package content

import (
	"testing"

	"vetlaunch/internal/models"
)

func curriculumKey(c models.CurriculumItem) int { return c.WeekNumber }

func TestMergeDefaultsReplacesMatchingKeyInPlace(t *testing.T) {
	defaults := []models.CurriculumItem{
		{WeekNumber: 1, Title: "Default One"},
		{WeekNumber: 2, Title: "Default Two"},
		{WeekNumber: 3, Title: "Default Three"},
	}
	live := []models.CurriculumItem{
		{WeekNumber: 2, Title: "CMS Two"},
	}

	merged := MergeDefaults(defaults, live, curriculumKey)

	if len(merged) != 3 {
		t.Fatalf("got %d items, want 3", len(merged))
	}
	if merged[1].Title != "CMS Two" {
		t.Errorf("position 2: got %q, want the CMS record", merged[1].Title)
	}
	if merged[0].Title != "Default One" || merged[2].Title != "Default Three" {
		t.Error("expected non-matching defaults to be preserved unchanged")
	}
}

func TestMergeDefaultsAppendsAndResorts(t *testing.T) {
	defaults := []models.CurriculumItem{
		{WeekNumber: 1, Title: "One"},
		{WeekNumber: 3, Title: "Three"},
	}
	live := []models.CurriculumItem{
		{WeekNumber: 2, Title: "Inserted Two"},
	}

	merged := MergeDefaults(defaults, live, curriculumKey)

	if len(merged) != 3 {
		t.Fatalf("got %d items, want 3", len(merged))
	}
	wantOrder := []int{1, 2, 3}
	for i, want := range wantOrder {
		if merged[i].WeekNumber != want {
			t.Errorf("position %d: got week %d, want %d", i, merged[i].WeekNumber, want)
		}
	}
	if merged[1].Title != "Inserted Two" {
		t.Errorf("expected appended record to sort into keyed position, got %q", merged[1].Title)
	}
}

func TestMergeDefaultsNoLiveRecords(t *testing.T) {
	merged := MergeDefaults(DefaultCurriculum, nil, curriculumKey)

	if len(merged) != len(DefaultCurriculum) {
		t.Fatalf("got %d items, want %d", len(merged), len(DefaultCurriculum))
	}
	for i := range merged {
		if merged[i].Title != DefaultCurriculum[i].Title {
			t.Errorf("position %d: got %q, want the default", i, merged[i].Title)
		}
	}
}

func TestMergeDefaultsEmptyDefaults(t *testing.T) {
	live := []models.FAQ{
		{Position: 2, Question: "B?"},
		{Position: 1, Question: "A?"},
	}

	merged := MergeDefaults(nil, live, func(f models.FAQ) int { return f.Position })

	if len(merged) != 2 {
		t.Fatalf("got %d items, want 2", len(merged))
	}
	if merged[0].Question != "A?" || merged[1].Question != "B?" {
		t.Error("expected live records sorted by key")
	}
}

func TestMergeDefaultsDoesNotMutateInputs(t *testing.T) {
	defaults := []models.Qualification{
		{Position: 1, Title: "Original"},
	}
	live := []models.Qualification{
		{Position: 1, Title: "Replacement"},
	}

	MergeDefaults(defaults, live, func(q models.Qualification) int { return q.Position })

	if defaults[0].Title != "Original" {
		t.Error("expected the defaults slice to be left untouched")
	}
}

func TestDefaultDatasetsKeyedSequentially(t *testing.T) {
	if len(DefaultCurriculum) != 10 {
		t.Errorf("curriculum: got %d weeks, want 10", len(DefaultCurriculum))
	}
	for i, c := range DefaultCurriculum {
		if c.WeekNumber != i+1 {
			t.Errorf("curriculum week at index %d keyed %d", i, c.WeekNumber)
		}
	}

	if len(DefaultQualifications) != 5 {
		t.Errorf("qualifications: got %d, want 5", len(DefaultQualifications))
	}
	for i, q := range DefaultQualifications {
		if q.Position != i+1 {
			t.Errorf("qualification at index %d keyed %d", i, q.Position)
		}
	}

	if len(DefaultFAQs) != 6 {
		t.Errorf("faqs: got %d, want 6", len(DefaultFAQs))
	}
	for i, f := range DefaultFAQs {
		if f.Position != i+1 {
			t.Errorf("faq at index %d keyed %d", i, f.Position)
		}
	}
}
