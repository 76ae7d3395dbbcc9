package ingest

import (
	"testing"

	"resumegenie/backend/internal/models"
)

func TestDedup_FirstOccurrenceWins(t *testing.T) {
	jobs := []models.Job{
		{ID: "a", Fingerprint: "f1"},
		{ID: "b", Fingerprint: "f2"},
		{ID: "c", Fingerprint: "f1"},
		{ID: "d", Fingerprint: "f3"},
		{ID: "e", Fingerprint: "f2"},
	}

	out := Dedup(jobs)
	if len(out) != 3 {
		t.Fatalf("expected 3 jobs, got %d", len(out))
	}
	for i, want := range []string{"a", "b", "d"} {
		if out[i].ID != want {
			t.Errorf("position %d: expected %s, got %s", i, want, out[i].ID)
		}
	}
}

func TestDedup_Idempotent(t *testing.T) {
	jobs := []models.Job{
		{ID: "a", Fingerprint: "f1"},
		{ID: "b", Fingerprint: "f1"},
		{ID: "c", Fingerprint: "f2"},
	}

	once := Dedup(jobs)
	twice := Dedup(once)
	if len(once) != len(twice) {
		t.Fatalf("dedup not idempotent: %d then %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Errorf("order changed on second pass at %d: %s vs %s", i, once[i].ID, twice[i].ID)
		}
	}
}

func TestDedup_DropsEmptyFingerprints(t *testing.T) {
	jobs := []models.Job{
		{ID: "a", Fingerprint: ""},
		{ID: "b", Fingerprint: "f1"},
		{ID: "c", Fingerprint: ""},
	}

	out := Dedup(jobs)
	if len(out) != 1 || out[0].ID != "b" {
		t.Fatalf("expected only job b to survive, got %+v", out)
	}
}

func TestDedup_Empty(t *testing.T) {
	if out := Dedup(nil); len(out) != 0 {
		t.Fatalf("expected empty output, got %d", len(out))
	}
}
