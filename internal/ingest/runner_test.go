package ingest

import (
	"context"
	"errors"
	"testing"
	"time"

	"resumegenie/backend/internal/sources"
)

// stubFetcher returns canned records or a canned error.
type stubFetcher struct {
	name string
	raws []sources.RawJob
	err  error
}

func (s *stubFetcher) Name() string { return s.name }

func (s *stubFetcher) Fetch(ctx context.Context) ([]sources.RawJob, error) {
	return s.raws, s.err
}

func TestRunner_FailureIsolation(t *testing.T) {
	fetchers := []sources.Fetcher{
		&stubFetcher{name: "good", raws: []sources.RawJob{
			{NativeID: "1", Title: "Engineer", Company: "Acme", Description: "d1"},
		}},
		&stubFetcher{name: "broken", err: errors.New("boom")},
		&stubFetcher{name: "also_good", raws: []sources.RawJob{
			{NativeID: "2", Title: "Analyst", Company: "Initech", Description: "d2"},
		}},
	}

	out := NewRunner(fetchers, 2).Run(context.Background())

	if out.Fetched != 2 {
		t.Errorf("expected 2 fetched, got %d", out.Fetched)
	}
	if len(out.Jobs) != 2 {
		t.Errorf("expected 2 jobs, got %d", len(out.Jobs))
	}
	if len(out.FailedSources) != 1 || out.FailedSources[0] != "broken" {
		t.Errorf("unexpected failed sources: %v", out.FailedSources)
	}
}

func TestRunner_JoinsInRegistrationOrder(t *testing.T) {
	// Two adapters emit the same posting. The one registered first must win
	// dedup regardless of which goroutine finishes first, so run many rounds
	// to give a racy implementation a chance to fail.
	dup := sources.RawJob{NativeID: "x", Title: "Engineer", Company: "Acme", Description: "same"}

	for round := 0; round < 20; round++ {
		fetchers := []sources.Fetcher{
			&stubFetcher{name: "first", raws: []sources.RawJob{dup}},
			&stubFetcher{name: "second", raws: []sources.RawJob{dup}},
		}

		out := NewRunner(fetchers, 2).Run(context.Background())
		if len(out.Jobs) != 1 {
			t.Fatalf("round %d: expected 1 job after dedup, got %d", round, len(out.Jobs))
		}
		if out.Jobs[0].Source != "first" {
			t.Fatalf("round %d: expected the first-registered source to win, got %s", round, out.Jobs[0].Source)
		}
	}
}

func TestRunner_DropsRecordsWithoutNativeID(t *testing.T) {
	fetchers := []sources.Fetcher{
		&stubFetcher{name: "mixed", raws: []sources.RawJob{
			{NativeID: "", Title: "Ghost"},
			{NativeID: "1", Title: "Real", Description: "d"},
		}},
	}

	out := NewRunner(fetchers, 1).Run(context.Background())
	if out.Fetched != 1 {
		t.Errorf("expected 1 fetched, got %d", out.Fetched)
	}
	if len(out.Jobs) != 1 || out.Jobs[0].Title != "Real" {
		t.Fatalf("expected only the identifiable record, got %+v", out.Jobs)
	}
}

func TestRunner_AllSourcesFail(t *testing.T) {
	fetchers := []sources.Fetcher{
		&stubFetcher{name: "a", err: errors.New("down")},
		&stubFetcher{name: "b", err: errors.New("down")},
	}

	out := NewRunner(fetchers, 3).Run(context.Background())
	if out.Fetched != 0 || len(out.Jobs) != 0 {
		t.Errorf("expected empty output, got %+v", out)
	}
	if len(out.FailedSources) != 2 {
		t.Errorf("expected 2 failed sources, got %v", out.FailedSources)
	}
}

func TestRunner_StampsFetchedAt(t *testing.T) {
	fixed := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	r := NewRunner([]sources.Fetcher{
		&stubFetcher{name: "s", raws: []sources.RawJob{{NativeID: "1", Description: "d"}}},
	}, 1)
	r.now = func() time.Time { return fixed }

	out := r.Run(context.Background())
	if len(out.Jobs) != 1 {
		t.Fatalf("expected 1 job, got %d", len(out.Jobs))
	}
	if !out.Jobs[0].FetchedAt.Equal(fixed) {
		t.Errorf("expected fetched_at %v, got %v", fixed, out.Jobs[0].FetchedAt)
	}
}
