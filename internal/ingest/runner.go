package ingest

import (
	"context"
	"log"
	"sync"
	"time"

	"resumegenie/backend/internal/models"
	"resumegenie/backend/internal/sources"
)

// Result is the tagged outcome of one adapter call. Failures are data, not
// control flow: the runner maps them to empty contributions and carries on.
type Result struct {
	Source string
	Jobs   []models.Job
	Err    error
}

// Output is the joined, deduplicated product of one ingestion round.
type Output struct {
	Jobs          []models.Job
	Fetched       int      // raw records across all adapters, pre-dedup
	FailedSources []string // adapters that contributed nothing due to errors
}

// Runner executes all registered source adapters through a bounded worker
// pool and joins their normalized output in registration order. The join is a
// hard barrier: nothing downstream observes partial adapter state.
type Runner struct {
	fetchers    []sources.Fetcher
	concurrency int
	now         func() time.Time
}

func NewRunner(fetchers []sources.Fetcher, concurrency int) *Runner {
	if concurrency <= 0 {
		concurrency = 3
	}
	return &Runner{
		fetchers:    fetchers,
		concurrency: concurrency,
		now:         time.Now,
	}
}

// Run fetches every source, normalizes and deduplicates. A failing adapter
// degrades to an empty contribution; it never aborts the others.
func (r *Runner) Run(ctx context.Context) Output {
	results := r.fetchAll(ctx)

	var out Output
	var joined []models.Job
	for _, res := range results {
		if res.Err != nil {
			log.Printf("[ingest] source %s failed: %v, contributing nothing", res.Source, res.Err)
			out.FailedSources = append(out.FailedSources, res.Source)
			continue
		}
		joined = append(joined, res.Jobs...)
	}

	out.Fetched = len(joined)
	out.Jobs = Dedup(joined)
	return out
}

// fetchAll runs the adapters concurrently, at most concurrency at a time,
// and returns one Result per adapter in registration order. Which adapter
// finishes first must not influence which duplicate survives dedup.
func (r *Runner) fetchAll(ctx context.Context) []Result {
	results := make([]Result, len(r.fetchers))

	workers := r.concurrency
	if workers > len(r.fetchers) {
		workers = len(r.fetchers)
	}

	indexes := make(chan int, len(r.fetchers))
	for i := range r.fetchers {
		indexes <- i
	}
	close(indexes)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				results[i] = r.fetchOne(ctx, r.fetchers[i])
			}
		}()
	}
	wg.Wait()

	return results
}

func (r *Runner) fetchOne(ctx context.Context, f sources.Fetcher) Result {
	res := Result{Source: f.Name()}

	raws, err := f.Fetch(ctx)
	if err != nil {
		res.Err = err
		return res
	}

	fetchedAt := r.now()
	for _, raw := range raws {
		job, err := Normalize(raw, f.Name(), fetchedAt)
		if err != nil {
			log.Printf("[ingest] dropping record from %s: %v", f.Name(), err)
			continue
		}
		res.Jobs = append(res.Jobs, job)
	}
	return res
}
