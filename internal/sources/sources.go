// Package sources contains one fetch-and-map adapter per upstream job board.
// Adapters share nothing beyond producing RawJob records; each one speaks its
// board's own wire format.
package sources

import (
	"context"
	"net/http"
	"time"
)

// Upstream boards are rate-sensitive and occasionally slow; anything past
// this is treated as unavailable for the run.
const fetchTimeout = 15 * time.Second

// RawJob is a posting as one board reported it, before normalization.
// Optional fields stay empty rather than absent.
type RawJob struct {
	NativeID    string
	Title       string
	Company     string
	Location    string
	Description string
	Salary      string
	ApplyURL    string
}

// Fetcher fetches raw postings from one upstream board. A fetcher with
// missing credentials returns (nil, nil); transport and parse errors are
// returned and contained by the ingest harness, never escalated.
type Fetcher interface {
	Name() string
	Fetch(ctx context.Context) ([]RawJob, error)
}

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: fetchTimeout}
}
