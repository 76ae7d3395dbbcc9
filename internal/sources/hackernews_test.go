package sources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHNFetch_Success(t *testing.T) {
	payload := `{
		"hits": [
			{
				"objectID": "41001",
				"title": "Acme (YC S20) Is Hiring Senior Backend Engineers",
				"author": "acme_hr",
				"story_text": "Join us building Go services.",
				"url": "https://acme.example/careers"
			},
			{
				"objectID": "41002",
				"title": "Initech Is Hiring",
				"author": "initech",
				"story_text": "",
				"url": ""
			}
		]
	}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("tags") != "job" {
			t.Errorf("expected job tag, got %q", r.URL.Query().Get("tags"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(payload))
	}))
	defer srv.Close()

	f := NewHNFetcher("backend")
	f.baseURL = srv.URL

	jobs, err := f.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}

	if jobs[0].NativeID != "41001" {
		t.Errorf("unexpected native id: %s", jobs[0].NativeID)
	}
	if jobs[0].Description != "Join us building Go services." {
		t.Errorf("unexpected description: %q", jobs[0].Description)
	}

	// Missing story text falls back to the title, missing URL to the HN item.
	if jobs[1].Description != "Initech Is Hiring" {
		t.Errorf("expected title fallback, got %q", jobs[1].Description)
	}
	if jobs[1].ApplyURL != "https://news.ycombinator.com/item?id=41002" {
		t.Errorf("expected HN item fallback, got %q", jobs[1].ApplyURL)
	}
}

func TestHNFetch_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	f := NewHNFetcher("backend")
	f.baseURL = srv.URL

	if _, err := f.Fetch(context.Background()); err == nil {
		t.Fatal("expected error for HTTP 500, got nil")
	}
}
