package sources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestUSAJobsFetch_Success(t *testing.T) {
	payload := `{
		"SearchResult": {
			"SearchResultItems": [
				{
					"MatchedObjectDescriptor": {
						"PositionID": "ABC-24-123",
						"PositionTitle": "IT Specialist",
						"OrganizationName": "Department of Examples",
						"PositionLocation": [
							{"LocationName": "Washington, DC"},
							{"LocationName": "Remote"}
						],
						"PositionRemuneration": [{"MinimumRange": "88000"}],
						"ApplyURI": ["https://usajobs.example/apply/123"],
						"UserArea": {"Details": {"JobSummary": "Federal IT work."}}
					}
				}
			]
		}
	}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization-Key") != "test-key" {
			t.Errorf("missing Authorization-Key header")
		}
		if r.Header.Get("User-Agent") != "me@example.com" {
			t.Errorf("unexpected User-Agent: %s", r.Header.Get("User-Agent"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(payload))
	}))
	defer srv.Close()

	f := NewUSAJobsFetcher("test-key", "me@example.com", "it specialist")
	f.baseURL = srv.URL

	jobs, err := f.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("expected 1 job, got %d", len(jobs))
	}

	j := jobs[0]
	if j.NativeID != "ABC-24-123" {
		t.Errorf("unexpected native id: %s", j.NativeID)
	}
	if j.Location != "Washington, DC, Remote" {
		t.Errorf("unexpected joined location: %q", j.Location)
	}
	if j.Salary != "88000" {
		t.Errorf("unexpected salary: %q", j.Salary)
	}
	if j.ApplyURL != "https://usajobs.example/apply/123" {
		t.Errorf("unexpected apply url: %q", j.ApplyURL)
	}
}

func TestUSAJobsFetch_MissingCredentials(t *testing.T) {
	f := NewUSAJobsFetcher("", "", "it")

	jobs, err := f.Fetch(context.Background())
	if err != nil {
		t.Fatalf("missing credentials must not be an error, got %v", err)
	}
	if jobs != nil {
		t.Errorf("expected nil jobs, got %v", jobs)
	}
}

func TestUSAJobsFetch_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	f := NewUSAJobsFetcher("bad-key", "me@example.com", "it")
	f.baseURL = srv.URL

	if _, err := f.Fetch(context.Background()); err == nil {
		t.Fatal("expected error for HTTP 401, got nil")
	}
}
