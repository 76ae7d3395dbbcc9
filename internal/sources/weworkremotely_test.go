package sources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const wwrSample = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:dc="http://purl.org/dc/elements/1.1/">
  <channel>
    <title>We Work Remotely: All Jobs</title>
    <item>
      <title>Acme: Senior Python Developer</title>
      <guid>https://weworkremotely.example/jobs/101</guid>
      <link>https://weworkremotely.example/jobs/101</link>
      <description>Build remote-first data tooling.</description>
      <dc:creator>Acme</dc:creator>
    </item>
    <item>
      <title>Initech: Platform Engineer</title>
      <guid></guid>
      <link>https://weworkremotely.example/jobs/102</link>
      <description>Kubernetes all the way down.</description>
      <dc:creator>Initech</dc:creator>
    </item>
  </channel>
</rss>`

func TestWWRFetch_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(wwrSample))
	}))
	defer srv.Close()

	f := NewWWRFetcher()
	f.baseURL = srv.URL

	jobs, err := f.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}

	j := jobs[0]
	if j.NativeID != "https://weworkremotely.example/jobs/101" {
		t.Errorf("unexpected native id: %s", j.NativeID)
	}
	if j.Company != "Acme" {
		t.Errorf("expected company from dc:creator, got %q", j.Company)
	}
	if j.Location != "Remote" {
		t.Errorf("expected Remote location, got %q", j.Location)
	}

	// Empty guid falls back to the link.
	if jobs[1].NativeID != "https://weworkremotely.example/jobs/102" {
		t.Errorf("expected link fallback, got %s", jobs[1].NativeID)
	}
}

func TestWWRFetch_MalformedXML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<rss><channel><item>`))
	}))
	defer srv.Close()

	f := NewWWRFetcher()
	f.baseURL = srv.URL

	if _, err := f.Fetch(context.Background()); err == nil {
		t.Fatal("expected error for malformed XML, got nil")
	}
}

func TestWWRFetch_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	f := NewWWRFetcher()
	f.baseURL = srv.URL

	if _, err := f.Fetch(context.Background()); err == nil {
		t.Fatal("expected error for HTTP 502, got nil")
	}
}
