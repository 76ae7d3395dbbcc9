package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const remoteOKURL = "https://remoteok.com/api"

// RemoteOKFetcher fetches the public RemoteOK feed. No credentials needed.
type RemoteOKFetcher struct {
	baseURL string
	client  *http.Client
}

func NewRemoteOKFetcher() *RemoteOKFetcher {
	return &RemoteOKFetcher{
		baseURL: remoteOKURL,
		client:  newHTTPClient(),
	}
}

func (f *RemoteOKFetcher) Name() string {
	return "remoteok"
}

type remoteOKItem struct {
	ID          json.Number `json:"id"`
	Position    string      `json:"position"`
	Company     string      `json:"company"`
	Description string      `json:"description"`
	Location    string      `json:"location"`
	Salary      string      `json:"salary"`
	URL         string      `json:"url"`
}

// Fetch retrieves the full RemoteOK feed. The first element of the feed is a
// legal/metadata blob, not a job, and is skipped.
func (f *RemoteOKFetcher) Fetch(ctx context.Context) ([]RawJob, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("remoteok: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("remoteok: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("remoteok: unexpected status %d", resp.StatusCode)
	}

	var items []remoteOKItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("remoteok: %w", err)
	}

	if len(items) > 0 {
		items = items[1:]
	}

	jobs := make([]RawJob, 0, len(items))
	for _, item := range items {
		location := item.Location
		if location == "" {
			location = "Remote"
		}
		jobs = append(jobs, RawJob{
			NativeID:    item.ID.String(),
			Title:       item.Position,
			Company:     item.Company,
			Description: item.Description,
			Location:    location,
			Salary:      item.Salary,
			ApplyURL:    item.URL,
		})
	}

	return jobs, nil
}
