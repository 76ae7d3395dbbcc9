package sources

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
)

const wwrFeedURL = "https://weworkremotely.com/remote-jobs.rss"

// WWRFetcher fetches the We Work Remotely RSS feed.
type WWRFetcher struct {
	baseURL string
	client  *http.Client
}

func NewWWRFetcher() *WWRFetcher {
	return &WWRFetcher{
		baseURL: wwrFeedURL,
		client:  newHTTPClient(),
	}
}

func (f *WWRFetcher) Name() string {
	return "wwr"
}

// wwrFeed mirrors the RSS 2.0 structure of the WWR feed. The dc:creator
// element carries the company name.
type wwrFeed struct {
	XMLName xml.Name  `xml:"rss"`
	Items   []wwrItem `xml:"channel>item"`
}

type wwrItem struct {
	GUID        string `xml:"guid"`
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	Creator     string `xml:"creator"`
}

func (f *WWRFetcher) Fetch(ctx context.Context) ([]RawJob, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("wwr: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("wwr: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("wwr: unexpected status %d", resp.StatusCode)
	}

	var feed wwrFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("wwr: %w", err)
	}

	jobs := make([]RawJob, 0, len(feed.Items))
	for _, item := range feed.Items {
		id := item.GUID
		if id == "" {
			id = item.Link
		}
		jobs = append(jobs, RawJob{
			NativeID:    id,
			Title:       item.Title,
			Company:     item.Creator,
			Description: item.Description,
			Location:    "Remote",
			ApplyURL:    item.Link,
		})
	}

	return jobs, nil
}
