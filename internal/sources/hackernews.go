package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

const hnSearchURL = "https://hn.algolia.com/api/v1/search"

// HNFetcher fetches job postings from the Hacker News Algolia search API.
type HNFetcher struct {
	keyword string
	baseURL string
	client  *http.Client
}

func NewHNFetcher(keyword string) *HNFetcher {
	return &HNFetcher{
		keyword: keyword,
		baseURL: hnSearchURL,
		client:  newHTTPClient(),
	}
}

func (f *HNFetcher) Name() string {
	return "hn"
}

type hnResponse struct {
	Hits []hnHit `json:"hits"`
}

type hnHit struct {
	ObjectID  string `json:"objectID"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	StoryText string `json:"story_text"`
	URL       string `json:"url"`
}

func (f *HNFetcher) Fetch(ctx context.Context) ([]RawJob, error) {
	params := url.Values{}
	params.Set("query", f.keyword)
	params.Set("tags", "job")
	params.Set("page", "0")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("hn: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("hn: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("hn: unexpected status %d", resp.StatusCode)
	}

	var apiResp hnResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("hn: %w", err)
	}

	jobs := make([]RawJob, 0, len(apiResp.Hits))
	for _, h := range apiResp.Hits {
		description := h.StoryText
		if description == "" {
			description = h.Title
		}
		applyURL := h.URL
		if applyURL == "" {
			applyURL = "https://news.ycombinator.com/item?id=" + h.ObjectID
		}
		jobs = append(jobs, RawJob{
			NativeID:    h.ObjectID,
			Title:       h.Title,
			Company:     h.Author,
			Description: description,
			Location:    "Remote",
			ApplyURL:    applyURL,
		})
	}

	return jobs, nil
}
