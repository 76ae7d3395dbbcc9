package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
)

const usaJobsURL = "https://data.usajobs.gov/api/search"

// USAJobsFetcher fetches federal postings from the USAJOBS search API.
// The API requires both a developer key and a descriptive User-Agent with a
// contact email.
type USAJobsFetcher struct {
	apiKey    string
	userAgent string
	keyword   string
	baseURL   string
	client    *http.Client
}

func NewUSAJobsFetcher(apiKey, userAgent, keyword string) *USAJobsFetcher {
	return &USAJobsFetcher{
		apiKey:    apiKey,
		userAgent: userAgent,
		keyword:   keyword,
		baseURL:   usaJobsURL,
		client:    newHTTPClient(),
	}
}

func (f *USAJobsFetcher) Name() string {
	return "usajobs"
}

type usaJobsResponse struct {
	SearchResult struct {
		SearchResultItems []usaJobsItem `json:"SearchResultItems"`
	} `json:"SearchResult"`
}

type usaJobsItem struct {
	MatchedObjectDescriptor usaJobsDescriptor `json:"MatchedObjectDescriptor"`
}

type usaJobsDescriptor struct {
	PositionID       string `json:"PositionID"`
	PositionTitle    string `json:"PositionTitle"`
	OrganizationName string `json:"OrganizationName"`
	PositionLocation []struct {
		LocationName string `json:"LocationName"`
	} `json:"PositionLocation"`
	PositionRemuneration []struct {
		MinimumRange string `json:"MinimumRange"`
	} `json:"PositionRemuneration"`
	ApplyURI []string `json:"ApplyURI"`
	UserArea struct {
		Details struct {
			JobSummary string `json:"JobSummary"`
		} `json:"Details"`
	} `json:"UserArea"`
}

// Fetch retrieves the first page of keyword matches. Returns nil without
// error when the key or user agent is missing.
func (f *USAJobsFetcher) Fetch(ctx context.Context) ([]RawJob, error) {
	if f.apiKey == "" || f.userAgent == "" {
		log.Println("[sources] USAJOBS_API_KEY / USAJOBS_USER_AGENT not set, skipping usajobs")
		return nil, nil
	}

	params := url.Values{}
	params.Set("Page", "1")
	params.Set("ResultsPerPage", "25")
	params.Set("Keyword", f.keyword)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("usajobs: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization-Key", f.apiKey)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("usajobs: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("usajobs: unexpected status %d", resp.StatusCode)
	}

	var apiResp usaJobsResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("usajobs: %w", err)
	}

	items := apiResp.SearchResult.SearchResultItems
	jobs := make([]RawJob, 0, len(items))
	for _, item := range items {
		pos := item.MatchedObjectDescriptor

		var locations []string
		for _, l := range pos.PositionLocation {
			locations = append(locations, l.LocationName)
		}

		var salary string
		if len(pos.PositionRemuneration) > 0 {
			salary = pos.PositionRemuneration[0].MinimumRange
		}

		var applyURL string
		if len(pos.ApplyURI) > 0 {
			applyURL = pos.ApplyURI[0]
		}

		jobs = append(jobs, RawJob{
			NativeID:    pos.PositionID,
			Title:       pos.PositionTitle,
			Company:     pos.OrganizationName,
			Description: pos.UserArea.Details.JobSummary,
			Location:    strings.Join(locations, ", "),
			Salary:      salary,
			ApplyURL:    applyURL,
		})
	}

	return jobs, nil
}
