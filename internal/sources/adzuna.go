package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
)

const adzunaBaseURL = "https://api.adzuna.com/v1/api/jobs"

const adzunaPageSize = 50

// AdzunaFetcher fetches postings from the Adzuna search API for one country.
// Register one fetcher per configured country code.
type AdzunaFetcher struct {
	appID   string
	appKey  string
	country string // "gb", "us", ...
	keyword string
	baseURL string
	client  *http.Client
}

func NewAdzunaFetcher(appID, appKey, country, keyword string) *AdzunaFetcher {
	return &AdzunaFetcher{
		appID:   appID,
		appKey:  appKey,
		country: country,
		keyword: keyword,
		baseURL: adzunaBaseURL,
		client:  newHTTPClient(),
	}
}

func (f *AdzunaFetcher) Name() string {
	return "adzuna_" + f.country
}

// adzunaResponse mirrors the top-level Adzuna JSON response.
type adzunaResponse struct {
	Results []adzunaResult `json:"results"`
}

type adzunaResult struct {
	ID          json.Number    `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Company     adzunaCompany  `json:"company"`
	Location    adzunaLocation `json:"location"`
	SalaryMin   float64        `json:"salary_min"`
	RedirectURL string         `json:"redirect_url"`
}

type adzunaCompany struct {
	DisplayName string `json:"display_name"`
}

type adzunaLocation struct {
	DisplayName string `json:"display_name"`
}

// Fetch retrieves the first page of matches for the configured keyword.
// Returns nil without error when credentials are missing.
func (f *AdzunaFetcher) Fetch(ctx context.Context) ([]RawJob, error) {
	if f.appID == "" || f.appKey == "" {
		log.Printf("[sources] ADZUNA_APP_ID / ADZUNA_APP_KEY not set, skipping %s", f.Name())
		return nil, nil
	}

	endpoint := fmt.Sprintf("%s/%s/search/1", f.baseURL, f.country)

	params := url.Values{}
	params.Set("app_id", f.appID)
	params.Set("app_key", f.appKey)
	params.Set("results_per_page", strconv.Itoa(adzunaPageSize))
	params.Set("what", f.keyword)
	params.Set("content-type", "application/json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("adzuna %s: %w", f.country, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("adzuna %s: %w", f.country, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("adzuna %s: read body: %w", f.country, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("adzuna %s: unexpected status %d", f.country, resp.StatusCode)
	}

	var apiResp adzunaResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("adzuna %s: %w", f.country, err)
	}

	jobs := make([]RawJob, 0, len(apiResp.Results))
	for _, r := range apiResp.Results {
		var salary string
		if r.SalaryMin > 0 {
			salary = strconv.FormatFloat(r.SalaryMin, 'f', -1, 64)
		}
		jobs = append(jobs, RawJob{
			NativeID:    r.ID.String(),
			Title:       r.Title,
			Company:     r.Company.DisplayName,
			Location:    r.Location.DisplayName,
			Description: r.Description,
			Salary:      salary,
			ApplyURL:    r.RedirectURL,
		})
	}

	return jobs, nil
}
