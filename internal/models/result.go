package models

// RunReport summarises one pipeline run. Every count is additive information
// for the caller; a partially failed run still reports what it did commit.
type RunReport struct {
	Fetched         int      `json:"fetched"`
	Deduplicated    int      `json:"deduplicated"`
	Matched         int      `json:"matched"`
	Inserted        int      `json:"inserted"`
	PackagesCreated int      `json:"packages_created"`
	PackagesUpdated int      `json:"packages_updated"`
	FailedSources   []string `json:"failed_sources,omitempty"`
}

type IngestResponse struct {
	Status string `json:"status"`
}

type GenerateRequest struct {
	RequesterEmail string `json:"requester_email"`
}

type GenerateResponse struct {
	Status    string `json:"status"`
	PackageID string `json:"package_id"`
	Created   bool   `json:"created"`
	PreviewMD string `json:"preview_md"`
	FileURL   string `json:"file_url,omitempty"`
}

type PackageResponse struct {
	ID             string     `json:"id"`
	JobID          string     `json:"job_id"`
	RequesterEmail string     `json:"requester_email"`
	ResumeText     string     `json:"resume_text"`
	CheatSheet     CheatSheet `json:"cheat_sheet"`
	RelevanceScore *float64   `json:"relevance_score,omitempty"`
}
