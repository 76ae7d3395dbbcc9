package analysis

import (
	"strings"

	"resumegenie/backend/internal/models"
)

// minDescriptionLen below which a posting is considered too hollow to be a
// real opening worth tailoring a resume for.
const minDescriptionLen = 120

// Validate screens a job for ghost-posting signals before an application
// package is generated for it. Invalid jobs stay in storage and in rankings;
// they just don't get packages.
func Validate(job models.Job) (bool, []string) {
	var issues []string

	if strings.TrimSpace(job.Title) == "" {
		issues = append(issues, "missing title")
	}
	if strings.TrimSpace(job.Company) == "" {
		issues = append(issues, "missing company")
	}
	if job.ApplyURL == "" {
		issues = append(issues, "no apply url")
	}
	if len(strings.TrimSpace(job.Description)) < minDescriptionLen {
		issues = append(issues, "description too short")
	}

	return len(issues) == 0, issues
}
