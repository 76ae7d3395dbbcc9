package analysis

import (
	"strings"

	"resumegenie/backend/internal/models"
)

// Criteria are the caller-supplied match requirements applied after analysis.
type Criteria struct {
	// Skills must intersect skills_extracted (case-insensitive). Empty list
	// passes every job.
	Skills []string
	// RemoteOnly excludes jobs whose remote flag is false.
	RemoteOnly bool
}

// Filter keeps the jobs satisfying the criteria, preserving input order.
func Filter(jobs []models.Job, criteria Criteria) []models.Job {
	wanted := make(map[string]struct{}, len(criteria.Skills))
	for _, s := range criteria.Skills {
		wanted[strings.ToLower(s)] = struct{}{}
	}

	out := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		if criteria.RemoteOnly && !job.RemoteFlag {
			continue
		}
		if len(wanted) > 0 && !hasSkillOverlap(job.SkillsExtracted, wanted) {
			continue
		}
		out = append(out, job)
	}
	return out
}

func hasSkillOverlap(skills models.StringList, wanted map[string]struct{}) bool {
	for _, s := range skills {
		if _, ok := wanted[strings.ToLower(s)]; ok {
			return true
		}
	}
	return false
}
