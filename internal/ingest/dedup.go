package ingest

import (
	"resumegenie/backend/internal/models"
)

// Dedup collapses the joined adapter output to one record per distinct
// fingerprint, keeping the first occurrence and its relative order. Single
// pass over the input; a record without a fingerprint is dropped rather than
// kept, since it can never be matched against anything.
func Dedup(jobs []models.Job) []models.Job {
	seen := make(map[string]struct{}, len(jobs))
	out := make([]models.Job, 0, len(jobs))
	for _, j := range jobs {
		if j.Fingerprint == "" {
			continue
		}
		if _, ok := seen[j.Fingerprint]; ok {
			continue
		}
		seen[j.Fingerprint] = struct{}{}
		out = append(out, j)
	}
	return out
}
