package analysis

import (
	"sort"

	"resumegenie/backend/internal/models"
)

// Rank orders jobs by score, highest first. The sort is stable: equal scores
// keep the relative order the filter stage produced.
func Rank(jobs []models.Job) []models.Job {
	out := make([]models.Job, len(jobs))
	copy(out, jobs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}
