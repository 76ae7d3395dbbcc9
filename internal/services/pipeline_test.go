package services

import (
	"testing"

	"resumegenie/backend/internal/models"
)

func TestComputeRelevance(t *testing.T) {
	tests := []struct {
		name   string
		skills []string
		job    models.Job
		want   float64
	}{
		{
			name:   "skill overlap only",
			skills: []string{"go", "python"},
			job:    models.Job{SkillsExtracted: models.StringList{"go", "python", "kafka"}},
			want:   2,
		},
		{
			name:   "remote bonus",
			skills: []string{"go"},
			job:    models.Job{SkillsExtracted: models.StringList{"go"}, RemoteFlag: true},
			want:   2,
		},
		{
			name:   "seniority bonus",
			skills: []string{"go"},
			job:    models.Job{SkillsExtracted: models.StringList{"go"}, Seniority: "senior"},
			want:   2,
		},
		{
			name:   "intern gets no seniority bonus",
			skills: []string{"go"},
			job:    models.Job{SkillsExtracted: models.StringList{"go"}, Seniority: "intern"},
			want:   1,
		},
		{
			name:   "case-insensitive overlap",
			skills: []string{"Go"},
			job:    models.Job{SkillsExtracted: models.StringList{"GO"}},
			want:   1,
		},
		{
			name: "no overlap no bonuses",
			job:  models.Job{SkillsExtracted: models.StringList{"cobol"}},
			want: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := computeRelevance(tc.skills, tc.job); got != tc.want {
				t.Errorf("computeRelevance = %v, want %v", got, tc.want)
			}
		})
	}
}
