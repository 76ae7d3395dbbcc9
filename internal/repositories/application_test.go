package repositories

import (
	"testing"

	"resumegenie/backend/internal/models"
)

func floatPtr(f float64) *float64 { return &f }

func TestShouldUpdateScore(t *testing.T) {
	tests := []struct {
		name     string
		stored   *float64
		incoming *float64
		want     bool
	}{
		{"no incoming score", floatPtr(5), nil, false},
		{"no stored score", nil, floatPtr(1), true},
		{"both absent", nil, nil, false},
		{"strictly higher", floatPtr(3), floatPtr(4), true},
		{"equal", floatPtr(3), floatPtr(3), false},
		{"lower is ignored", floatPtr(3), floatPtr(2), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := shouldUpdateScore(tc.stored, tc.incoming); got != tc.want {
				t.Errorf("shouldUpdateScore(%v, %v) = %v, want %v", tc.stored, tc.incoming, got, tc.want)
			}
		})
	}
}

func TestEmbedRequester(t *testing.T) {
	original := models.CheatSheet{"job_title": "Engineer"}

	sheet := embedRequester(original, "dev@example.com", floatPtr(4))

	if sheet["requester_email"] != "dev@example.com" {
		t.Errorf("unexpected requester_email: %v", sheet["requester_email"])
	}
	if sheet["relevance_score"] != 4.0 {
		t.Errorf("unexpected relevance_score: %v", sheet["relevance_score"])
	}
	if sheet["job_title"] != "Engineer" {
		t.Errorf("original keys must carry over, got %v", sheet)
	}
	if _, ok := original["requester_email"]; ok {
		t.Error("embedRequester must not mutate its input")
	}
}

func TestEmbedRequester_OmitsEmptyFields(t *testing.T) {
	sheet := embedRequester(nil, "", nil)
	if len(sheet) != 0 {
		t.Errorf("expected empty sheet, got %v", sheet)
	}
}
