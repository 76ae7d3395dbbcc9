package services

import (
	"strings"
	"testing"

	"resumegenie/backend/internal/models"
)

func TestBuildResumePrompt(t *testing.T) {
	pb := NewPromptBuilder()
	profile := &models.Profile{
		Skills: []string{"go", "postgresql"},
		Experience: []models.ExperienceEntry{
			{Action: "Led migration", Context: "monolith to services", Result: "cut deploy time 80%"},
		},
	}
	job := models.Job{
		Title:       "Platform Engineer",
		Company:     "Acme",
		Description: "Own the deployment platform.",
	}

	prompt := pb.BuildResumePrompt(profile, job, []Project{{Name: "infra-cli", Description: "Terraform wrapper"}})

	for _, want := range []string{
		"JOB TITLE: Platform Engineer",
		"COMPANY: Acme",
		"go, postgresql",
		"Led migration",
		"infra-cli: Terraform wrapper",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildResumePrompt_TruncatesLongDescriptions(t *testing.T) {
	pb := NewPromptBuilder()
	job := models.Job{Description: strings.Repeat("long ", 1000)}

	prompt := pb.BuildResumePrompt(&models.Profile{}, job, nil)
	if strings.Count(prompt, "long") > 400 {
		t.Error("expected the description to be truncated in the prompt")
	}
}

func TestBuildCheatSheet(t *testing.T) {
	pb := NewPromptBuilder()
	profile := &models.Profile{
		Skills:          []string{"a", "b", "c", "d", "e", "f", "g"},
		YearsExperience: 6,
		WorkAuth:        "US Citizen",
	}
	job := models.Job{ID: "hn_1", Title: "Engineer", Company: "Acme"}

	sheet := pb.BuildCheatSheet(profile, job)

	if sheet["job_id"] != "hn_1" || sheet["job_title"] != "Engineer" || sheet["company"] != "Acme" {
		t.Errorf("unexpected job fields: %v", sheet)
	}
	if sheet["primary_stack"] != "a, b, c, d, e" {
		t.Errorf("primary stack should cap at five skills, got %v", sheet["primary_stack"])
	}
	if sheet["years_experience"] != 6 {
		t.Errorf("unexpected years_experience: %v", sheet["years_experience"])
	}
	if sheet["salary_expectation"] != "Negotiable" {
		t.Errorf("empty salary expectation should default to Negotiable, got %v", sheet["salary_expectation"])
	}

	// These are stamped by the persistence layer, never here.
	if _, ok := sheet["requester_email"]; ok {
		t.Error("cheat sheet must not contain requester_email at build time")
	}
}
