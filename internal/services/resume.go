package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"resumegenie/backend/internal/models"
)

type ResumeService interface {
	// BuildResume returns the tailored resume text for a job. When every
	// generation model fails it falls back to a deterministic local format,
	// so the returned text is never empty.
	BuildResume(ctx context.Context, profile *models.Profile, job models.Job, projects []Project) string
}

type resumeService struct {
	generator     TextGenerator // nil disables LLM generation entirely
	promptBuilder *PromptBuilder
}

func NewResumeService(generator TextGenerator) ResumeService {
	return &resumeService{
		generator:     generator,
		promptBuilder: NewPromptBuilder(),
	}
}

// BuildResume implements ResumeService.
func (s *resumeService) BuildResume(ctx context.Context, profile *models.Profile, job models.Job, projects []Project) string {
	if s.generator != nil {
		prompt := s.promptBuilder.BuildResumePrompt(profile, job, projects)
		text, err := s.generator.Generate(ctx, prompt)
		if err == nil && strings.TrimSpace(text) != "" {
			return text
		}
		log.Printf("[resume] generation failed for job %s, using local fallback: %v", job.ID, err)
	}

	return FormatLocalResume(profile, job, projects)
}

// FormatLocalResume is the deterministic fallback: a plain Markdown resume
// built purely from the profile and the job, no model involved.
func FormatLocalResume(profile *models.Profile, job models.Job, projects []Project) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Resume Target: %s\n", job.Title)
	fmt.Fprintf(&b, "Company: %s\n", job.Company)

	b.WriteString("## Key Skills\n")
	skills := append([]string{}, profile.Skills...)
	sort.Strings(skills)
	b.WriteString(strings.Join(skills, ", "))
	b.WriteString("\n")

	if len(projects) > 0 {
		b.WriteString("## Relevant Projects\n")
		for _, p := range projects {
			fmt.Fprintf(&b, "- %s: %s\n", p.Name, truncateRunes(p.Description, 80))
		}
	}

	b.WriteString("## Experience (Action → Context → Result)\n")
	for _, exp := range profile.Experience {
		fmt.Fprintf(&b, "- Action: %s\n  Context: %s\n  Result: %s\n", exp.Action, exp.Context, exp.Result)
	}

	return b.String()
}
