package services

import (
	"fmt"
	"strings"

	"resumegenie/backend/internal/models"
)

// promptDescLen caps how much of the posting goes into the prompt. Counting
// runes keeps the cut stable across encodings.
const promptDescLen = 1500

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildResumePrompt creates the prompt for a tailored resume.
func (pb *PromptBuilder) BuildResumePrompt(profile *models.Profile, job models.Job, projects []Project) string {
	var experience []string
	for _, exp := range profile.Experience {
		experience = append(experience, fmt.Sprintf("Action: %s, Context: %s, Result: %s", exp.Action, exp.Context, exp.Result))
	}

	var projectLines []string
	for _, p := range projects {
		projectLines = append(projectLines, fmt.Sprintf("%s: %s", p.Name, truncateRunes(p.Description, 120)))
	}

	return fmt.Sprintf(`You are an ATS optimization assistant and a skilled resume writer. Generate a tailored resume in Markdown for the job below, using only the candidate's real skills and experience.

JOB TITLE: %s
COMPANY: %s
JOB DESCRIPTION:
%s

CANDIDATE SKILLS: %s
EXPERIENCE: %s
PROJECTS:
%s

Output a complete Markdown resume with these sections:
1. Summary (2 sentences)
2. Core Skills (comma separated)
3. Achievements (Action → Context → Result bullets, 3-5 items)
4. Relevant Projects

Do not invent skills the candidate does not have.`,
		job.Title,
		job.Company,
		truncateRunes(job.Description, promptDescLen),
		strings.Join(profile.Skills, ", "),
		strings.Join(experience, "; "),
		strings.Join(projectLines, "\n"),
	)
}

// BuildCheatSheet assembles the interview metadata stored alongside the
// resume. requester_email and relevance_score are stamped in later by the
// persistence layer, not here.
func (pb *PromptBuilder) BuildCheatSheet(profile *models.Profile, job models.Job) models.CheatSheet {
	primaryStack := profile.Skills
	if len(primaryStack) > 5 {
		primaryStack = primaryStack[:5]
	}

	salary := profile.SalaryExpectation
	if salary == "" {
		salary = "Negotiable"
	}

	return models.CheatSheet{
		"job_id":             job.ID,
		"job_title":          job.Title,
		"company":            job.Company,
		"primary_stack":      strings.Join(primaryStack, ", "),
		"years_experience":   profile.YearsExperience,
		"work_auth":          profile.WorkAuth,
		"salary_expectation": salary,
	}
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
