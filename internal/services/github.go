package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"resumegenie/backend/internal/models"
)

const githubAPIBase = "https://api.github.com"

// Project is one public repository used to enrich the candidate profile and
// to pick relevant work for a tailored resume.
type Project struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Language    string   `json:"language"`
	Topics      []string `json:"topics"`
	Stars       int      `json:"stargazers_count"`
}

type GithubService interface {
	FetchRepos(ctx context.Context, username string) ([]Project, error)
	EnrichProfile(profile *models.Profile, projects []Project) *models.Profile
	FilterRelevantProjects(projects []Project, job models.Job) []Project
}

type githubService struct {
	baseURL string
	client  *http.Client
}

func NewGithubService() GithubService {
	return &githubService{
		baseURL: githubAPIBase,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchRepos implements GithubService. Returns nil without error when no
// username is configured.
func (g *githubService) FetchRepos(ctx context.Context, username string) ([]Project, error) {
	if username == "" {
		return nil, nil
	}

	url := fmt.Sprintf("%s/users/%s/repos?per_page=50&sort=updated", g.baseURL, username)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("github fetch for %s: %w", username, err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("github fetch for %s: %w", username, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github fetch for %s: unexpected status %d", username, resp.StatusCode)
	}

	var projects []Project
	if err := json.NewDecoder(resp.Body).Decode(&projects); err != nil {
		return nil, fmt.Errorf("github fetch for %s: %w", username, err)
	}
	return projects, nil
}

// EnrichProfile implements GithubService. Repo languages and topics become
// profile skills when not already present. The input profile is not mutated.
func (g *githubService) EnrichProfile(profile *models.Profile, projects []Project) *models.Profile {
	enriched := *profile
	enriched.Skills = append([]string{}, profile.Skills...)

	have := make(map[string]struct{}, len(enriched.Skills))
	for _, s := range enriched.Skills {
		have[strings.ToLower(s)] = struct{}{}
	}

	add := func(skill string) {
		skill = strings.TrimSpace(skill)
		if skill == "" {
			return
		}
		key := strings.ToLower(skill)
		if _, ok := have[key]; ok {
			return
		}
		have[key] = struct{}{}
		enriched.Skills = append(enriched.Skills, skill)
	}

	for _, p := range projects {
		add(p.Language)
		for _, t := range p.Topics {
			add(t)
		}
	}

	return &enriched
}

// FilterRelevantProjects implements GithubService. A project is relevant when
// its language, topics, name or description overlap the job's extracted
// skills.
func (g *githubService) FilterRelevantProjects(projects []Project, job models.Job) []Project {
	if len(job.SkillsExtracted) == 0 {
		return nil
	}

	var relevant []Project
	for _, p := range projects {
		haystack := strings.ToLower(strings.Join(append([]string{p.Name, p.Description, p.Language}, p.Topics...), " "))
		for _, skill := range job.SkillsExtracted {
			if skill != "" && strings.Contains(haystack, strings.ToLower(skill)) {
				relevant = append(relevant, p)
				break
			}
		}
	}
	return relevant
}
