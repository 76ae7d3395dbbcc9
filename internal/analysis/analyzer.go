// Package analysis annotates normalized jobs with derived attributes and
// implements the match filter and ranking used before persistence.
package analysis

import (
	"regexp"
	"strings"

	"resumegenie/backend/internal/models"
)

// knownSkills is the vocabulary scanned for in title + description. Matching
// is on word boundaries so "go" does not fire inside "google".
var knownSkills = []string{
	"python", "go", "golang", "java", "javascript", "typescript", "rust",
	"c++", "ruby", "php", "scala", "kotlin", "swift",
	"aws", "gcp", "azure", "kubernetes", "docker", "terraform",
	"postgresql", "postgres", "mysql", "mongodb", "redis", "kafka",
	"react", "vue", "django", "flask", "fastapi", "spring",
	"linux", "git", "ci/cd", "graphql", "grpc", "rest",
	"machine learning", "data engineering", "llm",
}

var remoteMarkers = []string{"remote", "work from home", "anywhere", "distributed"}

var wordBoundary = regexp.MustCompile(`[^a-z0-9+/]+`)

// Analyze populates skills_extracted, seniority, remote_flag and score on a
// job. The score is a cheap heuristic (skill density plus bonuses) good
// enough to produce a stable ordering; relevance quality is explicitly not a
// goal here.
func Analyze(job models.Job) models.Job {
	text := strings.ToLower(job.Title + " " + job.Description)
	tokens := tokenSet(text)

	var skills []string
	for _, skill := range knownSkills {
		if matchSkill(text, tokens, skill) {
			skills = append(skills, skill)
		}
	}
	job.SkillsExtracted = models.StringList(skills)

	job.Seniority = detectSeniority(strings.ToLower(job.Title))
	job.RemoteFlag = detectRemote(strings.ToLower(job.Location), text)

	score := float64(len(skills)) * 10
	if job.RemoteFlag {
		score += 5
	}
	if job.Seniority != "" {
		score += 3
	}
	if len(job.Description) > 500 {
		score += 2
	}
	job.Score = score

	return job
}

func tokenSet(lowered string) map[string]struct{} {
	parts := wordBoundary.Split(lowered, -1)
	set := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		if p != "" {
			set[p] = struct{}{}
		}
	}
	return set
}

func matchSkill(text string, tokens map[string]struct{}, skill string) bool {
	// Multi-word skills fall back to substring matching.
	if strings.ContainsAny(skill, " ") {
		return strings.Contains(text, skill)
	}
	_, ok := tokens[skill]
	return ok
}

func detectSeniority(title string) string {
	switch {
	case strings.Contains(title, "intern"):
		return "intern"
	case strings.Contains(title, "junior") || strings.Contains(title, "entry"):
		return "junior"
	case strings.Contains(title, "staff") || strings.Contains(title, "principal"):
		return "staff"
	case strings.Contains(title, "lead") || strings.Contains(title, "head of"):
		return "lead"
	case strings.Contains(title, "senior") || strings.Contains(title, "sr."):
		return "senior"
	case strings.Contains(title, "mid"):
		return "mid"
	}
	return ""
}

func detectRemote(location, text string) bool {
	for _, marker := range remoteMarkers {
		if strings.Contains(location, marker) || strings.Contains(text, marker) {
			return true
		}
	}
	return false
}
