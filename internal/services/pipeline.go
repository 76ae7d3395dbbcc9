package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"resumegenie/backend/internal/analysis"
	"resumegenie/backend/internal/config"
	"resumegenie/backend/internal/ingest"
	"resumegenie/backend/internal/models"
	"resumegenie/backend/internal/repositories"
)

const defaultRequesterEmail = "demo_user@example.com"

// PipelineService runs the full ingestion pipeline and generates individual
// application packages on demand.
type PipelineService interface {
	// Run executes one batch: fetch → normalize → dedup → analyze → filter →
	// rank → upsert → package generation for the top-ranked jobs. Adapter
	// failures degrade to empty contributions; a storage failure during the
	// job upsert aborts the run (the batch has already rolled back).
	Run(ctx context.Context) (*models.RunReport, error)
	// GeneratePackage builds and persists one application package for a
	// stored job. Returns repositories.ErrJobNotFound when the job id is
	// unknown.
	GeneratePackage(ctx context.Context, jobID, requesterEmail string) (*models.GenerateResponse, error)
}

type pipelineService struct {
	runner        *ingest.Runner
	jobRepo       repositories.JobRepository
	appRepo       repositories.ApplicationRepository
	resume        ResumeService
	github        GithubService
	artifacts     ArtifactStore
	events        EventPublisher
	promptBuilder *PromptBuilder
	criteria      *config.SearchCriteria
	profilePath   string
}

func NewPipelineService(
	runner *ingest.Runner,
	jobRepo repositories.JobRepository,
	appRepo repositories.ApplicationRepository,
	resume ResumeService,
	github GithubService,
	artifacts ArtifactStore,
	events EventPublisher,
	criteria *config.SearchCriteria,
	profilePath string,
) PipelineService {
	return &pipelineService{
		runner:        runner,
		jobRepo:       jobRepo,
		appRepo:       appRepo,
		resume:        resume,
		github:        github,
		artifacts:     artifacts,
		events:        events,
		promptBuilder: NewPromptBuilder(),
		criteria:      criteria,
		profilePath:   profilePath,
	}
}

// Run implements PipelineService.
func (p *pipelineService) Run(ctx context.Context) (*models.RunReport, error) {
	report := &models.RunReport{}

	profile, err := models.LoadProfile(p.profilePath)
	if err != nil {
		return report, fmt.Errorf("pipeline: %w", err)
	}

	log.Println("[pipeline] ingestion started")
	out := p.runner.Run(ctx)
	report.Fetched = out.Fetched
	report.Deduplicated = len(out.Jobs)
	report.FailedSources = out.FailedSources

	analyzed := make([]models.Job, 0, len(out.Jobs))
	for _, job := range out.Jobs {
		analyzed = append(analyzed, analysis.Analyze(job))
	}

	skills := p.criteria.Skills
	if len(skills) == 0 {
		skills = profile.Skills
	}
	matched := analysis.Filter(analyzed, analysis.Criteria{
		Skills:     skills,
		RemoteOnly: p.criteria.RemoteOnly,
	})
	ranked := analysis.Rank(matched)
	report.Matched = len(ranked)

	inserted, err := p.jobRepo.UpsertJobs(ctx, ranked)
	if err != nil {
		return report, fmt.Errorf("pipeline: upsert failed: %w", err)
	}
	report.Inserted = len(inserted)
	log.Printf("[pipeline] upserted %d new jobs (fetched=%d deduplicated=%d matched=%d)",
		report.Inserted, report.Fetched, report.Deduplicated, report.Matched)

	p.generatePackages(ctx, profile, ranked, report)

	if err := p.events.PublishRunReport(ctx, report); err != nil {
		log.Printf("[pipeline] publish run report failed: %v", err)
	}

	return report, nil
}

// generatePackages builds application packages for the top-ranked jobs.
// Every failure here is per-job and additive; earlier successes stay
// committed.
func (p *pipelineService) generatePackages(ctx context.Context, profile *models.Profile, ranked []models.Job, report *models.RunReport) {
	limit := p.criteria.PackageLimit
	if limit > len(ranked) {
		limit = len(ranked)
	}
	if limit == 0 {
		return
	}

	projects, err := p.github.FetchRepos(ctx, profile.GithubUsername)
	if err != nil {
		log.Printf("[pipeline] github enrichment skipped: %v", err)
	}
	profile = p.github.EnrichProfile(profile, projects)

	email := profile.Email
	if email == "" {
		email = defaultRequesterEmail
	}

	for _, job := range ranked[:limit] {
		if ok, issues := analysis.Validate(job); !ok {
			log.Printf("[pipeline] skipping %s: %s", job.ID, strings.Join(issues, ", "))
			continue
		}

		relevant := p.github.FilterRelevantProjects(projects, job)
		resumeText := p.resume.BuildResume(ctx, profile, job, relevant)
		cheatSheet := p.promptBuilder.BuildCheatSheet(profile, job)
		relevance := computeRelevance(profile.Skills, job)

		_, created, err := p.appRepo.SaveApplication(ctx, job.ID, resumeText, cheatSheet, email, &relevance)
		if err != nil {
			log.Printf("[pipeline] failed to save package for %s: %v", job.ID, err)
			continue
		}
		if created {
			report.PackagesCreated++
		} else {
			report.PackagesUpdated++
		}

		if _, err := p.artifacts.SaveResume(job.ID, resumeText); err != nil {
			log.Printf("[pipeline] failed to save resume artifact for %s: %v", job.ID, err)
		}
	}
}

// GeneratePackage implements PipelineService.
func (p *pipelineService) GeneratePackage(ctx context.Context, jobID, requesterEmail string) (*models.GenerateResponse, error) {
	job, err := p.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	profile, err := models.LoadProfile(p.profilePath)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	projects, err := p.github.FetchRepos(ctx, profile.GithubUsername)
	if err != nil {
		log.Printf("[generate] github enrichment skipped: %v", err)
	}
	profile = p.github.EnrichProfile(profile, projects)

	if requesterEmail == "" {
		requesterEmail = profile.Email
	}
	if requesterEmail == "" {
		requesterEmail = defaultRequesterEmail
	}

	relevant := p.github.FilterRelevantProjects(projects, *job)
	resumeText := p.resume.BuildResume(ctx, profile, *job, relevant)
	cheatSheet := p.promptBuilder.BuildCheatSheet(profile, *job)
	relevance := computeRelevance(profile.Skills, *job)

	pkgID, created, err := p.appRepo.SaveApplication(ctx, job.ID, resumeText, cheatSheet, requesterEmail, &relevance)
	if err != nil {
		return nil, err
	}

	resp := &models.GenerateResponse{
		Status:    "Generated",
		PackageID: pkgID.String(),
		Created:   created,
		PreviewMD: resumeText,
	}

	if filename, err := p.artifacts.SaveResume(job.ID, resumeText); err != nil {
		log.Printf("[generate] failed to save resume artifact for %s: %v", job.ID, err)
	} else {
		resp.FileURL = "/static/" + filename
	}

	return resp, nil
}

// computeRelevance scores how well the candidate matches a job: shared
// skills, plus small bonuses for remote roles and mid-or-above seniority.
func computeRelevance(profileSkills []string, job models.Job) float64 {
	have := make(map[string]struct{}, len(profileSkills))
	for _, s := range profileSkills {
		have[strings.ToLower(s)] = struct{}{}
	}

	var overlap int
	for _, s := range job.SkillsExtracted {
		if _, ok := have[strings.ToLower(s)]; ok {
			overlap++
		}
	}

	score := float64(overlap)
	if job.RemoteFlag {
		score++
	}
	switch job.Seniority {
	case "mid", "senior", "lead":
		score++
	}
	return score
}
