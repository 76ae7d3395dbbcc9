package main

import (
	"context"
	"log"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"resumegenie/backend/internal/config"
	"resumegenie/backend/internal/ingest"
	"resumegenie/backend/internal/repositories"
	"resumegenie/backend/internal/services"
	"resumegenie/backend/internal/sources"
)

var rootCmd = &cobra.Command{
	Use:   "resumegenie",
	Short: "Job aggregation and application package service",
	Long:  "ResumeGenie fetches postings from several job boards, deduplicates and ranks them, and generates tailored application packages.",
	// Bare `resumegenie` runs the API server, matching how the container
	// entrypoint invokes the binary.
	RunE: runServe,
}

// application bundles everything the commands wire up from config.
type application struct {
	cfg       *config.Config
	db        *gorm.DB
	jobRepo   repositories.JobRepository
	appRepo   repositories.ApplicationRepository
	pipeline  services.PipelineService
	artifacts services.ArtifactStore
}

func buildApplication(ctx context.Context) (*application, error) {
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	criteria, err := config.LoadSearchCriteria(cfg.Pipeline.SearchPath)
	if err != nil {
		return nil, err
	}
	log.Printf("✅ Search criteria loaded (keyword=%s, package_limit=%d)", criteria.Keyword, criteria.PackageLimit)

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return nil, err
	}

	jobRepo := repositories.NewJobRepository(db)
	appRepo := repositories.NewApplicationRepository(db)
	log.Println("✅ Repositories initialized successfully")

	artifacts := services.NewArtifactStore(cfg.Storage.OutputPath)
	if err := artifacts.EnsureOutputDir(); err != nil {
		return nil, err
	}

	var generator services.TextGenerator
	if cfg.Gemini.APIKey != "" {
		generator, err = services.NewGeminiGenerator(ctx, cfg.Gemini.APIKey, cfg.Gemini.Models)
		if err != nil {
			return nil, err
		}
		log.Println("✅ Gemini AI initialized successfully")
	} else {
		log.Println("GEMINI_API_KEY not set, resumes will use the local fallback format")
	}

	var events services.EventPublisher = services.NopPublisher{}
	if cfg.Redis.URL != "" {
		events, err = services.NewRedisPublisher(cfg.Redis.URL, cfg.Redis.Channel)
		if err != nil {
			return nil, err
		}
		log.Println("✅ Redis event publisher initialized")
	}

	runner := ingest.NewRunner(buildFetchers(cfg, criteria), cfg.Pipeline.Concurrency)

	pipeline := services.NewPipelineService(
		runner,
		jobRepo,
		appRepo,
		services.NewResumeService(generator),
		services.NewGithubService(),
		artifacts,
		events,
		criteria,
		cfg.Pipeline.ProfilePath,
	)
	log.Println("✅ Pipeline service initialized")

	return &application{
		cfg:       cfg,
		db:        db,
		jobRepo:   jobRepo,
		appRepo:   appRepo,
		pipeline:  pipeline,
		artifacts: artifacts,
	}, nil
}

// buildFetchers registers every configured source adapter. Adapters missing
// credentials still register; they skip themselves at fetch time.
func buildFetchers(cfg *config.Config, criteria *config.SearchCriteria) []sources.Fetcher {
	var fetchers []sources.Fetcher

	for _, country := range criteria.Countries {
		fetchers = append(fetchers, sources.NewAdzunaFetcher(
			cfg.Sources.AdzunaAppID,
			cfg.Sources.AdzunaAppKey,
			country,
			criteria.Keyword,
		))
	}

	fetchers = append(fetchers,
		sources.NewRemoteOKFetcher(),
		sources.NewWWRFetcher(),
		sources.NewHNFetcher(criteria.Keyword),
		sources.NewUSAJobsFetcher(
			cfg.Sources.USAJobsAPIKey,
			cfg.Sources.USAJobsUserAgent,
			criteria.Keyword,
		),
	)

	return fetchers
}
