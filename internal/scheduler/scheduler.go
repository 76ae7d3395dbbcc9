// Package scheduler wires up the cron job that periodically triggers a full
// ingestion pipeline run.
package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"resumegenie/backend/internal/services"
)

// Scheduler wraps robfig/cron and owns the periodic ingestion loop.
type Scheduler struct {
	cron     *cron.Cron
	pipeline services.PipelineService
	spec     string // cron spec, e.g. "@every 6h"
}

// New creates a Scheduler that runs the pipeline every intervalHours hours.
func New(pipeline services.PipelineService, intervalHours int) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		pipeline: pipeline,
		spec:     fmt.Sprintf("@every %dh", intervalHours),
	}
}

// Start registers the job and starts the scheduler. Also runs one ingestion
// immediately so the store is populated without waiting for the first tick.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.runOnce(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	log.Printf("[scheduler] cron started with spec %s", s.spec)

	go s.runOnce(ctx)

	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("[scheduler] cron stopped")
}

func (s *Scheduler) runOnce(ctx context.Context) {
	log.Println("[scheduler] ingestion cycle started")

	report, err := s.pipeline.Run(ctx)
	if err != nil {
		log.Printf("[scheduler] ingestion cycle failed: %v", err)
		return
	}

	log.Printf("[scheduler] ingestion cycle complete: fetched=%d deduplicated=%d inserted=%d packages=%d",
		report.Fetched, report.Deduplicated, report.Inserted,
		report.PackagesCreated+report.PackagesUpdated)
}
