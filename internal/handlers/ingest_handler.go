package handlers

import (
	"context"
	"log"
	"sync/atomic"

	"github.com/gofiber/fiber/v2"

	"resumegenie/backend/internal/models"
	"resumegenie/backend/internal/services"
)

type IngestHandler struct {
	pipeline services.PipelineService
	running  atomic.Bool
}

func NewIngestHandler(pipeline services.PipelineService) *IngestHandler {
	return &IngestHandler{
		pipeline: pipeline,
	}
}

// HandleIngest handles POST /ingest. Kicks off one pipeline run in the
// background and returns immediately. Overlapping triggers are collapsed
// into the in-flight run.
func (h *IngestHandler) HandleIngest(c *fiber.Ctx) error {
	if !h.running.CompareAndSwap(false, true) {
		return c.Status(fiber.StatusAccepted).JSON(models.IngestResponse{
			Status: "Ingestion already running",
		})
	}

	go func() {
		defer h.running.Store(false)

		// Detached from the request: the run outlives the HTTP exchange.
		report, err := h.pipeline.Run(context.Background())
		if err != nil {
			log.Printf("[ingest] background run failed: %v", err)
			return
		}
		log.Printf("[ingest] run complete: inserted=%d packages_created=%d packages_updated=%d",
			report.Inserted, report.PackagesCreated, report.PackagesUpdated)
	}()

	return c.Status(fiber.StatusAccepted).JSON(models.IngestResponse{
		Status: "Ingestion started in background",
	})
}
