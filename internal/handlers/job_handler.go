package handlers

import (
	"github.com/gofiber/fiber/v2"

	"resumegenie/backend/internal/repositories"
)

type JobHandler struct {
	jobRepo repositories.JobRepository
}

func NewJobHandler(jobRepo repositories.JobRepository) *JobHandler {
	return &JobHandler{
		jobRepo: jobRepo,
	}
}

// HandleListJobs handles GET /jobs for the top-N stored jobs by score.
func (h *JobHandler) HandleListJobs(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	if limit <= 0 || limit > 200 {
		limit = 20
	}

	jobs, err := h.jobRepo.ListTopByScore(c.Context(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list jobs",
		})
	}

	return c.JSON(jobs)
}

// HandleExportJobs handles GET /jobs/export, returning every stored job.
func (h *JobHandler) HandleExportJobs(c *fiber.Ctx) error {
	jobs, err := h.jobRepo.ListAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to export jobs",
		})
	}

	return c.JSON(jobs)
}
