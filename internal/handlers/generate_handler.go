package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resumegenie/backend/internal/models"
	"resumegenie/backend/internal/repositories"
	"resumegenie/backend/internal/services"
)

type GenerateHandler struct {
	pipeline services.PipelineService
	appRepo  repositories.ApplicationRepository
}

func NewGenerateHandler(pipeline services.PipelineService, appRepo repositories.ApplicationRepository) *GenerateHandler {
	return &GenerateHandler{
		pipeline: pipeline,
		appRepo:  appRepo,
	}
}

// HandleGenerate handles POST /generate/*. Builds and persists an
// application package for one stored job. Job ids can contain slashes (RSS
// guids are URLs), hence the wildcard route.
func (h *GenerateHandler) HandleGenerate(c *fiber.Ctx) error {
	jobID := c.Params("*")
	if jobID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job id is required",
		})
	}

	var req models.GenerateRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request payload",
			})
		}
	}

	resp, err := h.pipeline.GeneratePackage(c.Context(), jobID, req.RequesterEmail)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Job not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate package",
		})
	}

	return c.JSON(resp)
}

// HandleListPackages handles GET /packages?job_id=. The job id is a query
// parameter rather than a path segment because ids embed URLs.
func (h *GenerateHandler) HandleListPackages(c *fiber.Ctx) error {
	jobID := c.Query("job_id")
	if jobID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_id query parameter is required",
		})
	}

	pkgs, err := h.appRepo.FindByJobID(c.Context(), jobID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list packages",
		})
	}

	out := make([]models.PackageResponse, 0, len(pkgs))
	for _, pkg := range pkgs {
		out = append(out, models.PackageResponse{
			ID:             pkg.ID.String(),
			JobID:          pkg.JobID,
			RequesterEmail: pkg.RequesterEmail,
			ResumeText:     pkg.ResumeText,
			CheatSheet:     pkg.CheatSheet,
			RelevanceScore: pkg.RelevanceScore,
		})
	}
	return c.JSON(out)
}

// HandleGetPackage handles GET /packages/:id.
func (h *GenerateHandler) HandleGetPackage(c *fiber.Ctx) error {
	pkgID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid package ID format",
		})
	}

	pkg, err := h.appRepo.FindByID(c.Context(), pkgID)
	if err != nil {
		if errors.Is(err, repositories.ErrPackageNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Package not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to find package",
		})
	}

	return c.JSON(models.PackageResponse{
		ID:             pkg.ID.String(),
		JobID:          pkg.JobID,
		RequesterEmail: pkg.RequesterEmail,
		ResumeText:     pkg.ResumeText,
		CheatSheet:     pkg.CheatSheet,
		RelevanceScore: pkg.RelevanceScore,
	})
}
