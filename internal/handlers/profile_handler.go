package handlers

import (
	"github.com/gofiber/fiber/v2"

	"resumegenie/backend/internal/models"
)

type ProfileHandler struct {
	profilePath string
}

func NewProfileHandler(profilePath string) *ProfileHandler {
	return &ProfileHandler{
		profilePath: profilePath,
	}
}

// HandleGetProfile handles GET /profile. A missing file yields an empty
// profile, not an error, so a fresh install works out of the box.
func (h *ProfileHandler) HandleGetProfile(c *fiber.Ctx) error {
	profile, err := models.LoadProfile(h.profilePath)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to read profile",
		})
	}
	return c.JSON(profile)
}

// HandleSaveProfile handles POST /profile.
func (h *ProfileHandler) HandleSaveProfile(c *fiber.Ctx) error {
	var profile models.Profile
	if err := c.BodyParser(&profile); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid profile payload",
		})
	}

	if err := profile.SaveProfile(h.profilePath); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save profile",
		})
	}

	return c.JSON(fiber.Map{"status": "Profile saved"})
}
