package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vytal-health/DashboardBack/internal/reference"
	"github.com/vytal-health/DashboardBack/internal/services"
)

type ProgressHandler struct {
	profiles profileStore
}

func NewProgressHandler(profiles profileStore) *ProgressHandler {
	return &ProgressHandler{profiles: profiles}
}

type projectionResponse struct {
	reference.BiomarkerProjection
	ProgressPercent int `json:"progress_percent"`
}

func (h *ProgressHandler) GetProjections(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	profile, _, err := h.profiles.Load(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load profile"})
	}

	projections := make([]projectionResponse, 0, len(reference.BiomarkerProjections))
	for _, projection := range reference.BiomarkerProjections {
		projections = append(projections, projectionResponse{
			BiomarkerProjection: projection,
			ProgressPercent:     services.ProjectionPercent(projection.Baseline, projection.Current, projection.Target),
		})
	}

	return c.JSON(fiber.Map{
		"projections": projections,
		"weekly":      reference.WeeklyData,
		"streak":      profile.Streak,
		"consistency": profile.Consistency,
		"days_active": profile.DaysActive,
	})
}
