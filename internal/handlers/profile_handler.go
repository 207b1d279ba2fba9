package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/vytal-health/DashboardBack/internal/models"
	"github.com/vytal-health/DashboardBack/internal/services"
)

type profileStore interface {
	Load(ctx context.Context, userID int64) (*models.Profile, services.LoadSource, error)
	Update(ctx context.Context, userID int64, input services.UpdateProfileInput) (*models.Profile, error)
	SetGoal(ctx context.Context, userID int64, goal models.Goal) (*models.Profile, error)
	Reset(ctx context.Context, userID int64) (*models.Profile, error)
}

type ProfileHandler struct {
	profiles profileStore
}

func NewProfileHandler(profiles profileStore) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

type updateProfileRequest struct {
	Name             *string `json:"name"`
	ChronologicalAge *int    `json:"chronological_age"`
	BiologicalAge    *int    `json:"biological_age"`
	HealthScore      *int    `json:"health_score"`
	DaysActive       *int    `json:"days_active"`
}

type setGoalRequest struct {
	ID        string `json:"id"`
	Intensity string `json:"intensity"`
}

func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	profile, source, err := h.profiles.Load(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load profile"})
	}

	return c.JSON(fiber.Map{
		"profile": profile,
		"source":  source,
	})
}

func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if validationErr := validateProfileUpdateRequest(req); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr})
	}

	profile, err := h.profiles.Update(c.Context(), userID, services.UpdateProfileInput{
		Name:             req.Name,
		ChronologicalAge: req.ChronologicalAge,
		BiologicalAge:    req.BiologicalAge,
		HealthScore:      req.HealthScore,
		DaysActive:       req.DaysActive,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update profile"})
	}

	return c.JSON(fiber.Map{"profile": profile})
}

func (h *ProfileHandler) SetGoal(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req setGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	goalID := models.GoalID(req.ID)
	intensity := models.Intensity(req.Intensity)
	if !services.ValidGoalID(goalID) || !services.ValidIntensity(intensity) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid goal or intensity"})
	}

	profile, err := h.profiles.SetGoal(c.Context(), userID, models.Goal{ID: goalID, Intensity: intensity})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to set goal"})
	}

	return c.JSON(fiber.Map{"profile": profile})
}

func (h *ProfileHandler) ResetProfile(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	profile, err := h.profiles.Reset(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to reset profile"})
	}

	return c.JSON(fiber.Map{"profile": profile})
}

func validateProfileUpdateRequest(req updateProfileRequest) string {
	if req.Name != nil && *req.Name == "" {
		return "name must not be empty"
	}
	if req.ChronologicalAge != nil && *req.ChronologicalAge <= 0 {
		return "chronological_age must be greater than 0"
	}
	if req.BiologicalAge != nil && *req.BiologicalAge <= 0 {
		return "biological_age must be greater than 0"
	}
	if req.HealthScore != nil && (*req.HealthScore < 0 || *req.HealthScore > 100) {
		return "health_score must be between 0 and 100"
	}
	if req.DaysActive != nil && *req.DaysActive < 1 {
		return "days_active must be at least 1"
	}
	return ""
}
