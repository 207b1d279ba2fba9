package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/vytal-health/DashboardBack/internal/models"
	"github.com/vytal-health/DashboardBack/internal/services"
)

type onboardingProfileStore interface {
	CompleteOnboarding(ctx context.Context, userID int64, goalID models.GoalID, intensity models.Intensity) (*models.Profile, error)
}

type OnboardingHandler struct {
	profiles onboardingProfileStore
}

func NewOnboardingHandler(profiles onboardingProfileStore) *OnboardingHandler {
	return &OnboardingHandler{profiles: profiles}
}

type completeOnboardingRequest struct {
	Goal      string `json:"goal"`
	Intensity string `json:"intensity"`
}

// PreviewPlan returns the action set a goal/intensity pair would produce,
// without committing anything. The onboarding UI shows this before the user
// confirms.
func (h *OnboardingHandler) PreviewPlan(c *fiber.Ctx) error {
	goalID := models.GoalID(c.Query("goal"))
	intensity := models.Intensity(c.Query("intensity"))
	if !services.ValidGoalID(goalID) || !services.ValidIntensity(intensity) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid goal or intensity"})
	}

	return c.JSON(fiber.Map{
		"goal":      goalID,
		"intensity": intensity,
		"actions":   services.GenerateActions(goalID, intensity),
	})
}

// CompleteOnboarding commits the goal plus the generated action set in one
// snapshot write. This is the only endpoint that flips onboarding_complete.
func (h *OnboardingHandler) CompleteOnboarding(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req completeOnboardingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	goalID := models.GoalID(req.Goal)
	intensity := models.Intensity(req.Intensity)
	if !services.ValidGoalID(goalID) || !services.ValidIntensity(intensity) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid goal or intensity"})
	}

	profile, err := h.profiles.CompleteOnboarding(c.Context(), userID, goalID, intensity)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to complete onboarding"})
	}

	return c.JSON(fiber.Map{
		"profile":             profile,
		"onboarding_complete": profile.OnboardingComplete,
	})
}
