package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/vytal-health/DashboardBack/internal/models"
	"github.com/vytal-health/DashboardBack/internal/services"
)

type actionLedger interface {
	LogAction(ctx context.Context, userID int64, actionID string, status models.ActionStatus) (*models.Profile, bool, error)
}

type ActionsHandler struct {
	profiles profileStore
	ledger   actionLedger
}

func NewActionsHandler(profiles profileStore, ledger actionLedger) *ActionsHandler {
	return &ActionsHandler{profiles: profiles, ledger: ledger}
}

type logActionRequest struct {
	Status string `json:"status"`
}

func (h *ActionsHandler) ListActions(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	profile, _, err := h.profiles.Load(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load profile"})
	}

	return c.JSON(fiber.Map{
		"actions":     profile.Actions,
		"consistency": profile.Consistency,
		"streak":      profile.Streak,
	})
}

// LogAction toggles one action's daily status. An unknown action id is not
// an error: the response carries logged=false and the profile unchanged.
func (h *ActionsHandler) LogAction(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	actionID := c.Params("id")
	if actionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid action id"})
	}

	var req logActionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	status := models.ActionStatus(req.Status)
	if status != models.ActionPending && status != models.ActionCompleted {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "status must be pending or completed"})
	}

	profile, logged, err := h.ledger.LogAction(c.Context(), userID, actionID, status)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to log action"})
	}

	return c.JSON(fiber.Map{
		"profile": profile,
		"logged":  logged,
	})
}

func (h *ActionsHandler) GetStats(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	profile, _, err := h.profiles.Load(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load profile"})
	}

	return c.JSON(fiber.Map{
		"completion_rate": services.CompletionRate(profile),
		"avg_streak":      services.AvgStreak(profile),
		"consistency":     profile.Consistency,
		"streak":          profile.Streak,
		"days_active":     profile.DaysActive,
		"completed_today": profile.CompletedToday(),
		"total_actions":   len(profile.Actions),
	})
}
