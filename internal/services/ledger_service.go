package services

import (
	"context"
	"math"

	"github.com/vytal-health/DashboardBack/internal/models"
	"github.com/vytal-health/DashboardBack/internal/observability"
)

// LedgerService applies the daily-completion rule for a single action and
// recomputes the profile-level aggregates in the same snapshot write.
type LedgerService struct {
	profiles *ProfileService
}

func NewLedgerService(profiles *ProfileService) *LedgerService {
	return &LedgerService{profiles: profiles}
}

// LogAction toggles one action's completion status. An unknown action id or
// a repeat of the current status is a no-op: the current profile is returned
// with logged=false and nothing is written.
func (s *LedgerService) LogAction(ctx context.Context, userID int64, actionID string, status models.ActionStatus) (*models.Profile, bool, error) {
	if status != models.ActionPending && status != models.ActionCompleted {
		return nil, false, ErrInvalidInput
	}

	profile, _, err := s.profiles.Load(ctx, userID)
	if err != nil {
		return nil, false, err
	}

	if !ApplyLogAction(profile, actionID, status) {
		return profile, false, nil
	}

	if err := s.profiles.persist(ctx, userID, profile); err != nil {
		return nil, false, err
	}

	observability.RecordActionLogged(string(status))
	return profile, true, nil
}

// ApplyLogAction mutates the profile in place according to the ledger rule
// and reports whether anything changed.
//
// Target action: completing increments its streak and total; un-marking
// resets the streak to zero and leaves the total alone. Profile streak only
// ever increments, and only when this toggle completes the last pending
// action; un-marking never decrements it. That asymmetry matches the shipped
// product and is kept deliberately.
func ApplyLogAction(profile *models.Profile, actionID string, status models.ActionStatus) bool {
	action := profile.FindAction(actionID)
	if action == nil {
		return false
	}
	if action.TodayStatus == status {
		return false
	}

	action.TodayStatus = status
	if status == models.ActionCompleted {
		action.Streak++
		action.TotalCompletions++
	} else {
		action.Streak = 0
	}

	completed := profile.CompletedToday()
	total := len(profile.Actions)
	profile.Consistency = roundPercent(completed, total)
	if status == models.ActionCompleted && completed == total {
		profile.Streak++
	}

	return true
}

// CompletionRate is the share of actions completed today, 0 for an empty
// action list.
func CompletionRate(profile *models.Profile) int {
	return roundPercent(profile.CompletedToday(), len(profile.Actions))
}

// AvgStreak is the rounded mean of the per-action streaks.
func AvgStreak(profile *models.Profile) int {
	if len(profile.Actions) == 0 {
		return 0
	}
	sum := 0
	for _, action := range profile.Actions {
		sum += action.Streak
	}
	return int(math.Round(float64(sum) / float64(len(profile.Actions))))
}

// ProjectionPercent reports how far a biomarker has moved from baseline
// toward target, clamped to [0, 100]. A baseline equal to the target has no
// distance to cover and yields 0.
func ProjectionPercent(baseline, current, target float64) int {
	if baseline == target {
		return 0
	}
	percent := int(math.Round(100 * (baseline - current) / (baseline - target)))
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

func roundPercent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(100 * float64(part) / float64(whole)))
}
