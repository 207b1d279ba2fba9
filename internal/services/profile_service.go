package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/jackc/pgx/v5"

	"github.com/vytal-health/DashboardBack/internal/models"
	"github.com/vytal-health/DashboardBack/internal/observability"
)

// LoadSource tells callers whether a profile came from a stored snapshot or
// from the first-run template, so a defaulted load is observable instead of
// silent.
type LoadSource string

const (
	LoadedFromSnapshot LoadSource = "snapshot"
	LoadedFromDefault  LoadSource = "default"
)

type SnapshotStore interface {
	Get(ctx context.Context, userID int64) ([]byte, error)
	Save(ctx context.Context, userID int64, data []byte) error
	Delete(ctx context.Context, userID int64) error
}

// ProfileService is the single authority over a user's Profile. Every
// mutation rewrites the full snapshot before returning, so the persisted
// state and the returned profile never diverge.
type ProfileService struct {
	snapshots SnapshotStore
}

func NewProfileService(snapshots SnapshotStore) *ProfileService {
	return &ProfileService{snapshots: snapshots}
}

// UpdateProfileInput is a shallow merge: nil fields keep their current
// value, set fields replace it wholesale.
type UpdateProfileInput struct {
	Name             *string
	ChronologicalAge *int
	BiologicalAge    *int
	HealthScore      *int
	Goal             *models.Goal
	DaysActive       *int
}

// Load returns the stored profile if the snapshot exists and decodes, and
// the first-run template otherwise. A missing or corrupt snapshot is never
// an error; only infrastructure failures propagate.
func (s *ProfileService) Load(ctx context.Context, userID int64) (*models.Profile, LoadSource, error) {
	data, err := s.snapshots.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			observability.RecordSnapshotLoad(string(LoadedFromDefault))
			return models.DefaultProfile(), LoadedFromDefault, nil
		}
		return nil, "", err
	}

	var profile models.Profile
	if err := json.Unmarshal(data, &profile); err != nil || profile.Biomarkers == nil {
		log.Printf("profile snapshot for user %d is unreadable, using default template", userID)
		observability.RecordSnapshotLoad(string(LoadedFromDefault))
		return models.DefaultProfile(), LoadedFromDefault, nil
	}
	if profile.Actions == nil {
		profile.Actions = []models.Action{}
	}

	observability.RecordSnapshotLoad(string(LoadedFromSnapshot))
	return &profile, LoadedFromSnapshot, nil
}

func (s *ProfileService) Update(ctx context.Context, userID int64, input UpdateProfileInput) (*models.Profile, error) {
	profile, _, err := s.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		profile.Name = *input.Name
	}
	if input.ChronologicalAge != nil {
		profile.ChronologicalAge = *input.ChronologicalAge
	}
	if input.BiologicalAge != nil {
		profile.BiologicalAge = *input.BiologicalAge
	}
	if input.HealthScore != nil {
		profile.HealthScore = *input.HealthScore
	}
	if input.Goal != nil {
		goal := *input.Goal
		profile.Goal = &goal
	}
	if input.DaysActive != nil {
		profile.DaysActive = *input.DaysActive
	}

	if err := s.persist(ctx, userID, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) SetGoal(ctx context.Context, userID int64, goal models.Goal) (*models.Profile, error) {
	return s.Update(ctx, userID, UpdateProfileInput{Goal: &goal})
}

// CompleteOnboarding is the only path that flips OnboardingComplete to true.
// Goal and the generated action set are committed together in one snapshot
// write.
func (s *ProfileService) CompleteOnboarding(ctx context.Context, userID int64, goalID models.GoalID, intensity models.Intensity) (*models.Profile, error) {
	if !ValidGoalID(goalID) || !ValidIntensity(intensity) {
		return nil, ErrInvalidInput
	}

	profile, _, err := s.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.OnboardingComplete = true
	profile.Goal = &models.Goal{ID: goalID, Intensity: intensity}
	profile.Actions = GenerateActions(goalID, intensity)
	profile.Streak = 0
	profile.DaysActive = 1
	profile.Consistency = 0

	if err := s.persist(ctx, userID, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Reset drops the stored snapshot and returns the first-run template.
func (s *ProfileService) Reset(ctx context.Context, userID int64) (*models.Profile, error) {
	if err := s.snapshots.Delete(ctx, userID); err != nil {
		return nil, err
	}
	return models.DefaultProfile(), nil
}

func (s *ProfileService) persist(ctx context.Context, userID int64, profile *models.Profile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return s.snapshots.Save(ctx, userID, data)
}

func ValidGoalID(id models.GoalID) bool {
	switch id {
	case models.GoalCardiovascular, models.GoalMetabolic, models.GoalBiologicalAge:
		return true
	default:
		return false
	}
}

func ValidIntensity(intensity models.Intensity) bool {
	switch intensity {
	case models.IntensityGentle, models.IntensityBalanced, models.IntensityIntensive:
		return true
	default:
		return false
	}
}
