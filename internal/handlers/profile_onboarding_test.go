package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/vytal-health/DashboardBack/internal/models"
	"github.com/vytal-health/DashboardBack/internal/services"
)

type stubProfileStore struct {
	profile         *models.Profile
	source          services.LoadSource
	lastUpdate      services.UpdateProfileInput
	lastGoal        *models.Goal
	lastOnboardGoal models.GoalID
	lastIntensity   models.Intensity
	resetCalled     bool
}

func (s *stubProfileStore) Load(_ context.Context, _ int64) (*models.Profile, services.LoadSource, error) {
	return s.profile, s.source, nil
}

func (s *stubProfileStore) Update(_ context.Context, _ int64, input services.UpdateProfileInput) (*models.Profile, error) {
	s.lastUpdate = input
	if input.Name != nil {
		s.profile.Name = *input.Name
	}
	if input.HealthScore != nil {
		s.profile.HealthScore = *input.HealthScore
	}
	return s.profile, nil
}

func (s *stubProfileStore) SetGoal(_ context.Context, _ int64, goal models.Goal) (*models.Profile, error) {
	s.lastGoal = &goal
	s.profile.Goal = &goal
	return s.profile, nil
}

func (s *stubProfileStore) Reset(_ context.Context, _ int64) (*models.Profile, error) {
	s.resetCalled = true
	return models.DefaultProfile(), nil
}

func (s *stubProfileStore) CompleteOnboarding(_ context.Context, _ int64, goalID models.GoalID, intensity models.Intensity) (*models.Profile, error) {
	s.lastOnboardGoal = goalID
	s.lastIntensity = intensity
	s.profile.OnboardingComplete = true
	s.profile.Goal = &models.Goal{ID: goalID, Intensity: intensity}
	s.profile.Actions = services.GenerateActions(goalID, intensity)
	return s.profile, nil
}

func newAuthedApp() *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", "42")
		return c.Next()
	})
	return app
}

func TestGetProfileReportsLoadSource(t *testing.T) {
	store := &stubProfileStore{profile: models.DefaultProfile(), source: services.LoadedFromDefault}
	handler := NewProfileHandler(store)

	app := newAuthedApp()
	app.Get("/api/v1/profile", handler.GetProfile)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload["source"] != "default" {
		t.Fatalf("expected source default, got %#v", payload["source"])
	}
}

func TestUpdateProfileForwardsSetFieldsOnly(t *testing.T) {
	store := &stubProfileStore{profile: models.DefaultProfile(), source: services.LoadedFromSnapshot}
	handler := NewProfileHandler(store)

	app := newAuthedApp()
	app.Put("/api/v1/profile", handler.UpdateProfile)

	body := `{"name":"Asha","health_score":81}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/profile", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if store.lastUpdate.Name == nil || *store.lastUpdate.Name != "Asha" {
		t.Fatalf("expected name forwarded, got %+v", store.lastUpdate.Name)
	}
	if store.lastUpdate.HealthScore == nil || *store.lastUpdate.HealthScore != 81 {
		t.Fatalf("expected health_score forwarded, got %+v", store.lastUpdate.HealthScore)
	}
	if store.lastUpdate.ChronologicalAge != nil {
		t.Fatal("expected untouched field to stay nil")
	}
}

func TestUpdateProfileRejectsOutOfRangeValues(t *testing.T) {
	store := &stubProfileStore{profile: models.DefaultProfile()}
	handler := NewProfileHandler(store)

	app := newAuthedApp()
	app.Put("/api/v1/profile", handler.UpdateProfile)

	for _, body := range []string{
		`{"name":""}`,
		`{"health_score":120}`,
		`{"chronological_age":0}`,
		`{"days_active":0}`,
	} {
		req := httptest.NewRequest(http.MethodPut, "/api/v1/profile", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		resp.Body.Close()

		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, resp.StatusCode)
		}
	}
}

func TestSetGoalRejectsUnknownIntensity(t *testing.T) {
	store := &stubProfileStore{profile: models.DefaultProfile()}
	handler := NewProfileHandler(store)

	app := newAuthedApp()
	app.Put("/api/v1/profile/goal", handler.SetGoal)

	body := `{"id":"metabolic","intensity":"extreme"}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/profile/goal", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if store.lastGoal != nil {
		t.Fatal("expected no goal forwarded for invalid input")
	}
}

func TestCompleteOnboardingForwardsGoalAndIntensity(t *testing.T) {
	store := &stubProfileStore{profile: models.DefaultProfile()}
	handler := NewOnboardingHandler(store)

	app := newAuthedApp()
	app.Post("/api/v1/onboarding/complete", handler.CompleteOnboarding)

	body := `{"goal":"metabolic","intensity":"gentle"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/onboarding/complete", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if store.lastOnboardGoal != models.GoalMetabolic || store.lastIntensity != models.IntensityGentle {
		t.Fatalf("expected goal/intensity forwarded, got %q/%q", store.lastOnboardGoal, store.lastIntensity)
	}

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload["onboarding_complete"] != true {
		t.Fatalf("expected onboarding_complete true, got %#v", payload["onboarding_complete"])
	}
}

func TestPreviewPlanDoesNotCommit(t *testing.T) {
	store := &stubProfileStore{profile: models.DefaultProfile()}
	handler := NewOnboardingHandler(store)

	app := newAuthedApp()
	app.Get("/api/v1/onboarding/plan", handler.PreviewPlan)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/onboarding/plan?goal=cardiovascular&intensity=gentle", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if store.lastOnboardGoal != "" {
		t.Fatal("expected preview to leave the store untouched")
	}

	var payload struct {
		Actions []models.Action `json:"actions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(payload.Actions) != 3 {
		t.Fatalf("expected 3 gentle actions, got %d", len(payload.Actions))
	}
}

func TestResetProfileReturnsTemplate(t *testing.T) {
	store := &stubProfileStore{profile: models.DefaultProfile()}
	store.profile.OnboardingComplete = true
	handler := NewProfileHandler(store)

	app := newAuthedApp()
	app.Delete("/api/v1/profile", handler.ResetProfile)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/profile", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if !store.resetCalled {
		t.Fatal("expected reset to reach the store")
	}
}
