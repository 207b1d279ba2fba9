package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vytal-health/DashboardBack/internal/models"
	"github.com/vytal-health/DashboardBack/internal/services"
)

type stubLedger struct {
	profile      *models.Profile
	logged       bool
	lastActionID string
	lastStatus   models.ActionStatus
	calls        int
}

func (s *stubLedger) LogAction(_ context.Context, _ int64, actionID string, status models.ActionStatus) (*models.Profile, bool, error) {
	s.calls++
	s.lastActionID = actionID
	s.lastStatus = status
	return s.profile, s.logged, nil
}

func TestLogActionForwardsStatusAndReportsLogged(t *testing.T) {
	profile := models.DefaultProfile()
	profile.Actions = services.GenerateActions(models.GoalCardiovascular, models.IntensityGentle)
	ledger := &stubLedger{profile: profile, logged: true}
	handler := NewActionsHandler(&stubProfileStore{profile: profile}, ledger)

	app := newAuthedApp()
	app.Post("/api/v1/actions/:id/log", handler.LogAction)

	body := `{"status":"completed"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/actions/walk/log", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ledger.lastActionID != "walk" || ledger.lastStatus != models.ActionCompleted {
		t.Fatalf("expected walk/completed forwarded, got %q/%q", ledger.lastActionID, ledger.lastStatus)
	}

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload["logged"] != true {
		t.Fatalf("expected logged true, got %#v", payload["logged"])
	}
}

func TestLogActionUnknownIDStillReturnsOK(t *testing.T) {
	ledger := &stubLedger{profile: models.DefaultProfile(), logged: false}
	handler := NewActionsHandler(&stubProfileStore{profile: ledger.profile}, ledger)

	app := newAuthedApp()
	app.Post("/api/v1/actions/:id/log", handler.LogAction)

	body := `{"status":"completed"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/actions/nope/log", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

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
	if payload["logged"] != false {
		t.Fatalf("expected logged false, got %#v", payload["logged"])
	}
}

func TestLogActionRejectsUnknownStatusValue(t *testing.T) {
	ledger := &stubLedger{profile: models.DefaultProfile()}
	handler := NewActionsHandler(&stubProfileStore{profile: ledger.profile}, ledger)

	app := newAuthedApp()
	app.Post("/api/v1/actions/:id/log", handler.LogAction)

	body := `{"status":"skipped"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/actions/walk/log", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if ledger.calls != 0 {
		t.Fatal("expected invalid status to be rejected before the ledger")
	}
}

func TestGetStatsDerivesAggregates(t *testing.T) {
	profile := models.DefaultProfile()
	profile.Streak = 4
	profile.DaysActive = 12
	profile.Consistency = 50
	profile.Actions = []models.Action{
		{ID: "walk", Streak: 2, TodayStatus: models.ActionCompleted},
		{ID: "fiber", Streak: 4, TodayStatus: models.ActionPending},
	}
	handler := NewActionsHandler(&stubProfileStore{profile: profile, source: services.LoadedFromSnapshot}, &stubLedger{profile: profile})

	app := newAuthedApp()
	app.Get("/api/v1/actions/stats", handler.GetStats)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/actions/stats", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var payload map[string]float64
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload["completion_rate"] != 50 {
		t.Fatalf("expected completion_rate 50, got %v", payload["completion_rate"])
	}
	if payload["avg_streak"] != 3 {
		t.Fatalf("expected avg_streak 3, got %v", payload["avg_streak"])
	}
	if payload["completed_today"] != 1 || payload["total_actions"] != 2 {
		t.Fatalf("expected 1/2 completed, got %v/%v", payload["completed_today"], payload["total_actions"])
	}
}
