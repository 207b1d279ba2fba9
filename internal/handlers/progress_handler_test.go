package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vytal-health/DashboardBack/internal/models"
	"github.com/vytal-health/DashboardBack/internal/services"
)

func TestGetProjectionsComputesProgressPercent(t *testing.T) {
	profile := models.DefaultProfile()
	profile.Streak = 6
	profile.Consistency = 75
	handler := NewProgressHandler(&stubProfileStore{profile: profile, source: services.LoadedFromSnapshot})

	app := newAuthedApp()
	app.Get("/api/v1/progress/projections", handler.GetProjections)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/progress/projections", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var payload struct {
		Projections []struct {
			ID              string `json:"id"`
			ProgressPercent int    `json:"progress_percent"`
		} `json:"projections"`
		Streak      int `json:"streak"`
		Consistency int `json:"consistency"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Streak != 6 || payload.Consistency != 75 {
		t.Fatalf("expected profile counters echoed, got streak=%d consistency=%d", payload.Streak, payload.Consistency)
	}
	if len(payload.Projections) == 0 {
		t.Fatal("expected projections in response")
	}

	found := false
	for _, p := range payload.Projections {
		if p.ID == "ldl" {
			found = true
			// baseline 145, current 125, target 100
			if p.ProgressPercent != 44 {
				t.Fatalf("expected ldl progress 44, got %d", p.ProgressPercent)
			}
		}
		if p.ProgressPercent < 0 || p.ProgressPercent > 100 {
			t.Fatalf("progress for %q out of range: %d", p.ID, p.ProgressPercent)
		}
	}
	if !found {
		t.Fatal("expected an ldl projection")
	}
}
