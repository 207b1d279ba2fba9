package services

import (
	"reflect"
	"testing"

	"github.com/vytal-health/DashboardBack/internal/models"
)

func TestGenerateActionsGentleTakesFirstThree(t *testing.T) {
	actions := GenerateActions(models.GoalMetabolic, models.IntensityGentle)

	if len(actions) != 3 {
		t.Fatalf("expected 3 gentle actions, got %d", len(actions))
	}
	wantIDs := []string{"low_carb", "walk", "protein"}
	for i, want := range wantIDs {
		if actions[i].ID != want {
			t.Fatalf("action %d: expected id %q, got %q", i, want, actions[i].ID)
		}
	}
	for _, action := range actions {
		if action.TodayStatus != models.ActionPending {
			t.Fatalf("action %q: expected pending status, got %q", action.ID, action.TodayStatus)
		}
		if action.Streak != 0 || action.TotalCompletions != 0 {
			t.Fatalf("action %q: expected zeroed counters", action.ID)
		}
	}
}

func TestGenerateActionsIntensiveClampsToTemplateLength(t *testing.T) {
	actions := GenerateActions(models.GoalCardiovascular, models.IntensityIntensive)
	if len(actions) != 5 {
		t.Fatalf("expected clamp to the 5 template actions, got %d", len(actions))
	}
}

func TestGenerateActionsIsDeterministic(t *testing.T) {
	first := GenerateActions(models.GoalBiologicalAge, models.IntensityBalanced)
	second := GenerateActions(models.GoalBiologicalAge, models.IntensityBalanced)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("expected identical action sets for identical inputs")
	}
}

func TestGenerateActionsUnknownInputsFallBack(t *testing.T) {
	actions := GenerateActions(models.GoalID("unknown"), models.Intensity("unknown"))
	if len(actions) != 5 {
		t.Fatalf("expected balanced cardiovascular fallback of 5 actions, got %d", len(actions))
	}
	if actions[0].ID != "fiber" {
		t.Fatalf("expected cardiovascular template, got first id %q", actions[0].ID)
	}
}

func TestGenerateActionsCopiesImpactSlices(t *testing.T) {
	actions := GenerateActions(models.GoalCardiovascular, models.IntensityGentle)
	actions[0].Impact[0] = "mutated"

	fresh := GenerateActions(models.GoalCardiovascular, models.IntensityGentle)
	if fresh[0].Impact[0] != "ldl" {
		t.Fatal("expected template impact slice to be unaffected by caller mutation")
	}
}
