package services

import "github.com/vytal-health/DashboardBack/internal/models"

// actionTemplates holds the fixed, ordered candidate actions per goal. Order
// is display priority and is preserved in the generated plan.
var actionTemplates = map[models.GoalID][]models.Action{
	models.GoalCardiovascular: {
		{ID: "fiber", Name: "Add 10g Fiber Daily", Icon: "🥗", Category: models.CategoryNutrition, Impact: []string{"ldl", "glucose"}, Phase: 1},
		{ID: "walk", Name: "10-Min Post-Meal Walk", Icon: "🚶", Category: models.CategoryMovement, Impact: []string{"glucose", "triglycerides"}, Phase: 1},
		{ID: "fish_oil", Name: "Fish Oil Supplement", Icon: "💊", Category: models.CategorySupplement, Impact: []string{"triglycerides", "hsCRP"}, Phase: 1},
		{ID: "sleep", Name: "Sleep by 10:30 PM", Icon: "😴", Category: models.CategoryLifestyle, Impact: []string{"hsCRP", "cortisol"}, Phase: 2},
		{ID: "cardio", Name: "150 Min Cardio/Week", Icon: "🏃", Category: models.CategoryMovement, Impact: []string{"hdl", "triglycerides"}, Phase: 2},
	},
	models.GoalMetabolic: {
		{ID: "low_carb", Name: "Reduce Refined Carbs", Icon: "🍞", Category: models.CategoryNutrition, Impact: []string{"glucose", "hba1c"}, Phase: 1},
		{ID: "walk", Name: "10-Min Post-Meal Walk", Icon: "🚶", Category: models.CategoryMovement, Impact: []string{"glucose", "triglycerides"}, Phase: 1},
		{ID: "protein", Name: "Protein at Breakfast", Icon: "🥚", Category: models.CategoryNutrition, Impact: []string{"glucose", "energy"}, Phase: 1},
		{ID: "strength", Name: "Strength Training 2x/Week", Icon: "💪", Category: models.CategoryMovement, Impact: []string{"glucose", "metabolism"}, Phase: 2},
		{ID: "sleep", Name: "Sleep by 10:30 PM", Icon: "😴", Category: models.CategoryLifestyle, Impact: []string{"hsCRP", "glucose"}, Phase: 2},
	},
	models.GoalBiologicalAge: {
		{ID: "fiber", Name: "Add 10g Fiber Daily", Icon: "🥗", Category: models.CategoryNutrition, Impact: []string{"ldl", "gut_health"}, Phase: 1},
		{ID: "walk", Name: "Daily Movement (8K Steps)", Icon: "🚶", Category: models.CategoryMovement, Impact: []string{"overall_health"}, Phase: 1},
		{ID: "sleep", Name: "7-8 Hours Quality Sleep", Icon: "😴", Category: models.CategoryLifestyle, Impact: []string{"recovery", "hormones"}, Phase: 1},
		{ID: "stress", Name: "10-Min Stress Practice", Icon: "🧘", Category: models.CategoryLifestyle, Impact: []string{"cortisol", "inflammation"}, Phase: 2},
		{ID: "strength", Name: "Strength Training 2x/Week", Icon: "💪", Category: models.CategoryMovement, Impact: []string{"muscle", "metabolism"}, Phase: 2},
	},
}

// intensityActionCount maps the onboarding intensity choice to how many
// template actions the plan starts with.
var intensityActionCount = map[models.Intensity]int{
	models.IntensityGentle:    3,
	models.IntensityBalanced:  5,
	models.IntensityIntensive: 8,
}

// GenerateActions builds the initial action set for a goal and intensity.
// It is deterministic: the same inputs always produce the same plan. An
// unknown goal falls back to the cardiovascular templates, an unknown
// intensity to the balanced count.
func GenerateActions(goalID models.GoalID, intensity models.Intensity) []models.Action {
	templates, ok := actionTemplates[goalID]
	if !ok {
		templates = actionTemplates[models.GoalCardiovascular]
	}

	count, ok := intensityActionCount[intensity]
	if !ok {
		count = intensityActionCount[models.IntensityBalanced]
	}
	if count > len(templates) {
		count = len(templates)
	}

	actions := make([]models.Action, 0, count)
	for _, template := range templates[:count] {
		action := template
		action.Impact = append([]string(nil), template.Impact...)
		action.Streak = 0
		action.TotalCompletions = 0
		action.TodayStatus = models.ActionPending
		actions = append(actions, action)
	}
	return actions
}
