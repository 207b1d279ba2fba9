package models

type BiomarkerStatus string

const (
	StatusNormal         BiomarkerStatus = "normal"
	StatusBorderlineLow  BiomarkerStatus = "borderline_low"
	StatusBorderlineHigh BiomarkerStatus = "borderline_high"
	StatusHigh           BiomarkerStatus = "high"
)

type GoalID string

const (
	GoalCardiovascular GoalID = "cardiovascular"
	GoalMetabolic      GoalID = "metabolic"
	GoalBiologicalAge  GoalID = "biological_age"
)

type Intensity string

const (
	IntensityGentle    Intensity = "gentle"
	IntensityBalanced  Intensity = "balanced"
	IntensityIntensive Intensity = "intensive"
)

type ActionCategory string

const (
	CategoryNutrition  ActionCategory = "nutrition"
	CategoryMovement   ActionCategory = "movement"
	CategorySupplement ActionCategory = "supplement"
	CategoryLifestyle  ActionCategory = "lifestyle"
)

type ActionStatus string

const (
	ActionPending   ActionStatus = "pending"
	ActionCompleted ActionStatus = "completed"
)

type Biomarker struct {
	Value   float64         `json:"value"`
	Unit    string          `json:"unit"`
	Status  BiomarkerStatus `json:"status"`
	Optimal string          `json:"optimal"`
}

type Signal struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	System     string   `json:"system"`
	Priority   string   `json:"priority"`
	Biomarkers []string `json:"biomarkers"`
	Insight    string   `json:"insight"`
	Action     string   `json:"action"`
}

type StrengthGroup struct {
	System     string   `json:"system"`
	Biomarkers []string `json:"biomarkers"`
}

type Signals struct {
	Attention []Signal        `json:"attention"`
	Watch     []Signal        `json:"watch"`
	Strengths []StrengthGroup `json:"strengths"`
}

type Goal struct {
	ID        GoalID    `json:"id"`
	Intensity Intensity `json:"intensity"`
}

// Action is one trackable daily habit. Streak and TotalCompletions belong to
// the action itself; TodayStatus is reset by whatever external process rolls
// the day over (no day boundary is modelled here).
type Action struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Icon             string         `json:"icon"`
	Category         ActionCategory `json:"category"`
	Impact           []string       `json:"impact"`
	Phase            int            `json:"phase"`
	Streak           int            `json:"streak"`
	TotalCompletions int            `json:"total_completions"`
	TodayStatus      ActionStatus   `json:"today_status"`
}

// Profile is the complete per-user state. It is persisted wholesale as a
// single snapshot row and every mutation rewrites it in full.
type Profile struct {
	ID                 string               `json:"id"`
	Name               string               `json:"name"`
	ChronologicalAge   int                  `json:"chronological_age"`
	BiologicalAge      int                  `json:"biological_age"`
	HealthScore        int                  `json:"health_score"`
	OnboardingComplete bool                 `json:"onboarding_complete"`
	Biomarkers         map[string]Biomarker `json:"biomarkers"`
	Signals            Signals              `json:"signals"`
	Goal               *Goal                `json:"goal"`
	Actions            []Action             `json:"actions"`
	Streak             int                  `json:"streak"`
	DaysActive         int                  `json:"days_active"`
	Consistency        int                  `json:"consistency"`
}

func (p *Profile) FindAction(actionID string) *Action {
	for i := range p.Actions {
		if p.Actions[i].ID == actionID {
			return &p.Actions[i]
		}
	}
	return nil
}

func (p *Profile) CompletedToday() int {
	count := 0
	for _, action := range p.Actions {
		if action.TodayStatus == ActionCompleted {
			count++
		}
	}
	return count
}

// Clone returns a deep copy so callers can mutate the result without
// aliasing the template or another caller's profile.
func (p *Profile) Clone() *Profile {
	clone := *p

	clone.Biomarkers = make(map[string]Biomarker, len(p.Biomarkers))
	for key, marker := range p.Biomarkers {
		clone.Biomarkers[key] = marker
	}

	clone.Signals.Attention = cloneSignals(p.Signals.Attention)
	clone.Signals.Watch = cloneSignals(p.Signals.Watch)
	clone.Signals.Strengths = make([]StrengthGroup, len(p.Signals.Strengths))
	for i, group := range p.Signals.Strengths {
		group.Biomarkers = append([]string(nil), group.Biomarkers...)
		clone.Signals.Strengths[i] = group
	}

	if p.Goal != nil {
		goal := *p.Goal
		clone.Goal = &goal
	}

	clone.Actions = make([]Action, len(p.Actions))
	for i, action := range p.Actions {
		action.Impact = append([]string(nil), action.Impact...)
		clone.Actions[i] = action
	}

	return &clone
}

func cloneSignals(signals []Signal) []Signal {
	cloned := make([]Signal, len(signals))
	for i, signal := range signals {
		signal.Biomarkers = append([]string(nil), signal.Biomarkers...)
		cloned[i] = signal
	}
	return cloned
}
