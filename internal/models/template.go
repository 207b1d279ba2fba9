package models

// defaultProfile is the first-run template used whenever no snapshot exists
// for a user (or the stored one fails to decode). Values mirror the demo
// panel shipped with the product.
var defaultProfile = Profile{
	ID:                 "user_123",
	Name:               "Ankur",
	ChronologicalAge:   42,
	BiologicalAge:      38,
	HealthScore:        78,
	OnboardingComplete: false,
	Biomarkers: map[string]Biomarker{
		"ldl":              {Value: 145, Unit: "mg/dL", Status: StatusHigh, Optimal: "<100"},
		"hdl":              {Value: 42, Unit: "mg/dL", Status: StatusBorderlineLow, Optimal: ">40"},
		"totalCholesterol": {Value: 220, Unit: "mg/dL", Status: StatusBorderlineHigh, Optimal: "<200"},
		"triglycerides":    {Value: 180, Unit: "mg/dL", Status: StatusBorderlineHigh, Optimal: "<150"},
		"apoB":             {Value: 128, Unit: "mg/dL", Status: StatusHigh, Optimal: "<90"},
		"apoA1":            {Value: 135, Unit: "mg/dL", Status: StatusNormal, Optimal: ">120"},
		"hsCRP":            {Value: 3.2, Unit: "mg/L", Status: StatusHigh, Optimal: "<1"},
		"homocysteine":     {Value: 12, Unit: "µmol/L", Status: StatusBorderlineHigh, Optimal: "<10"},
		"lipoA":            {Value: 25, Unit: "mg/dL", Status: StatusNormal, Optimal: "<30"},
		"glucose":          {Value: 108, Unit: "mg/dL", Status: StatusBorderlineHigh, Optimal: "<100"},
		"hba1c":            {Value: 5.9, Unit: "%", Status: StatusBorderlineHigh, Optimal: "<5.7"},
		"creatinine":       {Value: 0.9, Unit: "mg/dL", Status: StatusNormal, Optimal: "0.7-1.2"},
		"eGFR":             {Value: 95, Unit: "mL/min/1.73m²", Status: StatusNormal, Optimal: ">90"},
		"uricAcid":         {Value: 6.2, Unit: "mg/dL", Status: StatusNormal, Optimal: "<7"},
		"ast":              {Value: 28, Unit: "U/L", Status: StatusNormal, Optimal: "<40"},
		"alt":              {Value: 32, Unit: "U/L", Status: StatusNormal, Optimal: "<40"},
		"ggt":              {Value: 35, Unit: "U/L", Status: StatusNormal, Optimal: "<60"},
		"tsh":              {Value: 2.1, Unit: "mIU/L", Status: StatusNormal, Optimal: "0.4-4.0"},
		"vitaminD":         {Value: 32, Unit: "ng/mL", Status: StatusNormal, Optimal: ">30"},
		"vitaminB12":       {Value: 450, Unit: "pg/mL", Status: StatusNormal, Optimal: ">200"},
		"hemoglobin":       {Value: 14.5, Unit: "g/dL", Status: StatusNormal, Optimal: "13.5-17.5"},
		"ferritin":         {Value: 120, Unit: "ng/mL", Status: StatusNormal, Optimal: "30-300"},
	},
	Signals: Signals{
		Attention: []Signal{
			{
				ID:         "cardio_inflammation",
				Title:      "Cardiovascular Inflammation",
				System:     "cardiovascular",
				Priority:   "high",
				Biomarkers: []string{"ldl", "hsCRP", "apoB"},
				Insight:    "Your LDL (145) combined with elevated hs-CRP (3.2) and APO-B (128) indicates your arteries are under stress. This pattern suggests inflammation is actively promoting plaque buildup.",
				Action:     "This is the #1 lever for your health right now.",
			},
		},
		Watch: []Signal{
			{
				ID:         "pre_diabetes",
				Title:      "Pre-Diabetic Pattern",
				System:     "metabolic",
				Priority:   "medium",
				Biomarkers: []string{"glucose", "hba1c"},
				Insight:    "Your fasting glucose (108) and HbA1c (5.9%) are in the warning zone. This is reversible with the right lifestyle changes.",
				Action:     "Early intervention = full reversal",
			},
		},
		Strengths: []StrengthGroup{
			{System: "Liver Function", Biomarkers: []string{"ast", "alt", "ggt"}},
			{System: "Kidney Health", Biomarkers: []string{"creatinine", "eGFR"}},
			{System: "Thyroid Balance", Biomarkers: []string{"tsh"}},
			{System: "Blood Health", Biomarkers: []string{"hemoglobin", "ferritin", "vitaminB12"}},
		},
	},
	Goal:        nil,
	Actions:     []Action{},
	Streak:      0,
	DaysActive:  0,
	Consistency: 0,
}

// DefaultProfile returns a fresh copy of the first-run template.
func DefaultProfile() *Profile {
	return defaultProfile.Clone()
}
