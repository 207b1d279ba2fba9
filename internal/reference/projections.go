package reference

// BiomarkerProjection is a deterministic trend estimate: baseline/current/
// target come from this static table, never from measurement.
type BiomarkerProjection struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Baseline   float64 `json:"baseline"`
	Current    float64 `json:"current"`
	Target     float64 `json:"target"`
	Unit       string  `json:"unit"`
	Trend      string  `json:"trend"`
	Projection float64 `json:"projection"`
}

type WeeklyConsistency struct {
	Day         string `json:"day"`
	Consistency int    `json:"consistency"`
	Actions     int    `json:"actions"`
}

var BiomarkerProjections = []BiomarkerProjection{
	{ID: "ldl", Name: "LDL Cholesterol", Baseline: 145, Current: 125, Target: 100, Unit: "mg/dL", Trend: "improving", Projection: 105},
	{ID: "hscrp", Name: "hs-CRP", Baseline: 3.2, Current: 2.4, Target: 1.0, Unit: "mg/L", Trend: "improving", Projection: 1.5},
	{ID: "triglycerides", Name: "Triglycerides", Baseline: 180, Current: 150, Target: 100, Unit: "mg/dL", Trend: "improving", Projection: 115},
	{ID: "glucose", Name: "Fasting Glucose", Baseline: 108, Current: 102, Target: 95, Unit: "mg/dL", Trend: "improving", Projection: 96},
}

var WeeklyData = []WeeklyConsistency{
	{Day: "Mon", Consistency: 75, Actions: 3},
	{Day: "Tue", Consistency: 100, Actions: 4},
	{Day: "Wed", Consistency: 75, Actions: 3},
	{Day: "Thu", Consistency: 100, Actions: 4},
	{Day: "Fri", Consistency: 50, Actions: 2},
	{Day: "Sat", Consistency: 75, Actions: 3},
	{Day: "Sun", Consistency: 100, Actions: 4},
}
