// Package reference holds the static population-health dataset served for
// comparison copy. The core never mutates or recomputes any of it.
package reference

type DatasetOverview struct {
	TotalRecords      int    `json:"total_records"`
	UniqueUsers       int    `json:"unique_users"`
	BiomarkersTracked int    `json:"biomarkers_tracked"`
	StatesCovered     int    `json:"states_covered"`
	DateRange         string `json:"date_range"`
}

type BiomarkerStats struct {
	Mean float64 `json:"mean"`
	Std  float64 `json:"std"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	P25  float64 `json:"p25"`
	P50  float64 `json:"p50"`
	P75  float64 `json:"p75"`
}

type RiskBucket struct {
	Threshold  string  `json:"threshold"`
	Percentage float64 `json:"percentage"`
}

type Correlation struct {
	Pair           string  `json:"pair"`
	R              float64 `json:"r"`
	Interpretation string  `json:"interpretation"`
}

type DemographicStats struct {
	Users         int     `json:"users"`
	HDL           float64 `json:"hdl"`
	LDL           float64 `json:"ldl"`
	Triglycerides float64 `json:"triglycerides"`
	Glucose       float64 `json:"glucose"`
	HbA1c         float64 `json:"hba1c"`
}

var Overview = DatasetOverview{
	TotalRecords:      228932,
	UniqueUsers:       92444,
	BiomarkersTracked: 16,
	StatesCovered:     28,
	DateRange:         "2025-03-15 to present",
}

var BiomarkerStatistics = map[string]BiomarkerStats{
	"hdl":              {Mean: 43.01, Std: 10.17, Min: 0, Max: 107.4, P25: 36, P50: 42, P75: 49},
	"ldl":              {Mean: 111.48, Std: 32.88, Min: 0, Max: 277.6, P25: 89, P50: 110, P75: 132.88},
	"totalCholesterol": {Mean: 179.27, Std: 40.02, Min: 0, Max: 548, P25: 152, P50: 177, P75: 203},
	"triglycerides":    {Mean: 150.50, Std: 99.01, Min: 0, Max: 1328, P25: 89.88, P50: 126, P75: 181},
	"glucose":          {Mean: 104.59, Std: 102.97, Min: 0, Max: 11800, P25: 85.91, P50: 93.2, P75: 105.56},
	"hba1c":            {Mean: 5.93, Std: 1.32, Min: 0, Max: 33.32, P25: 5.2, P50: 5.6, P75: 6.1},
	"alt":              {Mean: 32.83, Std: 29.42, Min: 0, Max: 839.4, P25: 17, P50: 25, P75: 38.7},
	"ast":              {Mean: 28.77, Std: 23.05, Min: 0, Max: 1599.8, P25: 19.82, P50: 24.37, P75: 31.5},
	"creatinine":       {Mean: 0.78, Std: 0.21, Min: 0, Max: 4.32, P25: 0.63, P50: 0.77, P75: 0.9},
	"albumin":          {Mean: 4.30, Std: 0.60, Min: 0, Max: 47, P25: 4.06, P50: 4.3, P75: 4.52},
}

var RiskDistribution = map[string]map[string]RiskBucket{
	"hdl": {
		"low":        {Threshold: "<40", Percentage: 41.2},
		"borderline": {Threshold: "40-60", Percentage: 52.8},
		"optimal":    {Threshold: ">60", Percentage: 6.0},
	},
	"ldl": {
		"optimal":    {Threshold: "<100", Percentage: 37.6},
		"borderline": {Threshold: "100-130", Percentage: 35.0},
		"elevated":   {Threshold: "130-160", Percentage: 20.0},
		"high":       {Threshold: ">160", Percentage: 7.4},
	},
	"triglycerides": {
		"optimal":    {Threshold: "<150", Percentage: 62.9},
		"borderline": {Threshold: "150-200", Percentage: 17.5},
		"high":       {Threshold: ">200", Percentage: 19.6},
	},
	"glucose": {
		"normal":       {Threshold: "<100", Percentage: 66.6},
		"pre_diabetic": {Threshold: "100-126", Percentage: 21.2},
		"diabetic":     {Threshold: ">126", Percentage: 12.3},
	},
	"hba1c": {
		"normal":       {Threshold: "<5.7", Percentage: 55.1},
		"pre_diabetic": {Threshold: "5.7-6.4", Percentage: 27.1},
		"diabetic":     {Threshold: ">6.4", Percentage: 17.8},
	},
}

var StrongestCorrelations = []Correlation{
	{Pair: "ALT ↔ AST", R: 0.806, Interpretation: "Liver enzymes - both elevated indicates liver stress"},
	{Pair: "LDL ↔ Total Cholesterol", R: 0.777, Interpretation: "LDL is primary component of total cholesterol"},
	{Pair: "Glucose ↔ HbA1c", R: 0.673, Interpretation: "HbA1c reflects 90-day average glucose"},
	{Pair: "Total Chol ↔ Triglycerides", R: 0.352, Interpretation: "Both contribute to cardiovascular risk"},
	{Pair: "Triglycerides ↔ Glucose", R: 0.300, Interpretation: "Metabolic syndrome - insulin resistance"},
	{Pair: "HDL ↔ Triglycerides", R: -0.282, Interpretation: "Inverse relationship - atherogenic dyslipidemia"},
	{Pair: "Triglycerides ↔ HbA1c", R: 0.213, Interpretation: "Metabolic dysfunction pattern"},
}

var AgeWiseData = map[string]DemographicStats{
	"<25":   {Users: 7029, HDL: 42.2, LDL: 97.6, Triglycerides: 125.6, Glucose: 88.7, HbA1c: 5.3},
	"25-35": {Users: 26809, HDL: 42.1, LDL: 109.5, Triglycerides: 146.5, Glucose: 95.8, HbA1c: 5.5},
	"36-45": {Users: 26489, HDL: 42.5, LDL: 114.2, Triglycerides: 159.4, Glucose: 102.7, HbA1c: 5.9},
	"46-55": {Users: 16398, HDL: 43.8, LDL: 117.0, Triglycerides: 158.4, Glucose: 117.7, HbA1c: 6.3},
	"56-65": {Users: 9674, HDL: 44.9, LDL: 112.1, Triglycerides: 149.4, Glucose: 114.5, HbA1c: 6.5},
	"65+":   {Users: 6121, HDL: 44.8, LDL: 106.9, Triglycerides: 136.7, Glucose: 109.2, HbA1c: 6.4},
}

var GenderWiseData = map[string]DemographicStats{
	"male":   {Users: 53827, HDL: 40.7, LDL: 111.9, Triglycerides: 166.9, Glucose: 105.9, HbA1c: 6.0},
	"female": {Users: 38628, HDL: 46.4, LDL: 110.9, Triglycerides: 126.4, Glucose: 103.0, HbA1c: 5.8},
}

var KeyFindings = map[string][]string{
	"population": {
		"41.2% of population has low HDL (<40 mg/dL) - major CVD risk",
		"Only 6% have optimal HDL (>60 mg/dL)",
		"45% have abnormal HbA1c (pre-diabetic or diabetic)",
		"27.4% have elevated LDL (>130 mg/dL)",
		"19.6% have high triglycerides (>200 mg/dL)",
	},
	"gender": {
		"Males have 14% lower HDL than females (40.7 vs 46.4)",
		"Males have 32% higher triglycerides (166.9 vs 126.4)",
		"Males show worse overall lipid profile",
	},
	"age": {
		"LDL peaks at 46-55 age group (117.0 mg/dL)",
		"Triglycerides peak at 36-45 (159.4 mg/dL)",
		"HbA1c increases steadily with age (5.3 to 6.5%)",
		"HDL slightly improves with age (42.2 to 44.8)",
	},
	"correlations": {
		"Strongest: ALT-AST (0.81) - liver function cluster",
		"LDL-Total Cholesterol (0.78) - expected relationship",
		"Glucose-HbA1c (0.67) - validates diagnostic consistency",
		"TG-Glucose (0.30) - metabolic syndrome marker",
		"HDL-TG (-0.28) - atherogenic dyslipidemia pattern",
	},
}
