package features

// Info describes one clinical feature for the metadata endpoint.
type Info struct {
	Description string `json:"description"`
	NormalRange string `json:"normal_range"`
	Unit        string `json:"unit"`
	Impact      string `json:"impact"`
}

// catalog is static reference data; nothing here is computed.
var catalog = map[string]Info{
	"Pregnancies": {
		Description: "Number of times pregnant",
		NormalRange: "0-4",
		Unit:        "count",
		Impact:      "Medium",
	},
	"Glucose": {
		Description: "Plasma glucose concentration",
		NormalRange: "70-140 mg/dL",
		Unit:        "mg/dL",
		Impact:      "High",
	},
	"BloodPressure": {
		Description: "Diastolic blood pressure",
		NormalRange: "60-90 mm Hg",
		Unit:        "mm Hg",
		Impact:      "Medium",
	},
	"SkinThickness": {
		Description: "Triceps skin fold thickness",
		NormalRange: "10-40 mm",
		Unit:        "mm",
		Impact:      "Low",
	},
	"Insulin": {
		Description: "2-Hour serum insulin",
		NormalRange: "16-166 mu U/ml",
		Unit:        "mu U/ml",
		Impact:      "Medium",
	},
	"BMI": {
		Description: "Body mass index",
		NormalRange: "18.5-24.9",
		Unit:        "kg/m²",
		Impact:      "High",
	},
	"DiabetesPedigreeFunction": {
		Description: "Genetic predisposition to diabetes",
		NormalRange: "0.08-2.42",
		Unit:        "score",
		Impact:      "Medium",
	},
	"Age": {
		Description: "Age in years",
		NormalRange: "All ages",
		Unit:        "years",
		Impact:      "High",
	},
}

// Catalog returns the static per-feature metadata keyed by canonical name.
func Catalog() map[string]Info {
	out := make(map[string]Info, len(catalog))
	for k, v := range catalog {
		out[k] = v
	}
	return out
}

// Samples returns fixed example payloads for manual testing of the API.
func Samples() []map[string]interface{} {
	return []map[string]interface{}{
		{
			"Pregnancies":              1,
			"Glucose":                  85,
			"BloodPressure":            66,
			"SkinThickness":            29,
			"Insulin":                  0,
			"BMI":                      26.6,
			"DiabetesPedigreeFunction": 0.351,
			"Age":                      31,
			"description":              "Healthy individual",
		},
		{
			"Pregnancies":              8,
			"Glucose":                  183,
			"BloodPressure":            64,
			"SkinThickness":            0,
			"Insulin":                  0,
			"BMI":                      23.3,
			"DiabetesPedigreeFunction": 0.672,
			"Age":                      32,
			"description":              "High risk individual",
		},
		{
			"Pregnancies":              1,
			"Glucose":                  89,
			"BloodPressure":            66,
			"SkinThickness":            23,
			"Insulin":                  94,
			"BMI":                      28.1,
			"DiabetesPedigreeFunction": 0.167,
			"Age":                      21,
			"description":              "Young adult",
		},
	}
}
