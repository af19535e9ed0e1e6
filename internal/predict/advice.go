package predict

import "github.com/PratikDhanave/diabetes-risk-service/internal/features"

// Advisory statements. Declaration order matters: the advice list is a fixed,
// ordered sequence and clients render it as-is.
const (
	adviceConsult    = "Consult a healthcare professional for proper diagnosis."
	adviceMonitor    = "Monitor your blood glucose levels regularly."
	adviceSugar      = "Reduce sugar and refined carbohydrate intake."
	adviceWeightLoss = "Aim for gradual weight loss through diet and exercise."
	adviceActivity   = "Engage in at least 30 minutes of physical activity daily."
	adviceFiber      = "Increase fiber intake with vegetables and whole grains."
	adviceMaintain   = "Continue maintaining a healthy lifestyle."
	adviceBalanced   = "Eat a balanced diet rich in vegetables and fruits."
	adviceWeightMgmt = "Consider weight management to reduce future risk."
	adviceHydrate    = "Stay hydrated and limit sugary beverages."
	adviceSleep      = "Ensure 7-9 hours of quality sleep per night."
	adviceCheckups   = "Get regular health check-ups every 6-12 months."
	adviceScreening  = "Regular screening recommended due to age."
	adviceBloodPress = "Monitor blood pressure and reduce sodium intake."
)

// Advise derives the ordered advisory list from a scored result and the
// normalized feature values.
//
// The at-risk branch triggers on the hard label OR a diabetic probability
// above 50 percent. The OR is intentional: a positive probability alone
// selects the cautious branch even when the classifier's label disagrees.
func Advise(r Result, vec features.Vector) []string {
	var advice []string

	atRisk := r.Class == 1 || r.DiabeticProb > 50
	if atRisk {
		advice = append(advice, adviceConsult, adviceMonitor)
		if vec[features.IdxGlucose] > 140 {
			advice = append(advice, adviceSugar)
		}
		if vec[features.IdxBMI] > 25 {
			advice = append(advice, adviceWeightLoss)
		}
		advice = append(advice, adviceActivity, adviceFiber)
	} else {
		advice = append(advice, adviceMaintain, adviceBalanced)
		if vec[features.IdxBMI] > 25 {
			advice = append(advice, adviceWeightMgmt)
		}
		advice = append(advice, adviceHydrate, adviceSleep, adviceCheckups)
	}

	// Universal additions, always evaluated last, age before blood pressure.
	if vec[features.IdxAge] > 45 {
		advice = append(advice, adviceScreening)
	}
	if vec[features.IdxBloodPressure] > 130 {
		advice = append(advice, adviceBloodPress)
	}

	return advice
}
