// Package predict runs the risk-scoring pipeline: scale the feature vector,
// classify it, and map the diabetic probability to a risk level.
package predict

import (
	"github.com/PratikDhanave/diabetes-risk-service/internal/features"
	"github.com/PratikDhanave/diabetes-risk-service/internal/model"
)

// Risk level labels exposed in API responses and analytics counters.
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// Class labels for the binary prediction.
const (
	LabelDiabetic    = "Diabetic"
	LabelNonDiabetic = "Non-Diabetic"
)

// Result is a single scored prediction. Probabilities are percentages in
// [0,100] and sum to 100.
type Result struct {
	Class           int
	Label           string
	NonDiabeticProb float64
	DiabeticProb    float64
	RiskLevel       string
}

// Scorer invokes the loaded scaler/classifier pair. Either dependency may be
// nil when artifact loading failed at startup; Score then fails fast.
type Scorer struct {
	scaler     model.Scaler
	classifier model.Classifier
}

// NewScorer wires the scorer to its model artifacts. Pass nil dependencies
// when loading failed; the scorer stays usable and reports ErrUnavailable.
func NewScorer(s model.Scaler, c model.Classifier) *Scorer {
	return &Scorer{scaler: s, classifier: c}
}

// ScalerLoaded reports whether the fitted scaler is available.
func (s *Scorer) ScalerLoaded() bool { return s.scaler != nil }

// ClassifierLoaded reports whether the trained classifier is available.
func (s *Scorer) ClassifierLoaded() bool { return s.classifier != nil }

// Score transforms the vector, classifies it, and derives the risk level.
// Deterministic for a fixed model artifact and input.
func (s *Scorer) Score(vec features.Vector) (Result, error) {
	if s.scaler == nil || s.classifier == nil {
		return Result{}, model.ErrUnavailable
	}

	scaled := s.scaler.Transform(vec[:])
	class, probs := s.classifier.Predict(scaled)

	diabetic := probs[1] * 100
	label := LabelNonDiabetic
	if class == 1 {
		label = LabelDiabetic
	}

	return Result{
		Class:           class,
		Label:           label,
		NonDiabeticProb: probs[0] * 100,
		DiabeticProb:    diabetic,
		RiskLevel:       RiskFor(diabetic),
	}, nil
}

// RiskFor maps a diabetic probability (percent) onto the risk level.
// Boundaries are inclusive-lower: exactly 30 is medium, exactly 70 is high.
func RiskFor(diabeticProb float64) string {
	switch {
	case diabeticProb < 30:
		return RiskLow
	case diabeticProb < 70:
		return RiskMedium
	default:
		return RiskHigh
	}
}
