package model

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
)

// Artifact file names inside the model directory. Both are produced by the
// offline training job.
const (
	scalerFile     = "scaler.json"
	classifierFile = "model.json"
)

// standardScaler applies the per-feature standardization fitted during
// training: (x - mean) / scale.
type standardScaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

func (s *standardScaler) Transform(vec []float64) []float64 {
	out := make([]float64, len(vec))
	for i, x := range vec {
		scale := s.Scale[i]
		if scale == 0 {
			scale = 1
		}
		out[i] = (x - s.Mean[i]) / scale
	}
	return out
}

// logisticClassifier is a trained binary logistic regression. Inference is
// deterministic: a fixed weight vector and intercept, no randomness.
type logisticClassifier struct {
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
}

func (m *logisticClassifier) Predict(vec []float64) (int, [2]float64) {
	z := m.Intercept
	for i, w := range m.Coefficients {
		z += w * vec[i]
	}
	p := 1 / (1 + math.Exp(-z))

	class := 0
	if p >= 0.5 {
		class = 1
	}
	return class, [2]float64{1 - p, p}
}

// Load reads both artifacts from dir. It validates that the fitted
// dimensions match the expected feature count so a stale artifact fails at
// startup instead of at inference time.
func Load(dir string, featureCount int) (Scaler, Classifier, error) {
	var scaler standardScaler
	if err := readJSON(filepath.Join(dir, scalerFile), &scaler); err != nil {
		return nil, nil, err
	}
	if len(scaler.Mean) != featureCount || len(scaler.Scale) != featureCount {
		return nil, nil, fmt.Errorf("scaler fitted for %d/%d features, want %d",
			len(scaler.Mean), len(scaler.Scale), featureCount)
	}

	var clf logisticClassifier
	if err := readJSON(filepath.Join(dir, classifierFile), &clf); err != nil {
		return nil, nil, err
	}
	if len(clf.Coefficients) != featureCount {
		return nil, nil, fmt.Errorf("classifier fitted for %d features, want %d",
			len(clf.Coefficients), featureCount)
	}

	return &scaler, &clf, nil
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read artifact: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse artifact %s: %w", filepath.Base(path), err)
	}
	return nil
}
