package model

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeArtifacts(t *testing.T, scaler, classifier string) string {
	t.Helper()
	dir := t.TempDir()
	if scaler != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "scaler.json"), []byte(scaler), 0o600))
	}
	if classifier != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "model.json"), []byte(classifier), 0o600))
	}
	return dir
}

const validScaler = `{"mean":[1,120,70,20,80,32,0.47,33],"scale":[3,30,12,10,100,7,0.3,11]}`
const validClassifier = `{"coefficients":[0.1,1.2,0.05,0.02,0.1,0.7,0.3,0.4],"intercept":-0.8}`

func TestLoad(t *testing.T) {
	dir := writeArtifacts(t, validScaler, validClassifier)

	scaler, classifier, err := Load(dir, 8)
	require.NoError(t, err)
	require.NotNil(t, scaler)
	require.NotNil(t, classifier)
}

func TestLoad_MissingArtifacts(t *testing.T) {
	cases := []struct {
		name       string
		scaler     string
		classifier string
	}{
		{"no scaler", "", validClassifier},
		{"no classifier", validScaler, ""},
		{"empty dir", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := writeArtifacts(t, tc.scaler, tc.classifier)
			_, _, err := Load(dir, 8)
			require.Error(t, err)
		})
	}
}

func TestLoad_DimensionMismatch(t *testing.T) {
	dir := writeArtifacts(t, `{"mean":[1,2],"scale":[1,1]}`, validClassifier)
	_, _, err := Load(dir, 8)
	require.Error(t, err)

	dir = writeArtifacts(t, validScaler, `{"coefficients":[0.1],"intercept":0}`)
	_, _, err = Load(dir, 8)
	require.Error(t, err)
}

func TestLoad_MalformedJSON(t *testing.T) {
	dir := writeArtifacts(t, `{not json`, validClassifier)
	_, _, err := Load(dir, 8)
	require.Error(t, err)
}

func TestStandardScaler_Transform(t *testing.T) {
	s := &standardScaler{Mean: []float64{10, 0}, Scale: []float64{2, 0}}

	out := s.Transform([]float64{14, 5})
	require.Equal(t, 2.0, out[0])
	// A zero scale falls back to 1 so constant features pass through shifted.
	require.Equal(t, 5.0, out[1])
}

func TestLogisticClassifier_Predict(t *testing.T) {
	// Zero weights give p = 0.5 exactly; class 1 at the 0.5 threshold.
	m := &logisticClassifier{Coefficients: []float64{0, 0}, Intercept: 0}
	class, probs := m.Predict([]float64{3, 4})
	require.Equal(t, 1, class)
	require.InDelta(t, 0.5, probs[1], 1e-12)
	require.InDelta(t, 1.0, probs[0]+probs[1], 1e-12)

	// A strongly negative logit stays class 0 with a small probability.
	m = &logisticClassifier{Coefficients: []float64{-2}, Intercept: 0}
	class, probs = m.Predict([]float64{3})
	require.Equal(t, 0, class)
	require.Less(t, probs[1], 0.01)

	// Sigmoid symmetry.
	require.InDelta(t, 1/(1+math.Exp(6)), probs[1], 1e-12)
}

func TestPredict_Deterministic(t *testing.T) {
	dir := writeArtifacts(t, validScaler, validClassifier)
	scaler, classifier, err := Load(dir, 8)
	require.NoError(t, err)

	vec := scaler.Transform([]float64{1, 85, 66, 29, 0, 26.6, 0.351, 31})
	firstClass, firstProbs := classifier.Predict(vec)
	for i := 0; i < 50; i++ {
		class, probs := classifier.Predict(vec)
		require.Equal(t, firstClass, class)
		require.Equal(t, firstProbs, probs)
	}
}
