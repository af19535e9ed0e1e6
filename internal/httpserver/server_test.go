package httpserver

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PratikDhanave/diabetes-risk-service/internal/predict"
	"github.com/PratikDhanave/diabetes-risk-service/internal/store"
)

type passthroughScaler struct{}

func (passthroughScaler) Transform(vec []float64) []float64 { return vec }

type fixedClassifier struct{}

func (fixedClassifier) Predict([]float64) (int, [2]float64) {
	return 0, [2]float64{0.876, 0.124}
}

func newTestRouter(scorer *predict.Scorer) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouter(scorer, store.NewMemoryStore(100), logger)
}

func TestHealth(t *testing.T) {
	scorer := predict.NewScorer(passthroughScaler{}, fixedClassifier{})
	r := newTestRouter(scorer)

	for _, path := range []string{"/health", "/api/health"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, w.Code, path)

		var resp struct {
			Status       string `json:"status"`
			ModelLoaded  bool   `json:"model_loaded"`
			ScalerLoaded bool   `json:"scaler_loaded"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "healthy", resp.Status)
		assert.True(t, resp.ModelLoaded)
		assert.True(t, resp.ScalerLoaded)
	}
}

func TestHealth_ReportsMissingArtifacts(t *testing.T) {
	r := newTestRouter(predict.NewScorer(nil, nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		ModelLoaded  bool `json:"model_loaded"`
		ScalerLoaded bool `json:"scaler_loaded"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.ModelLoaded)
	assert.False(t, resp.ScalerLoaded)
}

func TestMetricsEndpoint(t *testing.T) {
	scorer := predict.NewScorer(passthroughScaler{}, fixedClassifier{})
	r := newTestRouter(scorer)

	// Fire a request so the instrumentation middleware has observations.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "diabetes_requests_total"))
}

func TestRouteWiring(t *testing.T) {
	scorer := predict.NewScorer(passthroughScaler{}, fixedClassifier{})
	r := newTestRouter(scorer)

	paths := []string{
		"/api/analytics/dashboard",
		"/api/analytics/predictions",
		"/api/features",
		"/api/sample-data",
	}
	for _, path := range paths {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}
