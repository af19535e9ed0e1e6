package models

import "github.com/PratikDhanave/diabetes-risk-service/internal/store"

// Confidence holds the two class probabilities as percentages rounded to
// two decimal places. They sum to 100.
type Confidence struct {
	NonDiabetic float64 `json:"non_diabetic"`
	Diabetic    float64 `json:"diabetic"`
}

// PredictionResponse is returned by POST /api/predict.
type PredictionResponse struct {
	Prediction      int        `json:"prediction"`
	PredictionLabel string     `json:"prediction_label"`
	Confidence      Confidence `json:"confidence"`
	RiskLevel       string     `json:"risk_level"`
	HealthAdvice    []string   `json:"health_advice"`
	Timestamp       string     `json:"timestamp"`
	Status          string     `json:"status"`
}

// Overview summarizes the dashboard header counters. ModelAccuracy and
// AvgResponseTime are fixed figures from the offline evaluation, not
// computed from the ledger.
type Overview struct {
	TotalPredictions  int     `json:"total_predictions"`
	RecentPredictions int     `json:"recent_predictions"`
	ModelAccuracy     float64 `json:"model_accuracy"`
	AvgResponseTime   float64 `json:"avg_response_time"`
}

// HourlyTrend carries 24 hourly buckets ordered oldest to newest.
type HourlyTrend struct {
	Labels []string `json:"labels"`
	Data   []int    `json:"data"`
}

// FeatureDistribution is a static illustrative summary block; it is part of
// the dashboard response shape but not derived from recorded events.
type FeatureDistribution struct {
	AgeGroups     map[string]int `json:"age_groups"`
	BMICategories map[string]int `json:"bmi_categories"`
	GlucoseLevels map[string]int `json:"glucose_levels"`
}

// PerformanceMetrics are fixed figures from the offline model evaluation.
type PerformanceMetrics struct {
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1Score   float64 `json:"f1_score"`
	AUCScore  float64 `json:"auc_score"`
}

// DashboardResponse is returned by GET /api/analytics/dashboard.
type DashboardResponse struct {
	Overview            Overview            `json:"overview"`
	RiskDistribution    map[string]int      `json:"risk_distribution"`
	HourlyTrend         HourlyTrend         `json:"hourly_trend"`
	FeatureDistribution FeatureDistribution `json:"feature_distribution"`
	PredictionsTimeline []store.Event       `json:"predictions_timeline"`
	PerformanceMetrics  PerformanceMetrics  `json:"performance_metrics"`
}

// FeedResponse is returned by GET /api/analytics/predictions.
type FeedResponse struct {
	Predictions []store.Event `json:"predictions"`
}
