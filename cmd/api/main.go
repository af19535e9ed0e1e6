package main

import (
	"log/slog"
	"os"

	"github.com/PratikDhanave/diabetes-risk-service/internal/config"
	"github.com/PratikDhanave/diabetes-risk-service/internal/features"
	"github.com/PratikDhanave/diabetes-risk-service/internal/httpserver"
	"github.com/PratikDhanave/diabetes-risk-service/internal/metrics"
	"github.com/PratikDhanave/diabetes-risk-service/internal/model"
	"github.com/PratikDhanave/diabetes-risk-service/internal/predict"
	"github.com/PratikDhanave/diabetes-risk-service/internal/store"
)

// main boots the service: config → model artifacts → analytics store → HTTP.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("config load failed", "err", err)
		os.Exit(1)
	}

	// A failed artifact load must not crash the process; predictions fail
	// fast with a model-unavailable error until it is fixed and restarted.
	scaler, classifier, err := model.Load(cfg.ModelDir, features.Count)
	if err != nil {
		logger.Warn("model artifacts not loaded, predictions will be unavailable",
			"dir", cfg.ModelDir, "err", err)
		metrics.ModelLoaded.Set(0)
	} else {
		logger.Info("model and scaler loaded", "dir", cfg.ModelDir)
		metrics.ModelLoaded.Set(1)
	}

	scorer := predict.NewScorer(scaler, classifier)

	// Prediction history lives for the process lifetime only.
	st := store.NewMemoryStore(cfg.HistoryLimit)

	router := httpserver.NewRouter(scorer, st, logger)

	logger.Info("server started", "port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
