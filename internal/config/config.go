package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config contains runtime configuration required by the service.
type Config struct {
	Port         string
	ModelDir     string
	HistoryLimit int
}

// Defaults keep the service runnable out-of-the-box.
const (
	defaultPort         = "8080"
	defaultModelDir     = "model"
	defaultHistoryLimit = 1000
)

// Load reads configuration from environment variables, with a .env file as
// local-dev fallback.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:         defaultPort,
		ModelDir:     defaultModelDir,
		HistoryLimit: defaultHistoryLimit,
	}

	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		cfg.Port = v
	}
	if v := strings.TrimSpace(os.Getenv("MODEL_DIR")); v != "" {
		cfg.ModelDir = v
	}
	if v := strings.TrimSpace(os.Getenv("HISTORY_LIMIT")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("HISTORY_LIMIT must be a positive integer, got %q", v)
		}
		cfg.HistoryLimit = n
	}

	return cfg, nil
}
