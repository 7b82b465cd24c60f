package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"revcast/internal/forecast"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// AppConfig holds the complete application configuration.
type AppConfig struct {
	Host           string
	Port           int
	Debug          bool
	AllowedOrigins []string
	Forecast       forecast.Config
	DataPath       string
	LogDir         string
}

// Load loads the configuration from .env files and environment variables.
func Load() (*AppConfig, error) {
	// 1. Try to load from the executable's directory first
	exePath, err := os.Executable()
	exeDir := ""
	if err == nil {
		exeDir = filepath.Dir(exePath)
		envPath := filepath.Join(exeDir, ".env")
		if err := godotenv.Load(envPath); err == nil {
			log.Debug().Str("path", envPath).Msg("Loaded configuration from binary directory")
		}
	}

	// 2. Fallback to current working directory (useful for development/go run)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found in working directory, relying on environment variables or binary-relative .env")
	}

	// 3. Resolve data paths
	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		if exeDir != "" {
			dataPath = exeDir
		} else {
			dataPath = "."
		}
	}
	logDir := filepath.Join(dataPath, "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Warn().Err(err).Str("path", logDir).Msg("Failed to create log directory")
	}

	fc := forecast.DefaultConfig()
	fc.DefaultTrials = getEnvInt("DEFAULT_NUM_SIMULATIONS", fc.DefaultTrials)
	fc.MinTrials = getEnvInt("MIN_NUM_SIMULATIONS", fc.MinTrials)
	fc.MaxTrials = getEnvInt("MAX_NUM_SIMULATIONS", fc.MaxTrials)
	fc.MaxOpportunities = getEnvInt("MAX_OPPORTUNITIES", fc.MaxOpportunities)
	fc.MaxHorizonDays = getEnvInt("MAX_TIME_HORIZON_DAYS", fc.MaxHorizonDays)
	fc.MaxDraws = getEnvInt("MAX_SIMULATION_DRAWS", fc.MaxDraws)
	fc.HistogramBuckets = getEnvInt("HISTOGRAM_BUCKETS", fc.HistogramBuckets)
	fc.DefaultTargets = getEnvFloats("DEFAULT_REVENUE_TARGETS", fc.DefaultTargets)

	cfg := &AppConfig{
		Host:  getEnv("HOST", "0.0.0.0"),
		Port:  getEnvInt("PORT", 8000),
		Debug: getEnvBool("DEBUG", false),
		AllowedOrigins: getEnvList("ALLOWED_ORIGINS", []string{
			"https://*.salesforce.com",
			"https://*.force.com",
			"https://*.lightning.force.com",
			"http://localhost:3000",
			"http://localhost:8080",
		}),
		Forecast: fc,
		DataPath: dataPath,
		LogDir:   logDir,
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
		log.Warn().Str("key", key).Str("value", value).Msg("Ignoring non-integer environment value")
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	if value, ok := os.LookupEnv(key); ok {
		parts := splitAndTrim(value)
		if len(parts) > 0 {
			return parts
		}
	}
	return fallback
}

func getEnvFloats(key string, fallback []float64) []float64 {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	parts := splitAndTrim(value)
	floats := make([]float64, 0, len(parts))
	for _, p := range parts {
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			log.Warn().Str("key", key).Str("value", p).Msg("Ignoring non-numeric list entry")
			continue
		}
		floats = append(floats, f)
	}
	if len(floats) == 0 {
		return fallback
	}
	return floats
}

func splitAndTrim(value string) []string {
	parts := make([]string, 0)
	for _, p := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
