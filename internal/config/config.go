package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Backend
	APIBaseURL string
	WSURL      string

	// Local state
	TokenPath string
	LogPath   string

	// Behavior
	RequestTimeoutSeconds int
	StarRollbackOnFailure bool
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	stateDir := getEnvOrDefault("LECTURA_STATE_DIR", defaultStateDir())

	cfg := &Config{
		APIBaseURL:            getEnvOrDefault("LECTURA_API_URL", "http://localhost:8080"),
		WSURL:                 getEnvOrDefault("LECTURA_WS_URL", "ws://localhost:8080/api/v1/ws"),
		TokenPath:             getEnvOrDefault("LECTURA_TOKEN_PATH", filepath.Join(stateDir, "session.json")),
		LogPath:               getEnvOrDefault("LECTURA_LOG_PATH", filepath.Join(stateDir, "lectura.log")),
		RequestTimeoutSeconds: getEnvAsIntOrDefault("LECTURA_REQUEST_TIMEOUT", 120),
		StarRollbackOnFailure: getEnvAsBoolOrDefault("LECTURA_STAR_ROLLBACK", true),
	}

	return cfg
}

func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".lectura"
	}
	return filepath.Join(home, ".lectura")
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}

func getEnvAsBoolOrDefault(key string, defaultVal bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}
	return b
}
