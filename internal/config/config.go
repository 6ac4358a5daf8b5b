package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Storage backend names.
const (
	StorageSQLite = "sqlite"
	StorageMemory = "memory"
)

type Config struct {
	Addr                string
	Storage             string
	DBPath              string
	LogLevel            string
	OpenAIAPIKey        string
	OpenAIBaseURL       string
	OpenAIModel         string
	SolverTimeoutSecs   int
	SolverMaxTokens     int
	RecentProblemsLimit int
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:                envOr("ADDR", ":8080"),
		Storage:             envOr("STORAGE", StorageSQLite),
		DBPath:              envOr("DB_PATH", "file:mathsolver.db"),
		LogLevel:            envOr("LOG_LEVEL", "INFO"),
		OpenAIAPIKey:        os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:       os.Getenv("OPENAI_BASE_URL"),
		OpenAIModel:         envOr("OPENAI_MODEL", "gpt-5"),
		SolverTimeoutSecs:   envIntOr("SOLVER_TIMEOUT_SECONDS", 45),
		SolverMaxTokens:     envIntOr("SOLVER_MAX_TOKENS", 1500),
		RecentProblemsLimit: envIntOr("RECENT_PROBLEMS_LIMIT", 10),
	}
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("ADDR cannot be empty")
	}
	if c.Storage != StorageSQLite && c.Storage != StorageMemory {
		return fmt.Errorf("STORAGE must be %q or %q, got %q", StorageSQLite, StorageMemory, c.Storage)
	}
	if c.Storage == StorageSQLite && c.DBPath == "" {
		return fmt.Errorf("DB_PATH cannot be empty when STORAGE=sqlite")
	}
	if c.OpenAIAPIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}
	if c.SolverTimeoutSecs <= 0 {
		return fmt.Errorf("SOLVER_TIMEOUT_SECONDS must be positive, got %d", c.SolverTimeoutSecs)
	}
	if c.SolverMaxTokens <= 0 {
		return fmt.Errorf("SOLVER_MAX_TOKENS must be positive, got %d", c.SolverMaxTokens)
	}
	if c.RecentProblemsLimit <= 0 {
		return fmt.Errorf("RECENT_PROBLEMS_LIMIT must be positive, got %d", c.RecentProblemsLimit)
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}
