package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the tournament runner
type Config struct {
	// Board layout file
	BoardPath string

	// Roster as "name:strategy" entries, e.g. "alice:sequential"
	Players []string

	// Storage
	StorageType string // "memory" or "sqlite"
	DataDir     string

	// How many matches run concurrently
	WorkerCount int

	// Optional Discord reporting
	DiscordToken     string
	DiscordChannelID string

	// Optional Elasticsearch archival
	ElasticsearchURL string

	// Environment
	Environment string // "development" or "production"
}

// Load reads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// Only return error if file exists but couldn't be loaded
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	workers, err := intEnvWithDefault("WORKER_COUNT", 4)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		BoardPath:        getEnvWithDefault("BOARD_PATH", filepath.Join(wd, "board.txt")),
		Players:          splitList(getEnvWithDefault("PLAYERS", "alice:sequential,bob:random,carol:random,dave:quitter")),
		StorageType:      getEnvWithDefault("STORAGE_TYPE", "memory"),
		DataDir:          getEnvWithDefault("DATA_DIR", filepath.Join(wd, "data")),
		WorkerCount:      workers,
		DiscordToken:     os.Getenv("DISCORD_TOKEN"),
		DiscordChannelID: os.Getenv("DISCORD_CHANNEL_ID"),
		ElasticsearchURL: os.Getenv("ELASTICSEARCH_URL"),
		Environment:      getEnvWithDefault("ENVIRONMENT", "development"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks if all required configuration is present
func (c *Config) validate() error {
	if c.BoardPath == "" {
		return fmt.Errorf("BOARD_PATH is required")
	}
	if len(c.Players) < 2 {
		return fmt.Errorf("PLAYERS needs at least two entries")
	}
	if c.WorkerCount < 1 {
		return fmt.Errorf("WORKER_COUNT must be positive")
	}
	if c.DiscordToken != "" && c.DiscordChannelID == "" {
		return fmt.Errorf("DISCORD_CHANNEL_ID is required when DISCORD_TOKEN is set")
	}
	return nil
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// getEnvWithDefault returns environment variable value or default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func intEnvWithDefault(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
