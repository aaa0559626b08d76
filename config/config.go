// Package config loads the portal configuration from the environment, with
// an optional .env file for local development.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment represents the application environment.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// Config holds all application configuration.
type Config struct {
	// Application
	App AppConfig

	// School header values shown across the portal views.
	School SchoolConfig

	// Seed controls how the record store is generated at startup.
	Seed SeedConfig
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name        string
	Environment Environment
	Debug       bool
}

// SchoolConfig holds the fixed school identity.
type SchoolConfig struct {
	Name    string
	Class   string
	Section string
}

// SeedConfig holds seed-data generation settings.
type SeedConfig struct {
	// RandomSource seeds the randomized subject scores. Zero means
	// "derive from the clock"; any other value makes runs reproducible.
	RandomSource int64
}

// Load reads the configuration from the environment. A missing .env file is
// not an error - production supplies real environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	return &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "student-portal"),
			Environment: Environment(getEnv("APP_ENV", string(EnvDevelopment))),
			Debug:       getEnvBool("APP_DEBUG", false),
		},
		School: SchoolConfig{
			Name:    getEnv("SCHOOL_NAME", "CARMEL SCHOOL - JORHAT"),
			Class:   getEnv("SCHOOL_CLASS", "10"),
			Section: getEnv("SCHOOL_SECTION", "A"),
		},
		Seed: SeedConfig{
			RandomSource: getEnvInt64("SEED_RANDOM_SOURCE", 0),
		},
	}, nil
}

// IsProduction reports whether the app runs in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Environment == EnvProduction
}

// getEnv returns an environment variable or a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool returns a boolean environment variable.
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt64 returns an int64 environment variable.
func getEnvInt64(key string, defaultValue int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if i, err := strconv.ParseInt(value, 10, 64); err == nil {
		return i
	}
	return defaultValue
}
