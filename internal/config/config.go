package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Port        string
	CatalogPath string
	LogLevel    string

	// DefaultMood is returned by the classifier when no keyword matches.
	DefaultMood string
	// DefaultLanguage is assumed when a message names no language.
	DefaultLanguage string
	// ConfidenceDivisor normalizes the raw keyword score into [0,1]:
	// confidence = min(score/ConfidenceDivisor, 1).
	ConfidenceDivisor float64
	// MaxAlternatives caps the total number of alternative suggestions
	// returned for a failed playlist query.
	MaxAlternatives int
}

// Load reads configuration from .env file (if present) and environment variables.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	divisor, err := strconv.ParseFloat(getEnv("CONFIDENCE_DIVISOR", "2.0"), 64)
	if err != nil || divisor <= 0 {
		divisor = 2.0
	}

	maxAlts, err := strconv.Atoi(getEnv("MAX_ALTERNATIVES", "3"))
	if err != nil || maxAlts < 0 {
		maxAlts = 3
	}

	return &Config{
		Port:              getEnv("PORT", "8080"),
		CatalogPath:       getEnv("CATALOG_PATH", ""),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		DefaultMood:       getEnv("DEFAULT_MOOD", "happy"),
		DefaultLanguage:   getEnv("DEFAULT_LANGUAGE", "Tamil"),
		ConfidenceDivisor: divisor,
		MaxAlternatives:   maxAlts,
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
