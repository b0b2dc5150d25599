package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const defaultShutdownTimeout = 5 * time.Second

// Config holds application configuration
type Config struct {
	// Server
	ServerPort      string
	GinMode         string
	ShutdownTimeout time.Duration

	// Inventory
	SeatChartPath string
}

// Load loads configuration from environment variables
func Load() *Config {
	// Try to load .env file (optional for local development)
	_ = godotenv.Load()

	config := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		GinMode:         getEnv("GIN_MODE", "release"),
		ShutdownTimeout: defaultShutdownTimeout,
		SeatChartPath:   os.Getenv("SEAT_CHART_PATH"),
	}

	if raw := os.Getenv("SHUTDOWN_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil || timeout <= 0 {
			log.Printf("WARNING: invalid SHUTDOWN_TIMEOUT %q (using %s)\n", raw, defaultShutdownTimeout)
		} else {
			config.ShutdownTimeout = timeout
		}
	}

	if config.SeatChartPath == "" {
		log.Println("WARNING: SEAT_CHART_PATH not set, seat inventory starts empty")
	}

	return config
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
