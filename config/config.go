package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Logger LoggerConfig
	Driver DriverConfig
	Bench  BenchConfig
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level string // debug, info, warn, error
}

// DriverConfig holds command driver configuration
type DriverConfig struct {
	// InputPath is the command file to read; empty means stdin. A file
	// named on the command line takes precedence.
	InputPath string

	// TradeHistorySize caps the in-memory trade recorder; 0 disables it.
	TradeHistorySize int
}

// BenchConfig shapes the generated order flow for the benchmark binary
type BenchConfig struct {
	Orders      int
	PriceMin    int
	PriceMax    int
	MaxQty      int
	CancelEvery int // issue one cancel per this many orders; 0 disables
	Seed        int64
}

// Load loads configuration from .env file (if exists) and environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	cfg := &Config{
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Driver: DriverConfig{
			InputPath:        getEnv("INPUT_PATH", ""),
			TradeHistorySize: getEnvInt("TRADE_HISTORY_SIZE", 1000),
		},
		Bench: BenchConfig{
			Orders:      getEnvInt("BENCH_ORDERS", 100000),
			PriceMin:    getEnvInt("BENCH_PRICE_MIN", 90),
			PriceMax:    getEnvInt("BENCH_PRICE_MAX", 110),
			MaxQty:      getEnvInt("BENCH_MAX_QTY", 100),
			CancelEvery: getEnvInt("BENCH_CANCEL_EVERY", 10),
			Seed:        getEnvInt64("BENCH_SEED", 1),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Logger.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error")
	}

	if c.Driver.TradeHistorySize < 0 {
		return fmt.Errorf("TRADE_HISTORY_SIZE must be >= 0")
	}

	if c.Bench.Orders < 1 {
		return fmt.Errorf("BENCH_ORDERS must be > 0")
	}
	if c.Bench.PriceMin < 1 {
		return fmt.Errorf("BENCH_PRICE_MIN must be > 0")
	}
	if c.Bench.PriceMax < c.Bench.PriceMin {
		return fmt.Errorf("BENCH_PRICE_MAX must be >= BENCH_PRICE_MIN")
	}
	if c.Bench.MaxQty < 1 {
		return fmt.Errorf("BENCH_MAX_QTY must be > 0")
	}
	if c.Bench.CancelEvery < 0 {
		return fmt.Errorf("BENCH_CANCEL_EVERY must be >= 0")
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvInt64 retrieves an int64 environment variable or returns a default value
func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}
