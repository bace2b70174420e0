// Package config loads runtime settings for the scorer service from the
// environment, with an optional .env file for local development.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config describes all runtime settings.
type Config struct {
	Port string

	Log struct {
		Level  string // zerolog level name
		Format string // json|console
	}

	Words struct {
		File string // empty means the embedded catalog
	}

	Game struct {
		MaxGuesses int
		DailySalt  string
	}

	HTTP struct {
		ClientOrigin   string
		HandlerTimeout time.Duration
		RateLimitRPS   float64
		RateLimitBurst int
	}
}

// Load reads .env (if present) and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from environment variables only.
func FromEnv() (Config, error) {
	var c Config

	c.Port = envString("PORT", "5175")
	c.Log.Level = envString("LOG_LEVEL", "info")
	c.Log.Format = envString("LOG_FORMAT", "json")

	c.Words.File = os.Getenv("WORDS_FILE")

	c.Game.MaxGuesses = envInt("MAX_GUESSES", 6)
	c.Game.DailySalt = envString("DAILY_SALT", "local_dev_salt")

	c.HTTP.ClientOrigin = envString("CLIENT_ORIGIN", "http://localhost:5173")
	c.HTTP.HandlerTimeout = envDuration("HANDLER_TIMEOUT", 10*time.Second)
	c.HTTP.RateLimitRPS = envFloat("RATE_LIMIT_RPS", 10)
	c.HTTP.RateLimitBurst = envInt("RATE_LIMIT_BURST", 20)

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the service cannot run with.
func (c Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT is empty")
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("unsupported LOG_LEVEL=%q: %w", c.Log.Level, err)
	}
	if c.Log.Format != "json" && c.Log.Format != "console" {
		return fmt.Errorf("unsupported LOG_FORMAT=%q (want json|console)", c.Log.Format)
	}
	if c.Game.MaxGuesses < 1 {
		return fmt.Errorf("MAX_GUESSES must be positive, got %d", c.Game.MaxGuesses)
	}
	if c.HTTP.HandlerTimeout <= 0 {
		return errors.New("HANDLER_TIMEOUT must be positive")
	}
	if c.HTTP.RateLimitRPS <= 0 || c.HTTP.RateLimitBurst < 1 {
		return errors.New("rate limit must allow at least one request")
	}
	return nil
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}
