package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "LOG_LEVEL", "LOG_FORMAT", "WORDS_FILE", "MAX_GUESSES", "DAILY_SALT",
		"CLIENT_ORIGIN", "HANDLER_TIMEOUT", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
	} {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)
	c, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "5175", c.Port)
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, "json", c.Log.Format)
	assert.Empty(t, c.Words.File)
	assert.Equal(t, 6, c.Game.MaxGuesses)
	assert.Equal(t, "local_dev_salt", c.Game.DailySalt)
	assert.Equal(t, "http://localhost:5173", c.HTTP.ClientOrigin)
	assert.Equal(t, 10*time.Second, c.HTTP.HandlerTimeout)
	assert.Equal(t, 10.0, c.HTTP.RateLimitRPS)
	assert.Equal(t, 20, c.HTTP.RateLimitBurst)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("WORDS_FILE", "/tmp/words.txt")
	t.Setenv("MAX_GUESSES", "8")
	t.Setenv("HANDLER_TIMEOUT", "2s")
	t.Setenv("RATE_LIMIT_RPS", "0.5")
	t.Setenv("RATE_LIMIT_BURST", "3")

	c, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "9000", c.Port)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, "console", c.Log.Format)
	assert.Equal(t, "/tmp/words.txt", c.Words.File)
	assert.Equal(t, 8, c.Game.MaxGuesses)
	assert.Equal(t, 2*time.Second, c.HTTP.HandlerTimeout)
	assert.Equal(t, 0.5, c.HTTP.RateLimitRPS)
	assert.Equal(t, 3, c.HTTP.RateLimitBurst)
}

func TestFromEnv_MalformedNumbersFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("MAX_GUESSES", "six")
	t.Setenv("HANDLER_TIMEOUT", "soon")

	c, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 6, c.Game.MaxGuesses)
	assert.Equal(t, 10*time.Second, c.HTTP.HandlerTimeout)
}

func TestFromEnv_Invalid(t *testing.T) {
	cases := map[string][2]string{
		"bad level":       {"LOG_LEVEL", "loud"},
		"bad format":      {"LOG_FORMAT", "xml"},
		"zero guesses":    {"MAX_GUESSES", "0"},
		"negative rps":    {"RATE_LIMIT_RPS", "-1"},
		"zero burst":      {"RATE_LIMIT_BURST", "0"},
		"negative timeout": {"HANDLER_TIMEOUT", "-1s"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(kv[0], kv[1])
			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}
