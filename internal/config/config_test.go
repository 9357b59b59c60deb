package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "GEMINI_API_KEY", "GEMINI_MODEL", "MAX_FILE_SIZE", "SUGGESTION_TIMEOUT", "READ_TIMEOUT", "WRITE_TIMEOUT", "CORS_ALLOW_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "*", cfg.Server.CORSAllowOrigins)
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
	assert.Equal(t, int64(10485760), cfg.Upload.MaxFileSize)
	assert.Equal(t, 10*time.Second, cfg.Suggestions.Timeout)
	assert.False(t, cfg.SummarizerEnabled())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("MAX_FILE_SIZE", "2048")
	t.Setenv("SUGGESTION_TIMEOUT", "1500ms")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, int64(2048), cfg.Upload.MaxFileSize)
	assert.Equal(t, 1500*time.Millisecond, cfg.Suggestions.Timeout)
	assert.True(t, cfg.SummarizerEnabled())
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("MAX_FILE_SIZE", "lots")
	t.Setenv("SUGGESTION_TIMEOUT", "soon")
	t.Setenv("READ_TIMEOUT", "-5s")

	cfg := Load()

	assert.Equal(t, int64(10485760), cfg.Upload.MaxFileSize)
	assert.Equal(t, 10*time.Second, cfg.Suggestions.Timeout)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
}
