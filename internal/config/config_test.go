package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "llama-3.3-70b-versatile", cfg.DefaultModel)
	assert.Equal(t, []string{"llama-3.1-8b-instant", "llama3-70b-8192", "llama3-8b-8192"}, cfg.FallbackModels)
	assert.Equal(t, 8080, cfg.Port)
	assert.False(t, cfg.Share)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ARENA_DEFAULT_MODEL", "custom-model")
	t.Setenv("ARENA_FALLBACK_MODELS", " model-a , model-b ,, ")
	t.Setenv("ARENA_PORT", "9999")
	t.Setenv("SHARE", "true")

	cfg := Load()

	assert.Equal(t, "custom-model", cfg.DefaultModel)
	assert.Equal(t, []string{"model-a", "model-b"}, cfg.FallbackModels)
	assert.Equal(t, 9999, cfg.Port)
	assert.True(t, cfg.Share)
}

func TestAddrRespectsShare(t *testing.T) {
	local := &Config{Port: 8080}
	assert.Equal(t, "127.0.0.1:8080", local.Addr())

	shared := &Config{Port: 8080, Share: true}
	assert.Equal(t, "0.0.0.0:8080", shared.Addr())
}
