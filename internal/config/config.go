// Package config loads runtime settings from the process environment.
// The backend credential is deliberately not handled here; the provider
// gateway reads it itself on first use.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Production defaults: the recommended Groq model first, smaller/older
// variants as fallbacks.
const (
	DefaultModel    = "llama-3.3-70b-versatile"
	defaultFallback = "llama-3.1-8b-instant,llama3-70b-8192,llama3-8b-8192"
)

// Config carries the arena's runtime settings.
type Config struct {
	DefaultModel   string
	FallbackModels []string
	Port           int
	Share          bool
	LogLevel       string
}

// Load reads settings from the environment, falling back to defaults.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("ARENA_DEFAULT_MODEL", DefaultModel)
	v.SetDefault("ARENA_FALLBACK_MODELS", defaultFallback)
	v.SetDefault("ARENA_PORT", 8080)
	v.SetDefault("SHARE", false)
	v.SetDefault("ARENA_LOG_LEVEL", "info")

	return &Config{
		DefaultModel:   v.GetString("ARENA_DEFAULT_MODEL"),
		FallbackModels: splitModels(v.GetString("ARENA_FALLBACK_MODELS")),
		Port:           v.GetInt("ARENA_PORT"),
		Share:          v.GetBool("SHARE"),
		LogLevel:       v.GetString("ARENA_LOG_LEVEL"),
	}
}

// Addr returns the listen address. SHARE=true exposes the server beyond
// localhost.
func (c *Config) Addr() string {
	host := "127.0.0.1"
	if c.Share {
		host = "0.0.0.0"
	}
	return fmt.Sprintf("%s:%d", host, c.Port)
}

// splitModels parses a comma-separated model list, trimming whitespace and
// dropping empty entries.
func splitModels(s string) []string {
	var out []string
	for _, m := range strings.Split(s, ",") {
		m = strings.TrimSpace(m)
		if m != "" {
			out = append(out, m)
		}
	}
	return out
}
