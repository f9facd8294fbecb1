// Package config loads web-server settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/dgallion1/mdtools/internal/heading"
)

type Config struct {
	Port string

	// Optional API key; endpoints are public when empty.
	APIKey string

	// Upload limits
	MaxUploadBytes int64

	// Default DOCX template applied when a request supplies none.
	TemplatePath string

	// Numbering style used by /api/edit when the request omits one.
	DefaultStyle string
}

func Load() Config {
	cfg := Config{
		Port:           envOr("MDTOOLS_PORT", "8090"),
		APIKey:         os.Getenv("MDTOOLS_API_KEY"),
		MaxUploadBytes: envInt64("MDTOOLS_MAX_UPLOAD_BYTES", 10485760), // 10MB
		TemplatePath:   os.Getenv("MDTOOLS_TEMPLATE_PATH"),
		DefaultStyle:   envOr("MDTOOLS_DEFAULT_STYLE", "technical"),
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 10485760
	}

	return cfg
}

func (c Config) Validate() error {
	if _, err := heading.StyleByName(c.DefaultStyle); err != nil {
		return fmt.Errorf("MDTOOLS_DEFAULT_STYLE: %w", err)
	}
	if c.TemplatePath != "" {
		if _, err := os.Stat(c.TemplatePath); err != nil {
			return fmt.Errorf("MDTOOLS_TEMPLATE_PATH: %w", err)
		}
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
