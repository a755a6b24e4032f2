package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Server.Port == "" {
		t.Error("Expected a default port")
	}
	if cfg.Gemini.Model == "" {
		t.Error("Expected a default model name")
	}
	if cfg.Scraper.Timeout <= 0 {
		t.Error("Expected a positive scraper timeout")
	}
	if cfg.Storage.MaxFileSize <= 0 {
		t.Error("Expected a positive max file size")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("GEMINI_MODEL", "gemini-2.0-pro")
	t.Setenv("SCRAPER_TIMEOUT", "30s")
	t.Setenv("MAX_FILE_SIZE", "1048576")

	cfg := Load()

	if cfg.Server.Port != "8080" {
		t.Errorf("Expected port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Gemini.Model != "gemini-2.0-pro" {
		t.Errorf("Expected overridden model, got %s", cfg.Gemini.Model)
	}
	if cfg.Scraper.Timeout != 30*time.Second {
		t.Errorf("Expected 30s timeout, got %v", cfg.Scraper.Timeout)
	}
	if cfg.Storage.MaxFileSize != 1048576 {
		t.Errorf("Expected 1MiB max file size, got %d", cfg.Storage.MaxFileSize)
	}
}

func TestGetEnvAsDurationFallback(t *testing.T) {
	t.Setenv("SCRAPER_TIMEOUT", "not-a-duration")

	cfg := Load()
	if cfg.Scraper.Timeout != 10*time.Second {
		t.Errorf("Expected default 10s for invalid duration, got %v", cfg.Scraper.Timeout)
	}
}
