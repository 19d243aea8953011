package config

import (
	"log/slog"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/league?sslmode=disable")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("SUPPORTED_GAMES", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("USE_S3", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ServerPort != 8080 {
		t.Errorf("ServerPort = %d, want 8080", cfg.ServerPort)
	}
	if cfg.DefaultWinPoints != 10 {
		t.Errorf("DefaultWinPoints = %d, want 10", cfg.DefaultWinPoints)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
	if len(cfg.SupportedGames) != len(defaultSupportedGames) {
		t.Errorf("SupportedGames = %v, want defaults", cfg.SupportedGames)
	}
	if cfg.Summary.Enabled() {
		t.Error("summary should be disabled without an API key")
	}
	if cfg.Summary.Timeout != 10*time.Second {
		t.Errorf("Summary.Timeout = %s, want 10s", cfg.Summary.Timeout)
	}
	if cfg.Storage.UseS3 {
		t.Error("UseS3 should default to false")
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Errorf("CORSAllowedOrigins = %v, want [*]", cfg.CORSAllowedOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/league")
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SUPPORTED_GAMES", "Chess, Foosball ,")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("SUMMARY_TIMEOUT", "3s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ServerPort != 9000 {
		t.Errorf("ServerPort = %d, want 9000", cfg.ServerPort)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want debug", cfg.LogLevel)
	}
	if got := cfg.SupportedGames; len(got) != 2 || got[0] != "Chess" || got[1] != "Foosball" {
		t.Errorf("SupportedGames = %v, want [Chess Foosball]", got)
	}
	if !cfg.Summary.Enabled() {
		t.Error("summary should be enabled with an API key")
	}
	if cfg.Summary.Timeout != 3*time.Second {
		t.Errorf("Summary.Timeout = %s, want 3s", cfg.Summary.Timeout)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing database url", env: map[string]string{"DATABASE_URL": ""}},
		{name: "bad port", env: map[string]string{"SERVER_PORT": "abc"}},
		{name: "port out of range", env: map[string]string{"SERVER_PORT": "70000"}},
		{name: "bad log level", env: map[string]string{"LOG_LEVEL": "loud"}},
		{name: "bad summary timeout", env: map[string]string{"SUMMARY_TIMEOUT": "soon"}},
		{name: "negative win points", env: map[string]string{"DEFAULT_WIN_POINTS": "-1"}},
		{name: "bad rate limit", env: map[string]string{"RATE_LIMIT_ENABLED": "true", "RATE_LIMIT_REQUESTS": "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DATABASE_URL", "postgres://localhost/league")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Fatal("Load() expected error, got nil")
			}
		})
	}
}
