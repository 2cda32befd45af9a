package config

import (
	"log/slog"
	"path/filepath"
	"testing"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("VECTOR_SIZE", "768")
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "data", "test.db"))
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.VectorSize != 768 {
		t.Errorf("VectorSize = %d, want 768", cfg.VectorSize)
	}
	if cfg.StoreBackend != "sqlite" {
		t.Errorf("StoreBackend = %q, want sqlite default", cfg.StoreBackend)
	}
	if cfg.APIPort != "9000" {
		t.Errorf("APIPort = %q, want 9000 default", cfg.APIPort)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want info default", cfg.LogLevel)
	}
}

func TestLoad_MissingVectorSize(t *testing.T) {
	t.Setenv("VECTOR_SIZE", "")

	if _, err := Load(); err == nil {
		t.Error("Load() without VECTOR_SIZE should return error")
	}
}

func TestLoad_InvalidVectorSize(t *testing.T) {
	tests := []string{"abc", "0", "-5"}
	for _, v := range tests {
		t.Run(v, func(t *testing.T) {
			t.Setenv("VECTOR_SIZE", v)
			if _, err := Load(); err == nil {
				t.Errorf("Load() with VECTOR_SIZE=%q should return error", v)
			}
		})
	}
}

func TestLoad_InvalidBackend(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("STORE_BACKEND", "postgres")

	if _, err := Load(); err == nil {
		t.Error("Load() with unsupported backend should return error")
	}
}

func TestLoad_QdrantBackend(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("STORE_BACKEND", "Qdrant")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.StoreBackend != "qdrant" {
		t.Errorf("StoreBackend = %q, want normalized qdrant", cfg.StoreBackend)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "INFO", want: slog.LevelInfo},
		{input: "warn", want: slog.LevelWarn},
		{input: "warning", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "bogus", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := parseLogLevel(tt.input); got != tt.want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
