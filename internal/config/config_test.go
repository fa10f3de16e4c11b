package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MaxBytes != DefaultMaxBytes {
		t.Errorf("MaxBytes: got %d", cfg.MaxBytes)
	}
	if cfg.MaxLines != DefaultMaxLines {
		t.Errorf("MaxLines: got %d", cfg.MaxLines)
	}
	if cfg.Port != DefaultPort {
		t.Errorf("Port: got %d", cfg.Port)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel: got %q", cfg.LogLevel)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("EXTRATO_MAX_LINES", "500")
	t.Setenv("EXTRATO_PORT", "9090")
	t.Setenv("EXTRATO_CATEGORIES_FILE", "/tmp/categorias.json")
	t.Setenv("EXTRATO_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MaxLines != 500 {
		t.Errorf("MaxLines: got %d", cfg.MaxLines)
	}
	if cfg.Port != 9090 {
		t.Errorf("Port: got %d", cfg.Port)
	}
	if cfg.CategoriesFile != "/tmp/categorias.json" {
		t.Errorf("CategoriesFile: got %q", cfg.CategoriesFile)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel: got %q", cfg.LogLevel)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	for _, bad := range []string{"abc", "-1", "0"} {
		t.Setenv("EXTRATO_MAX_BYTES", bad)
		if _, err := Load(); err == nil {
			t.Errorf("EXTRATO_MAX_BYTES=%q: expected error", bad)
		}
	}
}
