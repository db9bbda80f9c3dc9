package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Fatalf("expected default addr :8080, got %q", cfg.Addr)
	}
	if cfg.DBDSN != "" {
		t.Fatalf("expected empty dsn by default, got %q", cfg.DBDSN)
	}
	if cfg.ReadTimeoutSec != 5 || cfg.WriteTimeoutSec != 10 {
		t.Fatalf("expected default timeouts 5/10, got %d/%d", cfg.ReadTimeoutSec, cfg.WriteTimeoutSec)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PETS_ADDR", ":9090")
	t.Setenv("PETS_DB_DSN", "postgres://localhost/pets")
	t.Setenv("PETS_LOG_FORMAT", "json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Addr != ":9090" {
		t.Fatalf("expected env addr, got %q", cfg.Addr)
	}
	if cfg.DBDSN != "postgres://localhost/pets" {
		t.Fatalf("expected env dsn, got %q", cfg.DBDSN)
	}
	if cfg.LogFormat != "json" {
		t.Fatalf("expected env log format, got %q", cfg.LogFormat)
	}
	// lo no seteado conserva el default
	if cfg.WriteTimeoutSec != 10 {
		t.Fatalf("expected default write timeout, got %d", cfg.WriteTimeoutSec)
	}
}

func TestLoad_YAMLFileThenEnvWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "addr: \":7070\"\nlog_level: debug\nread_timeout_sec: 15\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("PETS_CONFIG", path)
	t.Setenv("PETS_ADDR", ":6060") // env pisa al archivo

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Addr != ":6060" {
		t.Fatalf("expected env over file, got %q", cfg.Addr)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected file log level, got %q", cfg.LogLevel)
	}
	if cfg.ReadTimeoutSec != 15 {
		t.Fatalf("expected file read timeout, got %d", cfg.ReadTimeoutSec)
	}
}

func TestLoad_MissingFileFails(t *testing.T) {
	t.Setenv("PETS_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestLoad_RejectsBadValues(t *testing.T) {
	t.Setenv("PETS_READ_TIMEOUT_SEC", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for zero timeout")
	}
}
