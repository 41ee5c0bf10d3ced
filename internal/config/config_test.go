package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "agenda.yaml")
	content := `
http_addr: ":9090"
jwt_secret: "from-file"
db:
  driver: sqlite
  sqlite_path: /tmp/agenda.db
holidays:
  timeout: 2s
plans:
  free_events_limit: 5
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("PLAN_FREE_EVENTS_LIMIT", "7")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.HTTPAddr != ":9090" {
		t.Fatalf("HTTPAddr = %q, want value from file", cfg.HTTPAddr)
	}
	if cfg.JWTSecret != "from-env" {
		t.Fatalf("JWTSecret = %q, env must win", cfg.JWTSecret)
	}
	if cfg.Plans.FreeEventsLimit != 7 {
		t.Fatalf("FreeEventsLimit = %d, want 7", cfg.Plans.FreeEventsLimit)
	}
	if cfg.DB.Driver != "sqlite" || cfg.DB.SQLitePath != "/tmp/agenda.db" {
		t.Fatalf("DB = %+v", cfg.DB)
	}
	if cfg.Holidays.Timeout != 2*time.Second {
		t.Fatalf("Holidays.Timeout = %v", cfg.Holidays.Timeout)
	}
	if cfg.GRPCAddr != ":50051" {
		t.Fatalf("GRPCAddr default lost: %q", cfg.GRPCAddr)
	}
}

func TestLoad_RequiresJWTSecretForGateway(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("JWT_SECRET", "")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error without JWT_SECRET")
	}
}

func TestLoadDBConfig_UnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	if _, err := LoadDBConfig(); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}
