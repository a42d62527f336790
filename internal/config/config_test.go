package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Server.Port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Database.DBName != "lectica" {
		t.Errorf("Database.DBName = %q, want lectica", cfg.Database.DBName)
	}
	if cfg.GetAcquireTimeout() != 5*time.Second {
		t.Errorf("acquire timeout = %v, want 5s", cfg.GetAcquireTimeout())
	}
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	content := []byte(`
server:
  port: "9000"
database:
  host: filehost
  acquire_timeout: 2s
jwt:
  secret: file-secret
`)
	if err := os.WriteFile(configPath, content, 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("DB_HOST", "envhost")
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != "9000" {
		t.Errorf("Server.Port = %q, want file value 9000", cfg.Server.Port)
	}
	if cfg.Database.Host != "envhost" {
		t.Errorf("Database.Host = %q, env must win over file", cfg.Database.Host)
	}
	if cfg.JWT.Secret != "env-secret" {
		t.Errorf("JWT.Secret = %q, env must win over file", cfg.JWT.Secret)
	}
	if cfg.GetAcquireTimeout() != 2*time.Second {
		t.Errorf("acquire timeout = %v, want 2s from file", cfg.GetAcquireTimeout())
	}
}

func TestLoadConfig_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("config without a JWT secret must be rejected")
	}
}

func TestGetPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)
	cfg.Database.User = "app"
	cfg.Database.Password = "pw"
	cfg.Database.Host = "db.internal"
	cfg.Database.Port = "5433"
	cfg.Database.DBName = "courses"

	want := "postgres://app:pw@db.internal:5433/courses?sslmode=disable"
	if got := cfg.GetPostgresConnectionString(); got != want {
		t.Errorf("connection string = %q, want %q", got, want)
	}
}
