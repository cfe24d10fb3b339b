package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DirectoryTTL() != time.Hour {
		t.Errorf("expected 1h directory TTL, got %v", cfg.DirectoryTTL())
	}
	if cfg.SeriesTTL() != 5*time.Minute {
		t.Errorf("expected 5m series TTL, got %v", cfg.SeriesTTL())
	}
	if cfg.Sampling.MaxRows != 1000 || cfg.Sampling.ChartThreshold != 2000 || cfg.Sampling.ChartTarget != 1500 {
		t.Errorf("unexpected sampling defaults: %+v", cfg.Sampling)
	}
	if cfg.Search.Limit != 10 || cfg.Search.MaxSuggestions != 5 {
		t.Errorf("unexpected search defaults: %+v", cfg.Search)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
cache:
  directory_ttl_minutes: 30
  snapshot_path: /tmp/symbols.csv
sampling:
  max_rows: 500
database:
  sqlite_path: /tmp/dash.db
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SQLITE_PATH", "/tmp/override.db")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DirectoryTTL() != 30*time.Minute {
		t.Errorf("expected 30m TTL, got %v", cfg.DirectoryTTL())
	}
	if cfg.Sampling.MaxRows != 500 {
		t.Errorf("expected max_rows 500, got %d", cfg.Sampling.MaxRows)
	}
	if cfg.Database.SQLitePath != "/tmp/override.db" {
		t.Errorf("expected env override, got %q", cfg.Database.SQLitePath)
	}
}

func TestValidate_Rejections(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}

	cfg.Sampling.MaxRows = 2
	if err := cfg.Validate(); err == nil {
		t.Error("expected rejection of tiny max_rows")
	}

	cfg, _ = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	cfg.Sampling.ChartTarget = 3000
	if err := cfg.Validate(); err == nil {
		t.Error("expected rejection of target above threshold")
	}
}
