package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != ":8080" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.Heatmap.GridSize != 10 || !cfg.Heatmap.Fallback {
		t.Errorf("Heatmap = %+v", cfg.Heatmap)
	}
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := []byte(`
port: ":9000"
db_path: /tmp/futbol.db
statsbomb:
  timeout: 5s
heatmap:
  normalization: fixed
  fixed_scale: 40
  grid_size: 12
rate_limit:
  requests: 10
  window: 30s
`)
	if err := os.WriteFile(path, body, 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("PORT", ":9100")
	t.Setenv("HEATMAP_GRID_SIZE", "8")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != ":9100" {
		t.Errorf("env did not override port: %q", cfg.Port)
	}
	if cfg.DBPath != "/tmp/futbol.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.StatsBomb.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v", cfg.StatsBomb.Timeout)
	}
	if cfg.StatsBomb.BaseURL == "" {
		t.Error("default base URL lost when file omits it")
	}
	if cfg.Heatmap.Normalization != "fixed" || cfg.Heatmap.FixedScale != 40 {
		t.Errorf("Heatmap = %+v", cfg.Heatmap)
	}
	if cfg.Heatmap.GridSize != 8 {
		t.Errorf("GridSize = %d, want env value 8", cfg.Heatmap.GridSize)
	}
	if cfg.RateLimit.Window != 30*time.Second {
		t.Errorf("Window = %v", cfg.RateLimit.Window)
	}
}

func TestLoadBadEnv(t *testing.T) {
	t.Setenv("HEATMAP_FIXED_SCALE", "lots")
	if _, err := Load(""); err == nil {
		t.Error("expected error for non-numeric scale")
	}
}
