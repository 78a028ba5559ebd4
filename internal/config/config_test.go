package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if cfg.Score.Text != nil || cfg.History.Last != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `[score]
text = "吾輩は猫である。"
format = "json"
show-stats = true

[history]
last = 5
curve-window = 3
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Score.Text == nil || *cfg.Score.Text != "吾輩は猫である。" {
		t.Fatalf("unexpected text: %v", cfg.Score.Text)
	}
	if cfg.Score.Format == nil || *cfg.Score.Format != "json" {
		t.Fatalf("unexpected format: %v", cfg.Score.Format)
	}
	if cfg.Score.ShowStats == nil || !*cfg.Score.ShowStats {
		t.Fatalf("expected show-stats to be set")
	}
	if cfg.Score.Save != nil {
		t.Fatalf("expected save to be unset")
	}
	if cfg.History.Last == nil || *cfg.History.Last != 5 {
		t.Fatalf("unexpected last: %v", cfg.History.Last)
	}
	if cfg.History.CurveWindow == nil || *cfg.History.CurveWindow != 3 {
		t.Fatalf("unexpected curve-window: %v", cfg.History.CurveWindow)
	}
}

func TestLoadConfigRejectsUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[score]\ncolour = true\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected error for unknown key")
	}
}

func TestDefaultPathsUseXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	t.Setenv("XDG_DATA_HOME", "/tmp/data")
	if got := DefaultConfigPath(); got != filepath.Join("/tmp/cfg", "tateisi", "config.toml") {
		t.Fatalf("unexpected config path: %s", got)
	}
	if got := DefaultDBPath(); got != filepath.Join("/tmp/data", "tateisi", "tateisi.db") {
		t.Fatalf("unexpected db path: %s", got)
	}
}
