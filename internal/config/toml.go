// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Score   ScoreConfig   `toml:"score"`
	History HistoryConfig `toml:"history"`
}

// ScoreConfig maps scoring-related settings.
type ScoreConfig struct {
	Text      *string `toml:"text"`
	Format    *string `toml:"format"`
	Lines     *bool   `toml:"lines"`
	ShowStats *bool   `toml:"show-stats"`
	Save      *bool   `toml:"save"`
}

// HistoryConfig maps history-related settings.
type HistoryConfig struct {
	Last        *int  `toml:"last"`
	CurveWindow *int  `toml:"curve-window"`
	Plot        *bool `toml:"plot"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
