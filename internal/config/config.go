package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"

	"github.com/Garsondee/Memory-Match/internal/game"
)

// Config holds the game settings. Values come from defaults, then the TOML
// file, then MEMORY_* environment variables.
type Config struct {
	AssetDir    string        `toml:"asset_dir"    env:"MEMORY_ASSET_DIR"`
	AssetSuffix string        `toml:"asset_suffix" env:"MEMORY_ASSET_SUFFIX"`
	RevealDelay time.Duration `toml:"reveal_delay" env:"MEMORY_REVEAL_DELAY"`
	CardSize    int           `toml:"card_size"    env:"MEMORY_CARD_SIZE"`
	CardMargin  int           `toml:"card_margin"  env:"MEMORY_CARD_MARGIN"`
	WindowTitle string        `toml:"window_title" env:"MEMORY_WINDOW_TITLE"`
	BackLabel   string        `toml:"back_label"   env:"MEMORY_BACK_LABEL"`
	LogLevel    string        `toml:"log_level"    env:"MEMORY_LOG_LEVEL"`
	Seed        int64         `toml:"seed"         env:"MEMORY_SEED"`
	Difficulty  string        `toml:"difficulty"   env:"MEMORY_DIFFICULTY"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		AssetDir:    filepath.Join(GetXDGDataHome(), "memory-match", "faces"),
		AssetSuffix: "32.png",
		RevealDelay: game.DefaultRevealDelay,
		CardSize:    64,
		CardMargin:  5,
		WindowTitle: "Memory Match",
		BackLabel:   "?",
		LogLevel:    "info",
	}
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "memory-match", "config.toml")
}

// Load reads path (GetConfigFilePath when empty) over the defaults and applies
// environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = GetConfigFilePath()
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the game cannot run with.
func (c Config) Validate() error {
	if c.CardSize <= 0 {
		return fmt.Errorf("card_size must be positive, got %d", c.CardSize)
	}
	if c.CardMargin < 0 {
		return fmt.Errorf("card_margin must not be negative, got %d", c.CardMargin)
	}
	if c.RevealDelay < 0 {
		return fmt.Errorf("reveal_delay must not be negative, got %s", c.RevealDelay)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if c.Difficulty != "" {
		if _, err := game.ParseDifficulty(c.Difficulty); err != nil {
			return fmt.Errorf("difficulty: %w", err)
		}
	}
	return nil
}

// Save writes the config as TOML, creating the directory if needed.
func Save(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config file: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
