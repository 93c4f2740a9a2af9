// Package config loads bulletin's runtime settings through viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/papapumpkin/bulletin/internal/appearance"
)

// Card width bounds, in terminal cells.
const (
	MinCardWidth = 30
	MaxCardWidth = 120
)

// ErrInvalidWidth indicates a card width outside MinCardWidth..MaxCardWidth.
var ErrInvalidWidth = errors.New("card width out of range")

// Config holds all runtime configuration for a bulletin session.
// Values are populated from .bulletin.yaml, BULLETIN_* env vars, and CLI flags.
type Config struct {
	Deck          string            `mapstructure:"deck"`
	Animated      bool              `mapstructure:"animated"`
	Width         int               `mapstructure:"width"`
	TelemetryPath string            `mapstructure:"telemetry_path"`
	HistoryPath   string            `mapstructure:"history_path"`
	NoColor       bool              `mapstructure:"no_color"`
	Watch         bool              `mapstructure:"watch"`
	Appearance    appearance.Config `mapstructure:"appearance"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags. It fails when a
// value is out of range.
func Load() (Config, error) {
	viper.SetDefault("deck", "")
	viper.SetDefault("animated", true)
	viper.SetDefault("width", 60)
	viper.SetDefault("telemetry_path", "")
	viper.SetDefault("history_path", DefaultHistoryPath())
	viper.SetDefault("no_color", false)
	viper.SetDefault("watch", false)

	def := appearance.Default()
	viper.SetDefault("appearance.tint_color", def.TintColor)
	viper.SetDefault("appearance.title_color", def.TitleColor)
	viper.SetDefault("appearance.description_color", def.DescriptionColor)
	viper.SetDefault("appearance.action_button_color", def.ActionButtonColor)
	viper.SetDefault("appearance.action_title_color", def.ActionTitleColor)
	viper.SetDefault("appearance.alternative_title_color", def.AlternativeTitleColor)
	viper.SetDefault("appearance.border", def.Border)
	viper.SetDefault("appearance.compact_description", def.CompactDescription)
	viper.SetDefault("appearance.markdown", def.Markdown)
	viper.SetDefault("appearance.glamour_style", def.GlamourStyle)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Width < MinCardWidth || c.Width > MaxCardWidth {
		return fmt.Errorf("config: width %d (want %d..%d): %w", c.Width, MinCardWidth, MaxCardWidth, ErrInvalidWidth)
	}
	if err := c.Appearance.Validate(); err != nil {
		return fmt.Errorf("config: appearance: %w", err)
	}
	return nil
}

// DefaultHistoryPath returns ~/.local/share/bulletin/history.db, or a file
// in the working directory when the home directory is unknown.
func DefaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "bulletin-history.db"
	}
	return filepath.Join(home, ".local", "share", "bulletin", "history.db")
}
