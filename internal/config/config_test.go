package config

import (
	"errors"
	"os"
	"testing"

	"github.com/spf13/viper"

	"github.com/papapumpkin/bulletin/internal/appearance"
)

// resetViper clears all viper state between tests to avoid cross-contamination.
func resetViper() {
	viper.Reset()
}

func TestLoad_Defaults(t *testing.T) {
	resetViper()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"Deck", cfg.Deck, ""},
		{"Animated", cfg.Animated, true},
		{"Width", cfg.Width, 60},
		{"TelemetryPath", cfg.TelemetryPath, ""},
		{"HistoryPath", cfg.HistoryPath, DefaultHistoryPath()},
		{"NoColor", cfg.NoColor, false},
		{"Watch", cfg.Watch, false},
		{"Appearance.Border", cfg.Appearance.Border, appearance.BorderRounded},
		{"Appearance.TintColor", cfg.Appearance.TintColor, appearance.Default().TintColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	resetViper()

	tests := []struct {
		name   string
		envKey string
		envVal string
		field  func(Config) any
		want   any
	}{
		{
			name:   "deck",
			envKey: "BULLETIN_DECK",
			envVal: "/tmp/onboarding.toml",
			field:  func(c Config) any { return c.Deck },
			want:   "/tmp/onboarding.toml",
		},
		{
			name:   "animated",
			envKey: "BULLETIN_ANIMATED",
			envVal: "false",
			field:  func(c Config) any { return c.Animated },
			want:   false,
		},
		{
			name:   "width",
			envKey: "BULLETIN_WIDTH",
			envVal: "80",
			field:  func(c Config) any { return c.Width },
			want:   80,
		},
		{
			name:   "telemetry_path",
			envKey: "BULLETIN_TELEMETRY_PATH",
			envVal: "/tmp/events.jsonl",
			field:  func(c Config) any { return c.TelemetryPath },
			want:   "/tmp/events.jsonl",
		},
		{
			name:   "no_color",
			envKey: "BULLETIN_NO_COLOR",
			envVal: "true",
			field:  func(c Config) any { return c.NoColor },
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper()
			// Set env prefix so BULLETIN_* env vars map to config keys.
			viper.SetEnvPrefix("BULLETIN")
			viper.AutomaticEnv()

			os.Setenv(tt.envKey, tt.envVal)
			defer os.Unsetenv(tt.envKey)

			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() returned unexpected error: %v", err)
			}
			got := tt.field(cfg)
			if got != tt.want {
				t.Errorf("%s: got %v (%T), want %v (%T)", tt.name, got, got, tt.want, tt.want)
			}
		})
	}
}

func TestLoad_RejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   any
		wantErr error
	}{
		{"width too small", "width", 10, ErrInvalidWidth},
		{"width too large", "width", 500, ErrInvalidWidth},
		{"bad border", "appearance.border", "dotted", appearance.ErrInvalidBorder},
		{"bad color", "appearance.tint_color", "blue", appearance.ErrInvalidColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper()
			viper.Set(tt.key, tt.value)

			_, err := Load()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Load() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
