// Package appearance holds the visual settings a card surface is drawn with.
// The values are opaque to the navigation core and are interpreted by the
// view factory.
package appearance

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// Border names accepted in Config.Border.
const (
	BorderRounded = "rounded"
	BorderDouble  = "double"
	BorderNormal  = "normal"
	BorderThick   = "thick"
)

// Validation failures reported by Config.Validate.
var (
	// ErrInvalidColor indicates a color that is neither hex nor an ANSI index.
	ErrInvalidColor = errors.New("invalid color")
	// ErrInvalidBorder indicates an unknown border name.
	ErrInvalidBorder = errors.New("invalid border")
	// ErrInvalidGlamourStyle indicates an unknown markdown style name.
	ErrInvalidGlamourStyle = errors.New("invalid glamour style")
)

var hexColorRe = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Config is the appearance of a card. Colors are lipgloss color strings:
// "#RRGGBB", "#RGB" or an ANSI index "0".."255".
type Config struct {
	TintColor             string `mapstructure:"tint_color" toml:"tint_color"`
	TitleColor            string `mapstructure:"title_color" toml:"title_color"`
	DescriptionColor      string `mapstructure:"description_color" toml:"description_color"`
	ActionButtonColor     string `mapstructure:"action_button_color" toml:"action_button_color"`
	ActionTitleColor      string `mapstructure:"action_title_color" toml:"action_title_color"`
	AlternativeTitleColor string `mapstructure:"alternative_title_color" toml:"alternative_title_color"`
	Border                string `mapstructure:"border" toml:"border"`
	// CompactDescription drops the blank line between body views.
	CompactDescription bool `mapstructure:"compact_description" toml:"compact_description"`
	// Markdown renders descriptions through glamour.
	Markdown     bool   `mapstructure:"markdown" toml:"markdown"`
	GlamourStyle string `mapstructure:"glamour_style" toml:"glamour_style"`
}

// Default returns the stock appearance.
func Default() Config {
	return Config{
		TintColor:             "#00BFFF",
		TitleColor:            "#FFFFFF",
		DescriptionColor:      "#8C8C8C",
		ActionButtonColor:     "#00BFFF",
		ActionTitleColor:      "#1E1E2E",
		AlternativeTitleColor: "#8C8C8C",
		Border:                BorderRounded,
		GlamourStyle:          "dark",
	}
}

// Merge returns c with every non-empty field of over applied on top. Boolean
// fields can only be switched on by over.
func (c Config) Merge(over Config) Config {
	pick := func(base, o string) string {
		if o != "" {
			return o
		}
		return base
	}
	return Config{
		TintColor:             pick(c.TintColor, over.TintColor),
		TitleColor:            pick(c.TitleColor, over.TitleColor),
		DescriptionColor:      pick(c.DescriptionColor, over.DescriptionColor),
		ActionButtonColor:     pick(c.ActionButtonColor, over.ActionButtonColor),
		ActionTitleColor:      pick(c.ActionTitleColor, over.ActionTitleColor),
		AlternativeTitleColor: pick(c.AlternativeTitleColor, over.AlternativeTitleColor),
		Border:                pick(c.Border, over.Border),
		CompactDescription:    c.CompactDescription || over.CompactDescription,
		Markdown:              c.Markdown || over.Markdown,
		GlamourStyle:          pick(c.GlamourStyle, over.GlamourStyle),
	}
}

// Validate reports every invalid field. Empty fields are valid and fall back
// to the factory's defaults.
func (c Config) Validate() error {
	var errs []error
	colors := []struct{ name, value string }{
		{"tint_color", c.TintColor},
		{"title_color", c.TitleColor},
		{"description_color", c.DescriptionColor},
		{"action_button_color", c.ActionButtonColor},
		{"action_title_color", c.ActionTitleColor},
		{"alternative_title_color", c.AlternativeTitleColor},
	}
	for _, col := range colors {
		if col.value != "" && !validColor(col.value) {
			errs = append(errs, fmt.Errorf("%s %q: %w", col.name, col.value, ErrInvalidColor))
		}
	}

	switch c.Border {
	case "", BorderRounded, BorderDouble, BorderNormal, BorderThick:
	default:
		errs = append(errs, fmt.Errorf("border %q: %w", c.Border, ErrInvalidBorder))
	}

	switch c.GlamourStyle {
	case "", "auto", "dark", "light", "notty", "ascii", "dracula", "pink", "tokyo-night":
	default:
		errs = append(errs, fmt.Errorf("glamour_style %q: %w", c.GlamourStyle, ErrInvalidGlamourStyle))
	}

	return errors.Join(errs...)
}

func validColor(s string) bool {
	if hexColorRe.MatchString(s) {
		return true
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0 && n <= 255
}
