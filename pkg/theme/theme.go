// Package theme loads holding button appearance from an optional YAML file
// and applies it to a drawable. Color strings use the #RRGGBB or #AARRGGBB
// hex form; parsing lives here so the drawable core stays string-free.
package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/holdingbutton/pkg/graphics"
	"github.com/go-drift/holdingbutton/pkg/holding"
)

// Style represents the optional holding.yaml configuration. Zero-value
// fields leave the drawable's current setting untouched.
type Style struct {
	Color        string   `yaml:"color,omitempty"`
	CancelColor  string   `yaml:"cancel_color,omitempty"`
	Radius       float64  `yaml:"radius,omitempty"`
	SecondRadius *float64 `yaml:"second_radius,omitempty"`
	SecondAlpha  *int     `yaml:"second_alpha,omitempty"`
}

// LoadOptional reads holding.yaml from dir if present. A missing file yields
// an empty style, not an error.
func LoadOptional(dir string) (*Style, error) {
	path := filepath.Join(dir, "holding.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Style{}, nil
		}
		return nil, fmt.Errorf("failed to read holding.yaml: %w", err)
	}

	var style Style
	if err := yaml.Unmarshal(data, &style); err != nil {
		return nil, fmt.Errorf("failed to parse holding.yaml: %w", err)
	}

	return &style, nil
}

// Apply writes the style's set fields onto the drawable.
func (s *Style) Apply(d *holding.Drawable) error {
	if s.Color != "" {
		color, err := ParseColor(s.Color)
		if err != nil {
			return fmt.Errorf("color: %w", err)
		}
		d.SetColor(color)
	}
	if s.CancelColor != "" {
		color, err := ParseColor(s.CancelColor)
		if err != nil {
			return fmt.Errorf("cancel_color: %w", err)
		}
		d.SetCancelColor(color)
	}
	if s.Radius > 0 {
		d.SetRadius(s.Radius)
	}
	if s.SecondRadius != nil {
		d.SetSecondRadius(*s.SecondRadius)
	}
	if s.SecondAlpha != nil {
		alpha := *s.SecondAlpha
		if alpha < 0 || alpha > 255 {
			return fmt.Errorf("second_alpha: %d out of range 0-255", alpha)
		}
		d.SetSecondAlpha(uint8(alpha))
	}
	return nil
}

// ParseColor parses a #RRGGBB or #AARRGGBB hex color string. The six-digit
// form is fully opaque.
func ParseColor(s string) (graphics.Color, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return 0, fmt.Errorf("invalid color %q: missing # prefix", s)
	}

	switch len(hex) {
	case 6:
		value, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid color %q: %w", s, err)
		}
		return graphics.Color(0xFF000000 | uint32(value)), nil
	case 8:
		value, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid color %q: %w", s, err)
		}
		return graphics.Color(uint32(value)), nil
	default:
		return 0, fmt.Errorf("invalid color %q: want #RRGGBB or #AARRGGBB", s)
	}
}
