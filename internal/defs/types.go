// internal/defs/types.go
package defs

import (
	"fmt"
	"image/color"

	"gopkg.in/yaml.v3"
)

// HexColor is a color.RGBA that unmarshals from "#RRGGBB" or "#RRGGBBAA".
type HexColor struct {
	color.RGBA
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *HexColor) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	var r, g, b, a uint8
	a = 0xff
	switch len(s) {
	case 7:
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
			return fmt.Errorf("invalid color %q: %w", s, err)
		}
	case 9:
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
			return fmt.Errorf("invalid color %q: %w", s, err)
		}
	default:
		return fmt.Errorf("invalid color %q: want #RRGGBB or #RRGGBBAA", s)
	}
	c.RGBA = color.RGBA{r, g, b, a}
	return nil
}

// Visuals contains parameters for rendering an entity.
type Visuals struct {
	Color        HexColor `yaml:"color"`
	RadiusFactor float64  `yaml:"radius_factor"`
	StrokeWidth  float64  `yaml:"stroke_width"`
}
