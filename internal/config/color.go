package config

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// Color is an opaque RGB colour. In YAML it is either a CSS colour name
// ("teal") or an [r, g, b] triple. Pass the RGBA field where a
// color.Color is needed.
type Color struct {
	color.RGBA
}

// RGB builds an opaque Color.
func RGB(r, g, b uint8) Color {
	return Color{color.RGBA{R: r, G: g, B: b, A: 255}}
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		name := strings.ToLower(strings.TrimSpace(value.Value))
		rgba, ok := colornames.Map[name]
		if !ok {
			return fmt.Errorf("line %d: unknown colour name %q", value.Line, value.Value)
		}
		c.RGBA = rgba
		return nil
	case yaml.SequenceNode:
		var rgb []int
		if err := value.Decode(&rgb); err != nil {
			return err
		}
		if len(rgb) != 3 {
			return fmt.Errorf("line %d: colour needs 3 components, got %d", value.Line, len(rgb))
		}
		for _, v := range rgb {
			if v < 0 || v > 255 {
				return fmt.Errorf("line %d: colour component %d out of range", value.Line, v)
			}
		}
		*c = RGB(uint8(rgb[0]), uint8(rgb[1]), uint8(rgb[2]))
		return nil
	}
	return fmt.Errorf("line %d: colour must be a name or [r, g, b]", value.Line)
}
