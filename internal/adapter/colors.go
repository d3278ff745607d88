package adapter

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// shortColors maps single-letter plot color codes to hex values.
var shortColors = map[string]string{
	"b": "#1f77b4",
	"g": "#2ca02c",
	"r": "#d62728",
	"c": "#17becf",
	"m": "#9467bd",
	"y": "#bcbd22",
	"k": "#000000",
	"w": "#ffffff",
}

var namedColors = map[string]string{
	"blue":    "#1f77b4",
	"green":   "#2ca02c",
	"red":     "#d62728",
	"cyan":    "#17becf",
	"magenta": "#9467bd",
	"yellow":  "#bcbd22",
	"black":   "#000000",
	"white":   "#ffffff",
	"gray":    "#7f7f7f",
	"orange":  "#ff7f0e",
}

// ParseColor resolves a display color tag: a single-letter code, a basic
// color name or a #rrggbb hex value.
func ParseColor(tag string) (color.Color, error) {
	tag = strings.ToLower(strings.TrimSpace(tag))

	if hex, ok := shortColors[tag]; ok {
		tag = hex
	} else if hex, ok := namedColors[tag]; ok {
		tag = hex
	}

	c, err := colorful.Hex(tag)
	if err != nil {
		return nil, fmt.Errorf("unknown color %q: %w", tag, err)
	}

	return c, nil
}

// colorOr resolves tag, falling back when it is empty or unknown.
func colorOr(tag string, fallback color.Color) color.Color {
	if tag == "" {
		return fallback
	}

	c, err := ParseColor(tag)
	if err != nil {
		return fallback
	}

	return c
}
