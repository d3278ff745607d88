package controller

import (
	"math"
	"strings"

	m "github.com/mouse-blink/potential/internal/model"
)

// directionGlyphs are ordered counter-clockwise starting from +x.
var directionGlyphs = []rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}

const (
	singularGlyph = '✕'
	stillGlyph    = '·'
)

// directionGlyph returns the arrow closest to the direction of (u, v).
func directionGlyph(u, v float64) rune {
	if math.IsNaN(u) || math.IsNaN(v) || math.IsInf(u, 0) || math.IsInf(v, 0) {
		return singularGlyph
	}

	if u == 0 && v == 0 {
		return stillGlyph
	}

	sector := int(math.Round(math.Atan2(v, u)/(math.Pi/4))) % len(directionGlyphs)
	if sector < 0 {
		sector += len(directionGlyphs)
	}

	return directionGlyphs[sector]
}

// directionField draws one glyph per grid cell, with the top row of the
// output holding the largest y.
func directionField(field m.Field) []string {
	rows, cols := field.Dims()
	if field.U == nil || field.V == nil {
		return nil
	}

	lines := make([]string, 0, rows)

	var sb strings.Builder
	for i := rows - 1; i >= 0; i-- {
		sb.Reset()

		for j := range cols {
			sb.WriteRune(directionGlyph(field.U.At(i, j), field.V.At(i, j)))
		}

		lines = append(lines, sb.String())
	}

	return lines
}
