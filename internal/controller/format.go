package controller

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	m "github.com/mouse-blink/potential/internal/model"
)

// formatNumber prints finite values compactly and everything else as "n/a".
func formatNumber(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "n/a"
	}

	return strconv.FormatFloat(v, 'g', 5, 64)
}

func formatRange(r m.Range) string {
	return fmt.Sprintf("(%s, %s)", formatNumber(r.Min), formatNumber(r.Max))
}

func formatFreestream(f m.FieldConfig) string {
	if f.Uinf == 0 {
		return "-"
	}

	return fmt.Sprintf("%s @ %s°", formatNumber(f.Uinf), formatNumber(f.Alpha*180/math.Pi))
}

// formatElements summarizes the singularity mix, e.g. "2 source, 1 vortex".
func formatElements(elements []m.Element) string {
	if len(elements) == 0 {
		return "-"
	}

	counts := make(map[m.Kind]int)
	for _, e := range elements {
		counts[e.Kind]++
	}

	parts := make([]string, 0, len(counts))
	for _, kind := range m.Kinds() {
		if n := counts[kind]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, kind))
		}
	}

	return strings.Join(parts, ", ")
}

func formatStagnation(points []m.Probe) string {
	if len(points) == 0 {
		return "-"
	}

	parts := make([]string, 0, len(points))
	for _, p := range points {
		parts = append(parts, fmt.Sprintf("(%s, %s)", formatNumber(p.X), formatNumber(p.Y)))
	}

	return strings.Join(parts, " ")
}
