package singularity

import (
	"math"

	m "github.com/mouse-blink/potential/internal/model"
)

// Source is a point source. A negative strength makes it a sink.
type Source struct {
	point
}

// NewSource creates a point source, red by default.
func NewSource(opts ...Option) *Source {
	return &Source{point: newPoint("r", opts)}
}

// Kind implements Singularity.
func (s *Source) Kind() m.Kind { return m.KindSource }

// Velocity is radial: m/(2π) (dx, dy)/r².
func (s *Source) Velocity(x, y float64) (float64, float64) {
	dx, dy, r2 := s.offset(x, y)
	k := s.strength * oo2pi

	return k * dx / r2, k * dy / r2
}

// StreamFunction is m/(2π) atan2(dy, dx).
func (s *Source) StreamFunction(x, y float64) float64 {
	dx, dy, r2 := s.offset(x, y)
	if r2 == 0 {
		// atan2(0, 0) is 0 in Go, which would hide the singularity.
		return math.NaN()
	}

	return s.strength * oo2pi * math.Atan2(dy, dx)
}
