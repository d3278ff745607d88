package model

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrInvalidConfig is returned when a field configuration cannot produce a
// well-formed sampling grid.
var ErrInvalidConfig = errors.New("invalid field configuration")

// Default sampling parameters.
const (
	DefaultResolution = 100
	DefaultLimitMin   = -1.0
	DefaultLimitMax   = 1.0
)

// Range is a closed interval [Min, Max] along one axis.
type Range struct {
	Min float64
	Max float64
}

// DefaultRange returns the default sampling interval (-1, 1).
func DefaultRange() Range {
	return Range{Min: DefaultLimitMin, Max: DefaultLimitMax}
}

// Span returns the length of the interval.
func (r Range) Span() float64 {
	return r.Max - r.Min
}

// Contains reports whether v lies inside the closed interval.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

func (r Range) validate(axis string) error {
	if math.IsNaN(r.Min) || math.IsNaN(r.Max) || math.IsInf(r.Min, 0) || math.IsInf(r.Max, 0) {
		return fmt.Errorf("%w: %slim (%g, %g) must be finite", ErrInvalidConfig, axis, r.Min, r.Max)
	}

	if r.Min >= r.Max {
		return fmt.Errorf("%w: %slim (%g, %g) must satisfy min < max", ErrInvalidConfig, axis, r.Min, r.Max)
	}

	return nil
}

// FieldConfig describes a flow field declaratively: the singularities, the
// freestream and the sampling grid.
type FieldConfig struct {
	Elements []Element
	Uinf     float64 // freestream speed
	Alpha    float64 // freestream angle, radians
	XLim     Range
	YLim     Range
	NX       int
	NY       int
}

// DefaultFieldConfig returns a configuration with no singularities, no
// freestream and a 100x100 grid over (-1, 1)x(-1, 1).
func DefaultFieldConfig() FieldConfig {
	return FieldConfig{
		Elements: []Element{},
		XLim:     DefaultRange(),
		YLim:     DefaultRange(),
		NX:       DefaultResolution,
		NY:       DefaultResolution,
	}
}

// ValidateGrid checks the sampling parameters shared by every field.
func ValidateGrid(xlim, ylim Range, nx, ny int) error {
	if nx <= 0 || ny <= 0 {
		return fmt.Errorf("%w: grid resolution %dx%d must be positive", ErrInvalidConfig, nx, ny)
	}

	if err := xlim.validate("x"); err != nil {
		return err
	}

	return ylim.validate("y")
}

// Validate checks the configuration, including the singularity kinds.
func (c FieldConfig) Validate() error {
	if err := ValidateGrid(c.XLim, c.YLim, c.NX, c.NY); err != nil {
		return err
	}

	if math.IsNaN(c.Uinf) || math.IsNaN(c.Alpha) {
		return fmt.Errorf("%w: freestream parameters must not be NaN", ErrInvalidConfig)
	}

	for i, e := range c.Elements {
		if !e.Kind.Valid() {
			return fmt.Errorf("%w: element %d has unknown kind %q", ErrInvalidConfig, i, e.Kind)
		}
	}

	return nil
}

// Field is the evaluated flow: grid coordinates, composite velocity and
// stream function, each an NY x NX matrix, plus what a renderer needs to
// frame and annotate it. Consumers must treat it as read-only.
type Field struct {
	X   *mat.Dense
	Y   *mat.Dense
	U   *mat.Dense
	V   *mat.Dense
	Psi *mat.Dense

	XLim    Range
	YLim    Range
	Markers []Marker
}

// Dims returns the grid shape as (rows, cols), that is (ny, nx).
func (f Field) Dims() (int, int) {
	if f.X == nil {
		return 0, 0
	}

	return f.X.Dims()
}

// Speed returns the velocity magnitude at grid cell (i, j).
func (f Field) Speed(i, j int) float64 {
	return math.Hypot(f.U.At(i, j), f.V.At(i, j))
}

// Probe is the flow evaluated at a single point.
type Probe struct {
	X   float64
	Y   float64
	U   float64
	V   float64
	Psi float64
}

// Speed returns the velocity magnitude at the probe point.
func (p Probe) Speed() float64 {
	return math.Hypot(p.U, p.V)
}

// Finite reports whether every evaluated quantity is a finite number.
func (p Probe) Finite() bool {
	for _, v := range []float64{p.U, p.V, p.Psi} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
