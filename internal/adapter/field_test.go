package adapter

import (
	"math"

	m "github.com/mouse-blink/potential/internal/model"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

type flowFunc func(x, y float64) (u, v, psi float64)

// sampledField evaluates flow on an ny x nx grid the same way the flow
// field does, without depending on it.
func sampledField(nx, ny int, xlim, ylim m.Range, flow flowFunc) m.Field {
	xs := floats.Span(make([]float64, nx), xlim.Min, xlim.Max)
	ys := floats.Span(make([]float64, ny), ylim.Min, ylim.Max)

	field := m.Field{
		X:    mat.NewDense(ny, nx, nil),
		Y:    mat.NewDense(ny, nx, nil),
		U:    mat.NewDense(ny, nx, nil),
		V:    mat.NewDense(ny, nx, nil),
		Psi:  mat.NewDense(ny, nx, nil),
		XLim: xlim,
		YLim: ylim,
	}

	for i, y := range ys {
		for j, x := range xs {
			u, v, psi := flow(x, y)
			field.X.Set(i, j, x)
			field.Y.Set(i, j, y)
			field.U.Set(i, j, u)
			field.V.Set(i, j, v)
			field.Psi.Set(i, j, psi)
		}
	}

	return field
}

func uniformFlow(x, y float64) (float64, float64, float64) {
	return 1, 0, y
}

// sourceFlow is a unit source at the origin; it is singular there.
func sourceFlow(x, y float64) (float64, float64, float64) {
	r2 := x*x + y*y
	if r2 == 0 {
		return math.NaN(), math.NaN(), math.NaN()
	}

	k := 0.5 / math.Pi

	return k * x / r2, k * y / r2, k * math.Atan2(y, x)
}

// cylinderFlow is a doublet in a unit stream, with a dividing streamline on
// the circle r = 1/sqrt(2π).
func cylinderFlow(x, y float64) (float64, float64, float64) {
	r2 := x*x + y*y
	if r2 == 0 {
		return math.NaN(), math.NaN(), math.NaN()
	}

	k := 0.5 / math.Pi
	r4 := r2 * r2

	return 1 - k*(x*x-y*y)/r4, -k * 2 * x * y / r4, y - k*y/r2
}

func unitRange() m.Range {
	return m.Range{Min: -1, Max: 1}
}
