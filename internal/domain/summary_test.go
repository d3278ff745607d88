package domain

import (
	"context"
	"math"
	"testing"

	"github.com/mouse-blink/potential/internal/domain/singularity"
	m "github.com/mouse-blink/potential/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// uniformField builds a rows x cols field with constant psi and the given
// u values; v is zero.
func uniformField(rows, cols int, u []float64) m.Field {
	return m.Field{
		X:   mat.NewDense(rows, cols, nil),
		Y:   mat.NewDense(rows, cols, nil),
		U:   mat.NewDense(rows, cols, u),
		V:   mat.NewDense(rows, cols, nil),
		Psi: mat.NewDense(rows, cols, nil),
	}
}

func TestSummarize(t *testing.T) {
	t.Run("ranges over finite cells", func(t *testing.T) {
		field := uniformField(2, 3, []float64{
			1, -4, 2,
			math.NaN(), 3, math.Inf(1),
		})
		field.Psi.Set(0, 0, -2)
		field.Psi.Set(1, 1, 5)
		field.Markers = []m.Marker{{Kind: m.KindSource}}

		s := Summarize("manual", field)

		assert.Equal(t, "manual", s.Scenario)
		assert.Equal(t, 2, s.Rows)
		assert.Equal(t, 3, s.Cols)
		assert.Equal(t, 1, s.Elements)
		assert.Equal(t, 2, s.NonFinite)
		assert.Equal(t, 1.0, s.MinSpeed)
		assert.Equal(t, 4.0, s.MaxSpeed)
		assert.Equal(t, -2.0, s.MinPsi)
		assert.Equal(t, 5.0, s.MaxPsi)
		assert.Empty(t, s.Stagnation)
	})

	t.Run("field without values", func(t *testing.T) {
		s := Summarize("empty", m.Field{})

		assert.Equal(t, 0, s.Rows)
		assert.Equal(t, 0, s.NonFinite)
		assert.True(t, math.IsInf(s.MaxSpeed, -1))
	})

	t.Run("reports an isolated slow cell", func(t *testing.T) {
		field := uniformField(3, 3, []float64{
			1, 1, 1,
			1, 0.001, 1,
			1, 1, 1,
		})
		field.X.Set(1, 1, 0.5)
		field.Y.Set(1, 1, -0.25)

		s := Summarize("dip", field)

		require.Len(t, s.Stagnation, 1)
		assert.Equal(t, 0.5, s.Stagnation[0].X)
		assert.Equal(t, -0.25, s.Stagnation[0].Y)
		assert.Equal(t, 0.001, s.Stagnation[0].U)
	})

	t.Run("ignores minima that are not slow", func(t *testing.T) {
		field := uniformField(3, 3, []float64{
			1, 1, 1,
			1, 0.5, 1,
			1, 1, 1,
		})

		assert.Empty(t, Summarize("dip", field).Stagnation)
	})

	t.Run("singular neighbours do not hide a minimum", func(t *testing.T) {
		field := uniformField(3, 3, []float64{
			1, math.NaN(), 1,
			1, 0, 1,
			1, 1, 1,
		})

		s := Summarize("dip", field)
		assert.Equal(t, 1, s.NonFinite)
		assert.Len(t, s.Stagnation, 1)
	})

	t.Run("finds the stagnation point of a half body", func(t *testing.T) {
		ff, err := NewFlowField(
			[]singularity.Singularity{singularity.NewSource()},
			WithFreestream(1, 0),
			WithResolution(101, 101),
		)
		require.NoError(t, err)

		field, err := ff.Evaluate(context.Background())
		require.NoError(t, err)

		s := Summarize("half_body", field)

		// The stagnation point of a source m in a stream U lies at x = -m/(2πU).
		require.Len(t, s.Stagnation, 1)
		assert.InDelta(t, -1/(2*math.Pi), s.Stagnation[0].X, 0.02)
		assert.InDelta(t, 0, s.Stagnation[0].Y, 1e-9)
	})
}
