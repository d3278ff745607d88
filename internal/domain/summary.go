package domain

import (
	"math"

	m "github.com/mouse-blink/potential/internal/model"
)

// stagnationTolerance is the fraction of the largest finite speed below
// which a local speed minimum is reported as a stagnation point.
const stagnationTolerance = 0.02

// Summarize condenses an evaluated field: value ranges over the finite cells,
// the number of non-finite cells and the stagnation points found on the grid.
func Summarize(name string, field m.Field) m.Summary {
	rows, cols := field.Dims()
	summary := m.Summary{
		Scenario: name,
		Rows:     rows,
		Cols:     cols,
		Elements: len(field.Markers),
		MinSpeed: math.Inf(1),
		MaxSpeed: math.Inf(-1),
		MinPsi:   math.Inf(1),
		MaxPsi:   math.Inf(-1),
	}

	if field.U == nil || field.V == nil || field.Psi == nil {
		return summary
	}

	for i := range rows {
		for j := range cols {
			speed := field.Speed(i, j)
			psi := field.Psi.At(i, j)

			if !finite(speed) || !finite(psi) {
				summary.NonFinite++
				continue
			}

			summary.MinSpeed = math.Min(summary.MinSpeed, speed)
			summary.MaxSpeed = math.Max(summary.MaxSpeed, speed)
			summary.MinPsi = math.Min(summary.MinPsi, psi)
			summary.MaxPsi = math.Max(summary.MaxPsi, psi)
		}
	}

	summary.Stagnation = stagnationPoints(field, summary.MaxSpeed)

	return summary
}

// stagnationPoints returns interior cells whose speed is a strict local
// minimum among their eight neighbours and small relative to maxSpeed.
func stagnationPoints(field m.Field, maxSpeed float64) []m.Probe {
	rows, cols := field.Dims()
	if rows < 3 || cols < 3 || !finite(maxSpeed) || maxSpeed <= 0 {
		return nil
	}

	threshold := stagnationTolerance * maxSpeed

	var points []m.Probe

	for i := 1; i < rows-1; i++ {
		for j := 1; j < cols-1; j++ {
			speed := field.Speed(i, j)
			if !finite(speed) || speed > threshold || !localMinimum(field, i, j, speed) {
				continue
			}

			points = append(points, m.Probe{
				X:   field.X.At(i, j),
				Y:   field.Y.At(i, j),
				U:   field.U.At(i, j),
				V:   field.V.At(i, j),
				Psi: field.Psi.At(i, j),
			})
		}
	}

	return points
}

func localMinimum(field m.Field, i, j int, speed float64) bool {
	for di := -1; di <= 1; di++ {
		for dj := -1; dj <= 1; dj++ {
			if di == 0 && dj == 0 {
				continue
			}

			neighbour := field.Speed(i+di, j+dj)
			// A singular neighbour is an unbounded maximum, never a lower value.
			if finite(neighbour) && neighbour <= speed {
				return false
			}
		}
	}

	return true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
