package controller

import (
	"math"

	m "github.com/mouse-blink/potential/internal/model"
	"gonum.org/v1/gonum/mat"
)

func testScenarios() []m.Scenario {
	doublet := m.Scenario{
		Name:        "doublet",
		Description: "flow past a cylinder",
		Field:       m.DefaultFieldConfig(),
	}
	doublet.Field.Uinf = 1
	doublet.Field.NX, doublet.Field.NY = 300, 300
	doublet.Field.Elements = []m.Element{{Kind: m.KindDoublet, Strength: 1}}

	rankine := m.Scenario{
		Name:        "rankine",
		Description: "source and sink",
		Field:       m.DefaultFieldConfig(),
	}
	rankine.Field.XLim = m.Range{Min: -1, Max: 2}
	rankine.Field.Elements = []m.Element{
		{Kind: m.KindSource, Strength: 1},
		{Kind: m.KindSource, X: 1, Strength: -1},
	}

	return []m.Scenario{doublet, rankine}
}

func testSummary() m.Summary {
	return m.Summary{
		Scenario:   "rankine",
		Rows:       100,
		Cols:       120,
		Elements:   2,
		NonFinite:  1,
		MinSpeed:   0.01,
		MaxSpeed:   7.5,
		MinPsi:     -0.5,
		MaxPsi:     0.5,
		Stagnation: []m.Probe{{X: -0.16, Y: 0}},
	}
}

// testPreview is a 2x2 field with one singular cell.
func testPreview(name string) Preview {
	field := m.Field{
		X: mat.NewDense(2, 2, []float64{-1, 1, -1, 1}),
		Y: mat.NewDense(2, 2, []float64{-1, -1, 1, 1}),
		U: mat.NewDense(2, 2, []float64{1, 1, -1, math.NaN()}),
		V: mat.NewDense(2, 2, []float64{0, 1, 0, 0}),
	}

	return Preview{
		Scenario: m.Scenario{Name: name, Description: name + " flow"},
		Field:    field,
		Summary:  m.Summary{Scenario: name, Rows: 2, Cols: 2},
	}
}
