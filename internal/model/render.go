package model

// ArrowStyle selects how streamline direction arrows are drawn.
type ArrowStyle string

const (
	// ArrowOpen draws an open chevron head ("->").
	ArrowOpen ArrowStyle = "->"
	// ArrowFilled draws a filled triangular head ("-|>").
	ArrowFilled ArrowStyle = "-|>"
	// ArrowNone draws no direction arrows.
	ArrowNone ArrowStyle = "-"
)

// RenderOptions are presentation parameters for drawing a field. They never
// influence the computed numbers.
type RenderOptions struct {
	ArrowSize   float64
	ArrowStyle  ArrowStyle
	Density     float64 // streamline seeding density, 1 is roughly 30 seeds per axis
	LineWidth   float64
	Grid        bool
	ShowDivide  bool // draw the psi = 0 contour
	DivideColor string
	DivideWidth float64
	ShowPoints  bool // draw singularity markers
	Scaled      bool // equal axis scaling
	Title       string
	XLabel      string
	YLabel      string
	Width       float64 // figure width, inches
	Height      float64 // figure height, inches
}

// DefaultRenderOptions mirrors the usual streamline plot defaults.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		ArrowSize:   1,
		ArrowStyle:  ArrowOpen,
		Density:     1,
		LineWidth:   1,
		Grid:        true,
		DivideColor: "r",
		DivideWidth: 2,
		ShowPoints:  true,
		Scaled:      true,
		XLabel:      "x",
		YLabel:      "y",
		Width:       6,
		Height:      6,
	}
}
