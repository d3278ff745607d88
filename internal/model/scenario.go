package model

// Scenario is a named, ready-to-evaluate flow configuration together with
// the way it should be drawn.
type Scenario struct {
	Name        string
	Description string
	Field       FieldConfig
	Render      RenderOptions
}

// Summary condenses an evaluated field for reporting.
type Summary struct {
	Scenario   string
	Rows       int
	Cols       int
	Elements   int
	NonFinite  int // cells where u, v or psi is NaN or infinite
	MinSpeed   float64
	MaxSpeed   float64
	MinPsi     float64
	MaxPsi     float64
	Stagnation []Probe
}
