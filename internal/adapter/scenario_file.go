package adapter

import (
	"fmt"
	"math"
	"os"
	"strings"

	m "github.com/mouse-blink/potential/internal/model"
	"gopkg.in/yaml.v3"
)

// ScenarioLoader reads user-defined scenarios.
type ScenarioLoader interface {
	Load(path m.Path) ([]m.Scenario, error)
}

// YAMLScenarioLoader reads scenarios from a YAML document of the form
//
//	scenarios:
//	  - name: cylinder
//	    uinf: 1
//	    xlim: [-2, 2]
//	    singularities:
//	      - {kind: doublet, strength: 1}
//	    render:
//	      show_divide: true
type YAMLScenarioLoader struct{}

// NewYAMLScenarioLoader creates a YAMLScenarioLoader.
func NewYAMLScenarioLoader() *YAMLScenarioLoader {
	return &YAMLScenarioLoader{}
}

type yamlScenarioFile struct {
	Scenarios []yamlScenario `yaml:"scenarios"`
}

type yamlScenario struct {
	Name          string            `yaml:"name"`
	Description   string            `yaml:"description"`
	Uinf          float64           `yaml:"uinf"`
	Alpha         float64           `yaml:"alpha"`
	AlphaDegrees  *float64          `yaml:"alpha_deg"`
	XLim          []float64         `yaml:"xlim"`
	YLim          []float64         `yaml:"ylim"`
	NX            *int              `yaml:"nx"`
	NY            *int              `yaml:"ny"`
	Singularities []yamlSingularity `yaml:"singularities"`
	Render        yamlRender        `yaml:"render"`
}

type yamlSingularity struct {
	Kind     string   `yaml:"kind"`
	X        float64  `yaml:"x"`
	Y        float64  `yaml:"y"`
	Strength *float64 `yaml:"strength"`
	Color    string   `yaml:"color"`
}

type yamlRender struct {
	ArrowSize   *float64 `yaml:"arrow_size"`
	ArrowStyle  *string  `yaml:"arrow_style"`
	Density     *float64 `yaml:"density"`
	LineWidth   *float64 `yaml:"line_width"`
	Grid        *bool    `yaml:"grid"`
	ShowDivide  *bool    `yaml:"show_divide"`
	DivideColor *string  `yaml:"divide_color"`
	DivideWidth *float64 `yaml:"divide_width"`
	ShowPoints  *bool    `yaml:"show_points"`
	Scaled      *bool    `yaml:"scaled"`
	Title       *string  `yaml:"title"`
	XLabel      *string  `yaml:"xlabel"`
	YLabel      *string  `yaml:"ylabel"`
}

// Load implements ScenarioLoader.
func (l *YAMLScenarioLoader) Load(path m.Path) ([]m.Scenario, error) {
	b, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("load scenarios: %w", err)
	}

	return ParseScenarios(path, b)
}

// ParseScenarios decodes and validates a scenario document. path is only
// used in error messages.
func ParseScenarios(path m.Path, b []byte) ([]m.Scenario, error) {
	var doc yamlScenarioFile
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", m.ErrInvalidConfig, path, err)
	}

	out := make([]m.Scenario, 0, len(doc.Scenarios))
	for i, ys := range doc.Scenarios {
		s, err := mapScenario(path, fmt.Sprintf("scenarios[%d]", i), ys)
		if err != nil {
			return nil, err
		}

		out = append(out, s)
	}

	return out, nil
}

func invalidField(path m.Path, field, msg string) error {
	return fmt.Errorf("%w: %s: %s: %s", m.ErrInvalidConfig, path, field, msg)
}

func mapScenario(path m.Path, prefix string, ys yamlScenario) (m.Scenario, error) {
	if strings.TrimSpace(ys.Name) == "" {
		return m.Scenario{}, invalidField(path, prefix+".name", "scenario name is required")
	}

	field := m.DefaultFieldConfig()
	field.Uinf = ys.Uinf
	field.Alpha = ys.Alpha

	if ys.AlphaDegrees != nil {
		field.Alpha = *ys.AlphaDegrees * math.Pi / 180
	}

	var err error
	if field.XLim, err = mapRange(ys.XLim, field.XLim); err != nil {
		return m.Scenario{}, invalidField(path, prefix+".xlim", err.Error())
	}

	if field.YLim, err = mapRange(ys.YLim, field.YLim); err != nil {
		return m.Scenario{}, invalidField(path, prefix+".ylim", err.Error())
	}

	if ys.NX != nil {
		field.NX = *ys.NX
	}

	if ys.NY != nil {
		field.NY = *ys.NY
	}

	for i, s := range ys.Singularities {
		kind := m.Kind(strings.ToLower(strings.TrimSpace(s.Kind)))
		if !kind.Valid() {
			return m.Scenario{}, invalidField(path, fmt.Sprintf("%s.singularities[%d].kind", prefix, i),
				fmt.Sprintf("unknown kind %q", s.Kind))
		}

		strength := 1.0
		if s.Strength != nil {
			strength = *s.Strength
		}

		field.Elements = append(field.Elements, m.Element{
			Kind:     kind,
			X:        s.X,
			Y:        s.Y,
			Strength: strength,
			Color:    s.Color,
		})
	}

	if err := field.Validate(); err != nil {
		return m.Scenario{}, fmt.Errorf("%s: %s: %w", path, prefix, err)
	}

	render := m.DefaultRenderOptions()
	render.Title = ys.Name
	ys.Render.apply(&render)

	return m.Scenario{
		Name:        ys.Name,
		Description: ys.Description,
		Field:       field,
		Render:      render,
	}, nil
}

func mapRange(values []float64, fallback m.Range) (m.Range, error) {
	switch len(values) {
	case 0:
		return fallback, nil
	case 2:
		return m.Range{Min: values[0], Max: values[1]}, nil
	default:
		return m.Range{}, fmt.Errorf("expected [min, max], got %d values", len(values))
	}
}

func (r yamlRender) apply(o *m.RenderOptions) {
	set(&o.ArrowSize, r.ArrowSize)
	set(&o.Density, r.Density)
	set(&o.LineWidth, r.LineWidth)
	set(&o.Grid, r.Grid)
	set(&o.ShowDivide, r.ShowDivide)
	set(&o.DivideColor, r.DivideColor)
	set(&o.DivideWidth, r.DivideWidth)
	set(&o.ShowPoints, r.ShowPoints)
	set(&o.Scaled, r.Scaled)
	set(&o.Title, r.Title)
	set(&o.XLabel, r.XLabel)
	set(&o.YLabel, r.YLabel)

	if r.ArrowStyle != nil {
		o.ArrowStyle = m.ArrowStyle(*r.ArrowStyle)
	}
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
