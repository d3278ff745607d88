package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	m "github.com/mouse-blink/potential/internal/model"
	"gonum.org/v1/gonum/floats"
)

// ErrUnknownScenario is returned when a scenario name is not in the catalog.
var ErrUnknownScenario = errors.New("unrecognized example case")

// Catalog is the set of named scenarios the command line can run.
type Catalog interface {
	Names() []string
	Scenarios() []m.Scenario
	Lookup(name string) (m.Scenario, error)
	// Resolve looks up every name, failing on the first unknown one before
	// returning anything.
	Resolve(names ...string) ([]m.Scenario, error)
	// Add registers a scenario, replacing any existing one with the same name.
	Add(scenario m.Scenario) error
}

type catalog struct {
	mu        sync.RWMutex
	scenarios map[string]m.Scenario
}

// NewCatalog creates a catalog preloaded with the built-in scenarios.
func NewCatalog() Catalog {
	c := &catalog{scenarios: make(map[string]m.Scenario)}
	for _, s := range BuiltinScenarios() {
		c.scenarios[s.Name] = s
	}

	return c
}

func (c *catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.scenarios))
	for name := range c.scenarios {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func (c *catalog) Scenarios() []m.Scenario {
	names := c.Names()

	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]m.Scenario, 0, len(names))
	for _, name := range names {
		out = append(out, c.scenarios[name])
	}

	return out
}

func (c *catalog) Lookup(name string) (m.Scenario, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s, ok := c.scenarios[name]
	if !ok {
		return m.Scenario{}, fmt.Errorf("%w: %s", ErrUnknownScenario, name)
	}

	return s, nil
}

func (c *catalog) Resolve(names ...string) ([]m.Scenario, error) {
	out := make([]m.Scenario, 0, len(names))

	for _, name := range names {
		s, err := c.Lookup(name)
		if err != nil {
			return nil, err
		}

		out = append(out, s)
	}

	return out, nil
}

func (c *catalog) Add(scenario m.Scenario) error {
	if strings.TrimSpace(scenario.Name) == "" {
		return fmt.Errorf("%w: scenario name is required", m.ErrInvalidConfig)
	}

	if err := scenario.Field.Validate(); err != nil {
		return fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.scenarios[scenario.Name] = scenario

	return nil
}

// BuiltinScenarios returns the demonstration flows shipped with the tool.
func BuiltinScenarios() []m.Scenario {
	return []m.Scenario{
		doubletScenario(),
		rankineScenario(),
		simpleFreestreamScenario(),
		sourceScenario(),
		vortexScenario(),
		vortexSheetScenario(),
	}
}

func scenario(name, description string, elements ...m.Element) m.Scenario {
	field := m.DefaultFieldConfig()
	field.Elements = elements

	render := m.DefaultRenderOptions()
	render.Title = name

	return m.Scenario{
		Name:        name,
		Description: description,
		Field:       field,
		Render:      render,
	}
}

func unit(kind m.Kind, x, y, strength float64) m.Element {
	return m.Element{Kind: kind, X: x, Y: y, Strength: strength}
}

// doubletScenario is the flow around a circular cylinder.
func doubletScenario() m.Scenario {
	s := scenario("doublet", "Doublet in a uniform stream (flow past a cylinder)",
		unit(m.KindDoublet, 0, 0, 1))
	s.Field.Uinf = 1
	s.Field.NX, s.Field.NY = 300, 300
	s.Render.ShowDivide = true

	return s
}

func rankineScenario() m.Scenario {
	s := scenario("rankine", "Source and sink pair",
		unit(m.KindSource, 0, 0, 1),
		unit(m.KindSource, 1, 0, -1))
	s.Field.XLim = m.Range{Min: -1, Max: 2}

	return s
}

// simpleFreestreamScenario is the Rankine oval.
func simpleFreestreamScenario() m.Scenario {
	s := scenario("simple_freestream", "Source and sink pair in a uniform stream (Rankine oval)",
		unit(m.KindSource, 0, 0, 1),
		unit(m.KindSource, 1, 0, -1))
	s.Field.Uinf = 1
	s.Field.XLim = m.Range{Min: -1, Max: 2}
	s.Field.NX, s.Field.NY = 200, 200
	s.Render.ShowDivide = true

	return s
}

func sourceScenario() m.Scenario {
	return scenario("source", "Single point source", unit(m.KindSource, 0, 0, 1))
}

func vortexScenario() m.Scenario {
	return scenario("vortex", "Single point vortex", unit(m.KindVortex, 0, 0, 1))
}

// vortexSheetScenario approximates a vortex sheet with evenly spaced point
// vortices along the x axis.
func vortexSheetScenario() m.Scenario {
	const (
		xmin = -1.0
		xmax = 1.0
		n    = 20
	)

	elements := make([]m.Element, 0, n)
	for _, x := range floats.Span(make([]float64, n), xmin, xmax) {
		elements = append(elements, unit(m.KindVortex, x, 0, 1))
	}

	s := scenario("vortex_sheet", "Row of point vortices approximating a vortex sheet", elements...)
	s.Field.XLim = m.Range{Min: xmin, Max: xmax}

	return s
}
