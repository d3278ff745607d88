package model

// Kind identifies the type of an elementary singularity.
type Kind string

const (
	// KindSource is a point source, or a sink when its strength is negative.
	KindSource Kind = "source"
	// KindVortex is a point vortex. Positive strength turns counter-clockwise.
	KindVortex Kind = "vortex"
	// KindDoublet is a point doublet.
	KindDoublet Kind = "doublet"
)

// Kinds lists every supported singularity kind.
func Kinds() []Kind {
	return []Kind{KindSource, KindVortex, KindDoublet}
}

// Valid reports whether k is one of the supported kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindSource, KindVortex, KindDoublet:
		return true
	}

	return false
}

// Element is the declarative description of a singularity, as found in a
// scenario definition. It carries no behaviour.
type Element struct {
	Kind     Kind
	X        float64
	Y        float64
	Strength float64
	Color    string // presentation only
}

// Marker is the renderer's view of a singularity: where to draw it and how.
type Marker struct {
	Kind  Kind
	X     float64
	Y     float64
	Color string
}
