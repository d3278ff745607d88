// Package model defines the data structures shared by the flow evaluator,
// its renderers and its user interfaces.
package model

// Path represents a file system path.
type Path string
