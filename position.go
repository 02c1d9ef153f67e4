package emojis

import "fmt"

// Position is the location of an emoji unit within a text, counted in
// code-points. Positions come in two shapes:
//
//	Simple(i)      a unit consisting of the single code-point at index i
//	Span(i, i+1)   a base code-point at index i with a variation selector at i+1
//
// The zero value is Simple(0).
type Position struct {
	base   int
	marker int
	span   bool
}

// Simple creates a single-index position.
func Simple(index int) Position {
	return Position{base: index, marker: index}
}

// Span creates a two-element position for a base code-point and its
// variation marker.
func Span(base, marker int) Position {
	return Position{base: base, marker: marker, span: true}
}

// IsSpan is true for positions of variation-marked units.
func (p Position) IsSpan() bool {
	return p.span
}

// Index is the index of the (base) code-point.
func (p Position) Index() int {
	return p.base
}

// Marker is the index of the variation marker. For simple positions, Marker
// is identical to Index.
func (p Position) Marker() int {
	return p.marker
}

// End is the index of the first code-point after the unit.
func (p Position) End() int {
	return p.marker + 1
}

func (p Position) String() string {
	if p.span {
		return fmt.Sprintf("(%d,%d)", p.base, p.marker)
	}
	return fmt.Sprintf("%d", p.base)
}
