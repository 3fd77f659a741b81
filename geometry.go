// geometry.go re-exports geometry types from internal/geom.
// Any changes to internal/geom types must be mirrored here.
package sash

import "github.com/sashkit/sash/internal/geom"

// Unconstrained is the sizing-hint sentinel meaning "no constraint on this
// dimension; report the natural size". Distinct from zero.
const Unconstrained = geom.Unconstrained

// Point represents an x/y coordinate.
type Point = geom.Point

// Size represents a width/height pair.
type Size = geom.Size

// Rect represents a rectangle with position and dimensions.
type Rect = geom.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = geom.Edges

// NewSize creates a Size with the given dimensions.
func NewSize(width, height int) Size {
	return geom.NewSize(width, height)
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return geom.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return geom.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal
// (left/right) values.
func EdgeSymmetric(v, h int) Edges {
	return geom.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l int) Edges {
	return geom.EdgeTRBL(t, r, b, l)
}

// Constrained reports whether a hint value is a concrete pixel value
// rather than the Unconstrained sentinel.
func Constrained(v int) bool {
	return geom.Constrained(v)
}
