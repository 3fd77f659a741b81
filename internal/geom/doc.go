// Package geom provides the integer geometry value types used by the
// layout engine: points, sizes, rectangles, and four-sided edge insets.
//
// All coordinates are parent-relative integer units. Sizes may carry the
// [Unconstrained] sentinel in either dimension to mean "no constraint /
// natural size", which is distinct from zero. Types are re-exported through
// the root sash package for public consumption.
package geom
