package morph

import "math"

// Box is an axis-aligned box in 3D space.
type Box struct {
	Min Point
	Max Point
}

// EmptyBox is the identity of [Box.Union] and [Box.UnionPoint].
var EmptyBox = Box{
	Min: Pt(math.Inf(1), math.Inf(1), math.Inf(1)),
	Max: Pt(math.Inf(-1), math.Inf(-1), math.Inf(-1)),
}

// NewBoxFromPoints returns the smallest box containing both points.
func NewBoxFromPoints(p0, p1 Point) Box {
	return EmptyBox.UnionPoint(p0).UnionPoint(p1)
}

// IsEmpty reports whether the box contains no points at all.
func (b Box) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Size returns the extent of the box along each axis.
func (b Box) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// Union computes the smallest box containing both boxes.
func (b Box) Union(o Box) Box {
	return Box{
		Min: Pt(min(b.Min.X, o.Min.X), min(b.Min.Y, o.Min.Y), min(b.Min.Z, o.Min.Z)),
		Max: Pt(max(b.Max.X, o.Max.X), max(b.Max.Y, o.Max.Y), max(b.Max.Z, o.Max.Z)),
	}
}

// UnionPoint computes the union with one point.
//
// A succession of UnionPoint operations on a series of points, starting from
// [EmptyBox], yields their enclosing box.
func (b Box) UnionPoint(pt Point) Box {
	return Box{
		Min: Pt(min(b.Min.X, pt.X), min(b.Min.Y, pt.Y), min(b.Min.Z, pt.Z)),
		Max: Pt(max(b.Max.X, pt.X), max(b.Max.Y, pt.Y), max(b.Max.Z, pt.Z)),
	}
}

// BoundingBox returns a box enclosing n evenly spaced samples of c. For
// curves that bulge between samples, the box is an approximation.
func BoundingBox(c ParametricCurve, n int) Box {
	b := EmptyBox
	for _, pt := range Sample(c, max(n, 2)) {
		b = b.UnionPoint(pt)
	}
	return b
}
