// Package shape implements the drawable outlines a weave can hang on. Every
// shape exposes an ordered set of divisions: sample points recomputed from
// its keypoints whenever they or the division count change.
package shape

import (
	"github.com/example/qwerasdf/internal/geom"
)

// IndexMap maps a division index on one shape to the index of the same
// point on another, equivalent shape.
type IndexMap func(i int) int

type Shape interface {
	Divs() []geom.Vec
	Loopy() bool
	// Div wraps i for loopy shapes; ok is false when i is out of range on an
	// open one.
	Div(i int) (p geom.Vec, ok bool)
	Keypoints() []geom.Vec
	SetDivs(n int)

	Move(d geom.Vec)
	Moved(d geom.Vec) Shape
	Transform(m geom.Mat, center geom.Vec)
	Transformed(m geom.Mat, center geom.Vec) Shape

	// Merger returns f such that s.Div(f(i)) matches other.Div(i) for every
	// valid i, or nil when the two shapes do not coincide.
	Merger(other Shape, eps float64) IndexMap
	Clone() Shape
}

// Hangpoint is a division of a shape a weave strand attaches to.
type Hangpoint struct {
	Shape Shape
	Index int
}

func (h Hangpoint) Pos() (geom.Vec, bool) { return h.Shape.Div(h.Index) }

func (h Hangpoint) Valid() bool {
	_, ok := h.Pos()
	return ok
}

type divs []geom.Vec

func (d divs) at(loopy bool, i int) (geom.Vec, bool) {
	if len(d) == 0 {
		return geom.Vec{}, false
	}
	if loopy {
		return d[geom.Mod(i, len(d))], true
	}
	if i < 0 || i >= len(d) {
		return geom.Vec{}, false
	}
	return d[i], true
}

func (d divs) shift(by geom.Vec) {
	for i := range d {
		d[i] = d[i].Add(by)
	}
}

func repeat(p geom.Vec, n int) divs {
	d := make(divs, n)
	for i := range d {
		d[i] = p
	}
	return d
}

func linspace(a, b float64, n int, endpoint bool) []float64 {
	ts := make([]float64, n)
	if n == 1 {
		ts[0] = a
		return ts
	}
	den := float64(n)
	if endpoint {
		den = float64(n - 1)
	}
	for i := range ts {
		ts[i] = a + (b-a)*float64(i)/den
	}
	return ts
}

func clampDivs(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

func identity(i int) int { return i }

func reversal(n int) IndexMap { return func(i int) int { return n - 1 - i } }

// reversedMerger maps b's divisions onto a's when b runs the other way. A
// single division sits at each shape's own start, so it only maps onto a
// coinciding division.
func reversedMerger(a, b Shape, eps float64) IndexMap {
	da, db := a.Divs(), b.Divs()
	if len(da) == 1 && !geom.AlmostEqual(da[0], db[0], eps) {
		return nil
	}
	return reversal(len(da))
}

func allEqual(a, b []geom.Vec, eps float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !geom.AlmostEqual(a[i], b[i], eps) {
			return false
		}
	}
	return true
}

func reversed(ps []geom.Vec) []geom.Vec {
	out := make([]geom.Vec, len(ps))
	for i, p := range ps {
		out[len(ps)-1-i] = p
	}
	return out
}

// naiveMerger matches keypoint sequences either in the same or in reversed
// order, for shapes whose divisions are symmetric under reversal.
func naiveMerger(a, b Shape, eps float64) IndexMap {
	n := len(a.Divs())
	if n != len(b.Divs()) {
		return nil
	}
	if allEqual(a.Keypoints(), b.Keypoints(), eps) {
		return identity
	}
	if allEqual(a.Keypoints(), reversed(b.Keypoints()), eps) {
		return reversedMerger(a, b, eps)
	}
	return nil
}

func applyAll(m geom.Mat, center geom.Vec, ps ...*geom.Vec) {
	aff := geom.Around(m, center)
	for _, p := range ps {
		*p = geom.Apply(aff, *p)
	}
}

// Name is the short tag used in status messages and snapshots.
func Name(s Shape) string {
	switch s := s.(type) {
	case *Point:
		return "point"
	case *Line:
		return "segment"
	case *Circle:
		if s.Clockwise {
			return "clockwise circle"
		}
		return "circle"
	case *Arc:
		if s.Clockwise {
			return "clockwise arc"
		}
		return "arc"
	case *PolyLine:
		if s.Closed {
			return "polygon"
		}
		return "polyline"
	}
	return "shape"
}

func Bounds(shapes ...Shape) (lo, hi geom.Vec) {
	var all []geom.Vec
	for _, s := range shapes {
		all = append(all, s.Divs()...)
		all = append(all, s.Keypoints()...)
	}
	return geom.Bounds(all...)
}

func Index(shapes []Shape, s Shape) int {
	for i, sh := range shapes {
		if sh == s {
			return i
		}
	}
	return -1
}
