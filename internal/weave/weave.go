// Package weave builds the families of strands stretched between two shapes.
package weave

import (
	"errors"

	"github.com/example/qwerasdf/internal/geom"
	"github.com/example/qwerasdf/internal/shape"
)

var (
	ErrDifferentShapes = errors.New("must belong to same shape")
	ErrZeroIncrement   = errors.New("zero increment on second shape")
)

// Weave connects Ends[0].Index + i*Incrs[0] to Ends[1].Index + i*Incrs[1]
// for every wire i in [0, NWires).
type Weave struct {
	Ends   [2]shape.Hangpoint
	NWires int
	Incrs  [2]int
	// Color is the palette key the weave is drawn with.
	Color rune
}

// New panics when both increments are zero: such a weave draws the same
// wire NWires times and can only come from a bug.
func New(ends [2]shape.Hangpoint, n int, incrs [2]int) *Weave {
	if incrs == [2]int{} {
		panic("weave: zero increments")
	}
	return &Weave{Ends: ends, NWires: n, Incrs: incrs}
}

// CreateFrom3 builds the weave spanning A and B whose wire count is given by
// the distance from B to C along their shared shape. On a loopy shape C is
// moved one turn forward when it lies before B, then nloops more turns.
func CreateFrom3(h [3]shape.Hangpoint, incrs [2]int, nloops int) (*Weave, error) {
	a, b, c := h[0], h[1], h[2]
	if b.Shape != c.Shape {
		return nil, ErrDifferentShapes
	}
	if incrs[1] == 0 {
		return nil, ErrZeroIncrement
	}
	if sh := b.Shape; sh.Loopy() {
		n := len(sh.Divs())
		if c.Index < b.Index {
			c.Index += n
		}
		c.Index += nloops * n
	}
	span := c.Index - b.Index
	if span < 0 {
		span = -span
		incrs = [2]int{-incrs[0], -incrs[1]}
	}
	step := incrs[1]
	if step < 0 {
		step = -step
	}
	return New([2]shape.Hangpoint{a, b}, span/step+1, incrs), nil
}

// BackWeave returns the strands going back from the second shape, one step
// further along the first one, or nil when there are none.
func BackWeave(fwd *Weave) *Weave {
	n := fwd.NWires - 1
	if n <= 0 {
		return nil
	}
	ends := fwd.Ends
	first := ends[0]
	first.Index += fwd.Incrs[0]
	if sh := first.Shape; sh.Loopy() {
		first.Index = geom.Mod(first.Index, len(sh.Divs()))
	} else if !first.Valid() {
		return nil
	}
	ends[0] = first
	w := New(ends, n, fwd.Incrs)
	w.Color = fwd.Color
	return w
}

// Wire returns the endpoints of wire i; ok is false when either end runs
// off its shape.
func (w *Weave) Wire(i int) (a, b geom.Vec, ok bool) {
	a, ok = w.Ends[0].Shape.Div(w.Ends[0].Index + i*w.Incrs[0])
	if !ok {
		return
	}
	b, ok = w.Ends[1].Shape.Div(w.Ends[1].Index + i*w.Incrs[1])
	return
}

// Wires returns the drawable wires, stopping at the first one that runs off
// a shape.
func (w *Weave) Wires() [][2]geom.Vec {
	out := make([][2]geom.Vec, 0, max(w.NWires, 0))
	for i := 0; i < w.NWires; i++ {
		a, b, ok := w.Wire(i)
		if !ok {
			break
		}
		out = append(out, [2]geom.Vec{a, b})
	}
	return out
}

// Reverse flips the direction both ends are walked in.
func (w *Weave) Reverse() { w.Incrs = [2]int{-w.Incrs[0], -w.Incrs[1]} }

func (w *Weave) Copy() *Weave {
	c := *w
	return &c
}

// Attached reports whether either end of w hangs on one of shapes.
func (w *Weave) Attached(shapes []shape.Shape) bool {
	return shape.Index(shapes, w.Ends[0].Shape) >= 0 || shape.Index(shapes, w.Ends[1].Shape) >= 0
}

// Inside reports whether both ends of w hang on shapes.
func (w *Weave) Inside(shapes []shape.Shape) bool {
	return shape.Index(shapes, w.Ends[0].Shape) >= 0 && shape.Index(shapes, w.Ends[1].Shape) >= 0
}
