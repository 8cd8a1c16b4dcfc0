package weave

import (
	"slices"

	"github.com/example/qwerasdf/internal/shape"
)

// CopyInside copies the weaves with both ends on src, re-hung on the shapes
// of dst with the same positions. dst and src must be parallel.
func CopyInside(dst, src []shape.Shape, weaves []*Weave) []*Weave {
	var out []*Weave
	for _, w := range weaves {
		i0, i1 := shape.Index(src, w.Ends[0].Shape), shape.Index(src, w.Ends[1].Shape)
		if i0 < 0 || i1 < 0 {
			continue
		}
		c := w.Copy()
		c.Ends[0].Shape, c.Ends[1].Shape = dst[i0], dst[i1]
		out = append(out, c)
	}
	return out
}

// CopyInto copies the weaves with at least one end on src; the ends outside
// src stay where they are.
func CopyInto(dst, src []shape.Shape, weaves []*Weave) []*Weave {
	var out []*Weave
	for _, w := range weaves {
		i0, i1 := shape.Index(src, w.Ends[0].Shape), shape.Index(src, w.Ends[1].Shape)
		if i0 < 0 && i1 < 0 {
			continue
		}
		c := w.Copy()
		if i0 >= 0 {
			c.Ends[0].Shape = dst[i0]
		}
		if i1 >= 0 {
			c.Ends[1].Shape = dst[i1]
		}
		out = append(out, c)
	}
	return out
}

type key struct {
	ends   [2]shape.Hangpoint
	nwires int
	incrs  [2]int
}

// Dedup drops weaves identical to a later one, keeping the order of the
// survivors. The later weave wins so its color is the one kept.
func Dedup(weaves []*Weave) []*Weave {
	seen := make(map[key]bool, len(weaves))
	var out []*Weave
	for i := len(weaves) - 1; i >= 0; i-- {
		w := weaves[i]
		k := key{w.Ends, w.NWires, w.Incrs}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, w)
	}
	slices.Reverse(out)
	return out
}

// Remove returns a copy of weaves without the ones drop reports.
func Remove(weaves []*Weave, drop func(w *Weave) bool) []*Weave {
	return slices.DeleteFunc(slices.Clone(weaves), drop)
}
