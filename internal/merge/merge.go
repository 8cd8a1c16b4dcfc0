// Package merge folds freshly moved, copied or transformed shapes into
// existing ones they now coincide with, re-hanging their weaves.
//
// Only exact coincidence under the shapes' own construction rules is
// detected; two weaves ending up on top of each other are left alone.
package merge

import (
	"slices"

	"github.com/example/qwerasdf/internal/geom"
	"github.com/example/qwerasdf/internal/shape"
	"github.com/example/qwerasdf/internal/weave"
)

// Into returns dst (minus any incoming shape it already holds) followed by
// the incoming shapes that match nothing in it. touched lists those new
// shapes and then the existing ones that absorbed an incoming shape; it is
// what the selection becomes after the edit. Weaves hanging on an absorbed
// shape are moved onto its match in place.
func Into(dst, incoming []shape.Shape, weaves []*weave.Weave, eps float64) (out, touched []shape.Shape) {
	out = slices.DeleteFunc(slices.Clone(dst), func(s shape.Shape) bool {
		return shape.Index(incoming, s) >= 0
	})
	var added, absorbed []shape.Shape
	for _, s := range incoming {
		target, f := find(out, s, eps)
		if f == nil {
			added = append(added, s)
			continue
		}
		rehang(weaves, s, target, f)
		absorbed = append(absorbed, target)
	}
	out = append(out, added...)
	return out, append(added, absorbed...)
}

func find(dst []shape.Shape, s shape.Shape, eps float64) (shape.Shape, shape.IndexMap) {
	for _, d := range dst {
		if f := d.Merger(s, eps); f != nil {
			return d, f
		}
	}
	return nil, nil
}

// rehang moves every weave end on from onto to, mapping its index through f
// and its stride so consecutive wires keep landing on the same points.
func rehang(weaves []*weave.Weave, from, to shape.Shape, f shape.IndexMap) {
	n := len(to.Divs())
	for _, w := range weaves {
		for which := range w.Ends {
			end := &w.Ends[which]
			if end.Shape != from {
				continue
			}
			inc := w.Incrs[which]
			if n > 1 {
				inc = f(end.Index+inc) - f(end.Index)
				if to.Loopy() {
					inc = geom.Mod(inc, n)
					if inc > n/2 {
						inc -= n
					}
				}
			}
			if inc != 0 || w.Incrs[1-which] != 0 {
				w.Incrs[which] = inc
			}
			end.Shape, end.Index = to, f(end.Index)
		}
	}
}
