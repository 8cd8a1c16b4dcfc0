package shape

import (
	"github.com/example/qwerasdf/internal/geom"
)

// Outline samples the visible outline of s as a polyline in real space.
// Curves get `samples` segments; a closed outline repeats its first point.
func Outline(s Shape, samples int) []geom.Vec {
	if samples < 2 {
		samples = 2
	}
	switch s := s.(type) {
	case *Point:
		return []geom.Vec{s.P}
	case *Line:
		return []geom.Vec{s.Start, s.End}
	case *Circle:
		r := s.Radius()
		start := s.Other.Sub(s.Center).Angle()
		out := make([]geom.Vec, 0, samples+1)
		for _, t := range linspace(start, start+tau, samples, false) {
			out = append(out, geom.Polar(s.Center, r, t))
		}
		return append(out, out[0])
	case *Arc:
		t1, t2 := s.Angles()
		r := geom.Dist(s.Center, s.Start)
		out := make([]geom.Vec, 0, samples+1)
		for _, t := range linspace(t1, t2, samples+1, true) {
			out = append(out, geom.Polar(s.Center, r, t))
		}
		return out
	case *PolyLine:
		return s.path()
	}
	return s.Divs()
}

// Hit reports whether p lies within tol of the outline of s.
func Hit(s Shape, p geom.Vec, tol float64) bool {
	out := Outline(s, 64)
	if len(out) == 1 {
		return geom.Dist(p, out[0]) <= tol
	}
	for i := 0; i+1 < len(out); i++ {
		if geom.DistToSegment(p, out[i], out[i+1]) <= tol {
			return true
		}
	}
	return false
}
