// Package snap maps the pointer onto the division it is meant to act on.
package snap

import (
	"github.com/example/qwerasdf/internal/geom"
	"github.com/example/qwerasdf/internal/shape"
)

// View is the part of the view transform snapping needs.
type View interface {
	PixelToReal(p geom.Vec) geom.Vec
	PixelDistToReal(d float64) float64
}

// Snap converts the pixel position pos to real space and moves it onto the
// closest division within radius pixels, if any. candidates holds every
// division lying within eps of the returned point, so shapes sharing a
// division are all reported.
func Snap(pos geom.Vec, v View, radius, eps float64, shapes []shape.Shape) (geom.Vec, []shape.Hangpoint) {
	at := v.PixelToReal(pos)
	tol := v.PixelDistToReal(radius)
	best, bestSq := at, tol*tol
	for _, s := range shapes {
		for _, d := range s.Divs() {
			if sq := geom.SqDist(at, d); sq <= bestSq {
				best, bestSq = d, sq
			}
		}
	}
	return best, Candidates(best, eps, shapes)
}

// Candidates lists the divisions within eps of p.
func Candidates(p geom.Vec, eps float64, shapes []shape.Shape) []shape.Hangpoint {
	var out []shape.Hangpoint
	for _, s := range shapes {
		for i, d := range s.Divs() {
			if geom.AlmostEqual(p, d, eps) {
				out = append(out, shape.Hangpoint{Shape: s, Index: i})
			}
		}
	}
	return out
}

// OnShapes keeps the hangpoints whose shape is one of shapes.
func OnShapes(hangs []shape.Hangpoint, shapes ...shape.Shape) []shape.Hangpoint {
	var out []shape.Hangpoint
	for _, h := range hangs {
		if shape.Index(shapes, h.Shape) >= 0 {
			out = append(out, h)
		}
	}
	return out
}

// Shapes returns the distinct shapes the hangpoints belong to, in order.
func Shapes(hangs []shape.Hangpoint) []shape.Shape {
	var out []shape.Shape
	for _, h := range hangs {
		if shape.Index(out, h.Shape) < 0 {
			out = append(out, h.Shape)
		}
	}
	return out
}
