package scene

import (
	"github.com/example/qwerasdf/internal/geom"
	"github.com/example/qwerasdf/internal/shape"
)

// Edit is a geometric change that can be made to a shape in place or to a
// copy of it.
type Edit interface {
	Apply(s shape.Shape)
	Applied(s shape.Shape) shape.Shape
}

// Move translates by a real offset.
type Move geom.Vec

func (m Move) Apply(s shape.Shape)               { s.Move(geom.Vec(m)) }
func (m Move) Applied(s shape.Shape) shape.Shape { return s.Moved(geom.Vec(m)) }

// Transform applies the linear part of M around Center.
type Transform struct {
	M      geom.Mat
	Center geom.Vec
}

func (t Transform) Apply(s shape.Shape)               { s.Transform(t.M, t.Center) }
func (t Transform) Applied(s shape.Shape) shape.Shape { return s.Transformed(t.M, t.Center) }

// Preview returns e applied to copies of shapes.
func Preview(e Edit, shapes []shape.Shape) []shape.Shape {
	out := make([]shape.Shape, len(shapes))
	for i, s := range shapes {
		out[i] = e.Applied(s)
	}
	return out
}
