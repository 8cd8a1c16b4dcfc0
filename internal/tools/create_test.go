package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/qwerasdf/internal/geom"
	"github.com/example/qwerasdf/internal/shape"
)

func TestCreateSegment(t *testing.T) {
	h := newHarness(t)
	h.keys("DS")
	h.lclick(0, 0)
	assert.Empty(t, h.s.Shapes)
	h.move(2, 0)
	require.Len(t, h.s.Hints, 1)

	h.lclick(4, 0)
	require.Len(t, h.s.Shapes, 1)
	l, ok := h.s.Shapes[0].(*shape.Line)
	require.True(t, ok)
	near(t, geom.V(0, 0), l.Start)
	near(t, geom.V(4, 0), l.End)
	assert.Len(t, l.Divs(), h.s.Params.Divisions.Line)
	assert.Equal(t, h.s.Shapes, h.s.Selected)
	assert.Empty(t, h.s.Hints)
}

func TestCreateSegmentSnaps(t *testing.T) {
	h := newHarness(t)
	h.add(shape.NewPoint(geom.V(3, 3)))
	h.keys("DS")
	h.lclick(3.5, 3.2)
	h.lclick(0, 0)
	require.Len(t, h.s.Shapes, 2)
	near(t, geom.V(3, 3), h.s.Shapes[1].(*shape.Line).Start)
}

func TestCreateCircle(t *testing.T) {
	h := newHarness(t)
	h.keys("DD")
	h.lclick(0, 0)
	h.lclick(3, 0)
	require.Len(t, h.s.Shapes, 2)
	c := h.s.Shapes[0].(*shape.Circle)
	assert.InDelta(t, 3, c.Radius(), 1e-9)
	near(t, geom.V(0, 0), h.s.Shapes[1].(*shape.Point).P)

	// RClick after the first click makes it the point on the perimeter
	h.lclick(10, 0)
	h.rclick(11, 0)
	h.lclick(13, 0)
	require.Len(t, h.s.Shapes, 4)
	c = h.s.Shapes[2].(*shape.Circle)
	near(t, geom.V(13, 0), c.Center)
	near(t, geom.V(10, 0), c.Other)
}

func TestCreateArc(t *testing.T) {
	h := newHarness(t)
	h.keys("DA")
	h.lclick(0, 0)
	h.lclick(5, 0)
	h.lclick(0, 10)
	require.Len(t, h.s.Shapes, 1)
	a := h.s.Shapes[0].(*shape.Arc)
	near(t, geom.V(0, 0), a.Center)
	near(t, geom.V(0, 5), a.End)
	assert.False(t, a.Clockwise)
}

func TestCreatePolygon(t *testing.T) {
	h := newHarness(t)
	h.keys("DW")
	h.lclick(0, 0)
	h.lclick(5, 0)
	h.lclick(5, 5)
	h.lclick(0.2, 0)
	require.Len(t, h.s.Shapes, 1)
	p := h.s.Shapes[0].(*shape.PolyLine)
	assert.True(t, p.Closed)
	assert.Len(t, p.Points, 3)
}

func TestCreatePolygonTooShort(t *testing.T) {
	h := newHarness(t)
	h.keys("DW")
	h.lclick(0, 0)
	h.lclick(5, 0)
	h.lclick(0, 0)
	assert.Empty(t, h.s.Shapes)
	assert.Equal(t, "a polygon needs at least 3 points", h.status.lastErr())

	h.rclick(9, 9)
	require.Len(t, h.s.Shapes, 1)
	p := h.s.Shapes[0].(*shape.PolyLine)
	assert.False(t, p.Closed)
	assert.Len(t, p.Points, 2)
}
