package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/example/qwerasdf/internal/geom"
)

func TestConversions(t *testing.T) {
	v := New(geom.V(-1, 1), 100)
	assert.Equal(t, geom.V(0, 0), v.PixelToReal(geom.V(100, 100)))
	assert.Equal(t, geom.V(200, 0), v.RealToPixel(geom.V(1, 1)))
	assert.Equal(t, 0.09, v.PixelDistToReal(9))
	assert.Equal(t, 50.0, v.RealDistToPixel(0.5))

	p := geom.V(37, 81)
	back := v.RealToPixel(v.PixelToReal(p))
	assert.InDelta(t, p.X, back.X, 1e-9)
	assert.InDelta(t, p.Y, back.Y, 1e-9)
}

func TestZoomKeepsCenter(t *testing.T) {
	v := New(geom.V(-1, 1), 100)
	pix := geom.V(30, 70)
	before := v.PixelToReal(pix)
	v.Zoom(pix, 2)
	assert.Equal(t, 200.0, v.PPU)
	after := v.PixelToReal(pix)
	assert.InDelta(t, before.X, after.X, 1e-9)
	assert.InDelta(t, before.Y, after.Y, 1e-9)
}

func TestZoomClamps(t *testing.T) {
	v := New(geom.V(0, 0), 2)
	corner := v.Corner
	v.Zoom(geom.V(10, 10), 0.1)
	assert.Equal(t, 1.0, v.PPU)
	assert.Equal(t, corner, v.Corner)
}

func TestPanAndFit(t *testing.T) {
	v := New(geom.V(0, 0), 10)
	v.Pan(geom.V(1, -2))
	assert.Equal(t, geom.V(1, -2), v.Corner)

	fit, width := Fit(geom.V(0, 0), geom.V(2, 1), 100, 0)
	assert.Equal(t, 200, width)
	assert.Equal(t, geom.V(0, 100), fit.RealToPixel(geom.V(0, 0)))
}
