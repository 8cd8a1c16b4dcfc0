// Package view converts between screen pixels and the real plane the
// drawing lives in. Pixel y grows downwards, real y upwards.
package view

import (
	"fmt"

	"github.com/example/qwerasdf/internal/geom"
)

type View struct {
	// Corner is the real position of the top-left pixel.
	Corner geom.Vec
	// PPU is the number of pixels per real unit.
	PPU    float64
	MinPPU float64
	MaxPPU float64
}

func New(corner geom.Vec, ppu float64) *View {
	return &View{Corner: corner, PPU: ppu, MinPPU: 1, MaxPPU: 3e5}
}

func (v *View) String() string {
	return fmt.Sprintf("view corner=(%g, %g) ppu=%g", v.Corner.X, v.Corner.Y, v.PPU)
}

func (v *View) PixelToReal(p geom.Vec) geom.Vec {
	return geom.V(v.Corner.X+p.X/v.PPU, v.Corner.Y-p.Y/v.PPU)
}

func (v *View) RealToPixel(r geom.Vec) geom.Vec {
	return geom.V((r.X-v.Corner.X)*v.PPU, -(r.Y-v.Corner.Y)*v.PPU)
}

func (v *View) PixelDistToReal(d float64) float64 { return d / v.PPU }
func (v *View) RealDistToPixel(d float64) float64 { return d * v.PPU }

// ZoomReal scales around a real point, which keeps its pixel position.
// Zooming past the ppu limits clamps and leaves the corner alone.
func (v *View) ZoomReal(center geom.Vec, factor float64) {
	ppu := v.PPU * factor
	if ppu < v.MinPPU || ppu > v.MaxPPU {
		v.PPU = min(max(ppu, v.MinPPU), v.MaxPPU)
		return
	}
	v.PPU = ppu
	v.Corner = center.Add(v.Corner.Sub(center).Scale(1 / factor))
}

func (v *View) Zoom(pixelCenter geom.Vec, factor float64) {
	v.ZoomReal(v.PixelToReal(pixelCenter), factor)
}

// Pan moves the visible area by a real offset.
func (v *View) Pan(d geom.Vec) { v.Corner = v.Corner.Add(d) }

// Fit returns a view showing the real rectangle lo..hi inside an image of
// the given pixel height, plus the pixel width that keeps its aspect ratio.
func Fit(lo, hi geom.Vec, height int, margin float64) (*View, int) {
	w, h := hi.X-lo.X, hi.Y-lo.Y
	side := max(w, h)
	if side <= 0 {
		side = 1
	}
	lo = lo.Sub(geom.V(side*margin, side*margin))
	w, h = w+2*side*margin, h+2*side*margin
	if h <= 0 {
		h = w
	}
	v := New(geom.V(lo.X, lo.Y+h), float64(height)/h)
	width := int(w*v.PPU + 0.5)
	if width < 1 {
		width = 1
	}
	return v, width
}
