package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/example/qwerasdf/internal/config"
	"github.com/example/qwerasdf/internal/shape"
	"github.com/example/qwerasdf/internal/view"
	"github.com/example/qwerasdf/internal/weave"
)

const (
	lineHeight   = 14
	outlineSteps = 96
	swatchSize   = 28
)

var face = basicfont.Face7x13

// painter draws scene parts through a view.
type painter struct {
	v         *view.View
	palette   map[rune]color.RGBA
	fallback  color.RGBA
	antialias bool
}

func (p painter) weaves(dst *ebiten.Image, weaves []*weave.Weave) {
	for _, w := range weaves {
		clr, ok := p.palette[w.Color]
		if !ok {
			clr = p.fallback
		}
		for _, wire := range w.Wires() {
			a, b := p.v.RealToPixel(wire[0]), p.v.RealToPixel(wire[1])
			vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, clr, p.antialias)
		}
	}
}

func (p painter) shape(dst *ebiten.Image, sh shape.Shape, width float32, clr color.Color) {
	out := shape.Outline(sh, outlineSteps)
	if len(out) == 1 {
		c := p.v.RealToPixel(out[0])
		vector.DrawFilledCircle(dst, float32(c.X), float32(c.Y), 2+width, clr, p.antialias)
		return
	}
	for i := 0; i+1 < len(out); i++ {
		a, b := p.v.RealToPixel(out[i]), p.v.RealToPixel(out[i+1])
		vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, clr, p.antialias)
	}
}

func (p painter) divs(dst *ebiten.Image, sh shape.Shape, clr color.Color) {
	for _, d := range sh.Divs() {
		c := p.v.RealToPixel(d)
		vector.DrawFilledCircle(dst, float32(c.X), float32(c.Y), 1.5, clr, p.antialias)
	}
}

func (g *Game) painter() painter {
	s := g.scene
	return painter{
		v:         s.View,
		palette:   s.Palette,
		fallback:  s.Params.Colors.Shape.RGBA(),
		antialias: s.Params.Antialias,
	}
}

// syncLayer keeps the cached weave layer current: new weaves are drawn on
// top of it, anything else rebuilds it.
func (g *Game) syncLayer(width, height int) {
	s := g.scene
	pending, redraw := s.TakePending()
	if g.layer == nil || g.layer.Bounds().Dx() != width || g.layer.Bounds().Dy() != height {
		if g.layer != nil {
			g.layer.Dispose()
		}
		g.layer = ebiten.NewImage(width, height)
		redraw = true
	}
	p := g.painter()
	if redraw {
		g.layer.Clear()
		p.weaves(g.layer, s.Weaves)
		return
	}
	p.weaves(g.layer, pending)
}

func (g *Game) Draw(screen *ebiten.Image) {
	s := g.scene
	colors := s.Params.Colors
	bounds := screen.Bounds()
	screen.Fill(colors.Background.RGBA())

	g.syncLayer(bounds.Dx(), bounds.Dy())
	screen.DrawImage(g.layer, nil)

	p := g.painter()
	for _, sh := range s.Shapes {
		p.shape(screen, sh, 1, colors.Shape.RGBA())
		p.divs(screen, sh, colors.Div.RGBA())
	}
	for _, sh := range s.Selected {
		p.shape(screen, sh, 2, colors.Select.RGBA())
	}
	for _, sh := range s.Hints {
		p.shape(screen, sh, 1, colors.Hint.RGBA())
		p.divs(screen, sh, colors.Hint.RGBA())
	}
	p.weaves(screen, s.HintWeaves)

	g.drawMenu(screen, colors)
	if s.ShowPalette {
		g.drawPalette(screen, colors)
	}
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("%v  shapes=%d weaves=%d", s.View, len(s.Shapes), len(s.Weaves)),
		4, bounds.Dy()-18)
	if s.Prompt != "" {
		drawPrompt(screen, s.Prompt, colors)
	}
}

func (g *Game) drawMenu(dst *ebiten.Image, colors config.Colors) {
	y := lineHeight
	for _, line := range g.scene.Menu.Lines() {
		text.Draw(dst, line, face, 8, y, colors.Text.RGBA())
		y += lineHeight
	}
	y += lineHeight / 2
	for _, line := range g.messages.Info() {
		text.Draw(dst, line, face, 8, y, colors.Text.RGBA())
		y += lineHeight
	}
	if msg := g.messages.Error(); msg != "" {
		text.Draw(dst, msg, face, 8, y, colors.Error.RGBA())
	}
}

func (g *Game) drawPalette(dst *ebiten.Image, colors config.Colors) {
	s := g.scene
	x0, y := 8, dst.Bounds().Dy()-swatchSize-28
	for i, k := range config.PaletteKeys {
		x := x0 + i*(swatchSize+8)
		if clr, ok := s.Palette[k]; ok {
			vector.DrawFilledRect(dst, float32(x), float32(y), swatchSize, swatchSize, clr, false)
		}
		if k == s.ColorKey {
			vector.StrokeRect(dst, float32(x-2), float32(y-2), swatchSize+4, swatchSize+4, 2, colors.Select.RGBA(), false)
		}
		text.Draw(dst, string(s.Menu.Display(k)), face, x+swatchSize/2-3, y+swatchSize+14, colors.Text.RGBA())
	}
}

// promptBox lays out the confirmation overlay: the box and its yes and no
// buttons.
func promptBox(width, height int) (box, yes, no image.Rectangle) {
	const w, h = 400, 160
	x, y := (width-w)/2, (height-h)/2
	box = image.Rect(x, y, x+w, y+h)
	yes = image.Rect(x+40, y+90, x+140, y+130)
	no = image.Rect(x+w-140, y+90, x+w-40, y+130)
	return box, yes, no
}

func fillRect(dst *ebiten.Image, r image.Rectangle, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), clr, false)
}

func drawPrompt(dst *ebiten.Image, question string, colors config.Colors) {
	b := dst.Bounds()
	fillRect(dst, b, color.RGBA{0, 0, 0, 120})
	box, yes, no := promptBox(b.Dx(), b.Dy())
	fillRect(dst, box, color.RGBA{30, 30, 30, 255})
	text.Draw(dst, question, face, box.Min.X+20, box.Min.Y+40, colors.Text.RGBA())
	fillRect(dst, yes, color.RGBA{70, 120, 70, 255})
	fillRect(dst, no, color.RGBA{120, 70, 70, 255})
	text.Draw(dst, "Yes (Y)", face, yes.Min.X+25, yes.Min.Y+24, colors.Text.RGBA())
	text.Draw(dst, "No (N)", face, no.Min.X+28, no.Min.Y+24, colors.Text.RGBA())
}
