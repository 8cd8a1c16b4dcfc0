package main

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sqweek/dialog"

	"github.com/example/qwerasdf/internal/shape"
	"github.com/example/qwerasdf/internal/view"
)

var errNothingToExport = errors.New("nothing to export")

// ExportImage asks where to save, then renders the weaves to a PNG there.
// The whole drawing is fitted to the configured height; otherwise the image
// is what the window shows.
func (g *Game) ExportImage(whole bool) error {
	s := g.scene
	if len(s.Weaves) == 0 {
		return errNothingToExport
	}
	path, err := dialog.File().
		Title("Export image").
		Filter("PNG image", "png").
		SetStartDir(s.Params.ExportDir()).
		Save()
	if errors.Is(err, dialog.ErrCancelled) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if !strings.EqualFold(filepath.Ext(path), ".png") {
		path += ".png"
	}

	v, width, height := g.exportView(whole)
	img := g.renderWeaves(v, width, height)
	if err := writePNG(path, img); err != nil {
		dialog.Message("%v", err).Title("Export failed").Error()
		return err
	}
	g.log.Info("exported", "path", path, "width", width, "height", height)
	s.Status.PostInfo("exported " + path)
	return nil
}

func (g *Game) exportView(whole bool) (*view.View, int, int) {
	s := g.scene
	if !whole {
		v := *s.View
		return &v, g.width, g.height
	}
	lo, hi := shape.Bounds(s.Shapes...)
	h := s.Params.Export.Height
	v, w := view.Fit(lo, hi, h, s.Params.Export.Margin)
	return v, w, h
}

// renderWeaves draws the weaves on the background color, off screen.
func (g *Game) renderWeaves(v *view.View, width, height int) *image.RGBA {
	s := g.scene
	canvas := ebiten.NewImage(width, height)
	defer canvas.Dispose()
	canvas.Fill(s.Params.Colors.Background.RGBA())
	p := g.painter()
	p.v = v
	p.weaves(canvas, s.Weaves)

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	canvas.ReadPixels(img.Pix)
	return img
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("export %s: %w", path, err)
	}
	return f.Close()
}
