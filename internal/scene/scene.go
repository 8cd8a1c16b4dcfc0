// Package scene holds the editor state every tool reads and mutates: shapes,
// weaves, selection, hints and the view, plus the channels tools report
// through.
//
// A Scene is owned by the frame loop and only touched from it; tools keep
// unfinished gesture state to themselves and write here only when a gesture
// commits.
package scene

import (
	"image/color"
	"log/slog"

	"github.com/example/qwerasdf/internal/config"
	"github.com/example/qwerasdf/internal/geom"
	"github.com/example/qwerasdf/internal/hook"
	"github.com/example/qwerasdf/internal/menu"
	"github.com/example/qwerasdf/internal/merge"
	"github.com/example/qwerasdf/internal/shape"
	"github.com/example/qwerasdf/internal/snap"
	"github.com/example/qwerasdf/internal/view"
	"github.com/example/qwerasdf/internal/weave"
)

// Status is the user visible message line.
type Status interface {
	PostError(msg string)
	PostInfo(msg string)
}

// Host is what the frame loop offers tools beyond the scene itself.
type Host interface {
	// ExportImage renders the whole drawing, or only what the window shows,
	// to a file the user picks.
	ExportImage(whole bool) error
}

type Scene struct {
	Shapes   []shape.Shape
	Weaves   []*weave.Weave
	Selected []shape.Shape

	// Hints are previews: drawn, never snapped to.
	Hints      []shape.Shape
	HintWeaves []*weave.Weave

	View    *view.View
	Palette map[rune]color.RGBA
	// ColorKey is the palette entry new weaves get.
	ColorKey    rune
	ShowPalette bool
	Weavity     [2]int
	WeaveBack   bool

	Params   config.Params
	Dispatch *hook.Dispatch
	Menu     *menu.Menu
	Status   Status
	Log      *slog.Logger
	History  *History
	Host     Host

	// Prompt is the question of the open confirmation, if any.
	Prompt string
	// Cursor is the last known pointer position in pixels.
	Cursor geom.Vec

	pending []*weave.Weave
	redraw  bool
	dirty   bool
}

// New returns an empty scene set up from p.
func New(p config.Params, m *menu.Menu, status Status, log *slog.Logger) *Scene {
	v := view.New(geom.V(-1, 1), float64(p.Window.Height)/2)
	v.MinPPU, v.MaxPPU = p.MinPPU, p.MaxPPU
	return &Scene{
		View:        v,
		Palette:     p.PaletteRGBA(),
		ColorKey:    'Q',
		ShowPalette: true,
		Weavity:     p.Weavity,
		WeaveBack:   p.WeaveBack,
		Params:      p,
		Dispatch:    hook.NewDispatch(),
		Menu:        m,
		Status:      status,
		Log:         log,
		History:     NewHistory(p.HistorySize),
		redraw:      true,
	}
}

// Apply takes new parameters. Colors already defined in the palette are
// replaced by the configured ones.
func (s *Scene) Apply(p config.Params) {
	s.Params = p
	s.View.MinPPU, s.View.MaxPPU = p.MinPPU, p.MaxPPU
	for k, c := range p.PaletteRGBA() {
		s.Palette[k] = c
	}
	s.Weavity, s.WeaveBack = p.Weavity, p.WeaveBack
	s.History.Resize(p.HistorySize)
	s.Redraw()
}

// Snap resolves a pixel position against the scene's shapes.
func (s *Scene) Snap(pixel geom.Vec) (geom.Vec, []shape.Hangpoint) {
	return snap.Snap(pixel, s.View, s.Params.SnapRadius, s.Params.Eps, s.Shapes)
}

// Point is the snapped real point under a pixel position.
func (s *Scene) Point(pixel geom.Vec) geom.Vec {
	p, _ := s.Snap(pixel)
	return p
}

// CreateShapes adds shapes and selects them.
func (s *Scene) CreateShapes(shapes ...shape.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
	s.Selected = append([]shape.Shape(nil), shapes...)
	s.dirty = true
}

func (s *Scene) SetHints(hints ...shape.Shape) {
	s.Hints = hints
	s.HintWeaves = nil
}

func (s *Scene) SetHintWeaves(weaves ...*weave.Weave) {
	s.Hints = nil
	s.HintWeaves = weaves
}

func (s *Scene) ResetHints() {
	s.Hints, s.HintWeaves = nil, nil
}

// AddWeave commits w, colored with the current key unless it has a color.
func (s *Scene) AddWeave(w *weave.Weave) {
	if w.Color == 0 {
		w.Color = s.ColorKey
	}
	s.Weaves = append(s.Weaves, w)
	s.pending = append(s.pending, w)
	s.dirty = true
}

// TakePending returns the weaves added since the last call, for drawing on
// top of an already rendered layer. It returns nil and a true redraw when
// the whole layer must be rebuilt instead.
func (s *Scene) TakePending() (pending []*weave.Weave, redraw bool) {
	pending, redraw = s.pending, s.redraw
	s.pending, s.redraw = nil, false
	if redraw {
		return nil, true
	}
	return pending, false
}

// Redraw asks for the weave layer to be rebuilt.
func (s *Scene) Redraw() { s.redraw = true }

// Touch records a committed change not made through the methods here.
func (s *Scene) Touch() {
	s.dirty = true
	s.redraw = true
}

func (s *Scene) SetColor(key rune, c color.RGBA) {
	s.Palette[key] = c
	s.Redraw()
}

// DeleteSelection removes the selected shapes and every weave hanging on
// them.
func (s *Scene) DeleteSelection() {
	s.Weaves = weave.Remove(s.Weaves, func(w *weave.Weave) bool { return w.Attached(s.Selected) })
	s.Shapes = removeShapes(s.Shapes, s.Selected)
	s.Selected = nil
	s.Touch()
}

// UnweaveInside removes the weaves with both ends on the selection.
func (s *Scene) UnweaveInside() {
	s.Weaves = weave.Remove(s.Weaves, func(w *weave.Weave) bool { return w.Inside(s.Selected) })
	s.Touch()
}

func (s *Scene) Clear() {
	s.Shapes, s.Weaves, s.Selected = nil, nil, nil
	s.ResetHints()
	s.Touch()
}

// Commit applies e to the selection. In place, the selected shapes change;
// as a copy, changed clones are added along with copies of the weaves
// inside the selection. Either way the result is merged into the existing
// shapes and becomes the selection.
func (s *Scene) Commit(e Edit, copy bool) {
	if len(s.Selected) == 0 {
		return
	}
	incoming, weaves := s.Selected, s.Weaves
	if copy {
		incoming = Preview(e, s.Selected)
		weaves = weave.CopyInside(incoming, s.Selected, s.Weaves)
		for _, w := range weaves {
			s.AddWeave(w)
		}
	} else {
		for _, sh := range s.Selected {
			e.Apply(sh)
		}
	}
	s.Shapes, s.Selected = merge.Into(s.Shapes, incoming, weaves, s.Params.Eps)
	s.Touch()
}

// Dirty reports whether anything was committed since the last call.
func (s *Scene) Dirty() bool {
	d := s.dirty
	s.dirty = false
	return d
}

func removeShapes(shapes, drop []shape.Shape) []shape.Shape {
	var out []shape.Shape
	for _, sh := range shapes {
		if shape.Index(drop, sh) < 0 {
			out = append(out, sh)
		}
	}
	return out
}
