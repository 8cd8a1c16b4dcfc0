// Package tools implements the interactive tools as hooks over a Scene:
// shape creation, weaving, selection and transforms, view control, history
// and the menu that switches between them.
package tools

import (
	"github.com/example/qwerasdf/internal/geom"
	"github.com/example/qwerasdf/internal/hook"
	"github.com/example/qwerasdf/internal/menu"
	"github.com/example/qwerasdf/internal/scene"
	"github.com/example/qwerasdf/internal/shape"
	"github.com/example/qwerasdf/internal/snap"
)

// Install registers the hooks that live for the whole session. The menu
// goes last so it sees keys before anything installed earlier.
func Install(s *scene.Scene) {
	s.Dispatch.Add(zoom(s))
	s.Dispatch.Add(autosave(s))
	s.Dispatch.Add(clickMove(s))
	s.Dispatch.Add(reload(s))
	s.Dispatch.Add(menuHook(s))
}

// Pump delivers one frame of input, then a Tick.
func Pump(s *scene.Scene, events []hook.Event) {
	for _, ev := range events {
		if ev.Positional() {
			s.Cursor = ev.Pos
		}
		s.Dispatch.Dispatch(ev)
	}
	s.Dispatch.Dispatch(hook.Event{Type: hook.Tick, Pos: s.Cursor})
}

// stealMenuKeys makes h take the letters in stolen while every other key
// falls through to the menu. The menu shows labels for the stolen keys
// until h finishes.
func stealMenuKeys(h *hook.Hook, m *menu.Menu, stolen string, labels map[rune]string) {
	h.WatchMore(hook.Of(hook.KeyDown))
	h.Filter = func(ev hook.Event) bool {
		return ev.Type != hook.KeyDown || ev.Key.In(stolen)
	}
	if m != nil {
		h.OnFinish(m.ShowTemporarily(stolen, labels))
	}
}

// resetMenu replays the menu's current path, reinstalling the tool it
// leads to.
func resetMenu(s *scene.Scene) {
	s.Dispatch.Dispatch(hook.Event{Type: hook.MenuReset, Path: s.Menu.Path()})
}

func isLClick(ev hook.Event) bool { return ev.Kind() == hook.LClick }

// at is the snapped real point for an event, using the last known cursor
// for events without a position.
func at(s *scene.Scene, ev hook.Event) geom.Vec {
	if ev.Positional() {
		return s.Point(ev.Pos)
	}
	return s.Point(s.Cursor)
}

// under lists the shapes whose divisions sit under the pointer, or failing
// that whose outline passes near it.
func under(s *scene.Scene, pixel geom.Vec) []shape.Shape {
	_, cands := s.Snap(pixel)
	if len(cands) > 0 {
		return snap.Shapes(cands)
	}
	p := s.View.PixelToReal(pixel)
	tol := s.View.PixelDistToReal(s.Params.SnapRadius)
	var hit []shape.Shape
	for _, sh := range s.Shapes {
		if shape.Hit(sh, p, tol) {
			hit = append(hit, sh)
		}
	}
	return hit
}
