package tools

import (
	"math"

	"github.com/example/qwerasdf/internal/geom"
	"github.com/example/qwerasdf/internal/hook"
	"github.com/example/qwerasdf/internal/scene"
	"github.com/example/qwerasdf/internal/shape"
)

// selectShapes: LClick selects what is under the cursor, RClick toggles it.
func selectShapes(s *scene.Scene) hook.Maker {
	return func(h *hook.Hook) {
		h.Watch(pointerEvents)
		h.OnFinish(s.ResetHints)
		h.Loop(func(ev hook.Event) {
			shapes := under(s, ev.Pos)
			switch ev.Kind() {
			case hook.LClick:
				s.Selected = shapes
			case hook.RClick:
				var keep []shape.Shape
				for _, sh := range s.Selected {
					if shape.Index(shapes, sh) < 0 {
						keep = append(keep, sh)
					}
				}
				for _, sh := range shapes {
					if shape.Index(s.Selected, sh) < 0 {
						keep = append(keep, sh)
					}
				}
				s.Selected = keep
			case hook.Motion:
				s.SetHints(shapes...)
			}
		})
	}
}

// needSelection finishes h with an error when nothing is selected.
func needSelection(s *scene.Scene, h *hook.Hook) bool {
	if len(s.Selected) > 0 {
		return true
	}
	s.Status.PostError("nothing selected")
	h.Finish()
	return false
}

// moveSelection drags the selection from where the cursor was when the tool
// started. LClick commits, RClick gives up.
func moveSelection(s *scene.Scene, copy bool) hook.Maker {
	return func(h *hook.Hook) {
		h.Watch(pointerEvents)
		h.OnFinish(s.ResetHints)
		// E stays with the menu so the selection can be unwoven meanwhile.
		stealMenuKeys(h, s.Menu, "QWRASDF", nil)
		if !needSelection(s, h) {
			return
		}
		start := s.Point(s.Cursor)
		h.Loop(func(ev hook.Event) {
			if ev.Type == hook.KeyDown {
				return
			}
			d := scene.Move(at(s, ev).Sub(start))
			switch ev.Kind() {
			case hook.RClick:
				h.Finish()
			case hook.LClick:
				s.Commit(d, copy)
				h.Finish()
			case hook.Motion:
				s.SetHints(scene.Preview(d, s.Selected)...)
			}
		})
	}
}

// transformSelection rotates by fixed steps and mirrors the selection
// around the cursor. LClick applies, A puts a copy.
func transformSelection(s *scene.Scene) hook.Maker {
	return func(h *hook.Hook) {
		h.Watch(pointerEvents)
		h.OnFinish(s.ResetHints)
		stealMenuKeys(h, s.Menu, "QWERASDF", map[rune]string{
			'A': "Put Copy", 'S': "+Rotation", 'D': "-Rotation", 'F': "Flip",
		})
		if !needSelection(s, h) {
			return
		}
		step := s.Params.RotationStep * math.Pi / 180
		var (
			angle  float64
			mirror bool
		)
		edit := func() scene.Transform {
			m := geom.Rotation(angle)
			if mirror {
				m = geom.Mul(m, geom.MirrorX)
			}
			return scene.Transform{M: m, Center: s.Point(s.Cursor)}
		}
		s.SetHints(s.Selected...)
		h.Loop(func(ev hook.Event) {
			switch ev.Kind() {
			case hook.Press:
				switch ev.Key {
				case 'S':
					angle += step
				case 'D':
					angle -= step
				case 'F':
					mirror = !mirror
				case 'A':
					s.Commit(edit(), true)
					h.Finish()
				}
			case hook.RClick:
				h.Finish()
			case hook.LClick:
				s.Commit(edit(), false)
				h.Finish()
			}
			if h.Active() {
				s.SetHints(scene.Preview(edit(), s.Selected)...)
			}
		})
	}
}

var interactLabels = map[rune]string{
	'Q': "cancel change", 'W': "done", 'E': "scale/rotate", 'R': "recenter",
	'A': "scale", 'S': "move", 'D': "rotate", 'F': "flip",
}

// interactiveTransform picks a transform with a key, then shapes it by
// moving the cursor relative to the transform center. LClick applies the
// pending change, RClick puts a changed copy.
func interactiveTransform(s *scene.Scene) hook.Maker {
	return func(h *hook.Hook) {
		h.Watch(pointerEvents)
		h.OnFinish(s.ResetHints)
		stealMenuKeys(h, s.Menu, "QWERASDF", interactLabels)
		if !needSelection(s, h) {
			return
		}
		eps := s.Params.Eps
		center := s.Point(s.Cursor)
		var pending func(to geom.Vec) scene.Edit

		linear := func(f func(to geom.Vec) (geom.Mat, bool)) func(geom.Vec) scene.Edit {
			return func(to geom.Vec) scene.Edit {
				m, ok := f(to)
				if !ok {
					m = geom.Identity
				}
				return scene.Transform{M: m, Center: center}
			}
		}
		// turn is the rotation taking the direction of a to that of b, seen
		// from the center.
		turn := func(a, b geom.Vec) (geom.Mat, bool) {
			u1, ok1 := a.Sub(center).Unit()
			u2, ok2 := b.Sub(center).Unit()
			if !ok1 || !ok2 {
				return geom.Identity, false
			}
			return geom.RotationCS(u1.Dot(u2), u1.X*u2.Y-u1.Y*u2.X), true
		}

		h.Loop(func(ev hook.Event) {
			pos := at(s, ev)
			action := ""
			switch ev.Kind() {
			case hook.LClick:
				action = "apply change"
			case hook.RClick:
				action = "put copy"
			case hook.Press:
				action = interactLabels[rune(ev.Key)]
			}
			switch action {
			case "done":
				h.Finish()
				return
			case "cancel change":
				pending = nil
			case "recenter":
				center = pos
			case "apply change", "put copy":
				if pending != nil {
					s.Commit(pending(pos), action == "put copy")
					pending = nil
				}
			case "move":
				start := pos
				pending = func(to geom.Vec) scene.Edit { return scene.Move(to.Sub(start)) }
			case "rotate":
				start := pos
				pending = linear(func(to geom.Vec) (geom.Mat, bool) { return turn(start, to) })
			case "flip":
				start := pos
				pending = linear(func(to geom.Vec) (geom.Mat, bool) {
					u1, ok1 := start.Sub(center).Unit()
					u2, ok2 := to.Sub(center).Unit()
					if !ok1 || !ok2 {
						return geom.Identity, false
					}
					// mirror across the bisector of the two directions
					axis, ok := u2.Sub(u1).Unit()
					c, sn := axis.Y, -axis.X
					if !ok {
						c, sn = u2.X, u2.Y
					}
					return geom.Mul(geom.RotationCS(c*c-sn*sn, 2*c*sn), geom.MirrorY), true
				})
			case "scale":
				start := pos
				pending = linear(func(to geom.Vec) (geom.Mat, bool) {
					r := geom.Dist(center, start)
					if geom.NearZero(r, eps) {
						return geom.Identity, false
					}
					return geom.Scaling(geom.Dist(center, to) / r), true
				})
			case "scale/rotate":
				start := pos
				pending = linear(func(to geom.Vec) (geom.Mat, bool) {
					r1, r2 := geom.Dist(center, start), geom.Dist(center, to)
					if geom.NearZero(r1, eps) || geom.NearZero(r2, eps) {
						return geom.Identity, false
					}
					rot, _ := turn(start, to)
					return geom.Mul(geom.Scaling(r2/r1), rot), true
				})
			}
			if pending != nil {
				s.SetHints(append(scene.Preview(pending(pos), s.Selected), shape.NewPoint(center))...)
			} else {
				s.SetHints(shape.NewPoint(pos), shape.NewPoint(center))
			}
		})
	}
}
