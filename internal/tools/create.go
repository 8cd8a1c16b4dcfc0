package tools

import (
	"github.com/example/qwerasdf/internal/geom"
	"github.com/example/qwerasdf/internal/hook"
	"github.com/example/qwerasdf/internal/scene"
	"github.com/example/qwerasdf/internal/shape"
)

var pointerEvents = hook.Of(hook.MouseDown, hook.MouseMotion)

func createPoints(s *scene.Scene) hook.Maker {
	return func(h *hook.Hook) {
		h.Watch(pointerEvents)
		h.OnFinish(s.ResetHints)
		h.Loop(func(ev hook.Event) {
			p := shape.NewPoint(at(s, ev))
			switch ev.Kind() {
			case hook.Motion:
				s.SetHints(p)
			case hook.LClick:
				s.CreateShapes(p)
			}
		})
	}
}

// createLines places segments with two clicks.
func createLines(s *scene.Scene) hook.Maker {
	return func(h *hook.Hook) {
		var (
			start   geom.Vec
			started bool
		)
		line := func(end geom.Vec) *shape.Line {
			return shape.NewLine(start, end, s.Params.Divisions.Line)
		}
		h.Watch(pointerEvents)
		h.OnFinish(s.ResetHints)
		h.Loop(func(ev hook.Event) {
			if started {
				s.SetHints(line(at(s, ev)))
			} else {
				s.SetHints(shape.NewPoint(at(s, ev)))
			}
		})
		h.Steps(func(ev hook.Event) bool {
			p := at(s, ev)
			if !started {
				start, started = p, true
				s.SetHints(line(p))
				return true
			}
			s.CreateShapes(line(p))
			s.ResetHints()
			started = false
			return true
		}, isLClick)
	}
}

// createCircles places a center then a point on the circle. RClick swaps
// the order. The center is added as a point too.
func createCircles(s *scene.Scene) hook.Maker {
	return func(h *hook.Hook) {
		var (
			first       geom.Vec
			started     bool
			centerFirst = true
		)
		circle := func(p geom.Vec) *shape.Circle {
			n := s.Params.Divisions.Circle
			if centerFirst {
				return shape.NewCircle(first, p, n, false)
			}
			return shape.NewCircle(p, first, n, false)
		}
		h.Watch(pointerEvents)
		h.OnFinish(s.ResetHints)
		h.Loop(func(ev hook.Event) {
			if !started {
				s.SetHints(shape.NewPoint(at(s, ev)))
				return
			}
			if ev.Kind() == hook.RClick {
				centerFirst = !centerFirst
			}
			s.SetHints(circle(at(s, ev)))
		})
		h.Steps(func(ev hook.Event) bool {
			p := at(s, ev)
			if !started {
				first, started, centerFirst = p, true, true
				return true
			}
			c := circle(p)
			s.CreateShapes(c, shape.NewPoint(c.Center))
			s.ResetHints()
			started = false
			return true
		}, isLClick)
	}
}

// createArcs takes three clicks: center, start and end, or start, end and
// center once RClick swapped the order. After two clicks RClick flips the
// direction instead.
func createArcs(s *scene.Scene) hook.Maker {
	return func(h *hook.Hook) {
		var points []geom.Vec
		centerFirst, clockwise := true, false
		n := func() int { return s.Params.Divisions.Arc }
		arc := func(p geom.Vec) *shape.Arc {
			if centerFirst {
				return shape.NewArc(points[0], points[1], p, n(), clockwise)
			}
			return shape.NewArc(p, points[0], points[1], n(), clockwise)
		}
		hint := func(p geom.Vec) {
			switch {
			case len(points) == 0:
				s.SetHints(shape.NewPoint(p))
			case len(points) == 1 && centerFirst:
				s.SetHints(shape.NewCircle(points[0], p, n(), false))
			case len(points) == 1:
				s.SetHints(shape.NewLine(points[0], p, n()))
			default:
				s.SetHints(arc(p))
			}
		}
		h.Watch(pointerEvents)
		h.OnFinish(s.ResetHints)
		h.Loop(func(ev hook.Event) {
			if ev.Kind() == hook.RClick {
				if len(points) < 2 {
					centerFirst = !centerFirst
				} else {
					clockwise = !clockwise
				}
			}
			hint(at(s, ev))
		})
		h.Steps(func(ev hook.Event) bool {
			p := at(s, ev)
			if len(points) < 2 {
				points = append(points, p)
				hint(p)
				return true
			}
			s.CreateShapes(arc(p))
			s.ResetHints()
			points = points[:0]
			return true
		}, isLClick)
	}
}

// createPoly adds a vertex per LClick. Clicking the first vertex again
// closes the polygon; RClick ends an open polyline.
func createPoly(s *scene.Scene) hook.Maker {
	return func(h *hook.Hook) {
		var points []geom.Vec
		poly := func(closed bool, extra ...geom.Vec) *shape.PolyLine {
			ps := append(append([]geom.Vec(nil), points...), extra...)
			return shape.NewPolyLine(ps, s.Params.Divisions.Poly, closed)
		}
		reset := func() {
			points = nil
			s.ResetHints()
		}
		h.Watch(pointerEvents)
		h.OnFinish(s.ResetHints)
		h.Loop(func(ev hook.Event) {
			pos := at(s, ev)
			closing := false
			if len(points) > 0 {
				r := s.View.PixelDistToReal(s.Params.SnapRadius)
				if geom.SqDist(pos, points[0]) < r*r {
					pos, closing = points[0], true
				}
			}
			switch ev.Kind() {
			case hook.LClick:
				switch {
				case !closing:
					points = append(points, pos)
				case len(points) >= 3:
					s.CreateShapes(poly(true))
					reset()
				default:
					s.Status.PostError("a polygon needs at least 3 points")
				}
			case hook.RClick:
				if len(points) >= 2 {
					s.CreateShapes(poly(false))
				}
				reset()
			case hook.Motion:
				if len(points) == 0 {
					s.SetHints(shape.NewPoint(pos))
				} else {
					s.SetHints(poly(false, pos))
				}
			}
		})
	}
}
