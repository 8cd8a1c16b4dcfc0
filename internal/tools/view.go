package tools

import (
	"math"

	"github.com/example/qwerasdf/internal/geom"
	"github.com/example/qwerasdf/internal/hook"
	"github.com/example/qwerasdf/internal/scene"
)

func zoom(s *scene.Scene) hook.Maker {
	return func(h *hook.Hook) {
		h.Watch(hook.Of(hook.MouseWheel))
		h.Loop(func(ev hook.Event) {
			s.View.Zoom(ev.Pos, math.Pow(s.Params.ZoomFactor, ev.Wheel))
			s.Redraw()
		})
	}
}

// clickMove grabs the canvas on one RClick and drops it on the next.
func clickMove(s *scene.Scene) hook.Maker {
	return func(h *hook.Hook) {
		var (
			grab    geom.Vec
			grabbed bool
		)
		moveTo := func(pixel geom.Vec) {
			s.View.Pan(grab.Sub(s.View.PixelToReal(pixel)))
			s.Redraw()
		}
		h.Watch(pointerEvents)
		h.Loop(func(ev hook.Event) {
			if grabbed && ev.Kind() == hook.Motion {
				moveTo(ev.Pos)
			}
		})
		h.Steps(func(ev hook.Event) bool {
			if !grabbed {
				grab, grabbed = s.View.PixelToReal(ev.Pos), true
			} else {
				moveTo(ev.Pos)
				grabbed = false
			}
			return true
		}, func(ev hook.Event) bool { return ev.Kind() == hook.RClick })
	}
}

// changeView zooms and pans over whatever tool is active until LClick.
// Its helpers are added before it and so sit below it: it sees LClicks
// first and lets every other click through to them.
func changeView(s *scene.Scene) hook.Maker {
	return func(h *hook.Hook) {
		h.Attach(s.Dispatch.Add(zoom(s)))
		h.Attach(s.Dispatch.Add(clickMove(s)))
		h.Watch(hook.Of(hook.MouseDown))
		h.Filter = isLClick
		h.Steps(func(hook.Event) bool { return false }, nil)
	}
}
