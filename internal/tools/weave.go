package tools

import (
	"github.com/example/qwerasdf/internal/geom"
	"github.com/example/qwerasdf/internal/hook"
	"github.com/example/qwerasdf/internal/scene"
	"github.com/example/qwerasdf/internal/shape"
	"github.com/example/qwerasdf/internal/snap"
	"github.com/example/qwerasdf/internal/weave"
)

// spin is the direction control of the weave tool. Its four states are
// cycled by RClick; A flips the first increment, S drops one winding.
type spin struct {
	invert bool // first increment negated
	back   bool // one winding less, wrapping backwards
}

func (d *spin) cycle() {
	code := 0
	if !d.back {
		code = 2
	}
	if d.invert {
		code++
	}
	code = (code + 1) % 4
	d.back, d.invert = code < 2, code%2 == 1
}

// createWeaves builds weaves with three clicks: a division A on the first
// shape, then B and C on a second one. When several shapes share a clicked
// division the tool asks for a click on the wanted shape alone.
func createWeaves(s *scene.Scene) hook.Maker {
	return func(h *hook.Hook) {
		var (
			picked    []shape.Hangpoint
			ambiguous []shape.Hangpoint
			dir       spin
		)
		h.Watch(pointerEvents)
		h.OnFinish(s.ResetHints)
		stealMenuKeys(h, s.Menu, "AS", map[rune]string{'A': "invert dir", 'S': "invert spin"})

		weavesAt := func(pixel geom.Vec, report bool) []*weave.Weave {
			_, cands := s.Snap(pixel)
			if len(cands) == 0 {
				if report {
					s.Status.PostError("no shape under cursor")
				}
				return nil
			}
			c := cands[0]
			if on := snap.OnShapes(cands, picked[1].Shape); len(on) > 0 {
				c = on[0]
			}
			incrs := s.Weavity
			if dir.invert {
				incrs[0] = -incrs[0]
			}
			nloops := 0
			if dir.back {
				nloops = -1
			}
			w, err := weave.CreateFrom3([3]shape.Hangpoint{picked[0], picked[1], c}, incrs, nloops)
			if err != nil {
				if report {
					s.Status.PostError(err.Error())
				}
				return nil
			}
			if !s.WeaveBack {
				return []*weave.Weave{w}
			}
			if back := weave.BackWeave(w); back != nil {
				return []*weave.Weave{w, back}
			}
			return []*weave.Weave{w}
		}

		// pick resolves a click to one hangpoint, possibly after
		// disambiguation.
		pick := func(pixel geom.Vec) (shape.Hangpoint, bool) {
			_, cands := s.Snap(pixel)
			if len(ambiguous) > 0 {
				only := snap.OnShapes(ambiguous, snap.Shapes(cands)...)
				switch len(only) {
				case 0:
					ambiguous = nil
					s.Status.PostError("none of the matching shapes clicked, pick again")
					return shape.Hangpoint{}, false
				case 1:
					ambiguous = nil
					return only[0], true
				}
				s.Status.PostInfo("several shapes match. LCLICK on wanted shape -> disambiguate")
				return shape.Hangpoint{}, false
			}
			switch len(cands) {
			case 0:
				s.Status.PostError("no shape under cursor")
				return shape.Hangpoint{}, false
			case 1:
				return cands[0], true
			}
			ambiguous = cands
			s.Status.PostInfo("several shapes match. LCLICK on wanted shape -> disambiguate")
			return shape.Hangpoint{}, false
		}

		hint := func(pixel geom.Vec) {
			if len(ambiguous) > 0 {
				_, cands := s.Snap(pixel)
				if only := snap.OnShapes(ambiguous, snap.Shapes(cands)...); len(only) == 1 {
					s.SetHints(only[0].Shape)
				}
				return
			}
			p := s.Point(pixel)
			switch len(picked) {
			case 0:
				s.SetHints(shape.NewPoint(p))
			case 1:
				start, _ := picked[0].Pos()
				s.SetHints(shape.NewLine(start, p, 1))
			default:
				s.SetHintWeaves(weavesAt(pixel, false)...)
			}
		}

		h.Loop(func(ev hook.Event) {
			switch ev.Kind() {
			case hook.Press:
				switch ev.Key {
				case 'A':
					dir.invert = !dir.invert
				case 'S':
					dir.back = !dir.back
				}
			case hook.RClick:
				dir.cycle()
			}
			hint(s.Cursor)
		})
		h.Steps(func(ev hook.Event) bool {
			if len(picked) < 2 {
				if hp, ok := pick(ev.Pos); ok {
					picked = append(picked, hp)
				}
				hint(ev.Pos)
				return true
			}
			wes := weavesAt(ev.Pos, true)
			if len(wes) == 0 {
				return true
			}
			for _, w := range wes {
				s.AddWeave(w)
			}
			picked = picked[:0]
			s.ResetHints()
			return true
		}, isLClick)
	}
}
