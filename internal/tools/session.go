package tools

import (
	"math"

	"github.com/example/qwerasdf/internal/config"
	"github.com/example/qwerasdf/internal/hook"
	"github.com/example/qwerasdf/internal/scene"
)

// autosave records a history snapshot on the first tick after a change.
func autosave(s *scene.Scene) hook.Maker {
	return func(h *hook.Hook) {
		h.Watch(hook.Of(hook.Tick))
		h.Loop(func(hook.Event) {
			if s.Dirty() && s.History.Savepoint(s) {
				s.Log.Debug("savepoint", "shapes", len(s.Shapes), "weaves", len(s.Weaves))
			}
		})
	}
}

// rewind scrubs through the history with the wheel until a click. It takes
// ticks too, which keeps autosave quiet meanwhile.
func rewind(s *scene.Scene) hook.Maker {
	return func(h *hook.Hook) {
		h.Watch(hook.Of(hook.MouseDown, hook.MouseWheel, hook.Tick))
		if s.History.Len() == 0 {
			s.Status.PostError("no history yet")
			h.Finish()
			return
		}
		h.Loop(func(ev hook.Event) {
			switch ev.Kind() {
			case hook.Scroll:
				s.History.Rewind(-int(math.Round(ev.Wheel)))
			case hook.LClick, hook.RClick:
				h.Finish()
				resetMenu(s)
			default:
				if ev.Type == hook.Tick {
					if snap, ok := s.History.Current(); ok {
						s.Load(snap)
					}
				}
			}
		})
	}
}

func selectColor(s *scene.Scene) hook.Maker {
	return func(h *hook.Hook) {
		stealMenuKeys(h, s.Menu, config.PaletteKeys, nil)
		shown := s.ShowPalette
		s.ShowPalette = true
		h.OnFinish(func() { s.ShowPalette = shown })
		h.Steps(func(ev hook.Event) bool {
			s.ColorKey = rune(ev.Key)
			return false
		}, func(ev hook.Event) bool { return ev.Key.In(config.PaletteKeys) })
	}
}

// confirm asks a yes or no question. LClick or Y runs yes; RClick or N
// cancels. Letters do not reach the menu meanwhile.
func confirm(s *scene.Scene, question string, yes func()) hook.Maker {
	return func(h *hook.Hook) {
		h.Watch(hook.Of(hook.MouseDown))
		stealMenuKeys(h, s.Menu, "ABCDEFGHIJKLMNOPQRSTUVWXYZ", nil)
		s.Prompt = question
		h.OnFinish(func() { s.Prompt = "" })
		h.Loop(func(ev hook.Event) {
			switch {
			case ev.Kind() == hook.LClick || ev.Key == 'Y':
				h.Finish()
				yes()
			case ev.Kind() == hook.RClick || ev.Key == 'N':
				h.Finish()
			}
		})
	}
}

// reload applies a changed configuration file.
func reload(s *scene.Scene) hook.Maker {
	return func(h *hook.Hook) {
		h.Watch(hook.Of(hook.Reload))
		h.Loop(func(ev hook.Event) {
			p, err := config.Load(ev.Path)
			if err != nil {
				s.Status.PostError(err.Error())
				return
			}
			s.Apply(p)
			if s.Menu != nil {
				s.Menu.SetTranslation(p.MenuTranslate[0], p.MenuTranslate[1])
			}
			s.Status.PostInfo("config reloaded")
		})
	}
}
