package tools

import (
	"github.com/example/qwerasdf/internal/config"
	"github.com/example/qwerasdf/internal/hook"
	"github.com/example/qwerasdf/internal/menu"
	"github.com/example/qwerasdf/internal/scene"
)

const menuStart = "Menu Start"

// NewMenu builds the editor's menu.
func NewMenu() *menu.Menu {
	tree := menu.Tree{
		'S': menu.Branch("Selection", menu.Tree{
			'Q': menu.Leaf("Copy"), 'E': menu.Leaf("Unweave"), 'R': menu.Leaf("Remove"),
			'S': menu.Leaf("Interact"), 'D': menu.Leaf("Quick Transform"), 'F': menu.Leaf("Move"),
		}),
		'D': menu.Branch("Create Shapes", menu.Tree{
			'Q': menu.Leaf("New Point"), 'W': menu.Leaf("New Polyline"),
			'A': menu.Leaf("New Arc"), 'S': menu.Leaf("New Segment"), 'D': menu.Leaf("New Circle"),
			'F': menu.Shortcut("Draw Weaves", "F"),
		}),
		'F': menu.Branch("Draw Weaves", menu.Tree{
			'E': menu.Leaf("Select Color"), 'R': menu.Leaf("Back Weaves"),
			'D': menu.Shortcut("Create Shape", "D"), 'F': menu.Shortcut("Draw Weaves", "F"),
		}),
		'R': menu.Leaf("Rewind"),
		'E': menu.Branch("Export Image", menu.Tree{
			'E': menu.Leaf("Whole Drawing"), 'R': menu.Leaf("Window"),
		}),
	}
	pinned := map[rune]string{'Z': "Undo", 'X': "Redo", 'C': "Clear", 'V': "Change View"}
	return menu.New(tree, pinned, []string{"QWER", "ASDF", "ZXCV"}, menuStart)
}

// actionInfo tells what to do after picking a menu entry.
var actionInfo = map[string]string{
	"New Arc":         "LCLICK * 3: place center, start, end | RCLICK: start with endpoints/center OR (contextually) invert clockwiseness",
	"Rewind":          "WHEEL -> rewind | CLICK -> done",
	"Change View":     "WHEEL -> zoom | RCLICK, RCLICK: grab, then release canvas | LCLICK -> Done",
	"New Point":       "LCLICK: place",
	"New Segment":     "LCLICK, LCLICK: place endpoints",
	"New Polyline":    "LCLICK: add point / (if on start) connect and finish | RCLICK: finish without connecting",
	"New Circle":      "LCLICK, LCLICK: place center, then point on perimeter | RCLICK: invert placement order",
	"Draw Weaves":     "LCLICK on 1st shape then LCLICK * 2 on 2nd shape. | RCLICK: cycle through alternatives",
	"Select Color":    config.PaletteKeys + " (keyboard) -> pick color",
	"Selection":       "LCLICK -> select under cursor | RCLICK -> toggle-selected under cursor",
	"Move":            "LCLICK -> confirm (shape will move) | RCLICK -> back",
	"Copy":            "LCLICK -> put copy | RCLICK -> back",
	"Quick Transform": "LCLICK -> confirm (shape will change) | RCLICK -> back",
	"Interact":        "LCLICK -> apply change | RCLICK -> put copy",
	"Clear":           "LCLICK or Y -> clear everything | RCLICK or N -> cancel",
}

// menuHook turns menu picks into tools. A tool set with set replaces the
// current main tool; one added with over is bound to it and ends with it.
func menuHook(s *scene.Scene) hook.Maker {
	return func(h *hook.Hook) {
		h.Watch(hook.Of(hook.KeyDown, hook.MenuReset))
		var main *hook.Hook
		set := func(mk hook.Maker) {
			if main != nil {
				main.Finish()
			}
			main = nil
			if mk != nil {
				main = s.Dispatch.Add(mk)
			}
		}
		over := func(mk hook.Maker) {
			sub := s.Dispatch.Add(mk)
			if main != nil && main.Active() {
				main.Attach(sub)
			} else {
				main = sub
			}
		}
		export := func(whole bool) {
			if err := s.Host.ExportImage(whole); err != nil {
				s.Status.PostError(err.Error())
			}
		}

		h.Loop(func(ev hook.Event) {
			var item string
			if ev.Type == hook.MenuReset {
				item = s.Menu.GoPath(ev.Path)
			} else {
				item = s.Menu.Go(rune(ev.Key))
			}
			if info, ok := actionInfo[item]; ok {
				s.Status.PostInfo(info)
			}
			switch item {
			case menuStart:
				s.Menu.GoPath("")
				set(nil)
			case "Change View":
				over(changeView(s))
			case "Undo":
				s.Undo(1)
				resetMenu(s)
			case "Redo":
				s.Undo(-1)
				resetMenu(s)
			case "Rewind":
				set(rewind(s))
			case "Clear":
				over(confirm(s, "Clear everything?", s.Clear))
			case "Whole Drawing":
				export(true)
			case "Window":
				export(false)
			case "Selection":
				set(selectShapes(s))
			case "Remove":
				s.DeleteSelection()
			case "Unweave":
				s.UnweaveInside()
			case "Move":
				over(moveSelection(s, false))
			case "Copy":
				over(moveSelection(s, true))
			case "Quick Transform":
				over(transformSelection(s))
			case "Interact":
				over(interactiveTransform(s))
			case "Create Shape":
				set(nil)
			case "New Point":
				set(createPoints(s))
			case "New Segment":
				set(createLines(s))
			case "New Circle":
				set(createCircles(s))
			case "New Arc":
				set(createArcs(s))
			case "New Polyline":
				set(createPoly(s))
			case "Draw Weaves":
				set(createWeaves(s))
			case "Select Color":
				over(selectColor(s))
			case "Back Weaves":
				s.WeaveBack = !s.WeaveBack
				if s.WeaveBack {
					s.Status.PostInfo("back weaves on")
				} else {
					s.Status.PostInfo("back weaves off")
				}
			}
		})
	}
}
