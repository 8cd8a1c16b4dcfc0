package hook

import (
	"strings"

	"github.com/example/qwerasdf/internal/geom"
)

// Type is the tag events are routed on.
type Type uint8

const (
	MouseDown Type = iota
	MouseUp
	MouseMotion
	MouseWheel
	KeyDown
	KeyUp
	// Tick is pumped once per frame after the input batch.
	Tick
	// MenuReset asks the menu to re-enter Event.Path.
	MenuReset
	// Reload reports that the configuration changed on disk.
	Reload
	numTypes
)

var typeNames = [...]string{"MouseDown", "MouseUp", "MouseMotion", "MouseWheel", "KeyDown", "KeyUp", "Tick", "MenuReset", "Reload"}

func (t Type) String() string {
	if t < numTypes {
		return typeNames[t]
	}
	return "Unknown"
}

// Types is a set of event types.
type Types uint16

func Of(ts ...Type) Types {
	var s Types
	for _, t := range ts {
		s |= 1 << t
	}
	return s
}

func (s Types) Has(t Type) bool     { return s&(1<<t) != 0 }
func (s Types) With(o Types) Types  { return s | o }
func (s Types) Empty() bool         { return s == 0 }
func (s Types) Minus(o Types) Types { return s &^ o }

func (s Types) String() string {
	var names []string
	for t := Type(0); t < numTypes; t++ {
		if s.Has(t) {
			names = append(names, t.String())
		}
	}
	return "{" + strings.Join(names, ",") + "}"
}

type Button uint8

const (
	NoButton Button = iota
	Left
	Middle
	Right
)

// Key is an upper-case letter or one of the named keys below.
type Key rune

const (
	KeyNone      Key = 0
	KeyBackspace Key = '\b'
	KeyEnter     Key = '\r'
	KeyEscape    Key = 0x1b
	KeySpace     Key = ' '
)

// Letter reports whether k is one of 'A'..'Z'.
func (k Key) Letter() bool { return k >= 'A' && k <= 'Z' }

// In reports whether k is a letter listed in keys.
func (k Key) In(keys string) bool { return k.Letter() && strings.ContainsRune(keys, rune(k)) }

type Event struct {
	Type   Type
	Button Button
	// Pos is the pointer position in pixels.
	Pos geom.Vec
	// Wheel is the vertical scroll amount, positive away from the user.
	Wheel float64
	Key   Key
	Ctrl  bool
	// Path is the menu path of a MenuReset event.
	Path string
}

// Kind is the finer classification tools switch on.
type Kind uint8

const (
	Other Kind = iota
	LClick
	MClick
	RClick
	LRelease
	MRelease
	RRelease
	Motion
	Scroll
	Press
	Release
)

func (e Event) Kind() Kind {
	switch e.Type {
	case MouseDown:
		return [...]Kind{Other, LClick, MClick, RClick}[e.Button]
	case MouseUp:
		return [...]Kind{Other, LRelease, MRelease, RRelease}[e.Button]
	case MouseMotion:
		return Motion
	case MouseWheel:
		return Scroll
	case KeyDown:
		return Press
	case KeyUp:
		return Release
	}
	return Other
}

// Positional reports whether e carries a meaningful pointer position.
func (e Event) Positional() bool {
	return e.Type <= MouseWheel
}

func Click(b Button, pos geom.Vec) Event { return Event{Type: MouseDown, Button: b, Pos: pos} }
func Move(pos geom.Vec) Event          { return Event{Type: MouseMotion, Pos: pos} }
func Scrolled(pos geom.Vec, y float64) Event {
	return Event{Type: MouseWheel, Pos: pos, Wheel: y}
}
func Pressed(k Key) Event { return Event{Type: KeyDown, Key: k} }
