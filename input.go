package main

import (
	"image"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/example/qwerasdf/internal/geom"
	"github.com/example/qwerasdf/internal/hook"
)

var mouseButtons = []struct {
	from ebiten.MouseButton
	to   hook.Button
}{
	{ebiten.MouseButtonLeft, hook.Left},
	{ebiten.MouseButtonMiddle, hook.Middle},
	{ebiten.MouseButtonRight, hook.Right},
}

// input turns ebiten's polled state into the frame's event batch.
type input struct {
	cursor  image.Point
	started bool
	held    []ebiten.Key
	buf     []ebiten.Key
}

// keyOf maps an ebiten key to the editor's keys: letters and space.
func keyOf(k ebiten.Key) (hook.Key, bool) {
	if k == ebiten.KeySpace {
		return ' ', true
	}
	name := k.String()
	if len(name) == 1 && name[0] >= 'A' && name[0] <= 'Z' {
		return hook.Key(name[0]), true
	}
	return 0, false
}

// poll collects the events of one frame. While a prompt is shown, clicks on
// its buttons arrive as Y and N key presses.
func (in *input) poll(prompt bool, width, height int) []hook.Event {
	var events []hook.Event
	x, y := ebiten.CursorPosition()
	pos := geom.V(float64(x), float64(y))
	if cur := image.Pt(x, y); !in.started || cur != in.cursor {
		in.cursor, in.started = cur, true
		events = append(events, hook.Move(pos))
	}

	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b.from) {
			if key, ok := promptKey(prompt, b.to, in.cursor, width, height); ok {
				events = append(events, hook.Pressed(key))
				continue
			}
			events = append(events, hook.Click(b.to, pos))
		}
		if inpututil.IsMouseButtonJustReleased(b.from) {
			events = append(events, hook.Event{Type: hook.MouseUp, Button: b.to, Pos: pos})
		}
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		events = append(events, hook.Scrolled(pos, dy))
	}

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)
	in.buf = inpututil.AppendJustPressedKeys(in.buf[:0])
	for _, k := range in.buf {
		if key, ok := keyOf(k); ok {
			events = append(events, hook.Event{Type: hook.KeyDown, Key: key, Ctrl: ctrl})
		}
	}
	pressed := inpututil.AppendPressedKeys(nil)
	for _, k := range in.held {
		if slices.Contains(pressed, k) {
			continue
		}
		if key, ok := keyOf(k); ok {
			events = append(events, hook.Event{Type: hook.KeyUp, Key: key, Ctrl: ctrl})
		}
	}
	in.held = pressed
	return events
}

func promptKey(prompt bool, b hook.Button, at image.Point, width, height int) (hook.Key, bool) {
	if !prompt || b != hook.Left {
		return 0, false
	}
	_, yes, no := promptBox(width, height)
	switch {
	case at.In(yes):
		return 'Y', true
	case at.In(no):
		return 'N', true
	}
	return 0, false
}
