package hook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/qwerasdf/internal/geom"
)

func recorder(name string, log *[]string, ts Types) Maker {
	return func(h *Hook) {
		h.Watch(ts)
		h.Loop(func(Event) { *log = append(*log, name) })
	}
}

func TestLIFO(t *testing.T) {
	var log []string
	d := NewDispatch()
	h1 := d.Add(recorder("h1", &log, Of(KeyDown)))
	h2 := d.Add(recorder("h2", &log, Of(KeyDown)))

	d.Dispatch(Pressed('Q'))
	assert.Equal(t, []string{"h2"}, log)

	h2.Finish()
	d.Dispatch(Pressed('Q'))
	assert.Equal(t, []string{"h2", "h1"}, log)

	h1.Finish()
	d.Dispatch(Pressed('Q'))
	assert.Len(t, log, 2)
	assert.True(t, d.Watched().Empty())
}

func TestTypesAreRoutedSeparately(t *testing.T) {
	var log []string
	d := NewDispatch()
	d.Add(recorder("keys", &log, Of(KeyDown)))
	d.Add(recorder("mouse", &log, Of(MouseDown, MouseMotion)))

	d.Dispatch(Pressed('A'), Click(Left, geom.V(1, 1)), Move(geom.V(2, 2)), Scrolled(geom.V(0, 0), 1))
	assert.Equal(t, []string{"keys", "mouse", "mouse"}, log)
}

func TestFilterFallthrough(t *testing.T) {
	var log []string
	d := NewDispatch()
	d.Add(recorder("menu", &log, Of(KeyDown)))
	tool := d.Add(func(h *Hook) {
		h.Watch(Of(KeyDown))
		h.Filter = func(ev Event) bool { return ev.Key.In("AS") }
		h.Loop(func(ev Event) { log = append(log, "tool:"+string(rune(ev.Key))) })
	})

	d.Dispatch(Pressed('A'), Pressed('Q'), Pressed('S'))
	assert.Equal(t, []string{"tool:A", "menu", "tool:S"}, log)
	assert.True(t, tool.Active())
}

func TestFinishCascades(t *testing.T) {
	d := NewDispatch()
	var cleaned []string
	mk := func(name string) Maker {
		return func(h *Hook) {
			h.Watch(Of(Tick))
			h.Loop(func(Event) {})
			h.OnFinish(func() { cleaned = append(cleaned, name) })
		}
	}
	parent := d.Add(mk("parent"))
	child := d.Add(mk("child"))
	grandchild := d.Add(mk("grandchild"))
	parent.Attach(child)
	child.Attach(grandchild)

	parent.Finish()
	assert.False(t, parent.Active())
	assert.False(t, child.Active())
	assert.False(t, grandchild.Active())
	assert.Equal(t, []string{"grandchild", "child", "parent"}, cleaned)

	parent.Finish()
	child.Finish()
	assert.Len(t, cleaned, 3)
}

func TestAttachDoesNotChangeOrder(t *testing.T) {
	var log []string
	d := NewDispatch()
	older := d.Add(recorder("older", &log, Of(KeyDown)))
	newer := d.Add(recorder("newer", &log, Of(KeyDown)))
	newer.Attach(older)

	d.Dispatch(Pressed('Z'))
	assert.Equal(t, []string{"newer"}, log)
	newer.Finish()
	assert.False(t, older.Active())
}

func TestCleanupsRunNewestFirst(t *testing.T) {
	var order []int
	d := NewDispatch()
	h := d.Add(func(h *Hook) {
		h.Watch(Of(Tick))
		h.OnFinish(func() { order = append(order, 1) })
		h.OnFinish(func() { order = append(order, 2) })
	})
	h.Finish()
	assert.Equal(t, []int{2, 1}, order)
}

// A three click gesture resumes where it left off and keeps its loop for
// events its step does not take.
func TestStepsResume(t *testing.T) {
	d := NewDispatch()
	var picked []geom.Vec
	moves := 0
	h := d.Add(func(h *Hook) {
		h.Watch(Of(MouseDown, MouseMotion))
		h.Loop(func(Event) { moves++ })
		h.Steps(func(ev Event) bool {
			picked = append(picked, ev.Pos)
			return len(picked) < 3
		}, func(ev Event) bool { return ev.Kind() == LClick })
	})

	d.Dispatch(
		Click(Left, geom.V(1, 0)),
		Move(geom.V(5, 5)),
		Click(Right, geom.V(9, 9)),
		Click(Left, geom.V(2, 0)),
	)
	assert.True(t, h.Active())
	assert.Equal(t, 2, moves)

	d.Dispatch(Click(Left, geom.V(3, 0)), Click(Left, geom.V(4, 0)))
	assert.False(t, h.Active())
	assert.Equal(t, []geom.Vec{geom.V(1, 0), geom.V(2, 0), geom.V(3, 0)}, picked)
}

func TestWatchChangesBetweenSteps(t *testing.T) {
	var log []string
	d := NewDispatch()
	d.Add(recorder("base", &log, Of(KeyDown)))
	h := d.Add(func(h *Hook) { h.Watch(Of(MouseDown)) })
	h.Loop(func(ev Event) {
		if ev.Type == MouseDown {
			log = append(log, "picked")
			h.Watch(Of(KeyDown))
			return
		}
		log = append(log, "key")
	})

	d.Dispatch(Pressed('A'), Click(Left, geom.V(0, 0)), Pressed('A'), Click(Left, geom.V(0, 0)))
	assert.Equal(t, []string{"base", "picked", "key"}, log)
	assert.Equal(t, Of(KeyDown), h.Watched())
}

func TestHookAddedDuringDispatch(t *testing.T) {
	var log []string
	d := NewDispatch()
	d.Add(func(h *Hook) {
		h.Watch(Of(KeyDown))
		h.Loop(func(Event) {
			log = append(log, "outer")
			d.Add(recorder("inner", &log, Of(KeyDown)))
		})
	})
	d.Dispatch(Pressed('A'), Pressed('A'))
	assert.Equal(t, []string{"outer", "inner"}, log)
}

func TestEmptyWatchPanics(t *testing.T) {
	d := NewDispatch()
	assert.Panics(t, func() { d.Add(func(h *Hook) {}) })

	h := d.Add(func(h *Hook) { h.Finish() })
	require.NotNil(t, h)
	assert.False(t, h.Active())
}

func TestEventKinds(t *testing.T) {
	tests := []struct {
		ev   Event
		kind Kind
	}{
		{Click(Left, geom.Vec{}), LClick},
		{Click(Middle, geom.Vec{}), MClick},
		{Click(Right, geom.Vec{}), RClick},
		{Event{Type: MouseUp, Button: Right}, RRelease},
		{Move(geom.Vec{}), Motion},
		{Scrolled(geom.Vec{}, -1), Scroll},
		{Pressed('Q'), Press},
		{Event{Type: Tick}, Other},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.kind, tt.ev.Kind(), "%v", tt.ev.Type)
	}
	assert.True(t, Key('W').In("QWER"))
	assert.False(t, KeySpace.In(" "))
	assert.Equal(t, "{MouseDown,Tick}", Of(Tick, MouseDown).String())
}
