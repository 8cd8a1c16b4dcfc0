package scene

import (
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/qwerasdf/internal/config"
	"github.com/example/qwerasdf/internal/geom"
	"github.com/example/qwerasdf/internal/shape"
	"github.com/example/qwerasdf/internal/weave"
)

func newScene() *Scene {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(config.Default(), nil, NewMessages(log), log)
}

func hang(s shape.Shape, i int) shape.Hangpoint { return shape.Hangpoint{Shape: s, Index: i} }

func TestCreateAndDelete(t *testing.T) {
	s := newScene()
	a := shape.NewLine(geom.V(0, 0), geom.V(1, 0), 5)
	b := shape.NewPoint(geom.V(0, 1))
	c := shape.NewPoint(geom.V(2, 2))
	s.CreateShapes(a, b)
	assert.Equal(t, []shape.Shape{a, b}, s.Selected)
	s.CreateShapes(c)
	assert.True(t, s.Dirty())
	assert.False(t, s.Dirty())

	s.AddWeave(weave.New([2]shape.Hangpoint{hang(a, 0), hang(b, 0)}, 5, [2]int{1, 0}))
	s.AddWeave(weave.New([2]shape.Hangpoint{hang(a, 0), hang(c, 0)}, 5, [2]int{1, 0}))
	assert.Equal(t, 'Q', s.Weaves[0].Color)

	s.Selected = []shape.Shape{a, b}
	s.UnweaveInside()
	require.Len(t, s.Weaves, 1)
	assert.Equal(t, c, s.Weaves[0].Ends[1].Shape)

	s.Selected = []shape.Shape{a}
	s.DeleteSelection()
	assert.Empty(t, s.Weaves)
	assert.Equal(t, []shape.Shape{b, c}, s.Shapes)
	assert.Empty(t, s.Selected)

	s.Clear()
	assert.Empty(t, s.Shapes)
}

func TestPending(t *testing.T) {
	s := newScene()
	_, redraw := s.TakePending()
	assert.True(t, redraw)

	p := shape.NewPoint(geom.V(0, 0))
	w := weave.New([2]shape.Hangpoint{hang(p, 0), hang(p, 0)}, 1, [2]int{1, 1})
	s.AddWeave(w)
	pending, redraw := s.TakePending()
	assert.False(t, redraw)
	assert.Equal(t, []*weave.Weave{w}, pending)

	s.AddWeave(w.Copy())
	s.Redraw()
	pending, redraw = s.TakePending()
	assert.True(t, redraw)
	assert.Nil(t, pending)
}

// Rotating a circle by a whole number of divisions merges it back into
// itself, while a copy moved elsewhere brings the weaves inside the
// selection with it.
func TestCommit(t *testing.T) {
	s := newScene()
	o := geom.V(0, 0)
	circle := shape.NewCircle(o, geom.V(1, 0), 12, false)
	center := shape.NewPoint(o)
	s.CreateShapes(circle, center)
	s.AddWeave(weave.New([2]shape.Hangpoint{hang(center, 0), hang(circle, 0)}, 12, [2]int{0, 1}))

	s.Commit(Move(geom.V(5, 0)), true)
	require.Len(t, s.Shapes, 4)
	require.Len(t, s.Weaves, 2)
	assert.Len(t, s.Selected, 2)
	a, ok := s.Weaves[1].Ends[0].Pos()
	require.True(t, ok)
	assert.InDelta(t, 5, a.X, 1e-9)

	s.Selected = []shape.Shape{circle}
	s.Commit(Transform{M: geom.Rotation(2 * math.Pi / 12 * 3), Center: o}, true)
	assert.Len(t, s.Shapes, 4)
	assert.Equal(t, []shape.Shape{circle}, s.Selected)

	s.Commit(Transform{M: geom.Rotation(2 * math.Pi / 12), Center: o}, false)
	assert.Len(t, s.Shapes, 4)
	assert.Contains(t, s.Shapes, circle)
}

func TestHistory(t *testing.T) {
	s := newScene()
	assert.True(t, s.History.Savepoint(s))
	assert.False(t, s.History.Savepoint(s))

	p := shape.NewPoint(geom.V(1, 1))
	l := shape.NewLine(geom.V(0, 0), geom.V(2, 0), 3)
	s.CreateShapes(p, l)
	s.AddWeave(weave.New([2]shape.Hangpoint{hang(p, 0), hang(l, 0)}, 3, [2]int{0, 1}))
	s.AddWeave(weave.New([2]shape.Hangpoint{hang(p, 0), hang(l, 0)}, 3, [2]int{0, 1}))
	assert.True(t, s.History.Savepoint(s))
	assert.Len(t, s.Weaves, 1, "dedup before saving")
	assert.Equal(t, 2, s.History.Len())

	s.Undo(1)
	assert.Empty(t, s.Shapes)
	assert.Empty(t, s.Weaves)
	s.Undo(5)
	assert.Equal(t, 1, s.History.Back())

	s.Undo(-1)
	require.Len(t, s.Shapes, 2)
	require.Len(t, s.Weaves, 1)
	assert.NotSame(t, p, s.Shapes[0])
	assert.Same(t, s.Shapes[0], s.Weaves[0].Ends[0].Shape)
	assert.Same(t, s.Shapes[1], s.Weaves[0].Ends[1].Shape)
	assert.False(t, s.History.Savepoint(s))
}

func TestHistoryBounded(t *testing.T) {
	s := newScene()
	s.History.Resize(3)
	for i := 0; i < 5; i++ {
		s.CreateShapes(shape.NewPoint(geom.V(float64(i), 0)))
		s.History.Savepoint(s)
	}
	assert.Equal(t, 3, s.History.Len())
	s.Undo(10)
	assert.Len(t, s.Shapes, 3)
}

func TestSnapshotDropsDanglingWeaves(t *testing.T) {
	s := newScene()
	p := shape.NewPoint(geom.V(0, 0))
	s.CreateShapes(p)
	s.Weaves = []*weave.Weave{weave.New([2]shape.Hangpoint{hang(p, 0), hang(shape.NewPoint(geom.V(1, 1)), 0)}, 1, [2]int{1, 1})}
	assert.Empty(t, Take(s).Weaves)
}

func TestMessages(t *testing.T) {
	m := NewMessages(slog.New(slog.NewTextHandler(io.Discard, nil)))
	m.PostInfo("first\n  second ")
	assert.Equal(t, []string{"first", "second"}, m.Info())
	m.PostError("no shape under cursor")
	assert.Equal(t, "Error: no shape under cursor", m.Error())
	for i := 0; i < errorFrames; i++ {
		m.Tick()
	}
	assert.Empty(t, m.Error())
}
