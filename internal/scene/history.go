package scene

import (
	"image/color"
	"maps"
	"slices"

	"github.com/example/qwerasdf/internal/shape"
	"github.com/example/qwerasdf/internal/weave"
)

// WeaveRecord is a weave whose ends refer to shapes by their position in
// the snapshot.
type WeaveRecord struct {
	Shapes  [2]int
	Indices [2]int
	NWires  int
	Incrs   [2]int
	Color   rune
}

// Snapshot is a self-contained copy of the drawing.
type Snapshot struct {
	Shapes  []shape.Shape
	Weaves  []WeaveRecord
	Palette map[rune]color.RGBA
}

// Take snapshots s. Weaves whose ends are not in s.Shapes are dropped.
func Take(s *Scene) Snapshot {
	snap := Snapshot{Palette: maps.Clone(s.Palette)}
	for _, sh := range s.Shapes {
		snap.Shapes = append(snap.Shapes, sh.Clone())
	}
	for _, w := range s.Weaves {
		i, j := shape.Index(s.Shapes, w.Ends[0].Shape), shape.Index(s.Shapes, w.Ends[1].Shape)
		if i < 0 || j < 0 {
			continue
		}
		snap.Weaves = append(snap.Weaves, WeaveRecord{
			Shapes:  [2]int{i, j},
			Indices: [2]int{w.Ends[0].Index, w.Ends[1].Index},
			NWires:  w.NWires,
			Incrs:   w.Incrs,
			Color:   w.Color,
		})
	}
	return snap
}

// Restore rebuilds fresh shapes and weaves from the snapshot.
func (snap Snapshot) Restore() ([]shape.Shape, []*weave.Weave) {
	shapes := make([]shape.Shape, len(snap.Shapes))
	for i, sh := range snap.Shapes {
		shapes[i] = sh.Clone()
	}
	weaves := make([]*weave.Weave, 0, len(snap.Weaves))
	for _, r := range snap.Weaves {
		w := weave.New([2]shape.Hangpoint{
			{Shape: shapes[r.Shapes[0]], Index: r.Indices[0]},
			{Shape: shapes[r.Shapes[1]], Index: r.Indices[1]},
		}, r.NWires, r.Incrs)
		w.Color = r.Color
		weaves = append(weaves, w)
	}
	return shapes, weaves
}

func (snap Snapshot) Equal(o Snapshot) bool {
	if !slices.Equal(snap.Weaves, o.Weaves) || !maps.Equal(snap.Palette, o.Palette) {
		return false
	}
	return slices.EqualFunc(snap.Shapes, o.Shapes, func(a, b shape.Shape) bool {
		return shape.Name(a) == shape.Name(b) &&
			slices.Equal(a.Keypoints(), b.Keypoints()) &&
			slices.Equal(a.Divs(), b.Divs())
	})
}

// History is a bounded rotation of snapshots, newest first, with a cursor
// counting how far back the scene currently is.
type History struct {
	snaps []Snapshot
	size  int
	back  int
	// loaded is the position last restored, -1 when the scene moved on.
	loaded int
}

func NewHistory(size int) *History { return &History{size: max(size, 1), loaded: -1} }

func (h *History) Len() int  { return len(h.snaps) }
func (h *History) Back() int { return h.back }

// Resize changes the capacity, dropping the oldest snapshots if needed.
func (h *History) Resize(size int) {
	h.size = max(size, 1)
	if len(h.snaps) > h.size {
		h.snaps = h.snaps[:h.size]
		h.back = min(h.back, h.size-1)
	}
}

// Savepoint records the scene unless it equals the snapshot it was last
// saved as or restored from. Saving moves the cursor back to the present.
func (h *History) Savepoint(s *Scene) bool {
	s.Weaves = weave.Dedup(s.Weaves)
	snap := Take(s)
	if len(h.snaps) > 0 && h.snaps[h.back].Equal(snap) {
		return false
	}
	h.snaps = slices.Insert(h.snaps, 0, snap)
	if len(h.snaps) > h.size {
		h.snaps = h.snaps[:h.size]
	}
	h.back, h.loaded = 0, 0
	return true
}

// Rewind moves the cursor n snapshots back in time (forward when n is
// negative), staying within the recorded range.
func (h *History) Rewind(n int) {
	if len(h.snaps) == 0 {
		return
	}
	h.back = min(max(h.back+n, 0), len(h.snaps)-1)
}

// Current returns the snapshot under the cursor if it differs from what
// was last loaded or saved.
func (h *History) Current() (Snapshot, bool) {
	if len(h.snaps) == 0 || h.loaded == h.back {
		return Snapshot{}, false
	}
	h.loaded = h.back
	return h.snaps[h.back], true
}

// Load replaces the drawing with snap. Selection and hints are cleared.
func (s *Scene) Load(snap Snapshot) {
	s.Shapes, s.Weaves = snap.Restore()
	s.Palette = maps.Clone(snap.Palette)
	s.Selected = nil
	s.ResetHints()
	s.pending = nil
	s.Redraw()
}

// Undo steps the history by n (negative to redo) and loads the result.
func (s *Scene) Undo(n int) {
	s.History.Rewind(n)
	if snap, ok := s.History.Current(); ok {
		s.Load(snap)
	}
}
