package tools

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/qwerasdf/internal/config"
	"github.com/example/qwerasdf/internal/geom"
	"github.com/example/qwerasdf/internal/hook"
	"github.com/example/qwerasdf/internal/scene"
	"github.com/example/qwerasdf/internal/shape"
	"github.com/example/qwerasdf/internal/view"
)

type recorder struct {
	infos, errs []string
}

func (r *recorder) PostInfo(msg string)  { r.infos = append(r.infos, msg) }
func (r *recorder) PostError(msg string) { r.errs = append(r.errs, msg) }

func (r *recorder) lastErr() string {
	if len(r.errs) == 0 {
		return ""
	}
	return r.errs[len(r.errs)-1]
}

type fakeHost struct {
	exports []bool
	err     error
}

func (f *fakeHost) ExportImage(whole bool) error {
	f.exports = append(f.exports, whole)
	return f.err
}

type harness struct {
	t      *testing.T
	s      *scene.Scene
	status *recorder
	host   *fakeHost
}

func newHarness(t *testing.T) *harness {
	status := &recorder{}
	host := &fakeHost{}
	s := scene.New(config.Default(), NewMenu(), status, slog.New(slog.NewTextHandler(io.Discard, nil)))
	// 10 pixels per unit: the snap radius is 0.9 units
	s.View = view.New(geom.V(-20, 20), 10)
	s.Host = host
	Install(s)
	s.History.Savepoint(s)
	return &harness{t: t, s: s, status: status, host: host}
}

func (h *harness) pix(x, y float64) geom.Vec { return h.s.View.RealToPixel(geom.V(x, y)) }

func (h *harness) pump(evs ...hook.Event) { Pump(h.s, evs) }

func (h *harness) keys(keys string) {
	for _, k := range keys {
		h.pump(hook.Pressed(hook.Key(k)))
	}
}

func (h *harness) click(b hook.Button, x, y float64) { h.pump(hook.Click(b, h.pix(x, y))) }
func (h *harness) lclick(x, y float64)               { h.click(hook.Left, x, y) }
func (h *harness) rclick(x, y float64)               { h.click(hook.Right, x, y) }
func (h *harness) move(x, y float64)                 { h.pump(hook.Move(h.pix(x, y))) }

func (h *harness) add(shapes ...shape.Shape) {
	h.s.Shapes = append(h.s.Shapes, shapes...)
}

func near(t *testing.T, want, got geom.Vec) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-9)
	assert.InDelta(t, want.Y, got.Y, 1e-9)
}

func TestMenuStartFinishesTool(t *testing.T) {
	h := newHarness(t)
	h.keys("DQ")
	h.lclick(1, 1)
	require.Len(t, h.s.Shapes, 1)
	assert.Contains(t, h.status.infos, actionInfo["New Point"])

	h.keys(" ")
	assert.Equal(t, "", h.s.Menu.Path())
	h.lclick(2, 2)
	assert.Len(t, h.s.Shapes, 1)
}

func TestUndoRedo(t *testing.T) {
	h := newHarness(t)
	h.keys("DQ")
	h.lclick(1, 1)
	h.lclick(2, 2)
	assert.Equal(t, 3, h.s.History.Len())

	h.keys("Z")
	assert.Len(t, h.s.Shapes, 1)
	h.keys("Z")
	assert.Empty(t, h.s.Shapes)
	h.keys("X")
	assert.Len(t, h.s.Shapes, 1)

	// the tool survived the undo and a new point starts a new branch
	h.lclick(3, 3)
	assert.Len(t, h.s.Shapes, 2)
	assert.Equal(t, 0, h.s.History.Back())
}

func TestClearAsksFirst(t *testing.T) {
	h := newHarness(t)
	h.add(shape.NewPoint(geom.V(0, 0)))

	h.keys("C")
	assert.Equal(t, "Clear everything?", h.s.Prompt)
	h.keys("Q")
	assert.Equal(t, "", h.s.Menu.Path(), "letters do not reach the menu")
	h.keys("N")
	assert.Empty(t, h.s.Prompt)
	assert.Len(t, h.s.Shapes, 1)

	h.keys("C")
	h.lclick(5, 5)
	assert.Empty(t, h.s.Shapes)
	assert.Empty(t, h.s.Prompt)
}

func TestChangeView(t *testing.T) {
	h := newHarness(t)
	h.keys("DQ")
	h.keys("V")
	ppu := h.s.View.PPU
	h.pump(hook.Scrolled(h.pix(0, 0), 1))
	assert.InDelta(t, ppu*1.1, h.s.View.PPU, 1e-9)

	h.rclick(0, 0)
	grabbed := h.pix(0, 0)
	h.pump(hook.Move(grabbed.Add(geom.V(30, 0))))
	h.pump(hook.Click(hook.Right, grabbed.Add(geom.V(50, 0))))
	near(t, grabbed.Add(geom.V(50, 0)), h.s.View.RealToPixel(geom.V(0, 0)))

	h.lclick(0, 0)
	assert.Empty(t, h.s.Shapes, "the click ending the view change is not a tool click")
	h.lclick(0, 0)
	assert.Len(t, h.s.Shapes, 1)
}

func TestRewind(t *testing.T) {
	h := newHarness(t)
	h.keys("DQ")
	h.lclick(1, 1)
	h.lclick(2, 2)
	h.keys(" R")
	h.pump(hook.Scrolled(h.pix(0, 0), -2))
	assert.Empty(t, h.s.Shapes)
	h.pump(hook.Scrolled(h.pix(0, 0), 1))
	assert.Len(t, h.s.Shapes, 1)
	h.lclick(0, 0)
	h.lclick(0, 0)
	assert.Len(t, h.s.Shapes, 1, "rewind is over and no tool is active")
}

func TestSelectColor(t *testing.T) {
	h := newHarness(t)
	h.s.ShowPalette = false
	h.keys("FE")
	assert.True(t, h.s.ShowPalette)
	h.keys("W")
	assert.Equal(t, 'W', h.s.ColorKey)
	assert.False(t, h.s.ShowPalette)
	assert.Equal(t, "AS", h.s.Menu.Masked(), "back to the weave tool's keys")
}

func TestBackWeavesToggle(t *testing.T) {
	h := newHarness(t)
	h.keys("FR")
	assert.False(t, h.s.WeaveBack)
	h.keys("R")
	assert.True(t, h.s.WeaveBack)
}

func TestExport(t *testing.T) {
	h := newHarness(t)
	h.keys("EER")
	assert.Equal(t, []bool{true, false}, h.host.exports)

	h.host.err = errors.New("disk full")
	h.keys("E")
	assert.Equal(t, "disk full", h.status.lastErr())
}

func TestReload(t *testing.T) {
	h := newHarness(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("snap_radius = 20\nweave_back = false\n"), 0o644))
	h.pump(hook.Event{Type: hook.Reload, Path: path})
	assert.Equal(t, 20.0, h.s.Params.SnapRadius)
	assert.False(t, h.s.WeaveBack)
	assert.Contains(t, h.status.infos, "config reloaded")

	require.NoError(t, os.WriteFile(path, []byte("snap_radius = \n"), 0o644))
	h.pump(hook.Event{Type: hook.Reload, Path: path})
	assert.Equal(t, 20.0, h.s.Params.SnapRadius)
	assert.NotEmpty(t, h.status.lastErr())
}
