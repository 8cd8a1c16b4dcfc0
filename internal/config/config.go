// Package config holds the editor's tunable parameters and loads them from
// a TOML file layered over built-in defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// DefaultPath is where Load looks unless told otherwise.
const DefaultPath = "~/.qwerasdf/config.toml"

// PaletteKeys are the keys weave colors are bound to.
const PaletteKeys = "QWERASDF"

var ErrInvalid = errors.New("invalid config")

// Color is an opaque RGB color written as "rrggbb" (a leading '#' is
// accepted).
type Color color.RGBA

func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b, A: 0xff} }

func (c Color) RGBA() color.RGBA { return color.RGBA(c) }

func (c Color) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	s := strings.TrimPrefix(strings.TrimSpace(string(text)), "#")
	if len(s) != 6 {
		return fmt.Errorf("%w: color %q: want rrggbb", ErrInvalid, text)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("%w: color %q: %v", ErrInvalid, text, err)
	}
	*c = RGB(uint8(v>>16), uint8(v>>8), uint8(v))
	return nil
}

// Divisions are the division counts new shapes start with.
type Divisions struct {
	Circle int `toml:"circle"`
	Line   int `toml:"line"`
	Arc    int `toml:"arc"`
	Poly   int `toml:"poly"`
}

type Window struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

type Colors struct {
	Background Color `toml:"background"`
	Shape      Color `toml:"shape"`
	Hint       Color `toml:"hint"`
	Select     Color `toml:"select"`
	Div        Color `toml:"div"`
	Text       Color `toml:"text"`
	Error      Color `toml:"error"`
}

type Export struct {
	Dir    string  `toml:"dir"`
	Height int     `toml:"height"`
	Margin float64 `toml:"margin"`
}

type Params struct {
	// SnapRadius is in pixels.
	SnapRadius float64 `toml:"snap_radius"`
	// Eps is the distance in real units under which two points are the same.
	Eps        float64 `toml:"eps"`
	ZoomFactor float64 `toml:"zoom_factor"`
	MinPPU     float64 `toml:"min_ppu"`
	MaxPPU     float64 `toml:"max_ppu"`
	// RotationStep is the quick transform rotation, in degrees.
	RotationStep float64 `toml:"rotation_step"`
	MaxDivs      int     `toml:"max_divs"`
	Divisions    Divisions
	Weavity      [2]int `toml:"weavity"`
	WeaveBack    bool   `toml:"weave_back"`
	HistorySize  int    `toml:"history_size"`
	Antialias    bool   `toml:"antialias"`
	// MenuTranslate maps physical keys to the labels shown for them, for
	// non-QWERTY layouts.
	MenuTranslate [2]string `toml:"menu_translate"`

	Window  Window
	Colors  Colors
	Palette map[string]Color `toml:"palette"`
	Export  Export
}

func Default() Params {
	return Params{
		SnapRadius:   9,
		Eps:          3e-8,
		ZoomFactor:   1.1,
		MinPPU:       1,
		MaxPPU:       3e5,
		RotationStep: 60,
		MaxDivs:      1000,
		Divisions:    Divisions{Circle: 120, Line: 20, Arc: 20, Poly: 60},
		Weavity:      [2]int{1, 1},
		WeaveBack:    true,
		HistorySize:  64,
		Antialias:    true,
		Window:       Window{Width: 800, Height: 800},
		Colors: Colors{
			Background: RGB(0, 0, 0),
			Shape:      RGB(32, 64, 64),
			Hint:       RGB(128, 32, 96),
			Select:     RGB(90, 90, 255),
			Div:        RGB(128, 128, 128),
			Text:       RGB(192, 192, 192),
			Error:      RGB(200, 30, 60),
		},
		Palette: map[string]Color{
			"Q": RGB(192, 32, 96),
			"W": RGB(11, 153, 20),
			"E": RGB(64, 0, 192),
			"R": RGB(192, 128, 0),
			"A": RGB(160, 200, 128),
			"S": RGB(0, 200, 100),
			"D": RGB(192, 96, 32),
			"F": RGB(100, 0, 200),
		},
		Export: Export{Dir: ".", Height: 2000, Margin: 0.05},
	}
}

// Path expands p (DefaultPath when empty) to an absolute location.
func Path(p string) (string, error) {
	if p == "" {
		p = DefaultPath
	}
	return homedir.Expand(p)
}

// Load reads the file at path over the defaults. A missing file is not an
// error. Out of range numbers are clamped; malformed values are errors.
func Load(path string) (Params, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return p, nil
	}
	if err != nil {
		return p, fmt.Errorf("read config: %w", err)
	}
	if err := Decode(data, &p); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Decode decodes TOML into p, keeping fields the document does not set,
// then validates the result.
func Decode(data []byte, p *Params) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(p); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return fmt.Errorf("%w: %s", ErrInvalid, strict.String())
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return p.Validate()
}

func clamp[T int | float64](x, lo, hi T) T { return max(lo, min(x, hi)) }

// Validate clamps numeric fields into range and checks the rest.
func (p *Params) Validate() error {
	for _, f := range []float64{p.SnapRadius, p.Eps, p.ZoomFactor, p.MinPPU, p.MaxPPU, p.RotationStep, p.Export.Margin} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: non finite number", ErrInvalid)
		}
	}
	p.SnapRadius = clamp(p.SnapRadius, 1, 100)
	p.Eps = clamp(p.Eps, 1e-12, 1e-2)
	p.ZoomFactor = clamp(p.ZoomFactor, 1.01, 4)
	p.MinPPU = clamp(p.MinPPU, 1e-3, 1e6)
	p.MaxPPU = clamp(p.MaxPPU, p.MinPPU, 1e9)
	p.MaxDivs = clamp(p.MaxDivs, 1, 100000)
	for _, n := range []*int{&p.Divisions.Circle, &p.Divisions.Line, &p.Divisions.Arc, &p.Divisions.Poly} {
		*n = clamp(*n, 1, p.MaxDivs)
	}
	if p.Weavity[1] == 0 {
		return fmt.Errorf("%w: weavity step on the second divisions cannot be 0", ErrInvalid)
	}
	p.HistorySize = clamp(p.HistorySize, 1, 10000)
	p.Window.Width = clamp(p.Window.Width, 100, 10000)
	p.Window.Height = clamp(p.Window.Height, 100, 10000)
	p.Export.Height = clamp(p.Export.Height, 16, 20000)
	p.Export.Margin = clamp(p.Export.Margin, 0, 0.45)
	for k := range p.Palette {
		if len(k) != 1 || !strings.Contains(PaletteKeys, k) {
			return fmt.Errorf("%w: palette key %q not one of %s", ErrInvalid, k, PaletteKeys)
		}
	}
	if len([]rune(p.MenuTranslate[0])) != len([]rune(p.MenuTranslate[1])) {
		return fmt.Errorf("%w: menu_translate halves differ in length", ErrInvalid)
	}
	return nil
}

// PaletteRGBA returns the palette keyed by rune.
func (p *Params) PaletteRGBA() map[rune]color.RGBA {
	m := make(map[rune]color.RGBA, len(p.Palette))
	for k, c := range p.Palette {
		m[rune(k[0])] = c.RGBA()
	}
	return m
}

// ExportDir is Export.Dir with a leading ~ expanded.
func (p *Params) ExportDir() string {
	dir, err := homedir.Expand(p.Export.Dir)
	if err != nil {
		return p.Export.Dir
	}
	return dir
}
