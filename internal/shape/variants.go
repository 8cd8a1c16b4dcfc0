package shape

import (
	"math"
	"slices"

	"github.com/example/qwerasdf/internal/geom"
)

const tau = 2 * math.Pi

// Point has a single division; any index resolves to it.
type Point struct {
	P    geom.Vec
	divs divs
}

func NewPoint(p geom.Vec) *Point {
	s := &Point{P: p}
	s.SetDivs(1)
	return s
}

func (s *Point) Divs() []geom.Vec           { return s.divs }
func (s *Point) Loopy() bool                { return true }
func (s *Point) Div(i int) (geom.Vec, bool) { return s.divs.at(true, i) }
func (s *Point) Keypoints() []geom.Vec      { return []geom.Vec{s.P} }
func (s *Point) SetDivs(int)                { s.divs = divs{s.P} }

func (s *Point) Move(d geom.Vec) {
	s.P = s.P.Add(d)
	s.divs.shift(d)
}

func (s *Point) Transform(m geom.Mat, center geom.Vec) {
	applyAll(m, center, &s.P)
	s.SetDivs(1)
}

func (s *Point) Merger(other Shape, eps float64) IndexMap {
	o, ok := other.(*Point)
	if !ok || !geom.AlmostEqual(s.P, o.P, eps) {
		return nil
	}
	return func(int) int { return 0 }
}

func (s *Point) clone() *Point {
	c := *s
	c.divs = slices.Clone(s.divs)
	return &c
}

func (s *Point) Clone() Shape { return s.clone() }

func (s *Point) Moved(d geom.Vec) Shape {
	c := s.clone()
	c.Move(d)
	return c
}

func (s *Point) Transformed(m geom.Mat, center geom.Vec) Shape {
	c := s.clone()
	c.Transform(m, center)
	return c
}

// Line is an open segment with evenly spaced divisions, both ends included.
type Line struct {
	Start, End geom.Vec
	divs       divs
}

func NewLine(start, end geom.Vec, n int) *Line {
	s := &Line{Start: start, End: end}
	s.SetDivs(n)
	return s
}

func (s *Line) Divs() []geom.Vec           { return s.divs }
func (s *Line) Loopy() bool                { return false }
func (s *Line) Div(i int) (geom.Vec, bool) { return s.divs.at(false, i) }
func (s *Line) Keypoints() []geom.Vec      { return []geom.Vec{s.Start, s.End} }

func (s *Line) SetDivs(n int) {
	ts := linspace(0, 1, clampDivs(n), true)
	s.divs = make(divs, len(ts))
	for i, t := range ts {
		s.divs[i] = geom.Lerp(s.Start, s.End, t)
	}
}

func (s *Line) Move(d geom.Vec) {
	s.Start, s.End = s.Start.Add(d), s.End.Add(d)
	s.divs.shift(d)
}

func (s *Line) Transform(m geom.Mat, center geom.Vec) {
	applyAll(m, center, &s.Start, &s.End)
	s.SetDivs(len(s.divs))
}

func (s *Line) Merger(other Shape, eps float64) IndexMap {
	if _, ok := other.(*Line); !ok {
		return nil
	}
	return naiveMerger(s, other, eps)
}

func (s *Line) clone() *Line {
	c := *s
	c.divs = slices.Clone(s.divs)
	return &c
}

func (s *Line) Clone() Shape { return s.clone() }

func (s *Line) Moved(d geom.Vec) Shape {
	c := s.clone()
	c.Move(d)
	return c
}

func (s *Line) Transformed(m geom.Mat, center geom.Vec) Shape {
	c := s.clone()
	c.Transform(m, center)
	return c
}

// Circle is centered on Center and passes through Other, where its first
// division sits. Divisions run counterclockwise unless Clockwise is set.
type Circle struct {
	Center, Other geom.Vec
	Clockwise     bool
	divs          divs
}

func NewCircle(center, other geom.Vec, n int, clockwise bool) *Circle {
	s := &Circle{Center: center, Other: other, Clockwise: clockwise}
	s.SetDivs(n)
	return s
}

func (s *Circle) Divs() []geom.Vec           { return s.divs }
func (s *Circle) Loopy() bool                { return true }
func (s *Circle) Div(i int) (geom.Vec, bool) { return s.divs.at(true, i) }
func (s *Circle) Keypoints() []geom.Vec      { return []geom.Vec{s.Center, s.Other} }
func (s *Circle) Radius() float64            { return geom.Dist(s.Center, s.Other) }

func (s *Circle) dir() float64 {
	if s.Clockwise {
		return -1
	}
	return 1
}

func (s *Circle) SetDivs(n int) {
	n = clampDivs(n)
	r := s.Radius()
	if geom.NearZero(r, geom.DefaultEps) {
		s.divs = repeat(s.Center, n)
		return
	}
	start := s.Other.Sub(s.Center).Angle()
	ts := linspace(start, start+tau*s.dir(), n, false)
	s.divs = make(divs, n)
	for i, t := range ts {
		s.divs[i] = geom.Polar(s.Center, r, t)
	}
}

func (s *Circle) Move(d geom.Vec) {
	s.Center, s.Other = s.Center.Add(d), s.Other.Add(d)
	s.divs.shift(d)
}

func (s *Circle) Transform(m geom.Mat, center geom.Vec) {
	if geom.Det(m) < 0 {
		s.Clockwise = !s.Clockwise
	}
	applyAll(m, center, &s.Center, &s.Other)
	s.SetDivs(len(s.divs))
}

// Merger accepts circles that differ only by a rotation of a whole number of
// divisions and possibly by their direction.
func (s *Circle) Merger(other Shape, eps float64) IndexMap {
	o, ok := other.(*Circle)
	n := len(s.divs)
	if !ok || n != len(o.divs) || !geom.AlmostEqual(s.Center, o.Center, eps) {
		return nil
	}
	r := s.Radius()
	if !geom.NearZero(r-o.Radius(), eps) {
		return nil
	}
	if geom.NearZero(r, eps) {
		return identity
	}
	delta := tau / float64(n)
	phi := o.Other.Sub(o.Center).Angle() - s.Other.Sub(s.Center).Angle()
	q := math.Round(phi / delta)
	if !geom.NearZero((phi-q*delta)*r, eps) {
		return nil
	}
	qi := int(q)
	ds, do := int(s.dir()), int(o.dir())
	return func(i int) int { return geom.Mod(ds*(qi+do*i), n) }
}

func (s *Circle) clone() *Circle {
	c := *s
	c.divs = slices.Clone(s.divs)
	return &c
}

func (s *Circle) Clone() Shape { return s.clone() }

func (s *Circle) Moved(d geom.Vec) Shape {
	c := s.clone()
	c.Move(d)
	return c
}

func (s *Circle) Transformed(m geom.Mat, center geom.Vec) Shape {
	c := s.clone()
	c.Transform(m, center)
	return c
}

// Arc runs from Start to End around Center. End is pulled onto the circle
// through Start when the arc is built.
type Arc struct {
	Center, Start, End geom.Vec
	Clockwise          bool
	divs               divs
}

func NewArc(center, start, end geom.Vec, n int, clockwise bool) *Arc {
	rs, re := geom.Dist(center, start), geom.Dist(center, end)
	if geom.NearZero(rs, geom.DefaultEps) || geom.NearZero(re, geom.DefaultEps) {
		start, end = center, center
	} else {
		end = center.Add(end.Sub(center).Scale(rs / re))
	}
	s := &Arc{Center: center, Start: start, End: end, Clockwise: clockwise}
	s.SetDivs(n)
	return s
}

func (s *Arc) Divs() []geom.Vec           { return s.divs }
func (s *Arc) Loopy() bool                { return false }
func (s *Arc) Div(i int) (geom.Vec, bool) { return s.divs.at(false, i) }
func (s *Arc) Keypoints() []geom.Vec      { return []geom.Vec{s.Center, s.Start, s.End} }

// Angles returns the start angle and the signed end angle of the sweep.
func (s *Arc) Angles() (t1, t2 float64) {
	t1 = s.Start.Sub(s.Center).Angle()
	diff := math.Mod(s.End.Sub(s.Center).Angle()-t1, tau)
	if diff < 0 {
		diff += tau
	}
	if s.Clockwise {
		return t1, t1 + diff - tau
	}
	return t1, t1 + diff
}

func (s *Arc) SetDivs(n int) {
	n = clampDivs(n)
	if geom.AlmostEqual(s.Center, s.Start, geom.DefaultEps) {
		s.divs = repeat(s.Center, n)
		return
	}
	t1, t2 := s.Angles()
	r := geom.Dist(s.Center, s.Start)
	ts := linspace(t1, t2, n, true)
	s.divs = make(divs, n)
	for i, t := range ts {
		s.divs[i] = geom.Polar(s.Center, r, t)
	}
}

func (s *Arc) Move(d geom.Vec) {
	s.Center, s.Start, s.End = s.Center.Add(d), s.Start.Add(d), s.End.Add(d)
	s.divs.shift(d)
}

func (s *Arc) Transform(m geom.Mat, center geom.Vec) {
	if geom.Det(m) < 0 {
		s.Clockwise = !s.Clockwise
	}
	applyAll(m, center, &s.Center, &s.Start, &s.End)
	s.SetDivs(len(s.divs))
}

func (s *Arc) Merger(other Shape, eps float64) IndexMap {
	o, ok := other.(*Arc)
	if !ok || len(s.divs) != len(o.divs) || !geom.AlmostEqual(s.Center, o.Center, eps) {
		return nil
	}
	same := geom.AlmostEqual(s.Start, o.Start, eps) && geom.AlmostEqual(s.End, o.End, eps)
	swapped := geom.AlmostEqual(s.Start, o.End, eps) && geom.AlmostEqual(s.End, o.Start, eps)
	switch {
	case s.Clockwise == o.Clockwise && same:
		return identity
	case s.Clockwise != o.Clockwise && swapped:
		return reversedMerger(s, o, eps)
	}
	return nil
}

func (s *Arc) clone() *Arc {
	c := *s
	c.divs = slices.Clone(s.divs)
	return &c
}

func (s *Arc) Clone() Shape { return s.clone() }

func (s *Arc) Moved(d geom.Vec) Shape {
	c := s.clone()
	c.Move(d)
	return c
}

func (s *Arc) Transformed(m geom.Mat, center geom.Vec) Shape {
	c := s.clone()
	c.Transform(m, center)
	return c
}

// PolyLine spreads its divisions evenly by arc length over its segments.
// A closed polyline also runs back from its last point to its first.
type PolyLine struct {
	Points []geom.Vec
	Closed bool
	divs   divs
}

func NewPolyLine(points []geom.Vec, n int, closed bool) *PolyLine {
	s := &PolyLine{Points: slices.Clone(points), Closed: closed}
	s.SetDivs(n)
	return s
}

func (s *PolyLine) Divs() []geom.Vec           { return s.divs }
func (s *PolyLine) Loopy() bool                { return s.Closed }
func (s *PolyLine) Div(i int) (geom.Vec, bool) { return s.divs.at(s.Closed, i) }
func (s *PolyLine) Keypoints() []geom.Vec      { return s.Points }

func (s *PolyLine) path() []geom.Vec {
	if s.Closed && len(s.Points) > 0 {
		return append(slices.Clone(s.Points), s.Points[0])
	}
	return s.Points
}

// cumulative returns the arc length from the first point to each point of
// the path.
func cumulative(path []geom.Vec) []float64 {
	cum := make([]float64, len(path))
	for i := 1; i < len(path); i++ {
		cum[i] = cum[i-1] + geom.Dist(path[i-1], path[i])
	}
	return cum
}

func (s *PolyLine) SetDivs(n int) {
	n = clampDivs(n)
	if len(s.Points) == 0 {
		s.divs = nil
		return
	}
	path := s.path()
	cum := cumulative(path)
	total := cum[len(cum)-1]
	if n == 1 || geom.NearZero(total, geom.DefaultEps) {
		s.divs = repeat(path[0], n)
		return
	}
	k := 0
	s.divs = make(divs, 0, n)
	for _, t := range linspace(0, total, n, !s.Closed) {
		for k+2 < len(path) && t > cum[k+1] {
			k++
		}
		seg := cum[k+1] - cum[k]
		u := 0.0
		if !geom.NearZero(seg, geom.DefaultEps) {
			u = (t - cum[k]) / seg
		}
		s.divs = append(s.divs, geom.Lerp(path[k], path[k+1], u))
	}
}

func (s *PolyLine) Move(d geom.Vec) {
	for i := range s.Points {
		s.Points[i] = s.Points[i].Add(d)
	}
	s.divs.shift(d)
}

func (s *PolyLine) Transform(m geom.Mat, center geom.Vec) {
	aff := geom.Around(m, center)
	for i, p := range s.Points {
		s.Points[i] = geom.Apply(aff, p)
	}
	s.SetDivs(len(s.divs))
}

// Merger on an open polyline matches the same or the reversed point
// sequence. A closed one also matches any cyclic rotation of its points in
// either direction, as long as the new starting point falls on a division.
func (s *PolyLine) Merger(other Shape, eps float64) IndexMap {
	o, ok := other.(*PolyLine)
	if !ok || s.Closed != o.Closed || len(s.Points) != len(o.Points) || len(s.divs) != len(o.divs) {
		return nil
	}
	if !s.Closed {
		return naiveMerger(s, o, eps)
	}
	n, m := len(s.divs), len(s.Points)
	cum := cumulative(s.path())
	step := cum[len(cum)-1] / float64(n)
	for r := 0; r < m; r++ {
		for _, sign := range []int{1, -1} {
			if !s.rotationMatches(o, r, sign, eps) {
				continue
			}
			if geom.NearZero(step, eps) {
				return identity
			}
			q := math.Round(cum[r] / step)
			if !geom.NearZero(cum[r]-q*step, eps) {
				continue
			}
			qi := int(q)
			return func(i int) int { return geom.Mod(qi+sign*i, n) }
		}
	}
	return nil
}

func (s *PolyLine) rotationMatches(o *PolyLine, r, sign int, eps float64) bool {
	m := len(s.Points)
	for i, p := range o.Points {
		if !geom.AlmostEqual(s.Points[geom.Mod(r+sign*i, m)], p, eps) {
			return false
		}
	}
	return true
}

func (s *PolyLine) clone() *PolyLine {
	c := *s
	c.Points = slices.Clone(s.Points)
	c.divs = slices.Clone(s.divs)
	return &c
}

func (s *PolyLine) Clone() Shape { return s.clone() }

func (s *PolyLine) Moved(d geom.Vec) Shape {
	c := s.clone()
	c.Move(d)
	return c
}

func (s *PolyLine) Transformed(m geom.Mat, center geom.Vec) Shape {
	c := s.clone()
	c.Transform(m, center)
	return c
}
