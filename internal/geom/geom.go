// Package geom holds the real-space vector math shared by shapes, snapping
// and the transform tools.
package geom

import "math"

// DefaultEps is the distance under which two points are considered the same
// when no tunable epsilon is at hand (degenerate shape construction).
const DefaultEps = 3e-8

type Vec struct {
	X float64
	Y float64
}

func V(x, y float64) Vec { return Vec{X: x, Y: y} }

func (v Vec) Add(u Vec) Vec       { return Vec{v.X + u.X, v.Y + u.Y} }
func (v Vec) Sub(u Vec) Vec       { return Vec{v.X - u.X, v.Y - u.Y} }
func (v Vec) Scale(k float64) Vec { return Vec{v.X * k, v.Y * k} }
func (v Vec) Dot(u Vec) float64   { return v.X*u.X + v.Y*u.Y }
func (v Vec) Len() float64        { return math.Hypot(v.X, v.Y) }

// Angle is the direction of v, in (-pi, pi].
func (v Vec) Angle() float64 { return math.Atan2(v.Y, v.X) }

// Unit returns v scaled to length 1. ok is false for a zero-length vector.
func (v Vec) Unit() (u Vec, ok bool) {
	l := v.Len()
	if NearZero(l, DefaultEps) {
		return Vec{}, false
	}
	return v.Scale(1 / l), true
}

func SqDist(a, b Vec) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	return dx*dx + dy*dy
}

func Dist(a, b Vec) float64 { return math.Sqrt(SqDist(a, b)) }

func NearZero(x, eps float64) bool { return math.Abs(x) < eps }

// AlmostEqual compares a and b in squared form so eps stays a distance.
func AlmostEqual(a, b Vec, eps float64) bool { return SqDist(a, b) < eps*eps }

func Lerp(a, b Vec, t float64) Vec {
	return Vec{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}

func Polar(center Vec, r, theta float64) Vec {
	return Vec{center.X + r*math.Cos(theta), center.Y + r*math.Sin(theta)}
}

// Mod is the always non-negative remainder used for loopy index arithmetic.
func Mod(i, n int) int {
	m := i % n
	if m < 0 {
		m += n
	}
	return m
}

func DistToSegment(p, a, b Vec) float64 {
	ab := b.Sub(a)
	abLen2 := ab.Dot(ab)
	if abLen2 == 0 {
		return Dist(p, a)
	}
	t := p.Sub(a).Dot(ab) / abLen2
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return Dist(p, Lerp(a, b, t))
}

func Bounds(points ...Vec) (lo, hi Vec) {
	if len(points) == 0 {
		return
	}
	lo, hi = points[0], points[0]
	for _, p := range points[1:] {
		lo.X, lo.Y = math.Min(lo.X, p.X), math.Min(lo.Y, p.Y)
		hi.X, hi.Y = math.Max(hi.X, p.X), math.Max(hi.Y, p.Y)
	}
	return lo, hi
}
