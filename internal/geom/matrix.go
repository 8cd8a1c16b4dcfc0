package geom

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Mat is a 2D affine map stored row-major as [a b c; d e f]:
// x' = a*x + b*y + c, y' = d*x + e*y + f.
type Mat = f64.Aff3

var Identity = Mat{1, 0, 0, 0, 1, 0}

// Linear builds the matrix with rows (a, b) and (c, d) and no translation.
func Linear(a, b, c, d float64) Mat { return Mat{a, b, 0, c, d, 0} }

func Rotation(theta float64) Mat {
	c, s := math.Cos(theta), math.Sin(theta)
	return Linear(c, -s, s, c)
}

// RotationCS builds a rotation from an already known cosine and sine.
func RotationCS(c, s float64) Mat { return Linear(c, -s, s, c) }

func Scaling(k float64) Mat { return Linear(k, 0, 0, k) }

// MirrorX flips the x axis; MirrorY flips the y axis.
var (
	MirrorX = Linear(-1, 0, 0, 1)
	MirrorY = Linear(1, 0, 0, -1)
)

func Translation(d Vec) Mat { return Mat{1, 0, d.X, 0, 1, d.Y} }

// Mul returns m∘n: apply n first, then m.
func Mul(m, n Mat) Mat {
	return Mat{
		m[0]*n[0] + m[1]*n[3],
		m[0]*n[1] + m[1]*n[4],
		m[0]*n[2] + m[1]*n[5] + m[2],
		m[3]*n[0] + m[4]*n[3],
		m[3]*n[1] + m[4]*n[4],
		m[3]*n[2] + m[4]*n[5] + m[5],
	}
}

func Apply(m Mat, p Vec) Vec {
	return Vec{m[0]*p.X + m[1]*p.Y + m[2], m[3]*p.X + m[4]*p.Y + m[5]}
}

// Det of the linear part; negative when m reverses orientation.
func Det(m Mat) float64 { return m[0]*m[4] - m[1]*m[3] }

// Around conjugates the linear part of m by a translation to center.
func Around(m Mat, center Vec) Mat {
	lin := Mat{m[0], m[1], 0, m[3], m[4], 0}
	return Mul(Translation(center), Mul(lin, Translation(center.Scale(-1))))
}
