package snap

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/qwerasdf/internal/geom"
	"github.com/example/qwerasdf/internal/shape"
	"github.com/example/qwerasdf/internal/view"
)

const eps = 1e-7

func TestSnapEmpty(t *testing.T) {
	v := view.New(geom.V(0, 0), 100)
	p, cands := Snap(geom.V(50, 50), v, 9, eps, nil)
	assert.Equal(t, geom.V(0.5, -0.5), p)
	assert.Empty(t, cands)
}

func TestSnapOverlappingPoints(t *testing.T) {
	v := view.New(geom.V(0, 0), 100)
	a := shape.NewPoint(geom.V(1, -1))
	b := shape.NewPoint(geom.V(1, -1+1e-9))
	far := shape.NewPoint(geom.V(3, -3))
	p, cands := Snap(geom.V(103, 98), v, 9, eps, []shape.Shape{a, far, b})
	assert.InDelta(t, 1, p.X, 1e-8)
	assert.InDelta(t, -1, p.Y, 1e-8)
	require.Len(t, cands, 2)
	assert.ElementsMatch(t, []shape.Shape{a, b}, Shapes(cands))
}

func TestSnapOutOfRadius(t *testing.T) {
	v := view.New(geom.V(0, 0), 100)
	l := shape.NewLine(geom.V(0, 0), geom.V(1, 0), 2)
	p, cands := Snap(geom.V(50, 20), v, 9, eps, []shape.Shape{l})
	assert.Equal(t, geom.V(0.5, -0.2), p)
	assert.Empty(t, cands)
}

func TestSnapLineAndCircleShareDivision(t *testing.T) {
	v := view.New(geom.V(-2, 2), 100)
	c := shape.NewCircle(geom.V(0, 0), geom.V(1, 0), 12, false)
	l := shape.NewLine(geom.V(1, 0), geom.V(2, 0), 5)
	pix := v.RealToPixel(geom.V(1.02, 0.01))
	p, cands := Snap(pix, v, 9, eps, []shape.Shape{c, l})
	assert.Equal(t, geom.V(1, 0), p)
	require.Len(t, cands, 2)
	assert.Equal(t, shape.Hangpoint{Shape: c, Index: 0}, cands[0])
	assert.Equal(t, shape.Hangpoint{Shape: l, Index: 0}, cands[1])
	assert.Len(t, OnShapes(cands, l), 1)
}

// Snapping agrees with a brute-force search over every division.
func TestSnapMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	v := view.New(geom.V(-2, 2), 100)
	radius := 9.0
	var shapes []shape.Shape
	for i := 0; i < 8; i++ {
		c := geom.V(rng.Float64()*2-1, rng.Float64()*2-1)
		shapes = append(shapes,
			shape.NewCircle(c, c.Add(geom.V(rng.Float64(), 0)), 10+rng.Intn(50), rng.Intn(2) == 0),
			shape.NewLine(c, geom.V(rng.Float64(), rng.Float64()), 2+rng.Intn(20)))
	}
	for k := 0; k < 500; k++ {
		pix := geom.V(rng.Float64()*400, rng.Float64()*400)
		at := v.PixelToReal(pix)
		tol := v.PixelDistToReal(radius)

		bestSq := math.Inf(1)
		for _, s := range shapes {
			for _, d := range s.Divs() {
				bestSq = math.Min(bestSq, geom.SqDist(at, d))
			}
		}

		p, cands := Snap(pix, v, radius, eps, shapes)
		if bestSq <= tol*tol {
			assert.InDelta(t, bestSq, geom.SqDist(at, p), 1e-12)
			assert.NotEmpty(t, cands)
		} else {
			assert.Equal(t, at, p)
		}
		for _, h := range cands {
			d, ok := h.Pos()
			require.True(t, ok)
			assert.True(t, geom.AlmostEqual(d, p, eps))
		}
	}
}
