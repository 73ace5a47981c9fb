package polygon

import (
	"math"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/gardener"
)

// Contour converts the foci to a polyclip contour.
func (pg *Polygon) Contour() polyclip.Contour {
	c := make(polyclip.Contour, pg.N())
	for i, z := range pg.Points() {
		c[i] = polyclip.Point{X: z.X(), Y: z.Y()}
	}
	return c
}

func (pg *Polygon) clipPolygon() polyclip.Polygon {
	return polyclip.Polygon{pg.Contour()}
}

// Contains is a predicate: does point p lie inside the polygon?
func (pg *Polygon) Contains(p gardener.Pair) bool {
	return pg.Contour().Contains(polyclip.Point{X: p.X(), Y: p.Y()})
}

// BoundingBox returns the minimum and maximum corners of the axis-aligned
// box around all foci.
func (pg *Polygon) BoundingBox() (gardener.Pair, gardener.Pair) {
	bb := pg.Contour().BoundingBox()
	return gardener.P(bb.Min.X, bb.Min.Y), gardener.P(bb.Max.X, bb.Max.Y)
}

// Encloses is a predicate: does the area of pg cover the area of other?
// Slivers of other sticking out of pg are tolerated up to a relative area of
// 1e-9.
func (pg *Polygon) Encloses(other *Polygon) bool {
	diff := other.clipPolygon().Construct(polyclip.DIFFERENCE, pg.clipPolygon())
	var residual float64
	for _, c := range diff {
		residual += contourArea(c)
	}
	L().Debugf("enclosure residual = %g", residual)
	return residual <= 1e-9*other.Area()
}

func contourArea(c polyclip.Contour) float64 {
	var a float64
	for i := range c {
		p, q := c[i], c[(i+1)%len(c)]
		a += p.X*q.Y - p.Y*q.X
	}
	return math.Abs(a) / 2
}
