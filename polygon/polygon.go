/*
Package polygon holds the ordered foci a rope is looped around.

Foci are collected with a builder, similar to paths in MetaPost:

	pg := NullPolygon().Knot(P(400,500)).Knot(P(600,400)).Knot(P(500,700)).Cycle()

A polygon suitable for tracing a curve around it is closed, has at least
three foci, and is strictly convex with a consistent orientation. Validate
checks these conditions. Foci may carry an opaque display id, which is
ignored by all geometric operations.

Containment and enclosure tests are delegated to polyclip.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/npillmayer/gardener"
	"github.com/npillmayer/schuko/tracing"
)

// L traces with key 'gardener.geometry'.
func L() tracing.Trace {
	return tracing.Select("gardener.geometry")
}

var (
	// ErrTooFewFoci indicates a polygon with less than 3 foci.
	ErrTooFewFoci = errors.New("polygon has too few foci")
	// ErrNotCycle indicates a polygon which has not been closed.
	ErrNotCycle = errors.New("polygon is not closed")
	// ErrInvalidFocus indicates a focus coordinate contains NaN/Inf.
	ErrInvalidFocus = errors.New("polygon has invalid focus coordinate")
	// ErrDegenerateEdge indicates two consecutive foci collapse to one point.
	ErrDegenerateEdge = errors.New("polygon has degenerate edge")
	// ErrCollinear indicates three consecutive foci on a line.
	ErrCollinear = errors.New("polygon has collinear consecutive foci")
	// ErrNotConvex indicates a polygon which turns both ways or winds more than once.
	ErrNotConvex = errors.New("polygon is not convex")
)

// Focus is a point a rope is wrapped around.
type Focus struct {
	Z  gardener.Pair
	ID string // display id, opaque to geometry
}

// Polygon is an ordered sequence of foci. Start building one with
// NullPolygon().
type Polygon struct {
	foci  []Focus
	cycle bool
}

// NullPolygon creates an empty polygon, to be extended by subsequent builder
// calls.
func NullPolygon() *Polygon {
	return &Polygon{}
}

// FromPoints creates a closed polygon from a list of points.
func FromPoints(pts ...gardener.Pair) *Polygon {
	pg := NullPolygon()
	for _, p := range pts {
		pg.Knot(p)
	}
	return pg.Cycle()
}

// Box creates a closed, rectangular polygon with opposite corners a and b.
func Box(a, b gardener.Pair) *Polygon {
	return NullPolygon().
		Knot(a).
		Knot(gardener.P(b.X(), a.Y())).
		Knot(b).
		Knot(gardener.P(a.X(), b.Y())).
		Cycle()
}

// Knot adds a focus to a polygon. Part of builder functionality.
func (pg *Polygon) Knot(p gardener.Pair) *Polygon {
	return pg.TaggedKnot(p, "")
}

// TaggedKnot adds a focus with a display id to a polygon.
// Part of builder functionality.
func (pg *Polygon) TaggedKnot(p gardener.Pair, id string) *Polygon {
	pg.foci = append(pg.foci, Focus{Z: p, ID: id})
	return pg
}

// Cycle closes a polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	if pg.N() == 0 {
		panic("cannot close empty polygon")
	}
	pg.cycle = true
	return pg
}

// IsCycle is a predicate: is this polygon closed?
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// N returns the number of foci.
func (pg *Polygon) N() int {
	return len(pg.foci)
}

func (pg *Polygon) mod(i int) int {
	n := pg.N()
	return ((i % n) + n) % n
}

// Z returns the focus at position (i mod N). Negative positions count
// backwards from the end.
func (pg *Polygon) Z(i int) gardener.Pair {
	return pg.foci[pg.mod(i)].Z
}

// Focus returns focus (i mod N), including its display id.
func (pg *Polygon) Focus(i int) Focus {
	return pg.foci[pg.mod(i)]
}

// Points returns a copy of the focus coordinates.
func (pg *Polygon) Points() []gardener.Pair {
	pts := make([]gardener.Pair, pg.N())
	for i, f := range pg.foci {
		pts[i] = f.Z
	}
	return pts
}

// Edge returns the length of the edge from focus i to focus i+1.
func (pg *Polygon) Edge(i int) float64 {
	return gardener.Distance(pg.Z(i), pg.Z(i+1))
}

// Edges returns all edge lengths, edge i running from focus i to i+1.
func (pg *Polygon) Edges() []float64 {
	edges := make([]float64, pg.N())
	for i := range edges {
		edges[i] = pg.Edge(i)
	}
	return edges
}

// Perimeter is the length of a tight loop around all foci.
func (pg *Polygon) Perimeter() float64 {
	var l float64
	for i := 0; i < pg.N(); i++ {
		l += pg.Edge(i)
	}
	return l
}

// Orientation is the turning direction of the first three foci. For a valid
// polygon this is the direction of the whole loop.
func (pg *Polygon) Orientation() gardener.Orientation {
	if pg.N() < 3 {
		return gardener.Collinear
	}
	return gardener.Orient(pg.Z(0), pg.Z(1), pg.Z(2))
}

// Validate checks if a rope may be traced around the foci: the polygon has to
// be closed, have at least 3 finite foci, and be strictly convex with a
// consistent orientation. Three consecutive foci are considered collinear if
// the sine of their turning angle is within gardener.Epsilon.
func (pg *Polygon) Validate() error {
	if pg == nil {
		return fmt.Errorf("%w: polygon is nil", ErrTooFewFoci)
	}
	n := pg.N()
	if n < 3 {
		return fmt.Errorf("%w: need at least 3 foci, got %d", ErrTooFewFoci, n)
	}
	if !pg.IsCycle() {
		return ErrNotCycle
	}
	for i, f := range pg.foci {
		if !f.Z.IsFinite() {
			return fmt.Errorf("%w at focus %d", ErrInvalidFocus, i)
		}
	}
	perimeter := pg.Perimeter()
	for i := 0; i < n; i++ {
		if pg.Edge(i) <= gardener.Epsilon*perimeter {
			return fmt.Errorf("%w between foci %d and %d", ErrDegenerateEdge, i, pg.mod(i+1))
		}
	}
	for i := 0; i < n; i++ {
		in, out := pg.Z(i)-pg.Z(i-1), pg.Z(i+1)-pg.Z(i)
		if math.Abs(in.Cross(out)) <= gardener.Epsilon*in.Abs()*out.Abs() {
			return fmt.Errorf("%w at focus %d", ErrCollinear, i)
		}
	}
	orientation := pg.Orientation()
	var turning float64
	for i := 0; i < n; i++ {
		in, out := pg.Z(i)-pg.Z(i-1), pg.Z(i+1)-pg.Z(i)
		if o := gardener.Orient(pg.Z(i-1), pg.Z(i), pg.Z(i+1)); o != orientation {
			return fmt.Errorf("%w: turns %s at focus %d, expected %s", ErrNotConvex, o, i, orientation)
		}
		turning += math.Atan2(in.Cross(out), in.Dot(out))
	}
	if math.Abs(turning) > 3*math.Pi { // winds more than once
		return fmt.Errorf("%w: total turn of %.4g degrees", ErrNotConvex, turning/gardener.Deg2Rad)
	}
	return nil
}

// Reversed returns a new polygon with the foci in reverse order, keeping
// focus 0 in place.
func (pg *Polygon) Reversed() *Polygon {
	r := &Polygon{cycle: pg.cycle, foci: make([]Focus, pg.N())}
	for i := range r.foci {
		r.foci[i] = pg.Focus(-i)
	}
	return r
}

// Transformed returns a new polygon with every focus transformed by m.
func (pg *Polygon) Transformed(m gardener.AT) *Polygon {
	t := &Polygon{cycle: pg.cycle, foci: make([]Focus, pg.N())}
	for i, f := range pg.foci {
		t.foci[i] = Focus{Z: m.Transform(f.Z), ID: f.ID}
	}
	return t
}

// Area is the unsigned area enclosed by a closed polygon.
func (pg *Polygon) Area() float64 {
	var a float64
	for i := 0; i < pg.N(); i++ {
		a += pg.Z(i).Cross(pg.Z(i + 1))
	}
	return math.Abs(a) / 2
}

// AsString returns a polygon as a (debugging) string, in MetaPost-like
// notation. Display ids are appended in brackets.
func AsString(pg *Polygon) string {
	var sb strings.Builder
	for i, f := range pg.foci {
		if i > 0 {
			sb.WriteString(" -- ")
		}
		fmt.Fprintf(&sb, "(%.4g,%.4g)", f.Z.X(), f.Z.Y())
		if f.ID != "" {
			fmt.Fprintf(&sb, "[%s]", f.ID)
		}
	}
	if pg.IsCycle() {
		sb.WriteString(" -- cycle")
	}
	return sb.String()
}
