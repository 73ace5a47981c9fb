/*
Package gardener computes multi-focal "gardener's ellipses": closed, convex
curves traced by a pencil pulling a taut loop of string around a set of foci.

This root package holds the vector primitives the other packages build on:
points, distances, cosines, orientation tests and a polar turn-and-scale
transform. Package ellipse implements the two-focus arcs, package polygon
the focus polygon, package rope the curve walk and package render the
mapping of arcs to drawing primitives.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package gardener

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'gardener'
func tracer() tracing.Trace {
	return tracing.Select("gardener")
}

// === Numeric Data Type =====================================================

// Deg2Rad is a constant for converting from DEG to RAD or vice versa
const Deg2Rad = math.Pi / 180

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// IsFinite is a predicate: is n neither NaN nor ±Inf ?
func IsFinite(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0)
}

// === Pair Data Type ========================================================

// Pair is a 2D point or vector. Coordinates are screen coordinates, i.e. the
// y-axis points down.
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(0, 0)

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// C returns a Pair as a complex number.
func (p Pair) C() complex128 {
	return complex128(p)
}

// C2P returns a Pair from a complex number.
func C2P(c complex128) Pair {
	if cmplx.IsNaN(c) || cmplx.IsInf(c) {
		tracer().Errorf("created pair for complex.NaN")
		return P(0, 0)
	}
	return P(real(c), imag(c))
}

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p)
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p)
}

// IsFinite is a predicate: are both coordinates finite?
func (p Pair) IsFinite() bool {
	return IsFinite(p.X()) && IsFinite(p.Y())
}

// Zap rounds x-part and y-part to Epsilon.
func (p Pair) Zap() Pair {
	return P(Zap(p.X()), Zap(p.Y()))
}

// IsOrigin is a predicate: is this pair origin?
func (p Pair) IsOrigin() bool {
	return p.Equal(Origin)
}

// Equal compares two pairs, up to Epsilon.
func (p Pair) Equal(p2 Pair) bool {
	return Is0(p.X()-p2.X()) && Is0(p.Y()-p2.Y())
}

// Abs is the length of p, interpreted as a vector.
func (p Pair) Abs() float64 {
	return cmplx.Abs(p.C())
}

// Scaled returns a new pair scaled by factor a.
func (p Pair) Scaled(a float64) Pair {
	return P(p.X()*a, p.Y()*a)
}

// Unit returns p scaled to length 1. The origin is returned unchanged.
func (p Pair) Unit() Pair {
	l := p.Abs()
	if l == 0 {
		return p
	}
	return p.Scaled(1 / l)
}

// Dot is the scalar product of p and q.
func (p Pair) Dot(q Pair) float64 {
	return p.X()*q.X() + p.Y()*q.Y()
}

// Cross is the z-component of the cross product p × q.
func (p Pair) Cross(q Pair) float64 {
	return p.X()*q.Y() - p.Y()*q.X()
}

// === Vector Primitives =====================================================

// Distance returns the Euclidean distance between p and q.
func Distance(p, q Pair) float64 {
	return (q - p).Abs()
}

// Midpoint returns the point halfway between p and q.
func Midpoint(p, q Pair) Pair {
	return (p + q).Scaled(0.5)
}

// ThreePointCosine returns the cosine of the angle p1-p0-p2, i.e. the angle
// at p0 between the rays towards p1 and p2. It is NaN if p1 or p2 coincide
// with p0.
func ThreePointCosine(p1, p0, p2 Pair) float64 {
	v1, v2 := p1-p0, p2-p0
	l := v1.Abs() * v2.Abs()
	if l == 0 {
		tracer().Errorf("cosine of angle %s-%s-%s is undefined", p1, p0, p2)
		return math.NaN()
	}
	return v1.Dot(v2) / l
}

// Orientation is the turning direction of three points.
//
// Coordinates are screen coordinates (y-axis pointing down): a positive
// cross product means a visually clockwise turn.
type Orientation int

// Orientations, as returned by Orient.
const (
	CounterClockwise Orientation = -1
	Collinear        Orientation = 0
	Clockwise        Orientation = 1
)

func (o Orientation) String() string {
	switch o {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counter-clockwise"
	}
	return "collinear"
}

// Opposite returns the reverse turning direction.
func (o Orientation) Opposite() Orientation {
	return -o
}

// Orient returns the sign of (p2-p1) × (p3-p1).
func Orient(p1, p2, p3 Pair) Orientation {
	c := (p2 - p1).Cross(p3 - p1)
	switch {
	case c > 0:
		return Clockwise
	case c < 0:
		return CounterClockwise
	}
	return Collinear
}

// TurnAndScale returns the point at polar offset (φ,ρ) from z, in the frame
// where the direction z→d has angle 0. φ is given by its cosine; its sine is
// taken non-negative and clamped against values slightly outside [-1,1].
// Parameter toward selects the side of z→d a positive ρ turns to; a negative
// ρ mirrors the point through z.
func TurnAndScale(z, d Pair, cosPhi, rho float64, toward Orientation) Pair {
	sinPhi := math.Sqrt(math.Max(0, 1-cosPhi*cosPhi)) * float64(toward)
	u := (d - z).Unit()
	turned := C2P(u.C() * complex(cosPhi, sinPhi))
	return z + turned.Scaled(rho)
}
