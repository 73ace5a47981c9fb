/*
Package ellipse implements the two-focus "gardener's ellipse" used for each
arc of a multi-focal curve.

An ellipse is given by its foci F1 and F2 and the length d of string
attributed to it: every boundary point X satisfies |X-F1| + |X-F2| = d.
Boundary points are addressed in focal-polar form, i.e. by the cosine of the
angle at one of the foci, measured from the direction F1→F2. Only one half
of the ellipse is addressable this way: an ellipse is created for one side
of its chord F1→F2, and all points it returns lie on that side.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package ellipse

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/gardener"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'gardener.geometry'
func tracer() tracing.Trace {
	return tracing.Select("gardener.geometry")
}

// ErrGeometryViolation is flagged if the string is not longer than the
// distance between the foci.
var ErrGeometryViolation = errors.New("string too short for foci")

// FocusSign selects the focus an angle is measured at.
type FocusSign int

const (
	// AtF1 measures angles at F1, starting from the direction towards F2.
	AtF1 FocusSign = -1
	// AtF2 measures angles at F2, starting from the direction away from F1.
	AtF2 FocusSign = 1
)

// Ellipse is an immutable ellipse given by two foci and a string length.
type Ellipse struct {
	f1, f2 gardener.Pair
	a      float64              // semi-major axis
	b      float64              // semi-minor axis
	c      float64              // half the distance between the foci
	side   gardener.Orientation // side of F1→F2 points are generated on
}

// New creates an ellipse for foci f1 and f2 and string length d, i.e. with
// semi-major axis d/2. Points on the ellipse will be generated on the given
// side of the chord f1→f2. Side must not be Collinear.
//
// An error wrapping ErrGeometryViolation is returned if d/2 does not
// exceed half the focal distance.
func New(f1, f2 gardener.Pair, d float64, side gardener.Orientation) (Ellipse, error) {
	if side == gardener.Collinear {
		return Ellipse{}, fmt.Errorf("%w: no side given for ellipse", ErrGeometryViolation)
	}
	c := gardener.Distance(f1, f2) / 2
	a := d / 2
	if !(a > c) || !gardener.IsFinite(a) {
		tracer().Debugf("no ellipse for foci %s and %s with string length %g", f1, f2, d)
		return Ellipse{}, fmt.Errorf("%w: a = %g, c = %g", ErrGeometryViolation, a, c)
	}
	return Ellipse{
		f1:   f1,
		f2:   f2,
		a:    a,
		b:    math.Sqrt(a*a - c*c),
		c:    c,
		side: side,
	}, nil
}

// F1 is the first focus.
func (e Ellipse) F1() gardener.Pair {
	return e.f1
}

// F2 is the second focus.
func (e Ellipse) F2() gardener.Pair {
	return e.f2
}

// SemiMajor returns a.
func (e Ellipse) SemiMajor() float64 {
	return e.a
}

// SemiMinor returns b.
func (e Ellipse) SemiMinor() float64 {
	return e.b
}

// FocalHalfDistance returns c, half the distance between the foci.
func (e Ellipse) FocalHalfDistance() float64 {
	return e.c
}

// StringLength returns 2a, the constant sum of distances to both foci.
func (e Ellipse) StringLength() float64 {
	return 2 * e.a
}

// Side is the side of F1→F2 boundary points are generated on.
func (e Ellipse) Side() gardener.Orientation {
	return e.side
}

// Center is the midpoint between the foci.
func (e Ellipse) Center() gardener.Pair {
	return gardener.Midpoint(e.f1, e.f2)
}

// Tilt returns the angle of the chord F1→F2 in radians.
func (e Ellipse) Tilt() float64 {
	d := e.f2 - e.f1
	return math.Atan2(d.Y(), d.X())
}

// TiltDeg returns the angle of the chord F1→F2 in degrees. Renderers use
// it to rotate an axis-aligned ellipse into place.
func (e Ellipse) TiltDeg() float64 {
	return e.Tilt() / gardener.Deg2Rad
}

// PointOnTheEllipse returns the boundary point at angle φ, given by its
// cosine. With AtF1, φ is measured at F1 from the direction F1→F2; with AtF2
// it is measured at F2 from the direction pointing away from F1. The focal
// radius is ρ = b²/(a + s·c·cos φ), s being the focus sign.
func (e Ellipse) PointOnTheEllipse(cosPhi float64, s FocusSign) gardener.Pair {
	rho := e.b * e.b / (e.a + float64(s)*e.c*cosPhi)
	z, d := e.f1, e.f2
	if s == AtF2 {
		z, d = e.f2, e.f1
	}
	return gardener.TurnAndScale(z, d, cosPhi, -float64(s)*rho, e.side)
}

// CosineAtF1 returns the cosine of the angle at F1 between the direction
// towards F2 and the direction towards p. For points generated by this
// ellipse it is the argument to PointOnTheEllipse(…, AtF1).
func (e Ellipse) CosineAtF1(p gardener.Pair) float64 {
	return gardener.ThreePointCosine(p, e.f1, e.f2)
}

// TautLength returns |p-F1| + |p-F2|. It equals StringLength for points on
// the ellipse.
func (e Ellipse) TautLength(p gardener.Pair) float64 {
	return gardener.Distance(p, e.f1) + gardener.Distance(p, e.f2)
}

// Param returns the eccentric angle of boundary point p, i.e. the angle t in
// the ellipse's own frame (center at origin, major axis along x) for which
// p = (a·cos t, b·sin t). Angles grow in the direction of positive
// rotation, clockwise on screen.
func (e Ellipse) Param(p gardener.Pair) float64 {
	toFrame := gardener.Translation(-e.Center()).Combine(gardener.Rotation(-e.Tilt()))
	q := toFrame.Transform(p)
	return math.Atan2(q.Y()/e.b, q.X()/e.a)
}

// PointAtParam returns the boundary point for eccentric angle t. It is the
// inverse of Param and covers both sides of the chord.
func (e Ellipse) PointAtParam(t float64) gardener.Pair {
	sin, cos := math.Sincos(t)
	fromFrame := gardener.Rotation(e.Tilt()).Combine(gardener.Translation(e.Center()))
	return fromFrame.Transform(gardener.P(e.a*cos, e.b*sin))
}

func (e Ellipse) String() string {
	return fmt.Sprintf("ellipse[%s–%s, a=%.4g, b=%.4g]", e.f1, e.f2, e.a, e.b)
}
