/*
Package rope traces the curve drawn by a pencil inside a taut loop of string
wrapped around a convex polygon of foci.

For two foci this is the classical gardener's ellipse. For n ≥ 3 foci the
curve is a chain of elliptical arcs: at every moment the string runs from
the pencil to two foci l and r, lies flush against the foci on the far side
of the polygon from r back to l, and skips the foci between l and r. The
pencil therefore moves on the ellipse with foci l and r, and a string
length d equal to the slack plus the length of the skipped polygon chain
from l to r.

Walking the curve

Walk finds the arcs by moving the pencil once around the polygon, in the
direction of the polygon's orientation. Two kinds of events end an arc:

	- the free string from l touches focus l+1: from now on the string is
	  wrapped around l+1, l advances and d shrinks by the edge l→l+1;
	- the free string to r lines up with the edge r→r+1: the string lifts
	  off r, r advances and d grows by the edge r→r+1.

Both candidate points are measured as angles at focus l, which makes them
directly comparable; the event with the larger angle comes first. The focus
where the string changes between flush and free is the arc's pinch focus.

The walk starts on the ellipse of foci 0 and r, at the point where the
string leaves focus 0 in the direction of edge n-1→0, choosing the first r
for which the string wraps around r in the polygon's orientation. It ends
when l has gone once around the polygon, after exactly one visit of every
event: 2n arcs, each sharing its end point with the start point of the next
one. Consecutive arcs have the pinch focus in common and meet with a common
tangent, so the curve is smooth and strictly convex.

Orientation

Coordinates are screen coordinates, see gardener.Orientation. Both clockwise
and counter-clockwise polygons are accepted; the arcs are always generated
on the outside of the polygon.

Usage

	foci := polygon.NullPolygon().Knot(P(400,500)).Knot(P(600,400)).Knot(P(500,700)).Cycle()
	curve, err := rope.Walk(foci, 250)
	for _, f := range curve.Fragments() {
		... f.Ellipse, f.A, f.B, f.Pinch
	}

Curves for different slacks around the same foci are independent of each
other; Nested computes several of them concurrently.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package rope

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'gardener'
func tracer() tracing.Trace {
	return tracing.Select("gardener")
}
