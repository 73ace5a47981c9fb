package rope

import (
	"fmt"
	"math"

	"github.com/npillmayer/gardener"
	"github.com/npillmayer/gardener/ellipse"
)

// NoPinch is the pinch index of a fragment without a pinch focus.
const NoPinch = -1

// Fragment is one elliptical arc of a curve. The arc runs on Ellipse from A
// to B, in the direction of the foci polygon's orientation.
type Fragment struct {
	Ellipse ellipse.Ellipse
	L, R    int           // positions of the foci F1 and F2 within the polygon
	A, B    gardener.Pair // start and end point
	Pinch   int           // focus where the arc hands over to its successor, or NoPinch
}

// HasPinch is a predicate: does f have a pinch focus?
func (f Fragment) HasPinch() bool {
	return f.Pinch != NoPinch
}

// F1 is the trailing focus of the fragment's ellipse.
func (f Fragment) F1() gardener.Pair {
	return f.Ellipse.F1()
}

// F2 is the leading focus of the fragment's ellipse.
func (f Fragment) F2() gardener.Pair {
	return f.Ellipse.F2()
}

func (f Fragment) String() string {
	pinch := "-"
	if f.HasPinch() {
		pinch = fmt.Sprintf("%d", f.Pinch)
	}
	return fmt.Sprintf("fragment[%d,%d: %s → %s, pinch %s]", f.L, f.R, f.A, f.B, pinch)
}

// Pencil returns the position of the pencil at fraction t ∈ [0,1] of
// fragment f. The angle at F1 is interpolated linearly between A (t = 0)
// and B (t = 1). Values of t outside [0,1] are clamped.
func Pencil(f Fragment, t float64) gardener.Pair {
	switch {
	case t <= 0:
		return f.A
	case t >= 1:
		return f.B
	}
	thetaA := math.Acos(clamp(f.Ellipse.CosineAtF1(f.A)))
	thetaB := math.Acos(clamp(f.Ellipse.CosineAtF1(f.B)))
	theta := thetaA + t*(thetaB-thetaA)
	return f.Ellipse.PointOnTheEllipse(math.Cos(theta), ellipse.AtF1)
}

func clamp(cos float64) float64 {
	return math.Max(-1, math.Min(1, cos))
}
