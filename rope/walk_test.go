package rope

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/npillmayer/gardener"
	"github.com/npillmayer/gardener/ellipse"
	"github.com/npillmayer/gardener/polygon"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triangle() *polygon.Polygon {
	return polygon.FromPoints(gardener.P(400, 500), gardener.P(600, 400), gardener.P(500, 700))
}

func quadrilateral() *polygon.Polygon {
	return polygon.FromPoints(gardener.P(100, 100), gardener.P(300, 120), gardener.P(320, 300), gardener.P(90, 280))
}

func heptagon() *polygon.Polygon {
	pg := polygon.NullPolygon()
	for k := 0; k < 7; k++ {
		s, c := math.Sincos(2 * math.Pi * float64(k) / 7)
		pg.Knot(gardener.P(500+300*c, 500+300*s))
	}
	return pg.Cycle()
}

type walkCase struct {
	name  string
	foci  *polygon.Polygon
	slack float64
}

func walkCases() []walkCase {
	return []walkCase{
		{"triangle", triangle(), 250},
		{"triangle ccw", triangle().Reversed(), 250},
		{"quadrilateral tight", quadrilateral(), 10},
		{"quadrilateral ccw", quadrilateral().Reversed(), 10},
		{"quadrilateral very tight", quadrilateral(), 1e-3},
		{"quadrilateral loose", quadrilateral(), 5000},
		{"heptagon", heptagon(), 50},
		{"heptagon loose", heptagon(), 2000},
	}
}

func mustWalk(t *testing.T, foci *polygon.Polygon, slack float64) *Curve {
	t.Helper()
	c, err := Walk(foci, slack)
	require.NoError(t, err)
	return c
}

func assertNear(t *testing.T, expected, actual gardener.Pair, delta float64, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, expected.X(), actual.X(), delta, msgAndArgs...)
	assert.InDelta(t, expected.Y(), actual.Y(), delta, msgAndArgs...)
}

func TestThreeFociSixArcs(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := mustWalk(t, triangle(), 250)
	require.Equal(t, 6, c.N())
	var windows [][2]int
	var pinches []int
	for _, f := range c.Fragments() {
		windows = append(windows, [2]int{f.L, f.R})
		pinches = append(pinches, f.Pinch)
	}
	assert.Equal(t, [][2]int{{0, 1}, {0, 2}, {1, 2}, {1, 0}, {2, 0}, {2, 1}}, windows)
	assert.Equal(t, []int{1, 1, 2, 2, 0, 0}, pinches)
	// the curve starts on the extension of edge 2→0
	assertNear(t, gardener.P(317.7050983, 335.4101966), c.Fragment(0).A, 1e-6)
	assertNear(t, gardener.P(643.6265395, 269.1203816), c.Fragment(0).B, 1e-6)
	assertNear(t, gardener.P(562.4570843, 824.9141686), c.Fragment(3).A, 1e-6)
	assert.InDelta(t, 250+triangle().Perimeter(), c.RopeLength(), 1e-9)
	assert.Equal(t, gardener.Clockwise, c.Orientation())
}

func TestFragmentCount(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, tc := range walkCases() {
		c := mustWalk(t, tc.foci, tc.slack)
		n := tc.foci.N()
		assert.GreaterOrEqual(t, c.N(), 2, tc.name)
		assert.LessOrEqual(t, c.N(), 2*n, tc.name)
		// every focus is pressed and lifted once
		assert.Equal(t, 2*n, c.N(), tc.name)
	}
}

func TestContinuity(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, tc := range walkCases() {
		c := mustWalk(t, tc.foci, tc.slack)
		fragments := c.Fragments()
		for i := 0; i+1 < len(fragments); i++ {
			assert.Equal(t, fragments[i].B, fragments[i+1].A, "%s: fragment %d", tc.name, i)
		}
		// closing the loop
		last, first := fragments[len(fragments)-1], fragments[0]
		assertNear(t, first.A, last.B, 1e-6*tc.slack+1e-9, "%s: closure", tc.name)
		// the last fragment ends where the trailing string presses onto focus 0
		assert.Equal(t, tc.foci.N()-1, last.L, tc.name)
		assert.Equal(t, 0, last.Pinch, tc.name)
	}
}

func TestTautString(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, tc := range walkCases() {
		c := mustWalk(t, tc.foci, tc.slack)
		for _, f := range c.Fragments() {
			for _, tt := range []float64{0, 0.25, 0.5, 0.75, 1} {
				p := Pencil(f, tt)
				assert.InEpsilon(t, f.Ellipse.StringLength(), f.Ellipse.TautLength(p), 1e-6,
					"%s: %s at t=%g", tc.name, f, tt)
			}
		}
	}
}

// The string around foci l and r of a fragment, plus the tight loop around
// the foci from r back to l, adds up to the rope length.
func TestRopeLength(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, tc := range walkCases() {
		c := mustWalk(t, tc.foci, tc.slack)
		n := tc.foci.N()
		for _, f := range c.Fragments() {
			wrapped := 0.0
			for i := f.R; i%n != f.L; i++ {
				wrapped += tc.foci.Edge(i)
			}
			assert.InEpsilon(t, c.RopeLength(), f.Ellipse.StringLength()+wrapped, 1e-9, "%s: %s", tc.name, f)
		}
	}
}

func normal(p gardener.Pair, e ellipse.Ellipse) gardener.Pair {
	return ((p - e.F1()).Unit() + (p - e.F2()).Unit()).Unit()
}

func TestTangentContinuity(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, tc := range walkCases() {
		c := mustWalk(t, tc.foci, tc.slack)
		for i := 0; i < c.N(); i++ {
			f, g := c.Fragment(i), c.Fragment(i+1)
			assertNear(t, normal(f.B, f.Ellipse), normal(f.B, g.Ellipse), 1e-9, "%s: join %d", tc.name, i)
			// one focus is swapped; it lines up with the join and the pinch focus
			p, q := f.R, g.R
			if f.L != g.L {
				assert.Equal(t, f.R, g.R, "%s: join %d", tc.name, i)
				p, q = f.L, g.L
			}
			assert.Contains(t, []int{p, q}, f.Pinch, "%s: join %d", tc.name, i)
			u, v := tc.foci.Z(p)-f.B, tc.foci.Z(q)-f.B
			assert.InDelta(t, 0, u.Cross(v)/(u.Abs()*v.Abs()), 1e-9, "%s: join %d", tc.name, i)
		}
	}
}

func TestArcsOutsideFoci(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, tc := range walkCases() {
		if tc.slack < 1 {
			continue
		}
		c := mustWalk(t, tc.foci, tc.slack)
		for _, f := range c.Fragments() {
			assert.False(t, tc.foci.Contains(Pencil(f, 0.5)), "%s: %s", tc.name, f)
		}
		assert.True(t, c.Encloses(tc.foci), tc.name)
		outline := c.Outline(8)
		for i := 0; i < tc.foci.N(); i++ {
			assert.True(t, outline.Contains(tc.foci.Z(i)), "%s: focus %d", tc.name, i)
		}
	}
}

func TestNearTightLoop(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := mustWalk(t, quadrilateral(), 10)
	assert.LessOrEqual(t, c.N(), 8)
	for _, f := range c.Fragments() {
		assert.True(t, f.A.IsFinite() && f.B.IsFinite(), "%s", f)
		assert.True(t, f.HasPinch())
	}
}

func TestLooseLoopStartsFurtherAhead(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := mustWalk(t, quadrilateral(), 5000)
	assert.Equal(t, 2, c.Fragment(0).R)
	var pinches []int
	for _, f := range c.Fragments() {
		pinches = append(pinches, f.Pinch)
	}
	assert.Equal(t, []int{1, 2, 2, 3, 3, 0, 1, 0}, pinches)
}

func matchPoint(p gardener.Pair, pts []gardener.Pair, delta float64) bool {
	for _, q := range pts {
		if gardener.Distance(p, q) <= delta {
			return true
		}
	}
	return false
}

func TestMirrorSymmetry(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	mirror := gardener.Scaling(-1, 1)
	for _, tc := range walkCases() {
		c := mustWalk(t, tc.foci, tc.slack)
		m := mustWalk(t, tc.foci.Transformed(mirror).Reversed(), tc.slack)
		require.Equal(t, c.N(), m.N(), tc.name)
		var mirrored []gardener.Pair
		for _, f := range m.Fragments() {
			mirrored = append(mirrored, mirror.Transform(f.A))
		}
		for _, f := range c.Fragments() {
			assert.True(t, matchPoint(f.A, mirrored, 1e-6), "%s: %s has no mirror image", tc.name, f.A)
		}
	}
}

func TestReversedOrder(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := mustWalk(t, heptagon(), 300)
	r := mustWalk(t, heptagon().Reversed(), 300)
	require.Equal(t, c.N(), r.N())
	assert.Equal(t, gardener.CounterClockwise, r.Orientation())
	var pts []gardener.Pair
	for _, f := range r.Fragments() {
		pts = append(pts, f.A)
	}
	for _, f := range c.Fragments() {
		assert.True(t, matchPoint(f.A, pts, 1e-6), "%s not on reversed curve", f.A)
	}
}

func TestInvalidInput(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	var tests = []struct {
		name  string
		foci  *polygon.Polygon
		slack float64
		cause error
	}{
		{"two foci", polygon.FromPoints(gardener.P(0, 0), gardener.P(1, 0)), 10, polygon.ErrTooFewFoci},
		{"collinear", polygon.FromPoints(gardener.P(0, 0), gardener.P(1, 1), gardener.P(2, 2)), 10, polygon.ErrCollinear},
		{"collinear in quad", polygon.FromPoints(gardener.P(0, 0), gardener.P(2, 0), gardener.P(4, 0), gardener.P(2, 3)), 10, polygon.ErrCollinear},
		{"concave", polygon.FromPoints(gardener.P(0, 0), gardener.P(4, 0), gardener.P(2, 1), gardener.P(4, 4), gardener.P(0, 4)), 10, polygon.ErrNotConvex},
		{"zero slack", triangle(), 0, nil},
		{"negative slack", triangle(), -5, nil},
		{"NaN slack", triangle(), math.NaN(), nil},
		{"infinite slack", triangle(), math.Inf(1), nil},
		{"slack lost to rounding", triangle(), 1e-14, ellipse.ErrGeometryViolation},
		{"walk does not close", polygon.FromPoints(gardener.P(4e8, 5e8), gardener.P(6e8, 4e8), gardener.P(5e8, 7e8)), 1e-3, nil},
	}
	for _, tt := range tests {
		c, err := Walk(tt.foci, tt.slack)
		assert.Nil(t, c, tt.name)
		assert.True(t, errors.Is(err, ErrInvalidInput), "%s: expected ErrInvalidInput, got %v", tt.name, err)
		if tt.cause != nil {
			assert.True(t, errors.Is(err, tt.cause), "%s: expected %v, got %v", tt.name, tt.cause, err)
		}
	}
}

func TestNoInitialWindow(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	foci := triangle()
	require.Equal(t, gardener.Clockwise, foci.Orientation())
	c := &Curve{
		foci:   foci,
		slack:  250,
		edges:  foci.Edges(),
		handed: gardener.CounterClockwise, // arcs on the wrong side of every chord
	}
	_, err := c.bootstrap()
	assert.True(t, errors.Is(err, ErrInvalidInput), "expected ErrInvalidInput, got %v", err)
}

func TestFragmentLimit(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := mustWalk(t, triangle(), 250)
	st, err := c.bootstrap()
	require.NoError(t, err)
	fragments, err := c.walk(st, 3)
	assert.Nil(t, fragments)
	assert.True(t, errors.Is(err, ErrInvalidInput), "expected ErrInvalidInput, got %v", err)
	fragments, err = c.walk(st, 6)
	assert.NoError(t, err)
	assert.Len(t, fragments, 6)
}

func TestPencil(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := mustWalk(t, triangle(), 250)
	for _, f := range c.Fragments() {
		assert.Equal(t, f.A, Pencil(f, 0))
		assert.Equal(t, f.B, Pencil(f, 1))
		assert.Equal(t, f.A, Pencil(f, -0.5))
		assert.Equal(t, f.B, Pencil(f, 7))
		// the angle at F1 moves monotonically from A to B
		cosA := f.Ellipse.CosineAtF1(f.A)
		cosB := f.Ellipse.CosineAtF1(f.B)
		cosM := f.Ellipse.CosineAtF1(Pencil(f, 0.5))
		assert.True(t, (cosA-cosM)*(cosM-cosB) > 0, "%s: mid point not between A and B", f)
	}
}

func TestNested(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	foci := quadrilateral()
	slacks := []float64{50, 250, 600}
	curves, err := Nested(foci, slacks...)
	require.NoError(t, err)
	require.Len(t, curves, len(slacks))
	for i, c := range curves {
		assert.Equal(t, slacks[i], c.Slack())
		assert.Equal(t, 8, c.N())
		if i > 0 {
			assert.True(t, c.Encloses(curves[i-1].Outline(8)), "curve %d does not enclose curve %d", i, i-1)
		}
	}
	_, err = Nested(foci, 50, -1, 0)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func ExampleWalk() {
	foci := polygon.NullPolygon().
		TaggedKnot(gardener.P(400, 500), "red").
		TaggedKnot(gardener.P(600, 400), "orange").
		TaggedKnot(gardener.P(500, 700), "green").Cycle()
	curve, err := Walk(foci, 250)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, f := range curve.Fragments() {
		fmt.Printf("%s–%s, pinch at %s\n", foci.Focus(f.L).ID, foci.Focus(f.R).ID, foci.Focus(f.Pinch).ID)
	}
	// Output:
	// red–orange, pinch at orange
	// red–green, pinch at orange
	// orange–green, pinch at green
	// orange–red, pinch at green
	// green–red, pinch at red
	// green–orange, pinch at red
}
