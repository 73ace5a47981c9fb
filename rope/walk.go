package rope

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/gardener"
	"github.com/npillmayer/gardener/ellipse"
	"github.com/npillmayer/gardener/polygon"
)

// ErrInvalidInput is returned for foci or slack a curve cannot be traced
// for. Errors from validating the foci polygon are wrapped.
var ErrInvalidInput = errors.New("invalid input")

// outlineSamples is the number of samples per fragment for enclosure tests.
const outlineSamples = 16

// Curve is the closed curve traced around a polygon of foci. It is immutable
// once Walk has returned it.
type Curve struct {
	foci      *polygon.Polygon
	slack     float64
	edges     []float64            // edge i runs from focus i to i+1
	handed    gardener.Orientation // orientation of the foci polygon
	fragments []Fragment
}

// walkState is the state of a single traversal.
type walkState struct {
	l, r int           // trailing and leading focus
	d    float64       // string length of ellipse(l,r)
	a    gardener.Pair // start point of the next fragment
}

// Walk traces the curve of a loop of string around foci, the string being
// longer than the tight loop by slack. Foci have to form a valid polygon,
// see polygon.Validate, and slack has to be positive.
//
// All errors wrap ErrInvalidInput.
func Walk(foci *polygon.Polygon, slack float64) (*Curve, error) {
	if err := foci.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if !(slack > 0) || math.IsInf(slack, 0) {
		return nil, fmt.Errorf("%w: slack must be positive, is %g", ErrInvalidInput, slack)
	}
	c := &Curve{
		foci:   foci,
		slack:  slack,
		edges:  foci.Edges(),
		handed: foci.Orientation(),
	}
	st, err := c.bootstrap()
	if err != nil {
		return nil, err
	}
	if c.fragments, err = c.walk(st, 2*foci.N()); err != nil {
		return nil, err
	}
	tracer().Infof("curve around %d foci with slack %g has %d fragments",
		foci.N(), slack, len(c.fragments))
	return c, nil
}

func (c *Curve) z(i int) gardener.Pair {
	return c.foci.Z(i)
}

// Arcs lie outside the polygon, i.e. on the opposite side of every chord
// l→r than the foci not skipped by the string. A string too short for its
// window, e.g. a slack lost to rounding, is reported as invalid input.
func (c *Curve) ellipse(st walkState) (ellipse.Ellipse, error) {
	e, err := ellipse.New(c.z(st.l), c.z(st.r), st.d, c.handed.Opposite())
	if err != nil {
		return e, fmt.Errorf("%w: window (%d,%d): %w", ErrInvalidInput, st.l, st.r, err)
	}
	return e, nil
}

// bootstrap finds the first window (0,r): the string leaves focus 0 in the
// direction of edge n-1→0 and has to wrap around r in the orientation of the
// polygon. Window (0,n-1) is never a candidate, its start point lies on the
// chord.
func (c *Curve) bootstrap() (walkState, error) {
	n := c.foci.N()
	st := walkState{d: c.slack}
	for st.r = 1; st.r < n-1; st.r++ {
		st.d += c.edges[st.r-1]
		e, err := c.ellipse(st)
		if err != nil {
			return st, err
		}
		cos := -gardener.ThreePointCosine(c.z(st.r), c.z(st.l), c.z(st.l-1))
		st.a = e.PointOnTheEllipse(cos, ellipse.AtF1)
		if gardener.Orient(st.a, c.z(st.r), c.z(st.r+1)) == c.handed {
			tracer().Debugf("walk starts at %s on ellipse(%d,%d)", st.a, st.l, st.r)
			return st, nil
		}
	}
	return st, fmt.Errorf("%w: no initial window for %d foci", ErrInvalidInput, n)
}

// walk moves the pencil once around the foci, emitting a fragment per event.
// It stops as soon as l returns to focus 0, and fails if that takes more
// than limit fragments.
func (c *Curve) walk(st walkState, limit int) ([]Fragment, error) {
	n := c.foci.N()
	r0 := st.r
	fragments := make([]Fragment, 0, limit)
	for {
		if len(fragments) == limit {
			return nil, fmt.Errorf("%w: walk does not close after %d fragments", ErrInvalidInput, limit)
		}
		e, err := c.ellipse(st)
		if err != nil {
			return nil, err
		}
		ln, rn := (st.l+1)%n, (st.r+1)%n
		// candidate B: string lifts off r, measured at F1
		b := e.PointOnTheEllipse(gardener.ThreePointCosine(c.z(st.l), c.z(st.r), c.z(rn)), ellipse.AtF2)
		cosB := e.CosineAtF1(b)
		// candidate A2: string touches l+1
		cosA2 := gardener.ThreePointCosine(c.z(ln), c.z(st.l), c.z(st.r))
		f := Fragment{Ellipse: e, L: st.l, R: st.r, A: st.a}
		pressed := cosA2 < cosB
		if pressed {
			f.B = e.PointOnTheEllipse(cosA2, ellipse.AtF1)
			f.Pinch = ln
			st.d -= c.edges[st.l]
			st.l = ln
		} else {
			f.B = b
			f.Pinch = st.r
			st.d += c.edges[st.r]
			st.r = rn
		}
		tracer().Debugf("%s", f)
		fragments = append(fragments, f)
		st.a = f.B
		if pressed && st.l == 0 {
			break
		}
	}
	if st.r != r0 {
		return nil, fmt.Errorf("%w: walk ends at window (0,%d), started at (0,%d)", ErrInvalidInput, st.r, r0)
	}
	return fragments, nil
}

// Foci returns the polygon the curve is traced around.
func (c *Curve) Foci() *polygon.Polygon {
	return c.foci
}

// Slack is the string length exceeding a tight loop around the foci.
func (c *Curve) Slack() float64 {
	return c.slack
}

// RopeLength is the total length of the loop of string.
func (c *Curve) RopeLength() float64 {
	l := c.slack
	for _, e := range c.edges {
		l += e
	}
	return l
}

// Orientation is the direction the pencil travels in.
func (c *Curve) Orientation() gardener.Orientation {
	return c.handed
}

// N returns the number of fragments.
func (c *Curve) N() int {
	return len(c.fragments)
}

// Fragment returns fragment (i mod N).
func (c *Curve) Fragment(i int) Fragment {
	n := c.N()
	return c.fragments[((i%n)+n)%n]
}

// Fragments returns a copy of the fragments in walk order.
func (c *Curve) Fragments() []Fragment {
	fragments := make([]Fragment, len(c.fragments))
	copy(fragments, c.fragments)
	return fragments
}

// Outline returns a closed polygon through points of the curve, sampling
// every fragment at samples evenly spaced angles. As the curve is convex,
// the outline lies inside of it.
func (c *Curve) Outline(samples int) *polygon.Polygon {
	if samples < 1 {
		samples = 1
	}
	outline := polygon.NullPolygon()
	for _, f := range c.fragments {
		for k := 0; k < samples; k++ {
			outline.Knot(Pencil(f, float64(k)/float64(samples)))
		}
	}
	return outline.Cycle()
}

// Encloses is a predicate: does the curve enclose polygon pg?
func (c *Curve) Encloses(pg *polygon.Polygon) bool {
	return c.Outline(outlineSamples).Encloses(pg)
}
