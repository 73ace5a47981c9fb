/*
Package render maps the fragments of a traced curve to drawing primitives.

Rendering is a separate stage folding over the immutable fragment list of a
rope.Curve. Every fragment becomes an elliptical arc in endpoint
parametrization, as used by SVG and PDF arc operators: start and end point,
radii, rotation of the major axis, and the large-arc and sweep flags.
Options add the unused remainders of the fragments' ellipses ("leftovers")
and tick marks at the transitions between fragments.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package render

import (
	"math"

	"github.com/npillmayer/gardener"
	"github.com/npillmayer/gardener/rope"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'gardener'
func tracer() tracing.Trace {
	return tracing.Select("gardener")
}

// ArcKind tells traced arcs from leftovers.
type ArcKind int

const (
	// Traced arcs make up the curve.
	Traced ArcKind = iota
	// Leftover arcs complete a traced arc to its full ellipse.
	Leftover
)

func (k ArcKind) String() string {
	if k == Leftover {
		return "leftover"
	}
	return "traced"
}

// Arc is an elliptical arc in endpoint parametrization.
type Arc struct {
	Kind        ArcKind
	Fragment    int // position of the fragment within the curve
	From, To    gardener.Pair
	Rx, Ry      float64 // semi-major and semi-minor axis
	RotationDeg float64 // rotation of the major axis
	LargeArc    bool    // arc spans more than half of the ellipse
	Sweep       bool    // arc runs in the direction of positive angles (clockwise on screen)
}

// Tick marks the transition at the end of a fragment. It is placed on the
// connection from the transition point to the fragment's pinch focus.
type Tick struct {
	Fragment int
	At       gardener.Pair
	Focus    int    // pinch focus
	ID       string // display id of the pinch focus
}

// Options controls which primitives Render produces.
type Options struct {
	Leftovers bool    // include the unused remainder of every ellipse
	Ticks     bool    // include tick marks at transitions
	TickInset float64 // distance of a tick from the transition point towards the pinch focus
	Precision int     // number of decimals in path data
}

// DefaultOptions returns options for traced arcs with tick marks.
func DefaultOptions() Options {
	return Options{
		Ticks:     true,
		TickInset: 15,
		Precision: 3,
	}
}

// Drawing collects the primitives for a curve.
type Drawing struct {
	Arcs      []Arc
	Ticks     []Tick
	Precision int
}

// Render folds the fragments of curve c into drawing primitives.
// Traced arcs come first, in walk order, followed by leftover arcs if
// requested.
func Render(c *rope.Curve, opts Options) Drawing {
	d := Drawing{Precision: opts.Precision}
	fragments := c.Fragments()
	for i, f := range fragments {
		arc := ArcOf(f, c.Orientation())
		arc.Fragment = i
		d.Arcs = append(d.Arcs, arc)
		if opts.Ticks && f.HasPinch() {
			d.Ticks = append(d.Ticks, tickOf(c, i, f, opts.TickInset))
		}
	}
	if opts.Leftovers {
		for i := range fragments {
			d.Arcs = append(d.Arcs, d.Arcs[i].Complement())
		}
	}
	tracer().Debugf("rendered %d arcs and %d ticks", len(d.Arcs), len(d.Ticks))
	return d
}

// ArcOf returns the arc for fragment f of a curve with orientation o.
func ArcOf(f rope.Fragment, o gardener.Orientation) Arc {
	e := f.Ellipse
	span := e.Param(f.B) - e.Param(f.A)
	if o != gardener.Clockwise {
		span = -span
	}
	span = normalize(span)
	return Arc{
		Kind:        Traced,
		From:        f.A,
		To:          f.B,
		Rx:          e.SemiMajor(),
		Ry:          e.SemiMinor(),
		RotationDeg: e.TiltDeg(),
		LargeArc:    span > math.Pi,
		Sweep:       o == gardener.Clockwise,
	}
}

// Complement returns the leftover arc completing a to a full ellipse.
func (a Arc) Complement() Arc {
	c := a
	c.Kind = Leftover
	c.From, c.To = a.To, a.From
	c.LargeArc = !a.LargeArc
	return c
}

// normalize maps an angle to [0,2π).
func normalize(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

func tickOf(c *rope.Curve, i int, f rope.Fragment, inset float64) Tick {
	focus := c.Foci().Focus(f.Pinch)
	toFocus := focus.Z - f.B
	inset = math.Min(inset, toFocus.Abs()/2)
	return Tick{
		Fragment: i,
		At:       f.B + toFocus.Unit().Scaled(inset),
		Focus:    f.Pinch,
		ID:       focus.ID,
	}
}
