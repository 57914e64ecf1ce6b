/*
Package polygon deals with closed and open polygons built from sampled
outlines. Polygons are stored as polyclip contours, which gives us bounding
boxes, point containment and boolean clipping for free. Measurements
(shoelace area, perimeter) are computed here.

Polygons are constructed with a builder, analogous to paths:

	pg := NullPolygon().Knot(P(0,0)).Knot(P(1,3)).Knot(P(3,0)).Cycle()

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

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/squircle"
)

// L traces to the polygon tracer.
func L() tracing.Trace {
	return tracing.Select("squircle.polygon")
}

// ErrTooFewPoints indicates a polygon cannot enclose an area.
var ErrTooFewPoints = errors.New("polygon has too few points")

// Polygon is a sequence of knots, connected by straight lines. A cyclic
// polygon connects its last knot back to its first one.
type Polygon struct {
	contour polyclip.Contour
	cycle   bool
}

// NullPolygon creates an empty polygon, to be extended by subsequent builder
// calls.
func NullPolygon() *Polygon {
	return &Polygon{}
}

// FromPoints creates a cyclic polygon from a closed point sequence. If the
// last point repeats the first one, it is dropped: the closing edge is
// implicit for cyclic polygons.
func FromPoints(points []squircle.Pair) *Polygon {
	n := len(points)
	if n > 1 && points[0].Equal(points[n-1]) {
		n--
	}
	pg := &Polygon{contour: make(polyclip.Contour, 0, n)}
	for _, p := range points[:n] {
		pg.Knot(p)
	}
	return pg.Cycle()
}

// Box creates a rectangular polygon with two opposite corners p1 and p2.
func Box(p1, p2 squircle.Pair) *Polygon {
	x0, x1 := math.Min(p1.X(), p2.X()), math.Max(p1.X(), p2.X())
	y0, y1 := math.Min(p1.Y(), p2.Y()), math.Max(p1.Y(), p2.Y())
	return NullPolygon().
		Knot(squircle.P(x0, y0)).Knot(squircle.P(x1, y0)).
		Knot(squircle.P(x1, y1)).Knot(squircle.P(x0, y1)).Cycle()
}

// Knot appends a point. Part of builder functionality.
func (pg *Polygon) Knot(p squircle.Pair) *Polygon {
	pg.contour.Add(polyclip.Point{X: p.X(), Y: p.Y()})
	return pg
}

// Cycle closes a polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	pg.cycle = true
	return pg
}

// End ends an open polygon. Part of builder functionality.
func (pg *Polygon) End() *Polygon {
	return pg
}

// IsCycle is a predicate: is this polygon closed?
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// N returns the number of knots.
func (pg *Polygon) N() int {
	return len(pg.contour)
}

// Z returns the knot at position (i mod N).
func (pg *Polygon) Z(i int) squircle.Pair {
	n := pg.N()
	i = ((i % n) + n) % n
	pt := pg.contour[i]
	return squircle.P(pt.X, pt.Y)
}

// Points returns a copy of the knots.
func (pg *Polygon) Points() []squircle.Pair {
	pts := make([]squircle.Pair, pg.N())
	for i, pt := range pg.contour {
		pts[i] = squircle.P(pt.X, pt.Y)
	}
	return pts
}

// Validate checks that a polygon is closed and has enough knots to enclose
// an area.
func (pg *Polygon) Validate() error {
	if pg == nil {
		return fmt.Errorf("%w: polygon is nil", ErrTooFewPoints)
	}
	if !pg.cycle {
		return fmt.Errorf("%w: polygon is not closed", ErrTooFewPoints)
	}
	if pg.N() < 3 {
		return fmt.Errorf("%w: need at least 3, have %d", ErrTooFewPoints, pg.N())
	}
	return nil
}

// SignedArea returns the area enclosed by a cyclic polygon, computed with
// the shoelace formula. The sign reflects orientation: positive for
// counter-clockwise knots in a y-up frame (clockwise on screen).
// Open polygons have no area.
func (pg *Polygon) SignedArea() float64 {
	if !pg.cycle || pg.N() < 3 {
		return 0
	}
	var sum float64
	n := pg.N()
	for i := 0; i < n; i++ {
		sum += pg.Z(i).Cross(pg.Z(i + 1))
	}
	return sum / 2
}

// Area returns the absolute enclosed area.
func (pg *Polygon) Area() float64 {
	return math.Abs(pg.SignedArea())
}

// Perimeter returns the summed length of all edges. For cyclic polygons the
// closing edge is included.
func (pg *Polygon) Perimeter() float64 {
	n := pg.N()
	if n < 2 {
		return 0
	}
	edges := n - 1
	if pg.cycle {
		edges = n
	}
	var length float64
	for i := 0; i < edges; i++ {
		length += pg.Z(i).Dist(pg.Z(i + 1))
	}
	return length
}

// BoundingBox returns the top-left and bottom-right corners of the smallest
// axis-aligned rectangle containing all knots.
func (pg *Polygon) BoundingBox() (squircle.Pair, squircle.Pair) {
	if pg.N() == 0 {
		return squircle.Origin, squircle.Origin
	}
	r := pg.contour.BoundingBox()
	return squircle.P(r.Min.X, r.Min.Y), squircle.P(r.Max.X, r.Max.Y)
}

// Contains is a predicate: does p lie inside this cyclic polygon?
func (pg *Polygon) Contains(p squircle.Pair) bool {
	if !pg.cycle || pg.N() < 3 {
		return false
	}
	return pg.contour.Contains(polyclip.Point{X: p.X(), Y: p.Y()})
}

// Intersect clips pg against other and returns the resulting polygons.
// Both polygons must be cyclic; the result is empty if they do not overlap.
func (pg *Polygon) Intersect(other *Polygon) ([]*Polygon, error) {
	if err := pg.Validate(); err != nil {
		return nil, err
	}
	if err := other.Validate(); err != nil {
		return nil, err
	}
	subject := polyclip.Polygon{append(polyclip.Contour(nil), pg.contour...)}
	clipping := polyclip.Polygon{append(polyclip.Contour(nil), other.contour...)}
	result := subject.Construct(polyclip.INTERSECTION, clipping)
	L().Debugf("intersection of %d and %d knots yields %d contours",
		pg.N(), other.N(), len(result))
	pgs := make([]*Polygon, 0, len(result))
	for _, c := range result {
		if len(c) < 3 {
			continue
		}
		pgs = append(pgs, &Polygon{contour: c, cycle: true})
	}
	return pgs, nil
}

// AsString returns a polygon as a (debugging) string, e.g.
//
//	(0,0) -- (1,3) -- (3,0) -- cycle
func AsString(pg *Polygon) string {
	var sb strings.Builder
	for i := 0; i < pg.N(); i++ {
		if i > 0 {
			sb.WriteString(" -- ")
		}
		sb.WriteString(ptstring(pg.Z(i)))
	}
	if pg.cycle {
		sb.WriteString(" -- cycle")
	}
	return sb.String()
}

func ptstring(p squircle.Pair) string {
	return fmt.Sprintf("(%.4g,%.4g)", squircle.RoundTo(p.X(), 4), squircle.RoundTo(p.Y(), 4))
}
