package superellipse

import (
	"math"
	"sort"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
)

// Anchor pins an exponent to an angle of the turn.
type Anchor struct {
	Angle    float64 // radians, any real value
	Exponent float64 // > 0
}

// A segment spans from one anchor to the next one, counter-clockwise.
type segment struct {
	start, width float64 // in radians, start within [0,2π)
	from, to     float64 // exponents at start and at start+width
}

// Blender interpolates an exponent linearly between consecutive anchors
// around the full turn. The last anchor blends back into the first one, so
// the effective exponent is continuous everywhere.
//
// Segments are kept in a tree map keyed by their start angle; looking up an
// angle is a floor search. Blenders are created with NewBlender or
// CornerBlender; the zero value has no anchors and yields NaN for every angle.
type Blender struct {
	segments *treemap.Map
	last     segment // wraps around 2π
}

// NewBlender creates a blender from one or more anchors. Anchor angles are
// normalized to [0,2π); two anchors at the same normalized angle are
// rejected, as are non-positive exponents.
func NewBlender(anchors ...Anchor) (*Blender, error) {
	if len(anchors) == 0 {
		return nil, invalid("anchor count", 0)
	}
	as := make([]Anchor, len(anchors))
	for i, a := range anchors {
		if err := checkPositive("anchor exponent", a.Exponent); err != nil {
			return nil, err
		}
		if math.IsNaN(a.Angle) || math.IsInf(a.Angle, 0) {
			return nil, invalid("anchor angle", a.Angle)
		}
		as[i] = Anchor{Angle: NormalizeAngle(a.Angle), Exponent: a.Exponent}
	}
	sort.Slice(as, func(i, j int) bool { return as[i].Angle < as[j].Angle })
	b := &Blender{segments: treemap.NewWith(utils.Float64Comparator)}
	for i, a := range as {
		next := as[(i+1)%len(as)]
		end := next.Angle
		if i == len(as)-1 {
			end += twoPi
		} else if end == a.Angle {
			return nil, invalid("anchor angle", a.Angle)
		}
		seg := segment{start: a.Angle, width: end - a.Angle, from: a.Exponent, to: next.Exponent}
		b.segments.Put(seg.start, seg)
		b.last = seg
	}
	tracer().Debugf("blender with %d anchors", len(as))
	return b, nil
}

// CornerBlender creates the four-anchor blender for corner exponents:
//
//	[0, π/2)    top-right    → bottom-right
//	[π/2, π)    bottom-right → bottom-left
//	[π, 3π/2)   bottom-left  → top-left
//	[3π/2, 2π)  top-left     → top-right
//
// Angles run in screen coordinates, where y grows downwards.
func CornerBlender(c CornerExponents) (*Blender, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return NewBlender(
		Anchor{Angle: 0, Exponent: c.TopRight},
		Anchor{Angle: math.Pi / 2, Exponent: c.BottomRight},
		Anchor{Angle: math.Pi, Exponent: c.BottomLeft},
		Anchor{Angle: 3 * math.Pi / 2, Exponent: c.TopLeft},
	)
}

// Exponent returns the effective exponent at angle t.
func (b *Blender) Exponent(t float64) float64 {
	if b == nil || b.segments == nil || math.IsNaN(t) || math.IsInf(t, 0) {
		return math.NaN()
	}
	t = NormalizeAngle(t)
	var seg segment
	if _, v := b.segments.Floor(t); v != nil {
		seg = v.(segment)
	} else { // t lies before the first anchor: wrap into the last segment
		seg = b.last
		t += twoPi
	}
	if seg.width == 0 || seg.from == seg.to {
		return seg.from
	}
	f := (t - seg.start) / seg.width
	return seg.from + (seg.to-seg.from)*f
}

// EffectiveExponent returns the blended corner exponent at angle t.
func EffectiveExponent(t float64, c CornerExponents) (float64, error) {
	b, err := CornerBlender(c)
	if err != nil {
		return 0, err
	}
	return b.Exponent(t), nil
}

// NormalizeAngle reduces an angle to [0,2π).
func NormalizeAngle(t float64) float64 {
	t = math.Mod(t, twoPi)
	if t < 0 {
		t += twoPi
	}
	if t >= twoPi {
		t = 0
	}
	return t
}
