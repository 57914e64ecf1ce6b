package superellipse

import (
	"strconv"
	"strings"

	"github.com/npillmayer/squircle"
)

// SymmetricPath returns the path descriptor of a superellipse with exponent n
// for both axes. A nil opts selects DefaultPathOptions.
func SymmetricPath(width, height, n float64, opts *SampleOptions) (string, error) {
	return Path(NewUniform(width, height, n), opts)
}

// AsymmetricPath returns the path descriptor of a superellipse with exponent
// nx for the horizontal and ny for the vertical term.
func AsymmetricPath(width, height, nx, ny float64, opts *SampleOptions) (string, error) {
	return Path(NewAxes(width, height, nx, ny), opts)
}

// CornerPath returns the path descriptor of a superellipse with one exponent
// per corner. At each sample the blended exponent is applied to both axes.
func CornerPath(width, height float64, c CornerExponents, opts *SampleOptions) (string, error) {
	return Path(NewCorners(width, height, c), opts)
}

// Path returns the path descriptor for a shape in any mode:
//
//	M x0 y0 L x1 y1 … L xN yN Z
//
// with N = opts.Steps. Coordinates are relative to the top-left corner of the
// bounding box and rounded to opts.Precision decimal digits. Identical
// inputs always yield identical strings.
func Path(spec ShapeSpec, opts *SampleOptions) (string, error) {
	pts, err := Points(spec, opts)
	if err != nil {
		return "", err
	}
	if opts == nil {
		opts = DefaultPathOptions()
	}
	d := Descriptor(pts, opts.Precision)
	tracer().Debugf("%s path %gx%g: %d points, %d bytes",
		spec.Mode, spec.Width, spec.Height, len(pts), len(d))
	return d, nil
}

// Points returns the steps+1 outline points of a path descriptor, rounded to
// the requested precision.
func Points(spec ShapeSpec, opts *SampleOptions) ([]squircle.Pair, error) {
	if opts == nil {
		opts = DefaultPathOptions()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	pts, err := Outline(spec, opts.Steps)
	if err != nil {
		return nil, err
	}
	for i, p := range pts {
		pts[i] = p.RoundTo(opts.Precision)
	}
	return pts, nil
}

// Outline samples a shape at steps+1 angles and returns the unrounded points,
// translated into the positive quadrant. The first and the last point
// coincide.
//
// Terms are evaluated on the unit curve and then mapped by one affine
// transform: scaling by the semi-axes, followed by a shift of the center to
// (a, b).
func Outline(spec ShapeSpec, steps int) ([]squircle.Pair, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if steps <= 0 {
		return nil, invalid("steps", float64(steps))
	}
	exponents, err := exponentsFor(spec)
	if err != nil {
		return nil, err
	}
	a, b := spec.Width/2, spec.Height/2
	place := squircle.Scaling(a, b).Combine(squircle.Translation(squircle.P(a, b)))
	ts := Angles(steps)
	pts := make([]squircle.Pair, len(ts))
	for i, t := range ts {
		nx, ny := exponents(t)
		pts[i] = place.Transform(squircle.P(RadiusX(t, 1, nx), RadiusY(t, 1, ny)))
	}
	return pts, nil
}

// exponentsFor resolves the x- and y-exponent at angle t for a spec.
func exponentsFor(spec ShapeSpec) (func(float64) (float64, float64), error) {
	switch spec.Mode {
	case AxisAsymmetric:
		return func(float64) (float64, float64) {
			return spec.ExponentX, spec.ExponentY
		}, nil
	case PerCorner:
		blender, err := CornerBlender(spec.Corners)
		if err != nil {
			return nil, err
		}
		return func(t float64) (float64, float64) {
			n := blender.Exponent(t)
			return n, n
		}, nil
	}
	return func(float64) (float64, float64) {
		return spec.Exponent, spec.Exponent
	}, nil
}

// Descriptor serializes points as a closed path: a move to the first point,
// a line to each subsequent point, and a close command. Coordinates are
// rounded to prec decimal digits and written in their shortest form.
func Descriptor(points []squircle.Pair, prec int) string {
	if len(points) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(len(points) * 16)
	buf := make([]byte, 0, 24)
	for i, p := range points {
		if i == 0 {
			sb.WriteString("M ")
		} else {
			sb.WriteString(" L ")
		}
		buf = appendCoord(buf[:0], p.X(), prec)
		buf = append(buf, ' ')
		buf = appendCoord(buf, p.Y(), prec)
		sb.Write(buf)
	}
	sb.WriteString(" Z")
	return sb.String()
}

func appendCoord(buf []byte, v float64, prec int) []byte {
	return strconv.AppendFloat(buf, squircle.RoundTo(v, prec), 'f', -1, 64)
}
