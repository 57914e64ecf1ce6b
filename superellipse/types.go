package superellipse

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/squircle"
)

// tracer writes to trace with key 'squircle.superellipse'
func tracer() tracing.Trace {
	return tracing.Select("squircle.superellipse")
}

const (
	// DefaultPathSteps is the sample count for path descriptors.
	DefaultPathSteps = 360
	// DefaultPrecision is the number of decimal digits per coordinate.
	DefaultPrecision = 2
	// DefaultMetricSteps is the sample count for perimeter and area estimation.
	DefaultMetricSteps = 1000
)

// ErrInvalidGeometry is matched by every *InvalidGeometryError.
var ErrInvalidGeometry = errors.New("invalid geometry")

// InvalidGeometryError reports a dimension, exponent or sampling parameter
// the engine refuses to compute with.
type InvalidGeometryError struct {
	Param string  // name of the offending parameter
	Value float64 // value as passed by the caller
}

func (e *InvalidGeometryError) Error() string {
	return fmt.Sprintf("invalid geometry: %s = %g", e.Param, e.Value)
}

// Is lets errors.Is(err, ErrInvalidGeometry) succeed.
func (e *InvalidGeometryError) Is(target error) bool {
	return target == ErrInvalidGeometry
}

func invalid(param string, value float64) error {
	tracer().Debugf("rejecting %s = %g", param, value)
	return &InvalidGeometryError{Param: param, Value: value}
}

// checkPositive rejects zero, negative, NaN and infinite values.
func checkPositive(param string, v float64) error {
	if !(v > 0) || math.IsInf(v, 0) {
		return invalid(param, v)
	}
	return nil
}

// Mode selects how exponents are applied to the outline.
type Mode int

const (
	// Uniform applies one exponent to both axes.
	Uniform Mode = iota
	// AxisAsymmetric applies one exponent to the x-term and another to the y-term.
	AxisAsymmetric
	// PerCorner blends four corner exponents around the turn.
	PerCorner
)

func (m Mode) String() string {
	switch m {
	case Uniform:
		return "uniform"
	case AxisAsymmetric:
		return "axis-asymmetric"
	case PerCorner:
		return "per-corner"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// CornerExponents holds one exponent per corner of the bounding box.
type CornerExponents struct {
	TopLeft     float64
	TopRight    float64
	BottomRight float64
	BottomLeft  float64
}

// UniformCorners returns corner exponents all set to n.
func UniformCorners(n float64) CornerExponents {
	return CornerExponents{TopLeft: n, TopRight: n, BottomRight: n, BottomLeft: n}
}

// Validate checks that all four exponents are positive and finite.
func (c CornerExponents) Validate() error {
	if err := checkPositive("top-left exponent", c.TopLeft); err != nil {
		return err
	}
	if err := checkPositive("top-right exponent", c.TopRight); err != nil {
		return err
	}
	if err := checkPositive("bottom-right exponent", c.BottomRight); err != nil {
		return err
	}
	return checkPositive("bottom-left exponent", c.BottomLeft)
}

// ShapeSpec describes a superellipse. Which exponent fields are read
// depends on Mode. Clients usually create a ShapeSpec with NewUniform,
// NewAxes or NewCorners.
type ShapeSpec struct {
	Width     float64
	Height    float64
	Mode      Mode
	Exponent  float64         // Uniform
	ExponentX float64         // AxisAsymmetric
	ExponentY float64         // AxisAsymmetric
	Corners   CornerExponents // PerCorner
}

// NewUniform creates a shape with exponent n for both axes.
func NewUniform(width, height, n float64) ShapeSpec {
	return ShapeSpec{Width: width, Height: height, Mode: Uniform, Exponent: n}
}

// NewAxes creates a shape with exponent nx for the x-term and ny for the y-term.
func NewAxes(width, height, nx, ny float64) ShapeSpec {
	return ShapeSpec{Width: width, Height: height, Mode: AxisAsymmetric, ExponentX: nx, ExponentY: ny}
}

// NewCorners creates a shape with one exponent per corner.
func NewCorners(width, height float64, c CornerExponents) ShapeSpec {
	return ShapeSpec{Width: width, Height: height, Mode: PerCorner, Corners: c}
}

// Validate checks dimensions and the exponents relevant for the mode.
func (spec ShapeSpec) Validate() error {
	if err := checkPositive("width", spec.Width); err != nil {
		return err
	}
	if err := checkPositive("height", spec.Height); err != nil {
		return err
	}
	switch spec.Mode {
	case Uniform:
		return checkPositive("exponent", spec.Exponent)
	case AxisAsymmetric:
		if err := checkPositive("x-exponent", spec.ExponentX); err != nil {
			return err
		}
		return checkPositive("y-exponent", spec.ExponentY)
	case PerCorner:
		return spec.Corners.Validate()
	}
	return invalid("mode", float64(spec.Mode))
}

// SampleOptions control the fidelity and formatting of path descriptors.
type SampleOptions struct {
	Steps     int // number of samples per full turn, > 0
	Precision int // decimal digits per coordinate, >= 0
}

// DefaultPathOptions returns 360 steps at two decimal digits.
func DefaultPathOptions() *SampleOptions {
	return &SampleOptions{Steps: DefaultPathSteps, Precision: DefaultPrecision}
}

// Validate checks step count and precision.
func (opts *SampleOptions) Validate() error {
	if opts.Steps <= 0 {
		return invalid("steps", float64(opts.Steps))
	}
	if opts.Precision < 0 {
		return invalid("precision", float64(opts.Precision))
	}
	return nil
}

// Metrics are numeric estimates for a sampled outline.
type Metrics struct {
	Perimeter float64
	Area      float64
	Min, Max  squircle.Pair // bounding box of the sampled outline
	Width     float64       // width of the measured shape
	Height    float64       // height of the measured shape
}

// FillRatio is the share of the bounding rectangle covered by the shape.
func (m Metrics) FillRatio() float64 {
	if m.Width <= 0 || m.Height <= 0 {
		return 0
	}
	return m.Area / (m.Width * m.Height)
}
