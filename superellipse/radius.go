package superellipse

import (
	"math"
)

// axisNoise bounds the rounding error of math.Cos and math.Sin at the
// quarter-turn angles of a full turn.
const axisNoise = 1e-15

// Radius evaluates the superellipse term r · sgn(v) · |v|^(2/n), where v is
// cos t for the x-axis or sin t for the y-axis.
//
// Values below axisNoise are treated as zero. Float noise at the axes
// (sin 2π ≈ -2.4e-16) would otherwise be amplified by small powers 2/n into
// visible offsets.
func Radius(v, r, n float64) float64 {
	if math.Abs(v) < axisNoise {
		return 0
	}
	return r * math.Copysign(math.Pow(math.Abs(v), 2/n), v)
}

// RadiusX is the x-term at angle t for semi-axis a.
func RadiusX(t, a, n float64) float64 {
	return Radius(math.Cos(t), a, n)
}

// RadiusY is the y-term at angle t for semi-axis b.
func RadiusY(t, b, n float64) float64 {
	return Radius(math.Sin(t), b, n)
}
