/*
Package squircle implements points, affine transformations and numeric
helpers for the superellipse geometry engine.

The engine itself lives in package superellipse; closed polygons and their
measurements live in package polygon.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package squircle

import (
	"fmt"
	"math"
)

// === Numeric Data Type =====================================================

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// RoundTo rounds n to prec decimal digits, half away from zero.
// Negative zero is normalized to 0, so that formatting never shows "-0".
// A negative prec leaves n unchanged.
func RoundTo(n float64, prec int) float64 {
	if prec < 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return n
	}
	scale := math.Pow10(prec)
	if math.IsInf(scale, 0) {
		return n
	}
	r := math.Round(n*scale) / scale
	if r == 0 {
		return 0
	}
	return r
}

// === Pair Data Type ========================================================

// Pair is a 2D-point in the local frame of a shape.
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(0, 0)

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p)
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p)
}

// RoundTo rounds both coordinates to prec decimal digits.
func (p Pair) RoundTo(prec int) Pair {
	return P(RoundTo(p.X(), prec), RoundTo(p.Y(), prec))
}

// IsOrigin is a predicate: is this pair origin?
func (p Pair) IsOrigin() bool {
	return p.Equal(Origin)
}

// Equal compares two pairs.
func (p Pair) Equal(p2 Pair) bool {
	return Is0(p.X()-p2.X()) && Is0(p.Y()-p2.Y())
}

// Dist returns the Euclidean distance between p and p2.
func (p Pair) Dist(p2 Pair) float64 {
	return math.Hypot(p2.X()-p.X(), p2.Y()-p.Y())
}

// Cross returns the z-component of the cross product p × p2,
// i.e. x·y2 − x2·y.
func (p Pair) Cross(p2 Pair) float64 {
	return p.X()*p2.Y() - p2.X()*p.Y()
}

// Shifted returns a new pair translated by v.
func (p Pair) Shifted(v Pair) Pair {
	return Translation(v).Transform(p)
}

// === Affine Transformations ================================================

// AT is an affine transform, a matrix type used for transforming vectors.
type AT []float64 // a 3x3 matrix, flattened by rows

// Internal constructor. Clients implicitely use this as a starting point for
// transform combinations.
func newAT() AT {
	return make([]float64, 9)
}

func (m AT) set(row, col int, value float64) {
	m[row*3+col] = value
}

func (m AT) row(row int) []float64 {
	return m[row*3 : (row+1)*3]
}

func (m AT) col(col int) []float64 {
	return []float64{m[col], m[3+col], m[6+col]}
}

// Identity transform. Will transform a point onto itself.
func Identity() AT {
	m := newAT()
	m.set(0, 0, 1.0)
	m.set(1, 1, 1.0)
	m.set(2, 2, 1.0)
	return m
}

// Translation transform. Translate a point by (dx,dy).
// The engine uses it to move a curve from its natural, origin-centered
// form to the top-left origin of its bounding box.
func Translation(p Pair) AT {
	m := Identity()
	m.set(0, 2, p.X())
	m.set(1, 2, p.Y())
	return m
}

// Scaling transform. Scale a point by sx horizontally and sy vertically.
func Scaling(sx, sy float64) AT {
	m := Identity()
	m.set(0, 0, sx)
	m.set(1, 1, sy)
	return m
}

// Debug Stringer for an affine transform.
func (m AT) String() string {
	return fmt.Sprintf("[%g,%g,%g|%g,%g,%g|%g,%g,%g]",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
}

// v1 × v2, v.n = [a,b,c]
func dotProd(vec1, vec2 []float64) float64 {
	return vec1[0]*vec2[0] + vec1[1]*vec2[1] + vec1[2]*vec2[2]
}

// Combine 2 affine transformation to a new one: m is applied first, then n.
// Returns a new transformation without changing the argument(s).
func (m AT) Combine(n AT) AT {
	o := newAT()
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			o.set(row, col, dotProd(n.row(row), m.col(col)))
		}
	}
	return o
}

// Transform a 2D-point. The argument is unchanged and a new pair is returned.
func (m AT) Transform(p Pair) Pair {
	v := []float64{p.X(), p.Y(), 1.0}
	return P(dotProd(m.row(0), v), dotProd(m.row(1), v))
}
