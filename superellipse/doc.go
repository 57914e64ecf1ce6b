// Package superellipse turns a width, a height and one or more shape
// exponents into a closed outline and its measurements.
/*

A superellipse (Lamé curve) is the set of points with

	|x/a|^n + |y/b|^n = 1

where a and b are the semi-axes. n=2 gives an ellipse, large n approach a
rectangle, n<2 gives a diamond and n<1 a star. We use the trigonometric
parametrization

	x(t) = a · sgn(cos t) · |cos t|^(2/n)
	y(t) = b · sgn(sin t) · |sin t|^(2/n)

for t running through one full turn. The sign-power form is needed because
fractional powers of negative numbers are not defined over the reals.

Usage

Outlines come in three flavours:

	SymmetricPath(w, h, n, nil)          // one exponent for both axes
	AsymmetricPath(w, h, nx, ny, nil)    // one exponent per axis
	CornerPath(w, h, corners, nil)       // one exponent per corner, blended

Each returns a path descriptor "M x y L x y ... Z" with coordinates relative
to the top-left corner of the bounding box. A nil *SampleOptions selects 360
steps and two decimal digits. All functions are pure and may be called
concurrently.

Perimeter and area are estimated numerically from a sampled outline
(polyline length and shoelace formula), not by closed-form evaluation:

	area, err := EstimateArea(100, 100, 2)   // ≈ 7854

Invalid geometry (non-positive or non-finite dimensions or exponents,
non-positive step counts) is rejected with an *InvalidGeometryError.


BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package superellipse
