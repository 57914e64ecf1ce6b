package superellipse

import (
	"github.com/npillmayer/squircle"
	"github.com/npillmayer/squircle/polygon"
)

// EstimatePerimeter returns the length of a superellipse outline, sampled at
// DefaultMetricSteps points and measured as a polyline. The estimate
// converges to the true perimeter from below as the sample count grows; it
// is not exact.
func EstimatePerimeter(width, height, n float64) (float64, error) {
	m, err := Measure(NewUniform(width, height, n), DefaultMetricSteps)
	if err != nil {
		return 0, err
	}
	return m.Perimeter, nil
}

// EstimateArea returns the area enclosed by a superellipse outline, sampled
// at DefaultMetricSteps points and computed with the shoelace formula.
func EstimateArea(width, height, n float64) (float64, error) {
	m, err := Measure(NewUniform(width, height, n), DefaultMetricSteps)
	if err != nil {
		return 0, err
	}
	return m.Area, nil
}

// Measure estimates perimeter, area and bounding box of a shape in any mode.
// steps = 0 selects DefaultMetricSteps; other counts below 3 are rejected.
func Measure(spec ShapeSpec, steps int) (Metrics, error) {
	pg, err := sampledPolygon(spec, steps)
	if err != nil {
		return Metrics{}, err
	}
	m := Metrics{
		Perimeter: pg.Perimeter(),
		Area:      pg.Area(),
		Width:     spec.Width,
		Height:    spec.Height,
	}
	m.Min, m.Max = pg.BoundingBox()
	tracer().Debugf("%s metrics %gx%g at %d knots: perimeter=%g, area=%g",
		spec.Mode, spec.Width, spec.Height, pg.N(), m.Perimeter, m.Area)
	return m, nil
}

// OverlapArea estimates the area shared by two shapes, where shape b is
// placed with its top-left corner at offset in the frame of shape a.
func OverlapArea(a, b ShapeSpec, offset squircle.Pair, steps int) (float64, error) {
	pa, err := sampledPolygon(a, steps)
	if err != nil {
		return 0, err
	}
	pts, err := outlineForMetrics(b, steps)
	if err != nil {
		return 0, err
	}
	shift := squircle.Translation(offset)
	for i, p := range pts {
		pts[i] = shift.Transform(p)
	}
	parts, err := pa.Intersect(polygon.FromPoints(pts))
	if err != nil {
		return 0, err
	}
	var area float64
	for _, part := range parts {
		area += part.Area()
	}
	return area, nil
}

func sampledPolygon(spec ShapeSpec, steps int) (*polygon.Polygon, error) {
	pts, err := outlineForMetrics(spec, steps)
	if err != nil {
		return nil, err
	}
	return polygon.FromPoints(pts), nil
}

func outlineForMetrics(spec ShapeSpec, steps int) ([]squircle.Pair, error) {
	if steps == 0 {
		steps = DefaultMetricSteps
	}
	if steps < 3 { // a polygon needs three corners to enclose an area
		return nil, invalid("steps", float64(steps))
	}
	return Outline(spec, steps)
}
