package polygon

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/squircle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pg := NullPolygon().Knot(squircle.P(0, 0)).Knot(squircle.P(1, 3)).Knot(squircle.P(3, 0)).Cycle()
	L().Infof("pg = %s", AsString(pg))
	if pg.N() != 3 {
		t.Fail()
	}
	assert.Equal(t, "(0,0) -- (1,3) -- (3,0) -- cycle", AsString(pg))
	assert.Equal(t, pg.Z(0), pg.Z(3))
	assert.Equal(t, pg.Z(2), pg.Z(-1))
}

func TestBox(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	box := Box(squircle.P(0, 5), squircle.P(4, 1))
	L().Infof("box = %s", AsString(box))
	if box.N() != 4 {
		t.Fail()
	}
	assert.InDelta(t, 16.0, box.Area(), 1e-12)
	assert.InDelta(t, 16.0, box.Perimeter(), 1e-12)
	lo, hi := box.BoundingBox()
	assert.Equal(t, squircle.P(0, 1), lo)
	assert.Equal(t, squircle.P(4, 5), hi)
}

func TestShoelaceOrientation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ccw := NullPolygon().Knot(squircle.P(0, 0)).Knot(squircle.P(2, 0)).Knot(squircle.P(0, 2)).Cycle()
	cw := NullPolygon().Knot(squircle.P(0, 0)).Knot(squircle.P(0, 2)).Knot(squircle.P(2, 0)).Cycle()
	assert.InDelta(t, 2.0, ccw.SignedArea(), 1e-12)
	assert.InDelta(t, -2.0, cw.SignedArea(), 1e-12)
	assert.Equal(t, ccw.Area(), cw.Area())
}

func TestOpenPolygon(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pg := NullPolygon().Knot(squircle.P(0, 0)).Knot(squircle.P(3, 4)).Knot(squircle.P(3, 0)).End()
	assert.Equal(t, 0.0, pg.Area())
	assert.InDelta(t, 9.0, pg.Perimeter(), 1e-12)
	assert.False(t, pg.Contains(squircle.P(2, 1)))
	err := pg.Validate()
	assert.True(t, errors.Is(err, ErrTooFewPoints))
}

func TestFromPointsDropsDuplicateTerminal(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := []squircle.Pair{
		squircle.P(0, 0), squircle.P(1, 0), squircle.P(1, 1), squircle.P(0, 1), squircle.P(0, 0),
	}
	pg := FromPoints(pts)
	assert.Equal(t, 4, pg.N())
	assert.Equal(t, pts[:4], pg.Points())
	assert.True(t, pg.IsCycle())
	assert.InDelta(t, 4.0, pg.Perimeter(), 1e-12)
	assert.InDelta(t, 1.0, pg.Area(), 1e-12)
}

func TestContains(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	box := Box(squircle.P(0, 0), squircle.P(10, 10))
	assert.True(t, box.Contains(squircle.P(5, 5)))
	assert.False(t, box.Contains(squircle.P(15, 5)))
}

func TestIntersect(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := Box(squircle.P(0, 0), squircle.P(2, 2))
	b := Box(squircle.P(1, 1), squircle.P(3, 3))
	pgs, err := a.Intersect(b)
	require.NoError(t, err)
	require.Len(t, pgs, 1)
	L().Infof("a ∩ b = %s", AsString(pgs[0]))
	assert.InDelta(t, 1.0, pgs[0].Area(), 1e-9)
	//
	far := Box(squircle.P(10, 10), squircle.P(11, 11))
	pgs, err = a.Intersect(far)
	require.NoError(t, err)
	var area float64
	for _, pg := range pgs {
		area += pg.Area()
	}
	assert.Equal(t, 0.0, area)
}

func TestIntersectRejectsOpen(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := Box(squircle.P(0, 0), squircle.P(2, 2))
	open := NullPolygon().Knot(squircle.P(0, 0)).Knot(squircle.P(1, 1)).End()
	_, err := a.Intersect(open)
	assert.ErrorIs(t, err, ErrTooFewPoints)
}

func TestRegularPolygonApproachesCircle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pg := NullPolygon()
	const n = 720
	for i := 0; i < n; i++ {
		a := float64(i) * 2 * math.Pi / n
		pg.Knot(squircle.P(math.Cos(a), math.Sin(a)))
	}
	pg.Cycle()
	assert.InDelta(t, math.Pi, pg.Area(), 1e-3)
	assert.InDelta(t, 2*math.Pi, pg.Perimeter(), 1e-3)
}
