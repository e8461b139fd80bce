package svgpath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectPoints(t *testing.T) {
	points := RectPoints(10, 20, 30, 40)
	require.Len(t, points, 5)

	assert.Equal(t, []Point{
		{X: 10, Y: 20},
		{X: 40, Y: 20},
		{X: 40, Y: 60},
		{X: 10, Y: 60},
		{X: 10, Y: 20},
	}, points)
}

func TestCirclePoints(t *testing.T) {
	points := CirclePoints(50, 50, 40)
	require.Len(t, points, 37)

	assert.Equal(t, points[0], points[36], "circle must close on its first point")
	for _, p := range points {
		assert.InDelta(t, 40, math.Hypot(float64(p.X)-50, float64(p.Y)-50), 1e-9)
	}
}

func TestEllipsePoints(t *testing.T) {
	points := EllipsePoints(0, 0, 40, 25)
	require.Len(t, points, 37)

	assert.Equal(t, Point{X: 40, Y: 0}, points[0])
	for _, p := range points {
		v := float64(p.X)*float64(p.X)/(40*40) + float64(p.Y)*float64(p.Y)/(25*25)
		assert.InDelta(t, 1, v, 1e-9)
	}
}

func TestPolygonPoints(t *testing.T) {
	points := PolygonPoints("50,10 90,40 75,90 25,90 10,40")
	require.Len(t, points, 6)

	assert.Equal(t, Point{X: 50, Y: 10}, points[0])
	assert.Equal(t, points[0], points[5], "polygon is auto-closed")
}

func TestPolylinePointsStaysOpen(t *testing.T) {
	points := PolylinePoints("0,0 10,0 10,10")
	require.Len(t, points, 3)

	assert.Equal(t, Point{X: 0, Y: 0}, points[0])
	assert.Equal(t, Point{X: 10, Y: 10}, points[2])
}

func TestPolyPointsEmptyAttr(t *testing.T) {
	assert.Empty(t, PolygonPoints(""))
	assert.Empty(t, PolylinePoints(""))
}

func TestPolylinePointsOddCoordinateCount(t *testing.T) {
	// the dangling 7 cannot form a pair and is dropped
	points := PolylinePoints("1,2 3,4 7")
	require.Len(t, points, 2)
}
