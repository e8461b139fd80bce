package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gucio321/embossy/pkg/geom"
)

type srcPoint = geom.Point[geom.SourcePos]

func srcRect(x0, y0, x1, y1 geom.SourcePos) []srcPoint {
	return []srcPoint{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}, {X: x0, Y: y0}}
}

func TestNormalizePreservesAspectRatio(t *testing.T) {
	vb := geom.ViewBox{Width: 200, Height: 100}

	polygons := Normalize([][]srcPoint{srcRect(0, 0, 200, 100)}, vb, 20, 1)
	require.Len(t, polygons, 1)

	box := geom.BoundingBox(polygons[0])
	// the larger dimension maps to 20, the smaller follows the same scale
	assert.InDelta(t, 20, float64(box.Max.X-box.Min.X), 1e-9)
	assert.InDelta(t, 10, float64(box.Max.Y-box.Min.Y), 1e-9)

	// centered on the origin
	assert.InDelta(t, -10, float64(box.Min.X), 1e-9)
	assert.InDelta(t, -5, float64(box.Min.Y), 1e-9)
}

func TestNormalizeFlipsYAxis(t *testing.T) {
	vb := geom.ViewBox{Width: 100, Height: 100}

	// a point near the source top (small y) must land near the model top
	// (large y)
	polygons := Normalize([][]srcPoint{{{X: 50, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100}}}, vb, 100, 1)
	require.Len(t, polygons, 1)

	assert.InDelta(t, 50, float64(polygons[0][0].Y), 1e-9)
	assert.InDelta(t, -50, float64(polygons[0][1].Y), 1e-9)
}

func TestNormalizeRemovesClosingDuplicate(t *testing.T) {
	vb := geom.ViewBox{Width: 100, Height: 100}

	polygons := Normalize([][]srcPoint{srcRect(10, 10, 90, 90)}, vb, 100, 1)
	require.Len(t, polygons, 1)

	// exactly one point (the closing duplicate) is gone
	assert.Len(t, polygons[0], 4)
}

func TestNormalizeDedupsSamplingSeams(t *testing.T) {
	vb := geom.ViewBox{Width: 100, Height: 100}

	subpath := []srcPoint{
		{X: 0, Y: 0},
		{X: 0.0001, Y: 0}, // sampling seam, collapses onto the previous point
		{X: 50, Y: 0},
		{X: 50, Y: 50},
		{X: 0, Y: 50},
	}

	polygons := Normalize([][]srcPoint{subpath}, vb, 100, 1)
	require.Len(t, polygons, 1)
	assert.Len(t, polygons[0], 4)
}

func TestNormalizeDropsDegenerateSubpaths(t *testing.T) {
	vb := geom.ViewBox{Width: 100, Height: 100}

	polygons := Normalize([][]srcPoint{
		{{X: 0, Y: 0}, {X: 50, Y: 50}},                 // 2 points: no polygon
		{{X: 0, Y: 0}, {X: 50, Y: 50}, {X: 0, Y: 0}},   // 3 points but closed: a line
		{{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 50, Y: 50}},  // valid open triangle
	}, vb, 100, 1)

	require.Len(t, polygons, 1)
	assert.Len(t, polygons[0], 3)
}

func TestNormalizeUserScale(t *testing.T) {
	vb := geom.ViewBox{Width: 100, Height: 100}

	polygons := Normalize([][]srcPoint{srcRect(0, 0, 100, 100)}, vb, 20, 2)
	require.Len(t, polygons, 1)

	box := geom.BoundingBox(polygons[0])
	assert.InDelta(t, 40, float64(box.Max.X-box.Min.X), 1e-9)
}

func TestNormalizeOffsetViewBox(t *testing.T) {
	vb := geom.ViewBox{MinX: 100, MinY: 100, Width: 100, Height: 100}

	polygons := Normalize([][]srcPoint{srcRect(100, 100, 200, 200)}, vb, 20, 1)
	require.Len(t, polygons, 1)

	// the viewBox midpoint maps to the origin regardless of its min corner
	box := geom.BoundingBox(polygons[0])
	assert.InDelta(t, -10, float64(box.Min.X), 1e-9)
	assert.InDelta(t, 10, float64(box.Max.X), 1e-9)
}
