package svgpath

import (
	"math"

	"github.com/gucio321/embossy/pkg/geom"
)

// ellipseSegments is the fixed sample count for circles and ellipses.
const ellipseSegments = 36

// RectPoints returns the rectangle outline in definition order, closed with
// a duplicate of the first corner.
func RectPoints(x, y, w, h float64) []Point {
	return []Point{
		geom.Pt(geom.SourcePos(x), geom.SourcePos(y)),
		geom.Pt(geom.SourcePos(x+w), geom.SourcePos(y)),
		geom.Pt(geom.SourcePos(x+w), geom.SourcePos(y+h)),
		geom.Pt(geom.SourcePos(x), geom.SourcePos(y+h)),
		geom.Pt(geom.SourcePos(x), geom.SourcePos(y)),
	}
}

// CirclePoints approximates a circle with evenly-angled samples plus a
// closing duplicate.
func CirclePoints(cx, cy, r float64) []Point {
	return EllipsePoints(cx, cy, r, r)
}

// EllipsePoints approximates an ellipse with evenly-angled samples plus a
// closing duplicate.
func EllipsePoints(cx, cy, rx, ry float64) []Point {
	points := make([]Point, 0, ellipseSegments+1)
	for i := 0; i < ellipseSegments; i++ {
		a := 2 * math.Pi * float64(i) / ellipseSegments
		points = append(points, geom.Pt(
			geom.SourcePos(cx+rx*math.Cos(a)),
			geom.SourcePos(cy+ry*math.Sin(a)),
		))
	}

	return append(points, points[0])
}

// PolygonPoints parses a points attribute and closes the outline with a
// duplicate of the first point.
func PolygonPoints(attr string) []Point {
	points := PolylinePoints(attr)
	if len(points) > 0 {
		points = append(points, points[0])
	}

	return points
}

// PolylinePoints parses a points attribute into coordinate pairs; the
// outline stays open.
func PolylinePoints(attr string) []Point {
	tokens := Tokenize(attr)

	var points []Point
	for i := 0; i+1 < len(tokens); i += 2 {
		if tokens[i].Kind != TokenNumber || tokens[i+1].Kind != TokenNumber {
			break
		}

		points = append(points, geom.Pt(
			geom.SourcePos(tokens[i].Value),
			geom.SourcePos(tokens[i+1].Value),
		))
	}

	return points
}
