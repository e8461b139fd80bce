package svgpath

import (
	"math"

	"github.com/gucio321/embossy/pkg/geom"
)

// Point is a position in SVG user units.
type Point = geom.Point[geom.SourcePos]

const (
	// DefaultCurveSegments is the tessellation budget for Bézier commands.
	DefaultCurveSegments = 10
	// DefaultArcSegments is the tessellation budget for elliptical arcs.
	DefaultArcSegments = 20
)

func factorial(n int) int {
	if n == 0 {
		return 1
	}

	return n * factorial(n-1)
}

// bezier evaluates a Bernstein-basis curve of arbitrary degree at t.
// refer: http://zobaczycmatematyke.krk.pl/025-Zolkos-Krakow/bezier.html
func bezier(t float64, points []Point) Point {
	var result Point

	n := len(points) - 1
	for i := 0; i <= n; i++ {
		d := float64(factorial(n)) /
			float64(factorial(i)*factorial(n-i)) *
			math.Pow(t, float64(i)) *
			math.Pow(1-t, float64(n-i))
		result.X += points[i].X * geom.SourcePos(d)
		result.Y += points[i].Y * geom.SourcePos(d)
	}

	return result
}

func flattenBezier(control []Point, segments int) []Point {
	points := make([]Point, 0, segments+1)
	for i := 0; i <= segments; i++ {
		points = append(points, bezier(float64(i)/float64(segments), control))
	}

	return points
}

// FlattenCubic samples a cubic Bézier into segments+1 points. The first
// point is exactly p0 and the last exactly p3.
func FlattenCubic(p0, p1, p2, p3 Point, segments int) []Point {
	return flattenBezier([]Point{p0, p1, p2, p3}, segments)
}

// FlattenQuad samples a quadratic Bézier into segments+1 points. The first
// point is exactly p0 and the last exactly p2.
func FlattenQuad(p0, p1, p2 Point, segments int) []Point {
	return flattenBezier([]Point{p0, p1, p2}, segments)
}

// FlattenArc samples an SVG elliptical arc into segments+1 points using the
// endpoint-to-center parameterization (SVG spec F.6.5). A zero radius or
// coincident endpoints collapse the arc to the straight line [start, end];
// radii too small for the chord are scaled up to fit.
func FlattenArc(start Point, rx, ry, xRotDeg float64, largeArc, sweep bool, end Point, segments int) []Point {
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 || start == end {
		return []Point{start, end}
	}

	phi := xRotDeg * math.Pi / 180
	sinPhi, cosPhi := math.Sincos(phi)

	// rotate the chord into the ellipse frame
	dx := (float64(start.X) - float64(end.X)) / 2
	dy := (float64(start.Y) - float64(end.Y)) / 2
	x1p := cosPhi*dx + sinPhi*dy
	y1p := -sinPhi*dx + cosPhi*dy

	// ratio correction: grow the radii when the chord does not fit
	lambda := x1p*x1p/(rx*rx) + y1p*y1p/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	// of the two candidate centers, the flags pick one via the sign of co
	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	if num < 0 {
		num = 0
	}

	co := math.Sqrt(num / (rx*rx*y1p*y1p + ry*ry*x1p*x1p))
	if largeArc == sweep {
		co = -co
	}

	cxp := co * rx * y1p / ry
	cyp := -co * ry * x1p / rx
	cx := cosPhi*cxp - sinPhi*cyp + (float64(start.X)+float64(end.X))/2
	cy := sinPhi*cxp + cosPhi*cyp + (float64(start.Y)+float64(end.Y))/2

	theta := angleBetween(1, 0, (x1p-cxp)/rx, (y1p-cyp)/ry)
	delta := angleBetween((x1p-cxp)/rx, (y1p-cyp)/ry, (-x1p-cxp)/rx, (-y1p-cyp)/ry)

	// pick the rotation direction requested by the sweep flag
	switch {
	case !sweep && delta > 0:
		delta -= 2 * math.Pi
	case sweep && delta < 0:
		delta += 2 * math.Pi
	}

	points := make([]Point, 0, segments+1)
	for i := 0; i <= segments; i++ {
		a := theta + delta*float64(i)/float64(segments)
		sinA, cosA := math.Sincos(a)
		points = append(points, geom.Pt(
			geom.SourcePos(cx+rx*cosA*cosPhi-ry*sinA*sinPhi),
			geom.SourcePos(cy+rx*cosA*sinPhi+ry*sinA*cosPhi),
		))
	}

	return points
}

// angleBetween returns the signed angle from vector u to vector v.
func angleBetween(ux, uy, vx, vy float64) float64 {
	return math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
}
