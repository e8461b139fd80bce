// Package geom holds the small 2D vector math shared by the path
// interpreter and the profile pipeline.
package geom

import "math"

type (
	// SourcePos is a coordinate in SVG user units. Y grows downward.
	SourcePos float64
	// ModelPos is a coordinate in target model units (mm). Y grows upward.
	ModelPos float64
)

// Point is image.Point but better: float-based and tagged with its
// coordinate space so source and model coordinates cannot be mixed up.
type Point[T ~float64] struct {
	X, Y T
}

func Pt[T ~float64](x, y T) Point[T] {
	return Point[T]{x, y}
}

func (p Point[T]) Add(other Point[T]) Point[T] {
	return Point[T]{p.X + other.X, p.Y + other.Y}
}

func (p Point[T]) Sub(other Point[T]) Point[T] {
	return Point[T]{p.X - other.X, p.Y - other.Y}
}

func (p Point[T]) Mul(scalar T) Point[T] {
	return Point[T]{p.X * scalar, p.Y * scalar}
}

// Dist returns the Euclidean distance between p and other.
func (p Point[T]) Dist(other Point[T]) float64 {
	return math.Hypot(float64(p.X-other.X), float64(p.Y-other.Y))
}

// Redefine reinterprets a point in another coordinate space.
func Redefine[T2, T1 ~float64](p Point[T1]) Point[T2] {
	return Point[T2]{T2(p.X), T2(p.Y)}
}

// Rect is an axis-aligned bounding box.
type Rect[T ~float64] struct {
	Min, Max Point[T]
}

// BoundingBox returns the bounding box of a non-empty point list.
func BoundingBox[T ~float64](points []Point[T]) Rect[T] {
	result := Rect[T]{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		if p.X < result.Min.X {
			result.Min.X = p.X
		}
		if p.Y < result.Min.Y {
			result.Min.Y = p.Y
		}
		if p.X > result.Max.X {
			result.Max.X = p.X
		}
		if p.Y > result.Max.Y {
			result.Max.Y = p.Y
		}
	}
	return result
}

func (r Rect[T]) Area() T {
	return (r.Max.X - r.Min.X) * (r.Max.Y - r.Min.Y)
}

// Contains reports whether other lies fully inside r on both axes.
func (r Rect[T]) Contains(other Rect[T]) bool {
	return r.Min.X <= other.Min.X && r.Min.Y <= other.Min.Y &&
		r.Max.X >= other.Max.X && r.Max.Y >= other.Max.Y
}

// ViewBox is the declared coordinate rectangle of an SVG document.
type ViewBox struct {
	MinX, MinY, Width, Height float64
}

// Center returns the midpoint of the viewBox rectangle.
func (v ViewBox) Center() Point[SourcePos] {
	return Pt(SourcePos(v.MinX+v.Width/2), SourcePos(v.MinY+v.Height/2))
}
