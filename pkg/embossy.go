// Package embossy imports SVG outline data and flattens it into role-tagged
// closed polygons ready for extrusion into a 3D decoration.
package embossy

import (
	"github.com/kpango/glg"

	"github.com/gucio321/embossy/pkg/geom"
	"github.com/gucio321/embossy/pkg/profile"
	"github.com/gucio321/embossy/pkg/svgpath"
)

const (
	// DefaultTargetSize is the length, in model units, the larger viewBox
	// dimension maps to.
	DefaultTargetSize = 20.0
	// DefaultDepth is the extrusion depth handed to the consumer.
	DefaultDepth = 2.0
)

// Embossy holds one imported SVG document plus the presentation parameters
// of the resulting profile set.
type Embossy struct {
	doc        document
	scale      float64
	targetSize float64
	depth      float64
	style      profile.Style
}

func newEmbossy() *Embossy {
	return &Embossy{
		scale:      1.0,
		targetSize: DefaultTargetSize,
		depth:      DefaultDepth,
	}
}

// Scale applies an extra user scale factor on top of the target-size fit.
func (e *Embossy) Scale(scale float64) *Embossy {
	e.scale = scale
	return e
}

// TargetSize sets the length the larger source dimension should map to.
func (e *Embossy) TargetSize(size float64) *Embossy {
	e.targetSize = size
	return e
}

// Depth sets the extrusion depth passed through to the consumer.
func (e *Embossy) Depth(depth float64) *Embossy {
	e.depth = depth
	return e
}

// Style sets the placement hint passed through to the consumer.
func (e *Embossy) Style(style profile.Style) *Embossy {
	e.style = style
	return e
}

// ViewBox returns the document's source coordinate rectangle.
func (e *Embossy) ViewBox() geom.ViewBox {
	return e.doc.viewBox()
}

// Profiles runs the import pipeline: interpret every path and primitive
// shape into subpaths, normalize them into model coordinates and resolve
// nesting into fill/hole roles. A path whose data cannot be interpreted is
// skipped with a warning; the rest of the document continues. A document
// yielding no extrudable polygon returns ErrNoContent.
func (e *Embossy) Profiles() (*profile.Set, error) {
	var subpaths [][]geom.Point[geom.SourcePos]

	// 1.0: collect outlines from paths and primitive shapes
	e.doc.walk(func(g *group) {
		for _, p := range g.Paths {
			if p.D == "" {
				continue
			}

			parsed, err := svgpath.InterpretPath(p.D)
			if err != nil {
				glg.Warnf("embossy: skipping path: %v", err)
				continue
			}

			subpaths = append(subpaths, parsed...)
		}

		subpaths = append(subpaths, g.shapeOutlines()...)
	})

	if len(subpaths) == 0 {
		return nil, ErrNoContent
	}

	// 2.0: normalize into model coordinates
	polygons := profile.Normalize(subpaths, e.doc.viewBox(), e.targetSize, e.scale)
	if len(polygons) == 0 {
		return nil, ErrNoContent
	}

	// 3.0: resolve nesting into fill/hole roles
	return &profile.Set{
		Profiles: profile.ResolveNesting(polygons),
		Depth:    e.depth,
		Style:    e.style,
	}, nil
}

// shapeOutlines converts the primitive shapes of one group into point
// sequences. Shapes with degenerate dimensions are dropped silently.
func (g *group) shapeOutlines() [][]geom.Point[geom.SourcePos] {
	var result [][]geom.Point[geom.SourcePos]

	for _, r := range g.Rects {
		w, h := dim(r.Width, 0), dim(r.Height, 0)
		if w <= 0 || h <= 0 {
			continue
		}

		result = append(result, svgpath.RectPoints(dim(r.X, 0), dim(r.Y, 0), w, h))
	}

	for _, c := range g.Circles {
		r := dim(c.R, 0)
		if r <= 0 {
			continue
		}

		result = append(result, svgpath.CirclePoints(dim(c.CX, 0), dim(c.CY, 0), r))
	}

	for _, el := range g.Ellipses {
		rx, ry := dim(el.RX, 0), dim(el.RY, 0)
		if rx <= 0 || ry <= 0 {
			continue
		}

		result = append(result, svgpath.EllipsePoints(dim(el.CX, 0), dim(el.CY, 0), rx, ry))
	}

	for _, p := range g.Polygons {
		if points := svgpath.PolygonPoints(p.Points); len(points) > 0 {
			result = append(result, points)
		}
	}

	for _, p := range g.Polylines {
		if points := svgpath.PolylinePoints(p.Points); len(points) > 0 {
			result = append(result, points)
		}
	}

	return result
}
