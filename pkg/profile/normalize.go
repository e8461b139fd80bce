package profile

import (
	"math"

	"github.com/kpango/glg"

	"github.com/gucio321/embossy/pkg/geom"
)

// Epsilon is the minimum edge length, in model units, kept after cleanup.
// Shorter edges are seams from curve sampling, not geometry.
const Epsilon = 0.001

// Normalize maps raw subpaths into the model coordinate system and cleans
// them up:
//   - uniform scale so the larger viewBox dimension maps to targetSize
//     (aspect ratio is preserved; the scale is never computed per axis),
//     optionally multiplied by userScale,
//   - translation so the viewBox midpoint becomes the origin,
//   - Y-axis flip (source coordinates grow downward, model grows upward),
//   - removal of consecutive points closer than Epsilon,
//   - removal of a duplicated closing point (closure is implied, not stored).
//
// Subpaths left with fewer than 3 distinct points cannot form a polygon and
// are discarded; that is a normal filtering outcome, not an error.
func Normalize(subpaths [][]geom.Point[geom.SourcePos], vb geom.ViewBox, targetSize, userScale float64) []Polygon {
	scale := targetSize / math.Max(vb.Width, vb.Height)
	if userScale != 0 {
		scale *= userScale
	}

	center := vb.Center()

	var result []Polygon
	for _, subpath := range subpaths {
		polygon := make(Polygon, 0, len(subpath))
		for _, p := range subpath {
			q := geom.Pt(
				geom.ModelPos(float64(p.X-center.X)*scale),
				geom.ModelPos(-float64(p.Y-center.Y)*scale),
			)

			if n := len(polygon); n > 0 && polygon[n-1].Dist(q) < Epsilon {
				continue
			}

			polygon = append(polygon, q)
		}

		if n := len(polygon); n > 3 && polygon[0].Dist(polygon[n-1]) < Epsilon {
			polygon = polygon[:n-1]
		}

		if len(polygon) < 3 || polygon[0].Dist(polygon[len(polygon)-1]) < Epsilon {
			glg.Debugf("profile: dropping degenerate subpath with %d point(s)", len(polygon))
			continue
		}

		result = append(result, polygon)
	}

	return result
}
