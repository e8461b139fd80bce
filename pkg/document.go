package embossy

import (
	"strconv"
	"strings"

	"github.com/gucio321/embossy/pkg/geom"
)

// group mirrors the subset of the SVG element tree this importer reads.
// Nested <g> containers are walked; transform attributes, paint and styling
// are ignored - only geometry matters here.
type group struct {
	Groups    []group       `xml:"g"`
	Paths     []pathElem    `xml:"path"`
	Rects     []rectElem    `xml:"rect"`
	Circles   []circleElem  `xml:"circle"`
	Ellipses  []ellipseElem `xml:"ellipse"`
	Polygons  []pointsElem  `xml:"polygon"`
	Polylines []pointsElem  `xml:"polyline"`
}

// walk visits g and every nested group, depth-first.
func (g *group) walk(fn func(*group)) {
	fn(g)
	for i := range g.Groups {
		g.Groups[i].walk(fn)
	}
}

// document is the root <svg> element.
type document struct {
	group

	Width   string `xml:"width,attr"`
	Height  string `xml:"height,attr"`
	ViewBox string `xml:"viewBox,attr"`
}

type pathElem struct {
	D string `xml:"d,attr"`
}

// Shape attributes are kept as strings and parsed leniently: one bad
// attribute degrades one shape, never the whole document.
type rectElem struct {
	X      string `xml:"x,attr"`
	Y      string `xml:"y,attr"`
	Width  string `xml:"width,attr"`
	Height string `xml:"height,attr"`
}

type circleElem struct {
	CX string `xml:"cx,attr"`
	CY string `xml:"cy,attr"`
	R  string `xml:"r,attr"`
}

type ellipseElem struct {
	CX string `xml:"cx,attr"`
	CY string `xml:"cy,attr"`
	RX string `xml:"rx,attr"`
	RY string `xml:"ry,attr"`
}

type pointsElem struct {
	Points string `xml:"points,attr"`
}

// viewBox returns the declared coordinate rectangle, derived from the
// width/height attributes when the viewBox attribute is absent or malformed.
func (d *document) viewBox() geom.ViewBox {
	fields := strings.Fields(strings.ReplaceAll(d.ViewBox, ",", " "))
	if len(fields) >= 4 {
		values := make([]float64, 4)
		ok := true
		for i := range values {
			v, err := strconv.ParseFloat(fields[i], 64)
			if err != nil {
				ok = false
				break
			}

			values[i] = v
		}

		if ok {
			return geom.ViewBox{MinX: values[0], MinY: values[1], Width: values[2], Height: values[3]}
		}
	}

	return geom.ViewBox{Width: dim(d.Width, 100), Height: dim(d.Height, 100)}
}

// dim parses a dimension attribute, stripping unit suffixes like "mm", "px"
// or "%".
func dim(value string, fallback float64) float64 {
	value = strings.TrimSpace(value)
	value = strings.TrimRightFunc(value, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.'
	})

	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}

	return v
}
