// Package viewer statically renders a profile set in an ebiten window, for
// eyeballing an import before extrusion.
package viewer

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/colornames"

	"github.com/gucio321/embossy/pkg/geom"
	"github.com/gucio321/embossy/pkg/profile"
)

var _ ebiten.Game = &Viewer{}

const (
	baseScale = 7.0
	margin    = 5.0
)

var borderColor = colornames.White

// Viewer renders an image from a profile.Set once and displays it with
// mouse-wheel zoom.
type Viewer struct {
	scale    float64
	profiles *profile.Set
	current  *ebiten.Image
}

func NewViewer(s *profile.Set) *Viewer {
	result := &Viewer{
		scale:    1,
		profiles: s,
	}

	result.current = result.render()
	return result
}

// bounds returns the overall model-space bounding box of the set.
func (v *Viewer) bounds() geom.Rect[geom.ModelPos] {
	var all []geom.Point[geom.ModelPos]
	for _, p := range v.profiles.Profiles {
		all = append(all, p.Points...)
	}

	if len(all) == 0 {
		return geom.Rect[geom.ModelPos]{}
	}

	return geom.BoundingBox(all)
}

func (v *Viewer) render() *ebiten.Image {
	scale := v.scale * baseScale
	box := v.bounds()

	w := (float64(box.Max.X-box.Min.X) + 2*margin) * scale
	h := (float64(box.Max.Y-box.Min.Y) + 2*margin) * scale
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dest := ebiten.NewImage(int(w), int(h))
	dest.Fill(colornames.Black)

	// model Y grows upward, screen Y grows downward
	toScreen := func(p geom.Point[geom.ModelPos]) (float64, float64) {
		x := (float64(p.X-box.Min.X) + margin) * scale
		y := (float64(box.Max.Y-p.Y) + margin) * scale
		return x, y
	}

	ebitenutil.DrawLine(dest, 0, 0, w-1, 0, borderColor)
	ebitenutil.DrawLine(dest, w-1, 0, w-1, h-1, borderColor)
	ebitenutil.DrawLine(dest, w-1, h-1, 0, h-1, borderColor)
	ebitenutil.DrawLine(dest, 0, h-1, 0, 0, borderColor)

	for _, p := range v.profiles.Profiles {
		c := LevelColor(p.Level, p.Role)
		for i := range p.Points {
			// closure is implied, so the last edge wraps around
			x0, y0 := toScreen(p.Points[i])
			x1, y1 := toScreen(p.Points[(i+1)%len(p.Points)])
			ebitenutil.DrawLine(dest, x0, y0, x1, y1, c)
		}
	}

	return dest
}

func (v *Viewer) Update() error {
	_, wheelY := ebiten.Wheel()
	v.scale += wheelY * 0.1
	if v.scale < 1 {
		v.scale = 1
	}

	return nil
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	const w, h = 800, 600
	mouseX, mouseY := ebiten.CursorPosition()
	// negative check lol
	if mouseX < 0 {
		mouseX = 0
	}

	if mouseY < 0 {
		mouseY = 0
	}

	renderable := v.current.SubImage(image.Rect(
		int((v.scale-1)*float64(mouseX)), int((v.scale-1)*float64(mouseY)),
		int(w+(v.scale-1)*float64(mouseX)), int(h+(v.scale-1)*float64(mouseY))))

	if renderable.Bounds().Dx() == 0 || renderable.Bounds().Dy() == 0 {
		renderable = v.current
	}

	geomTransform := ebiten.GeoM{}
	geomTransform.Scale(v.scale, v.scale)
	screen.DrawImage(ebiten.NewImageFromImage(renderable),
		&ebiten.DrawImageOptions{
			GeoM: geomTransform,
		})
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return outsideWidth, outsideHeight
}
