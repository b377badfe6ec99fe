package pluribus

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// minDrawRadius keeps zoomed-out particles from vanishing below a pixel.
const minDrawRadius = 0.6

// Renderer draws drawables as filled discs through a camera.
type Renderer struct {
	Palette Palette
	cam     *Camera

	// Antialias smooths disc edges at some fill-rate cost.
	Antialias bool

	drawn int
}

// NewRenderer creates a renderer that draws through cam with the default
// palette.
func NewRenderer(cam *Camera) *Renderer {
	return &Renderer{
		Palette:   DefaultPalette(),
		cam:       cam,
		Antialias: true,
	}
}

// Draw clears dst and draws every visible drawable. Fully transparent and
// off-screen particles are skipped.
func (r *Renderer) Draw(dst *ebiten.Image, ds []Drawable) {
	dst.Fill(r.Palette.ClearColor())
	r.drawn = 0

	view := r.cam.VisibleBounds()
	zoom := r.cam.Zoom
	for i := range ds {
		d := &ds[i]
		if d.Alpha <= 0 {
			continue
		}
		if !view.Contains(d.Pos.X, d.Pos.Y) {
			continue
		}
		sx, sy := r.cam.WorldToScreen(d.Pos.X, d.Pos.Y)
		radius := max(d.Radius*zoom, minDrawRadius)
		vector.DrawFilledCircle(dst, float32(sx), float32(sy), float32(radius), r.Palette.Color(*d), r.Antialias)
		r.drawn++
	}
}

// Drawn returns how many discs the last Draw submitted.
func (r *Renderer) Drawn() int {
	return r.drawn
}
