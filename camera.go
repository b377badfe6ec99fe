package pluribus

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera maps particle space onto the screen: a pan and a zoom about the
// viewport centre. Particle space (0, 0) is the canvas centre, so a camera at
// X=Y=0 with Zoom=1 shows the field exactly as spawned.
type Camera struct {
	// X and Y are the particle-space position the camera centres on.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in).
	Zoom float64
	// Viewport is the screen-space rectangle the camera renders into.
	Viewport Rect

	viewMatrix    [6]float64
	invViewMatrix [6]float64
	dirty         bool

	scrollTween *scrollAnim
}

// NewCamera creates a Camera at the origin with zoom 1 for the given viewport.
func NewCamera(viewport Rect) *Camera {
	return &Camera{
		Zoom:     1.0,
		Viewport: viewport,
		dirty:    true,
	}
}

// ScrollTo animates the camera to the given particle-space position over
// duration seconds.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Y), float32(y), duration, easeFn),
	}
}

// SetViewport replaces the viewport, e.g. after a window resize.
func (c *Camera) SetViewport(viewport Rect) {
	c.Viewport = viewport
	c.dirty = true
}

// Update advances any scroll animation by dt seconds.
func (c *Camera) Update(dt float32) {
	if c.scrollTween == nil {
		return
	}
	if !c.scrollTween.doneX {
		val, done := c.scrollTween.tweenX.Update(dt)
		c.X = float64(val)
		c.scrollTween.doneX = done
	}
	if !c.scrollTween.doneY {
		val, done := c.scrollTween.tweenY.Update(dt)
		c.Y = float64(val)
		c.scrollTween.doneY = done
	}
	if c.scrollTween.doneX && c.scrollTween.doneY {
		c.scrollTween = nil
	}
	c.dirty = true
}

// computeViewMatrix recomputes the cached view matrix if dirty.
//
//	viewMatrix = Translate(cx, cy) * Scale(zoom) * Translate(-X, -Y)
//
// where cx, cy = viewport centre.
func (c *Camera) computeViewMatrix() [6]float64 {
	if !c.dirty {
		return c.viewMatrix
	}
	c.dirty = false

	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2
	z := c.Zoom

	c.viewMatrix = [6]float64{z, 0, 0, z, cx - z*c.X, cy - z*c.Y}
	c.invViewMatrix = invertAffine(c.viewMatrix)
	return c.viewMatrix
}

// WorldToScreen converts particle-space coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	c.computeViewMatrix()
	return transformPoint(c.viewMatrix, wx, wy)
}

// ScreenToWorld converts screen coordinates to particle space.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	c.computeViewMatrix()
	return transformPoint(c.invViewMatrix, sx, sy)
}

// VisibleBounds returns the particle-space rectangle visible through the
// viewport.
func (c *Camera) VisibleBounds() Rect {
	c.computeViewMatrix()
	x0, y0 := transformPoint(c.invViewMatrix, c.Viewport.X, c.Viewport.Y)
	x1, y1 := transformPoint(c.invViewMatrix, c.Viewport.X+c.Viewport.Width, c.Viewport.Y+c.Viewport.Height)
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// MarkDirty forces a recomputation of the view matrix. Call after setting
// X, Y, or Zoom directly.
func (c *Camera) MarkDirty() {
	c.dirty = true
}
