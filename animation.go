package pluribus

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Intro zoom: the camera eases from IntroZoomFrom to IntroZoomTo over
// IntroDuration seconds while the first wave reveals the text.
const (
	IntroZoomFrom = 3.0
	IntroZoomTo   = 1.0
	IntroDuration = 4.8
)

// ZoomTween animates a Camera's Zoom. Create one with TweenZoom or StartIntro
// and call Update(dt) each frame; the tween writes the value to the camera
// and marks it dirty.
//
// There is no global animation manager; callers call Update themselves.
type ZoomTween struct {
	tween  *gween.Tween
	target *Camera
	Done   bool
}

// Update advances the tween by dt seconds and writes the zoom to the camera.
func (z *ZoomTween) Update(dt float32) {
	if z.Done {
		return
	}
	val, finished := z.tween.Update(dt)
	z.target.Zoom = float64(val)
	z.target.MarkDirty()
	z.Done = finished
}

// TweenZoom creates a ZoomTween that animates cam.Zoom to the target value
// over duration seconds using the easing function.
func TweenZoom(cam *Camera, to float64, duration float32, fn ease.TweenFunc) *ZoomTween {
	return &ZoomTween{
		tween:  gween.New(float32(cam.Zoom), float32(to), duration, fn),
		target: cam,
	}
}

// StartIntro puts cam at the intro start zoom, centred on focus, and starts
// easing it back to zoom 1 over the canvas centre. With skip set, the camera
// is placed at its resting view and the returned tween is already done.
func StartIntro(cam *Camera, focus Vec2, skip bool) *ZoomTween {
	cam.scrollTween = nil
	if skip {
		cam.X, cam.Y, cam.Zoom = 0, 0, IntroZoomTo
		cam.MarkDirty()
		return &ZoomTween{target: cam, Done: true}
	}
	cam.X, cam.Y, cam.Zoom = focus.X, focus.Y, IntroZoomFrom
	cam.MarkDirty()
	cam.ScrollTo(0, 0, IntroDuration, ease.OutCubic)
	return TweenZoom(cam, IntroZoomTo, IntroDuration, ease.OutCubic)
}
