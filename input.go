package pluribus

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Pointer is one pointer sample in particle space. When Active is false the
// position is ignored entirely.
type Pointer struct {
	X, Y   float64
	Active bool
}

// PointerSource yields one pointer sample per tick.
type PointerSource interface {
	Pointer() Pointer
}

// PointerFunc adapts a plain function to PointerSource.
type PointerFunc func() Pointer

// Pointer calls f().
func (f PointerFunc) Pointer() Pointer {
	return f()
}

// EbitenPointer samples the mouse and the first touch from Ebitengine and
// converts them to particle space through a camera.
type EbitenPointer struct {
	cam *Camera
	// RequirePress, when true, only activates the mouse pointer while a
	// button is held. Touches are always active.
	RequirePress bool

	touchBuf []ebiten.TouchID
}

// NewEbitenPointer creates a pointer source bound to cam.
func NewEbitenPointer(cam *Camera) *EbitenPointer {
	return &EbitenPointer{cam: cam}
}

// Pointer returns the current sample. A touch takes precedence over the
// mouse; a mouse outside the camera viewport is inactive.
func (p *EbitenPointer) Pointer() Pointer {
	p.touchBuf = ebiten.AppendTouchIDs(p.touchBuf[:0])
	if len(p.touchBuf) > 0 {
		tx, ty := ebiten.TouchPosition(p.touchBuf[0])
		return p.sample(float64(tx), float64(ty), true)
	}

	mx, my := ebiten.CursorPosition()
	sx, sy := float64(mx), float64(my)
	active := p.cam.Viewport.Contains(sx, sy)
	if p.RequirePress {
		active = active && (ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) ||
			ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight))
	}
	return p.sample(sx, sy, active)
}

func (p *EbitenPointer) sample(sx, sy float64, active bool) Pointer {
	wx, wy := screenToWorld(p.cam, sx, sy)
	return Pointer{X: wx, Y: wy, Active: active}
}

// screenToWorld converts screen coordinates to particle space using cam.
func screenToWorld(cam *Camera, sx, sy float64) (float64, float64) {
	if cam != nil {
		return cam.ScreenToWorld(sx, sy)
	}
	return sx, sy
}
