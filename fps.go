package pluribus

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// statsOverlay displays FPS, TPS, and engine counts in the top-left corner.
// The text is re-rendered every ~0.5 seconds into a cached image.
type statsOverlay struct {
	img        *ebiten.Image
	lastUpdate float64
}

func newStatsOverlay() *statsOverlay {
	// 160x80 fits five DebugPrint lines.
	return &statsOverlay{img: ebiten.NewImage(160, 80), lastUpdate: 1}
}

// update refreshes the cached text if at least half a second has passed.
func (o *statsOverlay) update(dt float64, s Stats, drawn int) {
	o.lastUpdate += dt
	if o.lastUpdate < 0.5 {
		return
	}
	o.lastUpdate = 0

	o.img.Clear()
	// Semi-transparent background for readability
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, fmt.Sprintf(
		"FPS: %.1f\nTPS: %.1f\ntext: %d/%d\nambient: %d+%d\nwaves: %d drawn: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		s.Revealed, s.Text, s.Background, s.Dust, s.Waves, drawn))
}

func (o *statsOverlay) draw(screen *ebiten.Image) {
	screen.DrawImage(o.img, nil)
}
