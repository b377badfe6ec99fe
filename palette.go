package pluribus

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette assigns colours to particle kinds. Text particles shift from Spark
// to Text as they fade in; the blend runs in CIE-L*a*b* so the midpoint does
// not go muddy.
type Palette struct {
	Clear      colorful.Color
	Text       colorful.Color
	Spark      colorful.Color
	Background colorful.Color
	Dust       colorful.Color
}

// DefaultPalette is a warm text colour over a cool, dark field.
func DefaultPalette() Palette {
	return Palette{
		Clear:      colorful.Color{R: 0.031, G: 0.035, B: 0.055},
		Text:       colorful.Color{R: 0.98, G: 0.91, B: 0.78},
		Spark:      colorful.Color{R: 0.45, G: 0.72, B: 1.0},
		Background: colorful.Color{R: 0.40, G: 0.46, B: 0.62},
		Dust:       colorful.Color{R: 0.55, G: 0.60, B: 0.75},
	}
}

// Color returns the straight-alpha colour for a drawable.
func (p Palette) Color(d Drawable) color.NRGBA {
	var c colorful.Color
	switch d.Kind {
	case KindText:
		c = p.Spark.BlendLab(p.Text, clamp01(d.Alpha)).Clamped()
	case KindBackground:
		c = p.Background
	default:
		c = p.Dust
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(clamp01(d.Alpha)*255 + 0.5)}
}

// ClearColor returns the opaque background colour.
func (p Palette) ClearColor() color.NRGBA {
	r, g, b := p.Clear.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}
