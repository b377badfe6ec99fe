package pluribus

import (
	"image"
)

// textAlphaThreshold is the minimum coverage for a mask pixel to count as
// foreground.
const textAlphaThreshold = 128

// Mask is a rasterized occupancy grid for a text string at canvas resolution.
type Mask struct {
	// Width and Height are the canvas dimensions in pixels.
	Width, Height int
	// Alpha holds per-pixel coverage, row-major, Width*Height entries.
	Alpha []uint8
	// Bounds is the bounding box of foreground pixels. Empty when the mask
	// has no foreground.
	Bounds image.Rectangle
	// Origin is the wave origin in canvas coordinates.
	Origin Vec2
	// Letters is the number of glyphs the mask was rasterized from.
	Letters int
}

// NewMask builds a Mask from a coverage buffer and derives its bounds and
// wave origin. letters is the number of glyphs drawn and sets the half-letter
// offset of the origin; values below 1 are treated as 1. Negative dimensions
// are treated as 0, and an alpha buffer shorter than width*height is copied
// into a zero-padded one.
func NewMask(width, height int, alpha []uint8, letters int) *Mask {
	if letters < 1 {
		letters = 1
	}
	width, height = max(width, 0), max(height, 0)
	if n := width * height; len(alpha) < n {
		padded := make([]uint8, n)
		copy(padded, alpha)
		alpha = padded
	}
	m := &Mask{
		Width:   width,
		Height:  height,
		Alpha:   alpha,
		Letters: letters,
	}
	m.Bounds = foregroundBounds(width, height, alpha)
	m.Origin = m.waveOrigin()
	return m
}

// MaskFromAlpha builds a Mask from an image.Alpha whose bounds start at (0,0).
func MaskFromAlpha(img *image.Alpha, letters int) *Mask {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	alpha := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		copy(alpha[y*w:(y+1)*w], img.Pix[y*img.Stride:y*img.Stride+w])
	}
	return NewMask(w, h, alpha, letters)
}

// At returns the coverage at (x, y), or 0 outside the grid.
func (m *Mask) At(x, y int) uint8 {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return 0
	}
	return m.Alpha[y*m.Width+x]
}

// IsText reports whether the pixel at (x, y) is foreground.
func (m *Mask) IsText(x, y int) bool {
	return m.At(x, y) > textAlphaThreshold
}

// Empty reports whether the mask has no foreground pixels.
func (m *Mask) Empty() bool {
	return m.Bounds.Empty()
}

// Center returns the canvas centre in canvas coordinates.
func (m *Mask) Center() Vec2 {
	return Vec2{float64(m.Width) / 2, float64(m.Height) / 2}
}

// waveOrigin sits half a letter right of the bounding box's left edge, at its
// vertical centre. An empty mask falls back to the canvas centre.
func (m *Mask) waveOrigin() Vec2 {
	if m.Bounds.Empty() {
		return m.Center()
	}
	letterW := float64(m.Bounds.Dx()) / float64(m.Letters)
	return Vec2{
		X: float64(m.Bounds.Min.X) + letterW/2,
		Y: float64(m.Bounds.Min.Y+m.Bounds.Max.Y) / 2,
	}
}

func foregroundBounds(width, height int, alpha []uint8) image.Rectangle {
	minX, minY := width, height
	maxX, maxY := -1, -1
	for y := 0; y < height; y++ {
		row := alpha[y*width : (y+1)*width]
		for x, a := range row {
			if a <= textAlphaThreshold {
				continue
			}
			minX = min(minX, x)
			maxX = max(maxX, x)
			minY = min(minY, y)
			maxY = max(maxY, y)
		}
	}
	if maxX < 0 {
		return image.Rectangle{}
	}
	return image.Rect(minX, minY, maxX+1, maxY+1)
}
