package pluribus

import (
	"fmt"
	"image"
	"math"
	"strings"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	// maxHeightFraction caps the glyph size relative to canvas height.
	maxHeightFraction = 0.4
	// maxWidthFraction caps the rendered ink width relative to canvas width.
	maxWidthFraction = 0.9
)

// Rasterizer turns a string into an occupancy grid at canvas resolution.
// Implementations must be deterministic for identical inputs.
type Rasterizer interface {
	Rasterize(text string, width, height int, scale float64) (*Mask, error)
}

// TTFRasterizer rasterizes text with a TrueType/OpenType font on the CPU.
// It needs no graphics context, so masks can be built headlessly.
type TTFRasterizer struct {
	font *opentype.Font
}

// NewTTFRasterizer parses ttfData and returns a rasterizer for it.
func NewTTFRasterizer(ttfData []byte) (*TTFRasterizer, error) {
	f, err := opentype.Parse(ttfData)
	if err != nil {
		return nil, fmt.Errorf("pluribus: failed to parse TTF data: %w", err)
	}
	return &TTFRasterizer{font: f}, nil
}

// DefaultRasterizer returns a rasterizer using the Go Bold font.
func DefaultRasterizer() *TTFRasterizer {
	r, err := NewTTFRasterizer(gobold.TTF)
	if err != nil {
		// gobold.TTF is compiled in; a parse failure is a build defect.
		panic(err)
	}
	return r
}

// Rasterize draws text centred on a width x height canvas. The font is sized
// at 40% of the canvas height times scale, then shrunk until the ink fits in
// 90% of the canvas width, so longer strings get smaller glyphs. Empty or
// whitespace-only text rasterizes a single space.
func (r *TTFRasterizer) Rasterize(text string, width, height int, scale float64) (*Mask, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidCanvas, width, height)
	}
	if strings.TrimSpace(text) == "" {
		text = " "
	}
	if scale <= 0 {
		scale = 1
	}

	maxSize := float64(height) * maxHeightFraction
	size := math.Max(1, math.Min(maxSize*scale, maxSize))

	face, err := r.face(size)
	if err != nil {
		return nil, err
	}
	ink, _ := font.BoundString(face, text)
	inkW := (ink.Max.X - ink.Min.X).Ceil()
	if limit := float64(width) * maxWidthFraction; float64(inkW) > limit {
		face.Close()
		size = math.Max(1, size*limit/float64(inkW))
		if face, err = r.face(size); err != nil {
			return nil, err
		}
		ink, _ = font.BoundString(face, text)
		inkW = (ink.Max.X - ink.Min.X).Ceil()
	}
	defer face.Close()
	inkH := (ink.Max.Y - ink.Min.Y).Ceil()

	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	d := font.Drawer{
		Dst:  dst,
		Src:  image.Opaque,
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I((width-inkW)/2) - ink.Min.X,
			Y: fixed.I((height-inkH)/2) - ink.Min.Y,
		},
	}
	d.DrawString(text)

	return MaskFromAlpha(dst, utf8.RuneCountInString(text)), nil
}

func (r *TTFRasterizer) face(size float64) (font.Face, error) {
	face, err := opentype.NewFace(r.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("pluribus: failed to create face at size %.1f: %w", size, err)
	}
	return face, nil
}
