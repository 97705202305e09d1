package text

import (
	"image"
	"slices"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/BeatGlow/sensehat/pixel"
)

// FaceFont renders glyphs from a font face. The face should be sized for
// [GlyphHeight] pixel rows, taller glyphs are cropped.
type FaceFont struct {
	mu    sync.Mutex
	face  font.Face
	cache map[rune][]byte
}

// NewFaceFont returns a font for face, such as a TrueType face.
func NewFaceFont(face font.Face) *FaceFont {
	return &FaceFont{
		face:  face,
		cache: make(map[rune][]byte),
	}
}

// Glyph rasterizes the glyph for r, thresholding anti-aliased pixels at half
// intensity. Rendered glyphs are cached.
func (f *FaceFont) Glyph(r rune) ([]byte, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	columns, ok := f.cache[r]
	if !ok {
		columns = f.render(r)
		f.cache[r] = columns
	}
	if columns == nil {
		return nil, false
	}
	return slices.Clone(columns), true
}

func (f *FaceFont) render(r rune) []byte {
	_, _, _, advance, ok := f.face.Glyph(fixed.Point26_6{}, r)
	if !ok {
		return nil
	}
	width := advance.Ceil()
	if width <= 0 {
		return nil
	}

	var (
		mask    = pixel.NewMonoVerticalLSBImage(width, GlyphHeight)
		descent = f.face.Metrics().Descent.Ceil()
		drawer  = &font.Drawer{
			Dst:  mask,
			Src:  image.White,
			Face: f.face,
			Dot:  fixed.P(0, GlyphHeight-descent),
		}
	)
	drawer.DrawString(string(r))
	return mask.Pix
}

var _ Font = (*FaceFont)(nil)
