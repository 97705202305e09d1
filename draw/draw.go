// Package draw provides drawing primitives for the LED matrix images.
package draw

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// Image is an alias for [image/draw.Image].
type Image = draw.Image

// Op is an alias for [image/draw.Op].
type Op = draw.Op

const (
	// Over specifies ``(src in mask) over dst''.
	Over Op = draw.Over

	// Src specifies ``src in mask''.
	Src Op = draw.Src
)

// Draw aligns r.Min in dst with sp in src and composes src onto dst.
func Draw(dst Image, r image.Rectangle, src image.Image, sp image.Point, op Op) {
	draw.Draw(dst, r, src, sp, op)
}

// Fit scales src to cover the bounds of dst, ignoring the aspect ratio.
func Fit(dst Image, src image.Image) {
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
}

// Contain scales src to the largest size that fits dst keeping the aspect ratio,
// centered. The remaining pixels of dst are left as is.
func Contain(dst Image, src image.Image) {
	var (
		db = dst.Bounds()
		sb = src.Bounds()
	)
	if sb.Empty() || db.Empty() {
		return
	}

	w, h := db.Dx(), db.Dy()
	if sb.Dx()*h > sb.Dy()*w {
		h = max(1, sb.Dy()*w/sb.Dx())
	} else {
		w = max(1, sb.Dx()*h/sb.Dy())
	}

	at := db.Min.Add(image.Pt((db.Dx()-w)/2, (db.Dy()-h)/2))
	xdraw.CatmullRom.Scale(dst, image.Rectangle{Min: at, Max: at.Add(image.Pt(w, h))}, src, sb, draw.Over, nil)
}
