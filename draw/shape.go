package draw

import (
	"image"
	"image/color"
)

// Line draws a line between two points, both inclusive.
func Line(dst Image, a, b image.Point, c color.Color) {
	var (
		dx, sx = span(a.X, b.X)
		dy, sy = span(a.Y, b.Y)
		e      = dx - dy
	)
	for {
		dst.Set(a.X, a.Y, c)
		if a == b {
			return
		}
		e2 := 2 * e
		if e2 >= -dy {
			e -= dy
			a.X += sx
		}
		if e2 <= dx {
			e += dx
			a.Y += sy
		}
	}
}

// span returns the distance and step direction from a to b.
func span(a, b int) (d, step int) {
	if b < a {
		return a - b, -1
	}
	return b - a, 1
}

// HorizontalLine draws a line of w pixels starting at (x,y).
func HorizontalLine(dst Image, x, y, w int, c color.Color) {
	for i := 0; i < w; i++ {
		dst.Set(x+i, y, c)
	}
}

// VerticalLine draws a line of h pixels starting at (x,y).
func VerticalLine(dst Image, x, y, h int, c color.Color) {
	for i := 0; i < h; i++ {
		dst.Set(x, y+i, c)
	}
}

// Rectangle draws the outline of rect, Max being exclusive.
func Rectangle(dst Image, rect image.Rectangle, c color.Color) {
	if rect.Empty() {
		return
	}
	var (
		w = rect.Dx()
		h = rect.Dy()
	)
	HorizontalLine(dst, rect.Min.X, rect.Min.Y, w, c)
	HorizontalLine(dst, rect.Min.X, rect.Max.Y-1, w, c)
	VerticalLine(dst, rect.Min.X, rect.Min.Y, h, c)
	VerticalLine(dst, rect.Max.X-1, rect.Min.Y, h, c)
}

// Box draws a filled rectangle, Max being exclusive.
func Box(dst Image, rect image.Rectangle, c color.Color) {
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		HorizontalLine(dst, rect.Min.X, y, rect.Dx(), c)
	}
}

// Circle draws a circle outline around center.
func Circle(dst Image, center image.Point, radius int, c color.Color) {
	midpointCircle(radius, func(x, y int) {
		for _, p := range []image.Point{
			{x, y}, {y, x}, {-y, x}, {-x, y},
			{-x, -y}, {-y, -x}, {y, -x}, {x, -y},
		} {
			dst.Set(center.X+p.X, center.Y+p.Y, c)
		}
	})
}

// Disc draws a filled circle around center.
func Disc(dst Image, center image.Point, radius int, c color.Color) {
	midpointCircle(radius, func(x, y int) {
		HorizontalLine(dst, center.X-x, center.Y+y, 2*x+1, c)
		HorizontalLine(dst, center.X-x, center.Y-y, 2*x+1, c)
		HorizontalLine(dst, center.X-y, center.Y+x, 2*y+1, c)
		HorizontalLine(dst, center.X-y, center.Y-x, 2*y+1, c)
	})
}

// midpointCircle calls plot for every point of the first octant of a circle.
func midpointCircle(radius int, plot func(x, y int)) {
	if radius <= 0 {
		plot(0, 0)
		return
	}
	x, y, e := radius, 0, 1-radius
	for x >= y {
		plot(x, y)
		y++
		if e < 0 {
			e += 2*y + 1
		} else {
			x--
			e += 2*(y-x) + 1
		}
	}
}
