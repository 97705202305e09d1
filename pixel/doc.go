// Package pixel implements a color and image library suitable for RGB LED matrix displays.
//
// This module provides additional color models, compatible with Go's native [color.Color] and
// [image.Image] / [draw.Image] interfaces, and the 5-6-5 packing used by 16-bit framebuffers.
package pixel
