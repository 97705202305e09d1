package sensehat

import "image"

// Rotation defines pixel rotation.
type Rotation uint8

// Supported rotations.
const (
	NoRotation Rotation = iota
	Rotate90            // Rotate 90° clock wise
	Rotate180           // Rotate 180°
	Rotate270           // Rotate 270° clock wise
)

// ParseRotation returns the rotation for an angle in degrees, which must be one
// of 0, 90, 180 or 270.
func ParseRotation(degrees int) (Rotation, error) {
	switch degrees {
	case 0:
		return NoRotation, nil
	case 90:
		return Rotate90, nil
	case 180:
		return Rotate180, nil
	case 270:
		return Rotate270, nil
	default:
		return NoRotation, invalidf("rotation %d, must be 0, 90, 180 or 270", degrees)
	}
}

// Valid reports if r is one of the supported rotations.
func (r Rotation) Valid() bool {
	return r <= Rotate270
}

// Degrees returns the rotation angle.
func (r Rotation) Degrees() int {
	return int(r%4) * 90
}

func (r Rotation) String() string {
	switch r % 4 {
	case Rotate90:
		return "90°"
	case Rotate180:
		return "180°"
	case Rotate270:
		return "270°"
	default:
		return "0°"
	}
}

// Apply maps a logical position to its physical position on the matrix.
func (r Rotation) Apply(p image.Point) image.Point {
	switch r {
	case Rotate90:
		return image.Pt(Width-1-p.Y, p.X)
	case Rotate180:
		return image.Pt(Width-1-p.X, Height-1-p.Y)
	case Rotate270:
		return image.Pt(p.Y, Height-1-p.X)
	default:
		return p
	}
}
