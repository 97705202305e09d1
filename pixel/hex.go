package pixel

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// ParseHex parses a color in "#RRGGBB" notation, the leading "#" is optional.
func ParseHex(s string) (RGB, error) {
	v := strings.TrimPrefix(s, "#")
	if len(v) != 6 {
		return RGB{}, fmt.Errorf("%w: %q, expected format #RRGGBB", ErrInvalidColor, s)
	}
	var b [3]byte
	if _, err := hex.Decode(b[:], []byte(v)); err != nil {
		return RGB{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, s, err)
	}
	return RGB{R: b[0], G: b[1], B: b[2]}, nil
}

// ParseColor parses a preset name (see [Presets]) or a hex color.
func ParseColor(s string) (RGB, error) {
	if c, ok := Presets[strings.ToLower(s)]; ok {
		return c, nil
	}
	return ParseHex(s)
}

// Hex formats the color as upper case "#RRGGBB".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
