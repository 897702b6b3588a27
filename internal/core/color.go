package core

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrUnknownColor is returned when a colour is neither a CSS name nor a hex code.
var ErrUnknownColor = errors.New("unknown color")

// Color is an opaque RGB colour. It implements color.Color so platform
// layers can hand it straight to image APIs.
type Color struct {
	R, G, B uint8
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// Hex returns the colour as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseColor resolves a CSS colour name ("forestgreen") or a hex code
// ("#228b22", "#fff"). Names are matched case-insensitively.
func ParseColor(s string) (Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return Color{}, fmt.Errorf("%w: empty", ErrUnknownColor)
	}

	if strings.HasPrefix(name, "#") {
		return parseHex(name)
	}

	rgba, ok := colornames.Map[name]
	if !ok {
		return Color{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	return Color{R: rgba.R, G: rgba.G, B: rgba.B}, nil
}

// ColorNames returns every CSS colour name ParseColor accepts.
func ColorNames() []string {
	return colornames.Names
}

func parseHex(s string) (Color, error) {
	digits := s[1:]
	switch len(digits) {
	case 3:
		// #rgb expands each nibble: #f80 == #ff8800
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	case 6:
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}

	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}
