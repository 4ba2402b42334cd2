package rendering

import (
	"fmt"
	"strings"
)

// maxByte is the maximum value of a byte, used for color normalization.
const maxByte = 255.0

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA constructs a Color from red, green, blue, alpha bytes.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 0xFF)
}

// RGBAF returns normalized color components (0.0 to 1.0).
func (c Color) RGBAF() (r, g, b, a float64) {
	return float64(uint8(c>>16)) / maxByte,
		float64(uint8(c>>8)) / maxByte,
		float64(uint8(c)) / maxByte,
		float64(uint8(c>>24)) / maxByte
}

// RGBA8 returns the raw 8-bit color components.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c), uint8(c >> 24)
}

// WithAlpha returns a copy of the color with the given alpha (0-255).
func (c Color) WithAlpha(a uint8) Color {
	return Color(uint32(a)<<24 | uint32(c)&0x00FFFFFF)
}

// HexRGB formats the color as a #rrggbb string, dropping alpha.
// This is the form SVG and stylesheet collaborators expect.
func (c Color) HexRGB() string {
	r, g, b, _ := c.RGBA8()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Opacity returns the alpha channel normalized to 0.0-1.0.
func (c Color) Opacity() float64 {
	return float64(uint8(c>>24)) / maxByte
}

// ParseHex parses a "#rrggbb" or "#aarrggbb" string into a Color.
// A missing alpha component defaults to fully opaque.
func ParseHex(s string) (Color, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(raw) {
	case 6:
		var r, g, b uint8
		if _, err := fmt.Sscanf(raw, "%02x%02x%02x", &r, &g, &b); err != nil {
			return 0, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		return RGB(r, g, b), nil
	case 8:
		var a, r, g, b uint8
		if _, err := fmt.Sscanf(raw, "%02x%02x%02x%02x", &a, &r, &g, &b); err != nil {
			return 0, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		return RGBA(r, g, b, a), nil
	default:
		return 0, fmt.Errorf("invalid hex color %q: expected 6 or 8 hex digits", s)
	}
}

// Common colors.
var (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
	ColorRed         = Color(0xFFFF0000)
)
