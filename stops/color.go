package stops

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/gogpu/vecedit"
)

// Color is a straight (non-premultiplied) color with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// RGB returns an opaque color.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// FromColor converts a standard color.Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// NRGBA converts the color to 8-bit components, clamping out-of-range values.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}
}

func to8(x float64) uint8 {
	return uint8(math.Round(clamp01(x) * 255))
}

// Hex formats the color as #rrggbb, or #rrggbbaa when not opaque.
func (c Color) Hex() string {
	n := c.NRGBA()
	if n.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

// ParseHex parses "RGB", "RGBA", "RRGGBB" or "RRGGBBAA", with an optional
// leading '#'.
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	var digits [8]uint32
	for i := 0; i < len(hex) && i < len(digits); i++ {
		d, ok := hexDigit(hex[i])
		if !ok {
			return Color{}, fmt.Errorf("stops: color %q: %w", s, vecedit.ErrInvalidArgument)
		}
		digits[i] = d
	}

	var r, g, b, a uint32 = 0, 0, 0, 255
	switch len(hex) {
	case 3, 4:
		r, g, b = digits[0]*17, digits[1]*17, digits[2]*17
		if len(hex) == 4 {
			a = digits[3] * 17
		}
	case 6, 8:
		r, g, b = digits[0]<<4|digits[1], digits[2]<<4|digits[3], digits[4]<<4|digits[5]
		if len(hex) == 8 {
			a = digits[6]<<4 | digits[7]
		}
	default:
		return Color{}, fmt.Errorf("stops: color %q: %w", s, vecedit.ErrInvalidArgument)
	}
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, nil
}

func hexDigit(c byte) (uint32, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint32(c - '0'), true
	case 'a' <= c && c <= 'f':
		return uint32(c - 'a' + 10), true
	case 'A' <= c && c <= 'F':
		return uint32(c - 'A' + 10), true
	}
	return 0, false
}

func (c Color) premultiply() Color {
	return Color{R: c.R * c.A, G: c.G * c.A, B: c.B * c.A, A: c.A}
}

func (c Color) unpremultiply() Color {
	if c.A == 0 {
		return Color{}
	}
	return Color{R: c.R / c.A, G: c.G / c.A, B: c.B / c.A, A: c.A}
}

// LerpColor interpolates two colors in premultiplied space, so a fade to
// transparent keeps its hue. It has the signature List.Sample expects.
func LerpColor(a, b Color, t float64) Color {
	pa, pb := a.premultiply(), b.premultiply()
	return Color{
		R: pa.R + (pb.R-pa.R)*t,
		G: pa.G + (pb.G-pa.G)*t,
		B: pa.B + (pb.B-pa.B)*t,
		A: pa.A + (pb.A-pa.A)*t,
	}.unpremultiply()
}
