package style

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a straight-alpha color with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

var (
	Black = Color{0, 0, 0, 1}
	White = Color{1, 1, 1, 1}
)

// RGB returns an opaque color.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA returns a color with the given alpha.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

func (c Color) rgb() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// Luminance is the Rec. 709 weighted sum of the (non-linear) components.
func (c Color) Luminance() float64 {
	return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
}

// Lerp blends every component, alpha included, toward to by t.
func (c Color) Lerp(to Color, t float64) Color {
	m := c.rgb().BlendRgb(to.rgb(), t)
	return Color{R: m.R, G: m.G, B: m.B, A: c.A + (to.A-c.A)*t}
}

// Darkened scales the color components toward black, keeping alpha.
func (c Color) Darkened(amount float64) Color {
	k := 1 - amount
	return Color{R: c.R * k, G: c.G * k, B: c.B * k, A: c.A}
}

// Scaled multiplies all four components.
func (c Color) Scaled(f float64) Color {
	return Color{R: c.R * f, G: c.G * f, B: c.B * f, A: c.A * f}
}

// Opaque drops the alpha channel.
func (c Color) Opaque() Color {
	c.A = 1
	return c
}

func channel8(v float64) uint32 {
	return uint32(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// ABGR32 packs the color as 0xAABBGGRR.
func (c Color) ABGR32() uint32 {
	return channel8(c.A)<<24 | channel8(c.B)<<16 | channel8(c.G)<<8 | channel8(c.R)
}

// ColorRef is the 0x00BBGGRR value the Win32 color APIs take.
func (c Color) ColorRef() uint32 {
	return c.ABGR32() & 0x00ffffff
}

// NRGBA converts the color for image/draw consumers.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(channel8(c.R)),
		G: uint8(channel8(c.G)),
		B: uint8(channel8(c.B)),
		A: uint8(channel8(c.A)),
	}
}

// Hex formats the color as #rrggbb, or #rrggbbaa when not opaque.
func (c Color) Hex() string {
	clamped := colorful.Color{
		R: math.Max(0, math.Min(1, c.R)),
		G: math.Max(0, math.Min(1, c.G)),
		B: math.Max(0, math.Min(1, c.B)),
	}
	s := clamped.Hex()
	if a := channel8(c.A); a != 0xff {
		s += fmt.Sprintf("%02x", a)
	}
	return s
}

// ParseHex accepts #rgb, #rrggbb and #rrggbbaa.
func ParseHex(s string) (Color, error) {
	s = strings.TrimSpace(s)
	alpha := 1.0
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("color %q: alpha: %w", s, err)
		}
		alpha = float64(a) / 255
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: alpha}, nil
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	v, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
