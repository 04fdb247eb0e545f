package pulse

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/oliverbestmann/ignite/glm"
)

var ColorWhite = ColorLinearRGBA(1, 1, 1, 1)

// Color is an a straight rgba color value with alpha in linear rgb color space.
// The default value of a Color value is fully opaque white.
type Color struct {
	r1, g1, b1, a1 float32
}

// ColorLinearRGBA creates a new Color value from the given color values.
func ColorLinearRGBA(r, g, b, a float32) Color {
	return Color{
		r1: r - 1,
		g1: g - 1,
		b1: b - 1,
		a1: a - 1,
	}
}

// ColorSRGBA creates a Color value from non linear srgb encoded values. The color values
// will be transferred into linear rgb space, alpha is kept as is.
func ColorSRGBA(r, g, b, a float32) Color {
	return ColorLinearRGBA(degamma(r), degamma(g), degamma(b), a)
}

// ParseColor parses a srgb color in hex notation, #rrggbb or #rrggbbaa.
func ParseColor(value string) (Color, error) {
	hex, ok := strings.CutPrefix(strings.TrimSpace(value), "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return Color{}, fmt.Errorf("parse color %q: expected #rrggbb or #rrggbbaa", value)
	}

	if len(hex) == 6 {
		hex += "ff"
	}

	bits, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", value, err)
	}

	channel := func(shift uint) float32 {
		return float32((bits>>shift)&0xff) / 255
	}

	return ColorSRGBA(channel(24), channel(16), channel(8), channel(0)), nil
}

// ToVec returns a glm.Vec4f containing the components of this Color instance in
// linear rgb space.
func (c Color) ToVec() glm.Vec4f {
	return glm.Vec4f{
		c.r1 + 1,
		c.g1 + 1,
		c.b1 + 1,
		c.a1 + 1,
	}
}

func degamma(value float32) float32 {
	x := float64(value)

	// https://www.w3.org/TR/css-color-4/#color-conversion-code
	sign := math.Copysign(1, x)
	abs := math.Abs(x)
	if abs <= 0.04045 {
		return float32(x / 12.92)
	}

	return float32(sign * math.Pow((abs+0.055)/1.055, 2.4))
}
