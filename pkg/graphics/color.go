package graphics

import "math"

// maxByte is the maximum value of a byte, used for color normalization.
const maxByte = 255.0

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA8 constructs a Color from red, green, blue, alpha bytes (all 0-255).
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// Alpha8 returns the alpha component byte.
func (c Color) Alpha8() uint8 {
	return uint8(c >> 24)
}

// Red returns the red component byte.
func (c Color) Red() uint8 {
	return uint8(c >> 16)
}

// Green returns the green component byte.
func (c Color) Green() uint8 {
	return uint8(c >> 8)
}

// Blue returns the blue component byte.
func (c Color) Blue() uint8 {
	return uint8(c)
}

// WithAlpha8 returns a copy of the color with the given alpha byte (0-255).
func (c Color) WithAlpha8(a uint8) Color {
	return Color(uint32(a)<<24 | uint32(c)&0x00FFFFFF)
}

// Blend interpolates channel-wise between from and to at progress t in [0, 1].
// t outside the unit range is clamped, so a blend can never overshoot either
// endpoint.
func Blend(from, to Color, t float64) Color {
	t = clamp01(t)
	return RGBA8(
		lerpByte(from.Red(), to.Red(), t),
		lerpByte(from.Green(), to.Green(), t),
		lerpByte(from.Blue(), to.Blue(), t),
		lerpByte(from.Alpha8(), to.Alpha8(), t),
	)
}

// lerpByte linearly interpolates between two bytes with rounding.
func lerpByte(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

// clamp01 clamps a value to the range [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Common colors.
const (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
)
