package fontres

import "image/color"

// Color is an opaque foreground color with red, green and blue components.
// Each component is in the range [0, 1].
type Color struct {
	R, G, B float64
}

// White is the default font color. A white foreground lets downstream
// consumers tint the texture when compositing it.
var White = Color{R: 1, G: 1, B: 1}

// clamped returns the color with every channel clamped to [0, 1].
func (c Color) clamped() Color {
	return Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}
}

// rgba8 converts the color to 8-bit channels with full alpha.
func (c Color) rgba8() color.RGBA {
	return color.RGBA{
		R: channelByte(c.R),
		G: channelByte(c.G),
		B: channelByte(c.B),
		A: 0xFF,
	}
}

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1]. It is used for fixed-texture
// backgrounds, where alpha selects the compositing mode (see
// Font.NewFixedTexture).
type RGBA struct {
	R, G, B, A float64
}

// clamped returns the color with every channel clamped to [0, 1].
func (c RGBA) clamped() RGBA {
	return RGBA{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B), A: clamp01(c.A)}
}

// bytes converts the color to the canonical 4-byte RGBA pixel.
func (c RGBA) bytes() [4]byte {
	return [4]byte{channelByte(c.R), channelByte(c.G), channelByte(c.B), channelByte(c.A)}
}

// clamp01 clamps v to the range [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// channelByte converts a [0, 1] channel to its rounded 8-bit value.
func channelByte(v float64) byte {
	return byte(clamp01(v)*255 + 0.5)
}
