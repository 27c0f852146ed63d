package fontres

import "github.com/gogpu/fontres/backend"

// Style is a bit set of font style flags, re-exported from the backend
// package so most programs only import fontres.
type Style = backend.Style

// Style flags. Combine with bitwise OR: StyleBold | StyleItalic.
const (
	StyleNormal    = backend.StyleNormal
	StyleBold      = backend.StyleBold
	StyleItalic    = backend.StyleItalic
	StyleUnderline = backend.StyleUnderline
)

// ColorFormat classifies a texture buffer's pixel layout by color depth.
type ColorFormat uint8

const (
	// ColorFormatUnknown is reported for depths the engine never produces.
	ColorFormatUnknown ColorFormat = iota

	// ColorFormatLuminance is 8 bits per pixel, single channel.
	ColorFormatLuminance

	// ColorFormatRGB is 24 bits per pixel, no alpha.
	ColorFormatRGB

	// ColorFormatRGBA is 32 bits per pixel with alpha. All buffers this
	// engine renders use this format.
	ColorFormatRGBA
)

// String returns a string representation of the format.
func (f ColorFormat) String() string {
	switch f {
	case ColorFormatLuminance:
		return "Luminance"
	case ColorFormatRGB:
		return "RGB"
	case ColorFormatRGBA:
		return "RGBA"
	default:
		return "Unknown"
	}
}

// colorFormatForDepth maps bits per pixel to a ColorFormat.
func colorFormatForDepth(bits int) ColorFormat {
	switch bits {
	case 8:
		return ColorFormatLuminance
	case 24:
		return ColorFormatRGB
	case 32:
		return ColorFormatRGBA
	default:
		return ColorFormatUnknown
	}
}
