// Package backend defines the glyph-rasterization capability consumed by
// fontres, together with a registry of named implementations.
//
// A Backend turns (font file, point size) into a Font handle; a Font turns
// (text, style, foreground color) into a Bitmap. Everything above this
// package works on Bitmap byte buffers and never sees the rasterization
// library underneath.
package backend

import "image/color"

// Backend opens font files for rasterization.
//
// Implementations register themselves with Register, typically from an
// init function, and are selected by name or priority (see Default).
type Backend interface {
	// Name returns the unique backend name used for registration.
	Name() string

	// AcquireFont opens the font at path with the given point size.
	// Backends that need process-wide initialization must perform it here,
	// idempotently; there is no global shutdown call.
	AcquireFont(path string, pointSize int) (Font, error)
}

// Font is an open font handle at a fixed point size.
//
// A Font is owned by exactly one fontres.Font and is never shared, so
// implementations do not need to be safe for concurrent use.
type Font interface {
	// Measure returns the pixel dimensions a Rasterize call with the same
	// text and style would produce. Dimensions include style synthesis
	// (bold widening, italic shear).
	Measure(text string, style Style) (w, h int)

	// Rasterize renders text in the given style and foreground color.
	// The returned bitmap uses straight (non-premultiplied) alpha.
	// It fails if the backend cannot produce a non-empty bitmap.
	Rasterize(text string, style Style, fg color.RGBA) (*Bitmap, error)

	// Close releases the handle. Close is idempotent.
	Close() error
}

// ChannelMasks locates the logical color channels inside a pixel value.
// A pixel value is the little-endian uint32 read of its bytes, so the
// masks are independent of the host byte order.
type ChannelMasks struct {
	R, G, B, A uint32
}

// RGBA8888 is the canonical layout: bytes R, G, B, A in memory.
var RGBA8888 = ChannelMasks{
	R: 0x000000FF,
	G: 0x0000FF00,
	B: 0x00FF0000,
	A: 0xFF000000,
}

// Bitmap is a rasterized image produced by a backend Font.
//
// Pix is row-major with Pitch bytes per row. For 32-bit bitmaps each pixel
// is read as a little-endian uint32 and decoded through Masks.
type Bitmap struct {
	Width        int
	Height       int
	BitsPerPixel int
	Pitch        int
	Pix          []byte
	Masks        ChannelMasks
}
