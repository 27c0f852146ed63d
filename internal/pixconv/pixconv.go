// Package pixconv converts backend bitmaps into the canonical RGBA byte
// layout used by texture buffers: 4 bytes per pixel in the order red,
// green, blue, alpha, straight (non-premultiplied) alpha, tightly packed
// rows.
//
// Conversion is driven entirely by the channel masks the backend reports
// against little-endian uint32 pixel reads, so the result depends only on
// the logical channel roles, never on the host byte order.
package pixconv

import (
	"encoding/binary"
	"math/bits"

	"github.com/gogpu/fontres/backend"
)

// BytesPerPixel is the size of one canonical RGBA pixel.
const BytesPerPixel = 4

// ToRGBA converts a 32-bit backend bitmap to canonical RGBA bytes.
// The returned slice is Width*Height*4 bytes with no row padding.
//
// Bitmaps with any depth other than 32 bits per pixel are rejected with
// *backend.UnsupportedDepthError. A zero alpha mask marks the bitmap as
// fully opaque.
func ToRGBA(b *backend.Bitmap) ([]byte, error) {
	if b.BitsPerPixel != 32 {
		return nil, &backend.UnsupportedDepthError{Depth: b.BitsPerPixel}
	}

	rShift := maskShift(b.Masks.R)
	gShift := maskShift(b.Masks.G)
	bShift := maskShift(b.Masks.B)
	aShift := maskShift(b.Masks.A)

	pitch := b.Pitch
	if pitch == 0 {
		pitch = b.Width * BytesPerPixel
	}

	out := make([]byte, b.Width*b.Height*BytesPerPixel)
	for y := 0; y < b.Height; y++ {
		src := b.Pix[y*pitch:]
		dst := out[y*b.Width*BytesPerPixel:]
		for x := 0; x < b.Width; x++ {
			v := binary.LittleEndian.Uint32(src[x*4:])
			o := x * BytesPerPixel
			dst[o+0] = byte((v & b.Masks.R) >> rShift)
			dst[o+1] = byte((v & b.Masks.G) >> gShift)
			dst[o+2] = byte((v & b.Masks.B) >> bShift)
			if b.Masks.A == 0 {
				dst[o+3] = 0xFF
			} else {
				dst[o+3] = byte((v & b.Masks.A) >> aShift)
			}
		}
	}
	return out, nil
}

// maskShift returns the bit offset of the mask's lowest set bit.
func maskShift(mask uint32) uint {
	if mask == 0 {
		return 0
	}
	return uint(bits.TrailingZeros32(mask))
}
