// Package glyphmask post-processes rasterized glyph coverage masks.
//
// Backends render text into an image.Alpha coverage mask and then apply
// style synthesis here: bold is a pixel-level embolden, italic is a
// per-scanline shear, underline is a straight band. Finally BuildBitmap
// combines the mask with the foreground color into a straight-alpha
// backend.Bitmap.
//
// Style synthesis operates on finished masks, the same way SDL_ttf
// synthesizes styles for faces without dedicated bold/italic variants.
package glyphmask

import (
	"image"
	"image/color"

	"github.com/gogpu/fontres/backend"
)

// Skew is the horizontal displacement per vertical pixel used for italic
// shearing. Rows near the top of the mask shift right by Skew*(height-1-y).
const Skew = 0.2

// ShearExtra returns the extra width a mask of the given height needs to
// hold its sheared content.
func ShearExtra(height int) int {
	return int(Skew*float64(height-1)) + 1
}

// Embolden thickens mask coverage by extra pixels to the right, in place.
// Every output pixel becomes the maximum of itself and its extra left
// neighbors. The mask must already be wide enough for the added coverage.
func Embolden(m *image.Alpha, extra int) {
	w, h := m.Rect.Dx(), m.Rect.Dy()
	for pass := 0; pass < extra; pass++ {
		for y := 0; y < h; y++ {
			row := m.Pix[y*m.Stride:]
			for x := w - 1; x > 0; x-- {
				if row[x-1] > row[x] {
					row[x] = row[x-1]
				}
			}
		}
	}
}

// Shear slants mask rows to the right, in place: row y moves right by
// Skew*(height-1-y) pixels, so the top leans right. The mask must already
// include ShearExtra(height) spare width on the right.
func Shear(m *image.Alpha) {
	w, h := m.Rect.Dx(), m.Rect.Dy()
	for y := 0; y < h; y++ {
		shift := int(Skew * float64(h-1-y))
		if shift == 0 {
			continue
		}
		row := m.Pix[y*m.Stride:]
		for x := w - 1; x >= 0; x-- {
			if x-shift >= 0 {
				row[x] = row[x-shift]
			} else {
				row[x] = 0
			}
		}
	}
}

// Underline draws a full-width opaque band covering rows
// [top, top+thickness), clamped to the mask. Called after Shear so the
// line stays straight under slanted glyphs.
func Underline(m *image.Alpha, top, thickness int) {
	w, h := m.Rect.Dx(), m.Rect.Dy()
	if top < 0 {
		top = 0
	}
	bottom := top + thickness
	if bottom > h {
		bottom = h
	}
	for y := top; y < bottom; y++ {
		row := m.Pix[y*m.Stride : y*m.Stride+w]
		for x := range row {
			row[x] = 0xFF
		}
	}
}

// BuildBitmap combines a coverage mask with a foreground color into a
// 32-bit straight-alpha bitmap in the canonical RGBA layout: color
// channels carry fg, the alpha channel carries coverage scaled by fg's
// alpha.
func BuildBitmap(m *image.Alpha, fg color.RGBA) *backend.Bitmap {
	w, h := m.Rect.Dx(), m.Rect.Dy()
	pix := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		row := m.Pix[y*m.Stride:]
		dst := pix[y*w*4:]
		for x := 0; x < w; x++ {
			a := row[x]
			o := x * 4
			dst[o+0] = fg.R
			dst[o+1] = fg.G
			dst[o+2] = fg.B
			if fg.A == 0xFF {
				dst[o+3] = a
			} else {
				dst[o+3] = byte((uint32(a)*uint32(fg.A) + 127) / 255)
			}
		}
	}
	return &backend.Bitmap{
		Width:        w,
		Height:       h,
		BitsPerPixel: 32,
		Pitch:        w * 4,
		Pix:          pix,
		Masks:        backend.RGBA8888,
	}
}
