package fontres

import (
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/fontres/internal/pixconv"
)

// rasterize runs the backend half of the render pass for non-empty text:
// rasterize with the current style and color, verify the 32-bit depth, and
// convert to the canonical RGBA layout. The variants handle buffer
// placement themselves.
//
// Backend failures come back as *RenderError; bitmaps of any other depth
// as *backend.UnsupportedDepthError. Caller holds f.mu and has checked
// that the font is loaded.
func (f *Font) rasterize(text string) (pix []byte, w, h int, err error) {
	bmp, err := f.handle.Rasterize(normText(text), f.style, f.col.rgba8())
	if err != nil {
		return nil, 0, 0, &RenderError{Err: err}
	}
	pix, err = pixconv.ToRGBA(bmp)
	if err != nil {
		return nil, 0, 0, err
	}
	return pix, bmp.Width, bmp.Height, nil
}

// normText normalizes input to NFC so decomposed sequences (e.g. "e" +
// combining acute) hit the font's precomposed glyphs.
func normText(s string) string {
	return norm.NFC.String(s)
}
