// Package opentype implements the default rasterization backend on
// golang.org/x/image: fonts are parsed with font/opentype and glyphs drawn
// through font.Drawer into coverage masks.
//
// The backend registers itself as "opentype" at priority 100. Programs
// load it with a blank import:
//
//	import _ "github.com/gogpu/fontres/backend/opentype"
package opentype

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"

	"golang.org/x/image/font"
	xopentype "golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/fontres/backend"
	"github.com/gogpu/fontres/internal/glyphmask"
)

// Name is the registry name of this backend.
const Name = "opentype"

// boldExtra is the extra coverage width in pixels for synthesized bold.
const boldExtra = 1

var errEmptyBitmap = errors.New("opentype: text produced an empty bitmap")

func init() {
	backend.Register(Name, 100, &Backend{})
}

// Backend implements backend.Backend on golang.org/x/image.
type Backend struct{}

// Name implements backend.Backend.
func (*Backend) Name() string { return Name }

// AcquireFont implements backend.Backend. The whole font file is read and
// parsed eagerly; glyph rasterization never touches the file again.
func (*Backend) AcquireFont(path string, pointSize int) (backend.Font, error) {
	if pointSize <= 0 {
		return nil, fmt.Errorf("opentype: point size must be positive, got %d", pointSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opentype: failed to read font file: %w", err)
	}
	parsed, err := xopentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("opentype: failed to parse font: %w", err)
	}
	face, err := xopentype.NewFace(parsed, &xopentype.FaceOptions{
		Size:    float64(pointSize),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("opentype: failed to create face: %w", err)
	}
	return &otFont{face: face}, nil
}

// otFont is an open face at a fixed point size.
type otFont struct {
	face font.Face
}

// Measure implements backend.Font.
func (f *otFont) Measure(text string, style backend.Style) (w, h int) {
	w, h, _, _ = f.dims(text, style)
	return w, h
}

// dims returns the styled bitmap dimensions, the baseline offset and the
// left padding. Glyphs with a negative left-side bearing overhang the pen
// position, so the pen starts at left instead of zero; glyphs whose ink
// extends past the final advance widen the bitmap on the right.
func (f *otFont) dims(text string, style backend.Style) (w, h, ascent, left int) {
	m := f.face.Metrics()
	ascent = m.Ascent.Ceil()
	h = ascent + m.Descent.Ceil()

	bounds, adv := font.BoundString(f.face, text)
	if bounds.Min.X < 0 {
		left = (-bounds.Min.X).Ceil()
	}
	w = adv.Ceil()
	if r := bounds.Max.X.Ceil(); r > w {
		w = r
	}
	w += left
	if w > 0 {
		if style.Bold() {
			w += boldExtra
		}
		if style.Italic() {
			w += glyphmask.ShearExtra(h)
		}
	}
	return w, h, ascent, left
}

// Rasterize implements backend.Font. Glyph coverage is accumulated into an
// alpha mask, style synthesis is applied to the mask, and the mask is
// combined with the foreground color into a straight-alpha RGBA bitmap.
func (f *otFont) Rasterize(text string, style backend.Style, fg color.RGBA) (*backend.Bitmap, error) {
	w, h, ascent, left := f.dims(text, style)
	if w <= 0 || h <= 0 {
		return nil, errEmptyBitmap
	}

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: f.face,
		Dot:  fixed.P(left, ascent),
	}
	d.DrawString(text)

	applyStyle(mask, style, ascent)
	return glyphmask.BuildBitmap(mask, fg), nil
}

// Close implements backend.Font. Close is idempotent.
func (f *otFont) Close() error {
	if f.face == nil {
		return nil
	}
	err := f.face.Close()
	f.face = nil
	return err
}

// applyStyle runs mask-level style synthesis. Order matters: the shear
// slants the glyphs, the underline is drawn straight afterwards.
func applyStyle(mask *image.Alpha, style backend.Style, ascent int) {
	if style.Bold() {
		glyphmask.Embolden(mask, boldExtra)
	}
	if style.Italic() {
		glyphmask.Shear(mask)
	}
	if style.Underline() {
		h := mask.Rect.Dy()
		thickness := h / 14
		if thickness < 1 {
			thickness = 1
		}
		// Faces with a descent smaller than the band would push the line
		// past the mask; keep at least one full band inside.
		top := ascent + thickness
		if top > h-thickness {
			top = h - thickness
		}
		glyphmask.Underline(mask, top, thickness)
	}
}
