// Package gotext implements a rasterization backend on
// go-text/typesetting: strings are shaped with its HarfBuzz port (kerning,
// ligatures, complex scripts) and the shaped glyph outlines are filled
// with golang.org/x/image/vector.
//
// It is the opt-in quality backend, registered as "gotext" at priority 50;
// select it per font with fontres.WithBackend("gotext"), or raise its
// priority by re-registering. Load it with a blank import:
//
//	import _ "github.com/gogpu/fontres/backend/gotext"
package gotext

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/fontres/backend"
	"github.com/gogpu/fontres/internal/glyphmask"
)

// Name is the registry name of this backend.
const Name = "gotext"

// boldExtra is the extra coverage width in pixels for synthesized bold.
const boldExtra = 1

var errEmptyBitmap = errors.New("gotext: text produced an empty bitmap")

func init() {
	backend.Register(Name, 50, NewBackend())
}

// Backend implements backend.Backend on go-text/typesetting.
type Backend struct {
	// shaperPool pools HarfbuzzShaper instances. A HarfbuzzShaper has
	// internal mutable state and is not safe for concurrent use, but
	// reusing one across sequential calls is efficient.
	shaperPool sync.Pool
}

// NewBackend creates a gotext backend with its own shaper pool.
func NewBackend() *Backend {
	return &Backend{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}
}

// Name implements backend.Backend.
func (*Backend) Name() string { return Name }

// AcquireFont implements backend.Backend.
func (b *Backend) AcquireFont(path string, pointSize int) (backend.Font, error) {
	if pointSize <= 0 {
		return nil, fmt.Errorf("gotext: point size must be positive, got %d", pointSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gotext: failed to read font file: %w", err)
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("gotext: failed to parse font: %w", err)
	}
	return &gtFont{owner: b, face: face, size: pointSize}, nil
}

// gtFont is an open face at a fixed point size.
type gtFont struct {
	owner *Backend
	face  *font.Face
	size  int
}

// shape runs HarfBuzz shaping over the whole string as one left-to-right
// run. Sizes are in pixels (72 DPI, so 1pt = 1px).
func (f *gtFont) shape(text string) shaping.Output {
	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      f.face,
		Size:      fixed.I(f.size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}
	hb := f.owner.shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	f.owner.shaperPool.Put(hb)
	return out
}

// Measure implements backend.Font.
func (f *gtFont) Measure(text string, style backend.Style) (w, h int) {
	out := f.shape(text)
	w, h, _ = dims(out, style)
	return w, h
}

// dims returns the styled bitmap dimensions and the baseline offset for a
// shaping output.
func dims(out shaping.Output, style backend.Style) (w, h, ascent int) {
	ascent = out.LineBounds.Ascent.Ceil()
	h = ascent + (-out.LineBounds.Descent).Ceil()
	w = out.Advance.Ceil()
	if w > 0 {
		if style.Bold() {
			w += boldExtra
		}
		if style.Italic() {
			w += glyphmask.ShearExtra(h)
		}
	}
	return w, h, ascent
}

// Rasterize implements backend.Font. All glyph outlines of the shaped run
// are accumulated into one coverage rasterizer, filled into an alpha mask,
// style-synthesized, and combined with the foreground color.
func (f *gtFont) Rasterize(text string, style backend.Style, fg color.RGBA) (*backend.Bitmap, error) {
	out := f.shape(text)
	w, h, ascent := dims(out, style)
	if w <= 0 || h <= 0 {
		return nil, errEmptyBitmap
	}

	var r vector.Rasterizer
	r.Reset(w, h)
	r.DrawOp = draw.Src

	scale := float32(f.size) / float32(f.face.Upem())
	pen := float32(0)
	baseline := float32(ascent)
	for _, g := range out.Glyphs {
		ox := pen + float32(fixedToFloat(g.XOffset))
		oy := baseline - float32(fixedToFloat(g.YOffset))
		f.appendOutline(&r, g.GlyphID, ox, oy, scale)
		pen += float32(fixedToFloat(g.XAdvance))
	}

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	applyStyle(mask, style, ascent)
	return glyphmask.BuildBitmap(mask, fg), nil
}

// appendOutline adds one glyph's outline segments to the rasterizer.
// Outline coordinates are font units with y up; the rasterizer wants
// pixels with y down, so points are scaled and flipped around the
// baseline.
func (f *gtFont) appendOutline(r *vector.Rasterizer, gid font.GID, ox, oy, scale float32) {
	data := f.face.GlyphData(gid)
	outline, ok := data.(font.GlyphOutline)
	if !ok {
		// Bitmap and SVG glyphs are not rasterizable here; skip them the
		// way a missing glyph is skipped.
		return
	}
	px := func(p font.SegmentPoint) (x, y float32) {
		return ox + p.X*scale, oy - p.Y*scale
	}
	for _, seg := range outline.Segments {
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			x, y := px(seg.Args[0])
			r.MoveTo(x, y)
		case ot.SegmentOpLineTo:
			x, y := px(seg.Args[0])
			r.LineTo(x, y)
		case ot.SegmentOpQuadTo:
			cx, cy := px(seg.Args[0])
			x, y := px(seg.Args[1])
			r.QuadTo(cx, cy, x, y)
		case ot.SegmentOpCubeTo:
			c1x, c1y := px(seg.Args[0])
			c2x, c2y := px(seg.Args[1])
			x, y := px(seg.Args[2])
			r.CubeTo(c1x, c1y, c2x, c2y, x, y)
		}
	}
}

// Close implements backend.Font. Close is idempotent.
func (f *gtFont) Close() error {
	f.face = nil
	return nil
}

// applyStyle runs mask-level style synthesis, shear before underline so
// the line stays straight.
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

// detectScript inspects the runes and returns the script of the first
// non-space character. Single-script UI strings are the expected input;
// mixed-script text shapes with the first script found.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
