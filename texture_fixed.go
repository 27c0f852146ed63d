package fontres

import (
	"image"

	"github.com/gogpu/fontres/internal/blit"
)

// fixedTexture keeps its construction-time dimensions forever and
// composites each render into the existing buffer.
type fixedTexture struct {
	textureBase

	bg    RGBA
	hasBG bool
}

// SetText implements Texture.
func (t *fixedTexture) SetText(s string) error {
	return t.font.setText(t, s)
}

// Background returns the configured background color, if any.
func (t *fixedTexture) Background() (RGBA, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.bg, t.hasBG
}

// SetBackground replaces the background color and re-renders the texture.
func (t *fixedTexture) SetBackground(c RGBA) error {
	f := t.font
	f.mu.Lock()
	defer f.mu.Unlock()
	if t.isClosed() {
		return ErrTextureClosed
	}
	t.mu.Lock()
	t.bg = c.clamped()
	t.hasBG = true
	t.mu.Unlock()
	return t.render()
}

// render implements the fixed-variant render pass. The buffer is always
// cleared first so partial overwrites never leave stale pixels, then text
// is blitted into the top-left corner, clipped to the fixed dimensions.
// A background with non-zero alpha is the clear color and selects
// straight-alpha source-over; a zero-alpha background (or none) clears to
// zero and selects direct overwrite.
// Called with the font lock held.
func (t *fixedTexture) render() error {
	f := t.font
	if f.handle == nil {
		return ErrNotLoaded
	}

	t.mu.RLock()
	text := t.text
	t.mu.RUnlock()

	var clear [4]byte
	if t.hasBG && t.bg.A > 0 {
		clear = t.bg.bytes()
	}

	if text == "" {
		t.mu.Lock()
		blit.Fill(t.buf, clear)
		t.mu.Unlock()
		t.fireChanged(image.Rect(0, 0, t.width, t.height))
		return nil
	}

	pix, w, h, err := f.rasterize(text)
	if err != nil {
		return err
	}

	t.mu.Lock()
	blit.Fill(t.buf, clear)
	if t.hasBG && t.bg.A > 0 {
		w, h = blit.Over(t.buf, t.width, t.height, pix, w, h)
	} else {
		w, h = blit.Copy(t.buf, t.width, t.height, pix, w, h)
	}
	t.mu.Unlock()

	Logger().Debug("fixed texture rendered", "path", f.path, "w", w, "h", h)
	t.fireChanged(image.Rect(0, 0, w, h))
	return nil
}
