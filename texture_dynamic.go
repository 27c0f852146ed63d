package fontres

import "image"

// dynamicTexture resizes its buffer to exactly fit each render.
type dynamicTexture struct {
	textureBase
}

// SetText implements Texture.
func (t *dynamicTexture) SetText(s string) error {
	return t.font.setText(t, s)
}

// render implements the dynamic-variant render pass: the old buffer is
// discarded and replaced by one matching the new bitmap exactly. Empty
// text collapses to a 1×1 fully transparent buffer.
// Called with the font lock held.
func (t *dynamicTexture) render() error {
	f := t.font
	if f.handle == nil {
		return ErrNotLoaded
	}

	t.mu.RLock()
	text := t.text
	t.mu.RUnlock()

	if text == "" {
		t.mu.Lock()
		t.buf = make([]byte, 4)
		t.width, t.height = 1, 1
		t.mu.Unlock()
		t.fireChanged(image.Rect(0, 0, 1, 1))
		return nil
	}

	pix, w, h, err := f.rasterize(text)
	if err != nil {
		return err
	}

	t.mu.Lock()
	t.buf = pix
	t.width, t.height = w, h
	t.mu.Unlock()

	Logger().Debug("dynamic texture rendered", "path", f.path, "w", w, "h", h)
	t.fireChanged(image.Rect(0, 0, w, h))
	return nil
}
