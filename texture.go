package fontres

import (
	"image"
	"sync"
)

// textureDepth is the color depth of every buffer this engine renders.
const textureDepth = 32

// Texture is a pixel buffer bound to a Font, holding the rendering of a
// single line of text. Implementations come in two variants: dynamic
// (buffer resized to fit each render, from Font.NewTexture) and fixed
// (immutable dimensions, from Font.NewFixedTexture).
//
// A texture keeps its Font reachable for as long as it lives; the font
// only holds a detachable bus entry back, removed by Close.
type Texture interface {
	// Width returns the buffer width in pixels.
	Width() int

	// Height returns the buffer height in pixels.
	Height() int

	// Depth returns the color depth in bits per pixel (always 32).
	Depth() int

	// ColorFormat classifies the buffer layout by depth (always RGBA).
	ColorFormat() ColorFormat

	// Buffer returns the live pixel buffer: Width*Height*4 bytes, rows
	// top to bottom, 4 bytes per pixel in R, G, B, A order with straight
	// alpha. Callers must treat it as read-only; for dynamic textures it
	// is replaced wholesale by the next render.
	Buffer() []byte

	// Text returns the most recently set text.
	Text() string

	// SetText stores the text and synchronously re-renders the buffer.
	SetText(s string) error

	// Font returns the owning font.
	Font() *Font

	// OnChange subscribes to texture-changed events, fired after every
	// successful render. Handlers run with the font's lock held and must
	// not call back into the font or texture. The returned cancel
	// function removes the subscription.
	OnChange(fn func(TextureChangedEvent)) (cancel func())

	// Close detaches the texture from its font's change bus. Close always
	// succeeds and is idempotent; other operations fail with
	// ErrTextureClosed afterwards.
	Close() error
}

// renderTarget is the bus-facing side of a texture: what the font's
// broadcast needs from an attached texture. render is always invoked with
// the owning font's lock held.
type renderTarget interface {
	Texture
	base() *textureBase
	render() error
}

// textureBase carries the state and behavior shared by both texture
// variants. The font's lock serializes all writers; the local mutex lets
// frontend readers see consistent width/height/buffer triples without
// touching the font.
type textureBase struct {
	font *Font
	id   uint64
	self Texture

	mu       sync.RWMutex
	width    int
	height   int
	buf      []byte
	text     string
	closed   bool
	handlers map[uint64]func(TextureChangedEvent)
	nextSub  uint64
}

func (b *textureBase) base() *textureBase { return b }

// Width implements Texture.
func (b *textureBase) Width() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.width
}

// Height implements Texture.
func (b *textureBase) Height() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.height
}

// Depth implements Texture.
func (b *textureBase) Depth() int { return textureDepth }

// ColorFormat implements Texture.
func (b *textureBase) ColorFormat() ColorFormat { return colorFormatForDepth(textureDepth) }

// Buffer implements Texture.
func (b *textureBase) Buffer() []byte {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.buf
}

// Text implements Texture.
func (b *textureBase) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.text
}

// Font implements Texture.
func (b *textureBase) Font() *Font { return b.font }

// OnChange implements Texture.
func (b *textureBase) OnChange(fn func(TextureChangedEvent)) (cancel func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextSub
	b.nextSub++
	b.handlers[id] = fn
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.handlers, id)
	}
}

// Close implements Texture.
func (b *textureBase) Close() error {
	f := b.font
	f.mu.Lock()
	defer f.mu.Unlock()
	if b.isClosed() {
		return nil
	}
	f.detachLocked(b)
	return nil
}

// markClosed flags the texture so pending bus entries skip it.
func (b *textureBase) markClosed() {
	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()
}

func (b *textureBase) isClosed() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.closed
}

// fireChanged delivers the texture-changed event for the given dirty
// rectangle. Called with the font lock held, after the buffer is updated.
func (b *textureBase) fireChanged(rect image.Rectangle) {
	b.mu.RLock()
	handlers := make([]func(TextureChangedEvent), 0, len(b.handlers))
	for _, fn := range b.handlers {
		handlers = append(handlers, fn)
	}
	b.mu.RUnlock()

	ev := TextureChangedEvent{Texture: b.self, Rect: rect}
	for _, fn := range handlers {
		fn(ev)
	}
}

// setText is the shared SetText implementation: store the text under the
// font lock, then run the variant's render pass.
func (f *Font) setText(t renderTarget, s string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b := t.base()
	if b.isClosed() {
		return ErrTextureClosed
	}
	b.mu.Lock()
	b.text = s
	b.mu.Unlock()
	return t.render()
}
