package fontres

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/fontres/backend"
)

// Font is a font resource: one font file opened at one point size, with a
// style and a foreground color. It is the factory for Textures and the hub
// that keeps them synchronized: any state mutation synchronously
// re-renders every attached texture before the setter returns.
//
// A Font starts unloaded. Load acquires the backend handle; texture
// creation, measuring and rendering all require a loaded font.
//
// Font is safe for concurrent use: one internal lock serializes every
// mutate-and-broadcast pass, as well as texture renders triggered through
// SetText.
type Font struct {
	mu sync.Mutex

	path        string
	backendName string
	rb          backend.Backend // resolved at first Load
	handle      backend.Font    // non-nil iff loaded

	ptsize int
	style  Style
	col    Color

	// Attached textures, keyed by an opaque id. Entries hold no ownership:
	// Texture.Close removes its entry, and renders skip closed textures,
	// so the font never extends a texture's lifetime.
	textures  map[uint64]renderTarget
	nextTexID uint64

	subs      map[uint64]func(FontChangedEvent)
	nextSubID uint64

	closed bool
}

// New creates an unloaded Font for the font file at path.
//
// The backend is not consulted until Load, so New cannot fail; Open is the
// extension-checking alternative.
func New(path string, opts ...Option) *Font {
	cfg := defaultFontConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Font{
		path:        path,
		backendName: cfg.backendName,
		ptsize:      cfg.size,
		style:       cfg.style,
		col:         cfg.col,
		textures:    make(map[uint64]renderTarget),
		subs:        make(map[uint64]func(FontChangedEvent)),
	}
}

// Path returns the font file path this Font was created for.
func (f *Font) Path() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.path
}

// Load acquires the backend handle for (path, point size). It is
// idempotent: loading a loaded font does nothing and succeeds.
//
// Failures (no backend registered, unknown backend name, unreadable or
// malformed font file) are reported as *FontLoadError.
func (f *Font) Load() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loadLocked()
}

func (f *Font) loadLocked() error {
	if f.closed {
		return ErrFontClosed
	}
	if f.handle != nil {
		return nil
	}
	if f.rb == nil {
		var (
			b   backend.Backend
			err error
		)
		if f.backendName != "" {
			b, err = backend.ByName(f.backendName)
		} else {
			b, err = backend.Default()
		}
		if err != nil {
			return &FontLoadError{Path: f.path, Err: err}
		}
		f.rb = b
	}
	h, err := f.rb.AcquireFont(f.path, f.ptsize)
	if err != nil {
		return &FontLoadError{Path: f.path, Err: err}
	}
	f.handle = h
	Logger().Info("font loaded", "path", f.path, "size", f.ptsize, "backend", f.rb.Name())
	return nil
}

// Unload releases the backend handle. It is idempotent. Attached textures
// keep their current buffers; any render attempted while unloaded fails
// with ErrNotLoaded.
func (f *Font) Unload() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.unloadLocked()
}

func (f *Font) unloadLocked() error {
	if f.handle == nil {
		return nil
	}
	err := f.handle.Close()
	f.handle = nil
	Logger().Info("font unloaded", "path", f.path)
	return err
}

// SetSize stores the point size and, if the font is loaded, reloads the
// backend handle; backends require the size at initialization time and
// cannot resize in place. After a successful reload every attached texture
// is re-rendered synchronously so no buffer is left at the old size.
// Setting the current size again still reloads and re-renders.
func (f *Font) SetSize(pt int) error {
	if pt <= 0 {
		return fmt.Errorf("fontres: point size must be positive, got %d", pt)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrFontClosed
	}
	f.ptsize = pt
	if f.handle == nil {
		return nil
	}
	if err := f.unloadLocked(); err != nil {
		Logger().Warn("handle release failed during resize", "path", f.path, "error", err)
	}
	if err := f.loadLocked(); err != nil {
		return err
	}
	return f.broadcastLocked()
}

// Size returns the current point size.
func (f *Font) Size() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ptsize
}

// SetStyle stores the style flags and re-renders every attached texture.
func (f *Font) SetStyle(s Style) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrFontClosed
	}
	f.style = s
	return f.broadcastLocked()
}

// Style returns the current style flags.
func (f *Font) Style() Style {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.style
}

// SetColor stores the foreground color and re-renders every attached
// texture. Channels are clamped to [0, 1].
//
// The default color is white, which lets a downstream consumer tint the
// texture at composite time instead of re-rendering.
func (f *Font) SetColor(r, g, b float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrFontClosed
	}
	f.col = Color{R: r, G: g, B: b}.clamped()
	return f.broadcastLocked()
}

// Color returns the current foreground color.
func (f *Font) Color() Color {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.col
}

// Measure returns the pixel dimensions text would occupy if rendered with
// the current style. The font must be loaded.
func (f *Font) Measure(text string) (w, h int, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.handle == nil {
		return 0, 0, ErrNotLoaded
	}
	w, h = f.handle.Measure(normText(text), f.style)
	return w, h, nil
}

// NewTexture creates a dynamic texture bound to this font. Its buffer is
// resized to exactly fit every render; with no text yet it starts as a 1×1
// transparent buffer. The font must be loaded.
func (f *Font) NewTexture() (Texture, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return nil, ErrFontClosed
	}
	if f.handle == nil {
		return nil, ErrNotLoaded
	}
	t := &dynamicTexture{}
	f.attachLocked(&t.textureBase, t)
	if err := t.render(); err != nil {
		f.detachLocked(&t.textureBase)
		return nil, err
	}
	return t, nil
}

// NewFixedTexture creates a fixed-size texture bound to this font. Its
// dimensions never change: every render clears the buffer (to the
// background from WithBackground, or to zero) and composites the text into
// the top-left corner, clipped to w×h. The font must be loaded.
func (f *Font) NewFixedTexture(w, h int, opts ...TextureOption) (Texture, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("fontres: fixed texture dimensions must be positive, got %dx%d", w, h)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return nil, ErrFontClosed
	}
	if f.handle == nil {
		return nil, ErrNotLoaded
	}
	cfg := textureConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	t := &fixedTexture{bg: cfg.bg, hasBG: cfg.hasBG}
	t.width, t.height = w, h
	t.buf = make([]byte, w*h*4)
	f.attachLocked(&t.textureBase, t)
	if err := t.render(); err != nil {
		f.detachLocked(&t.textureBase)
		return nil, err
	}
	return t, nil
}

// Render re-renders a texture's current text. It is the direct entry to
// the render pass the change broadcast uses; SetText is the usual way in.
// Textures created by another font, or foreign Texture implementations,
// are rejected with *IncompatibleTextureError.
func (f *Font) Render(tex Texture) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	rt, ok := tex.(renderTarget)
	if !ok || rt.base().font != f {
		return &IncompatibleTextureError{}
	}
	if rt.base().isClosed() {
		return ErrTextureClosed
	}
	return rt.render()
}

// OnChange subscribes to font-changed events, fired after every state
// mutation and its broadcast. The returned cancel function removes the
// subscription; calling it more than once is harmless.
//
// Handlers run synchronously with the font's internal lock held and must
// not call back into the Font or its textures.
func (f *Font) OnChange(fn func(FontChangedEvent)) (cancel func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.nextSubID
	f.nextSubID++
	f.subs[id] = fn
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.subs, id)
	}
}

// Close unloads the font and detaches all textures and subscribers.
// Closed fonts reject further loads and mutations. Close is idempotent.
func (f *Font) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return nil
	}
	f.closed = true
	for _, t := range f.textures {
		t.base().markClosed()
	}
	f.textures = make(map[uint64]renderTarget)
	f.subs = make(map[uint64]func(FontChangedEvent))
	return f.unloadLocked()
}

// attachLocked registers a texture on the change-propagation bus.
// Caller holds f.mu.
func (f *Font) attachLocked(b *textureBase, self renderTarget) {
	b.font = f
	b.self = self
	b.id = f.nextTexID
	b.handlers = make(map[uint64]func(TextureChangedEvent))
	f.nextTexID++
	f.textures[b.id] = self
}

// detachLocked removes a texture from the bus and marks it closed.
// Detaching never fails, even for a texture that is already gone.
// Caller holds f.mu.
func (f *Font) detachLocked(b *textureBase) {
	b.markClosed()
	delete(f.textures, b.id)
}

// broadcastLocked re-renders every attached texture and then fires the
// font-changed event. All textures are attempted even when some fail; the
// failures are aggregated and returned to the mutating caller. The
// broadcast order between sibling textures is unspecified.
// Caller holds f.mu.
func (f *Font) broadcastLocked() error {
	var errs []error
	for _, t := range f.textures {
		if t.base().isClosed() {
			continue
		}
		if err := t.render(); err != nil {
			Logger().Warn("broadcast render failed", "path", f.path, "error", err)
			errs = append(errs, err)
		}
	}
	ev := FontChangedEvent{Font: f}
	for _, fn := range f.subs {
		fn(ev)
	}
	return errors.Join(errs...)
}
