// Package fontres renders text strings into pixel buffers and keeps those
// buffers synchronized with the state of the font that produced them.
//
// A Font wraps one font file at one point size. It creates Textures: pixel
// buffers bound to the font, each holding a single line of text. Whenever
// the font's point size, style or color changes, or a texture's own text
// changes, the texture's buffer is re-rendered synchronously and its change
// event fires, carrying a dirty rectangle for partial uploads.
//
// Textures come in two variants. A dynamic texture resizes its buffer to
// exactly fit every render; a fixed texture keeps its construction-time
// dimensions forever and composites new text into the existing buffer.
//
// Glyph rasterization is delegated to a pluggable backend. Backends
// self-register, so programs blank-import the one they want, in the same
// way database/sql drivers are loaded:
//
//	import (
//	    "github.com/gogpu/fontres"
//	    _ "github.com/gogpu/fontres/backend/opentype"
//	)
//
//	func main() {
//	    f, err := fontres.Open("ui.ttf")
//	    if err != nil { ... }
//	    if err := f.Load(); err != nil { ... }
//	    defer f.Close()
//
//	    tex, err := f.NewTexture()
//	    if err != nil { ... }
//	    defer tex.Close()
//
//	    tex.OnChange(func(ev fontres.TextureChangedEvent) {
//	        upload(ev.Texture.Buffer(), ev.Rect)
//	    })
//	    if err := tex.SetText("Hi"); err != nil { ... }
//	}
//
// All texture buffers are 32-bit RGBA with straight (non-premultiplied)
// alpha, 4 bytes per pixel in red, green, blue, alpha order regardless of
// the host byte order.
//
// Every mutation is synchronous: when a setter returns, every attached
// texture is already up to date and every change handler has run. A Font
// serializes its mutations and renders with one internal lock; change
// handlers run while that lock is held and must not call back into the
// font.
package fontres
