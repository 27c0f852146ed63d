package fontres

import "image"

// FontChangedEvent is delivered to Font.OnChange subscribers after any
// state mutation (size, style, color) and its broadcast re-render.
type FontChangedEvent struct {
	// Font is the font whose state changed.
	Font *Font
}

// TextureChangedEvent is delivered to Texture.OnChange subscribers after
// every successful render, including the empty-text fast path.
type TextureChangedEvent struct {
	// Texture is the texture whose buffer changed. The event does not
	// extend the texture's lifetime; consumers must not retain it past
	// the texture's Close.
	Texture Texture

	// Rect is the region of the buffer that changed in this render.
	// Consumers can use it for partial uploads; uploading the full buffer
	// is always correct.
	Rect image.Rectangle
}
