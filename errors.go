package fontres

import "errors"

// Sentinel errors.
var (
	// ErrNotLoaded is returned when a render, measure or texture-creation
	// operation is attempted before a successful Load.
	ErrNotLoaded = errors.New("fontres: font not loaded")

	// ErrTextureClosed is returned by operations on a closed texture.
	ErrTextureClosed = errors.New("fontres: texture closed")

	// ErrFontClosed is returned by operations on a closed font.
	ErrFontClosed = errors.New("fontres: font closed")
)

// FontLoadError indicates the backend could not open a font file, either
// because the backend itself is unavailable or the file is unreadable.
type FontLoadError struct {
	Path string
	Err  error
}

func (e *FontLoadError) Error() string {
	return "fontres: failed to load font " + e.Path + ": " + e.Err.Error()
}

func (e *FontLoadError) Unwrap() error { return e.Err }

// RenderError indicates the backend failed to rasterize a non-empty
// string. It propagates to whichever call triggered the render, including
// indirectly through a state-change broadcast.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return "fontres: render failed: " + e.Err.Error()
}

func (e *RenderError) Unwrap() error { return e.Err }

// IncompatibleTextureError indicates a texture passed to Font.Render was
// not created by that font.
type IncompatibleTextureError struct{}

func (e *IncompatibleTextureError) Error() string {
	return "fontres: texture not created by this font"
}

// UnsupportedExtensionError indicates Open was given a path whose file
// extension has no registered constructor.
type UnsupportedExtensionError struct {
	Ext string
}

func (e *UnsupportedExtensionError) Error() string {
	return "fontres: no font constructor registered for extension " + e.Ext
}
