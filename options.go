package fontres

// DefaultPointSize is the point size a Font starts with when none is
// configured.
const DefaultPointSize = 12

// fontConfig holds construction-time font configuration.
type fontConfig struct {
	backendName string
	size        int
	style       Style
	col         Color
}

// defaultFontConfig returns the default font configuration.
func defaultFontConfig() fontConfig {
	return fontConfig{
		size:  DefaultPointSize,
		style: StyleNormal,
		col:   White,
	}
}

// Option configures a Font at construction.
type Option func(*fontConfig)

// WithBackend selects a registered rasterization backend by name instead
// of the highest-priority one.
func WithBackend(name string) Option {
	return func(c *fontConfig) { c.backendName = name }
}

// WithSize sets the initial point size. Non-positive sizes are ignored and
// the default is kept.
func WithSize(pt int) Option {
	return func(c *fontConfig) {
		if pt > 0 {
			c.size = pt
		}
	}
}

// WithStyle sets the initial style flags.
func WithStyle(s Style) Option {
	return func(c *fontConfig) { c.style = s }
}

// WithColor sets the initial foreground color. Channels are clamped to
// [0, 1].
func WithColor(r, g, b float64) Option {
	return func(c *fontConfig) { c.col = Color{R: r, G: g, B: b}.clamped() }
}

// textureConfig holds construction-time fixed-texture configuration.
type textureConfig struct {
	bg    RGBA
	hasBG bool
}

// TextureOption configures a fixed texture at construction.
type TextureOption func(*textureConfig)

// WithBackground sets the background color a fixed texture is cleared to
// before each render. The background's alpha also selects the compositing
// mode: zero alpha clears to transparent black and rendered text
// overwrites the buffer directly, non-zero alpha clears to the background
// and blends text with source-over. Channels are clamped to [0, 1].
func WithBackground(c RGBA) TextureOption {
	return func(tc *textureConfig) {
		tc.bg = c.clamped()
		tc.hasBG = true
	}
}
