package backend

import "strings"

// Style is a bit set of font style flags. Flags combine with bitwise OR:
//
//	backend.StyleBold | backend.StyleItalic
//
// The zero value is StyleNormal.
type Style uint8

const (
	// StyleNormal is the unstyled rendering.
	StyleNormal Style = 0

	// StyleBold thickens glyphs by one pixel.
	StyleBold Style = 1 << 0

	// StyleItalic shears glyphs to the right.
	StyleItalic Style = 1 << 1

	// StyleUnderline draws a line under the baseline.
	StyleUnderline Style = 1 << 2
)

// Bold reports whether the bold flag is set.
func (s Style) Bold() bool { return s&StyleBold != 0 }

// Italic reports whether the italic flag is set.
func (s Style) Italic() bool { return s&StyleItalic != 0 }

// Underline reports whether the underline flag is set.
func (s Style) Underline() bool { return s&StyleUnderline != 0 }

// String returns a string representation of the style.
func (s Style) String() string {
	if s == StyleNormal {
		return "Normal"
	}
	var parts []string
	if s.Bold() {
		parts = append(parts, "Bold")
	}
	if s.Italic() {
		parts = append(parts, "Italic")
	}
	if s.Underline() {
		parts = append(parts, "Underline")
	}
	if len(parts) == 0 {
		return "Unknown"
	}
	return strings.Join(parts, "|")
}
