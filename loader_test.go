package fontres

import (
	"errors"
	"sort"
	"testing"
)

func TestOpenKnownExtensions(t *testing.T) {
	for _, path := range []string{"fonts/sans.ttf", "fonts/Serif.OTF"} {
		f, err := Open(path)
		if err != nil {
			t.Fatalf("Open(%q) = %v", path, err)
		}
		if got := f.Path(); got != path {
			t.Errorf("Path() = %q, want %q", got, path)
		}
	}
}

func TestOpenUnknownExtension(t *testing.T) {
	_, err := Open("image.png")
	var extErr *UnsupportedExtensionError
	if !errors.As(err, &extErr) {
		t.Fatalf("Open() = %v, want *UnsupportedExtensionError", err)
	}
	if extErr.Ext != "png" {
		t.Errorf("Ext = %q, want %q", extErr.Ext, "png")
	}
}

func TestRegisterExtension(t *testing.T) {
	called := ""
	RegisterExtension(".FoN", func(path string) (*Font, error) {
		called = path
		return New(path), nil
	})
	if _, err := Open("legacy.fon"); err != nil {
		t.Fatalf("Open() = %v", err)
	}
	if called != "legacy.fon" {
		t.Errorf("constructor called with %q, want %q", called, "legacy.fon")
	}
}

func TestExtensions(t *testing.T) {
	exts := Extensions()
	if !sort.StringsAreSorted(exts) {
		t.Errorf("Extensions() = %v, want sorted", exts)
	}
	want := map[string]bool{"ttf": false, "otf": false}
	for _, ext := range exts {
		if _, ok := want[ext]; ok {
			want[ext] = true
		}
	}
	for ext, seen := range want {
		if !seen {
			t.Errorf("Extensions() missing %q", ext)
		}
	}
}
