package gotext

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/fontres/backend"
)

func fontFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "goregular.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o644); err != nil {
		t.Fatalf("writing test font: %v", err)
	}
	return path
}

func acquire(t *testing.T, size int) backend.Font {
	t.Helper()
	f, err := NewBackend().AcquireFont(fontFile(t), size)
	if err != nil {
		t.Fatalf("AcquireFont() = %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func TestRegistered(t *testing.T) {
	b, err := backend.ByName(Name)
	if err != nil {
		t.Fatalf("ByName(%q) = %v", Name, err)
	}
	if got := b.Name(); got != Name {
		t.Errorf("Name() = %q, want %q", got, Name)
	}
}

func TestAcquireFontInvalidSize(t *testing.T) {
	if _, err := NewBackend().AcquireFont("x.ttf", -1); err == nil {
		t.Error("AcquireFont(size=-1) = nil, want error")
	}
}

func TestAcquireFontMissingFile(t *testing.T) {
	_, err := NewBackend().AcquireFont(filepath.Join(t.TempDir(), "missing.ttf"), 12)
	if err == nil {
		t.Error("AcquireFont(missing) = nil, want error")
	}
}

func TestAcquireFontMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.ttf")
	if err := os.WriteFile(path, []byte("not a font"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewBackend().AcquireFont(path, 12); err == nil {
		t.Error("AcquireFont(malformed) = nil, want error")
	}
}

func TestMeasure(t *testing.T) {
	f := acquire(t, 16)
	w, h := f.Measure("Hello", backend.StyleNormal)
	if w <= 0 || h <= 0 {
		t.Fatalf("Measure() = (%d, %d), want positive", w, h)
	}
	w2, _ := f.Measure("Hello, world", backend.StyleNormal)
	if w2 <= w {
		t.Errorf("longer text measured %d, want > %d", w2, w)
	}
}

func TestMeasureScalesWithSize(t *testing.T) {
	small := acquire(t, 10)
	large := acquire(t, 30)
	ws, hs := small.Measure("Hello", backend.StyleNormal)
	wl, hl := large.Measure("Hello", backend.StyleNormal)
	if wl <= ws || hl <= hs {
		t.Errorf("30pt = (%d, %d), want larger than 10pt (%d, %d)", wl, hl, ws, hs)
	}
}

func TestMeasureStyleWidens(t *testing.T) {
	f := acquire(t, 16)
	w, _ := f.Measure("Hello", backend.StyleNormal)
	wb, _ := f.Measure("Hello", backend.StyleBold)
	wi, _ := f.Measure("Hello", backend.StyleItalic)
	if wb <= w {
		t.Errorf("bold width = %d, want > %d", wb, w)
	}
	if wi <= w {
		t.Errorf("italic width = %d, want > %d", wi, w)
	}
}

func TestRasterize(t *testing.T) {
	f := acquire(t, 16)
	fg := color.RGBA{R: 0, G: 128, B: 255, A: 255}
	bmp, err := f.Rasterize("Hi", backend.StyleNormal, fg)
	if err != nil {
		t.Fatalf("Rasterize() = %v", err)
	}
	if bmp.BitsPerPixel != 32 {
		t.Errorf("BitsPerPixel = %d, want 32", bmp.BitsPerPixel)
	}
	if bmp.Masks != backend.RGBA8888 {
		t.Errorf("Masks = %+v, want RGBA8888", bmp.Masks)
	}
	w, h := f.Measure("Hi", backend.StyleNormal)
	if bmp.Width != w || bmp.Height != h {
		t.Errorf("bitmap = %dx%d, Measure = %dx%d", bmp.Width, bmp.Height, w, h)
	}

	inked := false
	for o := 0; o+3 < len(bmp.Pix); o += 4 {
		if bmp.Pix[o+3] == 0 {
			continue
		}
		inked = true
		if bmp.Pix[o] != 0 || bmp.Pix[o+1] != 128 || bmp.Pix[o+2] != 255 {
			t.Fatalf("inked pixel color = %v, want [0 128 255]", bmp.Pix[o:o+3])
		}
	}
	if !inked {
		t.Error("no inked pixels in rasterized text")
	}
}

func TestRasterizeEmpty(t *testing.T) {
	f := acquire(t, 16)
	if _, err := f.Rasterize("", backend.StyleNormal, color.RGBA{A: 255}); err == nil {
		t.Error("Rasterize(\"\") = nil, want error")
	}
}

func TestRasterizeUnderline(t *testing.T) {
	f := acquire(t, 16)
	fg := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	plain, err := f.Rasterize("gap", backend.StyleNormal, fg)
	if err != nil {
		t.Fatalf("Rasterize() = %v", err)
	}
	under, err := f.Rasterize("gap", backend.StyleUnderline, fg)
	if err != nil {
		t.Fatalf("Rasterize(underline) = %v", err)
	}
	if cov := coverage(under); cov <= coverage(plain) {
		t.Errorf("underline coverage = %d, want > %d", cov, coverage(plain))
	}
}

func TestShaperPoolReuse(t *testing.T) {
	// Sequential rasterizations share pooled shapers without corrupting
	// output: the same text must produce identical bitmaps.
	f := acquire(t, 14)
	fg := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	first, err := f.Rasterize("repeatable", backend.StyleNormal, fg)
	if err != nil {
		t.Fatalf("Rasterize() = %v", err)
	}
	for i := 0; i < 3; i++ {
		again, err := f.Rasterize("repeatable", backend.StyleNormal, fg)
		if err != nil {
			t.Fatalf("Rasterize() = %v", err)
		}
		if again.Width != first.Width || again.Height != first.Height {
			t.Fatalf("run %d = %dx%d, want %dx%d", i, again.Width, again.Height, first.Width, first.Height)
		}
		if string(again.Pix) != string(first.Pix) {
			t.Fatalf("run %d produced different pixels", i)
		}
	}
}

func TestDetectScript(t *testing.T) {
	latin := detectScript([]rune("  Hello"))
	if latin != detectScript([]rune("x")) {
		t.Errorf("leading spaces changed script detection: %v", latin)
	}
	// All-whitespace input falls back to Latin.
	if got := detectScript([]rune("   ")); got != detectScript([]rune("a")) {
		t.Errorf("whitespace-only script = %v, want Latin", got)
	}
}

func TestApplyStyleUnderlineClampsToMask(t *testing.T) {
	// An ascent equal to the mask height leaves no room below the
	// baseline; the band must clamp inside instead of vanishing.
	mask := image.NewAlpha(image.Rect(0, 0, 4, 10))
	applyStyle(mask, backend.StyleUnderline, 10)

	bottom := mask.Pix[9*mask.Stride : 9*mask.Stride+4]
	for x, v := range bottom {
		if v != 0xFF {
			t.Fatalf("bottom row pixel %d = %d, want 255", x, v)
		}
	}
}

func TestCloseIdempotent(t *testing.T) {
	f, err := NewBackend().AcquireFont(fontFile(t), 12)
	if err != nil {
		t.Fatalf("AcquireFont() = %v", err)
	}
	if err := f.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
	if err := f.Close(); err != nil {
		t.Errorf("second Close() = %v", err)
	}
}

func coverage(b *backend.Bitmap) int {
	total := 0
	for o := 3; o < len(b.Pix); o += 4 {
		total += int(b.Pix[o])
	}
	return total
}
