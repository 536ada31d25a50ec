package main

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/image/font/gofont/goregular"
)

func testRasterizer(t *testing.T, themes *ThemeFeed) *rasterizer {
	t.Helper()
	fonts, err := newFontSet([][]byte{goregular.TTF})
	if err != nil {
		t.Fatalf("newFontSet: %v", err)
	}
	r, err := newRasterizer(fonts, themes)
	if err != nil {
		t.Fatalf("newRasterizer: %v", err)
	}
	return r
}

func isWhite(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r == 0xffff && g == 0xffff && b == 0xffff
}

func TestRasterizeScale(t *testing.T) {
	r := testRasterizer(t, nil)
	img := r.Rasterize(NewScene(), exportScale)
	if b := img.Bounds(); b.Dx() != paperWidth*exportScale || b.Dy() != paperHeight*exportScale {
		t.Errorf("Expected %dx%d, got %dx%d", paperWidth*exportScale, paperHeight*exportScale, b.Dx(), b.Dy())
	}
}

func TestRasterizeHidesCursor(t *testing.T) {
	r := testRasterizer(t, nil)
	s := NewScene()
	s.Add(cursorElement(20, 20))
	img := r.Rasterize(s, 1)

	for y := 18; y < 54; y++ {
		for x := 18; x < 26; x++ {
			if !isWhite(img.At(x, y)) {
				t.Fatalf("Expected white paper at (%d,%d), got %v", x, y, img.At(x, y))
			}
		}
	}
}

func TestRasterizeDrawsGlyphs(t *testing.T) {
	r := testRasterizer(t, nil)
	s := newSession()
	s.doc.Reset([]CharacterEntry{{Char: "W", Color: "#FF0000"}}, 1)
	NewRenderer(paperWidth, nil).Render(s.scene, s.doc, ModeWriting, "")
	img := r.Rasterize(s.scene, 1)

	red := false
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y && !red; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			cr, cg, cb, _ := img.At(x, y).RGBA()
			if cr > 0xc000 && cg < 0x4000 && cb < 0x4000 {
				red = true
				break
			}
		}
	}
	if !red {
		t.Error("Expected red glyph pixels")
	}
}

func TestExportPNG(t *testing.T) {
	r := testRasterizer(t, nil)
	path := filepath.Join(t.TempDir(), letterFilename(7))
	if err := r.ExportPNG(NewScene(), path, exportScale); err != nil {
		t.Fatalf("ExportPNG: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.Width != 1000 || cfg.Height != 500 {
		t.Errorf("Expected 1000x500, got %dx%d", cfg.Width, cfg.Height)
	}
}

func TestLetterFilename(t *testing.T) {
	if got := letterFilename(12); got != "Letter_12.png" {
		t.Errorf("Expected Letter_12.png, got %s", got)
	}
}

func TestThumbnailRows(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, paperWidth, paperHeight))
	lines := thumbnail(img, 100)
	if len(lines) != 25 {
		t.Errorf("Expected 25 half-block rows, got %d", len(lines))
	}
	if thumbnail(img, 0) != nil {
		t.Error("Expected nil for zero columns")
	}
}

func TestPreviewSaveCopiesPath(t *testing.T) {
	m, _, _ := newTestModel(t)
	var copied string
	m.copyText = func(s string) error {
		copied = s
		return nil
	}
	m.setMode(ModeWriting)
	typeRunes(m, "hey")

	m.openPreview()
	if m.overlay != OverlayPreview || len(m.preview) == 0 {
		t.Fatalf("Expected preview overlay with a thumbnail")
	}
	m.handleOverlayKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})

	want := filepath.Join(m.config.SaveDirectory, "Letter_3.png")
	if copied != want {
		t.Errorf("Expected clipboard %q, got %q", want, copied)
	}
	if _, err := os.Stat(want); err != nil {
		t.Errorf("Expected exported file: %v", err)
	}
	if !strings.HasSuffix(m.successMessage, want) {
		t.Errorf("Expected success message with path, got %q", m.successMessage)
	}
}
