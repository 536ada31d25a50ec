package main

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func writeThemePNG(t *testing.T, dir, id string, c color.Color) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 50, 25))
	for y := 0; y < 25; y++ {
		for x := 0; x < 50; x++ {
			img.Set(x, y, c)
		}
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(filepath.Join(dir, id+".png"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestThemeFeed(t *testing.T) {
	dir := t.TempDir()
	writeThemePNG(t, dir, "sky", color.RGBA{B: 0xff, A: 0xff})
	writeThemePNG(t, dir, "grass", color.RGBA{G: 0xff, A: 0xff})
	feed := NewThemeFeed(dir)

	ids := feed.List()
	if len(ids) != 2 || ids[0] != "grass" || ids[1] != "sky" {
		t.Errorf("Expected [grass sky], got %v", ids)
	}

	img, err := feed.Image("sky")
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	if b := img.Bounds(); b.Dx() != paperWidth || b.Dy() != paperHeight {
		t.Errorf("Expected theme scaled to %dx%d, got %dx%d", paperWidth, paperHeight, b.Dx(), b.Dy())
	}

	if _, err := feed.Image("lava"); !errors.Is(err, errUnknownTheme) {
		t.Errorf("Expected errUnknownTheme, got %v", err)
	}
}

func TestThemeOverlaySelectsAndUndoes(t *testing.T) {
	m, _, _ := newTestModel(t)
	writeThemePNG(t, m.config.AssetDir("themes"), "sky", color.RGBA{B: 0xff, A: 0xff})

	m.openThemes()
	if len(m.themeList) != 2 || m.themeList[0] != "" {
		t.Fatalf("Expected no-theme entry plus sky, got %v", m.themeList)
	}
	m.handleOverlayKey(tea.KeyMsg{Type: tea.KeyDown})
	m.handleOverlayKey(tea.KeyMsg{Type: tea.KeyEnter})

	if m.session.theme != "sky" {
		t.Fatalf("Expected sky, got %q", m.session.theme)
	}
	if m.session.scene.Count(KindBackground) != 1 {
		t.Errorf("Expected a background element")
	}
	if m.overlay != OverlayNone {
		t.Errorf("Expected overlay closed")
	}

	m.session.undo()
	if m.session.theme != "" {
		t.Errorf("Expected theme cleared by undo, got %q", m.session.theme)
	}
}

func TestRasterizeDrawsTheme(t *testing.T) {
	dir := t.TempDir()
	writeThemePNG(t, dir, "sky", color.RGBA{B: 0xff, A: 0xff})
	r := testRasterizer(t, NewThemeFeed(dir))

	s := NewScene()
	s.Add(Element{Kind: KindBackground, Theme: "sky", Z: zBackground})
	img := r.Rasterize(s, 1)

	cr, cg, cb, _ := img.At(250, 125).RGBA()
	if cr > 0x1000 || cg > 0x1000 || cb < 0xf000 {
		t.Errorf("Expected blue background, got %x %x %x", cr, cg, cb)
	}
}
