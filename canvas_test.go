package main

import (
	"image"
	"image/color"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func renderedCanvas(text string, cursor int, mode Mode) *Canvas {
	s := newSession()
	s.doc.Reset(entriesOf(text), cursor)
	NewRenderer(paperWidth, newCellMeasurer()).Render(s.scene, s.doc, mode, "")
	return NewCanvas(s.scene, nil, "#FFFFFF")
}

func TestCanvasProjectsGlyphs(t *testing.T) {
	c := renderedCanvas("AB\nC", 4, ModeWriting)
	lines := c.Plain()

	if len(lines) != paperRows {
		t.Fatalf("Expected %d rows, got %d", paperRows, len(lines))
	}
	if !strings.HasPrefix(lines[0], " AB ") {
		t.Errorf("Expected row 0 to start with %q, got %q", " AB ", lines[0])
	}
	if !strings.HasPrefix(lines[1], " C ") {
		t.Errorf("Expected row 1 to start with %q, got %q", " C ", lines[1])
	}

	row, col, ok := c.CursorCell()
	if !ok || row != 1 || col != 2 {
		t.Errorf("Expected cursor at (1,2), got (%d,%d) %v", row, col, ok)
	}
}

func TestCanvasWideGlyphs(t *testing.T) {
	c := renderedCanvas("あい", 0, ModeSetting)
	line := c.Plain()[0]
	if !strings.HasPrefix(line, " あい ") {
		t.Errorf("Expected wide glyphs side by side, got %q", line)
	}
	if _, _, ok := c.CursorCell(); ok {
		t.Error("Expected no cursor in setting mode")
	}
}

func TestCanvasIgnoresOffPaper(t *testing.T) {
	s := NewScene()
	s.Add(Element{Kind: KindGlyph, Text: "X", X: 9999, Y: 9999, Z: zGlyph})
	s.Add(Element{Kind: KindSticker, Text: "⭐", X: -50, Y: 0, Z: zSticker})
	c := NewCanvas(s, nil, "")
	for _, line := range c.Plain() {
		if strings.TrimSpace(line) != "" {
			t.Errorf("Expected empty canvas, got %q", line)
		}
	}
}

func TestCanvasSamplesBackground(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, paperWidth, paperHeight))
	for y := 0; y < paperHeight; y++ {
		for x := 0; x < paperWidth; x++ {
			img.Set(x, y, color.RGBA{R: 0xff, A: 0xff})
		}
	}
	s := NewScene()
	s.Add(Element{Kind: KindBackground, Theme: "red", Z: zBackground})
	c := NewCanvas(s, img, "#FFFFFF")

	if got := c.cells[0][0].bg; got != "#ff0000" {
		t.Errorf("Expected sampled #ff0000, got %s", got)
	}
}

func TestLetterRoundTrip(t *testing.T) {
	want := letter{
		Entries: []CharacterEntry{
			{Char: "a", Color: "#FF0000"},
			{Char: ",", Color: "#000000"},
			{Char: "\n", Color: "#000000"},
			{Char: "\"", Color: "#00FF00"},
			{Char: "あ", Color: "#0000FF"},
		},
		Cursor: 3,
		Stickers: []StickerEntry{
			{ID: 0, Glyph: "❤️", X: 12.5, Y: 40},
			{ID: 4, Glyph: "🦕", X: 300, Y: 200},
		},
		Theme: "my sky",
	}
	path := filepath.Join(t.TempDir(), "kid.letter")
	if err := want.SaveToFile(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := loadLetter(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestLoadLetterRejectsGarbage(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		content string
	}{
		{"No header", "hello\n"},
		{"Unknown section", "LETTER\nFOO:1\n"},
		{"Truncated", "LETTER\nENTRIES:2\n#000000,\"a\"\n"},
		{"Bad entry", "LETTER\nENTRIES:1\nnocomma\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tt.name, " ", "_"))
			if err := writeTestFile(path, tt.content); err != nil {
				t.Fatal(err)
			}
			if _, err := loadLetter(path); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}
