package main

import (
	"fmt"
	"log"
	"os"

	"github.com/golang/freetype/truetype"
	"github.com/mattn/go-runewidth"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Measurer reports the advance of a glyph in paper pixels.
type Measurer interface {
	GlyphWidth(s string) float64
}

// cellMeasurer gives every glyph a whole number of terminal cells so the
// layout projects onto the terminal without overlap.
type cellMeasurer struct {
	cell float64
}

func newCellMeasurer() cellMeasurer {
	return cellMeasurer{cell: cellWidthPx}
}

func (c cellMeasurer) GlyphWidth(s string) float64 {
	w := runewidth.StringWidth(s)
	if w < 1 {
		w = 1
	}
	return float64(w) * c.cell
}

// systemFontPaths lists TrueType outline fonts that cover kana, CJK
// punctuation or emoji. Collections (.ttc), CFF outlines and colour bitmap
// emoji cannot be parsed by truetype and are not listed.
var systemFontPaths = []string{
	"/usr/share/fonts/truetype/noto/NotoSansJP-Regular.ttf",
	"/usr/share/fonts/truetype/fonts-japanese-gothic.ttf",
	"/usr/share/fonts/opentype/ipafont-gothic/ipag.ttf",
	"/usr/share/fonts/opentype/ipaexfont-gothic/ipaexg.ttf",
	"/usr/share/fonts/truetype/takao-gothic/TakaoGothic.ttf",
	"/usr/share/fonts/truetype/vlgothic/VL-Gothic-Regular.ttf",
	"/usr/share/fonts/vlgothic/VL-Gothic-Regular.ttf",
	"/usr/share/fonts/truetype/droid/DroidSansFallbackFull.ttf",
	"/usr/share/fonts/google-droid-sans-fonts/DroidSansFallbackFull.ttf",
	"/System/Library/Fonts/Supplemental/Arial Unicode.ttf",
	"/Library/Fonts/Arial Unicode.ttf",
	"C:\\Windows\\Fonts\\ARIALUNI.TTF",
	"/usr/share/fonts/truetype/noto/NotoEmoji-Regular.ttf",
	"/usr/share/fonts/truetype/ancient-scripts/Symbola_hint.ttf",
	"/usr/share/fonts/gdouros-symbola/Symbola.ttf",
	"C:\\Windows\\Fonts\\seguiemj.ttf",
}

// fontSet is an ordered fallback chain. Each string is drawn with the first
// font that has a glyph for every rune in it.
type fontSet struct {
	fonts []*truetype.Font
}

func newFontSet(data [][]byte) (*fontSet, error) {
	fs := &fontSet{}
	for _, d := range data {
		f, err := truetype.Parse(d)
		if err != nil {
			continue
		}
		fs.fonts = append(fs.fonts, f)
	}
	if len(fs.fonts) == 0 {
		return nil, fmt.Errorf("failed to parse font: no usable font data")
	}
	return fs, nil
}

// Covers reports whether some font in the set has a glyph for r.
func (fs *fontSet) Covers(r rune) bool {
	for _, f := range fs.fonts {
		if f.Index(r) != 0 {
			return true
		}
	}
	return false
}

// fontIndex returns the first font covering all of s, or 0.
func (fs *fontSet) fontIndex(s string) int {
	for i, f := range fs.fonts {
		ok := true
		for _, r := range s {
			if f.Index(r) == 0 {
				ok = false
				break
			}
		}
		if ok {
			return i
		}
	}
	return 0
}

// faces caches one face per font at a single size.
type faces struct {
	set   *fontSet
	size  float64
	cache map[int]font.Face
}

func (fs *fontSet) faces(size float64) *faces {
	return &faces{set: fs, size: size, cache: make(map[int]font.Face)}
}

func (f *faces) For(s string) font.Face {
	i := f.set.fontIndex(s)
	if face, ok := f.cache[i]; ok {
		return face
	}
	face := truetype.NewFace(f.set.fonts[i], &truetype.Options{
		Size:    f.size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	f.cache[i] = face
	return face
}

// faceMeasurer measures with real font faces, matching the exported image.
type faceMeasurer struct {
	faces *faces
}

func newFaceMeasurer(fonts *fontSet, size float64) *faceMeasurer {
	return &faceMeasurer{faces: fonts.faces(size)}
}

func (f *faceMeasurer) GlyphWidth(s string) float64 {
	return float64(font.MeasureString(f.faces.For(s), s)) / 64
}

// loadFontData returns the font chain: the configured font when readable,
// then every installed system font from systemFontPaths, then Go Regular.
func loadFontData(path string) [][]byte {
	var data [][]byte
	if path != "" {
		if d, err := readFont(path); err != nil {
			log.Printf("font %s: %v", path, err)
		} else {
			data = append(data, d)
		}
	}
	for _, p := range systemFontPaths {
		if d, err := readFont(p); err == nil {
			data = append(data, d)
		}
	}
	data = append(data, goregular.TTF)
	if fs, err := newFontSet(data); err == nil && !fs.Covers('あ') {
		log.Printf("warning: no installed font covers kana, set font_path to a Japanese TTF")
	}
	return data
}

func readFont(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if _, err := truetype.Parse(data); err != nil {
		return nil, err
	}
	return data, nil
}

func newMeasurer(kind string, fonts *fontSet) Measurer {
	if kind == "font" && fonts != nil {
		return newFaceMeasurer(fonts, fontSize)
	}
	return newCellMeasurer()
}
