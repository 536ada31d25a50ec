package main

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	xdraw "golang.org/x/image/draw"
)

// rasterizer draws scenes to images with a font fallback chain.
type rasterizer struct {
	fonts  *fontSet
	themes *ThemeFeed
}

func newRasterizer(fonts *fontSet, themes *ThemeFeed) (*rasterizer, error) {
	if fonts == nil {
		return nil, fmt.Errorf("rasterizer: no fonts")
	}
	return &rasterizer{fonts: fonts, themes: themes}, nil
}

func ascent(f font.Face) float64 {
	return float64(f.Metrics().Ascent.Ceil())
}

// Rasterize draws the scene at scale, background first and stickers last.
// The cursor is never drawn.
func (r *rasterizer) Rasterize(scene *Scene, scale float64) image.Image {
	w := int(paperWidth * scale)
	h := int(paperHeight * scale)
	dc := gg.NewContext(w, h)
	dc.SetColor(color.White)
	dc.Clear()

	textFaces := r.fonts.faces(fontSize * scale)
	stickerFaces := r.fonts.faces(stickerFontSize * scale)

	for _, e := range scene.Items() {
		switch e.Kind {
		case KindBackground:
			if r.themes == nil {
				continue
			}
			img, err := r.themes.Image(e.Theme)
			if err != nil {
				log.Printf("export background: %v", err)
				continue
			}
			dc.DrawImage(scaleImage(img, w, h), 0, 0)
		case KindShadow, KindGlyph:
			face := textFaces.For(e.Text)
			dc.SetFontFace(face)
			dc.SetColor(hexToColor(e.Color))
			dc.DrawString(e.Text, e.X*scale, e.Y*scale+ascent(face))
		case KindCursor:
			// hidden during capture
		case KindSticker:
			face := stickerFaces.For(e.Text)
			dc.SetFontFace(face)
			dc.SetColor(hexToColor(e.Color))
			dc.DrawString(e.Text, e.X*scale, e.Y*scale+ascent(face))
		}
	}
	return dc.Image()
}

// ExportPNG writes the scene to filename at scale.
func (r *rasterizer) ExportPNG(scene *Scene, filename string, scale float64) error {
	if err := gg.SavePNG(filename, r.Rasterize(scene, scale)); err != nil {
		return fmt.Errorf("save %s: %w", filename, err)
	}
	return nil
}

func letterFilename(cursor int) string {
	return fmt.Sprintf("Letter_%d.png", cursor)
}

// thumbnail renders img as half-block cells, cols wide. Each cell shows two
// vertically stacked pixels.
func thumbnail(img image.Image, cols int) []string {
	b := img.Bounds()
	if cols < 1 || b.Dx() == 0 || b.Dy() == 0 {
		return nil
	}
	rows := cols * b.Dy() / b.Dx()
	if rows%2 == 1 {
		rows++
	}
	if rows < 2 {
		rows = 2
	}
	small := image.NewRGBA(image.Rect(0, 0, cols, rows))
	xdraw.ApproxBiLinear.Scale(small, small.Bounds(), img, b, xdraw.Src, nil)

	lines := make([]string, 0, rows/2)
	for y := 0; y < rows; y += 2 {
		var sb strings.Builder
		for x := 0; x < cols; x++ {
			top := rgbHex(small.RGBAAt(x, y))
			bottom := rgbHex(small.RGBAAt(x, y+1))
			sb.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(top)).
				Background(lipgloss.Color(bottom)).
				Render("▀"))
		}
		lines = append(lines, sb.String())
	}
	return lines
}

func rgbHex(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
