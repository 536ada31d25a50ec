package main

// Renderer projects a Document onto the paper. It keeps no state between
// calls; Render can be repeated any number of times.
type Renderer struct {
	Width   float64
	Measure Measurer
}

func NewRenderer(width float64, m Measurer) *Renderer {
	if m == nil {
		m = newCellMeasurer()
	}
	return &Renderer{
		Width:   width,
		Measure: m,
	}
}

// Render replaces the background, shadow, glyph and cursor elements of scene
// with a fresh layout of doc. Sticker elements are never touched.
func (r *Renderer) Render(scene *Scene, doc *Document, mode Mode, theme string) {
	scene.RemoveKinds(KindBackground, KindShadow, KindGlyph, KindCursor)
	if theme != "" {
		scene.Add(Element{
			Kind:  KindBackground,
			Theme: theme,
			Z:     zBackground,
		})
	}
	for _, e := range r.Layout(doc.entries, doc.cursor, mode) {
		scene.Add(e)
	}
}

// Layout lays entries out from the pen start, wrapping when the pen passes
// Width-wrapMargin, and returns the shadow, glyph and cursor elements.
func (r *Renderer) Layout(entries []CharacterEntry, cursor int, mode Mode) []Element {
	out := make([]Element, 0, len(entries)*2+1)
	x, y := float64(penStartX), float64(penStartY)
	cursorDrawn := false
	showCursor := showsCursor(mode)

	for i, entry := range entries {
		if i == cursor && showCursor {
			out = append(out, cursorElement(x, y))
			cursorDrawn = true
		}
		if entry.Char == "\n" {
			x = penStartX
			y += lineHeight
			continue
		}
		out = append(out,
			Element{
				Kind:  KindShadow,
				Text:  entry.Char,
				X:     x + shadowOffset,
				Y:     y + shadowOffset,
				Color: shadowColor,
				Z:     zShadow,
			},
			Element{
				Kind:  KindGlyph,
				Text:  entry.Char,
				X:     x,
				Y:     y,
				Color: entry.Color,
				Z:     zGlyph,
			},
		)
		x += r.Measure.GlyphWidth(entry.Char)
		if x > r.Width-wrapMargin {
			x = penStartX
			y += lineHeight
		}
	}

	if !cursorDrawn && showCursor {
		out = append(out, cursorElement(x, y))
	}
	return out
}

func cursorElement(x, y float64) Element {
	return Element{
		Kind:   KindCursor,
		X:      x,
		Y:      y,
		Height: cursorHeight,
		Color:  cursorColor,
		Z:      zCursor,
	}
}

func showsCursor(mode Mode) bool {
	switch mode {
	case ModeWriting:
		return true
	case ModeSetting:
		return false
	default:
		return false
	}
}
