package main

import "github.com/mattn/go-runewidth"

// StickerEntry is a decorative glyph placed on the paper. Stickers always
// sit in the top z band, above text and cursor.
type StickerEntry struct {
	ID    int
	Glyph string
	X     float64
	Y     float64
}

var stickerGlyphs = []string{
	"🦄", "🌈", "✨", "🍄", "🐞", "🌸", "⭐", "🎵", "❤️", "🚀",
	"🐱", "🐶", "🍦", "🎈", "🎂", "👻", "🎃", "🚗", "✈️", "🦕",
}

// StickerLayer owns the placed stickers and keeps their elements in the
// scene. The text renderer never reaches these elements.
type StickerLayer struct {
	entries []StickerEntry
	nextID  int
	scene   *Scene
}

func NewStickerLayer(scene *Scene) *StickerLayer {
	return &StickerLayer{
		entries: make([]StickerEntry, 0),
		scene:   scene,
	}
}

func (l *StickerLayer) Len() int {
	return len(l.entries)
}

func (l *StickerLayer) Entries() []StickerEntry {
	out := make([]StickerEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *StickerLayer) Get(id int) (StickerEntry, bool) {
	for _, e := range l.entries {
		if e.ID == id {
			return e, true
		}
	}
	return StickerEntry{}, false
}

// Place appends a new sticker at (x, y).
func (l *StickerLayer) Place(glyph string, x, y float64) StickerEntry {
	e := StickerEntry{
		ID:    l.nextID,
		Glyph: glyph,
		X:     x,
		Y:     y,
	}
	l.Restore(e)
	return e
}

// Restore puts back a previously removed sticker under its old ID.
func (l *StickerLayer) Restore(e StickerEntry) {
	if _, ok := l.Get(e.ID); ok {
		return
	}
	l.entries = append(l.entries, e)
	if e.ID >= l.nextID {
		l.nextID = e.ID + 1
	}
	l.scene.Add(stickerElement(e))
}

func (l *StickerLayer) Remove(id int) (StickerEntry, bool) {
	for i, e := range l.entries {
		if e.ID != id {
			continue
		}
		l.entries = append(l.entries[:i], l.entries[i+1:]...)
		l.scene.RemoveSticker(id)
		return e, true
	}
	return StickerEntry{}, false
}

func (l *StickerLayer) Move(id int, x, y float64) bool {
	for i := range l.entries {
		if l.entries[i].ID != id {
			continue
		}
		l.entries[i].X = x
		l.entries[i].Y = y
		l.scene.MoveSticker(id, x, y)
		return true
	}
	return false
}

// Reset replaces every sticker, used when a letter is reopened.
func (l *StickerLayer) Reset(entries []StickerEntry) {
	l.scene.RemoveKinds(KindSticker)
	l.entries = l.entries[:0]
	l.nextID = 0
	for _, e := range entries {
		l.Restore(e)
	}
}

// AtCell returns the most recently placed sticker covering the terminal
// cell (col, row) of the paper projection.
func (l *StickerLayer) AtCell(col, row int) (StickerEntry, bool) {
	for i := len(l.entries) - 1; i >= 0; i-- {
		e := l.entries[i]
		if cellRow(e.Y) != row {
			continue
		}
		start := cellCol(e.X)
		w := runewidth.StringWidth(e.Glyph)
		if w < 1 {
			w = 1
		}
		if col >= start && col < start+w {
			return e, true
		}
	}
	return StickerEntry{}, false
}

func stickerElement(e StickerEntry) Element {
	return Element{
		Kind:      KindSticker,
		Text:      e.Glyph,
		X:         e.X,
		Y:         e.Y,
		Color:     stickerColor,
		Z:         zSticker,
		StickerID: e.ID,
	}
}
