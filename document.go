package main

import "strings"

// CharacterEntry is one typed character together with the colour it had
// when it was typed. Entries are never edited in place.
type CharacterEntry struct {
	Char  string
	Color string
}

// ColorLookup resolves the colour of a character, falling back when the
// character has none assigned.
type ColorLookup interface {
	Get(char, fallback string) string
}

// Document is the ordered character buffer of the paper plus its cursor.
// The cursor always satisfies 0 <= cursor <= Len().
type Document struct {
	entries []CharacterEntry
	cursor  int
}

func NewDocument() *Document {
	return &Document{
		entries: make([]CharacterEntry, 0),
	}
}

func (d *Document) Len() int {
	return len(d.entries)
}

func (d *Document) Cursor() int {
	return d.cursor
}

// Entries returns a copy of the buffer.
func (d *Document) Entries() []CharacterEntry {
	out := make([]CharacterEntry, len(d.entries))
	copy(out, d.entries)
	return out
}

func (d *Document) Entry(i int) (CharacterEntry, bool) {
	if i < 0 || i >= len(d.entries) {
		return CharacterEntry{}, false
	}
	return d.entries[i], true
}

func (d *Document) Text() string {
	var sb strings.Builder
	for _, e := range d.entries {
		sb.WriteString(e.Char)
	}
	return sb.String()
}

// InsertAt inserts e at index (clamped). An insertion at or before the
// cursor pushes the cursor right.
func (d *Document) InsertAt(index int, e CharacterEntry) {
	index = clamp(index, 0, len(d.entries))
	d.entries = append(d.entries, CharacterEntry{})
	copy(d.entries[index+1:], d.entries[index:])
	d.entries[index] = e
	if index <= d.cursor {
		d.cursor++
	}
}

// RemoveAt removes the entry at index. Out of range indexes are ignored.
func (d *Document) RemoveAt(index int) (CharacterEntry, bool) {
	if index < 0 || index >= len(d.entries) {
		return CharacterEntry{}, false
	}
	removed := d.entries[index]
	d.entries = append(d.entries[:index], d.entries[index+1:]...)
	if index < d.cursor {
		d.cursor--
	}
	return removed, true
}

// Insert builds an entry for char coloured by colors and inserts it at the
// cursor.
func (d *Document) Insert(char string, colors ColorLookup) CharacterEntry {
	color := DefaultColor
	if colors != nil {
		color = colors.Get(char, DefaultColor)
	}
	e := CharacterEntry{Char: char, Color: color}
	d.InsertAt(d.cursor, e)
	return e
}

// Backspace removes the entry before the cursor. It reports false at the
// start of the buffer.
func (d *Document) Backspace() (CharacterEntry, bool) {
	if d.cursor == 0 {
		return CharacterEntry{}, false
	}
	return d.RemoveAt(d.cursor - 1)
}

// MoveCursor adds delta to the cursor and clamps it to the buffer.
func (d *Document) MoveCursor(delta int) {
	d.cursor = clamp(d.cursor+delta, 0, len(d.entries))
}

func (d *Document) SetCursor(index int) {
	d.cursor = clamp(index, 0, len(d.entries))
}

// Reset replaces the whole buffer, used when a letter is reopened.
func (d *Document) Reset(entries []CharacterEntry, cursor int) {
	d.entries = make([]CharacterEntry, len(entries))
	copy(d.entries, entries)
	d.SetCursor(cursor)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
