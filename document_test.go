package main

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestDocumentInsertUsesLookup(t *testing.T) {
	d := NewDocument()
	colors := NewColorProfile(map[string]string{"a": "#ff0000"})

	a := d.Insert("a", colors)
	b := d.Insert("b", colors)
	c := d.Insert("c", nil)

	if a.Color != "#FF0000" {
		t.Errorf("Expected #FF0000 for a, got %s", a.Color)
	}
	if b.Color != DefaultColor || c.Color != DefaultColor {
		t.Errorf("Expected default colour for b and c, got %s and %s", b.Color, c.Color)
	}
	if d.Text() != "abc" || d.Cursor() != 3 {
		t.Errorf("Expected abc with cursor 3, got %q cursor %d", d.Text(), d.Cursor())
	}
}

func TestDocumentBackspace(t *testing.T) {
	d := NewDocument()
	if _, ok := d.Backspace(); ok {
		t.Error("Expected backspace on empty buffer to report false")
	}

	d.Insert("x", nil)
	d.Insert("y", nil)
	d.MoveCursor(-1)
	e, ok := d.Backspace()
	if !ok || e.Char != "x" {
		t.Fatalf("Expected x removed, got %+v %v", e, ok)
	}
	if d.Text() != "y" || d.Cursor() != 0 {
		t.Errorf("Expected y with cursor 0, got %q cursor %d", d.Text(), d.Cursor())
	}
	if _, ok := d.Backspace(); ok {
		t.Error("Expected backspace at start to report false")
	}
}

func TestDocumentCursorClamps(t *testing.T) {
	d := NewDocument()
	for _, c := range []string{"a", "b", "c"} {
		d.Insert(c, nil)
	}

	tests := []struct {
		name  string
		delta int
		want  int
	}{
		{"Far left", -100, 0},
		{"One right", 1, 1},
		{"Far right", 100, 3},
		{"Stride up", -verticalStride, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d.MoveCursor(tt.delta)
			if d.Cursor() != tt.want {
				t.Errorf("Expected cursor %d, got %d", tt.want, d.Cursor())
			}
		})
	}
}

func TestDocumentInsertAtShiftsCursor(t *testing.T) {
	d := NewDocument()
	d.Insert("a", nil)
	d.Insert("b", nil)
	d.SetCursor(1)

	d.InsertAt(2, CharacterEntry{Char: "c"})
	if d.Cursor() != 1 {
		t.Errorf("Expected insert after cursor to keep cursor 1, got %d", d.Cursor())
	}
	d.InsertAt(0, CharacterEntry{Char: "z"})
	if d.Cursor() != 2 {
		t.Errorf("Expected insert before cursor to move it to 2, got %d", d.Cursor())
	}
	if d.Text() != "zabc" {
		t.Errorf("Expected zabc, got %q", d.Text())
	}
}

func TestDocumentEntriesIsCopy(t *testing.T) {
	d := NewDocument()
	d.Insert("a", nil)
	entries := d.Entries()
	entries[0].Char = "z"

	if e, _ := d.Entry(0); e.Char != "a" {
		t.Errorf("Expected buffer untouched, got %q", e.Char)
	}
}

func TestDocumentReset(t *testing.T) {
	d := NewDocument()
	d.Reset(entriesOf("hello"), 99)
	if d.Len() != 5 || d.Cursor() != 5 {
		t.Errorf("Expected 5 entries with cursor clamped to 5, got %d cursor %d", d.Len(), d.Cursor())
	}
}

func TestDocumentCursorStaysInBounds(t *testing.T) {
	moves := []int{-verticalStride, -1, 1, verticalStride, -100, 100}
	for _, seed := range []int64{1, 7, 42, 2024} {
		rng := rand.New(rand.NewSource(seed))
		d := NewDocument()
		for step := 0; step < 500; step++ {
			switch rng.Intn(3) {
			case 0:
				d.Insert(string(rune('a'+rng.Intn(26))), nil)
			case 1:
				d.Backspace()
			case 2:
				d.MoveCursor(moves[rng.Intn(len(moves))])
			}
			if d.Cursor() < 0 || d.Cursor() > d.Len() {
				t.Fatalf("seed %d step %d: cursor %d outside [0,%d]", seed, step, d.Cursor(), d.Len())
			}
		}
	}
}

func TestDocumentInsertBackspaceRoundTrip(t *testing.T) {
	d := NewDocument()
	for _, c := range "hello" {
		d.Insert(string(c), nil)
	}
	d.SetCursor(2)
	before := d.Entries()

	d.Insert("x", nil)
	removed, ok := d.Backspace()

	if !ok || removed.Char != "x" {
		t.Errorf("Expected x removed, got %+v %v", removed, ok)
	}
	if !reflect.DeepEqual(d.Entries(), before) {
		t.Errorf("Expected entries restored, got %q", d.Text())
	}
	if d.Cursor() != 2 {
		t.Errorf("Expected cursor 2, got %d", d.Cursor())
	}
}

func TestDocumentVerticalStride(t *testing.T) {
	tests := []struct {
		name  string
		delta int
		want  int
	}{
		{"Up", -verticalStride, 5},
		{"Down", verticalStride, 35},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDocument()
			for i := 0; i < 40; i++ {
				d.Insert("a", nil)
			}
			d.SetCursor(20)
			d.MoveCursor(tt.delta)
			if d.Cursor() != tt.want {
				t.Errorf("Expected cursor %d, got %d", tt.want, d.Cursor())
			}
		})
	}
}
