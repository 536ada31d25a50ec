package main

import "testing"

func TestUndoRedoTyping(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.setMode(ModeWriting)
	typeRunes(m, "ab")
	m.backspace()

	steps := []struct {
		op     func() bool
		text   string
		cursor int
	}{
		{m.session.undo, "ab", 2},
		{m.session.undo, "a", 1},
		{m.session.undo, "", 0},
		{m.session.redo, "a", 1},
		{m.session.redo, "ab", 2},
		{m.session.redo, "a", 1},
	}
	for i, s := range steps {
		if !s.op() {
			t.Fatalf("Step %d: expected an action to apply", i)
		}
		if got := m.session.doc.Text(); got != s.text {
			t.Errorf("Step %d: expected %q, got %q", i, s.text, got)
		}
		if got := m.session.doc.Cursor(); got != s.cursor {
			t.Errorf("Step %d: expected cursor %d, got %d", i, s.cursor, got)
		}
	}
	if m.session.redo() {
		t.Error("Expected redo stack to be empty")
	}
}

func TestUndoInsertInMiddle(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.setMode(ModeWriting)
	typeRunes(m, "ab")
	m.moveCursor(-1)
	typeRunes(m, "x")

	if got := m.session.doc.Text(); got != "axb" {
		t.Fatalf("Expected axb, got %q", got)
	}
	m.session.undo()
	if got := m.session.doc.Text(); got != "ab" || m.session.doc.Cursor() != 1 {
		t.Errorf("Expected ab with cursor 1, got %q cursor %d", got, m.session.doc.Cursor())
	}
}

func TestUndoRestoresEntryColor(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.paletteChar = "a"
	m.assignColor("#FF0000")
	m.setMode(ModeWriting)
	typeRunes(m, "a")
	m.backspace()

	m.paletteChar = "a"
	m.assignColor("#0000FF")
	m.session.undo()

	e, ok := m.session.doc.Entry(0)
	if !ok || e.Color != "#FF0000" {
		t.Errorf("Expected restored entry to keep #FF0000, got %+v", e)
	}
}

func TestNewActionClearsRedo(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.setMode(ModeWriting)
	typeRunes(m, "a")
	m.session.undo()
	typeRunes(m, "b")

	if m.session.redo() {
		t.Error("Expected redo to be cleared by a new action")
	}
}

func TestUndoStickerActions(t *testing.T) {
	s := newSession()
	e := s.stickers.Place("🌈", 10, 10)
	s.recordAction(ActionPlaceSticker, e)
	s.stickers.Move(e.ID, 50, 40)
	s.recordAction(ActionMoveSticker, MoveStickerData{ID: e.ID, FromX: 10, FromY: 10, ToX: 50, ToY: 40})
	removed, _ := s.stickers.Remove(e.ID)
	s.recordAction(ActionRemoveSticker, removed)

	s.undo()
	got, ok := s.stickers.Get(e.ID)
	if !ok {
		t.Fatal("Expected sticker restored")
	}
	if got.X != 50 || got.Y != 40 {
		t.Errorf("Expected sticker restored at (50,40), got (%g,%g)", got.X, got.Y)
	}

	s.undo()
	got, _ = s.stickers.Get(e.ID)
	if got.X != 10 || got.Y != 10 {
		t.Errorf("Expected sticker back at (10,10), got (%g,%g)", got.X, got.Y)
	}

	s.undo()
	if s.stickers.Len() != 0 || s.scene.Count(KindSticker) != 0 {
		t.Errorf("Expected no stickers after undoing placement")
	}

	s.redo()
	s.redo()
	got, _ = s.stickers.Get(e.ID)
	if got.X != 50 || got.Y != 40 {
		t.Errorf("Expected sticker at (50,40) after redo, got (%g,%g)", got.X, got.Y)
	}
}

func TestUndoTheme(t *testing.T) {
	s := newSession()
	s.theme = "sky"
	s.recordAction(ActionChangeTheme, ThemeData{Old: "", New: "sky"})

	s.undo()
	if s.theme != "" {
		t.Errorf("Expected no theme after undo, got %q", s.theme)
	}
	s.redo()
	if s.theme != "sky" {
		t.Errorf("Expected sky after redo, got %q", s.theme)
	}
}

func TestUndoEmpty(t *testing.T) {
	s := newSession()
	if s.undo() || s.redo() {
		t.Error("Expected undo and redo to report nothing on a fresh session")
	}
}
