package main

type Action struct {
	Type ActionType
	Data interface{}
}

// EditData records one inserted or removed entry together with the cursor
// as it was before the edit.
type EditData struct {
	Index        int
	Entry        CharacterEntry
	CursorBefore int
}

type MoveStickerData struct {
	ID    int
	FromX float64
	FromY float64
	ToX   float64
	ToY   float64
}

type ThemeData struct {
	Old string
	New string
}

// session is the one open paper: its document, stickers, derived scene and
// edit history.
type session struct {
	doc       *Document
	stickers  *StickerLayer
	scene     *Scene
	theme     string
	undoStack []Action
	redoStack []Action
}

func newSession() *session {
	scene := NewScene()
	return &session{
		doc:       NewDocument(),
		stickers:  NewStickerLayer(scene),
		scene:     scene,
		undoStack: []Action{},
		redoStack: []Action{},
	}
}

func (s *session) recordAction(actionType ActionType, data interface{}) {
	s.undoStack = append(s.undoStack, Action{Type: actionType, Data: data})
	s.redoStack = s.redoStack[:0]
}

func (s *session) clearHistory() {
	s.undoStack = s.undoStack[:0]
	s.redoStack = s.redoStack[:0]
}

func (s *session) undo() bool {
	if len(s.undoStack) == 0 {
		return false
	}
	lastIndex := len(s.undoStack) - 1
	action := s.undoStack[lastIndex]
	s.undoStack = s.undoStack[:lastIndex]

	switch action.Type {
	case ActionInsert:
		data := action.Data.(EditData)
		s.doc.RemoveAt(data.Index)
		s.doc.SetCursor(data.CursorBefore)
	case ActionBackspace:
		data := action.Data.(EditData)
		s.doc.SetCursor(data.CursorBefore - 1)
		s.doc.InsertAt(data.Index, data.Entry)
	case ActionPlaceSticker:
		data := action.Data.(StickerEntry)
		s.stickers.Remove(data.ID)
	case ActionRemoveSticker:
		data := action.Data.(StickerEntry)
		s.stickers.Restore(data)
	case ActionMoveSticker:
		data := action.Data.(MoveStickerData)
		s.stickers.Move(data.ID, data.FromX, data.FromY)
	case ActionChangeTheme:
		data := action.Data.(ThemeData)
		s.theme = data.Old
	}

	s.redoStack = append(s.redoStack, action)
	return true
}

func (s *session) redo() bool {
	if len(s.redoStack) == 0 {
		return false
	}
	lastIndex := len(s.redoStack) - 1
	action := s.redoStack[lastIndex]
	s.redoStack = s.redoStack[:lastIndex]

	switch action.Type {
	case ActionInsert:
		data := action.Data.(EditData)
		s.doc.SetCursor(data.CursorBefore)
		s.doc.InsertAt(data.Index, data.Entry)
	case ActionBackspace:
		data := action.Data.(EditData)
		s.doc.SetCursor(data.CursorBefore)
		s.doc.RemoveAt(data.Index)
	case ActionPlaceSticker:
		data := action.Data.(StickerEntry)
		s.stickers.Restore(data)
	case ActionRemoveSticker:
		data := action.Data.(StickerEntry)
		s.stickers.Remove(data.ID)
	case ActionMoveSticker:
		data := action.Data.(MoveStickerData)
		s.stickers.Move(data.ID, data.ToX, data.ToY)
	case ActionChangeTheme:
		data := action.Data.(ThemeData)
		s.theme = data.New
	}

	s.undoStack = append(s.undoStack, action)
	return true
}

// snapshot captures the session as a letter.
func (s *session) snapshot() letter {
	return letter{
		Entries:  s.doc.Entries(),
		Cursor:   s.doc.Cursor(),
		Stickers: s.stickers.Entries(),
		Theme:    s.theme,
	}
}

// restore replaces the session contents with l and forgets the history.
func (s *session) restore(l letter) {
	s.doc.Reset(l.Entries, l.Cursor)
	s.stickers.Reset(l.Stickers)
	s.theme = l.Theme
	s.clearHistory()
}
