package main

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *model) setMode(mode Mode) {
	m.mode = mode
	switch mode {
	case ModeSetting:
		m.dragSticker = -1
	case ModeWriting:
		m.render()
	}
}

// activateKey is the effect of pressing a character key, on screen or on
// the physical keyboard.
func (m *model) activateKey(char string) {
	switch m.mode {
	case ModeSetting:
		m.openPalette(char)
	case ModeWriting:
		m.typeChar(char)
	}
}

func (m *model) typeChar(char string) {
	doc := m.session.doc
	index := doc.Cursor()
	entry := doc.Insert(char, m.colors())
	m.session.recordAction(ActionInsert, EditData{Index: index, Entry: entry, CursorBefore: index})
	m.audio.Play(char)
	m.render()
}

func (m *model) backspace() {
	doc := m.session.doc
	before := doc.Cursor()
	entry, ok := doc.Backspace()
	if !ok {
		return
	}
	m.session.recordAction(ActionBackspace, EditData{Index: before - 1, Entry: entry, CursorBefore: before})
	m.render()
}

func (m *model) moveCursor(delta int) {
	m.session.doc.MoveCursor(delta)
	m.render()
}

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "f1":
		m.setMode(ModeSetting)
	case "f2":
		m.setMode(ModeWriting)
	case "f3":
		m.openMusic()
	case "f4":
		m.cycleStyle()
	case "f5":
		m.openThemes()
	case "f6":
		m.openStickers()
	case "f7":
		m.openPreview()
	case "f8":
		m.overlay = OverlayHelp
	case "tab":
		m.selectTab(m.tab + 1)
	case "shift+tab":
		m.selectTab(m.tab - 1)
	case "ctrl+z":
		if m.session.undo() {
			m.render()
		}
	case "ctrl+y":
		if m.session.redo() {
			m.render()
		}
	case "ctrl+s":
		m.saveLetter()
	case "ctrl+o":
		m.openLetter()
	case "esc":
		m.pendingSticker = ""
		m.clearMessages()
	default:
		switch m.mode {
		case ModeSetting:
			m.handleSettingKey(msg)
		case ModeWriting:
			m.handleWritingKey(msg)
		}
	}
	return nil
}

// handleWritingKey turns editing keys into buffer operations.
func (m *model) handleWritingKey(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyLeft:
		m.moveCursor(-1)
	case tea.KeyRight:
		m.moveCursor(1)
	case tea.KeyUp:
		m.moveCursor(-verticalStride)
	case tea.KeyDown:
		m.moveCursor(verticalStride)
	case tea.KeyBackspace:
		m.backspace()
	case tea.KeySpace:
		m.typeChar(" ")
	case tea.KeyEnter:
		m.typeChar("\n")
	case tea.KeyRunes:
		if msg.Alt {
			return
		}
		for _, r := range msg.Runes {
			m.activateKey(string(r))
		}
	}
}

// handleSettingKey moves the on-screen key selection. Editing keys never
// reach the buffer in this mode.
func (m *model) handleSettingKey(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyLeft:
		m.moveKeySelection(0, -1)
	case tea.KeyRight:
		m.moveKeySelection(0, 1)
	case tea.KeyUp:
		m.moveKeySelection(-1, 0)
	case tea.KeyDown:
		m.moveKeySelection(1, 0)
	case tea.KeyEnter:
		if k := keyAt(m.keyboard(), m.keyRow, m.keyCol); k != "" {
			m.activateKey(k)
		}
	case tea.KeyRunes:
		if len(msg.Runes) == 1 && !msg.Alt {
			char := string(msg.Runes[0])
			if r, c, ok := keyPosition(m.keyboard(), char); ok {
				m.keyRow, m.keyCol = r, c
			}
			m.activateKey(char)
		}
	case tea.KeyBackspace, tea.KeySpace:
	}
}

func (m *model) openPalette(char string) {
	m.paletteChar = char
	m.paletteIndex = 0
	if current, ok := m.profile.Lookup(char); ok {
		for i, c := range crayons {
			if c.Hex == current {
				m.paletteIndex = i
				break
			}
		}
	}
	m.overlay = OverlayPalette
}

// assignColor stores hex for the palette character. The profile writes
// itself through; keys pick the colour up on the next frame and typed
// entries keep the colour they were typed with.
func (m *model) assignColor(hex string) {
	if m.profile == nil || m.paletteChar == "" {
		return
	}
	if !m.profile.Set(m.paletteChar, hex) {
		m.errorMessage = fmt.Sprintf("not a colour: %s", hex)
		return
	}
	m.successMessage = tr(m.lang, "modal_color") + m.paletteChar + " " + crayonName(hex)
	m.overlay = OverlayNone
}

func (m *model) selectTab(i int) {
	n := len(keyboardTabs)
	m.tab = ((i % n) + n) % n
	m.keyRow, m.keyCol = 0, 0
}

func (m *model) moveKeySelection(dr, dc int) {
	grid := m.keyboard()
	row := clamp(m.keyRow+dr, 0, len(grid)-1)
	col := clamp(m.keyCol+dc, 0, len(grid[row])-1)
	m.keyRow, m.keyCol = row, col
}

func (m *model) cycleStyle() {
	m.styleIndex = (m.styleIndex + 1) % len(uiStyles)
}

func (m *model) changeTheme(id string) {
	if id != "" {
		if _, err := m.themes.Image(id); err != nil {
			log.Printf("theme: %v", err)
			m.errorMessage = err.Error()
			return
		}
	}
	if id == m.session.theme {
		return
	}
	m.session.recordAction(ActionChangeTheme, ThemeData{Old: m.session.theme, New: id})
	m.session.theme = id
	m.render()
}

func (m *model) placeSticker(glyph string, x, y float64) {
	entry := m.session.stickers.Place(glyph, x, y)
	m.session.recordAction(ActionPlaceSticker, entry)
}

func (m *model) removeSticker(id int) {
	entry, ok := m.session.stickers.Remove(id)
	if !ok {
		return
	}
	m.session.recordAction(ActionRemoveSticker, entry)
}

func (m *model) letterPath() string {
	return m.config.GetSavePath(m.profileName() + ".letter")
}

func (m *model) saveLetter() {
	path := m.letterPath()
	if err := m.session.snapshot().SaveToFile(path); err != nil {
		log.Printf("save letter: %v", err)
		m.errorMessage = err.Error()
		return
	}
	m.successMessage = tr(m.lang, "letter_saved") + path
}

func (m *model) openLetter() {
	path := m.letterPath()
	l, err := loadLetter(path)
	if err != nil {
		log.Printf("open letter: %v", err)
		m.errorMessage = err.Error()
		return
	}
	m.session.restore(l)
	m.render()
	m.successMessage = tr(m.lang, "letter_open") + path
}
