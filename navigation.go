package main

import (
	"github.com/charmbracelet/lipgloss"
	tea "github.com/charmbracelet/bubbletea"
)

// barButton is one clickable entry of the top bar.
type barButton struct {
	label  string
	active bool
	press  func(m *model)
}

func (m *model) barButtons() []barButton {
	return []barButton{
		{label: tr(m.lang, "btn_color"), active: m.mode == ModeSetting, press: func(m *model) { m.setMode(ModeSetting) }},
		{label: tr(m.lang, "btn_write"), active: m.mode == ModeWriting, press: func(m *model) { m.setMode(ModeWriting) }},
		{label: tr(m.lang, "btn_bgm"), press: (*model).openMusic},
		{label: tr(m.lang, "btn_mode"), press: (*model).cycleStyle},
		{label: tr(m.lang, "lbl_theme"), press: (*model).openThemes},
		{label: tr(m.lang, "lbl_sticker"), press: (*model).openStickers},
		{label: tr(m.lang, "btn_preview"), press: (*model).openPreview},
	}
}

func (m *model) handleMouse(msg tea.MouseMsg) {
	switch msg.Type {
	case tea.MouseLeft:
		if m.dragSticker != -1 {
			m.dragTo(msg.X, msg.Y)
			return
		}
		m.click(msg.X, msg.Y)
	case tea.MouseMotion:
		if m.dragSticker != -1 {
			m.dragTo(msg.X, msg.Y)
		}
	case tea.MouseRelease:
		m.endDrag()
	}
}

func (m *model) click(x, y int) {
	switch {
	case y == topBarRow:
		m.clickBar(x)
	case y == m.tabsRow():
		if t := x / tabWidth; t < len(keyboardTabs) {
			m.selectTab(t)
		}
	case y >= m.keyboardTop():
		row := y - m.keyboardTop()
		col := x / keyWidth
		if k := keyAt(m.keyboard(), row, col); k != "" {
			m.keyRow, m.keyCol = row, col
			m.activateKey(k)
		}
	case m.mode == ModeWriting:
		col, row := x-paperFirstCol, y-paperFirstRow
		if col < 0 || col >= paperCols || row < 0 || row >= paperRows {
			return
		}
		m.clickPaper(col, row)
	}
}

func (m *model) clickBar(x int) {
	pos := 0
	for _, b := range m.barButtons() {
		w := lipgloss.Width(m.style().buttonStyle(b.active).Render(b.label))
		if x >= pos && x < pos+w {
			b.press(m)
			return
		}
		pos += w + 1
	}
}

// clickPaper handles a press on the paper cell (col, row). A second press on
// the same sticker within doubleClickMs removes it; a single press grabs it.
func (m *model) clickPaper(col, row int) {
	now := m.now()
	if s, ok := m.session.stickers.AtCell(col, row); ok {
		if s.ID == m.lastClickSticker && now.Sub(m.lastClickAt).Milliseconds() < doubleClickMs {
			m.removeSticker(s.ID)
			m.lastClickSticker = -1
			return
		}
		m.lastClickSticker = s.ID
		m.lastClickAt = now
		m.dragSticker = s.ID
		m.dragFromX, m.dragFromY = s.X, s.Y
		m.dragMoved = false
		return
	}
	m.lastClickSticker = -1

	if m.pendingSticker != "" {
		m.placeSticker(m.pendingSticker, float64(col*cellWidthPx), float64(row*lineHeight))
		m.pendingSticker = ""
		m.clearMessages()
	}
}

func (m *model) dragTo(x, y int) {
	col := clamp(x-paperFirstCol, 0, paperCols-1)
	row := clamp(y-paperFirstRow, 0, paperRows-1)
	px, py := float64(col*cellWidthPx), float64(row*lineHeight)
	s, ok := m.session.stickers.Get(m.dragSticker)
	if !ok || (s.X == px && s.Y == py) {
		return
	}
	m.session.stickers.Move(m.dragSticker, px, py)
	m.dragMoved = true
}

func (m *model) endDrag() {
	if m.dragSticker == -1 {
		return
	}
	id := m.dragSticker
	m.dragSticker = -1
	if !m.dragMoved {
		return
	}
	m.dragMoved = false
	s, ok := m.session.stickers.Get(id)
	if !ok {
		return
	}
	m.session.recordAction(ActionMoveSticker, MoveStickerData{
		ID:    id,
		FromX: m.dragFromX,
		FromY: m.dragFromY,
		ToX:   s.X,
		ToY:   s.Y,
	})
	m.lastClickSticker = -1
}
