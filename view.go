package main

import (
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m model) View() string {
	var b strings.Builder
	b.WriteString(m.topBar())
	b.WriteString("\n")

	switch m.overlay {
	case OverlayNone:
		b.WriteString(m.workspaceView())
	case OverlayProfiles:
		b.WriteString(m.profilesView())
	case OverlayPalette:
		b.WriteString(m.paletteView())
	case OverlayMusic:
		b.WriteString(m.musicView())
	case OverlayThemes:
		b.WriteString(m.themesView())
	case OverlayStickers:
		b.WriteString(m.stickersView())
	case OverlayPreview:
		b.WriteString(m.previewView())
	case OverlayHelp:
		b.WriteString(m.helpView())
	}

	b.WriteString("\n")
	b.WriteString(m.statusLine())
	return b.String()
}

func (m model) topBar() string {
	st := m.style()
	parts := make([]string, 0, 8)
	for _, btn := range m.barButtons() {
		parts = append(parts, st.buttonStyle(btn.active).Render(btn.label))
	}
	bar := strings.Join(parts, " ")
	if m.width > 0 {
		bar = lipgloss.NewStyle().MaxWidth(m.width).Render(bar)
	}
	return bar
}

func (m model) workspaceView() string {
	var b strings.Builder
	if m.mode == ModeWriting {
		b.WriteString(m.paperView())
		b.WriteString("\n")
	}
	b.WriteString(m.keyboardView())
	return b.String()
}

func (m model) paperView() string {
	st := m.style()
	var bg image.Image
	if id := m.session.theme; id != "" {
		if img, err := m.themes.Image(id); err == nil {
			bg = img
		}
	}
	canvas := NewCanvas(m.session.scene, bg, string(st.paper))
	return st.paperBorder().Render(strings.Join(canvas.Render(), "\n"))
}

func (m model) keyboardView() string {
	st := m.style()
	grid := m.keyboard()

	tabs := make([]string, len(keyboardTabs))
	for i, t := range keyboardTabs {
		tabs[i] = st.tabStyle(i == m.tab).Render(t.label)
	}

	lines := make([]string, 0, len(grid)+1)
	lines = append(lines, strings.Join(tabs, ""))
	for r, row := range grid {
		var sb strings.Builder
		for c, k := range row {
			if k == "" {
				sb.WriteString(strings.Repeat(" ", keyWidth))
				continue
			}
			selected := m.mode == ModeSetting && r == m.keyRow && c == m.keyCol
			sb.WriteString(st.keyStyle(m.colors().Get(k, DefaultColor), selected).Render(k))
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}

func (m model) profilesView() string {
	st := m.style()
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(tr(m.lang, "dialog_title")))
	b.WriteString("\n")
	b.WriteString(tr(m.lang, "lbl_select"))
	b.WriteString("\n")

	if len(m.profileList) == 0 {
		b.WriteString(st.dimStyle().Render("  -"))
		b.WriteString("\n")
	}
	for i, p := range m.profileList {
		name := lookupName(profileNames, p, m.lang)
		if i == m.listIndex {
			b.WriteString("> " + st.buttonStyle(true).Render(name))
		} else {
			b.WriteString("  " + name)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.creatingProfile {
		b.WriteString(tr(m.lang, "input_msg") + " " + m.nameInput.View())
	} else {
		b.WriteString(st.dimStyle().Render(fmt.Sprintf("enter: %s  n: %s  l: %s",
			tr(m.lang, "btn_start"), tr(m.lang, "btn_create"), strings.ToUpper(m.lang))))
	}
	return b.String()
}

func (m model) paletteView() string {
	st := m.style()
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(tr(m.lang, "modal_color") + m.paletteChar))
	b.WriteString("\n")
	b.WriteString(m.currentColorLine())
	b.WriteString("\n")

	for i, c := range crayons {
		cellStyle := lipgloss.NewStyle().Width(keyWidth).Background(lipgloss.Color(c.Hex))
		mark := ""
		if i == m.paletteIndex {
			mark = "[]"
			cellStyle = cellStyle.Foreground(lipgloss.Color(contrastHex(c.Hex))).Align(lipgloss.Center)
		}
		b.WriteString(cellStyle.Render(mark))
		if (i+1)%paletteColumns == 0 {
			b.WriteString("\n")
		}
	}
	if len(crayons)%paletteColumns != 0 {
		b.WriteString("\n")
	}

	c := crayons[m.paletteIndex]
	sample := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex)).Bold(true).Render(m.paletteChar)
	b.WriteString(fmt.Sprintf("%s %s %s\n", sample, c.Name, c.Hex))
	b.WriteString(st.dimStyle().Render("enter: ok  esc: " + tr(m.lang, "btn_back")))
	return b.String()
}

// currentColorLine shows the colour the character has now, which may be
// one no crayon carries.
func (m model) currentColorLine() string {
	hex := m.colors().Get(m.paletteChar, DefaultColor)
	sample := lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Bold(true).Render(m.paletteChar)
	line := tr(m.lang, "color_now") + sample + " " + hex
	for _, c := range crayons {
		if c.Hex == hex {
			return line + " " + c.Name
		}
	}
	return line
}

func (m model) musicView() string {
	st := m.style()
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(tr(m.lang, "modal_music")))
	b.WriteString("\n")
	if len(m.trackList) == 0 {
		b.WriteString(st.dimStyle().Render("  -"))
		b.WriteString("\n")
	}
	for i, t := range m.trackList {
		b.WriteString(listLine(st, lookupName(bgmNames, t, m.lang), i == m.listIndex))
	}
	b.WriteString("\n")
	b.WriteString(st.dimStyle().Render(fmt.Sprintf("enter: ♪  s: %s  esc: %s",
		tr(m.lang, "btn_stop"), tr(m.lang, "btn_back"))))
	return b.String()
}

func (m model) themesView() string {
	st := m.style()
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(tr(m.lang, "lbl_theme")))
	b.WriteString("\n")
	for i, id := range m.themeList {
		name := id
		if id == "" {
			name = tr(m.lang, "no_theme")
		}
		b.WriteString(listLine(st, name, i == m.listIndex))
	}
	b.WriteString("\n")
	b.WriteString(st.dimStyle().Render("enter: ok  esc: " + tr(m.lang, "btn_back")))
	return b.String()
}

func (m model) stickersView() string {
	st := m.style()
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(tr(m.lang, "lbl_sticker")))
	b.WriteString("\n")
	for i, g := range stickerGlyphs {
		b.WriteString(st.keyStyle(stickerColor, i == m.stickerIndex).Render(g))
		if (i+1)%stickerColumns == 0 {
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(st.dimStyle().Render("enter: " + tr(m.lang, "place_hint") + "  p: ✓  esc: " + tr(m.lang, "btn_back")))
	return b.String()
}

func (m model) previewView() string {
	st := m.style()
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(tr(m.lang, "btn_preview")))
	b.WriteString("\n")
	b.WriteString(strings.Join(m.preview, "\n"))
	b.WriteString("\n")
	b.WriteString(st.dimStyle().Render(fmt.Sprintf("s: %s  esc: %s",
		tr(m.lang, "btn_save"), tr(m.lang, "btn_back"))))
	return b.String()
}

func (m model) helpView() string {
	helpLines := []string{
		"Synesthetic Keyboard Help",
		"=========================",
		"",
		"Modes:",
		"  F1               Color set: pick a key, then a crayon",
		"  F2               Write on the paper",
		"",
		"Keyboard:",
		"  Tab/Shift+Tab    Next/previous key set",
		"  ←/→/↑/↓          Move key selection (color set) or cursor (write)",
		"  Enter            Activate selected key / new line",
		"  Backspace        Delete before cursor",
		"",
		"Paper:",
		"  F5               Themes",
		"  F6               Stickers; click the paper to place, drag to move",
		"                   double-click a sticker to remove it",
		"  F7               Preview and save PNG (path copied to clipboard)",
		"  Ctrl+S/Ctrl+O    Save/open letter",
		"",
		"General:",
		"  F3               Music",
		"  F4               Next UI style",
		"  Ctrl+Z/Ctrl+Y    Undo/redo",
		"  Esc              Clear pending sticker and messages",
		"  F8               This help",
		"  Ctrl+C           Quit",
	}
	return strings.Join(helpLines, "\n")
}

func listLine(st uiStyle, label string, selected bool) string {
	if selected {
		return "> " + st.buttonStyle(true).Render(label) + "\n"
	}
	return "  " + label + "\n"
}

func (m model) statusLine() string {
	st := m.style()
	theme := m.session.theme
	if theme == "" {
		theme = tr(m.lang, "no_theme")
	}
	status := fmt.Sprintf("Mode: %s | %s | %s | %s", m.modeString(), m.profileName(), theme,
		lookupName(styleNames, st.id, m.lang))
	if m.pendingSticker != "" {
		status += " | " + m.pendingSticker
	}
	status = st.dimStyle().Render(status)

	if m.errorMessage != "" {
		status += " " + st.errorStyle().Render(m.errorMessage)
	} else if m.successMessage != "" {
		status += " " + st.successStyle().Render(m.successMessage)
	}
	return status
}

func (m model) modeString() string {
	switch m.mode {
	case ModeSetting:
		return "COLOR"
	case ModeWriting:
		return "WRITE"
	default:
		return "UNKNOWN"
	}
}
