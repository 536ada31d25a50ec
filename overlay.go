package main

import (
	"errors"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *model) openProfiles() {
	m.profileList = m.profiles.List()
	m.listIndex = 0
	m.creatingProfile = false
	m.overlay = OverlayProfiles
}

func (m *model) openMusic() {
	m.trackList = listTracks(m.bgmDir)
	m.listIndex = 0
	m.overlay = OverlayMusic
}

func (m *model) openThemes() {
	m.themeList = append([]string{""}, m.themes.List()...)
	m.listIndex = 0
	for i, id := range m.themeList {
		if id == m.session.theme {
			m.listIndex = i
		}
	}
	m.overlay = OverlayThemes
}

func (m *model) openStickers() {
	m.overlay = OverlayStickers
}

// openPreview rasterizes the paper at screen scale and keeps a half-block
// thumbnail of it for the overlay.
func (m *model) openPreview() {
	if m.raster == nil {
		m.errorMessage = "preview unavailable"
		return
	}
	m.render()
	img := m.raster.Rasterize(m.session.scene, 1)
	m.preview = thumbnail(img, 100)
	m.overlay = OverlayPreview
}

func (m *model) closeOverlay() {
	m.overlay = OverlayNone
	m.listIndex = 0
}

func (m *model) handleOverlayKey(msg tea.KeyMsg) tea.Cmd {
	switch m.overlay {
	case OverlayProfiles:
		return m.handleProfilesKey(msg)
	case OverlayPalette:
		m.handlePaletteKey(msg)
	case OverlayMusic:
		m.handleMusicKey(msg)
	case OverlayThemes:
		m.handleThemesKey(msg)
	case OverlayStickers:
		m.handleStickersKey(msg)
	case OverlayPreview:
		m.handlePreviewKey(msg)
	case OverlayHelp:
		m.closeOverlay()
	}
	return nil
}

// handleProfilesKey drives the profile picker. It cannot be dismissed
// without choosing a profile.
func (m *model) handleProfilesKey(msg tea.KeyMsg) tea.Cmd {
	if m.creatingProfile {
		switch msg.Type {
		case tea.KeyEnter:
			name := strings.TrimSpace(m.nameInput.Value())
			if err := m.profiles.Create(name); err != nil {
				log.Printf("create profile %q: %v", name, err)
				m.errorMessage = err.Error()
				if errors.Is(err, errInvalidProfileName) {
					m.errorMessage = tr(m.lang, "input_msg")
				}
				return nil
			}
			m.creatingProfile = false
			m.nameInput.Blur()
			m.nameInput.Reset()
			m.profileList = m.profiles.List()
			for i, p := range m.profileList {
				if p == name {
					m.listIndex = i
				}
			}
			m.clearMessages()
			return nil
		case tea.KeyEsc:
			m.creatingProfile = false
			m.nameInput.Blur()
			m.nameInput.Reset()
			return nil
		}
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return cmd
	}

	switch msg.String() {
	case "up", "k":
		m.listIndex = listMove(m.listIndex, -1, len(m.profileList))
	case "down", "j":
		m.listIndex = listMove(m.listIndex, 1, len(m.profileList))
	case "n":
		m.creatingProfile = true
		m.nameInput.Placeholder = tr(m.lang, "input_msg")
		return m.nameInput.Focus()
	case "l":
		m.cycleLanguage()
	case "enter":
		if len(m.profileList) == 0 {
			m.errorMessage = tr(m.lang, "warn_select")
			return nil
		}
		m.profile = m.profiles.Load(m.profileList[m.listIndex])
		m.clearMessages()
		m.closeOverlay()
		m.setMode(ModeSetting)
	}
	return nil
}

var languages = []string{"en", "jp", "pt"}

func (m *model) cycleLanguage() {
	for i, l := range languages {
		if l == m.lang {
			m.lang = languages[(i+1)%len(languages)]
			return
		}
	}
	m.lang = languages[0]
}

func (m *model) handlePaletteKey(msg tea.KeyMsg) {
	n := len(crayons)
	switch msg.String() {
	case "left", "h":
		m.paletteIndex = listMove(m.paletteIndex, -1, n)
	case "right", "l":
		m.paletteIndex = listMove(m.paletteIndex, 1, n)
	case "up", "k":
		m.paletteIndex = listMove(m.paletteIndex, -paletteColumns, n)
	case "down", "j":
		m.paletteIndex = listMove(m.paletteIndex, paletteColumns, n)
	case "enter":
		m.assignColor(crayons[m.paletteIndex].Hex)
	case "esc":
		m.closeOverlay()
	}
}

func (m *model) handleMusicKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "up", "k":
		m.listIndex = listMove(m.listIndex, -1, len(m.trackList))
	case "down", "j":
		m.listIndex = listMove(m.listIndex, 1, len(m.trackList))
	case "enter":
		if len(m.trackList) > 0 {
			m.audio.PlayMusicLoop(m.trackList[m.listIndex])
		}
	case "s":
		m.audio.Stop()
	case "esc", "b":
		m.closeOverlay()
	}
}

func (m *model) handleThemesKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "up", "k":
		m.listIndex = listMove(m.listIndex, -1, len(m.themeList))
	case "down", "j":
		m.listIndex = listMove(m.listIndex, 1, len(m.themeList))
	case "enter":
		m.clearMessages()
		m.changeTheme(m.themeList[m.listIndex])
		if m.errorMessage == "" {
			m.closeOverlay()
		}
	case "esc", "b":
		m.closeOverlay()
	}
}

// handleStickersKey picks a sticker. Enter arms it for the next paper click;
// p drops it in the middle of the paper straight away.
func (m *model) handleStickersKey(msg tea.KeyMsg) {
	n := len(stickerGlyphs)
	switch msg.String() {
	case "left", "h":
		m.stickerIndex = listMove(m.stickerIndex, -1, n)
	case "right", "l":
		m.stickerIndex = listMove(m.stickerIndex, 1, n)
	case "up", "k":
		m.stickerIndex = listMove(m.stickerIndex, -stickerColumns, n)
	case "down", "j":
		m.stickerIndex = listMove(m.stickerIndex, stickerColumns, n)
	case "enter":
		m.pendingSticker = stickerGlyphs[m.stickerIndex]
		m.successMessage = tr(m.lang, "place_hint") + m.pendingSticker
		m.closeOverlay()
	case "p":
		m.placeSticker(stickerGlyphs[m.stickerIndex], paperWidth/2-12, paperHeight/2-20)
		m.closeOverlay()
	case "esc", "b":
		m.closeOverlay()
	}
}

func (m *model) handlePreviewKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "s", "enter":
		m.exportLetter()
	case "esc", "b":
		m.preview = nil
		m.closeOverlay()
	}
}

// exportLetter saves the paper at export scale and copies the saved path to
// the clipboard.
func (m *model) exportLetter() {
	path := m.config.GetSavePath(letterFilename(m.session.doc.Cursor()))
	if err := m.raster.ExportPNG(m.session.scene, path, exportScale); err != nil {
		log.Printf("export %s: %v", path, err)
		m.errorMessage = err.Error()
		return
	}
	m.copyToClipboard(path)
	m.errorMessage = ""
	m.successMessage = tr(m.lang, "msg_saved") + path
}
