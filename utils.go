package main

import (
	"log"

	"github.com/atotto/clipboard"
)

func (m *model) colors() ColorLookup {
	if m.profile == nil {
		return NewColorProfile(nil)
	}
	return m.profile
}

func (m *model) profileName() string {
	if m.profile == nil || m.profile.Name() == "" {
		return "letter"
	}
	return m.profile.Name()
}

func (m *model) style() uiStyle {
	return uiStyles[m.styleIndex%len(uiStyles)]
}

func (m *model) keyboard() [][]string {
	return buildKeyboard(keyboardTabs[m.tab].id)
}

func (m *model) clearMessages() {
	m.errorMessage = ""
	m.successMessage = ""
}

// render regenerates the text layers of the paper.
func (m *model) render() {
	m.renderer.Render(m.session.scene, m.session.doc, m.mode, m.session.theme)
}

func writeClipboard(text string) error {
	return clipboard.WriteAll(text)
}

// copyToClipboard is best effort; failures are logged only.
func (m *model) copyToClipboard(text string) {
	if m.copyText == nil {
		return
	}
	if err := m.copyText(text); err != nil {
		log.Printf("clipboard: %v", err)
	}
}

func listMove(index, delta, n int) int {
	if n == 0 {
		return 0
	}
	return clamp(index+delta, 0, n-1)
}
