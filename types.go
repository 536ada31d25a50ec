package main

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
)

type model struct {
	width  int
	height int
	config *Config

	mode    Mode
	overlay Overlay
	session *session

	renderer *Renderer
	raster   *rasterizer
	profiles *ProfileStore
	profile  *ColorProfile
	themes   *ThemeFeed
	audio    Audio
	bgmDir   string

	lang       string
	styleIndex int

	tab    int
	keyRow int
	keyCol int

	paletteChar  string
	paletteIndex int

	listIndex       int
	profileList     []string
	trackList       []string
	themeList       []string
	nameInput       textinput.Model
	creatingProfile bool
	preview         []string

	pendingSticker   string
	stickerIndex     int
	dragSticker      int
	dragFromX        float64
	dragFromY        float64
	dragMoved        bool
	lastClickSticker int
	lastClickAt      time.Time

	now      func() time.Time
	copyText func(string) error

	errorMessage   string
	successMessage string
}

// Screen rows of the fixed layout. The top bar is always one row; in
// writing mode the bordered paper follows it.
const (
	topBarRow     = 0
	paperTopRow   = 1
	paperFirstRow = paperTopRow + 1
	paperFirstCol = 1
)

func (m *model) tabsRow() int {
	switch m.mode {
	case ModeWriting:
		return paperTopRow + paperRows + 2
	case ModeSetting:
		return topBarRow + 1
	default:
		return topBarRow + 1
	}
}

func (m *model) keyboardTop() int {
	return m.tabsRow() + 1
}
