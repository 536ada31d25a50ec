package main

// Mode is the interaction mode of the session. There are exactly two and
// every dispatch site switches over both.
type Mode int

const (
	ModeSetting Mode = iota
	ModeWriting
)

func (m Mode) String() string {
	switch m {
	case ModeSetting:
		return "setting"
	case ModeWriting:
		return "writing"
	default:
		return "unknown"
	}
}

// Overlay is the panel drawn over the workspace, if any.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayProfiles
	OverlayPalette
	OverlayMusic
	OverlayThemes
	OverlayStickers
	OverlayPreview
	OverlayHelp
)

type ActionType int

const (
	ActionInsert ActionType = iota
	ActionBackspace
	ActionPlaceSticker
	ActionRemoveSticker
	ActionMoveSticker
	ActionChangeTheme
)

// ElementKind tags every element of a Scene. Refresh passes select what they
// remove by tag only.
type ElementKind int

const (
	KindBackground ElementKind = iota
	KindShadow
	KindGlyph
	KindCursor
	KindSticker
)

func (k ElementKind) String() string {
	switch k {
	case KindBackground:
		return "background"
	case KindShadow:
		return "shadow"
	case KindGlyph:
		return "glyph"
	case KindCursor:
		return "cursor"
	case KindSticker:
		return "sticker"
	default:
		return "unknown"
	}
}

// Z bands, back to front.
const (
	zBackground = 0
	zShadow     = 1
	zGlyph      = 2
	zCursor     = 3
	zSticker    = 4
)

// Paper geometry in pixels.
const (
	paperWidth   = 500
	paperHeight  = 250
	penStartX    = 20
	penStartY    = 20
	lineHeight   = 40
	wrapMargin   = 40
	cursorHeight = 30
	shadowOffset = 2

	fontSize        = 24
	stickerFontSize = 45
	exportScale     = 2

	// One terminal cell covers cellWidthPx x lineHeight pixels of paper.
	cellWidthPx = 12
	paperCols   = (paperWidth + cellWidthPx - 1) / cellWidthPx
	paperRows   = (paperHeight + lineHeight - 1) / lineHeight
)

const (
	// Up/Down move the cursor by this many entries. It only matches a visual
	// row when every row holds exactly this many characters.
	verticalStride = 15

	DefaultColor = "#000000"
	shadowColor  = "#C8C8C8"
	cursorColor  = "#FF0000"
	stickerColor = "#000000"
)

const (
	keyWidth       = 4
	tabWidth       = 5
	paletteColumns = 6
	stickerColumns = 5
	doubleClickMs  = 500
)
