package main

import (
	"bufio"
	"fmt"
	"image"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
)

// cell is one terminal cell of the projected paper.
type cell struct {
	ch     string
	fg     string
	bg     string
	cursor bool
	wide   bool // second half of a double width glyph
}

// Canvas is the paper projected onto paperCols x paperRows terminal cells.
type Canvas struct {
	cells [][]cell
}

// NewCanvas projects scene onto terminal cells. background, when not nil,
// is sampled once per cell; paper is the colour used without one.
func NewCanvas(scene *Scene, background image.Image, paper string) *Canvas {
	c := &Canvas{cells: make([][]cell, paperRows)}
	for r := range c.cells {
		c.cells[r] = make([]cell, paperCols)
		for col := range c.cells[r] {
			c.cells[r][col] = cell{ch: " ", bg: paper}
		}
	}

	for _, e := range scene.Items() {
		switch e.Kind {
		case KindBackground:
			if background != nil {
				c.paintBackground(background)
			}
		case KindShadow:
			// A 2px offset is below the resolution of a cell; the glyph
			// drawn next covers it.
		case KindGlyph, KindSticker:
			c.put(cellCol(e.X), cellRow(e.Y), e.Text, e.Color)
		case KindCursor:
			c.markCursor(cellCol(e.X), cellRow(e.Y))
		}
	}
	return c
}

func cellCol(x float64) int {
	return int(x) / cellWidthPx
}

func cellRow(y float64) int {
	return int(y) / lineHeight
}

func (c *Canvas) valid(row, col int) bool {
	return row >= 0 && row < len(c.cells) && col >= 0 && col < len(c.cells[row])
}

func (c *Canvas) paintBackground(img image.Image) {
	b := img.Bounds()
	for r := range c.cells {
		for col := range c.cells[r] {
			px := b.Min.X + col*cellWidthPx + cellWidthPx/2
			py := b.Min.Y + r*lineHeight + lineHeight/2
			if px >= b.Max.X {
				px = b.Max.X - 1
			}
			if py >= b.Max.Y {
				py = b.Max.Y - 1
			}
			clr, ok := colorful.MakeColor(img.At(px, py))
			if !ok {
				continue
			}
			c.cells[r][col].bg = clr.Hex()
		}
	}
}

// put writes text into the cell at (row, col), taking two cells for double
// width glyphs and repairing any wide glyph it cuts in half.
func (c *Canvas) put(col, row int, text, fg string) {
	if !c.valid(row, col) {
		return
	}
	w := runewidth.StringWidth(text)
	if w < 1 {
		w = 1
	}
	if w > 1 && !c.valid(row, col+1) {
		return
	}
	line := c.cells[row]
	if line[col].wide && col > 0 {
		line[col-1].ch = " "
	}
	if col+w < len(line) && line[col+w].wide {
		line[col+w].ch = " "
		line[col+w].wide = false
	}
	line[col].ch = text
	line[col].fg = fg
	line[col].wide = false
	if w > 1 {
		line[col+1].ch = ""
		line[col+1].wide = true
	}
}

func (c *Canvas) markCursor(col, row int) {
	if !c.valid(row, col) {
		return
	}
	if c.cells[row][col].wide && col > 0 {
		col--
	}
	c.cells[row][col].cursor = true
}

// Render returns one styled string per terminal row.
func (c *Canvas) Render() []string {
	lines := make([]string, len(c.cells))
	for r, row := range c.cells {
		var sb strings.Builder
		for _, cl := range row {
			if cl.wide {
				continue
			}
			st := lipgloss.NewStyle()
			if cl.bg != "" {
				st = st.Background(lipgloss.Color(cl.bg))
			}
			if cl.fg != "" {
				st = st.Foreground(lipgloss.Color(cl.fg))
			}
			ch := cl.ch
			if cl.cursor {
				st = st.Foreground(lipgloss.Color(cursorColor)).Reverse(true)
				if ch == " " {
					ch = "▏"
				}
			}
			sb.WriteString(st.Render(ch))
		}
		lines[r] = sb.String()
	}
	return lines
}

// Plain returns the projection as unstyled text, one string per row.
func (c *Canvas) Plain() []string {
	lines := make([]string, len(c.cells))
	for r, row := range c.cells {
		var sb strings.Builder
		for _, cl := range row {
			if cl.wide {
				continue
			}
			sb.WriteString(cl.ch)
		}
		lines[r] = sb.String()
	}
	return lines
}

// CursorCell reports the cell holding the cursor, if any.
func (c *Canvas) CursorCell() (row, col int, ok bool) {
	for r, line := range c.cells {
		for col, cl := range line {
			if cl.cursor {
				return r, col, true
			}
		}
	}
	return 0, 0, false
}

// letter is a saved paper: entries, cursor, stickers and theme.
type letter struct {
	Entries  []CharacterEntry
	Cursor   int
	Stickers []StickerEntry
	Theme    string
}

func (l letter) SaveToFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	fmt.Fprintf(w, "LETTER\n")
	fmt.Fprintf(w, "CURSOR:%d\n", l.Cursor)
	fmt.Fprintf(w, "THEME:%s\n", strconv.Quote(l.Theme))
	fmt.Fprintf(w, "ENTRIES:%d\n", len(l.Entries))
	for _, e := range l.Entries {
		fmt.Fprintf(w, "%s,%s\n", e.Color, strconv.Quote(e.Char))
	}
	fmt.Fprintf(w, "STICKERS:%d\n", len(l.Stickers))
	for _, s := range l.Stickers {
		fmt.Fprintf(w, "%d,%g,%g,%s\n", s.ID, s.X, s.Y, strconv.Quote(s.Glyph))
	}
	return w.Flush()
}

func loadLetter(filename string) (letter, error) {
	var l letter
	file, err := os.Open(filename)
	if err != nil {
		return l, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	if !scanner.Scan() || scanner.Text() != "LETTER" {
		return l, fmt.Errorf("%s: not a letter file", filename)
	}

	section := ""
	remaining := 0
	lineNo := 1
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if remaining == 0 {
			key, value, ok := strings.Cut(line, ":")
			if !ok {
				return l, fmt.Errorf("%s:%d: expected section header", filename, lineNo)
			}
			switch key {
			case "CURSOR":
				if l.Cursor, err = strconv.Atoi(value); err != nil {
					return l, fmt.Errorf("%s:%d: cursor: %w", filename, lineNo, err)
				}
			case "THEME":
				if l.Theme, err = strconv.Unquote(value); err != nil {
					return l, fmt.Errorf("%s:%d: theme: %w", filename, lineNo, err)
				}
			case "ENTRIES", "STICKERS":
				if remaining, err = strconv.Atoi(value); err != nil || remaining < 0 {
					return l, fmt.Errorf("%s:%d: bad %s count", filename, lineNo, strings.ToLower(key))
				}
				section = key
			default:
				return l, fmt.Errorf("%s:%d: unknown section %q", filename, lineNo, key)
			}
			continue
		}

		remaining--
		switch section {
		case "ENTRIES":
			color, quoted, ok := strings.Cut(line, ",")
			if !ok {
				return l, fmt.Errorf("%s:%d: bad entry", filename, lineNo)
			}
			char, err := strconv.Unquote(quoted)
			if err != nil {
				return l, fmt.Errorf("%s:%d: entry: %w", filename, lineNo, err)
			}
			l.Entries = append(l.Entries, CharacterEntry{Char: char, Color: color})
		case "STICKERS":
			parts := strings.SplitN(line, ",", 4)
			if len(parts) != 4 {
				return l, fmt.Errorf("%s:%d: bad sticker", filename, lineNo)
			}
			var s StickerEntry
			s.ID, err = strconv.Atoi(parts[0])
			if err == nil {
				s.X, err = strconv.ParseFloat(parts[1], 64)
			}
			if err == nil {
				s.Y, err = strconv.ParseFloat(parts[2], 64)
			}
			if err == nil {
				s.Glyph, err = strconv.Unquote(parts[3])
			}
			if err != nil {
				return l, fmt.Errorf("%s:%d: sticker: %w", filename, lineNo, err)
			}
			l.Stickers = append(l.Stickers, s)
		}
	}
	if err := scanner.Err(); err != nil {
		return l, err
	}
	if remaining != 0 {
		return l, fmt.Errorf("%s: truncated %s section", filename, strings.ToLower(section))
	}
	return l, nil
}
