// Package vt replays SGR-styled text onto a tcell simulation screen.
//
// It exists as the consumer side of the escape-sequence wire contract:
// output produced by the paint package can be written to a Terminal and
// then inspected cell by cell, with fully decomposed styling. The CLI uses
// it for the preview command and the tests use it to verify that rendered
// sequences land in terminal cells exactly as intended.
package vt

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Terminal is a fixed-size cell grid driven by a tcell SimulationScreen.
// Only SGR sequences are interpreted; other escape sequences are dropped.
type Terminal struct {
	screen tcell.SimulationScreen
	style  tcell.Style
	x, y   int
	width  int
	height int
}

// New creates a terminal with the given dimensions.
func New(width, height int) (*Terminal, error) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init simulation screen: %w", err)
	}
	screen.SetSize(width, height)

	return &Terminal{
		screen: screen,
		style:  tcell.StyleDefault,
		width:  width,
		height: height,
	}, nil
}

// Write replays s onto the grid: printable runes advance the cursor with
// line wrapping, newline and carriage return move it, and SGR sequences
// update the current style. Unknown SGR parameters are ignored and a
// truncated trailing escape is discarded.
func (t *Terminal) Write(s string) {
	for i := 0; i < len(s); {
		if s[i] == 0x1b {
			i = t.consumeEscape(s, i)
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		t.put(r)
		i += size
	}
	t.screen.Show()
}

// consumeEscape scans the escape sequence starting at i and returns the
// index of the first byte after it. Only CSI ... 'm' is applied.
func (t *Terminal) consumeEscape(s string, i int) int {
	if i+1 >= len(s) || s[i+1] != '[' {
		return i + 1
	}

	j := i + 2
	for j < len(s) && (s[j] == ';' || (s[j] >= '0' && s[j] <= '9')) {
		j++
	}
	if j >= len(s) {
		return len(s)
	}
	if s[j] != 'm' {
		// Some other CSI final byte: skip the whole sequence.
		return j + 1
	}

	raw := s[i+2 : j]
	if raw == "" {
		t.applySGR(nil)
	} else {
		t.applySGR(strings.Split(raw, ";"))
	}
	return j + 1
}

func (t *Terminal) applySGR(params []string) {
	if len(params) == 0 {
		params = []string{"0"}
	}

	for i := 0; i < len(params); i++ {
		code, _ := strconv.Atoi(params[i])

		switch code {
		case 0:
			t.style = tcell.StyleDefault

		case 1:
			t.style = t.style.Bold(true)

		case 3:
			t.style = t.style.Italic(true)

		case 4:
			t.style = t.style.Underline(true)

		case 9:
			t.style = t.style.StrikeThrough(true)

		case 38, 48:
			// Truecolor only: 38;2;r;g;b / 48;2;r;g;b.
			if i+4 < len(params) && params[i+1] == "2" {
				r, _ := strconv.Atoi(params[i+2])
				g, _ := strconv.Atoi(params[i+3])
				b, _ := strconv.Atoi(params[i+4])
				color := tcell.NewRGBColor(int32(r), int32(g), int32(b))
				if code == 38 {
					t.style = t.style.Foreground(color)
				} else {
					t.style = t.style.Background(color)
				}
				i += 4
			}
		}
	}
}

func (t *Terminal) put(r rune) {
	switch r {
	case '\n':
		t.x = 0
		if t.y < t.height-1 {
			t.y++
		}
		return
	case '\r':
		t.x = 0
		return
	}

	if t.x >= t.width {
		t.x = 0
		if t.y < t.height-1 {
			t.y++
		}
	}

	t.screen.SetContent(t.x, t.y, r, nil, t.style)
	t.x++
}

// Cell is the decomposed content of one grid position.
type Cell struct {
	Rune      rune
	Fg, Bg    tcell.Color
	Bold      bool
	Italic    bool
	Underline bool
	Strike    bool
}

// CellAt returns the cell at (x, y).
func (t *Terminal) CellAt(x, y int) Cell {
	r, _, style, _ := t.screen.GetContent(x, y)
	fg, bg, attrs := style.Decompose()

	return Cell{
		Rune:      r,
		Fg:        fg,
		Bg:        bg,
		Bold:      attrs&tcell.AttrBold != 0,
		Italic:    attrs&tcell.AttrItalic != 0,
		Underline: attrs&tcell.AttrUnderline != 0,
		Strike:    attrs&tcell.AttrStrikeThrough != 0,
	}
}

// Snapshot returns the grid text row by row, styling stripped, trailing
// blanks trimmed.
func (t *Terminal) Snapshot() []string {
	rows := make([]string, 0, t.height)
	for y := 0; y < t.height; y++ {
		var sb strings.Builder
		for x := 0; x < t.width; x++ {
			r, _, _, _ := t.screen.GetContent(x, y)
			if r == 0 {
				r = ' '
			}
			sb.WriteRune(r)
		}
		rows = append(rows, strings.TrimRight(sb.String(), " "))
	}
	return rows
}

// StyledCell is a cell together with its grid position, reported by
// StyledCells for every position that carries non-default styling.
type StyledCell struct {
	X, Y int
	Cell
}

// StyledCells returns every styled cell in row-major order.
func (t *Terminal) StyledCells() []StyledCell {
	var cells []StyledCell
	for y := 0; y < t.height; y++ {
		for x := 0; x < t.width; x++ {
			c := t.CellAt(x, y)
			if c.Fg == tcell.ColorDefault && c.Bg == tcell.ColorDefault &&
				!c.Bold && !c.Italic && !c.Underline && !c.Strike {
				continue
			}
			cells = append(cells, StyledCell{X: x, Y: y, Cell: c})
		}
	}
	return cells
}

// Close releases the underlying screen.
func (t *Terminal) Close() {
	t.screen.Fini()
}
