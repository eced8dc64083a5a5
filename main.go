package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/gdamore/tcell/v2"

	"termpaint/internal/textenc"
	"termpaint/internal/vt"
	"termpaint/pkg/termpaint"
)

var cli struct {
	Paint   paintCmd   `cmd:"" default:"withargs" help:"Style text from a file or piped stdin."`
	Palette paletteCmd `cmd:"" help:"List every named color with a swatch."`
	Preview previewCmd `cmd:"" help:"Replay styled input into a cell grid and dump the cells."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("termpaint"),
		kong.Description("Render styled terminal text using ANSI SGR escape sequences."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(ctx.Run())
}

// readInput returns the contents of path, or of stdin when path is empty
// and stdin is a pipe.
func readInput(path string) ([]byte, error) {
	if path != "" {
		return os.ReadFile(path)
	}

	stat, err := os.Stdin.Stat()
	if err != nil {
		return nil, fmt.Errorf("checking stdin: %w", err)
	}
	if (stat.Mode() & os.ModeCharDevice) != 0 {
		return nil, fmt.Errorf("no input: give a file argument or pipe data to stdin")
	}
	return io.ReadAll(os.Stdin)
}

// resolveColor accepts a palette name ("SeaGreen") or a hex string ("#2e8b57").
func resolveColor(spec string) (termpaint.Color, error) {
	if name, ok := termpaint.ByName(spec); ok {
		return name.Color(), nil
	}
	c, err := termpaint.FromHex(spec)
	if err != nil {
		return termpaint.Color{}, fmt.Errorf("%q is neither a palette name nor a hex color: %w", spec, err)
	}
	return c, nil
}

/////////////////////////////////////////////////////////////////////////////
// PAINT
/////////////////////////////////////////////////////////////////////////////

type paintCmd struct {
	Fg        string `help:"Foreground color: palette name or hex string." short:"f"`
	Bg        string `help:"Background color: palette name or hex string." short:"b"`
	Bold      bool   `help:"Bold text."`
	Italic    bool   `help:"Italic text."`
	Underline bool   `help:"Underlined text."`
	Strike    bool   `help:"Struck-through text."`
	Encoding  string `help:"Source encoding of the input." enum:"utf8,cp437,cp850,iso-8859-1" default:"utf8"`
	File      string `arg:"" optional:"" help:"Input file (defaults to piped stdin)."`
}

func (c *paintCmd) Run() error {
	data, err := readInput(c.File)
	if err != nil {
		return err
	}

	data, err = textenc.Decode(data, c.Encoding)
	if err != nil {
		return err
	}

	style, err := c.style()
	if err != nil {
		return err
	}

	_, err = termpaint.Fprint(os.Stdout, string(data), style)
	return err
}

func (c *paintCmd) style() (termpaint.Style, error) {
	s := termpaint.New()

	if c.Fg != "" {
		col, err := resolveColor(c.Fg)
		if err != nil {
			return s, err
		}
		s = s.Foreground(col)
	}
	if c.Bg != "" {
		col, err := resolveColor(c.Bg)
		if err != nil {
			return s, err
		}
		s = s.Background(col)
	}
	if c.Bold {
		s = s.Bold()
	}
	if c.Italic {
		s = s.Italic()
	}
	if c.Underline {
		s = s.Underline()
	}
	if c.Strike {
		s = s.Strike()
	}
	return s, nil
}

/////////////////////////////////////////////////////////////////////////////
// PALETTE
/////////////////////////////////////////////////////////////////////////////

type paletteCmd struct{}

func (c *paletteCmd) Run() error {
	for name := range termpaint.All() {
		swatch := termpaint.Paint("   ", termpaint.New().Background(name.Color()))
		if _, err := fmt.Printf("%s %-20s %s\n", swatch, name, name.Hex()); err != nil {
			return err
		}
	}
	return nil
}

/////////////////////////////////////////////////////////////////////////////
// PREVIEW
/////////////////////////////////////////////////////////////////////////////

type previewCmd struct {
	Width  int    `help:"Grid width." default:"80"`
	Height int    `help:"Grid height." default:"25"`
	File   string `arg:"" optional:"" help:"Styled input file (defaults to piped stdin)."`
}

func (c *previewCmd) Run() error {
	data, err := readInput(c.File)
	if err != nil {
		return err
	}

	term, err := vt.New(c.Width, c.Height)
	if err != nil {
		return err
	}
	defer term.Close()

	term.Write(string(data))

	for _, row := range term.Snapshot() {
		fmt.Println(row)
	}

	cells := term.StyledCells()
	if len(cells) == 0 {
		return nil
	}

	fmt.Printf("\n%d styled cells:\n", len(cells))
	for _, cell := range cells {
		fmt.Printf("  (%d,%d) %q%s\n", cell.X, cell.Y, cell.Rune, describeCell(cell.Cell))
	}
	return nil
}

func describeCell(c vt.Cell) string {
	var parts []string
	if c.Fg != tcell.ColorDefault {
		parts = append(parts, fmt.Sprintf("fg=#%06x", c.Fg.Hex()))
	}
	if c.Bg != tcell.ColorDefault {
		parts = append(parts, fmt.Sprintf("bg=#%06x", c.Bg.Hex()))
	}
	if c.Bold {
		parts = append(parts, "bold")
	}
	if c.Italic {
		parts = append(parts, "italic")
	}
	if c.Underline {
		parts = append(parts, "underline")
	}
	if c.Strike {
		parts = append(parts, "strike")
	}
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, " ")
}
