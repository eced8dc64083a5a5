package paint

import (
	"fmt"
	"strings"
)

/////////////////////////////////////////////////////////////////////////////
// SGR (Select Graphic Rendition)
/////////////////////////////////////////////////////////////////////////////

// Reset is the SGR sequence that clears all styling.
const Reset = "\x1b[0m"

// Attr is a bit-set of text attributes.
type Attr uint8

const (
	AttrBold Attr = 1 << iota
	AttrItalic
	AttrUnderline
	AttrStrike
)

// attrCodes fixes the canonical serialization order of attributes:
// ascending SGR code (bold 1, italic 3, underline 4, strike 9).
var attrCodes = []struct {
	attr Attr
	code string
}{
	{AttrBold, "1"},
	{AttrItalic, "3"},
	{AttrUnderline, "4"},
	{AttrStrike, "9"},
}

// Style describes an optional foreground color, an optional background
// color and a set of text attributes. It is a value type: every builder
// method returns a modified copy and never touches shared state, so styles
// can be stored and reused freely from any goroutine.
//
// The zero value is the no-op style.
type Style struct {
	fg, bg       Color
	hasFg, hasBg bool
	attrs        Attr
}

// New returns the no-op style.
func New() Style {
	return Style{}
}

// Foreground returns a copy of the style with the foreground color set.
func (s Style) Foreground(c Color) Style {
	s.fg, s.hasFg = c, true
	return s
}

// Background returns a copy of the style with the background color set.
func (s Style) Background(c Color) Style {
	s.bg, s.hasBg = c, true
	return s
}

// Bold returns a copy of the style with the bold flag toggled.
func (s Style) Bold() Style {
	s.attrs ^= AttrBold
	return s
}

// Italic returns a copy of the style with the italic flag toggled.
func (s Style) Italic() Style {
	s.attrs ^= AttrItalic
	return s
}

// Underline returns a copy of the style with the underline flag toggled.
func (s Style) Underline() Style {
	s.attrs ^= AttrUnderline
	return s
}

// Strike returns a copy of the style with the strikethrough flag toggled.
func (s Style) Strike() Style {
	s.attrs ^= AttrStrike
	return s
}

// IsDefault reports whether the style is a no-op: no foreground, no
// background and no attributes. Paint uses this, not the parameter list,
// to decide whether to skip styling.
func (s Style) IsDefault() bool {
	return !s.hasFg && !s.hasBg && s.attrs == 0
}

// params returns the SGR parameter list: attribute codes in canonical
// order, then truecolor foreground, then truecolor background. A no-op
// style yields an empty list. The output depends only on the field values,
// never on the order the builders were called in.
func (s Style) params() []string {
	if s.IsDefault() {
		return nil
	}

	codes := make([]string, 0, 6)
	for _, ac := range attrCodes {
		if s.attrs&ac.attr != 0 {
			codes = append(codes, ac.code)
		}
	}
	if s.hasFg {
		codes = append(codes, fmt.Sprintf("38;2;%d;%d;%d", s.fg.r, s.fg.g, s.fg.b))
	}
	if s.hasBg {
		codes = append(codes, fmt.Sprintf("48;2;%d;%d;%d", s.bg.r, s.bg.g, s.bg.b))
	}
	return codes
}

// Sequence returns the full escape sequence "\x1b[<params>m".
func (s Style) Sequence() string {
	return fmt.Sprintf("\x1b[%sm", strings.Join(s.params(), ";"))
}

func (s Style) String() string {
	return s.Sequence()
}

// Style makes Style its own Styler.
func (s Style) Style() Style { return s }

/////////////////////////////////////////////////////////////////////////////
// STYLER
/////////////////////////////////////////////////////////////////////////////

// Styler is anything that can produce a Style: a Style itself, a Color or
// palette Name (foreground-only default style), or a StylerFunc for
// deferred computation.
type Styler interface {
	Style() Style
}

// StylerFunc adapts a zero-argument function to the Styler interface.
type StylerFunc func() Style

func (f StylerFunc) Style() Style { return f() }
