// Package termpaint renders styled terminal text.
//
// A Color is an exact 24-bit RGB value, parsed from or formatted to
// hexadecimal strings. A Name is one of the standard named web colors,
// a closed set that can be cycled through in full from any starting
// entry. A Style combines an optional foreground, an optional background
// and text attributes (bold, italic, underline, strike) and serializes
// to a single ANSI SGR escape sequence. Paint applies any of these to a
// value and appends a reset code, unless the style is a no-op.
//
// Example usage:
//
//	import "termpaint/pkg/termpaint"
//
//	red, _ := termpaint.FromHex("#f00")
//	termpaint.Println("alert", termpaint.New().Foreground(red).Bold())
//	termpaint.Println("calm", termpaint.SeaGreen)
//
// The output destination is assumed to understand ANSI SGR; no terminal
// capability detection is performed.
package termpaint

import (
	"io"
	"iter"

	"termpaint/internal/paint"
)

// Type aliases for public API
type (
	// Color is an exact 24-bit RGB color value.
	Color = paint.Color

	// Name identifies a standard named web color.
	Name = paint.Name

	// Style describes foreground, background and text attributes.
	Style = paint.Style

	// Attr is a bit-set of text attributes.
	Attr = paint.Attr

	// Styler is anything that can produce a Style.
	Styler = paint.Styler

	// StylerFunc adapts a function to the Styler interface.
	StylerFunc = paint.StylerFunc

	// ParseError describes a hex color parse failure.
	ParseError = paint.ParseError
)

// Parse error categories, matched with errors.Is.
var (
	ErrWrongLength = paint.ErrWrongLength
	ErrBadChars    = paint.ErrBadChars
	ErrTruncated   = paint.ErrTruncated
)

// Reset is the SGR sequence that clears all styling.
const Reset = paint.Reset

// Count is the number of entries in the named palette.
const Count = paint.Count

// New returns the no-op style.
func New() Style { return paint.New() }

// FromRGB creates a color from RGB channel values.
func FromRGB(r, g, b uint8) Color { return paint.FromRGB(r, g, b) }

// FromHex parses a "#rrggbb" or "#rgb" hex color string; the leading '#'
// is optional.
func FromHex(input string) (Color, error) { return paint.FromHex(input) }

// ByName looks up a palette entry by display name, case-insensitive.
func ByName(name string) (Name, bool) { return paint.ByName(name) }

// All iterates the named palette in canonical order.
func All() iter.Seq[Name] { return paint.All() }

// Paint renders v with the given style. Empty text and no-op styles come
// back unchanged; otherwise the text is wrapped between the style's
// escape sequence and Reset.
func Paint(v any, styler Styler) string { return paint.Paint(v, styler) }

// Fprint renders v with the given style and writes it to w.
func Fprint(w io.Writer, v any, styler Styler) (int, error) {
	return paint.Fprint(w, v, styler)
}

// Fprintln renders v with the given style and writes it to w followed by
// a newline.
func Fprintln(w io.Writer, v any, styler Styler) (int, error) {
	return paint.Fprintln(w, v, styler)
}

// Print renders v with the given style to standard output.
func Print(v any, styler Styler) (int, error) { return paint.Print(v, styler) }

// Println renders v with the given style to standard output, followed by
// a newline.
func Println(v any, styler Styler) (int, error) { return paint.Println(v, styler) }

// Attribute flags.
const (
	AttrBold      = paint.AttrBold
	AttrItalic    = paint.AttrItalic
	AttrUnderline = paint.AttrUnderline
	AttrStrike    = paint.AttrStrike
)

// The named palette, in canonical (alphabetical) order.
const (
	AliceBlue            = paint.AliceBlue
	AntiqueWhite         = paint.AntiqueWhite
	Aqua                 = paint.Aqua
	AquaMarine           = paint.AquaMarine
	Azure                = paint.Azure
	Beige                = paint.Beige
	Bisque               = paint.Bisque
	Black                = paint.Black
	BlanchedAlmond       = paint.BlanchedAlmond
	Blue                 = paint.Blue
	BlueViolet           = paint.BlueViolet
	Brown                = paint.Brown
	BurlyWood            = paint.BurlyWood
	CadetBlue            = paint.CadetBlue
	Chartreuse           = paint.Chartreuse
	Chocolate            = paint.Chocolate
	Coral                = paint.Coral
	CornFlowerBlue       = paint.CornFlowerBlue
	CornSilk             = paint.CornSilk
	Crimson              = paint.Crimson
	Cyan                 = paint.Cyan
	DarkBlue             = paint.DarkBlue
	DarkCyan             = paint.DarkCyan
	DarkGoldenRod        = paint.DarkGoldenRod
	DarkGray             = paint.DarkGray
	DarkGreen            = paint.DarkGreen
	DarkGrey             = paint.DarkGrey
	DarkKhaki            = paint.DarkKhaki
	DarkMagenta          = paint.DarkMagenta
	DarkOliveGreen       = paint.DarkOliveGreen
	DarkOrange           = paint.DarkOrange
	DarkOrchid           = paint.DarkOrchid
	DarkRed              = paint.DarkRed
	DarkSalmon           = paint.DarkSalmon
	DarkSeaGreen         = paint.DarkSeaGreen
	DarkSlateBlue        = paint.DarkSlateBlue
	DarkSlateGray        = paint.DarkSlateGray
	DarkTurquoise        = paint.DarkTurquoise
	DarkViolet           = paint.DarkViolet
	DeepPink             = paint.DeepPink
	DeepSkyBlue          = paint.DeepSkyBlue
	DimGray              = paint.DimGray
	DimGrey              = paint.DimGrey
	DodgerBlue           = paint.DodgerBlue
	Firebrick            = paint.Firebrick
	FloralWhite          = paint.FloralWhite
	ForestGreen          = paint.ForestGreen
	Fuschia              = paint.Fuschia
	Gainsboro            = paint.Gainsboro
	GhostWhite           = paint.GhostWhite
	Gold                 = paint.Gold
	GoldenRod            = paint.GoldenRod
	Gray                 = paint.Gray
	Green                = paint.Green
	GreenYellow          = paint.GreenYellow
	Grey                 = paint.Grey
	Honeydew             = paint.Honeydew
	HotPink              = paint.HotPink
	IndianRed            = paint.IndianRed
	Indigo               = paint.Indigo
	Ivory                = paint.Ivory
	Khaki                = paint.Khaki
	Lavender             = paint.Lavender
	LavenderBlush        = paint.LavenderBlush
	LawnGreen            = paint.LawnGreen
	LemonChiffon         = paint.LemonChiffon
	LightBlue            = paint.LightBlue
	LightCoral           = paint.LightCoral
	LightCyan            = paint.LightCyan
	LightGoldenRodYellow = paint.LightGoldenRodYellow
	LightGray            = paint.LightGray
	LightGreen           = paint.LightGreen
	LightGrey            = paint.LightGrey
	LightPink            = paint.LightPink
	LightSalmon          = paint.LightSalmon
	LightSeaGreen        = paint.LightSeaGreen
	LightSkyBlue         = paint.LightSkyBlue
	LightSlateGray       = paint.LightSlateGray
	LightSteelBlue       = paint.LightSteelBlue
	LightYellow          = paint.LightYellow
	Lime                 = paint.Lime
	LimeGreen            = paint.LimeGreen
	Linen                = paint.Linen
	Magenta              = paint.Magenta
	Maroon               = paint.Maroon
	MediumAquaMarine     = paint.MediumAquaMarine
	MediumBlue           = paint.MediumBlue
	MediumOrchid         = paint.MediumOrchid
	MediumPurple         = paint.MediumPurple
	MediumSeaGreen       = paint.MediumSeaGreen
	MediumSlateBlue      = paint.MediumSlateBlue
	MediumSpringGreen    = paint.MediumSpringGreen
	MediumTurquoise      = paint.MediumTurquoise
	MediumVioletRed      = paint.MediumVioletRed
	MidnightBlue         = paint.MidnightBlue
	MintCream            = paint.MintCream
	MistyRose            = paint.MistyRose
	Moccasin             = paint.Moccasin
	NavajoWhite          = paint.NavajoWhite
	Navy                 = paint.Navy
	OldLace              = paint.OldLace
	Olive                = paint.Olive
	OliveDrab            = paint.OliveDrab
	Orange               = paint.Orange
	OrangeRed            = paint.OrangeRed
	Orchid               = paint.Orchid
	PaleGoldenRod        = paint.PaleGoldenRod
	PaleGreen            = paint.PaleGreen
	PaleTurquoise        = paint.PaleTurquoise
	PaleVioletRed        = paint.PaleVioletRed
	PapayaWhip           = paint.PapayaWhip
	PeachPuff            = paint.PeachPuff
	Peru                 = paint.Peru
	Pink                 = paint.Pink
	Plum                 = paint.Plum
	PowderBlue           = paint.PowderBlue
	Purple               = paint.Purple
	Red                  = paint.Red
	RosyBrown            = paint.RosyBrown
	RoyalBlue            = paint.RoyalBlue
	SaddleBrown          = paint.SaddleBrown
	Salmon               = paint.Salmon
	SandyBrown           = paint.SandyBrown
	SeaGreen             = paint.SeaGreen
	SeaShell             = paint.SeaShell
	Sienna               = paint.Sienna
	Silver               = paint.Silver
	SkyBlue              = paint.SkyBlue
	SlateBlue            = paint.SlateBlue
	SlateGray            = paint.SlateGray
	Snow                 = paint.Snow
	SpringGreen          = paint.SpringGreen
	SteelBlue            = paint.SteelBlue
	Tan                  = paint.Tan
	Teal                 = paint.Teal
	Thistle              = paint.Thistle
	Tomato               = paint.Tomato
	Turquoise            = paint.Turquoise
	Violet               = paint.Violet
	Wheat                = paint.Wheat
	White                = paint.White
	WhiteSmoke           = paint.WhiteSmoke
	Yellow               = paint.Yellow
	YellowGreen          = paint.YellowGreen
)
