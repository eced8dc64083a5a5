package paint

import (
	"iter"
	"strings"
)

/////////////////////////////////////////////////////////////////////////////
// NAMED PALETTE
/////////////////////////////////////////////////////////////////////////////

// Name identifies one of the standard named web colors. The set is closed
// and ordered alphabetically; Next links the entries into a single cycle.
type Name int

const (
	AliceBlue Name = iota
	AntiqueWhite
	Aqua
	AquaMarine
	Azure
	Beige
	Bisque
	Black
	BlanchedAlmond
	Blue
	BlueViolet
	Brown
	BurlyWood
	CadetBlue
	Chartreuse
	Chocolate
	Coral
	CornFlowerBlue
	CornSilk
	Crimson
	Cyan
	DarkBlue
	DarkCyan
	DarkGoldenRod
	DarkGray
	DarkGreen
	DarkGrey
	DarkKhaki
	DarkMagenta
	DarkOliveGreen
	DarkOrange
	DarkOrchid
	DarkRed
	DarkSalmon
	DarkSeaGreen
	DarkSlateBlue
	DarkSlateGray
	DarkTurquoise
	DarkViolet
	DeepPink
	DeepSkyBlue
	DimGray
	DimGrey
	DodgerBlue
	Firebrick
	FloralWhite
	ForestGreen
	Fuschia
	Gainsboro
	GhostWhite
	Gold
	GoldenRod
	Gray
	Green
	GreenYellow
	Grey
	Honeydew
	HotPink
	IndianRed
	Indigo
	Ivory
	Khaki
	Lavender
	LavenderBlush
	LawnGreen
	LemonChiffon
	LightBlue
	LightCoral
	LightCyan
	LightGoldenRodYellow
	LightGray
	LightGreen
	LightGrey
	LightPink
	LightSalmon
	LightSeaGreen
	LightSkyBlue
	LightSlateGray
	LightSteelBlue
	LightYellow
	Lime
	LimeGreen
	Linen
	Magenta
	Maroon
	MediumAquaMarine
	MediumBlue
	MediumOrchid
	MediumPurple
	MediumSeaGreen
	MediumSlateBlue
	MediumSpringGreen
	MediumTurquoise
	MediumVioletRed
	MidnightBlue
	MintCream
	MistyRose
	Moccasin
	NavajoWhite
	Navy
	OldLace
	Olive
	OliveDrab
	Orange
	OrangeRed
	Orchid
	PaleGoldenRod
	PaleGreen
	PaleTurquoise
	PaleVioletRed
	PapayaWhip
	PeachPuff
	Peru
	Pink
	Plum
	PowderBlue
	Purple
	Red
	RosyBrown
	RoyalBlue
	SaddleBrown
	Salmon
	SandyBrown
	SeaGreen
	SeaShell
	Sienna
	Silver
	SkyBlue
	SlateBlue
	SlateGray
	Snow
	SpringGreen
	SteelBlue
	Tan
	Teal
	Thistle
	Tomato
	Turquoise
	Violet
	Wheat
	White
	WhiteSmoke
	Yellow
	YellowGreen

	paletteSize
)

// Count is the number of entries in the named palette.
const Count = int(paletteSize)

// palette is the single source of truth for the named colors: display name
// and RGB value per entry, indexed by ordinal. The successor relation and
// cycle closure fall out of the array order.
var palette = [paletteSize]struct {
	name  string
	color Color
}{
	AliceBlue:            {"AliceBlue", Color{240, 248, 255}},
	AntiqueWhite:         {"AntiqueWhite", Color{250, 235, 215}},
	Aqua:                 {"Aqua", Color{0, 255, 255}},
	AquaMarine:           {"AquaMarine", Color{127, 255, 212}},
	Azure:                {"Azure", Color{240, 255, 255}},
	Beige:                {"Beige", Color{245, 245, 220}},
	Bisque:               {"Bisque", Color{255, 228, 196}},
	Black:                {"Black", Color{0, 0, 0}},
	BlanchedAlmond:       {"BlanchedAlmond", Color{255, 235, 205}},
	Blue:                 {"Blue", Color{0, 0, 255}},
	BlueViolet:           {"BlueViolet", Color{138, 43, 226}},
	Brown:                {"Brown", Color{165, 42, 42}},
	BurlyWood:            {"BurlyWood", Color{222, 184, 135}},
	CadetBlue:            {"CadetBlue", Color{95, 158, 160}},
	Chartreuse:           {"Chartreuse", Color{127, 255, 0}},
	Chocolate:            {"Chocolate", Color{210, 105, 30}},
	Coral:                {"Coral", Color{255, 127, 80}},
	CornFlowerBlue:       {"CornFlowerBlue", Color{100, 149, 237}},
	CornSilk:             {"CornSilk", Color{255, 248, 220}},
	Crimson:              {"Crimson", Color{220, 20, 60}},
	Cyan:                 {"Cyan", Color{0, 255, 255}},
	DarkBlue:             {"DarkBlue", Color{0, 0, 139}},
	DarkCyan:             {"DarkCyan", Color{0, 139, 139}},
	DarkGoldenRod:        {"DarkGoldenRod", Color{184, 134, 11}},
	DarkGray:             {"DarkGray", Color{169, 169, 169}},
	DarkGreen:            {"DarkGreen", Color{0, 100, 0}},
	DarkGrey:             {"DarkGrey", Color{169, 169, 169}},
	DarkKhaki:            {"DarkKhaki", Color{189, 183, 107}},
	DarkMagenta:          {"DarkMagenta", Color{139, 0, 139}},
	DarkOliveGreen:       {"DarkOliveGreen", Color{85, 107, 47}},
	DarkOrange:           {"DarkOrange", Color{255, 140, 0}},
	DarkOrchid:           {"DarkOrchid", Color{153, 50, 204}},
	DarkRed:              {"DarkRed", Color{139, 0, 0}},
	DarkSalmon:           {"DarkSalmon", Color{233, 150, 122}},
	DarkSeaGreen:         {"DarkSeaGreen", Color{143, 188, 143}},
	DarkSlateBlue:        {"DarkSlateBlue", Color{72, 61, 139}},
	DarkSlateGray:        {"DarkSlateGray", Color{47, 79, 79}},
	DarkTurquoise:        {"DarkTurquoise", Color{0, 206, 209}},
	DarkViolet:           {"DarkViolet", Color{148, 0, 211}},
	DeepPink:             {"DeepPink", Color{255, 20, 147}},
	DeepSkyBlue:          {"DeepSkyBlue", Color{0, 191, 255}},
	DimGray:              {"DimGray", Color{105, 105, 105}},
	DimGrey:              {"DimGrey", Color{105, 105, 105}},
	DodgerBlue:           {"DodgerBlue", Color{30, 144, 255}},
	Firebrick:            {"Firebrick", Color{178, 34, 34}},
	FloralWhite:          {"FloralWhite", Color{255, 250, 240}},
	ForestGreen:          {"ForestGreen", Color{34, 139, 34}},
	Fuschia:              {"Fuschia", Color{255, 0, 255}},
	Gainsboro:            {"Gainsboro", Color{220, 220, 220}},
	GhostWhite:           {"GhostWhite", Color{248, 248, 255}},
	Gold:                 {"Gold", Color{255, 215, 0}},
	GoldenRod:            {"GoldenRod", Color{218, 165, 32}},
	Gray:                 {"Gray", Color{128, 128, 128}},
	Green:                {"Green", Color{0, 128, 0}},
	GreenYellow:          {"GreenYellow", Color{173, 255, 47}},
	Grey:                 {"Grey", Color{128, 128, 128}},
	Honeydew:             {"Honeydew", Color{240, 255, 240}},
	HotPink:              {"HotPink", Color{255, 105, 180}},
	IndianRed:            {"IndianRed", Color{205, 92, 92}},
	Indigo:               {"Indigo", Color{75, 0, 130}},
	Ivory:                {"Ivory", Color{255, 255, 240}},
	Khaki:                {"Khaki", Color{240, 230, 140}},
	Lavender:             {"Lavender", Color{230, 230, 250}},
	LavenderBlush:        {"LavenderBlush", Color{255, 240, 245}},
	LawnGreen:            {"LawnGreen", Color{124, 252, 0}},
	LemonChiffon:         {"LemonChiffon", Color{255, 250, 205}},
	LightBlue:            {"LightBlue", Color{173, 216, 230}},
	LightCoral:           {"LightCoral", Color{240, 128, 128}},
	LightCyan:            {"LightCyan", Color{224, 255, 255}},
	LightGoldenRodYellow: {"LightGoldenRodYellow", Color{250, 250, 210}},
	LightGray:            {"LightGray", Color{211, 211, 211}},
	LightGreen:           {"LightGreen", Color{144, 238, 144}},
	LightGrey:            {"LightGrey", Color{211, 211, 211}},
	LightPink:            {"LightPink", Color{255, 182, 193}},
	LightSalmon:          {"LightSalmon", Color{255, 160, 122}},
	LightSeaGreen:        {"LightSeaGreen", Color{32, 178, 170}},
	LightSkyBlue:         {"LightSkyBlue", Color{135, 206, 250}},
	LightSlateGray:       {"LightSlateGray", Color{119, 136, 153}},
	LightSteelBlue:       {"LightSteelBlue", Color{176, 196, 222}},
	LightYellow:          {"LightYellow", Color{255, 255, 224}},
	Lime:                 {"Lime", Color{0, 255, 0}},
	LimeGreen:            {"LimeGreen", Color{50, 205, 50}},
	Linen:                {"Linen", Color{250, 240, 230}},
	Magenta:              {"Magenta", Color{255, 0, 255}},
	Maroon:               {"Maroon", Color{128, 0, 0}},
	MediumAquaMarine:     {"MediumAquaMarine", Color{102, 205, 170}},
	MediumBlue:           {"MediumBlue", Color{0, 0, 205}},
	MediumOrchid:         {"MediumOrchid", Color{186, 85, 211}},
	MediumPurple:         {"MediumPurple", Color{147, 112, 219}},
	MediumSeaGreen:       {"MediumSeaGreen", Color{60, 179, 113}},
	MediumSlateBlue:      {"MediumSlateBlue", Color{123, 104, 238}},
	MediumSpringGreen:    {"MediumSpringGreen", Color{0, 250, 154}},
	MediumTurquoise:      {"MediumTurquoise", Color{72, 209, 204}},
	MediumVioletRed:      {"MediumVioletRed", Color{199, 21, 133}},
	MidnightBlue:         {"MidnightBlue", Color{25, 25, 112}},
	MintCream:            {"MintCream", Color{245, 255, 250}},
	MistyRose:            {"MistyRose", Color{255, 228, 225}},
	Moccasin:             {"Moccasin", Color{255, 228, 181}},
	NavajoWhite:          {"NavajoWhite", Color{255, 222, 173}},
	Navy:                 {"Navy", Color{0, 0, 128}},
	OldLace:              {"OldLace", Color{253, 245, 230}},
	Olive:                {"Olive", Color{128, 128, 0}},
	OliveDrab:            {"OliveDrab", Color{107, 142, 35}},
	Orange:               {"Orange", Color{255, 165, 0}},
	OrangeRed:            {"OrangeRed", Color{255, 69, 0}},
	Orchid:               {"Orchid", Color{218, 112, 214}},
	PaleGoldenRod:        {"PaleGoldenRod", Color{238, 232, 170}},
	PaleGreen:            {"PaleGreen", Color{152, 251, 152}},
	PaleTurquoise:        {"PaleTurquoise", Color{175, 238, 238}},
	PaleVioletRed:        {"PaleVioletRed", Color{219, 112, 147}},
	PapayaWhip:           {"PapayaWhip", Color{255, 239, 213}},
	PeachPuff:            {"PeachPuff", Color{255, 218, 185}},
	Peru:                 {"Peru", Color{205, 133, 63}},
	Pink:                 {"Pink", Color{255, 192, 203}},
	Plum:                 {"Plum", Color{221, 160, 221}},
	PowderBlue:           {"PowderBlue", Color{176, 224, 230}},
	Purple:               {"Purple", Color{128, 0, 128}},
	Red:                  {"Red", Color{255, 0, 0}},
	RosyBrown:            {"RosyBrown", Color{188, 143, 143}},
	RoyalBlue:            {"RoyalBlue", Color{65, 105, 225}},
	SaddleBrown:          {"SaddleBrown", Color{139, 69, 19}},
	Salmon:               {"Salmon", Color{250, 128, 114}},
	SandyBrown:           {"SandyBrown", Color{244, 164, 96}},
	SeaGreen:             {"SeaGreen", Color{46, 139, 87}},
	SeaShell:             {"SeaShell", Color{255, 245, 238}},
	Sienna:               {"Sienna", Color{160, 82, 45}},
	Silver:               {"Silver", Color{192, 192, 192}},
	SkyBlue:              {"SkyBlue", Color{135, 206, 235}},
	SlateBlue:            {"SlateBlue", Color{106, 90, 205}},
	SlateGray:            {"SlateGray", Color{112, 128, 144}},
	Snow:                 {"Snow", Color{255, 250, 250}},
	SpringGreen:          {"SpringGreen", Color{0, 255, 127}},
	SteelBlue:            {"SteelBlue", Color{70, 130, 180}},
	Tan:                  {"Tan", Color{210, 180, 140}},
	Teal:                 {"Teal", Color{0, 128, 128}},
	Thistle:              {"Thistle", Color{216, 191, 216}},
	Tomato:               {"Tomato", Color{255, 99, 71}},
	Turquoise:            {"Turquoise", Color{64, 224, 208}},
	Violet:               {"Violet", Color{238, 130, 238}},
	Wheat:                {"Wheat", Color{245, 222, 179}},
	White:                {"White", Color{255, 255, 255}},
	WhiteSmoke:           {"WhiteSmoke", Color{245, 245, 245}},
	Yellow:               {"Yellow", Color{255, 255, 0}},
	YellowGreen:          {"YellowGreen", Color{154, 205, 50}},
}

// byName resolves lowercase display names back to entries. Alias spellings
// (Aqua/Cyan, Gray/Grey, ...) are distinct entries that happen to share an
// RGB value.
var byName = func() map[string]Name {
	m := make(map[string]Name, Count)
	for n := range paletteSize {
		m[strings.ToLower(palette[n].name)] = n
	}
	return m
}()

// ByName looks up a palette entry by its display name, case-insensitive.
func ByName(name string) (Name, bool) {
	n, ok := byName[strings.ToLower(name)]
	return n, ok
}

// String returns the display name of the entry.
func (n Name) String() string {
	return palette[n].name
}

// Color returns the fixed RGB value of the entry.
func (n Name) Color() Color {
	return palette[n].color
}

// Hex returns the entry's RGB value formatted as "#rrggbb".
func (n Name) Hex() string {
	return palette[n].color.Hex()
}

// Next returns the successor entry. Applied repeatedly it walks the whole
// palette exactly once before returning to its start.
func (n Name) Next() Name {
	return (n + 1) % paletteSize
}

// Cycle returns a lazy sequence of exactly Count entries, beginning at n
// and following Next, stopping just before revisiting n. Starting from a
// different entry yields the same relative order, rotated.
func (n Name) Cycle() iter.Seq[Name] {
	return func(yield func(Name) bool) {
		c := n
		for {
			if !yield(c) {
				return
			}
			c = c.Next()
			if c == n {
				return
			}
		}
	}
}

// All iterates the whole palette in canonical order.
func All() iter.Seq[Name] {
	return AliceBlue.Cycle()
}

// Style returns the default style for the entry's color: foreground only,
// no background, no attributes.
func (n Name) Style() Style {
	return n.Color().Style()
}
