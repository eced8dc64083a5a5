package paint

import (
	"fmt"
	"io"
	"os"
)

/////////////////////////////////////////////////////////////////////////////
// RENDERING
/////////////////////////////////////////////////////////////////////////////

// Paint renders v with the given style. The value is converted to text
// first (fmt.Sprint); empty text comes back unchanged whatever the style,
// and a default style returns the plain text with no escape bytes at all.
// Otherwise the text is wrapped between the style's escape sequence and
// Reset. Rendering never fails.
func Paint(v any, styler Styler) string {
	text := fmt.Sprint(v)
	if text == "" {
		return text
	}

	style := styler.Style()
	if style.IsDefault() {
		return text
	}

	return style.Sequence() + text + Reset
}

// Fprint renders v with the given style and writes it to w.
func Fprint(w io.Writer, v any, styler Styler) (int, error) {
	return io.WriteString(w, Paint(v, styler))
}

// Fprintln renders v with the given style and writes it to w followed by
// a newline. The newline is outside the styled region.
func Fprintln(w io.Writer, v any, styler Styler) (int, error) {
	return io.WriteString(w, Paint(v, styler)+"\n")
}

// Print renders v with the given style to standard output.
func Print(v any, styler Styler) (int, error) {
	return Fprint(os.Stdout, v, styler)
}

// Println renders v with the given style to standard output, followed by
// a newline.
func Println(v any, styler Styler) (int, error) {
	return Fprintln(os.Stdout, v, styler)
}
