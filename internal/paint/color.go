package paint

import (
	"cmp"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

/////////////////////////////////////////////////////////////////////////////
// COLOR
/////////////////////////////////////////////////////////////////////////////

// Parsing errors returned by FromHex, always wrapped in a *ParseError.
var (
	// ErrWrongLength reports a hex string whose digit count (after the
	// optional leading '#') is neither 3 nor 6.
	ErrWrongLength = errors.New("hex color must have 3 or 6 digits")

	// ErrBadChars reports a digit group that is not valid hexadecimal.
	ErrBadChars = errors.New("hex color contains invalid characters")

	// ErrTruncated reports input that ran out mid-parse. The length check
	// makes this unreachable in practice, but it stays a representable
	// outcome rather than a panic.
	ErrTruncated = errors.New("hex color ended unexpectedly")
)

// ParseError describes a failure to parse a hex color string.
// It wraps one of the sentinel errors above, so callers can test the
// category with errors.Is while keeping the offending input.
type ParseError struct {
	Input string
	err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse color %q: %v", e.Input, e.err)
}

func (e *ParseError) Unwrap() error { return e.err }

// Color is an exact 24-bit RGB color. It is an immutable value type:
// freely copyable, comparable, and usable as a map key.
type Color struct {
	r, g, b uint8
}

// FromRGB creates a new color from the given RGB channel values.
func FromRGB(r, g, b uint8) Color {
	return Color{r, g, b}
}

// FromHex parses a hexadecimal color string. The string may carry an
// optional leading '#' and must contain exactly 3 or 6 hex digits,
// case-insensitive. The 3-digit form duplicates each digit, so "f0a"
// parses as "ff00aa". Malformed input is always rejected, never clamped.
func FromHex(input string) (Color, error) {
	digits := strings.TrimPrefix(input, "#")

	var double bool
	switch len(digits) {
	case 3:
		double = false
	case 6:
		double = true
	default:
		return Color{}, &ParseError{Input: input, err: ErrWrongLength}
	}

	var rgb [3]uint8
	for i := range rgb {
		var pair string
		if double {
			if 2*i+2 > len(digits) {
				return Color{}, &ParseError{Input: input, err: ErrTruncated}
			}
			pair = digits[2*i : 2*i+2]
		} else {
			if i >= len(digits) {
				return Color{}, &ParseError{Input: input, err: ErrTruncated}
			}
			pair = string([]byte{digits[i], digits[i]})
		}

		v, err := strconv.ParseUint(pair, 16, 8)
		if err != nil {
			return Color{}, &ParseError{Input: input, err: fmt.Errorf("%w: %q", ErrBadChars, pair)}
		}
		rgb[i] = uint8(v)
	}

	return Color{rgb[0], rgb[1], rgb[2]}, nil
}

// Hex formats the color as "#rrggbb" with lowercase, zero-padded digits.
// It is the exact left-inverse of the 6-digit form accepted by FromHex.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
}

// RGB returns the three channel values.
func (c Color) RGB() (r, g, b uint8) {
	return c.r, c.g, c.b
}

// R returns the red channel.
func (c Color) R() uint8 { return c.r }

// G returns the green channel.
func (c Color) G() uint8 { return c.g }

// B returns the blue channel.
func (c Color) B() uint8 { return c.b }

// Compare orders colors lexicographically on (r, g, b). It returns a
// negative number when c sorts before other, zero when equal, and a
// positive number otherwise.
func (c Color) Compare(other Color) int {
	if d := cmp.Compare(c.r, other.r); d != 0 {
		return d
	}
	if d := cmp.Compare(c.g, other.g); d != 0 {
		return d
	}
	return cmp.Compare(c.b, other.b)
}

// Style returns the default style for this color: foreground only,
// no background, no attributes.
func (c Color) Style() Style {
	return Style{fg: c, hasFg: true}
}
