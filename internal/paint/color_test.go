package paint

import (
	"errors"
	"strings"
	"testing"
)

func TestFromHexValid(t *testing.T) {
	tests := []struct {
		input   string
		r, g, b uint8
	}{
		{"#FF0000", 255, 0, 0},
		{"FF0000", 255, 0, 0},
		{"#f00", 255, 0, 0},
		{"f0a", 255, 0, 170},
		{"#00ff7f", 0, 255, 127},
		{"#AbCdEf", 171, 205, 239},
		{"000", 0, 0, 0},
		{"#fff", 255, 255, 255},
	}

	for _, tt := range tests {
		c, err := FromHex(tt.input)
		if err != nil {
			t.Fatalf("FromHex(%q): unexpected error: %v", tt.input, err)
		}
		if r, g, b := c.RGB(); r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("FromHex(%q) = (%d,%d,%d), want (%d,%d,%d)",
				tt.input, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}

func TestFromHexExpansionLaw(t *testing.T) {
	short := []string{"abc", "f0a", "123", "#0c9"}
	for _, s := range short {
		long := strings.TrimPrefix(s, "#")
		long = string([]byte{long[0], long[0], long[1], long[1], long[2], long[2]})

		c3, err := FromHex(s)
		if err != nil {
			t.Fatalf("FromHex(%q): %v", s, err)
		}
		c6, err := FromHex(long)
		if err != nil {
			t.Fatalf("FromHex(%q): %v", long, err)
		}
		if c3 != c6 {
			t.Errorf("FromHex(%q) = %v, FromHex(%q) = %v, want equal", s, c3, long, c6)
		}
	}
}

func TestFromHexWrongLength(t *testing.T) {
	inputs := []string{"", "f", "ff", "ffff", "fffff", "fffffff", "ffffffff", "#", "#ff00"}
	for _, s := range inputs {
		_, err := FromHex(s)
		if !errors.Is(err, ErrWrongLength) {
			t.Errorf("FromHex(%q): got %v, want ErrWrongLength", s, err)
		}
	}
}

func TestFromHexBadChars(t *testing.T) {
	inputs := []string{"#FF000G", "xyz", "12345z", "gg0000"}
	for _, s := range inputs {
		_, err := FromHex(s)
		if !errors.Is(err, ErrBadChars) {
			t.Errorf("FromHex(%q): got %v, want ErrBadChars", s, err)
		}

		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("FromHex(%q): error is not a *ParseError: %v", s, err)
		}
		if perr.Input != s {
			t.Errorf("ParseError.Input = %q, want %q", perr.Input, s)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	inputs := []string{"#ff0000", "#00ff7f", "#abcdef", "#000000", "#ffffff", "#0c090a"}
	for _, s := range inputs {
		c, err := FromHex(s)
		if err != nil {
			t.Fatalf("FromHex(%q): %v", s, err)
		}
		if got := c.Hex(); got != s {
			t.Errorf("FromHex(%q).Hex() = %q, want %q", s, got, s)
		}
	}

	// Uppercase input normalizes to lowercase on the way out.
	c, err := FromHex("#ABCDEF")
	if err != nil {
		t.Fatalf("FromHex: %v", err)
	}
	if got := c.Hex(); got != "#abcdef" {
		t.Errorf("Hex() = %q, want %q", got, "#abcdef")
	}
}

func TestColorAccessors(t *testing.T) {
	c := FromRGB(10, 20, 30)
	if c.R() != 10 || c.G() != 20 || c.B() != 30 {
		t.Errorf("accessors = (%d,%d,%d), want (10,20,30)", c.R(), c.G(), c.B())
	}
	r, g, b := c.RGB()
	if r != 10 || g != 20 || b != 30 {
		t.Errorf("RGB() = (%d,%d,%d), want (10,20,30)", r, g, b)
	}
}

func TestColorCompare(t *testing.T) {
	tests := []struct {
		a, b Color
		want int
	}{
		{FromRGB(0, 0, 0), FromRGB(0, 0, 0), 0},
		{FromRGB(1, 0, 0), FromRGB(0, 255, 255), 1},
		{FromRGB(0, 1, 0), FromRGB(0, 0, 255), 1},
		{FromRGB(0, 0, 1), FromRGB(0, 0, 2), -1},
		{FromRGB(10, 20, 30), FromRGB(10, 20, 30), 0},
	}
	for _, tt := range tests {
		got := tt.a.Compare(tt.b)
		if (got < 0) != (tt.want < 0) || (got > 0) != (tt.want > 0) {
			t.Errorf("Compare(%v, %v) = %d, want sign of %d", tt.a, tt.b, got, tt.want)
		}
	}

	// Comparable value type: usable as a map key.
	m := map[Color]string{FromRGB(1, 2, 3): "x"}
	if m[FromRGB(1, 2, 3)] != "x" {
		t.Error("Color should work as a map key")
	}
}

func TestColorDefaultStyle(t *testing.T) {
	s := FromRGB(255, 0, 0).Style()
	if s.IsDefault() {
		t.Fatal("color style should not be default")
	}
	if got, want := s.Sequence(), "\x1b[38;2;255;0;0m"; got != want {
		t.Errorf("Sequence() = %q, want %q", got, want)
	}
}
