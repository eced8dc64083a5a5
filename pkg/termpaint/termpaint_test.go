package termpaint_test

import (
	"errors"
	"strings"
	"testing"

	"termpaint/pkg/termpaint"
)

func TestPublicAPI(t *testing.T) {
	red, err := termpaint.FromHex("#f00")
	if err != nil {
		t.Fatalf("FromHex: %v", err)
	}
	if red != termpaint.FromRGB(255, 0, 0) {
		t.Errorf("FromHex(#f00) = %v", red)
	}

	got := termpaint.Paint("hello", termpaint.New().Foreground(red))
	want := "\x1b[38;2;255;0;0mhello\x1b[0m"
	if got != want {
		t.Errorf("Paint = %q, want %q", got, want)
	}

	if _, err := termpaint.FromHex("zz"); !errors.Is(err, termpaint.ErrWrongLength) {
		t.Errorf("expected ErrWrongLength, got %v", err)
	}

	var sb strings.Builder
	if _, err := termpaint.Fprintln(&sb, "x", termpaint.Tomato); err != nil {
		t.Fatalf("Fprintln: %v", err)
	}
	if sb.String() != "\x1b[38;2;255;99;71mx"+termpaint.Reset+"\n" {
		t.Errorf("Fprintln wrote %q", sb.String())
	}
}

func TestPublicPalette(t *testing.T) {
	n := 0
	for range termpaint.All() {
		n++
	}
	if n != termpaint.Count {
		t.Errorf("All yielded %d entries, want %d", n, termpaint.Count)
	}

	if got, ok := termpaint.ByName("cornflowerblue"); !ok || got != termpaint.CornFlowerBlue {
		t.Errorf("ByName = (%v, %v)", got, ok)
	}
	if termpaint.Aqua.Color() != termpaint.Cyan.Color() {
		t.Error("Aqua and Cyan should share an RGB value")
	}
}
