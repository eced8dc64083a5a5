package paint

import "testing"

func TestStyleDefault(t *testing.T) {
	if !New().IsDefault() {
		t.Fatal("New() should be the default style")
	}
	var zero Style
	if !zero.IsDefault() {
		t.Fatal("zero value should be the default style")
	}
	if params := zero.params(); len(params) != 0 {
		t.Errorf("default style params = %v, want empty", params)
	}
}

func TestStyleSequences(t *testing.T) {
	tests := []struct {
		name  string
		style Style
		want  string
	}{
		{
			"underline with fg",
			New().Foreground(FromRGB(100, 200, 100)).Underline(),
			"\x1b[4;38;2;100;200;100m",
		},
		{
			"italic strike with bg",
			New().Background(FromRGB(0, 0, 75)).Italic().Strike(),
			"\x1b[3;9;48;2;0;0;75m",
		},
		{
			"everything",
			New().Underline().Italic().Foreground(FromRGB(200, 100, 200)).Background(FromRGB(255, 255, 255)).Strike(),
			"\x1b[3;4;9;38;2;200;100;200;48;2;255;255;255m",
		},
		{
			"bold only",
			New().Bold(),
			"\x1b[1m",
		},
		{
			"bold before italic",
			New().Italic().Bold(),
			"\x1b[1;3m",
		},
	}

	for _, tt := range tests {
		if got := tt.style.Sequence(); got != tt.want {
			t.Errorf("%s: Sequence() = %q, want %q", tt.name, got, tt.want)
		}
		// String is the same serialization.
		if got := tt.style.String(); got != tt.want {
			t.Errorf("%s: String() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestStyleSerializationDeterministic(t *testing.T) {
	fg := FromRGB(1, 2, 3)
	bg := FromRGB(4, 5, 6)

	// Independent setters commute: any call order gives the same sequence.
	a := New().Bold().Underline().Foreground(fg).Background(bg)
	b := New().Background(bg).Underline().Foreground(fg).Bold()
	c := New().Foreground(fg).Bold().Background(bg).Underline()

	if a.Sequence() != b.Sequence() || b.Sequence() != c.Sequence() {
		t.Errorf("builder order changed serialization: %q / %q / %q",
			a.Sequence(), b.Sequence(), c.Sequence())
	}

	// Repeated serialization of the same value is stable.
	if a.Sequence() != a.Sequence() {
		t.Error("Sequence() is not stable")
	}
}

func TestStyleValueSemantics(t *testing.T) {
	base := New().Foreground(FromRGB(255, 0, 0))
	derived := base.Bold()

	if base.Sequence() == derived.Sequence() {
		t.Error("mutating a copy should not affect the original")
	}
	if got, want := base.Sequence(), "\x1b[38;2;255;0;0m"; got != want {
		t.Errorf("base.Sequence() = %q, want %q", got, want)
	}
}

func TestStyleAttributeToggle(t *testing.T) {
	s := New().Bold().Bold()
	if !s.IsDefault() {
		t.Error("toggling bold twice should return to the default style")
	}
}

func TestStylerImplementations(t *testing.T) {
	want := "\x1b[38;2;255;0;0m"

	var stylers = []Styler{
		FromRGB(255, 0, 0),
		Red,
		New().Foreground(FromRGB(255, 0, 0)),
		StylerFunc(func() Style { return Red.Style() }),
	}
	for i, st := range stylers {
		if got := st.Style().Sequence(); got != want {
			t.Errorf("styler %d: Sequence() = %q, want %q", i, got, want)
		}
	}
}
