package textenc

import (
	"bytes"
	"testing"
)

func TestDecodeUTF8Passthrough(t *testing.T) {
	data := []byte("héllo")
	got, err := Decode(data, "utf8")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("Decode = %q, want %q", got, data)
	}
}

func TestDecodeStripsBOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("abc")...)
	got, err := Decode(data, "utf8")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if string(got) != "abc" {
		t.Errorf("Decode = %q, want %q", got, "abc")
	}
}

func TestDecodeCP437(t *testing.T) {
	// 0xC9 is the double-line box corner '╔' in CP437.
	got, err := Decode([]byte{0xC9, 'A'}, "cp437")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if string(got) != "╔A" {
		t.Errorf("Decode = %q, want %q", got, "╔A")
	}
}

func TestDecodeLatin1(t *testing.T) {
	// 0xE9 is 'é' in ISO-8859-1.
	got, err := Decode([]byte{0xE9}, "iso-8859-1")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if string(got) != "é" {
		t.Errorf("Decode = %q, want %q", got, "é")
	}
}

func TestDecodeUnknownEncoding(t *testing.T) {
	if _, err := Decode([]byte("x"), "ebcdic"); err == nil {
		t.Fatal("expected error for unsupported encoding")
	}
}
