// Package textenc converts legacy-encoded input to UTF-8 before styling.
package textenc

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Encodings lists the supported source encoding names.
func Encodings() []string {
	return []string{"utf8", "cp437", "cp850", "iso-8859-1"}
}

// Decode converts data from the named source encoding to UTF-8.
// A UTF-8 BOM is stripped if present.
func Decode(data []byte, sourceEncoding string) ([]byte, error) {
	if sourceEncoding == "utf8" {
		return bytes.TrimPrefix(data, utf8BOM), nil
	}

	var decoder *encoding.Decoder

	switch sourceEncoding {
	case "cp437":
		decoder = charmap.CodePage437.NewDecoder()
	case "cp850":
		decoder = charmap.CodePage850.NewDecoder()
	case "iso-8859-1":
		decoder = charmap.ISO8859_1.NewDecoder()
	default:
		return nil, fmt.Errorf("unsupported encoding %q (supported: %v)", sourceEncoding, Encodings())
	}

	reader := transform.NewReader(bytes.NewReader(data), decoder)
	utf8Data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("encoding conversion error: %w", err)
	}

	return bytes.TrimPrefix(utf8Data, utf8BOM), nil
}
