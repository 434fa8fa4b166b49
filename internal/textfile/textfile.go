// Package textfile reads files for searching. Content is always returned as
// valid UTF-8: undecodable bytes become U+FFFD instead of failing the read.
package textfile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"unicode"
	"unicode/utf8"

	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrBinary is returned for files that look like binary data.
var ErrBinary = errors.New("binary file")

// sniffLen is how much of a file is inspected to decide if it is binary.
const sniffLen = 8000

var (
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF16LE = []byte{0xFF, 0xFE}
)

// Read returns the decoded text content of the file at path.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return Decode(data)
}

// Decode converts raw file bytes to text. A UTF-8 or UTF-16 byte order mark
// selects the encoding; everything else is decoded as UTF-8.
func Decode(data []byte) (string, error) {
	if !hasUTF16BOM(data) && isBinary(data) {
		return "", ErrBinary
	}

	decoder := xunicode.BOMOverride(xunicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return "", fmt.Errorf("failed to decode: %w", err)
	}
	return string(out), nil
}

func hasUTF16BOM(data []byte) bool {
	return bytes.HasPrefix(data, bomUTF16BE) || bytes.HasPrefix(data, bomUTF16LE)
}

// isBinary reports whether the start of content looks like binary data: it
// contains a NUL byte, or more than a tenth of its first 100 runes are
// control runes. Invalid UTF-8 is left to the decoder, so text in a legacy
// encoding still reads as text.
func isBinary(content []byte) bool {
	sample := content[:min(len(content), sniffLen)]
	if bytes.IndexByte(sample, 0) >= 0 {
		return true
	}

	const sampleSize = 100
	var nonPrintable int
	var totalRunes int

	for i := 0; i < len(sample) && totalRunes < sampleSize; {
		r, size := utf8.DecodeRune(sample[i:])
		if r != utf8.RuneError && !unicode.IsPrint(r) && !unicode.IsSpace(r) {
			nonPrintable++
		}
		i += size
		totalRunes++
	}

	if totalRunes == 0 {
		return false
	}
	return float64(nonPrintable)/float64(totalRunes) > 0.1
}
