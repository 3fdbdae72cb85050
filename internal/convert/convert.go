// Package convert reads an SVG asset, runs it through the tsx converter and
// writes the result to the fixed output file.
package convert

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/jmylchreest/svg2tsx/pkg/cleaner/tsx"
)

// OutputFile is where every conversion is written, relative to the working
// directory. The name does not depend on the input file, so each run replaces
// the previous output.
const OutputFile = "output.tsvg"

// DecodeError reports input that is not valid UTF-8.
type DecodeError struct {
	Path   string
	Offset int  // byte offset of the first invalid sequence
	Byte   byte // first byte of that sequence
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s: invalid UTF-8 byte 0x%02x at offset %d", e.Path, e.Byte, e.Offset)
}

// ReadSVG reads the whole file at path as strict UTF-8 text.
// Line endings are normalized to "\n".
func ReadSVG(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	if off := invalidOffset(data); off >= 0 {
		return "", &DecodeError{Path: path, Offset: off, Byte: data[off]}
	}

	return normalizeNewlines(string(data)), nil
}

// WriteTSX creates or truncates path and writes content to it.
// The write is not atomic; a failure part way can leave a partial file.
func WriteTSX(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// File converts the SVG at in and writes the result to out.
// Nothing is written when reading or decoding fails.
func File(conv *tsx.Converter, in, out string) (*tsx.Result, error) {
	svg, err := ReadSVG(in)
	if err != nil {
		return nil, err
	}

	result := conv.CleanWithStats(svg)

	if err := WriteTSX(out, result.Content); err != nil {
		return nil, err
	}
	return result, nil
}

// invalidOffset returns the offset of the first invalid UTF-8 sequence,
// or -1 when data is valid.
func invalidOffset(data []byte) int {
	if utf8.Valid(data) {
		return -1
	}
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}

var newlineReplacer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

func normalizeNewlines(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	return newlineReplacer.Replace(s)
}
