package output

import (
	"bufio"
	"fmt"
	"io"
)

// TextWriter writes one item per line using its default format,
// so items implementing fmt.Stringer control their own rendering.
type TextWriter struct {
	w *bufio.Writer
}

// NewTextWriter creates a plain text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: bufio.NewWriter(w)}
}

// Write writes a single item followed by a newline.
func (w *TextWriter) Write(data any) error {
	_, err := fmt.Fprintln(w.w, data)
	return err
}

// Flush flushes the buffer.
func (w *TextWriter) Flush() error {
	return w.w.Flush()
}
