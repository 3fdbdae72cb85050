// Package cleaner provides interfaces and building blocks for cleaning markup text.
// Cleaners transform editor-exported SVG into a fragment that can be pasted into TSX.
package cleaner

// Cleaner transforms markup content into a cleaner form.
type Cleaner interface {
	// Clean transforms the input and returns the result.
	// Cleaners operate on the raw text; none of them parse the markup.
	Clean(content string) (string, error)

	// Name returns the cleaner type for logging/debugging.
	Name() string
}
