// Package source reads pasted text line by line from files, stdin or strings.
package source

// Line is a single raw input line.
type Line struct {
	// Content is the line text without the trailing newline.
	Content string

	// Source names where this line came from (file path, "stdin", ...).
	Source string

	// LineNum is the 1-based line number in the source.
	LineNum int
}

// maxLineSize bounds a single input line (1 MiB).
const maxLineSize = 1024 * 1024
