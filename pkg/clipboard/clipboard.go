// Package clipboard writes copied record fields to a clipboard.
package clipboard

import (
	"github.com/atotto/clipboard"
)

// Writer places text on a clipboard.
type Writer interface {
	SetText(value string) error
}

// System implements Writer using the operating system clipboard.
type System struct{}

// NewSystem returns a Writer backed by the OS clipboard.
func NewSystem() *System {
	return &System{}
}

// SetText writes value to the system clipboard.
func (s *System) SetText(value string) error {
	return clipboard.WriteAll(value)
}

// Available reports whether a system clipboard utility was found.
// On Linux this needs xclip, xsel or wl-copy on PATH.
func Available() bool {
	return !clipboard.Unsupported
}

var _ Writer = (*System)(nil)
