package output

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Formats lists the output names accepted by NewFormatter.
var Formats = []string{"text", "json", "csv"}

// Formatter writes a Report in one output format.
type Formatter interface {
	Format(ctx context.Context, report *Report, w io.Writer) error
	Name() string
}

// FormatOptions controls formatter behavior.
type FormatOptions struct {
	// Verbose adds line statistics and the list of sources read.
	Verbose bool

	// Quiet reduces the output to the summary.
	Quiet bool
}

// NewFormatter returns the formatter registered under name.
func NewFormatter(name string, opts FormatOptions) (Formatter, error) {
	switch name {
	case "text":
		return NewTextFormatter(opts), nil
	case "json":
		return NewJSONFormatter(opts), nil
	case "csv":
		return NewCSVFormatter(opts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use %s)", name, strings.Join(Formats, ", "))
	}
}
