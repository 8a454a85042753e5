package output

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/ccollicutt/topup/pkg/extractor"
)

// copiedMark replaces a copy button once the field has been copied.
const copiedMark = "✓"

// TextFormatter formats reports as a human-readable table.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	_, err := fmt.Fprintf(w, "topup: %d records, total %d, %d fully copied\n",
		report.Summary.Records,
		report.Summary.TotalAmount,
		report.Summary.Copied)
	return err
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	if !report.HasRecords() {
		fmt.Fprintln(w, "No records found")
	} else if err := WriteTable(w, report.Records); err != nil {
		return err
	}

	fmt.Fprintln(w, "---")
	fmt.Fprintf(w, "Summary: %d records, total amount %d\n",
		report.Summary.Records,
		report.Summary.TotalAmount)

	if f.opts.Verbose {
		s := report.Summary.Stats
		fmt.Fprintf(w, "Lines: %d read, %d matched, %d blank, %d skipped, %d overflowed\n",
			s.LinesRead, s.LinesMatched, s.LinesBlank, s.LinesSkipped, s.LinesOverflowed)
		if len(report.Metadata.Sources) > 0 {
			fmt.Fprintf(w, "Sources: %s\n", strings.Join(report.Metadata.Sources, ", "))
		}
		fmt.Fprintf(w, "Duration: %s\n", report.Metadata.Duration.Round(1e6))
	}

	return nil
}

// WriteTable writes records as an aligned table. Copied fields are marked with ✓.
func WriteTable(w io.Writer, records []extractor.Record) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tID\t\tAMOUNT\t")
	for i, r := range records {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\n",
			i, r.ID, mark(r.IDCopied), r.Amount, mark(r.AmountCopied))
	}
	return tw.Flush()
}

func mark(copied bool) string {
	if copied {
		return copiedMark
	}
	return ""
}
