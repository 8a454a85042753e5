package output

import (
	"context"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// csvRow is the CSV shape of a record.
type csvRow struct {
	Index        int    `csv:"index"`
	ID           string `csv:"id"`
	Amount       int64  `csv:"amount"`
	IDCopied     bool   `csv:"id_copied"`
	AmountCopied bool   `csv:"amount_copied"`
}

// csvSummaryRow is the CSV shape of the quiet summary.
type csvSummaryRow struct {
	Records     int   `csv:"records"`
	TotalAmount int64 `csv:"total_amount"`
	Copied      int   `csv:"copied"`
}

// CSVFormatter formats reports as CSV, one row per record.
type CSVFormatter struct {
	opts FormatOptions
}

// NewCSVFormatter creates a new CSV formatter with the given options.
func NewCSVFormatter(opts FormatOptions) *CSVFormatter {
	return &CSVFormatter{opts: opts}
}

// Name returns the format name.
func (f *CSVFormatter) Name() string {
	return "csv"
}

// Format renders the report as CSV. The header row is written even when there
// are no records. Index is 0-based so it can be passed straight to the copy command.
func (f *CSVFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		rows := []csvSummaryRow{{
			Records:     report.Summary.Records,
			TotalAmount: report.Summary.TotalAmount,
			Copied:      report.Summary.Copied,
		}}
		if err := gocsv.Marshal(rows, w); err != nil {
			return fmt.Errorf("writing csv summary: %w", err)
		}
		return nil
	}

	rows := make([]csvRow, len(report.Records))
	for i, r := range report.Records {
		rows[i] = csvRow{
			Index:        i,
			ID:           r.ID,
			Amount:       r.Amount,
			IDCopied:     r.IDCopied,
			AmountCopied: r.AmountCopied,
		}
	}

	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}
