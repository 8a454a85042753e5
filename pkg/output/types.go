// Package output provides formatting for extracted records.
package output

import (
	"time"

	"github.com/ccollicutt/topup/pkg/extractor"
)

// Report is the complete extraction output.
type Report struct {
	// Summary provides aggregate statistics.
	Summary Summary `json:"summary"`

	// Records are the extracted records in input order.
	Records []extractor.Record `json:"records"`

	// Metadata provides context about the run.
	Metadata Metadata `json:"metadata"`
}

// Summary provides aggregate statistics.
type Summary struct {
	// Records is the number of records extracted.
	Records int `json:"records"`

	// TotalAmount is the sum of all amounts. Zero if the sum overflows.
	TotalAmount int64 `json:"totalAmount"`

	// Copied counts records whose id and amount have both been copied.
	Copied int `json:"copied"`

	extractor.Stats
}

// Metadata provides context about the extraction run.
type Metadata struct {
	// Sources lists the inputs that were read.
	Sources []string `json:"sources"`

	// ExtractedAt is when the extraction finished.
	ExtractedAt time.Time `json:"extractedAt"`

	// Duration is how long the extraction took.
	Duration time.Duration `json:"duration"`
}

// NewReport builds a Report from an extraction result.
func NewReport(result *extractor.Result, started time.Time) *Report {
	now := time.Now()
	report := &Report{
		Records: result.Records,
		Metadata: Metadata{
			Sources:     result.Sources,
			ExtractedAt: now,
			Duration:    now.Sub(started),
		},
	}
	report.Summary = Summarize(result.Records)
	report.Summary.Stats = result.Stats
	return report
}

// Summarize computes record counts and totals.
func Summarize(records []extractor.Record) Summary {
	s := Summary{Records: len(records)}

	var total int64
	overflowed := false
	for _, r := range records {
		if r.IDCopied && r.AmountCopied {
			s.Copied++
		}
		if total > (1<<63-1)-r.Amount {
			overflowed = true
			continue
		}
		total += r.Amount
	}
	if !overflowed {
		s.TotalAmount = total
	}

	return s
}

// HasRecords returns true if at least one record was extracted.
func (r *Report) HasRecords() bool {
	return len(r.Records) > 0
}
