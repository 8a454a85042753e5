package output

import (
	"context"
	"encoding/json"
	"io"

	"github.com/ccollicutt/topup/pkg/extractor"
)

// jsonRecord carries the 0-based index accepted by the copy command.
type jsonRecord struct {
	Index int `json:"index"`
	extractor.Record
}

type jsonReport struct {
	Summary  Summary      `json:"summary"`
	Records  []jsonRecord `json:"records"`
	Metadata *Metadata    `json:"metadata,omitempty"`
}

// JSONFormatter writes reports as indented JSON. Metadata is included only
// in verbose mode; quiet mode writes the summary object alone.
type JSONFormatter struct {
	opts FormatOptions
}

// NewJSONFormatter creates a JSON formatter.
func NewJSONFormatter(opts FormatOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// Name returns "json".
func (f *JSONFormatter) Name() string {
	return "json"
}

// Format encodes report to w.
func (f *JSONFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	// Ids and surrounding text may contain '<' or '&'; keep them readable.
	enc.SetEscapeHTML(false)

	if f.opts.Quiet {
		return enc.Encode(report.Summary)
	}

	out := jsonReport{
		Summary: report.Summary,
		Records: make([]jsonRecord, len(report.Records)),
	}
	for i, r := range report.Records {
		out.Records[i] = jsonRecord{Index: i, Record: r}
	}
	if f.opts.Verbose {
		meta := report.Metadata
		out.Metadata = &meta
	}

	return enc.Encode(out)
}
