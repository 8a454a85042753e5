package extractor

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/width"
)

// DefaultPattern captures an id, a non-digit separator, an amount and an
// optional w/k unit. Only the leftmost match on a line is used.
const DefaultPattern = `(\d+)\D+(\d+)([wk]?)`

var defaultExtractor = &Extractor{
	pattern: regexp.MustCompile(DefaultPattern),
	units:   DefaultUnits(),
	logger:  zap.NewNop(),
}

// Extract runs the default extractor over text.
// It never fails: lines that do not match are skipped and an empty input
// yields an empty slice.
func Extract(text string) []Record {
	return defaultExtractor.Extract(text)
}

// Extractor matches lines against a pattern and builds records.
// An Extractor is immutable after New and safe to reuse.
type Extractor struct {
	pattern   *regexp.Regexp
	units     Units
	foldWidth bool
	logger    *zap.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithPattern replaces the line pattern. Group 1 is the id, group 2 the amount
// and group 3, when present, the unit.
func WithPattern(re *regexp.Regexp) Option {
	return func(e *Extractor) {
		e.pattern = re
	}
}

// WithUnits replaces the unit suffix table.
func WithUnits(units Units) Option {
	return func(e *Extractor) {
		e.units = units
	}
}

// WithWidthFolding folds full-width characters (such as "１２３ｗ") to their
// ASCII forms before matching.
func WithWidthFolding(enabled bool) Option {
	return func(e *Extractor) {
		e.foldWidth = enabled
	}
}

// WithLogger sets the logger used to report skipped lines at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Extractor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New creates an Extractor. Without options it behaves exactly like Extract.
func New(opts ...Option) (*Extractor, error) {
	e := &Extractor{
		pattern: defaultExtractor.pattern,
		units:   DefaultUnits(),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.pattern == nil {
		return nil, errors.New("pattern is required")
	}
	if e.pattern.NumSubexp() < 2 {
		return nil, fmt.Errorf("pattern has %d capture groups, need at least 2 (id, amount)", e.pattern.NumSubexp())
	}
	if err := e.units.Validate(); err != nil {
		return nil, fmt.Errorf("units: %w", err)
	}

	return e, nil
}

// Extract splits text on newlines and returns one record per matching line,
// in input order.
func (e *Extractor) Extract(text string) []Record {
	records := make([]Record, 0)

	for i, line := range strings.Split(text, "\n") {
		res := e.Inspect(line)
		if res.Status != StatusMatched {
			e.logSkipped("text", i+1, res)
			continue
		}
		records = append(records, *res.Record)
	}

	return records
}

// Inspect matches a single line and reports the outcome without discarding
// the reason a line was skipped.
func (e *Extractor) Inspect(line string) LineResult {
	if e.foldWidth {
		line = width.Fold.String(line)
	}

	res := LineResult{Line: line}

	if strings.TrimSpace(line) == "" {
		res.Status = StatusBlank
		return res
	}

	m := e.pattern.FindStringSubmatch(line)
	if m == nil {
		res.Status = StatusNoMatch
		return res
	}

	res.ID = m[1]
	res.RawAmount = m[2]
	if len(m) > 3 {
		res.Unit = m[3]
	}

	amount, err := e.units.Apply(res.RawAmount, res.Unit)
	if err != nil {
		res.Err = err
		if errors.Is(err, ErrAmountOverflow) {
			res.Status = StatusOverflow
		} else {
			res.Status = StatusInvalid
		}
		return res
	}

	res.Status = StatusMatched
	res.Record = &Record{
		ID:     res.ID,
		Amount: amount,
	}
	return res
}

func (e *Extractor) logSkipped(source string, lineNum int, res LineResult) {
	if res.Status == StatusBlank {
		return
	}

	fields := []zap.Field{
		zap.String("source", source),
		zap.Int("line", lineNum),
		zap.String("status", string(res.Status)),
	}
	if res.Err != nil {
		fields = append(fields, zap.Error(res.Err))
	}
	e.logger.Debug("skipping line", fields...)
}
