// Package session holds the state of one paste-and-copy screen: the pasted
// text, the records extracted from it and the clipboard they are copied to.
//
// A Session is meant for a single goroutine; it performs no locking.
package session

import (
	"strings"

	"go.uber.org/zap"

	"github.com/ccollicutt/topup/pkg/clipboard"
	"github.com/ccollicutt/topup/pkg/extractor"
)

// Session owns the current record sequence. Every update replaces the
// sequence as a whole, so callers never observe a partial state.
type Session struct {
	extractor *extractor.Extractor
	clipboard clipboard.Writer
	logger    *zap.Logger

	text    string
	records []extractor.Record
}

// Option configures a Session.
type Option func(*Session)

// WithExtractor replaces the default extractor.
func WithExtractor(e *extractor.Extractor) Option {
	return func(s *Session) {
		if e != nil {
			s.extractor = e
		}
	}
}

// WithLogger sets the session logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates an empty session writing copies to cb.
func New(cb clipboard.Writer, opts ...Option) *Session {
	s := &Session{
		clipboard: cb,
		logger:    zap.NewNop(),
		records:   []extractor.Record{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.extractor == nil {
		// The default pattern and units always validate.
		s.extractor, _ = extractor.New(extractor.WithLogger(s.logger))
	}
	return s
}

// EmptyTextHint is what a screen shows when asked to analyze blank text.
const EmptyTextHint = "paste content before analyzing"

// Blank reports whether text has nothing to analyze.
func Blank(text string) bool {
	return strings.TrimSpace(text) == ""
}

// Analyze replaces the records with those extracted from text and returns them.
// Blank text is not an error; it yields an empty sequence. Telling the user is
// left to the caller, see EmptyTextHint.
func (s *Session) Analyze(text string) []extractor.Record {
	s.text = text
	s.records = s.extractor.Extract(text)

	s.logger.Debug("analyzed text",
		zap.Int("lines", strings.Count(text, "\n")+1),
		zap.Int("records", len(s.records)))

	return s.Records()
}

// Copy puts the selected field of record index on the clipboard and marks it copied.
// An invalid index returns extractor.ErrIndexOutOfRange and changes nothing.
// A clipboard failure is logged but does not prevent marking the field.
func (s *Session) Copy(index int, field extractor.Field) (string, error) {
	updated, err := extractor.MarkCopied(s.records, index, field)
	if err != nil {
		return "", err
	}

	value, err := extractor.Value(updated[index], field)
	if err != nil {
		return "", err
	}

	if s.clipboard != nil {
		if err := s.clipboard.SetText(value); err != nil {
			s.logger.Warn("clipboard write failed",
				zap.Int("index", index),
				zap.String("field", string(field)),
				zap.Error(err))
		}
	}

	s.records = updated
	return value, nil
}

// Reset discards the pasted text and all records.
func (s *Session) Reset() {
	s.text = ""
	s.records = []extractor.Record{}
}

// Text returns the last analyzed text.
func (s *Session) Text() string {
	return s.text
}

// Records returns a copy of the current records.
func (s *Session) Records() []extractor.Record {
	return append([]extractor.Record{}, s.records...)
}

// Pending returns the indices of records with at least one field not yet copied.
func (s *Session) Pending() []int {
	var pending []int
	for i, r := range s.records {
		if !r.IDCopied || !r.AmountCopied {
			pending = append(pending, i)
		}
	}
	return pending
}
