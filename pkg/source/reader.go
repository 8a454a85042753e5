package source

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
)

// ReaderSource reads lines from a single io.Reader such as stdin.
type ReaderSource struct {
	name    string
	scanner *bufio.Scanner
	closer  io.Closer
	lineNum int
}

// NewReaderSource creates a LineSource over r. name is reported as the Line source.
// If r is an io.Closer it is closed by Close.
func NewReaderSource(name string, r io.Reader) *ReaderSource {
	s := &ReaderSource{
		name:    name,
		scanner: newScanner(r),
	}
	if c, ok := r.(io.Closer); ok {
		s.closer = c
	}
	return s
}

// NewStringSource creates a LineSource over an in-memory text blob.
func NewStringSource(name, text string) *ReaderSource {
	return NewReaderSource(name, strings.NewReader(text))
}

// Next returns the next line or io.EOF.
func (s *ReaderSource) Next(ctx context.Context) (*Line, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return nil, fmt.Errorf("reading %s: %w", s.name, err)
		}
		return nil, io.EOF
	}

	s.lineNum++
	return &Line{
		Content: s.scanner.Text(),
		Source:  s.name,
		LineNum: s.lineNum,
	}, nil
}

// Close releases the underlying reader if it is closable.
func (s *ReaderSource) Close() error {
	if s.closer != nil {
		err := s.closer.Close()
		s.closer = nil
		return err
	}
	return nil
}

func newScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	scanner.Split(scanLines)
	return scanner
}

// scanLines splits on '\n' only. Unlike bufio.ScanLines it keeps a trailing '\r',
// so a line reaches the extractor exactly as splitting the text on newlines would.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
