package source

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
)

// FileSource implements LineSource over a list of files read in order.
type FileSource struct {
	files []string

	currentFile    *os.File
	currentScanner *bufio.Scanner
	currentSource  string
	currentLine    int
	fileIndex      int
}

// NewFileSource creates a LineSource that reads the given files one after another.
func NewFileSource(files []string) *FileSource {
	return &FileSource{
		files:     files,
		fileIndex: -1,
	}
}

// Next returns the next line across all files.
// Returns io.EOF when all files have been exhausted.
func (s *FileSource) Next(ctx context.Context) (*Line, error) {
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if s.currentScanner == nil {
			if err := s.openNextFile(); err != nil {
				return nil, err
			}
		}

		if s.currentScanner.Scan() {
			s.currentLine++
			return &Line{
				Content: s.currentScanner.Text(),
				Source:  s.currentSource,
				LineNum: s.currentLine,
			}, nil
		}

		if err := s.currentScanner.Err(); err != nil {
			return nil, fmt.Errorf("reading %s: %w", s.currentSource, err)
		}

		// Current file exhausted, move on
		if err := s.closeCurrentFile(); err != nil {
			return nil, err
		}
	}
}

// Close releases resources.
func (s *FileSource) Close() error {
	return s.closeCurrentFile()
}

func (s *FileSource) openNextFile() error {
	s.fileIndex++
	if s.fileIndex >= len(s.files) {
		return io.EOF
	}

	path := s.files[s.fileIndex]
	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return fmt.Errorf("opening input file %s: %w", path, err)
	}

	s.currentFile = f
	s.currentScanner = newScanner(f)
	s.currentSource = path
	s.currentLine = 0

	return nil
}

func (s *FileSource) closeCurrentFile() error {
	if s.currentFile != nil {
		err := s.currentFile.Close()
		s.currentFile = nil
		s.currentScanner = nil
		return err
	}
	return nil
}
