package extractor

import (
	"context"
	"errors"
	"io"

	"github.com/ccollicutt/topup/pkg/source"
)

// Stats counts what happened to each line of a streamed extraction.
type Stats struct {
	LinesRead       int `json:"linesRead"`
	LinesMatched    int `json:"linesMatched"`
	LinesBlank      int `json:"linesBlank"`
	LinesSkipped    int `json:"linesSkipped"`
	LinesOverflowed int `json:"linesOverflowed"`
}

// Result holds the records extracted from a LineSource.
type Result struct {
	Records []Record
	Stats   Stats

	// Sources lists each distinct source name in the order first seen.
	Sources []string
}

// ExtractLines drives the extractor over every line of src.
// Only a read failure or context cancellation returns an error; unmatched
// lines are counted and skipped.
func (e *Extractor) ExtractLines(ctx context.Context, src source.LineSource) (*Result, error) {
	result := &Result{Records: make([]Record, 0)}
	seen := make(map[string]bool)

	for {
		line, err := src.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		if !seen[line.Source] {
			seen[line.Source] = true
			result.Sources = append(result.Sources, line.Source)
		}

		result.Stats.LinesRead++
		res := e.Inspect(line.Content)

		switch res.Status {
		case StatusMatched:
			result.Stats.LinesMatched++
			result.Records = append(result.Records, *res.Record)
			continue
		case StatusBlank:
			result.Stats.LinesBlank++
		case StatusOverflow:
			result.Stats.LinesOverflowed++
		default:
			result.Stats.LinesSkipped++
		}
		e.logSkipped(line.Source, line.LineNum, res)
	}

	return result, nil
}

// ExtractLines runs the default extractor over src.
func ExtractLines(ctx context.Context, src source.LineSource) (*Result, error) {
	return defaultExtractor.ExtractLines(ctx, src)
}
