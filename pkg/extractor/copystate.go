package extractor

import (
	"fmt"
	"strconv"
)

// MarkCopied returns a copy of records with the selected field of the record at
// index flagged as copied. The input slice is never modified. Marking an
// already copied field is a no-op.
//
// An index outside the slice returns ErrIndexOutOfRange together with the
// unchanged input.
func MarkCopied(records []Record, index int, field Field) ([]Record, error) {
	if index < 0 || index >= len(records) {
		return records, fmt.Errorf("%w: index %d, have %d records", ErrIndexOutOfRange, index, len(records))
	}
	if field != FieldID && field != FieldAmount {
		return records, fmt.Errorf("%w %q", ErrUnknownField, field)
	}

	updated := make([]Record, len(records))
	copy(updated, records)

	switch field {
	case FieldID:
		updated[index].IDCopied = true
	case FieldAmount:
		updated[index].AmountCopied = true
	}

	return updated, nil
}

// Value returns the clipboard text for a field of r.
func Value(r Record, field Field) (string, error) {
	switch field {
	case FieldID:
		return r.ID, nil
	case FieldAmount:
		return strconv.FormatInt(r.Amount, 10), nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownField, field)
	}
}

// Copied reports whether the given field of r has been copied.
func (r Record) Copied(field Field) bool {
	switch field {
	case FieldID:
		return r.IDCopied
	case FieldAmount:
		return r.AmountCopied
	default:
		return false
	}
}
