// Package extractor turns pasted freeform text into ordered (id, amount) records.
package extractor

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrIndexOutOfRange is returned when a record index does not exist.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrUnknownField is returned for a field selector other than id or amount.
	ErrUnknownField = errors.New("unknown field")

	// ErrAmountOverflow is returned when an amount does not fit in an int64
	// after unit expansion.
	ErrAmountOverflow = errors.New("amount overflows int64")

	// ErrInvalidAmount is returned when the captured amount is not a plain
	// run of decimal digits. Only custom patterns can produce this.
	ErrInvalidAmount = errors.New("invalid amount")
)

// Record is one extracted (id, amount) pair plus its copy state.
type Record struct {
	// ID is the captured digit text. It is kept as text so leading zeros survive.
	ID string `json:"id"`

	// Amount is the parsed amount after unit expansion. Never negative.
	Amount int64 `json:"amount"`

	// IDCopied is set once the id has been copied to the clipboard.
	IDCopied bool `json:"idCopied"`

	// AmountCopied is set once the amount has been copied to the clipboard.
	AmountCopied bool `json:"amountCopied"`
}

// Field selects one of the copyable fields of a Record.
type Field string

const (
	FieldID     Field = "id"
	FieldAmount Field = "amount"
)

// ParseField converts user input into a Field. Matching is case-insensitive.
func ParseField(s string) (Field, error) {
	switch Field(strings.ToLower(strings.TrimSpace(s))) {
	case FieldID:
		return FieldID, nil
	case FieldAmount:
		return FieldAmount, nil
	default:
		return "", fmt.Errorf("%w %q (must be id or amount)", ErrUnknownField, s)
	}
}

// Status describes what happened to a single input line.
type Status string

const (
	// StatusMatched means the line produced a record.
	StatusMatched Status = "matched"

	// StatusBlank means the line was empty or whitespace only.
	StatusBlank Status = "blank"

	// StatusNoMatch means the line has no digits-separator-digits structure.
	StatusNoMatch Status = "no_match"

	// StatusOverflow means the amount did not fit in an int64.
	StatusOverflow Status = "overflow"

	// StatusInvalid means the pattern matched but the amount was not numeric.
	StatusInvalid Status = "invalid"
)

// LineResult is the outcome of inspecting one line.
type LineResult struct {
	// Line is the text that was matched against, after any width folding.
	Line string

	Status Status

	// ID, RawAmount and Unit hold the captured text when the pattern matched.
	ID        string
	RawAmount string
	Unit      string

	// Record is set only when Status is StatusMatched.
	Record *Record

	// Err explains overflow and invalid statuses.
	Err error
}
