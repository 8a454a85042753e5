package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []Record {
	return []Record{
		{ID: "007", Amount: 30000},
		{ID: "1002", Amount: 2000},
		{ID: "1003", Amount: 500},
	}
}

func TestMarkCopied_SetsOnlyTargetFlag(t *testing.T) {
	records := sampleRecords()

	updated, err := MarkCopied(records, 1, FieldID)
	require.NoError(t, err)

	assert.Equal(t, []Record{
		{ID: "007", Amount: 30000},
		{ID: "1002", Amount: 2000, IDCopied: true},
		{ID: "1003", Amount: 500},
	}, updated)

	updated, err = MarkCopied(updated, 2, FieldAmount)
	require.NoError(t, err)
	assert.True(t, updated[2].AmountCopied)
	assert.False(t, updated[2].IDCopied)
	assert.True(t, updated[1].IDCopied)
	assert.False(t, updated[1].AmountCopied)
}

func TestMarkCopied_DoesNotMutateInput(t *testing.T) {
	records := sampleRecords()
	before := sampleRecords()

	updated, err := MarkCopied(records, 0, FieldAmount)
	require.NoError(t, err)

	assert.Equal(t, before, records, "input slice must not change")
	assert.True(t, updated[0].AmountCopied)

	updated[1].ID = "changed"
	assert.Equal(t, "1002", records[1].ID, "result must not alias input")
}

func TestMarkCopied_Idempotent(t *testing.T) {
	records := sampleRecords()

	once, err := MarkCopied(records, 0, FieldID)
	require.NoError(t, err)
	twice, err := MarkCopied(once, 0, FieldID)
	require.NoError(t, err)

	assert.True(t, twice[0].IDCopied)
	assert.Equal(t, once, twice)
}

func TestMarkCopied_IndexOutOfRange(t *testing.T) {
	tests := []struct {
		name    string
		records []Record
		index   int
	}{
		{"negative", sampleRecords(), -1},
		{"equal to length", sampleRecords(), 3},
		{"far past end", sampleRecords(), 100},
		{"empty sequence", []Record{}, 0},
		{"nil sequence", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := append([]Record(nil), tt.records...)

			got, err := MarkCopied(tt.records, tt.index, FieldID)
			require.ErrorIs(t, err, ErrIndexOutOfRange)
			assert.Equal(t, before, append([]Record(nil), got...))
			assert.Equal(t, before, append([]Record(nil), tt.records...))
		})
	}
}

func TestMarkCopied_UnknownField(t *testing.T) {
	records := sampleRecords()

	got, err := MarkCopied(records, 0, Field("name"))
	require.ErrorIs(t, err, ErrUnknownField)
	assert.Equal(t, sampleRecords(), got)
}

func TestValue(t *testing.T) {
	r := Record{ID: "007", Amount: 30000}

	v, err := Value(r, FieldID)
	require.NoError(t, err)
	assert.Equal(t, "007", v)

	v, err = Value(r, FieldAmount)
	require.NoError(t, err)
	assert.Equal(t, "30000", v)

	_, err = Value(r, Field("other"))
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestParseField(t *testing.T) {
	tests := []struct {
		in      string
		want    Field
		wantErr bool
	}{
		{"id", FieldID, false},
		{"ID", FieldID, false},
		{" amount ", FieldAmount, false},
		{"Amount", FieldAmount, false},
		{"name", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseField(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownField)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecord_Copied(t *testing.T) {
	r := Record{ID: "1", Amount: 2, AmountCopied: true}
	assert.False(t, r.Copied(FieldID))
	assert.True(t, r.Copied(FieldAmount))
	assert.False(t, r.Copied(Field("x")))
}
