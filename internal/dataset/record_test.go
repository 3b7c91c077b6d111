package dataset

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord() *Record {
	rec := newRecord([]string{"loss", "correct"})
	rec.append([]float64{0.5, 1})
	rec.append([]float64{0.25, 0})
	return rec
}

func TestRecordAccessors(t *testing.T) {
	rec := sampleRecord()

	assert.Equal(t, 2, rec.Len())
	assert.Equal(t, [][]float64{{0.5, 1}, {0.25, 0}}, rec.Rows())

	mean, ok := rec.Mean("loss")
	require.True(t, ok)
	assert.InDelta(t, 0.375, mean, 1e-12)

	last, ok := rec.Last("correct")
	require.True(t, ok)
	assert.Equal(t, 0.0, last)

	_, ok = rec.Column("missing")
	assert.False(t, ok)
	_, ok = rec.Mean("missing")
	assert.False(t, ok)
}

func TestRecordEmptyColumns(t *testing.T) {
	rec := newRecord(nil)
	rec.append(nil)

	assert.Equal(t, 1, rec.Len())
	assert.Equal(t, [][]float64{{}}, rec.Rows())
}

func TestRecordWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleRecord().WriteCSV(&buf))

	assert.Equal(t, "loss,correct\n0.5,1\n0.25,0\n", buf.String())
}
