package dataset

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidatesShape(t *testing.T) {
	_, err := New([][]float64{{1}, {2}}, [][]float64{{1}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrShape))

	_, err = New([][]float64{{}}, [][]float64{{1}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmpty))

	d, err := New([][]float64{{1, 2}}, [][]float64{{0, 1}})
	require.NoError(t, err)
	assert.Equal(t, 1, d.Size())
	assert.Empty(t, d.Statistics())
}

func TestRegister(t *testing.T) {
	d, err := New([][]float64{{1}}, [][]float64{{1}})
	require.NoError(t, err)

	require.NoError(t, d.Register("mse", SquaredError))
	require.NoError(t, d.Register("acc", Accuracy))

	err = d.Register("mse", SquaredError)
	assert.True(t, errors.Is(err, ErrDuplicateStatistic))

	assert.Error(t, d.Register("", SquaredError))
	assert.Error(t, d.Register("nil", nil))

	assert.Equal(t, []string{"mse", "acc"}, d.Statistics())
}

func TestRegistryIsPerDataset(t *testing.T) {
	a, _ := New([][]float64{{1}}, [][]float64{{1}})
	b, _ := New([][]float64{{1}}, [][]float64{{1}})

	require.NoError(t, a.Register("mse", SquaredError))

	assert.Equal(t, []string{"mse"}, a.Statistics())
	assert.Empty(t, b.Statistics())
}

func TestMeasure(t *testing.T) {
	d, _ := New([][]float64{{0}}, [][]float64{{0}})
	require.NoError(t, d.Register("correct", Correct))
	require.NoError(t, d.Register("acc", Accuracy))
	require.NoError(t, d.Register("mse", SquaredError))

	rec := d.NewRecord()
	d.Measure(rec, []float64{0.9, 0.1}, []float64{1, 0}) // hit
	d.Measure(rec, []float64{0.9, 0.1}, []float64{0, 1}) // miss
	d.Measure(rec, []float64{0.2, 0.8}, []float64{0, 1}) // hit

	assert.Equal(t, 3, rec.Len())
	assert.Equal(t, []string{"correct", "acc", "mse"}, rec.Columns())

	correct, ok := rec.Column("correct")
	require.True(t, ok)
	assert.Equal(t, []float64{1, 0, 1}, correct)

	acc, _ := rec.Column("acc")
	assert.InDeltaSlice(t, []float64{1, 0.5, 2.0 / 3}, acc, 1e-12)

	row := rec.Row(0)
	assert.Equal(t, 1.0, row[0])
	assert.InDelta(t, 0.01, row[2], 1e-12)
}

func TestNormalize(t *testing.T) {
	d, err := New(
		[][]float64{{10, 0, 3}, {20, 5, 3}, {30, 10, 3}},
		[][]float64{{0}, {0}, {0}},
	)
	require.NoError(t, err)

	d.Normalize()

	assert.Equal(t, [][]float64{
		{0.0, 0.0, 0},
		{0.5, 0.5, 0},
		{1.0, 1.0, 0},
	}, d.Inputs())
}

func TestSplit(t *testing.T) {
	d, _ := New(
		[][]float64{{1}, {2}, {3}, {4}},
		[][]float64{{1}, {2}, {3}, {4}},
	)
	require.NoError(t, d.Register("mse", SquaredError))

	train, test := d.Split(0.75)
	assert.Equal(t, 3, train.Size())
	assert.Equal(t, 1, test.Size())
	assert.Equal(t, [][]float64{{4}}, test.Targets())
	assert.Equal(t, []string{"mse"}, test.Statistics())

	all, none := d.Split(2)
	assert.Equal(t, 4, all.Size())
	assert.Equal(t, 0, none.Size())
}

func TestOneHot(t *testing.T) {
	assert.Equal(t, []float64{0, 0, 1, 0}, OneHot(2, 4))
	assert.Equal(t, []float64{0, 0}, OneHot(5, 2))
}
