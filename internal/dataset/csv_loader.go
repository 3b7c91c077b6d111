package dataset

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// LoadCSV loads a dataset from a CSV file.
// labelCols specifies the indices of columns used as targets, in order.
// All other columns are used as inputs.
// hasHeader skips the first line if true.
func LoadCSV(filename string, labelCols []int, hasHeader bool) (*Dataset, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open file")
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read csv")
	}

	startRow := 0
	if hasHeader {
		startRow = 1
	}
	if len(records) <= startRow {
		return nil, errors.Wrapf(ErrEmpty, "csv file %s has no data rows", filename)
	}

	numCols := len(records[0])
	isLabelCol := make(map[int]bool)
	for _, col := range labelCols {
		if col < 0 || col >= numCols {
			return nil, errors.Wrapf(ErrShape, "label column %d out of range", col)
		}
		isLabelCol[col] = true
	}

	numSamples := len(records) - startRow
	inputs := make([][]float64, numSamples)
	targets := make([][]float64, numSamples)

	for i := startRow; i < len(records); i++ {
		record := records[i]
		if len(record) != numCols {
			return nil, errors.Wrapf(ErrShape, "inconsistent number of columns at row %d", i)
		}

		input := make([]float64, 0, numCols-len(isLabelCol))
		values := make([]float64, numCols)
		for j, valStr := range record {
			val, err := strconv.ParseFloat(valStr, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to parse value at row %d, col %d", i, j)
			}
			values[j] = val
			if !isLabelCol[j] {
				input = append(input, val)
			}
		}

		target := make([]float64, 0, len(labelCols))
		for _, col := range labelCols {
			target = append(target, values[col])
		}

		inputs[i-startRow] = input
		targets[i-startRow] = target
	}

	return New(inputs, targets)
}
