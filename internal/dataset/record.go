package dataset

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Record is a table of statistic values: one row per example, one column
// per statistic.
type Record struct {
	columns []string
	values  [][]float64 // column-major
	rows    int
}

func newRecord(columns []string) *Record {
	return &Record{
		columns: columns,
		values:  make([][]float64, len(columns)),
	}
}

func (r *Record) append(row []float64) {
	for j, v := range row {
		r.values[j] = append(r.values[j], v)
	}
	r.rows++
}

// Columns returns the statistic names.
func (r *Record) Columns() []string {
	return r.columns
}

// Len returns the number of rows.
func (r *Record) Len() int {
	return r.rows
}

func (r *Record) index(name string) int {
	for j, c := range r.columns {
		if c == name {
			return j
		}
	}
	return -1
}

// Column returns every value recorded under name.
func (r *Record) Column(name string) ([]float64, bool) {
	j := r.index(name)
	if j < 0 {
		return nil, false
	}
	return r.values[j], true
}

// Row returns the statistic values of example i.
func (r *Record) Row(i int) []float64 {
	row := make([]float64, len(r.columns))
	for j := range r.columns {
		row[j] = r.values[j][i]
	}
	return row
}

// Rows returns the full table in row-major order.
func (r *Record) Rows() [][]float64 {
	rows := make([][]float64, r.rows)
	for i := range rows {
		rows[i] = r.Row(i)
	}
	return rows
}

// Mean returns the average of a column. It reports false for unknown or
// empty columns.
func (r *Record) Mean(name string) (float64, bool) {
	col, ok := r.Column(name)
	if !ok || len(col) == 0 {
		return 0, false
	}
	return floats.Sum(col) / float64(len(col)), true
}

// Last returns the final value of a column.
func (r *Record) Last(name string) (float64, bool) {
	col, ok := r.Column(name)
	if !ok || len(col) == 0 {
		return 0, false
	}
	return col[len(col)-1], true
}

// WriteCSV writes a header line followed by one line per example.
func (r *Record) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(r.columns); err != nil {
		return errors.Wrap(err, "write header")
	}

	line := make([]string, len(r.columns))
	for i := 0; i < r.rows; i++ {
		for j := range r.columns {
			line[j] = strconv.FormatFloat(r.values[j][i], 'g', -1, 64)
		}
		if err := writer.Write(line); err != nil {
			return errors.Wrapf(err, "write row %d", i)
		}
	}

	writer.Flush()
	return errors.Wrap(writer.Error(), "flush")
}
