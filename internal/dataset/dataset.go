// Package dataset pairs input vectors with target vectors and scores
// network outputs with a registry of named statistics.
package dataset

import (
	"github.com/pkg/errors"
)

var (
	// ErrEmpty is returned for datasets or rows without values.
	ErrEmpty = errors.New("dataset: empty")

	// ErrShape is returned when inputs and targets do not line up.
	ErrShape = errors.New("dataset: shape mismatch")

	// ErrDuplicateStatistic is returned when a statistic name is registered twice.
	ErrDuplicateStatistic = errors.New("dataset: duplicate statistic")
)

type namedStatistic struct {
	name string
	fn   Statistic
}

// Dataset is an ordered sequence of (input, target) pairs plus the
// statistics evaluated for every example.
type Dataset struct {
	inputs  [][]float64
	targets [][]float64
	stats   []namedStatistic
}

// New creates a dataset. inputs[i] is paired with targets[i]; the slices
// are used as given, not copied.
func New(inputs, targets [][]float64) (*Dataset, error) {
	if len(inputs) != len(targets) {
		return nil, errors.Wrapf(ErrShape, "%d inputs for %d targets", len(inputs), len(targets))
	}
	for i := range inputs {
		if len(inputs[i]) == 0 || len(targets[i]) == 0 {
			return nil, errors.Wrapf(ErrEmpty, "example %d", i)
		}
	}
	return &Dataset{
		inputs:  inputs,
		targets: targets,
	}, nil
}

// Size returns the number of examples.
func (d *Dataset) Size() int {
	return len(d.inputs)
}

// Inputs returns the input vectors.
func (d *Dataset) Inputs() [][]float64 {
	return d.inputs
}

// Targets returns the target vectors.
func (d *Dataset) Targets() [][]float64 {
	return d.targets
}

// Register adds a named statistic. Columns of a Record follow registration order.
func (d *Dataset) Register(name string, fn Statistic) error {
	if name == "" || fn == nil {
		return errors.Wrap(ErrEmpty, "statistic name and function are required")
	}
	for _, s := range d.stats {
		if s.name == name {
			return errors.Wrapf(ErrDuplicateStatistic, "%q", name)
		}
	}
	d.stats = append(d.stats, namedStatistic{name: name, fn: fn})
	return nil
}

// Statistics returns the registered statistic names in order.
func (d *Dataset) Statistics() []string {
	names := make([]string, len(d.stats))
	for i, s := range d.stats {
		names[i] = s.name
	}
	return names
}

// NewRecord returns an empty record with one column per registered statistic.
func (d *Dataset) NewRecord() *Record {
	return newRecord(d.Statistics())
}

// Measure evaluates every statistic on one example and appends a row to rec.
// Each statistic sees the values already recorded under its own name.
func (d *Dataset) Measure(rec *Record, outputs, targets []float64) {
	row := make([]float64, len(d.stats))
	for j, s := range d.stats {
		row[j] = s.fn(outputs, targets, rec.values[j])
	}
	rec.append(row)
}

// Normalize performs per-feature min-max scaling of the inputs in place.
// Constant features become 0.
func (d *Dataset) Normalize() {
	if len(d.inputs) == 0 {
		return
	}

	numFeatures := len(d.inputs[0])
	min := make([]float64, numFeatures)
	max := make([]float64, numFeatures)
	copy(min, d.inputs[0])
	copy(max, d.inputs[0])

	for _, sample := range d.inputs {
		for i, val := range sample {
			if val < min[i] {
				min[i] = val
			}
			if val > max[i] {
				max[i] = val
			}
		}
	}

	for _, sample := range d.inputs {
		for i := range sample {
			diff := max[i] - min[i]
			if diff != 0 {
				sample[i] = (sample[i] - min[i]) / diff
			} else {
				sample[i] = 0
			}
		}
	}
}

// Split splits the dataset in two at the given ratio (0.0 to 1.0).
// Both halves share the rows and copy the statistic registry.
func (d *Dataset) Split(ratio float64) (*Dataset, *Dataset) {
	splitIdx := int(float64(len(d.inputs)) * ratio)
	if splitIdx < 0 {
		splitIdx = 0
	}
	if splitIdx > len(d.inputs) {
		splitIdx = len(d.inputs)
	}

	train := &Dataset{
		inputs:  d.inputs[:splitIdx],
		targets: d.targets[:splitIdx],
		stats:   append([]namedStatistic(nil), d.stats...),
	}
	test := &Dataset{
		inputs:  d.inputs[splitIdx:],
		targets: d.targets[splitIdx:],
		stats:   append([]namedStatistic(nil), d.stats...),
	}
	return train, test
}

// OneHot returns a vector of the given width with a 1 at class.
func OneHot(class, width int) []float64 {
	v := make([]float64, width)
	if class >= 0 && class < width {
		v[class] = 1
	}
	return v
}
