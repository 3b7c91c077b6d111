package net

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/FlavioCFOliveira/GoPerceptron/internal/dataset"
)

// EvalOptions controls a pass over a dataset.
type EvalOptions struct {
	// Train applies a gradient step after every example.
	Train bool

	// Initialize, when positive, redraws trainable weights uniformly from
	// [-Initialize, Initialize] before the pass.
	Initialize float64

	// LearningRate scales the gradient step when training. Zero means
	// DefaultLearningRate; negative rates are rejected.
	LearningRate float64
}

// DefaultLearningRate is the step size of a training pass that sets none.
const DefaultLearningRate = 1.0

func (o EvalOptions) withDefaults() (EvalOptions, error) {
	if o.LearningRate < 0 {
		return o, errors.Wrapf(ErrInvalidInput, "negative learning rate %v", o.LearningRate)
	}
	if o.LearningRate == 0 {
		o.LearningRate = DefaultLearningRate
	}
	return o, nil
}

// Evaluate runs every example of ds through the network in order, training
// on it if requested, and records the dataset's statistics for each one.
// The record is also appended to the network's training record.
func (n *Network) Evaluate(ds *dataset.Dataset, opts EvalOptions) (*dataset.Record, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	return n.pass(ds, opts, nil)
}

// Run dispatches on the argument: a single input vector ([]float64 or
// *mat.VecDense) is predicted, a *dataset.Dataset is evaluated. Any other
// argument yields ErrInvalidInput.
func (n *Network) Run(arg any, opts EvalOptions) (any, error) {
	switch v := arg.(type) {
	case []float64:
		return n.Predict(v)
	case *mat.VecDense:
		if v == nil {
			break
		}
		return n.Predict(mat.Col(nil, 0, v))
	case *dataset.Dataset:
		if v == nil {
			break
		}
		return n.Evaluate(v, opts)
	}
	return nil, errors.Wrapf(ErrInvalidInput, "%T is neither a datapoint nor a dataset", arg)
}

// TrainingRecord returns the records of every dataset pass since the last
// initialisation, oldest first.
func (n *Network) TrainingRecord() []*dataset.Record {
	return n.records
}

func (n *Network) pass(ds *dataset.Dataset, opts EvalOptions, observe func(outputs, targets []float64)) (*dataset.Record, error) {
	if ds == nil {
		return nil, errors.Wrap(ErrInvalidInput, "nil dataset")
	}
	if opts.Initialize < 0 {
		return nil, errors.Wrapf(ErrInvalidInput, "negative initialisation scale %v", opts.Initialize)
	}
	if err := n.checkLayers(); err != nil {
		return nil, err
	}

	inputs, targets := ds.Inputs(), ds.Targets()
	for i := range inputs {
		if err := n.checkInput(inputs[i]); err != nil {
			return nil, errors.Wrapf(err, "example %d", i)
		}
		if err := n.checkTarget(targets[i]); err != nil {
			return nil, errors.Wrapf(err, "example %d", i)
		}
	}

	if opts.Initialize > 0 {
		n.Initialize(opts.Initialize)
	}

	rec := ds.NewRecord()
	for i := range inputs {
		if opts.Train {
			n.UpdateWeights(inputs[i], targets[i], opts.LearningRate)
		} else {
			n.Propagate(inputs[i])
		}
		ds.Measure(rec, n.Output(), targets[i])
		if observe != nil {
			observe(n.Output(), targets[i])
		}
	}

	n.records = append(n.records, rec)
	return rec, nil
}
