package net

import (
	"github.com/pkg/errors"

	"github.com/FlavioCFOliveira/GoPerceptron/internal/dataset"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/loss"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/opt"
)

// FitOptions controls a multi-epoch training run.
type FitOptions struct {
	Epochs int

	// LearningRate is used when Scheduler is nil. Zero means
	// DefaultLearningRate.
	LearningRate float64
	Scheduler    opt.Scheduler

	// Initialize, when positive, redraws weights before the first epoch.
	Initialize float64

	Callbacks []Callback
}

// Fit trains on ds for the given number of epochs, one example at a time.
// It returns the mean squared error of the last epoch.
func (n *Network) Fit(ds *dataset.Dataset, opts FitOptions) (float64, error) {
	if opts.Epochs < 1 {
		return 0, errors.Wrapf(ErrInvalidInput, "epochs must be positive, got %d", opts.Epochs)
	}
	sched := opts.Scheduler
	if sched == nil {
		eval, err := EvalOptions{LearningRate: opts.LearningRate}.withDefaults()
		if err != nil {
			return 0, err
		}
		sched = opt.Constant(eval.LearningRate)
	}

	for _, c := range opts.Callbacks {
		c.OnTrainBegin(n)
	}
	defer func() {
		for _, c := range opts.Callbacks {
			c.OnTrainEnd(n)
		}
	}()

	mse := loss.MSE{}
	var epochLoss float64
	for epoch := 0; epoch < opts.Epochs; epoch++ {
		for _, c := range opts.Callbacks {
			c.OnEpochBegin(epoch, n)
		}

		eval := EvalOptions{Train: true, LearningRate: sched.LearningRate()}
		if epoch == 0 {
			eval.Initialize = opts.Initialize
		}

		var sum float64
		_, err := n.pass(ds, eval, func(outputs, targets []float64) {
			sum += mse.Forward(outputs, targets)
		})
		if err != nil {
			return 0, errors.Wrapf(err, "epoch %d", epoch)
		}
		epochLoss = 0
		if ds.Size() > 0 {
			epochLoss = sum / float64(ds.Size())
		}

		for _, c := range opts.Callbacks {
			c.OnEpochEnd(epoch, epochLoss, n)
		}
		sched.Step(epochLoss)

		if shouldStop(opts.Callbacks) {
			break
		}
	}
	return epochLoss, nil
}

func shouldStop(callbacks []Callback) bool {
	for _, c := range callbacks {
		if s, ok := c.(Stopper); ok && s.ShouldStop() {
			return true
		}
	}
	return false
}
