package dataset

import (
	"gonum.org/v1/gonum/floats"

	"github.com/FlavioCFOliveira/GoPerceptron/internal/loss"
)

// Statistic scores the network outputs for one example. history holds the
// values previously recorded under the same name during the current pass.
type Statistic func(outputs, targets, history []float64) float64

// FromLoss adapts a loss function into a statistic.
func FromLoss(l loss.Loss) Statistic {
	return func(outputs, targets, _ []float64) float64 {
		return l.Forward(outputs, targets)
	}
}

var (
	// SquaredError is the mean squared error of the example.
	SquaredError = FromLoss(loss.MSE{})

	// CrossEntropy is the cross entropy of the example.
	CrossEntropy = FromLoss(loss.CrossEntropy{})
)

// Correct is 1 when the largest output is at the target's largest entry.
func Correct(outputs, targets, _ []float64) float64 {
	if floats.MaxIdx(outputs) == floats.MaxIdx(targets) {
		return 1
	}
	return 0
}

// Accuracy is the running fraction of correct predictions so far.
func Accuracy(outputs, targets, history []float64) float64 {
	hit := Correct(outputs, targets, nil)
	n := float64(len(history))
	if n == 0 {
		return hit
	}
	return (history[len(history)-1]*n + hit) / (n + 1)
}
