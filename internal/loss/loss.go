// Package loss provides scalar loss functions used to score network outputs.
package loss

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Loss scores a prediction against its target.
type Loss interface {
	// Forward computes the loss between predicted and true values.
	Forward(yPred, yTrue []float64) float64
}

func checkLen(name string, yPred, yTrue []float64) {
	if len(yPred) != len(yTrue) {
		panic(name + ": prediction and target must have same length")
	}
}

// MSE (Mean Squared Error) loss.
type MSE struct{}

// Forward computes mean squared error: (1/n) * sum((y_pred - y_true)^2)
func (m MSE) Forward(yPred, yTrue []float64) float64 {
	checkLen("MSE", yPred, yTrue)
	if len(yPred) == 0 {
		return 0
	}
	d := floats.Distance(yPred, yTrue, 2)
	return d * d / float64(len(yPred))
}

// HalfSSE is 0.5 * sum((y_pred - y_true)^2). Its gradient with respect to
// the prediction is exactly (y_pred - y_true), the error signal that seeds
// back-propagation.
type HalfSSE struct{}

// Forward computes half the sum of squared errors.
func (h HalfSSE) Forward(yPred, yTrue []float64) float64 {
	checkLen("HalfSSE", yPred, yTrue)
	d := floats.Distance(yPred, yTrue, 2)
	return 0.5 * d * d
}

// CrossEntropy loss for classification.
type CrossEntropy struct{}

// Forward computes cross entropy: -sum(y_true * log(y_pred + eps)) / n
func (c CrossEntropy) Forward(yPred, yTrue []float64) float64 {
	checkLen("CrossEntropy", yPred, yTrue)
	if len(yPred) == 0 {
		return 0
	}

	const eps = 1e-10
	var sum float64
	for i, pred := range yPred {
		// Clip prediction to avoid log(0)
		if pred < eps {
			pred = eps
		}
		sum -= yTrue[i] * math.Log(pred)
	}
	return sum / float64(len(yPred))
}

// BCELoss is binary cross entropy.
type BCELoss struct{}

// Forward computes binary cross entropy: -(1/n) * sum(y*log(p) + (1-y)*log(1-p))
func (b BCELoss) Forward(yPred, yTrue []float64) float64 {
	checkLen("BCELoss", yPred, yTrue)
	if len(yPred) == 0 {
		return 0
	}

	const eps = 1e-10
	var sum float64
	for i, pred := range yPred {
		pred = math.Min(math.Max(pred, eps), 1-eps)
		sum += yTrue[i]*math.Log(pred) + (1.0-yTrue[i])*math.Log(1.0-pred)
	}
	return -sum / float64(len(yPred))
}

// L1Loss is the mean absolute error.
type L1Loss struct{}

// Forward computes mean absolute error: (1/n) * sum(|y_pred - y_true|)
func (l L1Loss) Forward(yPred, yTrue []float64) float64 {
	checkLen("L1Loss", yPred, yTrue)
	if len(yPred) == 0 {
		return 0
	}
	return floats.Distance(yPred, yTrue, 1) / float64(len(yPred))
}

// Huber loss for robust regression.
type Huber struct {
	Delta float64 // Threshold for quadratic/linear transition
}

// NewHuber creates a Huber loss with the given delta.
func NewHuber(delta float64) Huber {
	return Huber{Delta: delta}
}

// Forward computes Huber loss.
func (h Huber) Forward(yPred, yTrue []float64) float64 {
	checkLen("Huber", yPred, yTrue)
	if len(yPred) == 0 {
		return 0
	}

	var sum float64
	for i := range yPred {
		diff := math.Abs(yPred[i] - yTrue[i])
		if diff <= h.Delta {
			sum += 0.5 * diff * diff
		} else {
			sum += h.Delta * (diff - 0.5*h.Delta)
		}
	}
	return sum / float64(len(yPred))
}
