package opt

import "math"

// Scheduler supplies the learning rate for each training epoch.
type Scheduler interface {
	// LearningRate returns the rate for the next epoch.
	LearningRate() float64

	// Step is called after every epoch with its mean loss.
	Step(loss float64)
}

// Constant keeps the learning rate fixed.
type Constant float64

func (c Constant) LearningRate() float64 { return float64(c) }
func (c Constant) Step(float64)          {}

// StepLR decays the learning rate by gamma every stepSize epochs.
type StepLR struct {
	lr        float64
	stepSize  int
	gamma     float64
	lastEpoch int
}

func NewStepLR(initialLR float64, stepSize int, gamma float64) *StepLR {
	if stepSize < 1 {
		stepSize = 1
	}
	return &StepLR{
		lr:       initialLR,
		stepSize: stepSize,
		gamma:    gamma,
	}
}

func (s *StepLR) LearningRate() float64 {
	return s.lr
}

func (s *StepLR) Step(float64) {
	s.lastEpoch++
	if s.lastEpoch%s.stepSize == 0 {
		s.lr *= s.gamma
	}
}

// ExponentialLR decays the learning rate by gamma every epoch.
type ExponentialLR struct {
	lr    float64
	gamma float64
}

func NewExponentialLR(initialLR, gamma float64) *ExponentialLR {
	return &ExponentialLR{lr: initialLR, gamma: gamma}
}

func (s *ExponentialLR) LearningRate() float64 {
	return s.lr
}

func (s *ExponentialLR) Step(float64) {
	s.lr *= s.gamma
}

// ReduceLROnPlateau reduces learning rate when the loss has stopped improving.
type ReduceLROnPlateau struct {
	lr        float64
	factor    float64
	patience  int
	threshold float64
	cooldown  int
	minLR     float64

	bestLoss        float64
	numBadEpochs    int
	cooldownCounter int
}

func NewReduceLROnPlateau(initialLR, factor float64, patience int, threshold, minLR float64) *ReduceLROnPlateau {
	return &ReduceLROnPlateau{
		lr:        initialLR,
		factor:    factor,
		patience:  patience,
		threshold: threshold,
		minLR:     minLR,
		bestLoss:  math.MaxFloat64,
	}
}

// SetCooldown sets the number of epochs to wait after a reduction.
func (s *ReduceLROnPlateau) SetCooldown(epochs int) {
	s.cooldown = epochs
}

func (s *ReduceLROnPlateau) LearningRate() float64 {
	return s.lr
}

func (s *ReduceLROnPlateau) Step(loss float64) {
	if s.cooldownCounter > 0 {
		s.cooldownCounter--
		return
	}

	if loss < s.bestLoss-s.threshold {
		s.bestLoss = loss
		s.numBadEpochs = 0
	} else {
		s.numBadEpochs++
	}

	if s.numBadEpochs >= s.patience {
		s.lr = math.Max(s.lr*s.factor, s.minLR)
		s.numBadEpochs = 0
		s.cooldownCounter = s.cooldown
	}
}
