// Package layer provides the neuron layer used by the feed-forward network.
package layer

import (
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/FlavioCFOliveira/GoPerceptron/internal/activations"
)

// DefaultSeed seeds the dropout RNG of every new layer.
const DefaultSeed = 42

// Layer is a layer of neurons sharing one bias and one activation.
//
// Inputs, outputs and deltas are scratch buffers overwritten by every
// propagation pass. A Layer must only be used by one pass at a time.
type Layer struct {
	width      int
	bias       float64
	activation activations.Activation
	dropout    Dropout

	// Scratch state for the current pass
	inputs  []float64
	outputs []float64
	deltas  []float64
	mask    []float64

	rng *rand.Rand
}

// New creates a layer of the given width. A nil activation means Identity.
func New(width int, bias float64, act activations.Activation) *Layer {
	if width < 0 {
		width = 0
	}
	if act == nil {
		act = activations.Identity
	}
	return &Layer{
		width:      width,
		bias:       bias,
		activation: act,
		inputs:     make([]float64, width),
		outputs:    make([]float64, width),
		deltas:     make([]float64, width),
		mask:       make([]float64, width),
		rng:        rand.New(rand.NewSource(DefaultSeed)),
	}
}

// Width returns the number of neurons.
func (l *Layer) Width() int {
	return l.width
}

// Bias returns the bias added to every input.
func (l *Layer) Bias() float64 {
	return l.bias
}

// Activation returns the layer activation.
func (l *Layer) Activation() activations.Activation {
	return l.activation
}

// SetInputs copies x into the input buffer and adds the bias to every element.
func (l *Layer) SetInputs(x []float64) {
	if len(x) != l.width {
		panic("layer: input width mismatch")
	}
	copy(l.inputs, x)
	floats.AddConst(l.bias, l.inputs)
}

// Activate computes outputs = activation(inputs), then applies dropout if enabled.
func (l *Layer) Activate() {
	activations.Apply(l.activation, l.outputs, l.inputs, false)
	if l.dropout != DropoutOff {
		l.applyDropout()
	}
}

// SetDeltas computes deltas = activation'(inputs) * errs.
func (l *Layer) SetDeltas(errs []float64) {
	if len(errs) != l.width {
		panic("layer: delta width mismatch")
	}
	activations.Apply(l.activation, l.deltas, l.inputs, true)
	floats.Mul(l.deltas, errs)
}

// Inputs returns the biased inputs of the last pass.
func (l *Layer) Inputs() []float64 {
	return l.inputs
}

// Outputs returns the activated outputs of the last pass.
func (l *Layer) Outputs() []float64 {
	return l.outputs
}

// Deltas returns the error signal of the last backward pass.
func (l *Layer) Deltas() []float64 {
	return l.deltas
}
