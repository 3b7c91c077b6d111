// Package net provides the feed-forward network: propagation,
// back-propagation and single-example gradient descent.
package net

import (
	"math/rand"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/FlavioCFOliveira/GoPerceptron/internal/dataset"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/layer"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/opt"
)

// DefaultSeed seeds weight initialisation for a new network.
const DefaultSeed = 1

var (
	// ErrInvalidInput is returned for arguments that are neither a single
	// input vector nor a dataset, and for malformed options.
	ErrInvalidInput = errors.New("net: invalid input")

	// ErrShape is returned when a vector or matrix does not match the layer widths.
	ErrShape = errors.New("net: shape mismatch")

	// ErrFixedWeights is returned when replacing the output pass-through matrix.
	ErrFixedWeights = errors.New("net: weights are fixed")

	// ErrDropoutWidth is returned for scalar dropout on a layer of width <= 2.
	ErrDropoutWidth = errors.New("net: scalar dropout needs width > 2")
)

// Network is a feed-forward network of layers joined by weight matrices.
//
// weights[i] has shape (layers[i].Width(), layers[i+1].Width()); the final
// matrix is the identity of the last layer's width and is never trained.
// A Network keeps per-pass scratch state and must not be used concurrently.
type Network struct {
	layers  []*layer.Layer
	weights []*mat.Dense

	// Pre-allocated products for the forward and backward passes
	next   []*mat.VecDense
	back   []*mat.VecDense
	errBuf []float64

	rng     *rand.Rand
	records []*dataset.Record
}

// New creates a network from layers in forward order. Trainable weights
// start at zero until Initialize is called or weights are set explicitly.
func New(layers ...*layer.Layer) (*Network, error) {
	if len(layers) == 0 {
		return nil, errors.Wrap(ErrInvalidInput, "network needs at least one layer")
	}
	seen := make(map[*layer.Layer]int, len(layers))
	for i, l := range layers {
		if l == nil {
			return nil, errors.Wrapf(ErrInvalidInput, "layer %d is nil", i)
		}
		if j, ok := seen[l]; ok {
			return nil, errors.Wrapf(ErrInvalidInput, "layer %d is layer %d again", i, j)
		}
		seen[l] = i
		if l.Width() < 1 {
			return nil, errors.Wrapf(ErrShape, "layer %d has width %d", i, l.Width())
		}
	}

	n := &Network{
		layers:  layers,
		weights: make([]*mat.Dense, len(layers)),
		next:    make([]*mat.VecDense, len(layers)),
		back:    make([]*mat.VecDense, len(layers)),
		errBuf:  make([]float64, layers[len(layers)-1].Width()),
		rng:     rand.New(rand.NewSource(DefaultSeed)),
	}
	if err := n.checkLayers(); err != nil {
		return nil, err
	}

	last := len(layers) - 1
	for i, l := range layers {
		cols := l.Width()
		if i < last {
			cols = layers[i+1].Width()
		}
		n.weights[i] = mat.NewDense(l.Width(), cols, nil)
		n.next[i] = mat.NewVecDense(cols, nil)
		n.back[i] = mat.NewVecDense(l.Width(), nil)
	}
	setIdentity(n.weights[last])

	return n, nil
}

func (n *Network) checkLayers() error {
	for i, l := range n.layers {
		if l.Dropout() == layer.DropoutScalar && l.Width() <= 2 {
			return errors.Wrapf(ErrDropoutWidth, "layer %d has width %d", i, l.Width())
		}
	}
	return nil
}

func setIdentity(m *mat.Dense) {
	m.Zero()
	r, _ := m.Dims()
	for i := 0; i < r; i++ {
		m.Set(i, i, 1)
	}
}

// Depth returns the number of layers.
func (n *Network) Depth() int {
	return len(n.layers)
}

// Widths returns the width of every layer.
func (n *Network) Widths() []int {
	w := make([]int, len(n.layers))
	for i, l := range n.layers {
		w[i] = l.Width()
	}
	return w
}

// Layers returns the network's layers.
func (n *Network) Layers() []*layer.Layer {
	return n.layers
}

// SetSeed reseeds the RNG used by Initialize.
func (n *Network) SetSeed(seed int64) {
	n.rng = rand.New(rand.NewSource(seed))
}

// Initialize draws every trainable weight uniformly from [-scale, scale],
// resets the output matrix to identity and clears the training record.
func (n *Network) Initialize(scale float64) {
	last := len(n.weights) - 1
	for i := 0; i < last; i++ {
		data := n.weights[i].RawMatrix().Data
		for j := range data {
			data[j] = n.rng.Float64()*2*scale - scale
		}
	}
	setIdentity(n.weights[last])
	n.records = nil
}

// Weights returns a copy of weight matrix i.
func (n *Network) Weights(i int) *mat.Dense {
	return mat.DenseCopyOf(n.weights[i])
}

// SetWeights replaces trainable weight matrix i with a copy of m.
func (n *Network) SetWeights(i int, m mat.Matrix) error {
	if i < 0 || i >= len(n.weights) {
		return errors.Wrapf(ErrInvalidInput, "no weight matrix %d", i)
	}
	if i == len(n.weights)-1 {
		return errors.Wrap(ErrFixedWeights, "output pass-through matrix")
	}
	wr, wc := n.weights[i].Dims()
	r, c := m.Dims()
	if r != wr || c != wc {
		return errors.Wrapf(ErrShape, "weights %d: got %dx%d, want %dx%d", i, r, c, wr, wc)
	}
	n.weights[i].Copy(m)
	return nil
}

// Propagate pushes x through every layer, leaving inputs and outputs in
// each layer. It panics if x does not match the first layer width.
func (n *Network) Propagate(x []float64) {
	for i, l := range n.layers {
		l.SetInputs(x)
		l.Activate()
		out := l.Outputs()
		n.next[i].MulVec(n.weights[i].T(), mat.NewVecDense(len(out), out))
		x = n.next[i].RawVector().Data
	}
}

// BackPropagate computes every layer's deltas from the error
// (outputs - targets) of the last Propagate call.
func (n *Network) BackPropagate(targets []float64) {
	last := n.layers[len(n.layers)-1]
	floats.SubTo(n.errBuf, last.Outputs(), targets)

	errs := n.errBuf
	for i := len(n.layers) - 1; i >= 0; i-- {
		l := n.layers[i]
		n.back[i].MulVec(n.weights[i], mat.NewVecDense(len(errs), errs))
		l.SetDeltas(n.back[i].RawVector().Data)
		errs = l.Deltas()
	}
}

// UpdateWeights runs one forward and backward pass on a single example and
// applies a gradient descent step to every trainable weight matrix.
func (n *Network) UpdateWeights(x, targets []float64, learningRate float64) {
	n.Propagate(x)
	n.BackPropagate(targets)

	sgd := opt.SGD{LearningRate: learningRate}
	for i := 0; i < len(n.weights)-1; i++ {
		sgd.Step(n.weights[i], n.layers[i].Outputs(), n.layers[i+1].Deltas())
	}
}

// Output returns the last layer's outputs from the most recent pass.
func (n *Network) Output() []float64 {
	return n.layers[len(n.layers)-1].Outputs()
}

// Predict propagates a single input vector and returns a copy of the prediction.
func (n *Network) Predict(x []float64) ([]float64, error) {
	if err := n.checkInput(x); err != nil {
		return nil, err
	}
	if err := n.checkLayers(); err != nil {
		return nil, err
	}
	n.Propagate(x)
	return append([]float64(nil), n.Output()...), nil
}

func (n *Network) checkInput(x []float64) error {
	if w := n.layers[0].Width(); len(x) != w {
		return errors.Wrapf(ErrShape, "input has %d values, first layer has %d", len(x), w)
	}
	return nil
}

func (n *Network) checkTarget(t []float64) error {
	if w := n.layers[len(n.layers)-1].Width(); len(t) != w {
		return errors.Wrapf(ErrShape, "target has %d values, last layer has %d", len(t), w)
	}
	return nil
}
