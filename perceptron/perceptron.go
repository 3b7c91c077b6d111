// Package perceptron is the public entry point to the multilayer perceptron
// library.
package perceptron

import (
	"github.com/FlavioCFOliveira/GoPerceptron/internal/activations"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/dataset"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/layer"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/loss"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/mnist"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/net"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/opt"
)

// Re-export common types and functions for easier access
type (
	Network     = net.Network
	Layer       = layer.Layer
	Activation  = activations.Activation
	Dataset     = dataset.Dataset
	Record      = dataset.Record
	Statistic   = dataset.Statistic
	Loss        = loss.Loss
	Scheduler   = opt.Scheduler
	EvalOptions = net.EvalOptions
	FitOptions  = net.FitOptions
)

// Errors
var (
	ErrInvalidInput = net.ErrInvalidInput
	ErrShape        = net.ErrShape
	ErrDropoutWidth = net.ErrDropoutWidth
	ErrFixedWeights = net.ErrFixedWeights
)

// Network creation
func New(layers ...*Layer) (*Network, error) {
	return net.New(layers...)
}

// Layers
func NewLayer(width int, bias float64, act Activation) *Layer {
	return layer.New(width, bias, act)
}

// Dropout policies
const (
	DropoutOff    = layer.DropoutOff
	DropoutMask   = layer.DropoutMask
	DropoutScalar = layer.DropoutScalar
)

// Activations
var (
	Identity = activations.Identity
	ReLU     = activations.ReLU
	Sigmoid  = activations.Sigmoid
	Tanh     = activations.Tanh
	Softplus = activations.Softplus
)

func NewActivation(name string, f, df func(float64) float64) Activation {
	return activations.New(name, f, df)
}

func LeakyReLU(alpha float64) Activation {
	return activations.NewLeakyReLU(alpha)
}

func ELU(alpha float64) Activation {
	return activations.NewELU(alpha)
}

// Datasets
func NewDataset(inputs, targets [][]float64) (*Dataset, error) {
	return dataset.New(inputs, targets)
}

func LoadCSV(filename string, labelCols []int, hasHeader bool) (*Dataset, error) {
	return dataset.LoadCSV(filename, labelCols, hasHeader)
}

func LoadMNIST(imagesPath, labelsPath string, limit int) (*Dataset, error) {
	return mnist.Load(imagesPath, labelsPath, limit)
}

func OneHot(class, width int) []float64 {
	return dataset.OneHot(class, width)
}

// Statistics
var (
	SquaredError Statistic = dataset.SquaredError
	CrossEntropy Statistic = dataset.CrossEntropy
	Correct      Statistic = dataset.Correct
	Accuracy     Statistic = dataset.Accuracy
)

func FromLoss(l Loss) Statistic {
	return dataset.FromLoss(l)
}

// Losses
var (
	MSE     = loss.MSE{}
	BCELoss = loss.BCELoss{}
	L1Loss  = loss.L1Loss{}
)

func Huber(delta float64) Loss {
	return loss.NewHuber(delta)
}

// Schedulers
func Constant(lr float64) Scheduler {
	return opt.Constant(lr)
}

func StepLR(initialLR float64, stepSize int, gamma float64) *opt.StepLR {
	return opt.NewStepLR(initialLR, stepSize, gamma)
}

func ExponentialLR(initialLR, gamma float64) *opt.ExponentialLR {
	return opt.NewExponentialLR(initialLR, gamma)
}

func ReduceLROnPlateau(initialLR, factor float64, patience int, threshold, minLR float64) *opt.ReduceLROnPlateau {
	return opt.NewReduceLROnPlateau(initialLR, factor, patience, threshold, minLR)
}

// Callbacks
type Callback = net.Callback

func Logger(interval int) net.Logger {
	return net.Logger{Interval: interval}
}

func EarlyStopping(patience int, threshold float64) *net.EarlyStopping {
	return net.NewEarlyStopping(patience, threshold)
}

func CSVLogger(filename string, append bool) *net.CSVLogger {
	return net.NewCSVLogger(filename, append)
}
