// Package activations provides element-wise activation functions and their derivatives.
package activations

import "math"

// Activation is an activation function with derivative.
type Activation interface {
	// Name identifies the activation in summaries and logs.
	Name() string

	// Activate computes f(x)
	Activate(x float64) float64

	// Derivative computes f'(x)
	Derivative(x float64) float64
}

// Func is an Activation built from a pair of scalar functions.
// df must be the true derivative of f; this is not checked.
type Func struct {
	name string
	f    func(float64) float64
	df   func(float64) float64
}

// New creates an activation from a name, a function and its derivative.
func New(name string, f, df func(float64) float64) *Func {
	return &Func{name: name, f: f, df: df}
}

// Name returns the activation name.
func (a *Func) Name() string {
	return a.name
}

// Activate computes f(x)
func (a *Func) Activate(x float64) float64 {
	return a.f(x)
}

// Derivative computes f'(x)
func (a *Func) Derivative(x float64) float64 {
	return a.df(x)
}

// Apply writes f(x[i]) into dst[i], or f'(x[i]) when derivative is set.
// dst may alias x. It returns dst.
func Apply(a Activation, dst, x []float64, derivative bool) []float64 {
	if len(dst) != len(x) {
		panic("activations: length mismatch")
	}
	if derivative {
		for i, v := range x {
			dst[i] = a.Derivative(v)
		}
		return dst
	}
	for i, v := range x {
		dst[i] = a.Activate(v)
	}
	return dst
}

// Common activations. They are stateless and safe to share between layers.
var (
	// Identity passes values through unchanged.
	Identity Activation = New("None",
		func(x float64) float64 { return x },
		func(float64) float64 { return 1 },
	)

	// ReLU computes max(x, 0). The derivative at 0 is 0.
	ReLU Activation = New("ReLU", relu, reluDerivative)

	// Sigmoid is the logistic function 1/(1+e^-x).
	Sigmoid Activation = New("Sigmoid", sigmoid, sigmoidDerivative)

	// Tanh is the hyperbolic tangent. It saturates at ±1 for large |x|
	// where the quotient of exponentials would overflow to NaN.
	Tanh Activation = New("Hyperbolic", math.Tanh, tanhDerivative)

	// Softplus computes ln(1+e^x), a smooth approximation of ReLU.
	Softplus Activation = New("Softplus",
		func(x float64) float64 { return math.Log1p(math.Exp(x)) },
		sigmoid,
	)
)

func relu(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0
}

func reluDerivative(x float64) float64 {
	if x > 0 {
		return 1
	}
	return 0
}

// sigmoid computes the sigmoid function
func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// sigmoidDerivative computes sigmoid(x) * (1 - sigmoid(x))
func sigmoidDerivative(x float64) float64 {
	sigma := sigmoid(x)
	return sigma * (1 - sigma)
}

// tanhDerivative computes 1 - tanh(x)^2
func tanhDerivative(x float64) float64 {
	tanhX := math.Tanh(x)
	return 1 - tanhX*tanhX
}

// NewLeakyReLU creates a LeakyReLU with the given slope for x <= 0.
func NewLeakyReLU(alpha float64) Activation {
	return New("LeakyReLU",
		func(x float64) float64 {
			if x > 0 {
				return x
			}
			return alpha * x
		},
		func(x float64) float64 {
			if x > 0 {
				return 1
			}
			return alpha
		},
	)
}

// NewELU creates an ELU activation: x for x > 0, alpha*(e^x - 1) otherwise.
func NewELU(alpha float64) Activation {
	return New("ELU",
		func(x float64) float64 {
			if x > 0 {
				return x
			}
			return alpha * (math.Exp(x) - 1)
		},
		func(x float64) float64 {
			if x > 0 {
				return 1
			}
			return alpha * math.Exp(x)
		},
	)
}
