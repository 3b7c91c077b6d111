package activations

import (
	"math/rand"
	"testing"
)

// fillRandom fills a slice with random values.
func fillRandom(slice []float64) {
	for i := range slice {
		slice[i] = rand.Float64()*4 - 2
	}
}

func benchmarkApply(b *testing.B, a Activation, derivative bool) {
	inputs := make([]float64, 1000)
	outputs := make([]float64, 1000)
	fillRandom(inputs)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Apply(a, outputs, inputs, derivative)
	}
}

func BenchmarkReLUApply(b *testing.B)          { benchmarkApply(b, ReLU, false) }
func BenchmarkReLUDerivative(b *testing.B)     { benchmarkApply(b, ReLU, true) }
func BenchmarkSigmoidApply(b *testing.B)       { benchmarkApply(b, Sigmoid, false) }
func BenchmarkSigmoidDerivative(b *testing.B)  { benchmarkApply(b, Sigmoid, true) }
func BenchmarkTanhApply(b *testing.B)          { benchmarkApply(b, Tanh, false) }
func BenchmarkTanhDerivative(b *testing.B)     { benchmarkApply(b, Tanh, true) }
func BenchmarkIdentityApply(b *testing.B)      { benchmarkApply(b, Identity, false) }
func BenchmarkIdentityDerivative(b *testing.B) { benchmarkApply(b, Identity, true) }
