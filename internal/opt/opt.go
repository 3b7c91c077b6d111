// Package opt provides the gradient step and learning-rate schedules.
package opt

import "gonum.org/v1/gonum/mat"

// SGD (Stochastic Gradient Descent) on a single example.
type SGD struct {
	LearningRate float64
}

// Step updates w in place: w = w - lr * outer(a, d), where a holds the
// outputs feeding w and d the deltas of the layer it feeds.
func (s SGD) Step(w *mat.Dense, a, d []float64) {
	r, c := w.Dims()
	if len(a) != r || len(d) != c {
		panic(mat.ErrShape)
	}
	w.RankOne(w, -s.LearningRate, mat.NewVecDense(r, a), mat.NewVecDense(c, d))
}
