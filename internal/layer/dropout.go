package layer

import (
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// Dropout selects how a layer masks its outputs after activation.
type Dropout int

const (
	// DropoutOff leaves outputs untouched.
	DropoutOff Dropout = iota

	// DropoutMask multiplies each output by an independent 0/1 draw.
	DropoutMask

	// DropoutScalar draws one integer in [2, width) and multiplies every
	// output by it. This reproduces the legacy mask construction and is
	// kept selectable until its intent is settled. Requires width > 2.
	DropoutScalar
)

func (d Dropout) String() string {
	switch d {
	case DropoutOff:
		return "off"
	case DropoutMask:
		return "mask"
	case DropoutScalar:
		return "scalar"
	}
	return "unknown"
}

// SetDropout sets the dropout policy.
func (l *Layer) SetDropout(d Dropout) {
	l.dropout = d
}

// Dropout returns the dropout policy.
func (l *Layer) Dropout() Dropout {
	return l.dropout
}

// SetSeed reseeds the dropout RNG so masks are reproducible.
func (l *Layer) SetSeed(seed int64) {
	l.rng = rand.New(rand.NewSource(seed))
}

// Mask returns the multiplier applied to each output in the last pass.
// It is all ones when dropout is off.
func (l *Layer) Mask() []float64 {
	if l.dropout == DropoutOff {
		for i := range l.mask {
			l.mask[i] = 1
		}
	}
	return l.mask
}

func (l *Layer) applyDropout() {
	switch l.dropout {
	case DropoutMask:
		for i := range l.mask {
			l.mask[i] = float64(l.rng.Intn(2))
		}
	case DropoutScalar:
		v := float64(2 + l.rng.Intn(l.width-2))
		for i := range l.mask {
			l.mask[i] = v
		}
	}
	floats.Mul(l.outputs, l.mask)
}
