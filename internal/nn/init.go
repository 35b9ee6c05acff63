package nn

import (
	"math/rand"

	"github.com/gograd-ml/gograd/internal/autodiff"
)

// uniformWeight creates a leaf node drawn from the uniform distribution
// over [-1, 1).
func uniformWeight() *autodiff.Value {
	//nolint:gosec // math/rand for weight initialization (not security-critical)
	return autodiff.NewValue(rand.Float64()*2.0 - 1.0)
}

// zeroBias creates a leaf node holding zero, the bias initialization.
func zeroBias() *autodiff.Value {
	return autodiff.NewValue(0)
}
