package gradcheck_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gograd-ml/gograd/internal/autodiff"
	"github.com/gograd-ml/gograd/internal/gradcheck"
)

// TestCheck_Polynomial tests f(x0, x1) = x0·x1 + x0³.
func TestCheck_Polynomial(t *testing.T) {
	f := func(xs []*autodiff.Value) *autodiff.Value {
		return xs[0].Mul(xs[1]).Add(xs[0].Pow(3))
	}

	require.NoError(t, gradcheck.Check(f, []float64{2.0, 3.0}, 1e-4))
}

// TestCheck_Neuron tests a relu(w·x + b) sub-graph away from the kink.
func TestCheck_Neuron(t *testing.T) {
	f := func(xs []*autodiff.Value) *autodiff.Value {
		// xs = [w0, w1, b] over a fixed input (1.5, -0.5)
		sum := xs[0].Mul(autodiff.NewValue(1.5)).
			Add(xs[1].Mul(autodiff.NewValue(-0.5))).
			Add(xs[2])
		return sum.ReLU()
	}

	require.NoError(t, gradcheck.Check(f, []float64{0.8, 0.4, 0.3}, 1e-4))
}

// TestCheck_DerivedOps tests subtraction and division gradients.
func TestCheck_DerivedOps(t *testing.T) {
	f := func(xs []*autodiff.Value) *autodiff.Value {
		return xs[0].Sub(xs[1]).Add(xs[0].Div(xs[1]))
	}

	require.NoError(t, gradcheck.Check(f, []float64{4.0, 2.0}, 1e-4))
}

// TestCheck_DetachedConstant tests that Check flags a graph whose analytic
// gradient disagrees with the function it computes: baking a leaf's current
// data in as a constant hides half of d(x²)/dx.
func TestCheck_DetachedConstant(t *testing.T) {
	f := func(xs []*autodiff.Value) *autodiff.Value {
		return xs[0].Mul(autodiff.NewValue(xs[0].Data()))
	}

	err := gradcheck.Check(f, []float64{3.0}, 1e-4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input 0")
}

// TestCheck_ReLUKink tests that the comparison fails on the kink itself,
// where the central difference straddles both sides.
func TestCheck_ReLUKink(t *testing.T) {
	f := func(xs []*autodiff.Value) *autodiff.Value {
		return xs[0].ReLU()
	}

	assert.Error(t, gradcheck.Check(f, []float64{0.0}, 1e-4))
}
