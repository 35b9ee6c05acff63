package nn

import (
	"fmt"

	"github.com/gograd-ml/gograd/internal/autodiff"
)

// Activation selects the nonlinearity a Neuron applies to its weighted sum.
type Activation uint8

const (
	// Linear passes the raw weighted sum through.
	Linear Activation = iota
	// ReLU rectifies the weighted sum.
	ReLU
)

// String returns "Linear" or "ReLU".
func (a Activation) String() string {
	if a == ReLU {
		return "ReLU"
	}
	return "Linear"
}

// Neuron computes act(Σ wᵢ·xᵢ + b) over scalar nodes.
//
// Weights are leaf nodes drawn uniformly from [-1, 1); the bias starts at
// zero. Every Forward call builds a fresh sub-graph over the same
// parameter leaves, so gradients from successive passes accumulate on the
// parameters until they are reset.
//
// Example:
//
//	n := nn.NewNeuron(2, nn.ReLU)
//	out := n.Forward([]*autodiff.Value{x1, x2})
//	out.Backward()
type Neuron struct {
	weights []*autodiff.Value
	bias    *autodiff.Value
	act     Activation
}

// NewNeuron creates a neuron with nin weights and the given activation.
//
// Parameters:
//   - nin: Number of inputs (and weights)
//   - act: Nonlinearity applied to the weighted sum
//
// Returns a new Neuron with randomly initialized weights and a zero bias.
func NewNeuron(nin int, act Activation) *Neuron {
	weights := make([]*autodiff.Value, nin)
	for i := range weights {
		weights[i] = uniformWeight()
	}
	return &Neuron{
		weights: weights,
		bias:    zeroBias(),
		act:     act,
	}
}

// Forward computes the neuron's output on xs as a new sub-graph.
//
// Panics if len(xs) differs from the weight count.
func (n *Neuron) Forward(xs []*autodiff.Value) *autodiff.Value {
	if len(xs) != len(n.weights) {
		panic(fmt.Sprintf("Neuron.Forward: expected %d inputs, got %d", len(n.weights), len(xs)))
	}

	out := n.bias
	for i, w := range n.weights {
		out = out.Add(w.Mul(xs[i]))
	}
	if n.act == ReLU {
		out = out.ReLU()
	}
	return out
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*autodiff.Value {
	params := make([]*autodiff.Value, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	params = append(params, n.bias)
	return params
}

// ZeroGrad resets the gradient of every parameter.
func (n *Neuron) ZeroGrad() {
	for _, p := range n.Parameters() {
		p.ZeroGrad()
	}
}

// String implements fmt.Stringer, e.g. "ReLUNeuron(2)".
func (n *Neuron) String() string {
	return fmt.Sprintf("%sNeuron(%d)", n.act, len(n.weights))
}
