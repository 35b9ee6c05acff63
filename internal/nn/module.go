// Package nn implements neural network modules on top of the scalar
// autodiff engine.
//
// This package provides the building blocks for small feed-forward
// networks:
//   - Module interface: parameter enumeration and gradient reset
//   - Neuron: relu(Σ wᵢ·xᵢ + b) or the raw linear sum
//   - Layer: neurons sharing one input vector
//   - MLP: layers feeding each other in order
//   - Loss functions: MSE, max-margin hinge, L2 penalty
//
// Every module is pure composition over autodiff.Value nodes: a forward
// call builds a fresh sub-graph, and gradients flow back through it with a
// single Backward on the loss node.
package nn

import (
	"github.com/gograd-ml/gograd/internal/autodiff"
)

// Module is the base interface for all neural network components.
//
// Parameters returns every trainable leaf node of the module in a stable
// deterministic order: per neuron the weights then the bias, neurons in
// layer order, layers in network order. The slice is rebuilt per call and
// safe for the caller to reorder.
//
// ZeroGrad resets the gradient of every parameter. It must run before each
// backward pass when the same parameters are reused across training steps,
// because Backward accumulates into gradients rather than assigning them.
type Module interface {
	Parameters() []*autodiff.Value
	ZeroGrad()
}
