// Package optim implements optimization algorithms for training networks
// built on the scalar autodiff engine.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation
//
// Optimizers read gradients directly off parameter nodes and write updates
// back through SetData, so parameters stay the same leaf nodes across
// training steps and every forward pass rebuilds its graph over them.
//
// Example usage:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.01})
//
//	for epoch := range epochs {
//	    scores := forward(model, data)
//	    loss := criterion.Forward(scores, targets)
//
//	    optimizer.ZeroGrad()
//	    loss.Backward()
//	    optimizer.Step()
//	}
package optim

import (
	"github.com/gograd-ml/gograd/internal/autodiff"
)

// Optimizer is the base interface for all optimization algorithms.
//
// All optimizers must implement:
//   - Step: Apply gradient updates to parameters
//   - ZeroGrad: Clear gradients before the next backward pass
//   - GetLR: Get the current learning rate (for monitoring/scheduling)
type Optimizer interface {
	// Step applies one gradient update to every managed parameter,
	// reading each parameter's accumulated gradient and mutating its
	// data in place.
	Step()

	// ZeroGrad clears every managed parameter's gradient. Call it
	// before each backward pass to prevent accumulation from previous
	// iterations.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64
}

// zeroGrad clears gradients for a parameter slice; shared by the concrete
// optimizers.
func zeroGrad(params []*autodiff.Value) {
	for _, p := range params {
		p.ZeroGrad()
	}
}
