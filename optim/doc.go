// Copyright 2026 GoGrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for training neural networks.
//
// # Overview
//
// This package contains:
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//
// # Basic Usage
//
//	import (
//	    "github.com/gograd-ml/gograd/nn"
//	    "github.com/gograd-ml/gograd/optim"
//	)
//
//	func main() {
//	    model := nn.NewMLP(2, []int{16, 16, 1})
//
//	    // Create optimizer
//	    optimizer := optim.NewSGD(
//	        model.Parameters(),
//	        optim.SGDConfig{
//	            LR:       0.01,
//	            Momentum: 0.9,
//	        },
//	    )
//
//	    // Training loop
//	    for epoch := range 10 {
//	        // Forward pass
//	        loss := criterion.Forward(forwardAll(model, xs), ys)
//
//	        // Backward pass
//	        optimizer.ZeroGrad()
//	        loss.Backward()
//	        optimizer.Step()
//	    }
//	}
//
// # Optimizers
//
// SGD (Stochastic Gradient Descent):
//
//	optimizer := optim.NewSGD(
//	    model.Parameters(),
//	    optim.SGDConfig{
//	        LR:       0.01,
//	        Momentum: 0.9,
//	    },
//	)
//
// Adam (Adaptive Moment Estimation):
//
//	optimizer := optim.NewAdam(
//	    model.Parameters(),
//	    optim.AdamConfig{
//	        LR:    0.001,
//	        Betas: [2]float64{0.9, 0.999},
//	        Eps:   1e-8,
//	    },
//	)
//
// # Training Loop Pattern
//
//	for epoch := range numEpochs {
//	    // 1. Zero gradients
//	    optimizer.ZeroGrad()
//
//	    // 2. Forward pass
//	    scores := forwardAll(model, inputs)
//	    loss := criterion.Forward(scores, targets)
//
//	    // 3. Backward pass
//	    loss.Backward()
//
//	    // 4. Update parameters
//	    optimizer.Step()
//	}
package optim
