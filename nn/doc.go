// Copyright 2026 GoGrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network building blocks over the scalar
// autodiff engine.
//
// # Overview
//
// This package contains:
//   - Neuron: act(Σ wᵢ·xᵢ + b) over scalar nodes
//   - Layer: neurons sharing one input vector
//   - MLP: layers feeding each other in order
//   - Loss functions: MSELoss, HingeLoss, L2Penalty
//   - Module interface: parameter enumeration and gradient reset
//
// # Basic Usage
//
//	import (
//	    "github.com/gograd-ml/gograd/autodiff"
//	    "github.com/gograd-ml/gograd/nn"
//	)
//
//	func main() {
//	    // 2 inputs → two hidden ReLU layers of 16 → 1 linear score
//	    model := nn.NewMLP(2, []int{16, 16, 1})
//
//	    x := []*autodiff.Value{autodiff.NewValue(0.5), autodiff.NewValue(-1.2)}
//	    score := model.Forward(x)[0]
//
//	    model.ZeroGrad()
//	    score.Backward()
//	}
//
// # Training Loop Pattern
//
//	criterion := nn.NewHingeLoss()
//	for epoch := range numEpochs {
//	    scores := forwardAll(model, samples)
//	    loss := criterion.Forward(scores, targets)
//
//	    model.ZeroGrad()
//	    loss.Backward()
//	    optimizer.Step()
//	}
//
// Every Forward call builds a fresh expression graph over the same
// parameter leaves, so gradients accumulate on the parameters until
// ZeroGrad resets them.
package nn
