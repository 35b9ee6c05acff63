// Copyright 2026 GoGrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/gograd-ml/gograd/internal/autodiff"
	"github.com/gograd-ml/gograd/internal/nn"
)

// Module interface defines the common interface for all neural network
// modules: parameter enumeration in a stable order, and gradient reset.
type Module = nn.Module

// Activation selects the nonlinearity a Neuron applies.
type Activation = nn.Activation

// Activations.
const (
	Linear = nn.Linear
	ReLU   = nn.ReLU
)

// Building blocks

// Neuron computes act(Σ wᵢ·xᵢ + b) over scalar nodes.
type Neuron = nn.Neuron

// NewNeuron creates a neuron with nin weights drawn uniformly from [-1, 1)
// and a zero bias.
//
// Example:
//
//	n := nn.NewNeuron(2, nn.ReLU)
//	out := n.Forward(inputs)
func NewNeuron(nin int, act Activation) *Neuron {
	return nn.NewNeuron(nin, act)
}

// Layer is an ordered collection of Neurons consuming the same input.
type Layer = nn.Layer

// NewLayer creates a layer of nout neurons taking nin inputs each.
func NewLayer(nin, nout int, act Activation) *Layer {
	return nn.NewLayer(nin, nout, act)
}

// MLP is a multi-layer perceptron with ReLU hidden layers and a linear
// output layer.
type MLP = nn.MLP

// NewMLP creates a network with nin inputs and one layer per entry of
// nouts.
//
// Example:
//
//	model := nn.NewMLP(2, []int{16, 16, 1}) // 2→16→16→1
func NewMLP(nin int, nouts []int) *MLP {
	return nn.NewMLP(nin, nouts)
}

// Loss functions

// MSELoss computes mean squared error over predictions.
type MSELoss = nn.MSELoss

// NewMSELoss creates a new MSE loss function.
func NewMSELoss() *MSELoss {
	return nn.NewMSELoss()
}

// HingeLoss computes the max-margin loss for ±1 targets.
type HingeLoss = nn.HingeLoss

// NewHingeLoss creates a new hinge loss function.
func NewHingeLoss() *HingeLoss {
	return nn.NewHingeLoss()
}

// L2Penalty returns alpha·Σ p², the weight-decay term added onto a data
// loss.
func L2Penalty(alpha float64, params []*autodiff.Value) *autodiff.Value {
	return nn.L2Penalty(alpha, params)
}
