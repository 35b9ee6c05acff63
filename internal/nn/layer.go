package nn

import (
	"fmt"
	"strings"

	"github.com/gograd-ml/gograd/internal/autodiff"
)

// Layer is an ordered collection of Neurons consuming the same input
// vector.
type Layer struct {
	neurons []*Neuron
}

// NewLayer creates a layer of nout neurons, each taking nin inputs and
// applying act.
func NewLayer(nin, nout int, act Activation) *Layer {
	neurons := make([]*Neuron, nout)
	for i := range neurons {
		neurons[i] = NewNeuron(nin, act)
	}
	return &Layer{neurons: neurons}
}

// Forward computes every neuron's output on the same input.
//
// Panics if len(xs) differs from the layer's input size.
func (l *Layer) Forward(xs []*autodiff.Value) []*autodiff.Value {
	outs := make([]*autodiff.Value, len(l.neurons))
	for i, n := range l.neurons {
		outs[i] = n.Forward(xs)
	}
	return outs
}

// Parameters returns every neuron's parameters in neuron order.
func (l *Layer) Parameters() []*autodiff.Value {
	var params []*autodiff.Value
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// ZeroGrad resets the gradient of every parameter.
func (l *Layer) ZeroGrad() {
	for _, p := range l.Parameters() {
		p.ZeroGrad()
	}
}

// String implements fmt.Stringer, e.g. "Layer of [ReLUNeuron(2), ReLUNeuron(2)]".
func (l *Layer) String() string {
	names := make([]string, len(l.neurons))
	for i, n := range l.neurons {
		names[i] = n.String()
	}
	return fmt.Sprintf("Layer of [%s]", strings.Join(names, ", "))
}
