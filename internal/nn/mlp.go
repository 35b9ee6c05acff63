package nn

import (
	"fmt"
	"strings"

	"github.com/gograd-ml/gograd/internal/autodiff"
)

// MLP is a multi-layer perceptron: an ordered sequence of Layers where the
// output of layer i feeds layer i+1.
//
// Hidden layers apply ReLU; the final layer is Linear, so the network emits
// raw scores for the loss to consume. Callers wanting a different head can
// compose Layers directly, since Layer takes an explicit Activation.
//
// Example:
//
//	model := nn.NewMLP(2, []int{16, 16, 1})
//	score := model.Forward(inputs)[0]
type MLP struct {
	layers []*Layer
}

// NewMLP creates a network with nin inputs and one layer per entry of
// nouts, e.g. NewMLP(2, []int{16, 16, 1}) builds 2→16→16→1.
func NewMLP(nin int, nouts []int) *MLP {
	sizes := append([]int{nin}, nouts...)
	layers := make([]*Layer, len(nouts))
	for i := range layers {
		act := ReLU
		if i == len(nouts)-1 {
			act = Linear
		}
		layers[i] = NewLayer(sizes[i], sizes[i+1], act)
	}
	return &MLP{layers: layers}
}

// Forward feeds xs through the layers in order and returns the final
// layer's outputs.
//
// Panics if len(xs) differs from the network's input size.
func (m *MLP) Forward(xs []*autodiff.Value) []*autodiff.Value {
	for _, l := range m.layers {
		xs = l.Forward(xs)
	}
	return xs
}

// Parameters returns every layer's parameters in layer order.
func (m *MLP) Parameters() []*autodiff.Value {
	var params []*autodiff.Value
	for _, l := range m.layers {
		params = append(params, l.Parameters()...)
	}
	return params
}

// ZeroGrad resets the gradient of every parameter.
func (m *MLP) ZeroGrad() {
	for _, p := range m.Parameters() {
		p.ZeroGrad()
	}
}

// String implements fmt.Stringer, e.g. "MLP of [Layer of [...], ...]".
func (m *MLP) String() string {
	names := make([]string, len(m.layers))
	for i, l := range m.layers {
		names[i] = l.String()
	}
	return fmt.Sprintf("MLP of [%s]", strings.Join(names, ", "))
}
