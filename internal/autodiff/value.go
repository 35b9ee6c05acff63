// Package autodiff implements reverse-mode automatic differentiation over
// scalar values.
//
// Every Value is one node of a computation graph: a float64 produced either
// by a literal input or by an elementary operation over one or two earlier
// nodes. Operations always allocate a new node whose operands already
// exist, so the operand relation is acyclic by construction. Calling
// Backward on an output node runs a single reverse traversal that
// accumulates the exact derivative of that output into the grad slot of
// every node the output depends on.
//
// Architecture:
//   - Value: one scalar, its accumulated gradient, and its provenance
//   - Op: closed enum tag selecting the local-derivative rule
//   - Backward: depth-first post-order traversal, reversed, accumulating
//     (never overwriting) gradient contributions into operand nodes
//
// Usage:
//
//	x := autodiff.NewValue(2.0)
//	y := x.Mul(x) // y = x²
//
//	y.Backward()
//	fmt.Println(x.Grad()) // dy/dx = 2x = 4.0
package autodiff

import "fmt"

// Op identifies which local-derivative rule applies to a Value.
type Op uint8

// Operation kinds. OpLeaf marks literal inputs, which have no operands and
// no derivative rule of their own.
const (
	OpLeaf Op = iota
	OpAdd
	OpMul
	OpPow
	OpNeg
	OpReLU
)

// String returns the display tag for the operation kind. Leaf nodes have an
// empty tag.
func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpMul:
		return "*"
	case OpPow:
		return "**"
	case OpNeg:
		return "neg"
	case OpReLU:
		return "ReLU"
	default:
		return ""
	}
}

// Value is one scalar node of the computation graph.
//
// data is set when the node is created and is never mutated afterwards
// except through SetData on leaf nodes. grad starts at zero, accumulates
// contributions during Backward, and is reset only by ZeroGrad. A Value may
// be referenced as an operand by any number of later nodes; all of them
// share the same grad slot by reference, which is what makes gradient
// accumulation across fan-out work.
type Value struct {
	data     float64
	grad     float64
	operands []*Value
	op       Op
	exponent float64 // constant k for OpPow nodes only
}

// NewValue creates a leaf node holding x.
//
// Leaf nodes carry no operands and act as gradient sinks during Backward.
// Network parameters and raw inputs are leaf nodes.
//
// Example:
//
//	a := autodiff.NewValue(2.0)
//	b := autodiff.NewValue(-3.0)
//	c := a.Mul(b)
func NewValue(x float64) *Value {
	return &Value{data: x}
}

// Data returns the forward value of the node.
func (v *Value) Data() float64 {
	return v.data
}

// Grad returns the gradient accumulated by the last Backward pass, or zero
// if no pass has touched this node since creation or reset.
func (v *Value) Grad() float64 {
	return v.grad
}

// Op returns the operation kind that produced this node (OpLeaf for
// literals).
func (v *Value) Op() Op {
	return v.op
}

// SetData replaces the forward value of a leaf node in place. Optimizers
// use this to apply parameter updates between training steps; callers must
// zero gradients before the next Backward pass.
//
// Panics if called on a node produced by an operation: interior values are
// forward results, and mutating one would desynchronize the graph.
func (v *Value) SetData(x float64) {
	if v.op != OpLeaf {
		panic("autodiff: SetData on non-leaf node")
	}
	v.data = x
}

// ZeroGrad resets the accumulated gradient to zero.
//
// Backward always adds into grad rather than assigning it, so any node
// reused across passes must be reset in between or it silently accumulates
// stale gradients.
func (v *Value) ZeroGrad() {
	v.grad = 0
}

// String implements fmt.Stringer.
func (v *Value) String() string {
	return fmt.Sprintf("Value[data=%v, grad=%v]", v.data, v.grad)
}
