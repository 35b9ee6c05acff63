package autodiff

import (
	"fmt"
	"math"
)

// Add returns a new node holding a + b.
func (a *Value) Add(b *Value) *Value {
	return &Value{
		data:     a.data + b.data,
		operands: []*Value{a, b},
		op:       OpAdd,
	}
}

// Mul returns a new node holding a * b.
func (a *Value) Mul(b *Value) *Value {
	return &Value{
		data:     a.data * b.data,
		operands: []*Value{a, b},
		op:       OpMul,
	}
}

// Pow returns a new node holding a**k. The exponent is a plain constant
// baked into the node, not an operand, so no gradient flows to it.
//
// The result must be finite: Pow panics when math.Pow(a.Data(), k) is NaN
// or ±Inf, which covers a negative base with a non-integer exponent and a
// zero base with a negative exponent. This is the only operation that
// validates its result; Add and Mul propagate IEEE-754 arithmetic
// unchecked.
func (a *Value) Pow(k float64) *Value {
	data := math.Pow(a.data, k)
	if math.IsNaN(data) || math.IsInf(data, 0) {
		panic(fmt.Sprintf("autodiff: Pow(%v, %v) is not finite", a.data, k))
	}
	return &Value{
		data:     data,
		operands: []*Value{a},
		op:       OpPow,
		exponent: k,
	}
}

// Neg returns a new node holding -a.
func (a *Value) Neg() *Value {
	return &Value{
		data:     -a.data,
		operands: []*Value{a},
		op:       OpNeg,
	}
}

// ReLU returns a new node holding max(0, a). The gradient at exactly zero
// is defined as zero.
func (a *Value) ReLU() *Value {
	data := a.data
	if data < 0 {
		data = 0
	}
	return &Value{
		data:     data,
		operands: []*Value{a},
		op:       OpReLU,
	}
}

// Sub returns a new node holding a - b, expressed as a + (-b).
func (a *Value) Sub(b *Value) *Value {
	return a.Add(b.Neg())
}

// Div returns a new node holding a / b, expressed as a * b**-1. A zero
// divisor panics through Pow's finiteness check.
func (a *Value) Div(b *Value) *Value {
	return a.Mul(b.Pow(-1))
}

// Sum folds Add over vs, starting from a zero literal. Reducing per-sample
// losses or penalty terms into one output node is the usual call site.
func Sum(vs ...*Value) *Value {
	total := NewValue(0)
	for _, v := range vs {
		total = total.Add(v)
	}
	return total
}
