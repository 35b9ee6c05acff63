// Copyright 2026 GoGrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over
// scalar values.
//
// Expressions are built by composing Value nodes through elementary
// operations; a single Backward call on the output node computes the exact
// derivative of that output with respect to every node in the graph.
//
// Example:
//
//	import "github.com/gograd-ml/gograd/autodiff"
//
//	func main() {
//	    a := autodiff.NewValue(2.0)
//	    b := autodiff.NewValue(-3.0)
//	    c := autodiff.NewValue(10.0)
//	    loss := a.Mul(b).Add(c) // -6 + 10 = 4
//
//	    loss.Backward()
//	    fmt.Println(a.Grad()) // d loss/da = b = -3
//	}
package autodiff

import (
	"github.com/gograd-ml/gograd/internal/autodiff"
)

// Value is one scalar node of the computation graph: a float64 forward
// value, its accumulated gradient, and references to the operand nodes
// that produced it.
type Value = autodiff.Value

// Op identifies the operation that produced a Value.
type Op = autodiff.Op

// Operation kinds.
const (
	OpLeaf = autodiff.OpLeaf
	OpAdd  = autodiff.OpAdd
	OpMul  = autodiff.OpMul
	OpPow  = autodiff.OpPow
	OpNeg  = autodiff.OpNeg
	OpReLU = autodiff.OpReLU
)

// NewValue creates a leaf node holding x.
//
// Example:
//
//	x := autodiff.NewValue(3.0)
//	y := x.Mul(x).Add(x) // x² + x
//	y.Backward()
func NewValue(x float64) *Value {
	return autodiff.NewValue(x)
}

// Sum folds Add over vs, starting from a zero literal.
func Sum(vs ...*Value) *Value {
	return autodiff.Sum(vs...)
}
