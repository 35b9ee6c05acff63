// Copyright 2026 GoGrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package gradcheck verifies analytic gradients against central
// finite-difference estimates.
//
// Example:
//
//	import (
//	    "github.com/gograd-ml/gograd/autodiff"
//	    "github.com/gograd-ml/gograd/gradcheck"
//	)
//
//	func main() {
//	    f := func(xs []*autodiff.Value) *autodiff.Value {
//	        return xs[0].Mul(xs[1]).Add(xs[0].Pow(3))
//	    }
//	    if err := gradcheck.Check(f, []float64{2.0, 3.0}, 1e-4); err != nil {
//	        log.Fatal(err)
//	    }
//	}
package gradcheck

import (
	"github.com/gograd-ml/gograd/internal/gradcheck"
)

// Func builds a scalar expression over the given leaf nodes and returns its
// output node. It must construct a fresh graph on every call.
type Func = gradcheck.Func

// Check compares the analytic gradient of f at x against a central
// finite-difference estimate, component by component. Returns nil when
// every component agrees within tol, and an error naming the first
// offending input otherwise.
func Check(f Func, x []float64, tol float64) error {
	return gradcheck.Check(f, x, tol)
}
