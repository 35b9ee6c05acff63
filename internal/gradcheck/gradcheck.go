// Package gradcheck verifies analytic gradients against numerical ones.
//
// Check evaluates a scalar expression twice: once through the autodiff
// graph to collect analytic gradients, and once per probe point through
// plain arithmetic for a central finite-difference estimate. The two must
// agree within tolerance for every input.
package gradcheck

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/diff/fd"

	"github.com/gograd-ml/gograd/internal/autodiff"
)

// Func builds a scalar expression over the given leaf nodes and returns its
// output node. It must construct a fresh graph on every call: Check
// re-invokes it at probe points around x for the finite differences.
type Func func(xs []*autodiff.Value) *autodiff.Value

// Check compares the analytic gradient of f at x against a central
// finite-difference estimate.
//
// Agreement is judged per component as |analytic - numeric| <=
// tol * (1 + |numeric|), a relative tolerance with an absolute floor of
// tol. Returns nil when every component agrees, and an error naming the
// first offending input otherwise.
//
// Functions with kinks (relu at exactly zero) fail the comparison when x
// sits on the kink, because the central difference straddles it; probe
// such functions away from their non-differentiable points.
func Check(f Func, x []float64, tol float64) error {
	leaves := make([]*autodiff.Value, len(x))
	for i, xi := range x {
		leaves[i] = autodiff.NewValue(xi)
	}
	f(leaves).Backward()

	numeric := fd.Gradient(nil, func(pt []float64) float64 {
		probe := make([]*autodiff.Value, len(pt))
		for i, v := range pt {
			probe[i] = autodiff.NewValue(v)
		}
		return f(probe).Data()
	}, x, &fd.Settings{Formula: fd.Central})

	for i, leaf := range leaves {
		analytic := leaf.Grad()
		if math.Abs(analytic-numeric[i]) > tol*(1+math.Abs(numeric[i])) {
			return fmt.Errorf("gradcheck: input %d: analytic gradient %v, numerical %v",
				i, analytic, numeric[i])
		}
	}
	return nil
}
