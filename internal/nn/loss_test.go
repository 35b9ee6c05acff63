package nn_test

import (
	"testing"

	"github.com/gograd-ml/gograd/internal/nn"
)

// TestMSELoss tests the forward value and the gradient through the mean.
func TestMSELoss(t *testing.T) {
	mse := nn.NewMSELoss()

	// Perfect predictions give zero loss.
	perfect := mse.Forward(inputs(1.0, -2.0), []float64{1.0, -2.0})
	if perfect.Data() != 0 {
		t.Errorf("perfect MSE = %f, want 0", perfect.Data())
	}

	// ((1-0)² + (2-0)²) / 2 = 2.5
	preds := inputs(1.0, 2.0)
	loss := mse.Forward(preds, []float64{0.0, 0.0})
	if !floatEqual(loss.Data(), 2.5, 1e-9) {
		t.Errorf("MSE = %f, want 2.5", loss.Data())
	}

	// d/dpᵢ mean((pᵢ-tᵢ)²) = 2(pᵢ-tᵢ)/n
	loss.Backward()
	if !floatEqual(preds[0].Grad(), 1.0, 1e-9) {
		t.Errorf("grad p0 = %f, want 1", preds[0].Grad())
	}
	if !floatEqual(preds[1].Grad(), 2.0, 1e-9) {
		t.Errorf("grad p1 = %f, want 2", preds[1].Grad())
	}
}

// TestMSELoss_Panics tests the validation panics.
func TestMSELoss_Panics(t *testing.T) {
	mse := nn.NewMSELoss()

	assertPanics(t, "mismatched lengths", func() {
		mse.Forward(inputs(1.0), []float64{1.0, 2.0})
	})
	assertPanics(t, "empty input", func() {
		mse.Forward(nil, nil)
	})
}

// TestHingeLoss tests the margin behavior and the gradient.
func TestHingeLoss(t *testing.T) {
	hinge := nn.NewHingeLoss()

	// Well-separated scores sit outside the margin: zero loss.
	separated := hinge.Forward(inputs(2.0, -2.0), []float64{1.0, -1.0})
	if separated.Data() != 0 {
		t.Errorf("separated hinge = %f, want 0", separated.Data())
	}

	// relu(1 - 1·0.5) = 0.5
	scores := inputs(0.5)
	loss := hinge.Forward(scores, []float64{1.0})
	if !floatEqual(loss.Data(), 0.5, 1e-9) {
		t.Errorf("hinge = %f, want 0.5", loss.Data())
	}

	// Inside the margin the gradient pushes the score toward the target.
	loss.Backward()
	if !floatEqual(scores[0].Grad(), -1.0, 1e-9) {
		t.Errorf("grad = %f, want -1", scores[0].Grad())
	}
}

// TestHingeLoss_Panics tests the validation panics.
func TestHingeLoss_Panics(t *testing.T) {
	hinge := nn.NewHingeLoss()

	assertPanics(t, "mismatched lengths", func() {
		hinge.Forward(inputs(1.0), []float64{1.0, -1.0})
	})
	assertPanics(t, "empty input", func() {
		hinge.Forward(nil, nil)
	})
}

// TestL2Penalty tests the weight-decay term and its gradient.
func TestL2Penalty(t *testing.T) {
	params := inputs(3.0, 4.0)

	// 0.1 · (9 + 16) = 2.5
	penalty := nn.L2Penalty(0.1, params)
	if !floatEqual(penalty.Data(), 2.5, 1e-9) {
		t.Errorf("L2Penalty = %f, want 2.5", penalty.Data())
	}

	// d/dp alpha·p² = 2·alpha·p
	penalty.Backward()
	if !floatEqual(params[0].Grad(), 0.6, 1e-9) {
		t.Errorf("grad p0 = %f, want 0.6", params[0].Grad())
	}
	if !floatEqual(params[1].Grad(), 0.8, 1e-9) {
		t.Errorf("grad p1 = %f, want 0.8", params[1].Grad())
	}

	if got := nn.L2Penalty(0.1, nil).Data(); got != 0 {
		t.Errorf("L2Penalty of no params = %f, want 0", got)
	}
}

// assertPanics fails the test if fn returns without panicking.
func assertPanics(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}
