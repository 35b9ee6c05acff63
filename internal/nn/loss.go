package nn

import (
	"fmt"

	"github.com/gograd-ml/gograd/internal/autodiff"
)

// MSELoss computes mean squared error loss.
//
// Loss = mean((predictionᵢ - targetᵢ)²)
//
// MSE suits regression tasks where the network predicts continuous values.
// Targets are plain floats, not graph nodes: no gradient flows to them.
//
// Example:
//
//	mse := nn.NewMSELoss()
//	loss := mse.Forward(predictions, targets)
//	loss.Backward()
type MSELoss struct{}

// NewMSELoss creates a new MSE loss function.
func NewMSELoss() *MSELoss {
	return &MSELoss{}
}

// Forward computes the MSE loss as a new sub-graph over the predictions.
//
// Panics if the slices are empty or their lengths differ.
func (m *MSELoss) Forward(preds []*autodiff.Value, targets []float64) *autodiff.Value {
	if len(preds) == 0 {
		panic("MSELoss: no predictions")
	}
	if len(preds) != len(targets) {
		panic(fmt.Sprintf("MSELoss: %d predictions vs %d targets", len(preds), len(targets)))
	}

	terms := make([]*autodiff.Value, len(preds))
	for i, p := range preds {
		terms[i] = p.Sub(autodiff.NewValue(targets[i])).Pow(2)
	}
	return autodiff.Sum(terms...).Mul(autodiff.NewValue(1.0 / float64(len(terms))))
}

// HingeLoss computes the max-margin (SVM) loss for ±1 targets.
//
// Loss = mean(relu(1 - targetᵢ·scoreᵢ))
//
// A score on the correct side of the margin contributes nothing; everything
// else contributes linearly. Pairs with raw linear scores from an MLP.
type HingeLoss struct{}

// NewHingeLoss creates a new hinge loss function.
func NewHingeLoss() *HingeLoss {
	return &HingeLoss{}
}

// Forward computes the hinge loss as a new sub-graph over the scores.
//
// Panics if the slices are empty or their lengths differ.
func (h *HingeLoss) Forward(scores []*autodiff.Value, targets []float64) *autodiff.Value {
	if len(scores) == 0 {
		panic("HingeLoss: no scores")
	}
	if len(scores) != len(targets) {
		panic(fmt.Sprintf("HingeLoss: %d scores vs %d targets", len(scores), len(targets)))
	}

	terms := make([]*autodiff.Value, len(scores))
	for i, s := range scores {
		terms[i] = autodiff.NewValue(1.0).Add(autodiff.NewValue(-targets[i]).Mul(s)).ReLU()
	}
	return autodiff.Sum(terms...).Mul(autodiff.NewValue(1.0 / float64(len(terms))))
}

// L2Penalty returns alpha·Σ p², the weight-decay term added onto a data
// loss to keep parameters small.
func L2Penalty(alpha float64, params []*autodiff.Value) *autodiff.Value {
	terms := make([]*autodiff.Value, len(params))
	for i, p := range params {
		terms[i] = p.Mul(p)
	}
	return autodiff.Sum(terms...).Mul(autodiff.NewValue(alpha))
}
