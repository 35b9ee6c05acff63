package nn_test

import (
	"testing"

	"github.com/gograd-ml/gograd/internal/autodiff"
	"github.com/gograd-ml/gograd/internal/nn"
)

// Helper to check if values are approximately equal.
func floatEqual(a, b, epsilon float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < epsilon
}

// inputs wraps raw floats as leaf nodes.
func inputs(xs ...float64) []*autodiff.Value {
	vs := make([]*autodiff.Value, len(xs))
	for i, x := range xs {
		vs[i] = autodiff.NewValue(x)
	}
	return vs
}

// TestNeuron_Creation tests parameter count and initialization ranges.
func TestNeuron_Creation(t *testing.T) {
	n := nn.NewNeuron(2, nn.ReLU)

	params := n.Parameters()
	if len(params) != 3 {
		t.Errorf("Parameters() length = %d, want 3", len(params))
	}

	// Weights come first, drawn from [-1, 1).
	for i, w := range params[:2] {
		if w.Data() < -1.0 || w.Data() >= 1.0 {
			t.Errorf("weight %d = %f, want in [-1, 1)", i, w.Data())
		}
	}

	// Bias is last and starts at zero.
	if params[2].Data() != 0 {
		t.Errorf("bias = %f, want 0", params[2].Data())
	}
}

// TestNeuron_Forward tests a fixed-weight neuron: 10·1.2 + 100·1.3 + 3 = 145.
func TestNeuron_Forward(t *testing.T) {
	for _, act := range []nn.Activation{nn.ReLU, nn.Linear} {
		n := nn.NewNeuron(2, act)
		params := n.Parameters()
		params[0].SetData(10.0)
		params[1].SetData(100.0)
		params[2].SetData(3.0)

		out := n.Forward(inputs(1.2, 1.3))
		if !floatEqual(out.Data(), 145.0, 1e-9) {
			t.Errorf("%v neuron Forward() = %f, want 145", act, out.Data())
		}
	}
}

// TestNeuron_ForwardRectifies tests that a negative pre-activation is
// clamped by a ReLU neuron and passed through by a Linear one.
func TestNeuron_ForwardRectifies(t *testing.T) {
	relu := nn.NewNeuron(1, nn.ReLU)
	params := relu.Parameters()
	params[0].SetData(1.0)
	params[1].SetData(0.0)

	if out := relu.Forward(inputs(-2.0)); out.Data() != 0 {
		t.Errorf("ReLU neuron on -2 = %f, want 0", out.Data())
	}

	linear := nn.NewNeuron(1, nn.Linear)
	params = linear.Parameters()
	params[0].SetData(1.0)
	params[1].SetData(0.0)

	if out := linear.Forward(inputs(-2.0)); out.Data() != -2.0 {
		t.Errorf("Linear neuron on -2 = %f, want -2", out.Data())
	}
}

// TestNeuron_ForwardArity tests the input-size panic.
func TestNeuron_ForwardArity(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Forward with wrong input count should panic")
		}
	}()

	nn.NewNeuron(3, nn.ReLU).Forward(inputs(1.0, 2.0))
}

// TestNeuron_String tests the display form.
func TestNeuron_String(t *testing.T) {
	if s := nn.NewNeuron(2, nn.ReLU).String(); s != "ReLUNeuron(2)" {
		t.Errorf("String() = %s, want ReLUNeuron(2)", s)
	}
	if s := nn.NewNeuron(3, nn.Linear).String(); s != "LinearNeuron(3)" {
		t.Errorf("String() = %s, want LinearNeuron(3)", s)
	}
}

// TestLayer_Creation tests the parameter count: 4 neurons × (3 weights + 1 bias).
func TestLayer_Creation(t *testing.T) {
	l := nn.NewLayer(3, 4, nn.ReLU)
	if got := len(l.Parameters()); got != 16 {
		t.Errorf("Parameters() length = %d, want 16", got)
	}
}

// TestLayer_Forward tests output arity and rectification.
func TestLayer_Forward(t *testing.T) {
	l := nn.NewLayer(3, 2, nn.ReLU)

	outs := l.Forward(inputs(0.5, -0.5, 1.0))
	if len(outs) != 2 {
		t.Fatalf("Forward() returned %d outputs, want 2", len(outs))
	}
	for i, out := range outs {
		if out.Data() < 0 {
			t.Errorf("output %d = %f, want >= 0 under ReLU", i, out.Data())
		}
	}
}

// TestMLP_Creation tests the parameter count for a 2→16→16→1 network:
// (2·16+16) + (16·16+16) + (16·1+1) = 337.
func TestMLP_Creation(t *testing.T) {
	m := nn.NewMLP(2, []int{16, 16, 1})
	if got := len(m.Parameters()); got != 337 {
		t.Errorf("Parameters() length = %d, want 337", got)
	}
}

// TestMLP_Forward tests output arity and determinism across calls.
func TestMLP_Forward(t *testing.T) {
	m := nn.NewMLP(2, []int{3, 1})

	first := m.Forward(inputs(0.5, -0.5))
	if len(first) != 1 {
		t.Fatalf("Forward() returned %d outputs, want 1", len(first))
	}

	second := m.Forward(inputs(0.5, -0.5))
	if first[0].Data() != second[0].Data() {
		t.Errorf("Forward() not deterministic: %f vs %f", first[0].Data(), second[0].Data())
	}
}

// TestMLP_ParameterOrder tests that enumeration is stable across calls.
func TestMLP_ParameterOrder(t *testing.T) {
	m := nn.NewMLP(2, []int{4, 1})

	first := m.Parameters()
	second := m.Parameters()
	if len(first) != len(second) {
		t.Fatalf("Parameters() lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Parameters()[%d] differs between calls", i)
		}
	}
}

// TestMLP_ZeroGrad tests the bulk gradient reset after a backward pass.
func TestMLP_ZeroGrad(t *testing.T) {
	m := nn.NewMLP(2, []int{4, 1})

	out := m.Forward(inputs(1.0, -1.0))[0]
	out.Backward()

	any := false
	for _, p := range m.Parameters() {
		if p.Grad() != 0 {
			any = true
			break
		}
	}
	if !any {
		t.Fatal("expected some nonzero parameter gradient after Backward")
	}

	m.ZeroGrad()
	for i, p := range m.Parameters() {
		if p.Grad() != 0 {
			t.Errorf("parameter %d grad = %f after ZeroGrad, want 0", i, p.Grad())
		}
	}
}

// TestMLP_String tests the nested display form.
func TestMLP_String(t *testing.T) {
	m := nn.NewMLP(2, []int{2, 1})
	want := "MLP of [Layer of [ReLUNeuron(2), ReLUNeuron(2)], Layer of [LinearNeuron(2)]]"
	if got := m.String(); got != want {
		t.Errorf("String() = %s, want %s", got, want)
	}
}

// TestModuleInterface tests that every component satisfies Module.
func TestModuleInterface(t *testing.T) {
	var _ nn.Module = nn.NewNeuron(2, nn.ReLU)
	var _ nn.Module = nn.NewLayer(2, 2, nn.ReLU)
	var _ nn.Module = nn.NewMLP(2, []int{2, 1})
}
