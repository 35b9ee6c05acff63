package autodiff

import "math"

// Backward runs the full reverse-mode pass from v.
//
// The graph reachable from v through operand references is ordered by a
// depth-first post-order traversal with a visited set, so shared
// sub-expressions are recorded exactly once. Processing the reversed order
// starting at v (grad seeded to 1) guarantees that every consumer of a node
// has already contributed to that node's gradient before the node
// distributes to its own operands; since accumulation is a running sum, the
// arrival order of individual contributions does not matter, only that all
// of them precede distribution.
//
// Backward has no return value; its observable effect is the mutation of
// grad on every node reachable from v. It adds into grad slots rather than
// assigning them, so reusing nodes across passes without ZeroGrad in
// between produces silently wrong gradients.
func (v *Value) Backward() {
	topo := topoSort(v)

	v.grad = 1
	for i := len(topo) - 1; i >= 0; i-- {
		node := topo[i]
		for j, p := range node.partials() {
			node.operands[j].grad += p * node.grad
		}
	}
}

// partials returns ∂(v.data)/∂(operand j) for each operand of v, in operand
// order. This is the entire local-derivative rule table; Backward multiplies
// each entry by v's accumulated gradient and adds it into the operand.
func (v *Value) partials() []float64 {
	switch v.op {
	case OpAdd:
		return []float64{1, 1}
	case OpMul:
		return []float64{v.operands[1].data, v.operands[0].data}
	case OpPow:
		return []float64{v.exponent * math.Pow(v.operands[0].data, v.exponent-1)}
	case OpNeg:
		return []float64{-1}
	case OpReLU:
		if v.operands[0].data > 0 {
			return []float64{1}
		}
		return []float64{0}
	default: // OpLeaf
		return nil
	}
}

// topoSort returns every node reachable from root through operand edges in
// depth-first post-order: a node appears only after all of its operands.
// The traversal is iterative, so arbitrarily deep chains cannot overflow
// the goroutine stack.
func topoSort(root *Value) []*Value {
	type frame struct {
		node     *Value
		expanded bool
	}

	var order []*Value
	visited := make(map[*Value]struct{})
	stack := []frame{{node: root}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.expanded {
			order = append(order, top.node)
			continue
		}
		if _, ok := visited[top.node]; ok {
			continue
		}
		visited[top.node] = struct{}{}

		stack = append(stack, frame{node: top.node, expanded: true})
		for _, operand := range top.node.operands {
			if _, ok := visited[operand]; !ok {
				stack = append(stack, frame{node: operand})
			}
		}
	}

	return order
}
