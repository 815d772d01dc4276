package autodiff

// Backward runs the backward pass from v with a seed gradient of 1.
func (v *Value) Backward() {
	v.BackwardWithSeed(1.0)
}

// BackwardWithSeed computes gradients of v with respect to every value that
// contributed to it.
//
// Algorithm:
//  1. Order all reachable values so every value comes after its operands
//  2. Assign seed to v.grad (the only assignment; everything else adds)
//  3. Walk the order in reverse and run each operation's backward rule,
//     adding each contribution into the matching input's gradient
//
// Walking in reverse guarantees every consumer of a value has deposited its
// contribution before that value's own rule runs, which is what makes
// diamonds (one value reaching the root along several paths) correct.
//
// Gradients of values not reachable from v are left untouched, and reachable
// leaves keep whatever they held before plus the new contributions. Call
// ZeroGrad (or ZeroGradGraph) first for a fresh pass.
func (v *Value) BackwardWithSeed(seed float64) {
	order := v.TopologicalOrder()

	v.grad = seed
	for i := len(order) - 1; i >= 0; i-- {
		order[i].propagate()
	}
}

// propagate runs the backward rule of a single value. Leaves are no-ops.
func (v *Value) propagate() {
	if v.op == nil {
		return
	}
	contributions := v.op.Backward(v.grad)
	for j, input := range v.inputs {
		if j >= len(contributions) {
			break
		}
		input.grad += contributions[j]
	}
}

// ZeroGradGraph resets the gradient of v and every value reachable from it.
func (v *Value) ZeroGradGraph() {
	for _, node := range v.TopologicalOrder() {
		node.ZeroGrad()
	}
}
