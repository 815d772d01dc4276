package autodiff

// TopologicalOrder returns every value reachable from v through operand
// edges, each exactly once, ordered so that a value always appears after
// all of its operands. v itself is last.
//
// The walk is an iterative depth-first post-order, so very deep chains do
// not grow the goroutine stack. Values are tracked by identity.
func (v *Value) TopologicalOrder() []*Value {
	type frame struct {
		node *Value
		next int // index of the next operand to visit
	}

	order := make([]*Value, 0, 16)
	visited := map[*Value]struct{}{v: {}}
	stack := []frame{{node: v}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.node.operands) {
			child := top.node.operands[top.next]
			top.next++
			if _, seen := visited[child]; !seen {
				visited[child] = struct{}{}
				stack = append(stack, frame{node: child})
			}
			continue
		}
		order = append(order, top.node)
		stack = stack[:len(stack)-1]
	}

	return order
}
