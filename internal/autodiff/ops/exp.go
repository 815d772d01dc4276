package ops

import "math"

// ExpOp represents the exponential operation: y = exp(x).
//
// Backward pass:
//   - d(exp(x))/dx = exp(x) = y
//   - grad_input = grad_output * output
type ExpOp struct {
	input  Node    // x
	output float64 // exp(x)
}

// NewExpOp creates a new ExpOp and computes its output.
func NewExpOp(input Node) *ExpOp {
	return &ExpOp{
		input:  input,
		output: math.Exp(input.Data()),
	}
}

// Forward returns exp(x).
func (op *ExpOp) Forward() float64 {
	return op.output
}

// Backward computes input gradient for exp.
//
// Since d(exp(x))/dx = exp(x), and we already have exp(x) as output:
// grad_input = grad_output * output.
func (op *ExpOp) Backward(outputGrad float64) []float64 {
	return []float64{op.output * outputGrad}
}

// Inputs returns the input node [x].
func (op *ExpOp) Inputs() []Node {
	return []Node{op.input}
}

// Kind returns Exp.
func (op *ExpOp) Kind() Kind {
	return Exp
}
