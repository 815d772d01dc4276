package ops

import "math"

// SigmoidOp represents the sigmoid activation operation: σ(x) = 1 / (1 + exp(-x)).
type SigmoidOp struct {
	input  Node
	output float64
}

// NewSigmoidOp creates a new sigmoid operation and computes its output.
func NewSigmoidOp(input Node) *SigmoidOp {
	return &SigmoidOp{
		input:  input,
		output: 1.0 / (1.0 + math.Exp(-input.Data())),
	}
}

// Forward returns σ(x).
func (op *SigmoidOp) Forward() float64 {
	return op.output
}

// Backward computes the gradient for sigmoid.
//
// For σ(x) = 1 / (1 + exp(-x)):
// dσ/dx = σ(x) * (1 - σ(x))
//
// Since we have the output σ(x) already computed, we can use it:
// grad_input = grad_output * output * (1 - output).
func (op *SigmoidOp) Backward(outputGrad float64) []float64 {
	s := op.output
	return []float64{s * (1 - s) * outputGrad}
}

// Inputs returns the input node [x].
func (op *SigmoidOp) Inputs() []Node {
	return []Node{op.input}
}

// Kind returns Sigmoid.
func (op *SigmoidOp) Kind() Kind {
	return Sigmoid
}
