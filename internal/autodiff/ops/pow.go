package ops

import "math"

// PowOp represents raising a value to a constant power: y = x^k.
//
// The exponent is a plain float captured at construction. It is not a graph
// node and receives no gradient.
//
// Backward pass:
//   - d(x^k)/dx = k * x^(k-1)
//
// Domain conditions (fractional k on negative x, negative k at zero) are not
// checked; the result is whatever math.Pow returns.
type PowOp struct {
	input    Node    // x
	exponent float64 // k
}

// NewPowOp creates a new PowOp.
func NewPowOp(input Node, exponent float64) *PowOp {
	return &PowOp{
		input:    input,
		exponent: exponent,
	}
}

// Forward computes x^k.
func (op *PowOp) Forward() float64 {
	return math.Pow(op.input.Data(), op.exponent)
}

// Backward computes input gradient for the power rule.
func (op *PowOp) Backward(outputGrad float64) []float64 {
	k := op.exponent
	return []float64{k * math.Pow(op.input.Data(), k-1) * outputGrad}
}

// Inputs returns the input node [x].
func (op *PowOp) Inputs() []Node {
	return []Node{op.input}
}

// Exponent returns the constant exponent k.
func (op *PowOp) Exponent() float64 {
	return op.exponent
}

// Kind returns Pow.
func (op *PowOp) Kind() Kind {
	return Pow
}
