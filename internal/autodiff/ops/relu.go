package ops

// ReLUOp represents a ReLU (Rectified Linear Unit) activation: output = max(0, x).
//
// Backward pass:
//   - d(ReLU(x))/dx = 1 if x > 0, else 0
//
// At exactly x == 0 both the output and the gradient are 0.
type ReLUOp struct {
	input Node // x
}

// NewReLUOp creates a new ReLUOp.
func NewReLUOp(input Node) *ReLUOp {
	return &ReLUOp{
		input: input,
	}
}

// Forward computes max(0, x).
func (op *ReLUOp) Forward() float64 {
	if x := op.input.Data(); x > 0 {
		return x
	}
	return 0.0
}

// Backward computes input gradient for ReLU.
func (op *ReLUOp) Backward(outputGrad float64) []float64 {
	if op.input.Data() > 0 {
		return []float64{outputGrad}
	}
	return []float64{0.0}
}

// Inputs returns the input node [x].
func (op *ReLUOp) Inputs() []Node {
	return []Node{op.input}
}

// Kind returns ReLU.
func (op *ReLUOp) Kind() Kind {
	return ReLU
}
