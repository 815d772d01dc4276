package ops

// AddOp represents an addition operation: output = a + b.
//
// Backward pass:
//   - d(a+b)/da = 1, so grad_a = outputGrad
//   - d(a+b)/db = 1, so grad_b = outputGrad
type AddOp struct {
	inputs []Node // [a, b]
}

// NewAddOp creates a new AddOp.
func NewAddOp(a, b Node) *AddOp {
	return &AddOp{
		inputs: []Node{a, b},
	}
}

// Forward computes a + b.
func (op *AddOp) Forward() float64 {
	return op.inputs[0].Data() + op.inputs[1].Data()
}

// Backward computes input gradients for addition.
// Since d(a+b)/da = d(a+b)/db = 1, the gradient flows equally to both inputs.
func (op *AddOp) Backward(outputGrad float64) []float64 {
	return []float64{outputGrad, outputGrad}
}

// Inputs returns the input nodes [a, b].
func (op *AddOp) Inputs() []Node {
	return op.inputs
}

// Kind returns Add.
func (op *AddOp) Kind() Kind {
	return Add
}
