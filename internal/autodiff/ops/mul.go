package ops

// MulOp represents a multiplication operation: output = a * b.
//
// Backward pass:
//   - d(a*b)/da = b, so grad_a = outputGrad * b
//   - d(a*b)/db = a, so grad_b = outputGrad * a
//
// Operand data is read at backward time. Derived values never change after
// construction, so this equals the data seen during the forward pass.
type MulOp struct {
	inputs []Node // [a, b]
}

// NewMulOp creates a new MulOp.
func NewMulOp(a, b Node) *MulOp {
	return &MulOp{
		inputs: []Node{a, b},
	}
}

// Forward computes a * b.
func (op *MulOp) Forward() float64 {
	return op.inputs[0].Data() * op.inputs[1].Data()
}

// Backward computes input gradients for multiplication.
func (op *MulOp) Backward(outputGrad float64) []float64 {
	a, b := op.inputs[0], op.inputs[1]
	return []float64{
		b.Data() * outputGrad,
		a.Data() * outputGrad,
	}
}

// Inputs returns the input nodes [a, b].
func (op *MulOp) Inputs() []Node {
	return op.inputs
}

// Kind returns Mul.
func (op *MulOp) Kind() Kind {
	return Mul
}
