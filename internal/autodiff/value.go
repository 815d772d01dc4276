package autodiff

import (
	"fmt"

	"github.com/born-ml/micrograd/internal/autodiff/ops"
	"github.com/pkg/errors"
)

// Value is a scalar node in a dynamically built computation graph.
//
// A Value holds its data, an accumulated gradient, and the operation that
// produced it (nil for leaves). Values are shared by pointer: one Value may be
// an operand of any number of downstream values, and it stays alive as long
// as something references it.
//
// Example:
//
//	a := autodiff.NewValue(2.0)
//	b := autodiff.NewValue(-3.0)
//	c := a.Mul(b)   // c.Data() == -6
//	c.Backward()    // a.Grad() == -3, b.Grad() == 2
type Value struct {
	data float64
	grad float64

	op       ops.Operation // nil for leaves
	inputs   []*Value      // positional inputs passed to op
	operands []*Value      // inputs de-duplicated by identity
}

// NewValue creates a leaf value with no operands.
func NewValue(data float64) *Value {
	return &Value{data: data}
}

// newDerived builds the output value of op. Operands are de-duplicated by
// pointer identity, never by data.
func newDerived(op ops.Operation, inputs ...*Value) *Value {
	operands := make([]*Value, 0, len(inputs))
	seen := make(map[*Value]struct{}, len(inputs))
	for _, in := range inputs {
		if _, ok := seen[in]; ok {
			continue
		}
		seen[in] = struct{}{}
		operands = append(operands, in)
	}

	return &Value{
		data:     op.Forward(),
		op:       op,
		inputs:   inputs,
		operands: operands,
	}
}

// Data returns the current scalar value.
func (v *Value) Data() float64 {
	return v.data
}

// SetData overwrites the data of a leaf. Optimizers use it to apply
// parameter updates. Derived values are immutable and return
// ErrDerivedMutation.
func (v *Value) SetData(data float64) error {
	if !v.IsLeaf() {
		return errors.Wrapf(ErrDerivedMutation, "SetData on %s value", v.Kind())
	}
	v.data = data
	return nil
}

// Grad returns the accumulated gradient.
func (v *Value) Grad() float64 {
	return v.grad
}

// SetGrad overwrites the gradient accumulator.
func (v *Value) SetGrad(grad float64) {
	v.grad = grad
}

// ZeroGrad resets this value's gradient to 0. Operands are not touched.
func (v *Value) ZeroGrad() {
	v.grad = 0.0
}

// Kind returns the operation that produced this value.
func (v *Value) Kind() ops.Kind {
	if v.op == nil {
		return ops.Leaf
	}
	return v.op.Kind()
}

// IsLeaf reports whether the value was created directly from a float.
func (v *Value) IsLeaf() bool {
	return v.op == nil
}

// Operands returns the distinct values this value was computed from.
// The returned slice must not be modified.
func (v *Value) Operands() []*Value {
	return v.operands
}

// String implements fmt.Stringer.
func (v *Value) String() string {
	return fmt.Sprintf("Value(data=%g, grad=%g, op=%s)", v.data, v.grad, v.Kind())
}
