// Package autodiff implements reverse-mode automatic differentiation over
// scalar values.
//
// Architecture:
//   - Value: a node holding data, an accumulated gradient and the operation
//     that produced it
//   - ops.Operation: each op (Add, Mul, Pow, ...) computes its forward value
//     and local gradient contributions
//   - Eager graph construction: every operator call builds a derived Value
//     immediately, capturing its operands
//   - Backward: strict reverse-topological traversal from one root
//
// Usage:
//
//	x := autodiff.NewValue(3.0)
//	y := x.Div(autodiff.NewValue(5.12))
//	y.Backward()
//	fmt.Println(x.Grad()) // 0.1953125
package autodiff

import "github.com/born-ml/micrograd/internal/autodiff/ops"

// Add returns v + other.
func (v *Value) Add(other *Value) *Value {
	return newDerived(ops.NewAddOp(v, other), v, other)
}

// Mul returns v * other.
func (v *Value) Mul(other *Value) *Value {
	return newDerived(ops.NewMulOp(v, other), v, other)
}

// Pow returns v^exponent. The exponent is a constant and receives no gradient.
func (v *Value) Pow(exponent float64) *Value {
	return newDerived(ops.NewPowOp(v, exponent), v)
}

// Exp returns e^v.
func (v *Value) Exp() *Value {
	return newDerived(ops.NewExpOp(v), v)
}

// ReLU returns max(0, v). The gradient at exactly 0 is 0.
func (v *Value) ReLU() *Value {
	return newDerived(ops.NewReLUOp(v), v)
}

// Sigmoid returns 1 / (1 + e^-v).
func (v *Value) Sigmoid() *Value {
	return newDerived(ops.NewSigmoidOp(v), v)
}

// Neg returns -v, built as v * -1.
func (v *Value) Neg() *Value {
	return v.Mul(NewValue(-1.0))
}

// Sub returns v - other, built as v + (-other).
func (v *Value) Sub(other *Value) *Value {
	return v.Add(other.Neg())
}

// Div returns v / other, built as v * other^-1.
func (v *Value) Div(other *Value) *Value {
	return v.Mul(other.Pow(-1.0))
}

// Abs returns v itself when v > 0, and -v otherwise.
//
// Known edge case: at exactly 0 the negated branch is taken, so the result
// has data -0 and the gradient flowing back to v is -1 times the output
// gradient.
func (v *Value) Abs() *Value {
	if v.data > 0 {
		return v
	}
	return v.Neg()
}

// AddScalar returns v + x, with x lifted to a new leaf.
func (v *Value) AddScalar(x float64) *Value {
	return v.Add(NewValue(x))
}

// MulScalar returns v * x, with x lifted to a new leaf.
func (v *Value) MulScalar(x float64) *Value {
	return v.Mul(NewValue(x))
}

// Sum folds values with Add from left to right. An empty call returns a new
// leaf holding 0.
func Sum(values ...*Value) *Value {
	if len(values) == 0 {
		return NewValue(0.0)
	}
	total := values[0]
	for _, v := range values[1:] {
		total = total.Add(v)
	}
	return total
}

// Leaves creates one leaf per element of data.
func Leaves(data ...float64) []*Value {
	values := make([]*Value, len(data))
	for i, x := range data {
		values[i] = NewValue(x)
	}
	return values
}

// DataOf returns the data of each value.
func DataOf(values []*Value) []float64 {
	data := make([]float64, len(values))
	for i, v := range values {
		data[i] = v.data
	}
	return data
}
