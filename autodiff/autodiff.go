// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over
// scalar values.
//
// Every arithmetic method on a Value returns a new Value that remembers its
// operands, so evaluating an expression builds its computation graph.
// Calling Backward on the result fills in the gradient of every value in the
// graph with respect to it.
//
// Example:
//
//	import "github.com/born-ml/micrograd/autodiff"
//
//	func main() {
//	    x := autodiff.NewValue(3.0)
//	    y := x.Div(autodiff.NewValue(5.12))
//
//	    y.Backward()
//	    fmt.Println(x.Grad()) // 0.1953125
//	}
//
// Gradients accumulate across backward passes. Reset them with ZeroGrad on
// individual values or ZeroGradGraph on a root before reusing a graph.
package autodiff

import (
	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/autodiff/ops"
)

// Value is a scalar node of a computation graph.
//
// Supported operators: Add, Sub, Mul, Div, Neg, Pow (constant exponent), Exp,
// ReLU, Sigmoid, Abs, AddScalar and MulScalar. The *Any variants (AddAny,
// SubAny, MulAny, DivAny) accept a float64, float32 or *Value operand.
type Value = autodiff.Value

// NewValue creates a leaf value holding data with a zero gradient.
func NewValue(data float64) *Value {
	return autodiff.NewValue(data)
}

// Leaves creates one leaf value per element of data.
func Leaves(data ...float64) []*Value {
	return autodiff.Leaves(data...)
}

// Lift converts a float64, float32 or *Value into a *Value.
// Returns ErrInvalidOperand for any other type.
func Lift(x any) (*Value, error) {
	return autodiff.Lift(x)
}

// Sum returns the sum of values, or a zero leaf when values is empty.
func Sum(values ...*Value) *Value {
	return autodiff.Sum(values...)
}

// DataOf returns the data of every value.
func DataOf(values []*Value) []float64 {
	return autodiff.DataOf(values)
}

// Kind identifies the operation that produced a Value.
type Kind = ops.Kind

// Operation kinds reported by Value.Kind.
const (
	KindLeaf    = ops.Leaf
	KindAdd     = ops.Add
	KindMul     = ops.Mul
	KindPow     = ops.Pow
	KindExp     = ops.Exp
	KindReLU    = ops.ReLU
	KindSigmoid = ops.Sigmoid
)

// Errors returned by this package.
var (
	ErrInvalidOperand  = autodiff.ErrInvalidOperand
	ErrDerivedMutation = autodiff.ErrDerivedMutation
)
