// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/micrograd/internal/nn"
)

// Parameter is a trainable leaf value with a name.
//
// Example:
//
//	w := nn.NewParameter("w", 0.5)
//	y := w.Value().Mul(autodiff.NewValue(2))
//	y.Backward()
//	fmt.Println(w.Grad()) // 2
//
// Methods:
//
//	Name() string
//	    Returns the hierarchical name (e.g., "layer_1.neuron_0.b").
//
//	Value() *autodiff.Value
//	    Returns the leaf used in computation graphs.
//
//	Data() / SetData(x float64)
//	    Read or overwrite the parameter value.
//
//	Grad() float64
//	    Returns the gradient accumulated by backward passes.
//
//	ZeroGrad()
//	    Resets the gradient to 0.
type Parameter = nn.Parameter

// NewParameter creates a parameter holding data.
func NewParameter(name string, data float64) *Parameter {
	return nn.NewParameter(name, data)
}
