// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/micrograd/internal/nn"
)

// Module is the interface implemented by every network component.
//
// Methods:
//
//	Forward(inputs []*autodiff.Value) ([]*autodiff.Value, error)
//	    Computes the outputs for the given inputs.
//
//	Parameters() []*Parameter
//	    Returns the trainable parameters in a stable order.
type Module = nn.Module

// ZeroGrad resets the gradient of every parameter of m.
func ZeroGrad(m Module) {
	nn.ZeroGrad(m)
}

// StateDict returns the parameter data of m keyed by parameter name.
func StateDict(m Module) map[string]float64 {
	return nn.StateDict(m)
}

// LoadStateDict copies parameter data from state into m.
//
// Returns ErrShapeMismatch if the number of entries differs from the number
// of parameters, and ErrMissingParameter if a parameter has no entry.
func LoadStateDict(m Module, state map[string]float64) error {
	return nn.LoadStateDict(m, state)
}
