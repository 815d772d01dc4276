// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network building blocks on top of the scalar
// autodiff engine.
//
// # Overview
//
// This package contains:
//   - Neuron, Layer and MLP: fully connected networks of scalar values
//   - ReLU and Sigmoid activation modules
//   - Sequential: a container chaining modules
//   - MSE, L1 and sum-of-squares losses
//   - Parameter: a named trainable leaf value
//
// # Basic Usage
//
//	import (
//	    "math/rand"
//
//	    "github.com/born-ml/micrograd/autodiff"
//	    "github.com/born-ml/micrograd/nn"
//	)
//
//	func main() {
//	    rng := rand.New(rand.NewSource(42))
//	    model := nn.NewMLP(nn.MLPConfig{
//	        InFeatures:  2,
//	        OutFeatures: 1,
//	        Hidden:      []int{8},
//	        Activation:  nn.ActivationReLU,
//	    }, rng)
//
//	    y, _ := model.ForwardScalar(autodiff.Leaves(0.5, -1.0))
//	    loss, _ := nn.NewMSELoss().Forward(
//	        []*autodiff.Value{y},
//	        autodiff.Leaves(1.0),
//	    )
//	    loss.Backward()
//	}
//
// # Parameter Naming
//
// Parameters are named hierarchically so state dicts are stable across runs:
//
//	layer_1.neuron_0.w_0
//	layer_1.neuron_0.b
//
// Modules never compute gradients themselves; everything flows through the
// operators of autodiff.Value.
package nn
