// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for training networks built
// with the nn package.
//
// # Overview
//
// This package contains:
//   - SGD: gradient descent with learning-rate decay and optional momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/micrograd/autodiff"
//	    "github.com/born-ml/micrograd/nn"
//	    "github.com/born-ml/micrograd/optim"
//	)
//
//	func main() {
//	    model := nn.NewMLP(cfg, rng)
//	    optimizer := optim.NewSGD(model.Parameters(), optim.DefaultSGDConfig())
//
//	    for epoch := range 100 {
//	        optimizer.ZeroGrad()
//
//	        y, _ := model.ForwardScalar(autodiff.Leaves(x...))
//	        loss, _ := nn.NewMSELoss().Forward([]*autodiff.Value{y}, autodiff.Leaves(target))
//
//	        loss.Backward()
//	        optimizer.Step()
//	    }
//	}
//
// # Optimizers
//
// SGD:
//
//	param = param - lr * grad
//	lr = lr * (1 - decay)
//
// With momentum the gradient is replaced by a velocity:
//
//	velocity = momentum * velocity + grad
//
// Adam:
//
//	m = beta1 * m + (1 - beta1) * grad
//	v = beta2 * v + (1 - beta2) * grad²
//	param = param - lr * m_hat / (sqrt(v_hat) + eps)
//
// where m_hat and v_hat are the bias-corrected moments.
//
// # State
//
// Both optimizers implement Stateful, so their learning rate and moments can
// be stored next to the model parameters and restored to resume training.
package optim
