// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/born-ml/micrograd/internal/optim"
	"github.com/born-ml/micrograd/nn"
)

// Optimizer is the common interface of all optimizers.
type Optimizer = optim.Optimizer

// Stateful is implemented by optimizers whose state can be saved.
type Stateful = optim.Stateful

// Config selects and tunes an optimizer by name.
type Config = optim.Config

// New builds the optimizer named by cfg.Name ("sgd" or "adam").
func New(params []*nn.Parameter, cfg Config) (Optimizer, error) {
	return optim.New(params, cfg)
}

// SGD (Stochastic Gradient Descent)

// SGD is gradient descent with learning-rate decay and optional momentum.
type SGD = optim.SGD

// SGDConfig contains configuration for the SGD optimizer.
type SGDConfig = optim.SGDConfig

// DefaultSGDConfig returns LR 0.01 with a 0.005 decay per step.
func DefaultSGDConfig() SGDConfig {
	return optim.DefaultSGDConfig()
}

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{
//	    LR:       0.05,
//	    Momentum: 0.9,
//	})
func NewSGD(params []*nn.Parameter, config SGDConfig) *SGD {
	return optim.NewSGD(params, config)
}

// Adam (Adaptive Moment Estimation)

// Adam is the Adam optimizer.
type Adam = optim.Adam

// AdamConfig contains configuration for the Adam optimizer.
type AdamConfig = optim.AdamConfig

// NewAdam creates a new Adam optimizer with bias correction.
//
// Example:
//
//	optimizer := optim.NewAdam(model.Parameters(), optim.AdamConfig{
//	    LR:    0.001,
//	    Betas: [2]float64{0.9, 0.999},
//	})
func NewAdam(params []*nn.Parameter, config AdamConfig) *Adam {
	return optim.NewAdam(params, config)
}

// Errors returned by this package.
var (
	ErrUnknownOptimizer = optim.ErrUnknownOptimizer
	ErrInvalidState     = optim.ErrInvalidState
)
