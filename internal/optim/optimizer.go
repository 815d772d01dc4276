// Package optim implements optimization algorithms for training networks
// built on the scalar autodiff engine.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Gradient descent with learning-rate decay and optional momentum
//   - Adam: Adaptive Moment Estimation
//
// Optimizers read each parameter's gradient after a backward pass and update
// the parameter's data in place.
//
// Example usage:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.DefaultSGDConfig())
//
//	for epoch := range epochs {
//	    optimizer.ZeroGrad()
//	    loss, err := lossFn.Forward(predictions, targets)
//	    if err != nil {
//	        return err
//	    }
//	    loss.Backward()
//	    optimizer.Step()
//	}
package optim

import (
	"github.com/born-ml/micrograd/internal/nn"
	"github.com/pkg/errors"
)

var (
	// ErrUnknownOptimizer is returned by New for an unrecognised name.
	ErrUnknownOptimizer = errors.New("optim: unknown optimizer")

	// ErrInvalidState is returned when a state dict cannot be restored.
	ErrInvalidState = errors.New("optim: invalid state")
)

// Optimizer is the base interface for all optimization algorithms.
//
// All optimizers must implement:
//   - Step: Apply gradient updates to parameters
//   - ZeroGrad: Clear gradients before next iteration
//   - GetLR: Get current learning rate (for monitoring/scheduling)
type Optimizer interface {
	// Step reads every parameter's gradient and updates its data in place.
	Step()

	// ZeroGrad resets every parameter's gradient to 0.
	//
	// This should be called before each backward pass to prevent
	// gradient accumulation from previous iterations.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64
}

// Stateful is implemented by optimizers whose internal state (learning rate,
// moments) can be saved and restored alongside the model.
type Stateful interface {
	StateDict() map[string]float64
	LoadStateDict(state map[string]float64) error
}

// Config is the union of optimizer settings, used to build an optimizer by
// name from configuration files.
type Config struct {
	Name     string  // "sgd" or "adam"
	LR       float64 // Learning rate
	Decay    float64 // SGD learning-rate decay per step
	Momentum float64 // SGD momentum
	Beta1    float64 // Adam first moment coefficient
	Beta2    float64 // Adam second moment coefficient
	Eps      float64 // Adam epsilon
}

// New builds the optimizer named by cfg.Name over params.
func New(params []*nn.Parameter, cfg Config) (Optimizer, error) {
	switch cfg.Name {
	case "", "sgd":
		return NewSGD(params, SGDConfig{LR: cfg.LR, Decay: cfg.Decay, Momentum: cfg.Momentum}), nil
	case "adam":
		return NewAdam(params, AdamConfig{
			LR:    cfg.LR,
			Betas: [2]float64{cfg.Beta1, cfg.Beta2},
			Eps:   cfg.Eps,
		}), nil
	default:
		return nil, errors.Wrapf(ErrUnknownOptimizer, "%q", cfg.Name)
	}
}

func zeroGrad(params []*nn.Parameter) {
	for _, param := range params {
		param.ZeroGrad()
	}
}
