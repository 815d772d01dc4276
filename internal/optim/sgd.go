package optim

import (
	"github.com/born-ml/micrograd/internal/nn"
	"github.com/pkg/errors"
)

// SGD implements gradient descent with learning-rate decay and optional
// momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// After every step the learning rate shrinks: lr = lr * (1 - decay).
//
// Example:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{
//	    LR:    0.01,
//	    Decay: 0.005,
//	})
type SGD struct {
	params     []*nn.Parameter
	lr         float64
	decay      float64
	momentum   float64
	velocities map[*nn.Parameter]float64
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Decay    float64 // Learning-rate decay factor per step, range [0, 1)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// DefaultSGDConfig returns LR 0.01 with a 0.005 decay per step.
func DefaultSGDConfig() SGDConfig {
	return SGDConfig{
		LR:    0.01,
		Decay: 0.005,
	}
}

// NewSGD creates a new SGD optimizer. A zero LR selects 0.01.
func NewSGD(params []*nn.Parameter, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD{
		params:     params,
		lr:         config.LR,
		decay:      config.Decay,
		momentum:   config.Momentum,
		velocities: make(map[*nn.Parameter]float64),
	}
}

// Step performs a single optimization step and then decays the learning rate.
func (s *SGD) Step() {
	for _, param := range s.params {
		grad := param.Grad()
		if s.momentum != 0 {
			v := s.momentum*s.velocities[param] + grad
			s.velocities[param] = v
			grad = v
		}
		param.SetData(param.Data() - s.lr*grad)
	}
	s.lr *= 1 - s.decay
}

// ZeroGrad clears gradients for all parameters.
func (s *SGD) ZeroGrad() {
	zeroGrad(s.params)
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}

// StateDict returns the optimizer state for serialization.
//
// State keys: "lr" and, with momentum, "velocity.{param_name}".
func (s *SGD) StateDict() map[string]float64 {
	state := map[string]float64{"lr": s.lr}
	if s.momentum == 0 {
		return state
	}
	for _, param := range s.params {
		if v, ok := s.velocities[param]; ok {
			state["velocity."+param.Name()] = v
		}
	}
	return state
}

// LoadStateDict restores state produced by StateDict.
func (s *SGD) LoadStateDict(state map[string]float64) error {
	lr, ok := state["lr"]
	if !ok {
		return errors.Wrap(ErrInvalidState, "sgd: missing lr")
	}
	s.lr = lr

	s.velocities = make(map[*nn.Parameter]float64)
	for _, param := range s.params {
		if v, ok := state["velocity."+param.Name()]; ok {
			s.velocities[param] = v
		}
	}
	return nil
}
