package nn

import (
	"github.com/born-ml/micrograd/internal/autodiff"
)

// Activation names an element-wise nonlinearity.
type Activation string

const (
	// ActivationNone passes values through unchanged.
	ActivationNone    Activation = "none"
	ActivationReLU    Activation = "relu"
	ActivationSigmoid Activation = "sigmoid"
)

// ParseActivation validates an activation name. An empty name is "none".
func ParseActivation(name string) (Activation, error) {
	switch a := Activation(name); a {
	case "":
		return ActivationNone, nil
	case ActivationNone, ActivationReLU, ActivationSigmoid:
		return a, nil
	default:
		return "", errorf(ErrUnknownActivation, "%q", name)
	}
}

// Module returns the activation as a parameter-free module, or nil for
// ActivationNone.
func (a Activation) Module() Module {
	switch a {
	case ActivationReLU:
		return NewReLU()
	case ActivationSigmoid:
		return NewSigmoid()
	default:
		return nil
	}
}

// ReLU is a Rectified Linear Unit activation module.
//
// Applies the element-wise function: f(x) = max(0, x)
type ReLU struct{}

// NewReLU creates a new ReLU activation module.
func NewReLU() *ReLU {
	return &ReLU{}
}

// Forward applies ReLU to every input.
func (r *ReLU) Forward(inputs []*autodiff.Value) ([]*autodiff.Value, error) {
	return apply(inputs, (*autodiff.Value).ReLU), nil
}

// Parameters returns nil (ReLU has no trainable parameters).
func (r *ReLU) Parameters() []*Parameter {
	return nil
}

// Sigmoid is a sigmoid activation module.
//
// Applies the element-wise function: σ(x) = 1 / (1 + exp(-x))
type Sigmoid struct{}

// NewSigmoid creates a new Sigmoid activation module.
func NewSigmoid() *Sigmoid {
	return &Sigmoid{}
}

// Forward applies Sigmoid to every input.
func (s *Sigmoid) Forward(inputs []*autodiff.Value) ([]*autodiff.Value, error) {
	return apply(inputs, (*autodiff.Value).Sigmoid), nil
}

// Parameters returns nil (Sigmoid has no trainable parameters).
func (s *Sigmoid) Parameters() []*Parameter {
	return nil
}

func apply(inputs []*autodiff.Value, f func(*autodiff.Value) *autodiff.Value) []*autodiff.Value {
	outputs := make([]*autodiff.Value, len(inputs))
	for i, x := range inputs {
		outputs[i] = f(x)
	}
	return outputs
}
