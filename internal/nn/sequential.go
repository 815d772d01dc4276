package nn

import (
	"github.com/born-ml/micrograd/internal/autodiff"
)

// Sequential is a container module that chains multiple modules together.
//
// Each module's outputs become the next module's inputs.
//
// Example:
//
//	model := nn.NewSequential(
//	    nn.NewLayer("layer_1", 2, 8, rng, nil),
//	    nn.NewReLU(),
//	    nn.NewLayer("layer_2", 8, 1, rng, nil),
//	)
//
//	outputs, err := model.Forward(inputs)
type Sequential struct {
	modules []Module
}

// NewSequential creates a new Sequential container.
func NewSequential(modules ...Module) *Sequential {
	return &Sequential{
		modules: modules,
	}
}

// Forward applies all modules in sequence. The first error aborts the pass.
func (s *Sequential) Forward(inputs []*autodiff.Value) ([]*autodiff.Value, error) {
	outputs := inputs
	for _, module := range s.modules {
		var err error
		outputs, err = module.Forward(outputs)
		if err != nil {
			return nil, err
		}
	}
	return outputs, nil
}

// Parameters returns all trainable parameters from all modules, in order.
func (s *Sequential) Parameters() []*Parameter {
	var params []*Parameter
	for _, module := range s.modules {
		params = append(params, module.Parameters()...)
	}
	return params
}

// Add appends a module to the sequence.
func (s *Sequential) Add(module Module) {
	s.modules = append(s.modules, module)
}

// Len returns the number of modules in the sequence.
func (s *Sequential) Len() int {
	return len(s.modules)
}

// Module returns the module at the given index.
//
// Panics if index is out of bounds.
func (s *Sequential) Module(index int) Module {
	if index < 0 || index >= len(s.modules) {
		panic("Sequential.Module: index out of bounds")
	}
	return s.modules[index]
}
