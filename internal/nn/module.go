// Package nn implements neural network modules on top of the scalar
// autodiff engine.
//
// This package provides building blocks for constructing small networks:
//   - Module interface: Base interface for all NN components
//   - Parameter: Trainable leaf value with a hierarchical name
//   - Neuron: Weighted-sum unit (w·x + b)
//   - Layer: A row of neurons sharing the same inputs
//   - Activations: ReLU, Sigmoid, Identity
//   - Sequential / MLP: Containers for stacking modules
//   - Loss functions: MSE, L1, SumSquared
//
// Modules only use the public operators of autodiff.Value; they hold no
// gradient logic of their own.
package nn

import "github.com/born-ml/micrograd/internal/autodiff"

// Module is the base interface for all neural network components.
//
// Every NN module must implement:
//   - Forward: Compute outputs from inputs
//   - Parameters: Return all trainable parameters
//
// Modules can be composed to build larger networks:
//
//	model := nn.NewSequential(
//	    nn.NewLayer("hidden", 3, 4, rng, nn.Uniform),
//	    nn.NewReLU(),
//	    nn.NewLayer("output", 4, 1, rng, nn.Uniform),
//	)
type Module interface {
	// Forward computes the outputs of the module for the given inputs.
	//
	// Returns ErrShapeMismatch if the number of inputs does not match what
	// the module expects.
	Forward(inputs []*autodiff.Value) ([]*autodiff.Value, error)

	// Parameters returns all trainable parameters of this module in a
	// stable order. Returns nil for modules without parameters.
	Parameters() []*Parameter
}

// ZeroGrad resets the gradient of every parameter of m.
func ZeroGrad(m Module) {
	for _, p := range m.Parameters() {
		p.ZeroGrad()
	}
}

// StateDict returns parameter data keyed by parameter name.
func StateDict(m Module) map[string]float64 {
	params := m.Parameters()
	state := make(map[string]float64, len(params))
	for _, p := range params {
		state[p.Name()] = p.Data()
	}
	return state
}

// LoadStateDict copies data from state into the parameters of m.
//
// Every parameter of m must be present in state; extra keys are rejected so
// a checkpoint of a different architecture fails loudly.
func LoadStateDict(m Module, state map[string]float64) error {
	params := m.Parameters()
	if len(state) != len(params) {
		return errorf(ErrShapeMismatch, "state has %d entries, module has %d parameters", len(state), len(params))
	}
	for _, p := range params {
		x, ok := state[p.Name()]
		if !ok {
			return errorf(ErrMissingParameter, "%q", p.Name())
		}
		p.SetData(x)
	}
	return nil
}
