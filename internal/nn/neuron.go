package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Neuron is a single weighted-sum unit: y = b + Σ w_i * x_i.
//
// Weights are drawn from the initializer, the bias starts at 0. The neuron
// applies no activation; stack an activation module after the layer.
type Neuron struct {
	weights []*Parameter
	bias    *Parameter
}

// NewNeuron creates a neuron with inFeatures weights.
//
// Parameters:
//   - name: Prefix for parameter names (e.g., "layer_1.neuron_0")
//   - inFeatures: Number of inputs
//   - fanOut: Fan-out passed to the initializer
//   - rng: Random source for weight initialization
//   - init: Weight initializer (nil selects Uniform)
func NewNeuron(name string, inFeatures, fanOut int, rng *rand.Rand, init Initializer) *Neuron {
	if init == nil {
		init = Uniform
	}
	weights := make([]*Parameter, inFeatures)
	for i := range weights {
		weights[i] = NewParameter(fmt.Sprintf("%s.w_%d", name, i), init(rng, inFeatures, fanOut))
	}
	return &Neuron{
		weights: weights,
		bias:    NewParameter(name+".b", 0.0),
	}
}

// Forward computes b + Σ w_i * x_i as a single output.
func (n *Neuron) Forward(inputs []*autodiff.Value) (*autodiff.Value, error) {
	if len(inputs) != len(n.weights) {
		return nil, errorf(ErrShapeMismatch, "neuron has %d weights, got %d inputs", len(n.weights), len(inputs))
	}

	out := n.bias.Value()
	for i, w := range n.weights {
		out = out.Add(w.Value().Mul(inputs[i]))
	}
	return out, nil
}

// InFeatures returns the number of inputs the neuron expects.
func (n *Neuron) InFeatures() int {
	return len(n.weights)
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*Parameter {
	params := make([]*Parameter, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	return append(params, n.bias)
}
