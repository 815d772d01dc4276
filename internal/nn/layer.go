package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Layer is a fully connected row of neurons that all see the same inputs.
//
// Example:
//
//	rng := rand.New(rand.NewSource(1))
//	layer := nn.NewLayer("layer_1", 3, 4, rng, nil)
//	outputs, err := layer.Forward(autodiff.Leaves(1, 2, 3)) // 4 outputs
type Layer struct {
	name        string
	inFeatures  int
	outFeatures int
	neurons     []*Neuron
}

// NewLayer creates a layer of outFeatures neurons with inFeatures inputs each.
// A nil init selects Uniform.
func NewLayer(name string, inFeatures, outFeatures int, rng *rand.Rand, init Initializer) *Layer {
	neurons := make([]*Neuron, outFeatures)
	for i := range neurons {
		neurons[i] = NewNeuron(fmt.Sprintf("%s.neuron_%d", name, i), inFeatures, outFeatures, rng, init)
	}
	return &Layer{
		name:        name,
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		neurons:     neurons,
	}
}

// Forward applies every neuron to inputs.
func (l *Layer) Forward(inputs []*autodiff.Value) ([]*autodiff.Value, error) {
	if len(inputs) != l.inFeatures {
		return nil, errorf(ErrShapeMismatch, "layer %s expects %d inputs, got %d", l.name, l.inFeatures, len(inputs))
	}

	outputs := make([]*autodiff.Value, len(l.neurons))
	for i, n := range l.neurons {
		out, err := n.Forward(inputs)
		if err != nil {
			return nil, err
		}
		outputs[i] = out
	}
	return outputs, nil
}

// Parameters returns all neuron parameters, neuron by neuron.
func (l *Layer) Parameters() []*Parameter {
	params := make([]*Parameter, 0, l.outFeatures*(l.inFeatures+1))
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// Neurons returns the neurons of the layer.
func (l *Layer) Neurons() []*Neuron {
	return l.neurons
}

// InFeatures returns the number of inputs.
func (l *Layer) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the number of outputs.
func (l *Layer) OutFeatures() int {
	return l.outFeatures
}

// String implements fmt.Stringer.
func (l *Layer) String() string {
	return fmt.Sprintf("Layer(%s, in=%d, out=%d)", l.name, l.inFeatures, l.outFeatures)
}
