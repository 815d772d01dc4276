package nn

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// MLPConfig describes a multi-layer perceptron.
type MLPConfig struct {
	InFeatures  int        // Number of network inputs
	OutFeatures int        // Number of network outputs
	Hidden      []int      // Hidden layer widths, may be empty
	Activation  Activation // Applied after every hidden layer (not the output)
	Init        Initializer
}

// MLP is a stack of fully connected layers named layer_1 ... layer_n.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	model := nn.NewMLP(nn.MLPConfig{
//	    InFeatures:  3,
//	    OutFeatures: 1,
//	    Hidden:      []int{4, 4},
//	    Activation:  nn.ActivationReLU,
//	}, rng)
//	y, err := model.ForwardScalar(autodiff.Leaves(1, 2, 3))
type MLP struct {
	dims       []int
	activation Activation
	layers     []*Layer
	seq        *Sequential
}

// NewMLP builds the network described by cfg.
func NewMLP(cfg MLPConfig, rng *rand.Rand) *MLP {
	dims := make([]int, 0, len(cfg.Hidden)+2)
	dims = append(dims, cfg.InFeatures)
	dims = append(dims, cfg.Hidden...)
	dims = append(dims, cfg.OutFeatures)

	m := &MLP{
		dims:       dims,
		activation: cfg.Activation,
		seq:        NewSequential(),
	}
	for i := 0; i < len(dims)-1; i++ {
		layer := NewLayer(fmt.Sprintf("layer_%d", i+1), dims[i], dims[i+1], rng, cfg.Init)
		m.layers = append(m.layers, layer)
		m.seq.Add(layer)

		if i < len(dims)-2 {
			if act := cfg.Activation.Module(); act != nil {
				m.seq.Add(act)
			}
		}
	}
	return m
}

// Forward runs the inputs through every layer.
func (m *MLP) Forward(inputs []*autodiff.Value) ([]*autodiff.Value, error) {
	return m.seq.Forward(inputs)
}

// ForwardScalar runs Forward on a single-output network and returns that
// output.
func (m *MLP) ForwardScalar(inputs []*autodiff.Value) (*autodiff.Value, error) {
	outputs, err := m.Forward(inputs)
	if err != nil {
		return nil, err
	}
	if len(outputs) != 1 {
		return nil, errorf(ErrShapeMismatch, "network has %d outputs, want 1", len(outputs))
	}
	return outputs[0], nil
}

// Parameters returns all layer parameters, layer by layer.
func (m *MLP) Parameters() []*Parameter {
	return m.seq.Parameters()
}

// Layers returns the layers of the network.
func (m *MLP) Layers() []*Layer {
	return m.layers
}

// Activation returns the hidden-layer activation.
func (m *MLP) Activation() Activation {
	return m.activation
}

// Dims returns the layer widths, inputs first.
func (m *MLP) Dims() []int {
	return m.dims
}

// String implements fmt.Stringer.
func (m *MLP) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "MLP dims: %v", m.dims)
	for _, l := range m.layers {
		sb.WriteString("\n")
		sb.WriteString(l.String())
	}
	return sb.String()
}
