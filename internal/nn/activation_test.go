package nn_test

import (
	"testing"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/nn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReLU_Forward(t *testing.T) {
	relu := nn.NewReLU()

	out, err := relu.Forward(autodiff.Leaves(-1, 0, 2))
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 0, 2}, autodiff.DataOf(out))
	assert.Nil(t, relu.Parameters())
}

func TestSigmoid_Forward(t *testing.T) {
	sigmoid := nn.NewSigmoid()

	out, err := sigmoid.Forward(autodiff.Leaves(0))
	require.NoError(t, err)

	assert.InDelta(t, 0.5, out[0].Data(), 1e-12)
	assert.Nil(t, sigmoid.Parameters())
}

func TestParseActivation(t *testing.T) {
	tests := []struct {
		name string
		want nn.Activation
	}{
		{"", nn.ActivationNone},
		{"none", nn.ActivationNone},
		{"relu", nn.ActivationReLU},
		{"sigmoid", nn.ActivationSigmoid},
	}
	for _, tt := range tests {
		got, err := nn.ParseActivation(tt.name)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := nn.ParseActivation("tanh")
	require.ErrorIs(t, err, nn.ErrUnknownActivation)
}

func TestActivation_Module(t *testing.T) {
	assert.Nil(t, nn.ActivationNone.Module())
	assert.IsType(t, &nn.ReLU{}, nn.ActivationReLU.Module())
	assert.IsType(t, &nn.Sigmoid{}, nn.ActivationSigmoid.Module())
}
