package nn_test

import (
	"math/rand"
	"testing"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/nn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRNG() *rand.Rand {
	return rand.New(rand.NewSource(7))
}

// TestParameter tests Parameter creation and methods.
func TestParameter(t *testing.T) {
	param := nn.NewParameter("test_param", 1.5)

	assert.Equal(t, "test_param", param.Name())
	assert.Equal(t, 1.5, param.Data())
	assert.True(t, param.Value().IsLeaf())

	param.Value().Mul(autodiff.NewValue(4)).Backward()
	assert.Equal(t, 4.0, param.Grad())

	param.ZeroGrad()
	assert.Equal(t, 0.0, param.Grad())

	param.SetData(-2)
	assert.Equal(t, -2.0, param.Data())
}

func TestNeuron_Forward(t *testing.T) {
	n := nn.NewNeuron("n", 3, 1, newRNG(), nil)
	params := n.Parameters()
	require.Len(t, params, 4)
	assert.Equal(t, "n.w_0", params[0].Name())
	assert.Equal(t, "n.b", params[3].Name())
	assert.Equal(t, 0.0, params[3].Data(), "bias starts at zero")

	for _, p := range params[:3] {
		assert.GreaterOrEqual(t, p.Data(), -1.0)
		assert.Less(t, p.Data(), 1.0)
	}

	params[0].SetData(0.5)
	params[1].SetData(-1)
	params[2].SetData(2)
	params[3].SetData(0.25)

	x := autodiff.Leaves(2, 3, 1)
	out, err := n.Forward(x)
	require.NoError(t, err)

	// 0.25 + 0.5*2 - 1*3 + 2*1
	assert.InDelta(t, 0.25, out.Data(), 1e-12)

	out.Backward()
	assert.Equal(t, 2.0, params[0].Grad())
	assert.Equal(t, 3.0, params[1].Grad())
	assert.Equal(t, 1.0, params[2].Grad())
	assert.Equal(t, 1.0, params[3].Grad())
	assert.Equal(t, 0.5, x[0].Grad())
}

func TestNeuron_ShapeMismatch(t *testing.T) {
	n := nn.NewNeuron("n", 2, 1, newRNG(), nil)

	out, err := n.Forward(autodiff.Leaves(1, 2, 3))

	require.ErrorIs(t, err, nn.ErrShapeMismatch)
	assert.Nil(t, out)
}

func TestLayer(t *testing.T) {
	layer := nn.NewLayer("layer_1", 3, 2, newRNG(), nil)

	assert.Equal(t, 3, layer.InFeatures())
	assert.Equal(t, 2, layer.OutFeatures())
	assert.Len(t, layer.Neurons(), 2)
	assert.Len(t, layer.Parameters(), 8)
	assert.Equal(t, "Layer(layer_1, in=3, out=2)", layer.String())

	outputs, err := layer.Forward(autodiff.Leaves(1, 0, -1))
	require.NoError(t, err)
	assert.Len(t, outputs, 2)

	_, err = layer.Forward(autodiff.Leaves(1))
	require.ErrorIs(t, err, nn.ErrShapeMismatch)
}

func TestMLP(t *testing.T) {
	model := nn.NewMLP(nn.MLPConfig{
		InFeatures:  3,
		OutFeatures: 1,
		Hidden:      []int{4, 4},
		Activation:  nn.ActivationReLU,
	}, newRNG())

	assert.Equal(t, []int{3, 4, 4, 1}, model.Dims())
	require.Len(t, model.Layers(), 3)
	assert.Len(t, model.Parameters(), 4*4+4*5+1*5)
	assert.Equal(t, "layer_3.neuron_0.b", model.Parameters()[len(model.Parameters())-1].Name())
	assert.Contains(t, model.String(), "MLP dims: [3 4 4 1]")
	assert.Contains(t, model.String(), "Layer(layer_2, in=4, out=4)")

	y, err := model.ForwardScalar(autodiff.Leaves(0.5, -1, 2))
	require.NoError(t, err)

	y.Backward()
	var touched int
	for _, p := range model.Parameters() {
		if p.Grad() != 0 {
			touched++
		}
	}
	assert.Positive(t, touched)

	nn.ZeroGrad(model)
	for _, p := range model.Parameters() {
		assert.Equal(t, 0.0, p.Grad(), p.Name())
	}
}

func TestMLP_NoHidden(t *testing.T) {
	model := nn.NewMLP(nn.MLPConfig{InFeatures: 2, OutFeatures: 3}, newRNG())

	outputs, err := model.Forward(autodiff.Leaves(1, 2))
	require.NoError(t, err)
	assert.Len(t, outputs, 3)

	_, err = model.ForwardScalar(autodiff.Leaves(1, 2))
	require.ErrorIs(t, err, nn.ErrShapeMismatch)
}

func TestMLP_Deterministic(t *testing.T) {
	cfg := nn.MLPConfig{InFeatures: 2, OutFeatures: 1, Hidden: []int{3}, Init: nn.Xavier}
	a := nn.NewMLP(cfg, rand.New(rand.NewSource(99)))
	b := nn.NewMLP(cfg, rand.New(rand.NewSource(99)))

	assert.Equal(t, nn.StateDict(a), nn.StateDict(b))
}

func TestSequential(t *testing.T) {
	rng := newRNG()
	seq := nn.NewSequential(nn.NewLayer("a", 2, 3, rng, nil), nn.NewSigmoid())
	seq.Add(nn.NewLayer("b", 3, 1, rng, nil))

	assert.Equal(t, 3, seq.Len())
	assert.IsType(t, &nn.Sigmoid{}, seq.Module(1))
	assert.Len(t, seq.Parameters(), 9+4)
	assert.Panics(t, func() { seq.Module(3) })

	out, err := seq.Forward(autodiff.Leaves(1, 1))
	require.NoError(t, err)
	assert.Len(t, out, 1)

	_, err = seq.Forward(autodiff.Leaves(1))
	require.ErrorIs(t, err, nn.ErrShapeMismatch)
}

func TestStateDict_RoundTrip(t *testing.T) {
	cfg := nn.MLPConfig{InFeatures: 2, OutFeatures: 1, Hidden: []int{2}}
	src := nn.NewMLP(cfg, rand.New(rand.NewSource(1)))
	dst := nn.NewMLP(cfg, rand.New(rand.NewSource(2)))
	require.NotEqual(t, nn.StateDict(src), nn.StateDict(dst))

	require.NoError(t, nn.LoadStateDict(dst, nn.StateDict(src)))
	assert.Equal(t, nn.StateDict(src), nn.StateDict(dst))
}

func TestLoadStateDict_Errors(t *testing.T) {
	model := nn.NewMLP(nn.MLPConfig{InFeatures: 1, OutFeatures: 1}, newRNG())

	err := nn.LoadStateDict(model, map[string]float64{"x": 1})
	require.ErrorIs(t, err, nn.ErrShapeMismatch)

	err = nn.LoadStateDict(model, map[string]float64{"x": 1, "y": 2})
	require.ErrorIs(t, err, nn.ErrMissingParameter)
}

func TestParseInitializer(t *testing.T) {
	for _, name := range []string{"", "uniform", "xavier"} {
		init, err := nn.ParseInitializer(name)
		require.NoError(t, err, name)
		assert.NotNil(t, init)
	}

	_, err := nn.ParseInitializer("he")
	require.ErrorIs(t, err, nn.ErrUnknownInitializer)
}

func TestXavier_Bound(t *testing.T) {
	rng := newRNG()
	for range 100 {
		w := nn.Xavier(rng, 4, 2)
		assert.LessOrEqual(t, w, 1.0)
		assert.GreaterOrEqual(t, w, -1.0)
	}
}
