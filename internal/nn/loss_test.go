package nn_test

import (
	"testing"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/nn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMSELoss(t *testing.T) {
	predictions := autodiff.Leaves(1, 2, 3)
	targets := autodiff.Leaves(1, 0, 4)

	loss, err := nn.NewMSELoss().Forward(predictions, targets)
	require.NoError(t, err)

	// (0 + 4 + 1) / 3
	assert.InDelta(t, 5.0/3.0, loss.Data(), 1e-12)

	loss.Backward()
	// d/dp_i = 2(p_i - t_i) / n
	assert.InDelta(t, 0.0, predictions[0].Grad(), 1e-12)
	assert.InDelta(t, 4.0/3.0, predictions[1].Grad(), 1e-12)
	assert.InDelta(t, -2.0/3.0, predictions[2].Grad(), 1e-12)
	assert.InDelta(t, -4.0/3.0, targets[1].Grad(), 1e-12)
}

func TestL1Loss(t *testing.T) {
	predictions := autodiff.Leaves(1, -2)
	targets := autodiff.Leaves(3, -5)

	loss, err := nn.NewL1Loss().Forward(predictions, targets)
	require.NoError(t, err)

	// (2 + 3) / 2
	assert.InDelta(t, 2.5, loss.Data(), 1e-12)

	loss.Backward()
	assert.InDelta(t, -0.5, predictions[0].Grad(), 1e-12)
	assert.InDelta(t, 0.5, predictions[1].Grad(), 1e-12)
}

func TestSumSquaredLoss(t *testing.T) {
	predictions := autodiff.Leaves(2, 0)
	targets := autodiff.Leaves(0, 1)

	loss, err := nn.NewSumSquaredLoss().Forward(predictions, targets)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, loss.Data(), 1e-12)

	loss.Backward()
	assert.InDelta(t, 4.0, predictions[0].Grad(), 1e-12)
	assert.InDelta(t, -2.0, predictions[1].Grad(), 1e-12)
}

func TestLoss_ShapeMismatch(t *testing.T) {
	losses := map[string]nn.Loss{
		"mse": nn.NewMSELoss(),
		"l1":  nn.NewL1Loss(),
		"sse": nn.NewSumSquaredLoss(),
	}
	for name, loss := range losses {
		t.Run(name, func(t *testing.T) {
			out, err := loss.Forward(autodiff.Leaves(1, 2), autodiff.Leaves(1))
			require.ErrorIs(t, err, nn.ErrShapeMismatch)
			assert.Contains(t, err.Error(), "2 predictions, 1 targets")
			assert.Nil(t, out)

			_, err = loss.Forward(nil, nil)
			require.ErrorIs(t, err, nn.ErrEmptyInput)
		})
	}
}

func TestParseLoss(t *testing.T) {
	for _, name := range []string{"", "mse", "l1", "sse"} {
		loss, err := nn.ParseLoss(name)
		require.NoError(t, err, name)
		assert.NotNil(t, loss)
	}

	_, err := nn.ParseLoss("huber")
	require.ErrorIs(t, err, nn.ErrUnknownLoss)
}
