package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/born-ml/micrograd/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Valid(t *testing.T) {
	cfg := config.Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "sgd", cfg.Train.Optimizer.Name)
	assert.Equal(t, 0.01, cfg.Train.Optimizer.LR)
	assert.Equal(t, 0.005, cfg.Train.Optimizer.Decay)
}

func TestParse_OverridesDefaults(t *testing.T) {
	cfg, err := config.Parse(strings.NewReader(`
model:
  hidden: [8, 2]
  activation: sigmoid
train:
  epochs: 5
  optimizer:
    name: adam
    lr: 0.1
data:
  path: points.csv
`))
	require.NoError(t, err)

	assert.Equal(t, []int{8, 2}, cfg.Model.Hidden)
	assert.Equal(t, "sigmoid", cfg.Model.Activation)
	assert.Equal(t, 5, cfg.Train.Epochs)
	assert.Equal(t, "adam", cfg.Train.Optimizer.Name)
	assert.Equal(t, 0.1, cfg.Train.Optimizer.LR)
	assert.Equal(t, "points.csv", cfg.Data.Path)

	// Untouched keys keep their defaults.
	assert.Equal(t, "mse", cfg.Train.Loss)
	assert.Equal(t, int64(42), cfg.Train.Seed)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := config.Parse(strings.NewReader("  \n"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParse_UnknownKey(t *testing.T) {
	_, err := config.Parse(strings.NewReader("train:\n  epoch: 3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "epoch")
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]string{
		"hidden":       "model:\n  hidden: [0]\n",
		"epochs":       "train:\n  epochs: -1\n",
		"batch":        "train:\n  batch_size: -2\n",
		"val fraction": "train:\n  val_fraction: 1.0\n",
		"decay":        "train:\n  optimizer:\n    decay: 1.5\n",
		"lr":           "train:\n  optimizer:\n    lr: -0.1\n",
		"synthetic":    "data:\n  samples: 0\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse(strings.NewReader(doc))
			require.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "train.yaml")
	require.NoError(t, os.WriteFile(path, []byte("train:\n  epochs: 7\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Train.Epochs)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.yaml")
}
