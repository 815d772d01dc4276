package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/born-ml/micrograd/internal/checkpoint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunGrad(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runGrad(nil, &out))
	assert.Contains(t, out.String(), "dy/dx = 0.1953125")

	out.Reset()
	require.NoError(t, runGrad([]string{"-x", "1", "-div", "4"}, &out))
	assert.Contains(t, out.String(), "y = 1 / 4 = 0.25")
	assert.Contains(t, out.String(), "dy/dx = 0.25")

	require.Error(t, runGrad([]string{"-x", "abc"}, &out))
}

func TestRunTrain(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(`
model:
  hidden: [3]
  activation: sigmoid
train:
  epochs: 50
  workers: 1
  optimizer:
    name: adam
data:
  samples: 20
  features: 2
`), 0o600))
	savePath := filepath.Join(dir, "model.yaml")

	var out bytes.Buffer
	err := runTrain([]string{"-config", configPath, "-epochs", "4", "-lr", "0.02", "-save", savePath, "-quiet"}, &out, nil)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "train loss")
	assert.Contains(t, out.String(), "[2 3 1]")

	ck, err := checkpoint.Load(savePath)
	require.NoError(t, err)
	assert.Equal(t, 4, ck.Epoch)
	assert.Equal(t, []int{2, 3, 1}, ck.Dims)
	assert.Equal(t, "sigmoid", ck.Activation)
	assert.Equal(t, 0.02, ck.Optimizer["lr"])
	assert.Equal(t, 4.0, ck.Optimizer["t"]) // full batch, one step per epoch

	_, err = ck.Model()
	require.NoError(t, err)
}

func TestRunTrain_Errors(t *testing.T) {
	var out bytes.Buffer
	require.Error(t, runTrain([]string{"-config", filepath.Join(t.TempDir(), "missing.yaml")}, &out, nil))
	require.Error(t, runTrain([]string{"-epochs", "-1", "-quiet"}, &out, nil))
	require.Error(t, runTrain([]string{"-data", filepath.Join(t.TempDir(), "missing.csv"), "-quiet"}, &out, nil))
}
