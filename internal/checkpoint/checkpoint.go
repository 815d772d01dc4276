// Package checkpoint saves and restores trained MLPs as YAML documents.
//
// A checkpoint stores the architecture (layer widths and activation) next to
// every parameter value keyed by name, so a model can be rebuilt without the
// configuration that trained it.
package checkpoint

import (
	"math/rand"
	"os"
	"path/filepath"

	"github.com/born-ml/micrograd/internal/nn"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Checkpoint is the on-disk form of a trained model.
type Checkpoint struct {
	Dims       []int              `yaml:"dims"`
	Activation string             `yaml:"activation"`
	Epoch      int                `yaml:"epoch"`
	Loss       float64            `yaml:"loss"`
	Parameters map[string]float64 `yaml:"parameters"`
	Optimizer  map[string]float64 `yaml:"optimizer,omitempty"`
	Checksum   string             `yaml:"checksum,omitempty"` // SHA-256 of dims, activation and parameters
}

// FromModel captures the current parameters of model.
func FromModel(model *nn.MLP, epoch int, loss float64) *Checkpoint {
	return &Checkpoint{
		Dims:       append([]int(nil), model.Dims()...),
		Activation: string(model.Activation()),
		Epoch:      epoch,
		Loss:       loss,
		Parameters: nn.StateDict(model),
	}
}

// Model rebuilds the network and loads the stored parameters into it.
func (c *Checkpoint) Model() (*nn.MLP, error) {
	if len(c.Dims) < 2 {
		return nil, errors.Errorf("checkpoint: need at least input and output dims, got %v", c.Dims)
	}
	act, err := nn.ParseActivation(c.Activation)
	if err != nil {
		return nil, errors.Wrap(err, "checkpoint")
	}

	// Initial weights are overwritten below, the seed does not matter.
	model := nn.NewMLP(nn.MLPConfig{
		InFeatures:  c.Dims[0],
		OutFeatures: c.Dims[len(c.Dims)-1],
		Hidden:      c.Dims[1 : len(c.Dims)-1],
		Activation:  act,
	}, rand.New(rand.NewSource(0)))

	if err := nn.LoadStateDict(model, c.Parameters); err != nil {
		return nil, errors.Wrap(err, "checkpoint")
	}
	return model, nil
}

// Save writes c to path with a fresh checksum. The file is written next to
// its destination and renamed into place so readers never see a partial
// document.
func Save(path string, c *Checkpoint) error {
	c.Checksum = computeChecksum(c)
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "failed to encode checkpoint")
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".checkpoint-*")
	if err != nil {
		return errors.Wrap(err, "failed to create checkpoint")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "failed to write %q", tmp.Name())
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "failed to close %q", tmp.Name())
	}
	return errors.Wrapf(os.Rename(tmp.Name(), path), "failed to move checkpoint to %q", path)
}

// Load reads a checkpoint written by Save and verifies its checksum.
func Load(path string) (*Checkpoint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read checkpoint")
	}

	var c Checkpoint
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, errors.Wrapf(err, "failed to decode checkpoint %q", path)
	}
	if err := validateChecksum(&c); err != nil {
		return nil, errors.Wrapf(err, "checkpoint %q", path)
	}
	return &c, nil
}
