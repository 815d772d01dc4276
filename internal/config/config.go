// Package config loads training configuration from YAML files.
//
// Every field has a default (see Default), so a file only needs the keys it
// changes:
//
//	model:
//	  hidden: [8, 8]
//	  activation: relu
//	train:
//	  epochs: 200
//	  optimizer:
//	    name: sgd
//	    lr: 0.05
//	data:
//	  path: data.csv
package config

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned when a configuration value is out of range.
var ErrInvalid = errors.New("config: invalid value")

// Config is the full training configuration.
type Config struct {
	Model ModelConfig `yaml:"model"`
	Train TrainConfig `yaml:"train"`
	Data  DataConfig  `yaml:"data"`
}

// ModelConfig describes the network.
type ModelConfig struct {
	Hidden     []int  `yaml:"hidden"`     // Hidden layer widths
	Activation string `yaml:"activation"` // none, relu, sigmoid
	Init       string `yaml:"init"`       // uniform, xavier
}

// TrainConfig describes the training loop.
type TrainConfig struct {
	Epochs      int             `yaml:"epochs"`
	BatchSize   int             `yaml:"batch_size"` // 0 means full batch
	Loss        string          `yaml:"loss"`       // mse, l1, sse
	Seed        int64           `yaml:"seed"`
	ValFraction float64         `yaml:"val_fraction"`
	Workers     int             `yaml:"workers"` // Evaluation workers, 0 = NumCPU
	Optimizer   OptimizerConfig `yaml:"optimizer"`
}

// OptimizerConfig selects and tunes the optimizer.
type OptimizerConfig struct {
	Name     string  `yaml:"name"` // sgd, adam
	LR       float64 `yaml:"lr"`
	Decay    float64 `yaml:"decay"`
	Momentum float64 `yaml:"momentum"`
	Beta1    float64 `yaml:"beta1"`
	Beta2    float64 `yaml:"beta2"`
	Eps      float64 `yaml:"eps"`
}

// DataConfig selects the dataset. An empty Path generates a synthetic
// linear regression problem.
type DataConfig struct {
	Path     string  `yaml:"path"`
	Samples  int     `yaml:"samples"` // Max rows to load, or rows to generate
	Features int     `yaml:"features"`
	Noise    float64 `yaml:"noise"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Model: ModelConfig{
			Hidden:     []int{4},
			Activation: "relu",
			Init:       "uniform",
		},
		Train: TrainConfig{
			Epochs:      100,
			Loss:        "mse",
			Seed:        42,
			ValFraction: 0.2,
			Optimizer: OptimizerConfig{
				Name:  "sgd",
				LR:    0.01,
				Decay: 0.005,
			},
		},
		Data: DataConfig{
			Samples:  64,
			Features: 3,
			Noise:    0.01,
		},
	}
}

// Load reads the YAML file at path on top of Default and validates it.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "failed to open config %q", path)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config %q", path)
	}
	return cfg, nil
}

// Parse decodes YAML from r on top of Default and validates the result.
// Unknown keys are rejected.
func Parse(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, errors.WithStack(err)
	}

	cfg := Default()
	if len(bytes.TrimSpace(data)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, errors.Wrap(err, "failed to decode YAML")
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges that would otherwise fail deep inside training.
func (c Config) Validate() error {
	for i, h := range c.Model.Hidden {
		if h <= 0 {
			return errors.Wrapf(ErrInvalid, "model.hidden[%d] = %d, must be positive", i, h)
		}
	}
	if c.Train.Epochs < 0 {
		return errors.Wrapf(ErrInvalid, "train.epochs = %d, must not be negative", c.Train.Epochs)
	}
	if c.Train.BatchSize < 0 {
		return errors.Wrapf(ErrInvalid, "train.batch_size = %d, must not be negative", c.Train.BatchSize)
	}
	if c.Train.ValFraction < 0 || c.Train.ValFraction >= 1 {
		return errors.Wrapf(ErrInvalid, "train.val_fraction = %g, must be in [0, 1)", c.Train.ValFraction)
	}
	if d := c.Train.Optimizer.Decay; d < 0 || d >= 1 {
		return errors.Wrapf(ErrInvalid, "train.optimizer.decay = %g, must be in [0, 1)", d)
	}
	if c.Train.Optimizer.LR < 0 {
		return errors.Wrapf(ErrInvalid, "train.optimizer.lr = %g, must not be negative", c.Train.Optimizer.LR)
	}
	if c.Data.Path == "" && (c.Data.Samples <= 0 || c.Data.Features <= 0) {
		return errors.Wrapf(ErrInvalid, "synthetic data needs positive data.samples and data.features (got %d, %d)",
			c.Data.Samples, c.Data.Features)
	}
	return nil
}
