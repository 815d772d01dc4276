// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/born-ml/micrograd/internal/nn"
)

// Initializers

// Initializer draws an initial weight given the fan-in and fan-out of a unit.
type Initializer = nn.Initializer

// Uniform draws weights from U(-1, 1).
func Uniform(rng *rand.Rand, fanIn, fanOut int) float64 {
	return nn.Uniform(rng, fanIn, fanOut)
}

// Xavier draws weights from U(-sqrt(6/(fanIn+fanOut)), sqrt(6/(fanIn+fanOut))).
func Xavier(rng *rand.Rand, fanIn, fanOut int) float64 {
	return nn.Xavier(rng, fanIn, fanOut)
}

// Layers

// Neuron computes b + Σ w_i * x_i.
type Neuron = nn.Neuron

// NewNeuron creates a neuron with inFeatures weights drawn by init and a
// zero bias. A nil init selects Uniform.
func NewNeuron(name string, inFeatures, fanOut int, rng *rand.Rand, init Initializer) *Neuron {
	return nn.NewNeuron(name, inFeatures, fanOut, rng, init)
}

// Layer is a row of neurons reading the same inputs.
type Layer = nn.Layer

// NewLayer creates a layer of outFeatures neurons.
//
// Example:
//
//	rng := rand.New(rand.NewSource(1))
//	layer := nn.NewLayer("hidden", 3, 4, rng, nn.Xavier)
func NewLayer(name string, inFeatures, outFeatures int, rng *rand.Rand, init Initializer) *Layer {
	return nn.NewLayer(name, inFeatures, outFeatures, rng, init)
}

// MLP is a multi-layer perceptron.
type MLP = nn.MLP

// MLPConfig describes an MLP.
type MLPConfig = nn.MLPConfig

// NewMLP builds the network described by cfg.
func NewMLP(cfg MLPConfig, rng *rand.Rand) *MLP {
	return nn.NewMLP(cfg, rng)
}

// Containers

// Sequential chains modules, feeding each one's outputs to the next.
type Sequential = nn.Sequential

// NewSequential creates a Sequential container.
//
// Example:
//
//	model := nn.NewSequential(
//	    nn.NewLayer("layer_1", 2, 8, rng, nil),
//	    nn.NewReLU(),
//	    nn.NewLayer("layer_2", 8, 1, rng, nil),
//	)
func NewSequential(modules ...Module) *Sequential {
	return nn.NewSequential(modules...)
}

// Activations

// Activation names a hidden-layer nonlinearity.
type Activation = nn.Activation

// Supported activations.
const (
	ActivationNone    = nn.ActivationNone
	ActivationReLU    = nn.ActivationReLU
	ActivationSigmoid = nn.ActivationSigmoid
)

// ParseActivation validates an activation name.
func ParseActivation(name string) (Activation, error) {
	return nn.ParseActivation(name)
}

// ReLU applies max(0, x) element-wise.
type ReLU = nn.ReLU

// NewReLU creates a ReLU activation module.
func NewReLU() *ReLU {
	return nn.NewReLU()
}

// Sigmoid applies 1 / (1 + exp(-x)) element-wise.
type Sigmoid = nn.Sigmoid

// NewSigmoid creates a Sigmoid activation module.
func NewSigmoid() *Sigmoid {
	return nn.NewSigmoid()
}

// Loss Functions

// Loss reduces predictions and targets to a scalar.
type Loss = nn.Loss

// ParseLoss returns the loss named "mse", "l1" or "sse".
func ParseLoss(name string) (Loss, error) {
	return nn.ParseLoss(name)
}

// MSELoss is the mean of squared differences.
type MSELoss = nn.MSELoss

// NewMSELoss creates a mean squared error loss.
func NewMSELoss() *MSELoss {
	return nn.NewMSELoss()
}

// L1Loss is the mean of absolute differences.
type L1Loss = nn.L1Loss

// NewL1Loss creates a mean absolute error loss.
func NewL1Loss() *L1Loss {
	return nn.NewL1Loss()
}

// SumSquaredLoss is the sum of squared differences.
type SumSquaredLoss = nn.SumSquaredLoss

// NewSumSquaredLoss creates a sum of squared errors loss.
func NewSumSquaredLoss() *SumSquaredLoss {
	return nn.NewSumSquaredLoss()
}

// Errors returned by this package.
var (
	ErrShapeMismatch      = nn.ErrShapeMismatch
	ErrEmptyInput         = nn.ErrEmptyInput
	ErrMissingParameter   = nn.ErrMissingParameter
	ErrUnknownActivation  = nn.ErrUnknownActivation
	ErrUnknownLoss        = nn.ErrUnknownLoss
	ErrUnknownInitializer = nn.ErrUnknownInitializer
)
