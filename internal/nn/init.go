package nn

import (
	"math"
	"math/rand"
)

// Initializer draws initial weights for a unit with the given fan-in and
// fan-out.
type Initializer func(rng *rand.Rand, fanIn, fanOut int) float64

// Uniform draws weights from U(-1, 1), independent of layer size.
func Uniform(rng *rand.Rand, _, _ int) float64 {
	return rng.Float64()*2.0 - 1.0
}

// Xavier (Glorot) initialization for weights.
//
// Draws from U(-sqrt(6/(fan_in + fan_out)), sqrt(6/(fan_in + fan_out))),
// which helps maintain variance of activations across layers.
func Xavier(rng *rand.Rand, fanIn, fanOut int) float64 {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
	return (rng.Float64()*2.0 - 1.0) * bound
}

// ParseInitializer maps a name ("uniform", "xavier") to an Initializer.
// An empty name selects Uniform.
func ParseInitializer(name string) (Initializer, error) {
	switch name {
	case "", "uniform":
		return Uniform, nil
	case "xavier":
		return Xavier, nil
	default:
		return nil, errorf(ErrUnknownInitializer, "%q", name)
	}
}
