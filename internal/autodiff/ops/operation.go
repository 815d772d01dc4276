// Package ops defines operation interfaces and implementations for scalar
// automatic differentiation.
//
// Each operation implements the Operation interface, which provides:
//   - Forward pass: computed by the engine when the derived value is built
//   - Backward pass: computes local gradient contributions for inputs given
//     the output gradient
//
// Supported operations:
//   - AddOp: addition (d(a+b)/da = 1, d(a+b)/db = 1)
//   - MulOp: multiplication (d(a*b)/da = b, d(a*b)/db = a)
//   - PowOp: power by a constant exponent (d(x^k)/dx = k*x^(k-1))
//   - ExpOp: exponential (d(exp(x))/dx = exp(x))
//   - ReLUOp: rectified linear unit (d(ReLU(x))/dx = 1 if x > 0, else 0)
//   - SigmoidOp: logistic sigmoid (dσ/dx = σ(x) * (1 - σ(x)))
//
// Negation, subtraction, division and absolute value are composed from
// these by the engine and have no operation of their own.
package ops

// Node is the view of a graph value that operations need during the
// backward pass. Operations only read data; gradient accumulation is done
// by the executor.
type Node interface {
	Data() float64
}

// Operation represents a differentiable operation in the computation graph.
// Each operation records its inputs during the forward pass and computes
// input gradient contributions during the backward pass.
type Operation interface {
	// Forward returns the output value computed from the inputs' data.
	Forward() float64

	// Backward computes gradient contributions for inputs given the output
	// gradient. Returns one contribution per entry of Inputs(), in order.
	//
	// Example for AddOp:
	//   inputs: [a, b]
	//   outputGrad: dL/d(a+b)
	//   returns: [dL/d(a+b), dL/d(a+b)]
	Backward(outputGrad float64) []float64

	// Inputs returns the input nodes for this operation. The same node may
	// appear more than once (x*x); each position gets its own contribution.
	Inputs() []Node

	// Kind identifies the operation.
	Kind() Kind
}
