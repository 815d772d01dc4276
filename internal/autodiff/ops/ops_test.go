package ops_test

import (
	"math"
	"testing"

	"github.com/born-ml/micrograd/internal/autodiff/ops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// constant is a fixed-data Node for exercising operations in isolation.
type constant float64

func (c constant) Data() float64 { return float64(c) }

// TestAddOp_Backward tests AddOp backward pass.
func TestAddOp_Backward(t *testing.T) {
	op := ops.NewAddOp(constant(1), constant(4))

	assert.Equal(t, 5.0, op.Forward())
	assert.Equal(t, []float64{2, 2}, op.Backward(2))
	assert.Equal(t, ops.Add, op.Kind())
	require.Len(t, op.Inputs(), 2)
}

// TestMulOp_Backward tests MulOp backward pass.
func TestMulOp_Backward(t *testing.T) {
	op := ops.NewMulOp(constant(2), constant(-3))

	assert.Equal(t, -6.0, op.Forward())

	// grad_a = outputGrad * b, grad_b = outputGrad * a
	assert.Equal(t, []float64{-3, 2}, op.Backward(1))
	assert.Equal(t, []float64{-1.5, 1}, op.Backward(0.5))
}

// TestMulOp_SameInput tests x*x keeps one contribution per position.
func TestMulOp_SameInput(t *testing.T) {
	x := constant(3)
	op := ops.NewMulOp(x, x)

	grads := op.Backward(1)
	require.Len(t, grads, 2)
	assert.Equal(t, 6.0, grads[0]+grads[1])
}

func TestPowOp(t *testing.T) {
	tests := []struct {
		name     string
		x, k     float64
		forward  float64
		gradient float64
	}{
		{"square", 3, 2, 9, 6},
		{"reciprocal", 2, -1, 0.5, -0.25},
		{"sqrt", 4, 0.5, 2, 0.25},
		{"identity", 7, 1, 7, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := ops.NewPowOp(constant(tt.x), tt.k)
			assert.InDelta(t, tt.forward, op.Forward(), 1e-12)
			assert.InDelta(t, tt.gradient, op.Backward(1)[0], 1e-12)
			assert.Equal(t, tt.k, op.Exponent())
		})
	}
}

// TestPowOp_NegativeBaseFractional checks domain errors surface as NaN.
func TestPowOp_NegativeBaseFractional(t *testing.T) {
	op := ops.NewPowOp(constant(-4), 0.5)
	assert.True(t, math.IsNaN(op.Forward()))
}

func TestExpOp(t *testing.T) {
	op := ops.NewExpOp(constant(1))

	assert.InDelta(t, math.E, op.Forward(), 1e-12)
	assert.InDelta(t, 2*math.E, op.Backward(2)[0], 1e-12)
}

func TestReLUOp(t *testing.T) {
	tests := []struct {
		x        float64
		forward  float64
		gradient float64
	}{
		{2.5, 2.5, 1},
		{-1, 0, 0},
		{0, 0, 0},
	}
	for _, tt := range tests {
		op := ops.NewReLUOp(constant(tt.x))
		assert.Equal(t, tt.forward, op.Forward(), "forward at %v", tt.x)
		assert.Equal(t, tt.gradient, op.Backward(1)[0], "gradient at %v", tt.x)
	}
}

func TestSigmoidOp(t *testing.T) {
	op := ops.NewSigmoidOp(constant(0))
	assert.InDelta(t, 0.5, op.Forward(), 1e-12)
	assert.InDelta(t, 0.25, op.Backward(1)[0], 1e-12)

	op = ops.NewSigmoidOp(constant(2))
	s := 1 / (1 + math.Exp(-2))
	assert.InDelta(t, s, op.Forward(), 1e-12)
	assert.InDelta(t, 3*s*(1-s), op.Backward(3)[0], 1e-12)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "leaf", ops.Leaf.String())
	assert.Equal(t, "sigmoid", ops.Sigmoid.String())
	assert.Equal(t, "Kind(42)", ops.Kind(42).String())
}
