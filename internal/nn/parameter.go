package nn

import "github.com/born-ml/micrograd/internal/autodiff"

// Parameter represents a trainable parameter in a neural network.
//
// A Parameter wraps a leaf autodiff.Value. Forward passes compose the leaf
// into derived values, Backward deposits its gradient, and optimizers update
// its data in place.
//
// Example:
//
//	w := nn.NewParameter("layer_1.neuron_0.w_0", 0.25)
//	y := w.Value().Mul(x)
//	y.Backward()
//	fmt.Println(w.Grad())
type Parameter struct {
	name  string          // Parameter name (e.g., "layer_1.neuron_0.b")
	value *autodiff.Value // Always a leaf
}

// NewParameter creates a new trainable parameter holding data.
func NewParameter(name string, data float64) *Parameter {
	return &Parameter{
		name:  name,
		value: autodiff.NewValue(data),
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Value returns the leaf value to use in forward passes.
func (p *Parameter) Value() *autodiff.Value {
	return p.value
}

// Data returns the current parameter value.
func (p *Parameter) Data() float64 {
	return p.value.Data()
}

// SetData overwrites the parameter value.
func (p *Parameter) SetData(x float64) {
	// The wrapped value is created as a leaf and never replaced.
	if err := p.value.SetData(x); err != nil {
		panic(err)
	}
}

// Grad returns the gradient accumulated by the last backward pass.
func (p *Parameter) Grad() float64 {
	return p.value.Grad()
}

// ZeroGrad resets the gradient to 0.
//
// This should be called before each training iteration to avoid
// accumulating gradients from previous iterations.
func (p *Parameter) ZeroGrad() {
	p.value.ZeroGrad()
}

// String implements fmt.Stringer.
func (p *Parameter) String() string {
	return p.name + "=" + p.value.String()
}
