package autodiff

import "github.com/pkg/errors"

// Lift converts x into a graph value.
//
// A *Value is returned as is. A float64 or float32 becomes a new leaf. Any
// other type, including integers, fails with ErrInvalidOperand naming the
// offending type.
func Lift(x any) (*Value, error) {
	switch v := x.(type) {
	case *Value:
		if v == nil {
			return nil, errors.Wrap(ErrInvalidOperand, "nil *Value")
		}
		return v, nil
	case float64:
		return NewValue(v), nil
	case float32:
		return NewValue(float64(v)), nil
	default:
		return nil, errors.Wrapf(ErrInvalidOperand, "cannot combine value with %T", x)
	}
}

// AddAny returns v + x after lifting x.
func (v *Value) AddAny(x any) (*Value, error) {
	other, err := Lift(x)
	if err != nil {
		return nil, err
	}
	return v.Add(other), nil
}

// SubAny returns v - x after lifting x.
func (v *Value) SubAny(x any) (*Value, error) {
	other, err := Lift(x)
	if err != nil {
		return nil, err
	}
	return v.Sub(other), nil
}

// MulAny returns v * x after lifting x.
func (v *Value) MulAny(x any) (*Value, error) {
	other, err := Lift(x)
	if err != nil {
		return nil, err
	}
	return v.Mul(other), nil
}

// DivAny returns v / x after lifting x.
func (v *Value) DivAny(x any) (*Value, error) {
	other, err := Lift(x)
	if err != nil {
		return nil, err
	}
	return v.Div(other), nil
}
