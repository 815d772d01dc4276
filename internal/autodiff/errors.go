package autodiff

import "github.com/pkg/errors"

var (
	// ErrInvalidOperand is returned when a value that is neither a float nor
	// a *Value is combined with the graph.
	ErrInvalidOperand = errors.New("autodiff: invalid operand type")

	// ErrDerivedMutation is returned when the data of a derived value is
	// overwritten.
	ErrDerivedMutation = errors.New("autodiff: derived value is immutable")
)
