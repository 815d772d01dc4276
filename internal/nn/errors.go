package nn

import "github.com/pkg/errors"

var (
	// ErrShapeMismatch is returned when two sequences that must pair up
	// element by element have different lengths.
	ErrShapeMismatch = errors.New("nn: shape mismatch")

	// ErrEmptyInput is returned when a loss is computed over no elements.
	ErrEmptyInput = errors.New("nn: empty input")

	// ErrMissingParameter is returned when a state dict lacks a parameter.
	ErrMissingParameter = errors.New("nn: missing parameter")

	// ErrUnknownActivation is returned when an activation name is not known.
	ErrUnknownActivation = errors.New("nn: unknown activation")

	// ErrUnknownLoss is returned when a loss name is not known.
	ErrUnknownLoss = errors.New("nn: unknown loss")

	// ErrUnknownInitializer is returned when an initializer name is not known.
	ErrUnknownInitializer = errors.New("nn: unknown initializer")
)

func errorf(sentinel error, format string, args ...any) error {
	return errors.Wrapf(sentinel, format, args...)
}
