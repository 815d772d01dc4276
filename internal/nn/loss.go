package nn

import (
	"github.com/born-ml/micrograd/internal/autodiff"
)

// Loss reduces predictions and targets to one scalar value to minimize.
type Loss interface {
	// Forward pairs predictions[i] with targets[i] and returns the loss.
	// Returns ErrShapeMismatch for unequal lengths and ErrEmptyInput for
	// empty sequences.
	Forward(predictions, targets []*autodiff.Value) (*autodiff.Value, error)
}

// ParseLoss maps a name ("mse", "l1", "sse") to a Loss.
func ParseLoss(name string) (Loss, error) {
	switch name {
	case "", "mse":
		return NewMSELoss(), nil
	case "l1":
		return NewL1Loss(), nil
	case "sse":
		return NewSumSquaredLoss(), nil
	default:
		return nil, errorf(ErrUnknownLoss, "%q", name)
	}
}

// MSELoss computes Mean Squared Error loss.
//
// Loss = mean((predictions - targets)²)
//
// MSE is commonly used for regression tasks where the goal is to predict
// continuous values.
type MSELoss struct{}

// NewMSELoss creates a new MSE loss function.
func NewMSELoss() *MSELoss {
	return &MSELoss{}
}

// Forward computes the MSE loss.
func (m *MSELoss) Forward(predictions, targets []*autodiff.Value) (*autodiff.Value, error) {
	terms, err := pairwise(predictions, targets, func(d *autodiff.Value) *autodiff.Value {
		return d.Pow(2)
	})
	if err != nil {
		return nil, err
	}
	return autodiff.Sum(terms...).MulScalar(1.0 / float64(len(terms))), nil
}

// L1Loss computes Mean Absolute Error loss.
//
// Loss = mean(|predictions - targets|)
type L1Loss struct{}

// NewL1Loss creates a new L1 loss function.
func NewL1Loss() *L1Loss {
	return &L1Loss{}
}

// Forward computes the L1 loss.
func (l *L1Loss) Forward(predictions, targets []*autodiff.Value) (*autodiff.Value, error) {
	terms, err := pairwise(predictions, targets, (*autodiff.Value).Abs)
	if err != nil {
		return nil, err
	}
	return autodiff.Sum(terms...).MulScalar(1.0 / float64(len(terms))), nil
}

// SumSquaredLoss computes the sum of squared errors without averaging.
//
// Loss = Σ (predictions - targets)²
type SumSquaredLoss struct{}

// NewSumSquaredLoss creates a new sum-of-squares loss function.
func NewSumSquaredLoss() *SumSquaredLoss {
	return &SumSquaredLoss{}
}

// Forward computes the summed squared error.
func (s *SumSquaredLoss) Forward(predictions, targets []*autodiff.Value) (*autodiff.Value, error) {
	terms, err := pairwise(predictions, targets, func(d *autodiff.Value) *autodiff.Value {
		return d.Mul(d)
	})
	if err != nil {
		return nil, err
	}
	return autodiff.Sum(terms...), nil
}

// pairwise validates lengths and returns f(predictions[i] - targets[i]).
func pairwise(predictions, targets []*autodiff.Value, f func(*autodiff.Value) *autodiff.Value) ([]*autodiff.Value, error) {
	if len(predictions) != len(targets) {
		return nil, errorf(ErrShapeMismatch, "%d predictions, %d targets", len(predictions), len(targets))
	}
	if len(predictions) == 0 {
		return nil, errorf(ErrEmptyInput, "no predictions")
	}

	terms := make([]*autodiff.Value, len(predictions))
	for i := range predictions {
		terms[i] = f(predictions[i].Sub(targets[i]))
	}
	return terms, nil
}
