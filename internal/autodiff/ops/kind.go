package ops

import "fmt"

// Kind tags which operation produced a value.
type Kind int

const (
	// Leaf marks a value created directly from a float (no operation).
	Leaf Kind = iota
	Add
	Mul
	Pow
	Exp
	ReLU
	Sigmoid
)

var kindNames = [...]string{
	Leaf:    "leaf",
	Add:     "add",
	Mul:     "mul",
	Pow:     "pow",
	Exp:     "exp",
	ReLU:    "relu",
	Sigmoid: "sigmoid",
}

// String returns the lower-case operation name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}
