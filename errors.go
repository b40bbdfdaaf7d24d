package rgba

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned when the length of some pixel data does
	// not match the declared dimensions
	ErrInvalidSize = errors.New("rgba: invalid size")

	// ErrInvalidElement is returned when a list of tuples contains
	// something other than a tuple
	ErrInvalidElement = errors.New("rgba: invalid element")

	// ErrType is returned for an argument or picker of the wrong kind
	ErrType = errors.New("rgba: invalid type")

	// ErrRange is returned for a value outside its permitted range
	ErrRange = errors.New("rgba: out of range")

	// ErrBadRefinement is returned for an unsupported combination of
	// options
	ErrBadRefinement = errors.New("rgba: incompatible option")

	// ErrImmutable is returned when mutating protected storage
	ErrImmutable = errors.New("rgba: image is protected")

	// ErrInvalidArgument is returned for an argument that cannot be used
	ErrInvalidArgument = errors.New("rgba: invalid argument")
)

// OperandError records the failed operation and the value that caused it.
type OperandError struct {
	Op      string
	Operand Value
	Err     error
}

func (e *OperandError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, Format(e.Operand), e.Err)
}

func (e *OperandError) Unwrap() error {
	return e.Err
}

func newError(op string, err error, operand Value) error {
	return &OperandError{
		Op:      op,
		Operand: operand,
		Err:     err,
	}
}
