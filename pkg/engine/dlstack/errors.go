package dlstack

import "errors"

var (
	// ErrEmptyStack is returned by Pop and Peek when the stack holds no elements.
	ErrEmptyStack = errors.New("dlstack: stack is empty")
	// ErrInvalidPosition is returned by PopAt when k is outside [1, Size()].
	ErrInvalidPosition = errors.New("dlstack: position out of range")
)
