// Package dlstack provides a LIFO stack over doubly-linked nodes.
// Besides the usual push/pop/peek it can remove an element at any depth,
// which a plain slice-backed stack cannot do without shifting.
package dlstack

import (
	"fmt"
	"strings"
)

// node holds one element. prev points toward the bottom and owns the rest
// of the chain; next points toward the top and is only bookkeeping.
type node[T any] struct {
	value T
	prev  *node[T]
	next  *node[T]
}

// Stack is a doubly-linked stack. The zero value is an empty stack ready for use.
type Stack[T any] struct {
	top   *node[T]
	count int
}

// New creates an empty stack
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push places value on top of the stack
func (s *Stack[T]) Push(value T) {
	n := &node[T]{value: value}
	if s.top != nil {
		n.prev = s.top
		s.top.next = n
	}
	s.top = n
	s.count++
}

// Pop removes and returns the top element.
// Returns ErrEmptyStack if the stack holds nothing.
func (s *Stack[T]) Pop() (T, error) {
	if s.top == nil {
		var zero T
		return zero, ErrEmptyStack
	}

	n := s.top
	s.top = n.prev
	if s.top != nil {
		s.top.next = nil
	}
	n.prev = nil
	s.count--
	return n.value, nil
}

// PopAt removes and returns the k-th element counting from the top, where
// the top itself is position 1. PopAt(1) is the same as Pop.
// Returns ErrInvalidPosition if k is outside [1, Size()].
func (s *Stack[T]) PopAt(k int) (T, error) {
	if k <= 0 || k > s.count {
		var zero T
		return zero, fmt.Errorf("%w: k=%d size=%d", ErrInvalidPosition, k, s.count)
	}

	target := s.top
	for i := 1; i < k; i++ {
		target = target.prev
	}

	switch {
	case target == s.top:
		s.top = target.prev
		if s.top != nil {
			s.top.next = nil
		}
	case target.prev == nil:
		// bottom
		target.next.prev = nil
	default:
		target.next.prev = target.prev
		target.prev.next = target.next
	}

	target.prev, target.next = nil, nil
	s.count--
	return target.value, nil
}

// Peek returns the top element without removing it.
// Returns ErrEmptyStack if the stack holds nothing.
func (s *Stack[T]) Peek() (T, error) {
	if s.top == nil {
		var zero T
		return zero, ErrEmptyStack
	}
	return s.top.value, nil
}

// IsEmpty returns true if the stack has no elements
func (s *Stack[T]) IsEmpty() bool {
	return s.top == nil
}

// Size returns the number of elements in the stack
func (s *Stack[T]) Size() int {
	return s.count
}

// Each calls fn for every element from top to bottom
func (s *Stack[T]) Each(fn func(value T)) {
	for n := s.top; n != nil; n = n.prev {
		fn(n.value)
	}
}

// Values returns the elements from top to bottom
func (s *Stack[T]) Values() []T {
	values := make([]T, 0, s.count)
	s.Each(func(value T) {
		values = append(values, value)
	})
	return values
}

// String renders the stack top to bottom, e.g. "[c, b, a]" after pushing a, b, c.
func (s *Stack[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for n := s.top; n != nil; n = n.prev {
		fmt.Fprintf(&sb, "%v", n.value)
		if n.prev != nil {
			sb.WriteString(", ")
		}
	}
	sb.WriteByte(']')
	return sb.String()
}
