// Package stack holds the integer stack used by the stack solvers and the
// command dispatcher that drives it.
package stack

import (
	"errors"

	"github.com/rnetx/judge/utils"
)

var ErrEmpty = errors.New("stack is empty")

type IntegerStack struct {
	s utils.Stack[int]
}

func NewIntegerStack(size int) *IntegerStack {
	return &IntegerStack{s: *utils.NewStack[int](size)}
}

func (s *IntegerStack) Push(v int) {
	s.s.Push(v)
}

// Pop removes and returns the top. An empty stack is left unchanged and ok is false.
func (s *IntegerStack) Pop() (int, bool) {
	return s.s.Pop()
}

// MustPop is Pop for callers that treat an empty stack as an input error.
func (s *IntegerStack) MustPop() (int, error) {
	v, ok := s.s.Pop()
	if !ok {
		return 0, ErrEmpty
	}
	return v, nil
}

func (s *IntegerStack) Top() (int, bool) {
	return s.s.Peek()
}

func (s *IntegerStack) Size() int {
	return s.s.Len()
}

func (s *IntegerStack) IsEmpty() bool {
	return s.s.Len() == 0
}
