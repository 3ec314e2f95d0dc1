package utils

// Stack is a slice backed LIFO container. The zero value is ready to use.
type Stack[T any] struct {
	data []T
}

func NewStack[T any](size int) *Stack[T] {
	s := &Stack[T]{}
	if size > 0 {
		s.data = make([]T, 0, size)
	}
	return s
}

func (s *Stack[T]) Push(v T) {
	s.data = append(s.data, v)
}

// Pop removes the top element. ok is false and the stack is untouched when it is empty.
func (s *Stack[T]) Pop() (v T, ok bool) {
	if len(s.data) == 0 {
		return v, false
	}
	v = s.data[len(s.data)-1]
	var zero T
	s.data[len(s.data)-1] = zero
	s.data = s.data[:len(s.data)-1]
	return v, true
}

func (s *Stack[T]) Peek() (v T, ok bool) {
	if len(s.data) == 0 {
		return v, false
	}
	return s.data[len(s.data)-1], true
}

func (s *Stack[T]) Len() int {
	return len(s.data)
}

func (s *Stack[T]) Reset() {
	clear(s.data)
	s.data = s.data[:0]
}
