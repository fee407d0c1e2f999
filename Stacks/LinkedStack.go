package Stacks

import (
	"fmt"
	"strings"

	"github.com/g-m-twostay/linked"
)

type node[T any] struct {
	v  T
	nx *node[T]
}

// LinkedStack is a Stack backed by a singly linked chain of nodes with first being the top.
// last points to the bottom node; it's set when pushing onto an empty stack and cleared when the stack empties.
// The zero value is an empty stack. It's not safe for concurrent use.
type LinkedStack[T any] struct {
	first, last *node[T]
	sz          uint
}

func New[T any]() *LinkedStack[T] {
	return new(LinkedStack[T])
}

func (s *LinkedStack[T]) Push(v T) {
	n := &node[T]{v: v}
	if s.first == nil {
		s.first, s.last = n, n
	} else {
		n.nx = s.first
		s.first = n
	}
	s.sz++
}

func (s *LinkedStack[T]) Pop() (T, error) {
	if s.first == nil {
		return *new(T), &linked.EmptyContainerError{Op: "pop", Container: "stack"}
	}
	n := s.first
	s.first = n.nx
	if s.first == nil {
		s.last = nil
	}
	s.sz--
	v := n.v
	n.v, n.nx = *new(T), nil
	return v, nil
}

func (s *LinkedStack[T]) Peek() (T, bool) {
	if s.first == nil {
		return *new(T), false
	}
	return s.first.v, true
}

func (s *LinkedStack[T]) IsEmpty() bool {
	return s.sz == 0
}

func (s *LinkedStack[T]) Size() uint {
	return s.sz
}

// Corrupt is O(n).
func (s *LinkedStack[T]) Corrupt() bool {
	if (s.sz == 0) != (s.first == nil) || (s.first == nil) != (s.last == nil) {
		return true
	}
	var c uint
	var prev *node[T]
	for cur := s.first; cur != nil; prev, cur = cur, cur.nx {
		if c++; c > s.sz {
			return true
		}
	}
	return c != s.sz || prev != s.last
}

// String lists the elements from top to bottom.
func (s *LinkedStack[T]) String() string {
	sb := strings.Builder{}
	sb.WriteString("Stack[")
	for cur := s.first; cur != nil; cur = cur.nx {
		if cur != s.first {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, cur.v)
	}
	sb.WriteByte(']')
	return sb.String()
}
