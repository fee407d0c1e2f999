package Queues

import (
	"fmt"
	"strings"

	"github.com/g-m-twostay/linked"
)

type node[T any] struct {
	v  T
	nx *node[T]
}

// LinkedQueue is a Queue backed by a singly linked chain of nodes. Elements enter at last and leave at first.
// The zero value is an empty queue. It's not safe for concurrent use.
type LinkedQueue[T any] struct {
	first, last *node[T]
	sz          uint
}

func New[T any]() *LinkedQueue[T] {
	return new(LinkedQueue[T])
}

func (q *LinkedQueue[T]) Enqueue(v T) {
	n := &node[T]{v: v}
	if q.first == nil {
		q.first, q.last = n, n
	} else {
		q.last.nx = n
		q.last = n
	}
	q.sz++
}

func (q *LinkedQueue[T]) Dequeue() (T, error) {
	if q.first == nil {
		return *new(T), &linked.EmptyContainerError{Op: "dequeue", Container: "queue"}
	}
	n := q.first
	q.first = n.nx
	if q.first == nil {
		q.last = nil
	}
	q.sz--
	v := n.v
	n.v, n.nx = *new(T), nil
	return v, nil
}

func (q *LinkedQueue[T]) Peek() (T, bool) {
	if q.first == nil {
		return *new(T), false
	}
	return q.first.v, true
}

func (q *LinkedQueue[T]) IsEmpty() bool {
	return q.sz == 0
}

func (q *LinkedQueue[T]) Size() uint {
	return q.sz
}

// Corrupt walks the whole chain, it's O(n).
func (q *LinkedQueue[T]) Corrupt() bool {
	if (q.sz == 0) != (q.first == nil) || (q.first == nil) != (q.last == nil) {
		return true
	}
	var c uint
	var prev *node[T]
	for cur := q.first; cur != nil; prev, cur = cur, cur.nx {
		if c++; c > q.sz {
			return true //too long or cyclic
		}
	}
	return c != q.sz || prev != q.last
}

// String lists the elements from front to back.
func (q *LinkedQueue[T]) String() string {
	sb := strings.Builder{}
	sb.WriteString("Queue[")
	for cur := q.first; cur != nil; cur = cur.nx {
		if cur != q.first {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, cur.v)
	}
	sb.WriteByte(']')
	return sb.String()
}
