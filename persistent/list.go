// Package persistent implements an immutable singly-linked list with
// structural sharing.
//
// Nodes are never modified after they are created, so any number of lists may
// point into the same chain. "Modifying" a list means building a new head in
// front of the shared suffix. A node lives as long as some list can still
// reach it.
package persistent

import (
	"iter"

	"github.com/goose-lang/std"
)

type node[T any] struct {
	data T
	next *node[T]
}

// List is a persistent list. It is a small value and is meant to be passed
// and stored by value; the zero value is the empty list.
//
//	list1 = A -> B -> C
//	list2 = list1.Tail()          = B -> C
//	list3 = list2.PushFront(X)    = X -> B -> C
//
// list1, list2 and list3 all share the nodes B and C.
type List[T any] struct {
	head *node[T]
}

func Empty[T any]() List[T] {
	return List[T]{}
}

// Of builds the list vs[0] -> vs[1] -> ... by pushing in reverse.
func Of[T any](vs ...T) List[T] {
	var l = Empty[T]()
	for i := len(vs) - 1; i >= 0; i-- {
		l = l.PushFront(vs[i])
	}
	return l
}

func (l List[T]) IsEmpty() bool {
	return l.head == nil
}

func (l List[T]) Len() uint64 {
	var count = uint64(0)
	for n := l.head; n != nil; n = n.next {
		count = std.SumAssumeNoOverflow(count, 1)
	}
	return count
}

// PushFront returns a new list with data in front of l. l itself is
// unaffected.
func (l List[T]) PushFront(data T) List[T] {
	return List[T]{head: &node[T]{data: data, next: l.head}}
}

// Tail returns the list after the first element. The tail of an empty list is
// empty.
func (l List[T]) Tail() List[T] {
	if l.head == nil {
		return l
	}
	return List[T]{head: l.head.next}
}

func (l List[T]) Peek() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.data, true
}

// Pop returns the first element together with the rest of the list.
func (l List[T]) Pop() (T, List[T], bool) {
	data, ok := l.Peek()
	return data, l.Tail(), ok
}

func (l List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.data) {
				return
			}
		}
	}
}

func (l List[T]) last() *node[T] {
	var n = l.head
	if n == nil {
		return nil
	}
	for n.next != nil {
		n = n.next
	}
	return n
}

// SharesTail reports whether l and other end in the same physical nodes, as
// opposed to merely holding equal values. Two empty lists share nothing.
func (l List[T]) SharesTail(other List[T]) bool {
	last := l.last()
	return last != nil && last == other.last()
}
