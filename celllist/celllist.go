// Package celllist is a singly-linked list whose nodes live in cells, so a
// node may be reached through several pointers and still be mutated. Every
// mutation borrows the node it touches; an aliasing mistake panics at the
// point of the conflicting borrow instead of corrupting the chain.
package celllist

import (
	"iter"

	"ownership_lists/cell"

	"github.com/goose-lang/primitive"
	"github.com/goose-lang/std"
)

type node[T any] struct {
	data T
	next *cell.Cell[node[T]]
}

func newCell[T any](data T) *cell.Cell[node[T]] {
	return cell.New(node[T]{data: data})
}

// pushBack appends to the chain starting at n, exclusively borrowing each
// following node while it recurses.
func (n *node[T]) pushBack(data T) {
	if n.next == nil {
		n.next = newCell(data)
		return
	}
	r := n.next.BorrowMut()
	defer r.Release()
	r.Get().pushBack(data)
}

type List[T any] struct {
	head *cell.Cell[node[T]]
}

// New returns a list holding the single element data.
func New[T any](data T) *List[T] {
	return &List[T]{head: newCell(data)}
}

func Empty[T any]() *List[T] {
	return &List[T]{}
}

func (l *List[T]) IsEmpty() bool {
	return l.head == nil
}

// nextOf reads the next pointer of c under a shared borrow.
func nextOf[T any](c *cell.Cell[node[T]]) *cell.Cell[node[T]] {
	r := c.Borrow()
	defer r.Release()
	return r.Get().next
}

func (l *List[T]) Len() uint64 {
	var count = uint64(0)
	for c := l.head; c != nil; c = nextOf(c) {
		count = std.SumAssumeNoOverflow(count, 1)
	}
	return count
}

func (l *List[T]) PushBack(data T) {
	if l.head == nil {
		l.head = newCell(data)
		return
	}
	r := l.head.BorrowMut()
	defer r.Release()
	r.Get().pushBack(data)
}

func (l *List[T]) PopFront() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	var data T
	var next *cell.Cell[node[T]]
	l.head.Update(func(n *node[T]) {
		data, next = n.data, n.next
		n.next = nil
	})
	l.head = next
	return data, true
}

// PopBack removes the last element. The walk holds a borrow on one node at a
// time; the last node is detached by clearing its predecessor's next under an
// exclusive borrow.
func (l *List[T]) PopBack() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	var prev *cell.Cell[node[T]]
	var last = l.head
	for {
		next := nextOf(last)
		if next == nil {
			break
		}
		prev, last = last, next
	}

	var data T
	last.Update(func(n *node[T]) {
		primitive.Assert(n.next == nil)
		data = n.data
	})
	if prev == nil {
		l.head = nil
	} else {
		prev.Update(func(n *node[T]) {
			primitive.Assert(n.next == last)
			n.next = nil
		})
	}
	return data, true
}

// All yields the elements in order. The current node stays borrowed while the
// loop body runs, so mutating the list from inside the loop panics.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		var c = l.head
		for c != nil {
			r := c.Borrow()
			n := r.Get()
			more := func() bool {
				defer r.Release()
				return yield(n.data)
			}()
			if !more {
				return
			}
			c = n.next
		}
	}
}
