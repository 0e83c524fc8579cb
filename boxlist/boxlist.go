// Package boxlist is a generic singly-linked list in which the list owns its
// first node and every node owns the next one. No node is ever reachable from
// two places, so every restructuring operation moves nodes rather than
// sharing them.
package boxlist

import (
	"errors"
	"fmt"

	"github.com/goose-lang/primitive"
	"github.com/goose-lang/std"
)

var ErrIndexOutOfBounds = errors.New("boxlist: index out of bounds")

type node[T any] struct {
	data T
	next *node[T]
}

func newNode[T any](data T, next *node[T]) *node[T] {
	return &node[T]{data: data, next: next}
}

// List is a chain of exclusively owned nodes. The zero value is an empty list.
type List[T any] struct {
	head *node[T]
}

func New[T any]() *List[T] {
	return &List[T]{}
}

// Of builds a list holding vs in order.
func Of[T any](vs ...T) *List[T] {
	l := New[T]()
	for _, v := range vs {
		l.PushBack(v)
	}
	return l
}

// takeHead detaches the whole chain from l, leaving it empty.
func (l *List[T]) takeHead() *node[T] {
	head := l.head
	l.head = nil
	return head
}

func (l *List[T]) IsEmpty() bool {
	return l.head == nil
}

func (l *List[T]) HasExactlyOneElement() bool {
	return l.head != nil && l.head.next == nil
}

func (l *List[T]) Len() uint64 {
	var count = uint64(0)
	for n := l.head; n != nil; n = n.next {
		count = std.SumAssumeNoOverflow(count, 1)
	}
	return count
}

// Front returns the first element without removing it.
func (l *List[T]) Front() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.data, true
}

func (l *List[T]) PushFront(data T) {
	l.head = newNode(data, l.takeHead())
}

func (l *List[T]) PushBack(data T) {
	var current = &l.head
	for *current != nil {
		current = &(*current).next
	}
	*current = newNode[T](data, nil)
}

func (l *List[T]) PopFront() (T, bool) {
	head := l.takeHead()
	if head == nil {
		var zero T
		return zero, false
	}
	l.head = head.next
	return head.data, true
}

// PopBack removes the last element in a single forward pass, looking two
// nodes ahead so that the walk stops on the second-to-last node.
func (l *List[T]) PopBack() (T, bool) {
	if l.IsEmpty() {
		var zero T
		return zero, false
	}
	if l.HasExactlyOneElement() {
		head := l.takeHead()
		return head.data, true
	}
	for n := l.head; n != nil; n = n.next {
		// the single-element case is handled above, so n.next exists
		primitive.Assert(n.next != nil)
		if n.next.next == nil {
			last := n.next
			n.next = nil
			return last.data, true
		}
	}
	panic("boxlist: PopBack reached the end of a non-empty list")
}

// FirstIndexOf returns the index of the first element of l equal to data.
//
// This is a function rather than a method since it needs T to be comparable.
func FirstIndexOf[T comparable](l *List[T], data T) (uint64, bool) {
	var index = uint64(0)
	for n := l.head; n != nil; n = n.next {
		if n.data == data {
			return index, true
		}
		index++
	}
	return 0, false
}

// InsertAt inserts data so that it ends up at position index (0-based).
//
// Inserting past the end of the list appends instead of failing.
func (l *List[T]) InsertAt(index uint64, data T) {
	if index == 0 {
		l.PushFront(data)
		return
	}
	var current = l.head
	for i := uint64(0); i < index-1; i++ {
		if current == nil {
			break
		}
		current = current.next
	}
	if current == nil {
		l.PushBack(data)
		return
	}
	current.next = newNode(data, current.next)
}

// SplitAt moves the elements at positions 0 through index (inclusive) into
// the first returned list and the rest into the second. l is left empty.
//
// Splitting an empty list returns two empty lists. Otherwise index must be
// less than l.Len(); if it is not, l is unchanged and an error wrapping
// ErrIndexOutOfBounds is returned.
func (l *List[T]) SplitAt(index uint64) (*List[T], *List[T], error) {
	if l.IsEmpty() {
		return New[T](), New[T](), nil
	}
	length := l.Len()
	if index >= length {
		return nil, nil, fmt.Errorf("%w: split at %d in list of length %d",
			ErrIndexOutOfBounds, index, length)
	}
	first := &List[T]{head: l.takeHead()}
	if first.HasExactlyOneElement() || index == length-1 {
		return first, New[T](), nil
	}
	var n = first.head
	for i := uint64(0); i < index; i++ {
		n = n.next
	}
	second := &List[T]{head: n.next}
	n.next = nil
	return first, second, nil
}

// Merge appends all of other's elements to l, leaving other empty.
func (l *List[T]) Merge(other *List[T]) {
	if other == l || other.IsEmpty() {
		return
	}
	if l.IsEmpty() {
		l.head = other.takeHead()
		return
	}
	var tail = l.head
	for tail.next != nil {
		tail = tail.next
	}
	tail.next = other.takeHead()
}
