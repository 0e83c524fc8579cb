// Package enumlist is a singly-linked list of uint64 written as a recursive
// tagged union: a list is either Empty or an Elem holding a value and the rest
// of the list. There is no separate node type; every suffix is itself a List.
package enumlist

import (
	"fmt"
	"iter"
	"strings"

	"github.com/goose-lang/primitive"
	"github.com/goose-lang/std"
)

type Kind uint8

const (
	Empty Kind = iota
	Elem
)

// List is either Empty or an Elem that exclusively owns rest.
//
// The zero value is Empty. An Elem always has a non-nil rest.
type List struct {
	kind Kind
	val  uint64
	rest *List
}

func New() *List {
	return &List{}
}

func singleton(v uint64) List {
	return List{kind: Elem, val: v, rest: &List{}}
}

// take moves the contents of l out, leaving Empty in its place.
func (l *List) take() List {
	return l.replace(List{})
}

// replace stores x in l and returns whatever was there before.
func (l *List) replace(x List) List {
	old := *l
	*l = x
	return old
}

func (l *List) Kind() Kind {
	return l.kind
}

// Val returns the value at the head of the list, if any.
func (l *List) Val() (uint64, bool) {
	if l.kind == Empty {
		return 0, false
	}
	return l.val, true
}

func (l *List) IsEmpty() bool {
	return l.kind == Empty
}

func (l *List) Len() uint64 {
	var count = uint64(0)
	var head = l
	for head.kind == Elem {
		count = std.SumAssumeNoOverflow(count, 1)
		head = head.rest
	}
	return count
}

func (l *List) PushFront(v uint64) {
	old := l.take()
	*l = List{kind: Elem, val: v, rest: &old}
}

func (l *List) PushBack(v uint64) {
	if l.IsEmpty() {
		*l = singleton(v)
		return
	}
	var head = l
	for head.rest.kind == Elem {
		head = head.rest
	}
	head.rest.replace(singleton(v))
}

// PopBack removes the last element. The boolean is false if the list was
// empty.
func (l *List) PopBack() (uint64, bool) {
	if l.IsEmpty() {
		return 0, false
	}
	// only one element: the whole list becomes Empty
	if l.rest.IsEmpty() {
		tail := l.take()
		return tail.val, true
	}
	var head = l
	for head.kind == Elem {
		next := head.rest
		primitive.Assert(next != nil)
		// look two ahead so head ends up on the second-to-last element
		if next.kind == Elem && next.rest.IsEmpty() {
			tail := next.take()
			return tail.val, true
		}
		head = next
	}
	panic("enumlist: PopBack walked off a non-empty list")
}

// PopFront removes the first element. The boolean is false if the list was
// empty.
func (l *List) PopFront() (uint64, bool) {
	old := l.take()
	if old.kind == Empty {
		return 0, false
	}
	*l = old.rest.take()
	return old.val, true
}

// Find returns the index of the first element equal to target.
func (l *List) Find(target uint64) (uint64, bool) {
	var idx = uint64(0)
	for v := range l.All() {
		if v == target {
			return idx, true
		}
		idx++
	}
	return 0, false
}

// All iterates over the values in the list without modifying it.
func (l *List) All() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for head := l; head.kind == Elem; head = head.rest {
			if !yield(head.val) {
				return
			}
		}
	}
}

// Equal reports whether l and other have the same shape and values.
func (l *List) Equal(other *List) bool {
	if l.kind != other.kind {
		return false
	}
	if l.kind == Empty {
		return true
	}
	return l.val == other.val && l.rest.Equal(other.rest)
}

// String renders one value per line.
func (l *List) String() string {
	var b strings.Builder
	for v := range l.All() {
		fmt.Fprintf(&b, "%d\n", v)
	}
	return b.String()
}
