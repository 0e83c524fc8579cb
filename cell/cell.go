// Package cell provides a mutable container that can be reached through any
// number of pointers while still allowing at most one writer at a time.
//
// The rule is the usual readers/writer one: either any number of shared
// borrows, or exactly one exclusive borrow. Unlike a lock, a conflicting
// borrow does not wait; it fails immediately, and the panicking variants
// treat that as a bug in the caller.
//
// A Cell is not safe for concurrent use. It checks aliasing within a single
// goroutine.
package cell

import (
	"errors"

	"github.com/goose-lang/primitive"
)

var (
	ErrAlreadyBorrowed = errors.New("cell: already borrowed")
	ErrMutablyBorrowed = errors.New("cell: already mutably borrowed")
)

type Cell[T any] struct {
	value T
	// number of live shared borrows, or -1 while exclusively borrowed
	borrows int64
}

func New[T any](v T) *Cell[T] {
	return &Cell[T]{value: v}
}

// Ref is a shared borrow of a Cell.
type Ref[T any] struct {
	c *Cell[T]
}

// RefMut is an exclusive borrow of a Cell.
type RefMut[T any] struct {
	c *Cell[T]
}

func (c *Cell[T]) TryBorrow() (*Ref[T], error) {
	if c.borrows < 0 {
		return nil, ErrMutablyBorrowed
	}
	c.borrows++
	return &Ref[T]{c: c}, nil
}

// Borrow is TryBorrow, but panics if the cell is exclusively borrowed.
func (c *Cell[T]) Borrow() *Ref[T] {
	r, err := c.TryBorrow()
	if err != nil {
		panic(err)
	}
	return r
}

func (c *Cell[T]) TryBorrowMut() (*RefMut[T], error) {
	if c.borrows != 0 {
		return nil, ErrAlreadyBorrowed
	}
	c.borrows = -1
	return &RefMut[T]{c: c}, nil
}

// BorrowMut is TryBorrowMut, but panics if the cell has any live borrow.
func (c *Cell[T]) BorrowMut() *RefMut[T] {
	r, err := c.TryBorrowMut()
	if err != nil {
		panic(err)
	}
	return r
}

// Update runs f with exclusive access to the value.
func (c *Cell[T]) Update(f func(v *T)) {
	r := c.BorrowMut()
	defer r.Release()
	f(r.Get())
}

// Get returns a copy of the borrowed value.
func (r *Ref[T]) Get() T {
	primitive.Assert(r.c != nil)
	return r.c.value
}

func (r *Ref[T]) Release() {
	primitive.Assert(r.c != nil)
	primitive.Assert(r.c.borrows > 0)
	r.c.borrows--
	r.c = nil
}

// Get returns a pointer to the value, valid until Release.
func (r *RefMut[T]) Get() *T {
	primitive.Assert(r.c != nil)
	return &r.c.value
}

func (r *RefMut[T]) Release() {
	primitive.Assert(r.c != nil)
	primitive.Assert(r.c.borrows == -1)
	r.c.borrows = 0
	r.c = nil
}
