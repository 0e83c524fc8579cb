package boxlist

import "iter"

// All iterates over the elements in order. It does not modify l and can be
// called again to restart from the front.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.data) {
				return
			}
		}
	}
}

// Pointers iterates over pointers to the elements, for updating them in
// place. Writing through the pointers changes element values but never the
// shape of the list.
func (l *List[T]) Pointers() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(&n.data) {
				return
			}
		}
	}
}

// Drain removes elements from the front as it yields them. Stopping early
// leaves the remaining elements in l.
func (l *List[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			data, ok := l.PopFront()
			if !ok {
				return
			}
			if !yield(data) {
				return
			}
		}
	}
}
