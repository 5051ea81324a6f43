// Package seq provides a circular doubly linked list and a family of
// stable, adaptive merge sorts (timsort variants and the kernel's
// bottom-up list sort) that operate on it by rewiring links in place.
//
// All top level structures in this package can be trivially
// constructed. These structures are not safe for access from multiple
// concurrent go routines: a sort owns the list exclusively until it
// returns.
package seq

import (
	"fmt"
	"iter"

	"github.com/tychoish/listsort/ers"
)

// ErrUninitialized is raised by operations on a nil list.
const ErrUninitialized ers.Error = ers.Error("uninitialized container")

// ErrMalformedList is the root of all errors returned by Validate.
const ErrMalformedList ers.Error = ers.Error("malformed list")

// List provides a circular doubly linked list with a sentinel root
// element. Callers are responsible for their own concurrency control,
// and should generally use with the same care as a slice.
//
// Every element pushed onto a list receives a sequence tag that
// records its original position; tags are strictly increasing in
// insertion order and survive sorting, which makes them useful for
// checking stability.
type List[T any] struct {
	root   *Element[T]
	length int
	tags   int
}

// Element is a node in a List. The key (Value) is opaque to the sort
// engines, which only ever inspect it through a comparator.
type Element[T any] struct {
	item T
	seq  int
	next *Element[T]
	prev *Element[T]
	root bool
	list *List[T]
}

func (e *Element[T]) String() string        { return fmt.Sprintf("%v@%d", e.item, e.seq) }
func (e *Element[T]) Value() T              { return e.item }
func (e *Element[T]) Seq() int              { return e.seq }
func (e *Element[T]) Ok() bool              { return e != nil && !e.root && e.list != nil }
func (e *Element[T]) Next() *Element[T]     { return e.next }
func (e *Element[T]) Previous() *Element[T] { return e.prev }
func (e *Element[T]) In(l *List[T]) bool    { return e != nil && e.list == l }

// NewList builds a list holding the values in order.
func NewList[T any](items ...T) *List[T] { l := &List[T]{}; l.Append(items...); return l }

// Len reports the number of elements in the list. Nil lists are
// empty.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.length
}

// Front returns the first element. On an empty list this is the
// sentinel, for which Ok() is false.
func (l *List[T]) Front() *Element[T] { l.lazySetup(); return l.root.next }

// Back returns the last element. On an empty list this is the
// sentinel, for which Ok() is false.
func (l *List[T]) Back() *Element[T] { l.lazySetup(); return l.root.prev }

// PushBack adds a value to the end of the list, tagging it with the
// next sequence number.
func (l *List[T]) PushBack(it T) *Element[T] {
	l.lazySetup()
	e := &Element[T]{item: it, seq: l.tags, list: l}
	l.tags++
	l.insertAfter(l.root.prev, e)
	return e
}

// Append adds a variadic sequence of items to the end of the list.
func (l *List[T]) Append(items ...T) {
	for idx := range items {
		l.PushBack(items[idx])
	}
}

// Clone produces a new list with the same values in the same order.
// The elements of the copy keep the sequence tags of the originals,
// so sorted clones of one input can be compared tag for tag.
func (l *List[T]) Clone() *List[T] {
	out := &List[T]{}
	out.lazySetup()
	for e := range l.Elements() {
		out.insertAfter(out.root.prev, &Element[T]{item: e.item, seq: e.seq, list: out})
	}
	out.tags = l.tags
	return out
}

// Elements iterates over the elements of the list from front to back.
// The list must not be modified during the iteration.
func (l *List[T]) Elements() iter.Seq[*Element[T]] {
	return func(yield func(*Element[T]) bool) {
		if l == nil || l.root == nil {
			return
		}
		for e := l.root.next; e != l.root; e = e.next {
			if !yield(e) {
				return
			}
		}
	}
}

// Values iterates over the values of the list from front to back.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := range l.Elements() {
			if !yield(e.item) {
				return
			}
		}
	}
}

// Slice copies the values of the list into a new slice.
func (l *List[T]) Slice() []T {
	out := make([]T, 0, l.Len())
	for v := range l.Values() {
		out = append(out, v)
	}
	return out
}

// Seqs copies the sequence tags of the list, in list order, into a
// new slice.
func (l *List[T]) Seqs() []int {
	out := make([]int, 0, l.Len())
	for e := range l.Elements() {
		out = append(out, e.seq)
	}
	return out
}

// Validate walks the list in both directions and reports an error
// rooted in ErrMalformedList if the list is not a well formed circular
// doubly linked list whose length matches the recorded length, or if
// an element does not belong to the list.
func (l *List[T]) Validate() error {
	if l == nil {
		return ErrUninitialized
	}
	if l.root == nil {
		return ers.Whenf(l.length != 0, "%w: length %d without root", ErrMalformedList, l.length)
	}

	count := 0
	for e := l.root; ; e = e.next {
		switch {
		case e.next == nil || e.prev == nil:
			return fmt.Errorf("%w: nil link at position %d", ErrMalformedList, count)
		case e.next.prev != e:
			return fmt.Errorf("%w: broken prev link after position %d", ErrMalformedList, count)
		case e != l.root && e.list != l:
			return fmt.Errorf("%w: foreign element at position %d", ErrMalformedList, count)
		}

		if e.next == l.root {
			break
		}

		count++
		if count > l.length {
			return fmt.Errorf("%w: more than %d elements", ErrMalformedList, l.length)
		}
	}

	return ers.Whenf(count != l.length, "%w: counted %d elements, expected %d", ErrMalformedList, count, l.length)
}

func (l *List[T]) lazySetup() {
	if l == nil {
		panic(ErrUninitialized)
	}

	if l.root == nil {
		l.root = &Element[T]{root: true, list: l}
		l.root.next = l.root
		l.root.prev = l.root
	}
}

func (l *List[T]) insertAfter(at, e *Element[T]) {
	l.length++
	e.prev = at
	e.next = at.next
	e.prev.next = e
	e.next.prev = e
}
