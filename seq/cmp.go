package seq

import (
	"time"

	"golang.org/x/exp/constraints"
)

// Compare describes a three way comparison: negative when a sorts
// before b, zero when they are equal, and positive when a sorts after
// b. The sort engines call it only through the keys of the elements
// and require it to describe a total order.
type Compare[T any] func(a, b T) int

// LessThan describes a less than operation.
type LessThan[T any] func(a, b T) bool

// CompareNative provides a wrapper around the < operator for types
// that support it.
func CompareNative[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case b < a:
		return 1
	default:
		return 0
	}
}

// CompareTime compares time using the time.Time.Compare() method.
func CompareTime(a, b time.Time) int { return a.Compare(b) }

// CompareLessThan converts a LessThan operation into a Compare
// function. Each comparison may call lt twice.
func CompareLessThan[T any](lt LessThan[T]) Compare[T] {
	return func(a, b T) int {
		switch {
		case lt(a, b):
			return -1
		case lt(b, a):
			return 1
		default:
			return 0
		}
	}
}

// Reverse wraps an existing Compare function and reverses its
// direction. Equal values remain equal, so sorts stay stable.
func Reverse[T any](cmp Compare[T]) Compare[T] { return func(a, b T) int { return cmp(b, a) } }

// Counting wraps a Compare function so that every comparison that
// does not report equality increments the counter. A nil counter
// returns the comparator unchanged.
func Counting[T any](counter *uint64, cmp Compare[T]) Compare[T] {
	if counter == nil {
		return cmp
	}
	return func(a, b T) int {
		r := cmp(a, b)
		if r != 0 {
			*counter++
		}
		return r
	}
}

// IsSorted reports if the list is sorted from low to high, according
// to the comparison function.
func IsSorted[T any](list *List[T], cmp Compare[T]) bool {
	if list == nil || list.Len() <= 1 {
		return true
	}

	for item := list.root.next.next; item != list.root; item = item.next {
		if cmp(item.prev.item, item.item) > 0 {
			return false
		}
	}
	return true
}

// IsStable reports if the list is sorted and every run of equal
// values is in ascending sequence tag order.
func IsStable[T any](list *List[T], cmp Compare[T]) bool {
	if list == nil || list.Len() <= 1 {
		return true
	}

	for item := list.root.next.next; item != list.root; item = item.next {
		switch c := cmp(item.prev.item, item.item); {
		case c > 0:
			return false
		case c == 0 && item.prev.seq > item.seq:
			return false
		}
	}
	return true
}
