package seq

// mergePlain merges two non-empty sorted chains with the two-pointer
// method. When the heads compare equal the element from a is taken
// first; a is always the run that came first in the input, so the
// merge is stable.
func (s *sorter[T]) mergePlain(a, b *Element[T]) *Element[T] {
	var head *Element[T]
	tail := &head

	for {
		if s.compare(a, b) <= 0 {
			*tail = a
			tail = &a.next
			a = a.next
			if a == nil {
				*tail = b
				return head
			}
		} else {
			*tail = b
			tail = &b.next
			b = b.next
			if b == nil {
				*tail = a
				return head
			}
		}
	}
}

// mergeFinal merges two non-empty sorted chains directly into the
// list behind root, writing prev links while merging, and closes the
// circle.
func (s *sorter[T]) mergeFinal(root, a, b *Element[T]) {
	tail := root

	for {
		if s.compare(a, b) <= 0 {
			tail.next = a
			a.prev = tail
			tail = a
			a = a.next
			if a == nil {
				break
			}
		} else {
			tail.next = b
			b.prev = tail
			tail = b
			b = b.next
			if b == nil {
				b = a
				break
			}
		}
	}

	relink(root, tail, b)
}
