package seq

// run is a sorted, nil-terminated sequence of elements and its
// length. The length always travels with the head in this record; it
// is never stored in a link of the elements themselves.
//
// While detecting and merging, a run is a chain: only next is
// meaningful and prev may hold anything. The extenders convert a run
// into a doubly linked view with rebuildPrev before inserting into
// it, and the finalizer converts the last run back into a circular
// list with relink.
type run[T any] struct {
	head   *Element[T]
	length int
}

// detach opens the circular list at the root and returns the first
// element of the resulting nil-terminated chain.
func detach[T any](root *Element[T]) *Element[T] {
	root.prev.next = nil
	return root.next
}

// rebuildPrev turns a chain into a doubly linked view (the head's
// prev is nil) and returns the tail.
func rebuildPrev[T any](head *Element[T]) *Element[T] {
	head.prev = nil
	tail := head
	for tail.next != nil {
		tail.next.prev = tail
		tail = tail.next
	}
	return tail
}

// relink attaches the chain starting at list after tail, fixing every
// prev link on the way, and then closes the circle through root.
func relink[T any](root, tail, list *Element[T]) {
	for ; list != nil; list = list.next {
		tail.next = list
		list.prev = tail
		tail = list
	}

	tail.next = root
	root.prev = tail
}

// spliceAfter inserts in after at in a doubly linked, nil-terminated
// run and returns the (possibly new) head. A nil at inserts in front
// of the head.
func spliceAfter[T any](head, at, in *Element[T]) *Element[T] {
	if at == nil {
		in.prev = nil
		in.next = head
		head.prev = in
		return in
	}

	in.prev = at
	in.next = at.next
	if at.next != nil {
		at.next.prev = in
	}
	at.next = in
	return head
}

func walk[T any](e *Element[T], steps int) *Element[T] {
	for ; steps > 0; steps-- {
		e = e.next
	}
	for ; steps < 0; steps++ {
		e = e.prev
	}
	return e
}

// findRun consumes the longest sorted prefix of the chain: a
// non-descending prefix as it is, or a strictly descending prefix
// reversed in place. Descending runs must be strict, otherwise the
// reversal would reorder equal elements. Runs shorter than the
// minimum run length are padded by the configured extension.
//
// findRun returns the run and the rest of the chain, which is nil at
// the end of input.
func (s *sorter[T]) findRun(list *Element[T]) (run[T], *Element[T]) {
	next := list.next
	if next == nil {
		return run[T]{head: list, length: 1}, nil
	}

	length := 1
	if s.compare(list, next) > 0 {
		var prev *Element[T]
		for {
			length++
			list.next = prev
			prev = list
			list = next
			next = list.next
			if next == nil || s.compare(list, next) <= 0 {
				break
			}
		}
		list.next = prev
	} else {
		head := list
		for {
			length++
			list = next
			next = list.next
			if next == nil || s.compare(list, next) > 0 {
				break
			}
		}
		list.next = nil
		list = head
	}

	r := run[T]{head: list, length: length}
	if s.extend != nil && next != nil && r.length < s.minrun {
		return s.extend(r, next)
	}
	return r, next
}

// extendLinear pads the run up to the minimum run length with
// elements taken from the front of rest. Each element is placed
// after every element of the run that sorts at or before it, found by
// walking back from the tail.
func (s *sorter[T]) extendLinear(r run[T], rest *Element[T]) (run[T], *Element[T]) {
	tail := rebuildPrev(r.head)

	for rest != nil && r.length < s.minrun {
		in := rest
		rest = rest.next

		at := tail
		if s.compare(tail, in) > 0 {
			at = s.scanBack(tail, in)
		}

		r.head = spliceAfter(r.head, at, in)
		if at == tail {
			tail = in
		}
		r.length++
	}

	return r, rest
}

// scanBack returns the last element before p that sorts at or before
// in, or nil when none does. p must sort after in. The walk moves two
// elements at a time and settles the skipped element with a single
// extra comparison.
func (s *sorter[T]) scanBack(p, in *Element[T]) *Element[T] {
	for {
		q := p.prev
		if q == nil {
			return nil
		}

		r := q.prev
		if r == nil {
			if s.compare(q, in) <= 0 {
				return q
			}
			return nil
		}

		if s.compare(r, in) > 0 {
			p = r
			continue
		}

		if s.compare(q, in) <= 0 {
			return q
		}
		return r
	}
}

// extendBinary pads the run up to the minimum run length, finding the
// position of each element with a binary search over the doubly
// linked run. The search cursor moves in both directions, so each
// probe costs pointer moves proportional to the distance from the
// previous probe.
func (s *sorter[T]) extendBinary(r run[T], rest *Element[T]) (run[T], *Element[T]) {
	tail := rebuildPrev(r.head)

	for rest != nil && r.length < s.minrun {
		in := rest
		rest = rest.next

		// lo ends as the number of elements that sort at or before in.
		lo, hi := 0, r.length
		cur, pos := r.head, 0
		for lo < hi {
			mid := int(uint(lo+hi) >> 1)
			cur, pos = walk(cur, mid-pos), mid
			if s.compare(cur, in) <= 0 {
				lo = mid + 1
			} else {
				hi = mid
			}
		}

		var at *Element[T]
		if lo > 0 {
			at = walk(cur, lo-1-pos)
		}

		r.head = spliceAfter(r.head, at, in)
		if at == tail {
			tail = in
		}
		r.length++
	}

	return r, rest
}
