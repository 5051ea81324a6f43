package seq

// precedes reports whether x, the head of a run being galloped over,
// must be emitted before key, the head of the other run. Elements of
// the earlier run (a) go before equal keys; elements of the later run
// (b) only before strictly greater keys.
func (s *sorter[T]) precedes(x, key *Element[T], fromA bool) bool {
	if fromA {
		return s.compare(x, key) <= 0
	}
	return s.compare(x, key) < 0
}

// bracket probes the chain w at growing offsets (produced by grow)
// until it finds an element that does not precede key or runs off the
// end of the chain. It returns the last element known to precede key
// and its offset, and the offset of the first probe that failed. When
// the whole chain precedes key, hi is zero and last is the tail.
//
// The head of w must precede key.
func (s *sorter[T]) bracket(w, key *Element[T], fromA bool, grow func(int) int) (last *Element[T], lastOfs, hi int) {
	last = w
	for ofs := grow(0); ; ofs = grow(ofs) {
		p, i := last, lastOfs
		for i < ofs && p.next != nil {
			p = p.next
			i++
		}

		if i == lastOfs {
			return last, lastOfs, 0
		}
		if !s.precedes(p, key, fromA) {
			return last, lastOfs, i
		}
		last, lastOfs = p, i
	}
}

func oddOffsets(ofs int) int    { return 2*ofs + 1 }
func doubleOffsets(ofs int) int { return max(1, 2*ofs) }

// gallopBinary counts the leading elements of w that precede key,
// probing at offsets 1, 3, 7, 15, ... and narrowing the final
// bracket with a binary search. It returns the count and the last
// such element, which is nil when the count is zero.
func (s *sorter[T]) gallopBinary(w, key *Element[T], fromA bool) (*Element[T], int) {
	if !s.precedes(w, key, fromA) {
		return nil, 0
	}

	last, lastOfs, hi := s.bracket(w, key, fromA, oddOffsets)
	if hi == 0 {
		return last, lastOfs + 1
	}

	for lo := lastOfs + 1; lo < hi; {
		mid := int(uint(lo+hi) >> 1)
		p := walk(last, mid-lastOfs)
		if s.precedes(p, key, fromA) {
			last, lastOfs = p, mid
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return last, lastOfs + 1
}

// gallopLinear counts the leading elements of w that precede key,
// probing at offsets 1, 2, 4, 8, ... and then scanning the final
// bracket one element at a time.
func (s *sorter[T]) gallopLinear(w, key *Element[T], fromA bool) (*Element[T], int) {
	if !s.precedes(w, key, fromA) {
		return nil, 0
	}

	last, lastOfs, hi := s.bracket(w, key, fromA, doubleOffsets)
	if hi == 0 {
		return last, lastOfs + 1
	}

	for lastOfs+1 < hi && s.precedes(last.next, key, fromA) {
		last = last.next
		lastOfs++
	}

	return last, lastOfs + 1
}

// mergeThresholdGallop merges two non-empty sorted chains. It merges
// pairwise until one side has won minGallop times in a row, then
// gallops: it alternately finds how much of each run precedes the
// head of the other and moves that whole stretch at once. Galloping
// continues while either side skips at least the configured threshold
// per round, and every such round makes the next gallop easier to
// enter. Leaving gallop mode makes it harder to enter again.
//
// minGallop belongs to the sorter and carries over from one merge to
// the next within a single sort.
func (s *sorter[T]) mergeThresholdGallop(a, b *Element[T]) *Element[T] {
	var head *Element[T]
	tail := &head

	for {
		winsA, winsB := 0, 0
		for winsA < s.minGallop && winsB < s.minGallop {
			if s.compare(a, b) <= 0 {
				*tail = a
				tail = &a.next
				a = a.next
				if a == nil {
					*tail = b
					return head
				}
				winsA++
				winsB = 0
			} else {
				*tail = b
				tail = &b.next
				b = b.next
				if b == nil {
					*tail = a
					return head
				}
				winsB++
				winsA = 0
			}
		}

		s.stats.Gallops++
		for {
			last, skippedA := s.gallopBinary(a, b, true)
			if skippedA > 0 {
				*tail = a
				tail = &last.next
				a = last.next
				if a == nil {
					*tail = b
					return head
				}
			}

			// the head of a now sorts strictly after the head of b
			*tail = b
			tail = &b.next
			b = b.next
			if b == nil {
				*tail = a
				return head
			}

			last, skippedB := s.gallopBinary(b, a, false)
			if skippedB > 0 {
				*tail = b
				tail = &last.next
				b = last.next
				if b == nil {
					*tail = a
					return head
				}
			}

			// the head of b now sorts at or after the head of a
			*tail = a
			tail = &a.next
			a = a.next
			if a == nil {
				*tail = b
				return head
			}

			if skippedA < s.trigger && skippedB < s.trigger {
				break
			}
			if s.minGallop > 1 {
				s.minGallop--
			}
		}
		s.minGallop++
	}
}

// mergeExponentialGallop merges two non-empty sorted chains. After
// one side wins a fixed number of times in a row it gallops once over
// that side (doubling probes, then a linear scan), emits the head of
// the other side, and resumes pairwise merging with fresh counters.
func (s *sorter[T]) mergeExponentialGallop(a, b *Element[T]) *Element[T] {
	var head *Element[T]
	tail := &head
	winsA, winsB := 0, 0

	for {
		if s.compare(a, b) <= 0 {
			*tail = a
			tail = &a.next
			a = a.next
			if a == nil {
				*tail = b
				return head
			}
			winsA++
			winsB = 0
		} else {
			*tail = b
			tail = &b.next
			b = b.next
			if b == nil {
				*tail = a
				return head
			}
			winsB++
			winsA = 0
		}

		switch {
		case winsA >= s.trigger:
			s.stats.Gallops++
			if last, n := s.gallopLinear(a, b, true); n > 0 {
				*tail = a
				tail = &last.next
				a = last.next
				if a == nil {
					*tail = b
					return head
				}
			}

			*tail = b
			tail = &b.next
			b = b.next
			if b == nil {
				*tail = a
				return head
			}
			winsA, winsB = 0, 1
		case winsB >= s.trigger:
			s.stats.Gallops++
			if last, n := s.gallopLinear(b, a, false); n > 0 {
				*tail = b
				tail = &last.next
				b = last.next
				if b == nil {
					*tail = a
					return head
				}
			}

			*tail = a
			tail = &a.next
			a = a.next
			if a == nil {
				*tail = b
				return head
			}
			winsA, winsB = 1, 0
		}
	}
}
