package seq

// ListSort sorts the list in place with the bottom-up merge sort used
// by the kernel's generic list sort: elements are moved one at a time
// onto a stack of pending sorted chains, and the bits of the running
// count decide when two pending chains of equal size are merged, so
// merges stay 2:1 balanced and the pending stack needs no length
// bookkeeping. Only the Counter and Logger fields of the options are
// used; merges are always plain.
func ListSort[T any](list *List[T], cmp Compare[T], opts SortOptions) SortStats {
	opts.Extension, opts.Merge = ExtendNone, MergePlain
	s := newSorter(cmp, opts)
	s.listsort(list)
	s.log("listsort", opts)
	return s.stats
}

func (s *sorter[T]) listsort(list *List[T]) {
	s.stats.Length = list.Len()
	if list.Len() < 2 {
		return
	}

	root := list.root
	rest := detach(root)

	// pending[len-1] is the newest chain.
	pending := make([]*Element[T], 0, 64)
	for count := 0; rest != nil; count++ {
		// skip one pending chain for every trailing set bit of count;
		// if any bit remains the chain there and the one below it
		// have the same size.
		idx := len(pending) - 1
		bits := count
		for ; bits&1 != 0; bits >>= 1 {
			idx--
		}
		if bits != 0 {
			pending[idx-1] = s.merge(pending[idx-1], pending[idx])
			pending = append(pending[:idx], pending[idx+1:]...)
			s.stats.Merges++
		}

		e := rest
		rest = rest.next
		e.next = nil
		pending = append(pending, e)
		s.stats.Runs++
		s.stats.MaxDepth = max(s.stats.MaxDepth, len(pending))
	}

	acc := pending[len(pending)-1]
	for i := len(pending) - 2; i > 0; i-- {
		acc = s.merge(pending[i], acc)
		s.stats.Merges++
	}

	s.stats.Merges++
	s.mergeFinal(root, pending[0], acc)
}
