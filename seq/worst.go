package seq

// WorstCase reorders the list into the permutation that forces the
// most comparisons out of a bottom-up merge sort: the list is split
// into its odd and even positioned elements, each half is reordered
// recursively, and the halves are concatenated. Applied to a sorted
// list, every merge of the sort then interleaves its inputs
// perfectly. No comparisons are made.
func WorstCase[T any](list *List[T]) {
	if list == nil || list.Len() < 2 {
		return
	}

	root := list.root
	relink(root, root, worstSplit(detach(root)))
}

func worstSplit[T any](head *Element[T]) *Element[T] {
	if head == nil || head.next == nil {
		return head
	}

	var left, right *Element[T]
	pl, pr := &left, &right
	odd := true
	for e := head; e != nil; e = e.next {
		if odd {
			*pl = e
			pl = &e.next
		} else {
			*pr = e
			pr = &e.next
		}
		odd = !odd
	}
	*pl, *pr = nil, nil

	left = worstSplit(left)
	right = worstSplit(right)

	tail := left
	for tail.next != nil {
		tail = tail.next
	}
	tail.next = right
	return left
}
