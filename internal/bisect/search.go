package bisect

// NotFound is the sentinel index returned by Search when no element of the
// sequence is order-equivalent to the target. It is distinct from every
// valid index.
const NotFound = -1

// Search locates target in the pre-sorted sequence seq by interval halving
// and returns the index of a matching element, or NotFound.
//
// seq must already be sorted consistently with cmp. Search never verifies
// this (a linear check would defeat the logarithmic bound); with an
// unsorted sequence the result is undefined rather than reported. When
// several elements compare Equal to target, the returned index is one of
// them with no first/last guarantee. Search reads seq only, performs at
// most ceil(log2(len(seq)+1)) comparator calls, and an empty seq yields
// NotFound for any target.
func Search[S ~[]T, T any](seq S, target T, cmp CompareFunc[T]) int {
	low, high := 0, len(seq)-1
	for low <= high {
		// rounds toward low and cannot overflow near the top of the index range
		mid := low + (high-low)/2
		switch cmp(seq[mid], target) {
		case Equal:
			return mid
		case Greater:
			high = mid - 1
		default:
			low = mid + 1
		}
	}
	return NotFound
}

// SearchOrdered is Search with the natural ordering of T.
func SearchOrdered[S ~[]T, T Ordered](seq S, target T) int {
	return Search(seq, target, Compare[T])
}

// Compare returns the natural Ordering of a and b.
func Compare[T Ordered](a, b T) Ordering {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	default:
		return Equal
	}
}

// SortedBy reports whether seq is sorted consistently with cmp. It is a
// linear probe for callers that want to verify the Search precondition up
// front; Search itself never calls it.
func SortedBy[S ~[]T, T any](seq S, cmp CompareFunc[T]) bool {
	for i := len(seq) - 1; i > 0; i-- {
		if cmp(seq[i], seq[i-1]) == Less {
			return false
		}
	}
	return true
}
