package freq

// Reduce folds a collection of frequency maps into one, left to right,
// starting from the empty map. The inputs are consumed.
func Reduce(maps []*Map) *Map {
	result := New()
	for _, m := range maps {
		result = result.Merge(m)
	}
	return result
}

// ReduceParallel combines the maps with a pairwise tree reduction, splitting
// the work across goroutines. Because Merge is commutative and associative,
// the result is identical to Reduce regardless of how the slice is
// partitioned. The inputs are consumed.
func ReduceParallel(maps []*Map) *Map {
	switch len(maps) {
	case 0:
		return New()
	case 1:
		if maps[0] == nil {
			return New()
		}
		return maps[0]
	}

	mid := len(maps) / 2
	done := make(chan *Map, 1)
	go func() {
		done <- ReduceParallel(maps[:mid])
	}()
	right := ReduceParallel(maps[mid:])
	left := <-done

	return left.Merge(right)
}
