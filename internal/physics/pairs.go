package physics

import "iter"

// AllPairs yields every unordered index pair (i, j) with i < j < n.
func AllPairs(n int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if !yield(i, j) {
					return
				}
			}
		}
	}
}
