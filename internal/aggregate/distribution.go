package aggregate

import (
	"sort"
)

// Share is one bucket of a percentage distribution.
type Share[K comparable] struct {
	Key        K
	Count      int
	Percentage int
}

// Distribution turns labels into whole-number percentages that sum to exactly 100
// (largest remainder). Buckets are ordered by count descending, then by their
// position in order; labels missing from order sort last by first appearance.
func Distribution[K comparable](labels []K, order []K) []Share[K] {
	if len(labels) == 0 {
		return nil
	}

	rank := make(map[K]int, len(order))
	for i, k := range order {
		rank[k] = i
	}

	counts := make(map[K]int)
	var keys []K
	for _, l := range labels {
		if _, seen := counts[l]; !seen {
			keys = append(keys, l)
			if _, ok := rank[l]; !ok {
				rank[l] = len(order) + len(keys)
			}
		}
		counts[l]++
	}

	sort.SliceStable(keys, func(i, j int) bool {
		ci, cj := counts[keys[i]], counts[keys[j]]
		if ci != cj {
			return ci > cj
		}
		return rank[keys[i]] < rank[keys[j]]
	})

	total := len(labels)
	shares := make([]Share[K], len(keys))
	remainders := make([]int, len(keys))
	assigned := 0
	for i, k := range keys {
		scaled := counts[k] * 100
		shares[i] = Share[K]{Key: k, Count: counts[k], Percentage: scaled / total}
		remainders[i] = scaled % total
		assigned += shares[i].Percentage
	}

	// hand out the rounding leftovers to the largest remainders, ties in bucket order
	idx := make([]int, len(keys))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return remainders[idx[a]] > remainders[idx[b]] })
	for i := 0; assigned < 100; i++ {
		shares[idx[i%len(idx)]].Percentage++
		assigned++
	}
	return shares
}
