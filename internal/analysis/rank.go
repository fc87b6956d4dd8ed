// ABOUTME: Rank assignment for Spearman correlation.
// ABOUTME: Ties receive the average of the ranks they span.
package analysis

import "sort"

// ranks assigns 1-based ranks to values, independently per series.
// Runs of equal values all receive the mean rank of the run.
func ranks(values []float64) []float64 {
	n := len(values)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return values[order[a]] < values[order[b]]
	})

	out := make([]float64, n)
	for i := 0; i < n; {
		j := i + 1
		for j < n && values[order[j]] == values[order[i]] {
			j++
		}
		// Ranks i+1..j averaged across the tie run.
		avg := float64(i+j+1) / 2
		for k := i; k < j; k++ {
			out[order[k]] = avg
		}
		i = j
	}
	return out
}
