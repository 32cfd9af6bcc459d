package tokenizer

// Pair is an ordered pair of adjacent symbol IDs.
type Pair struct {
	A, B int
}

func pairLess(a, b Pair) bool {
	if a.A != b.A {
		return a.A < b.A
	}
	return a.B < b.B
}

// CountPairs counts each adjacent pair in ids. When counts is non-nil the
// tallies accumulate into it, which is how regex mode sums statistics across
// chunks without ever counting a pair that spans a chunk boundary. Sequences
// shorter than two IDs contribute nothing.
func CountPairs(ids []int, counts map[Pair]int) map[Pair]int {
	if counts == nil {
		counts = make(map[Pair]int)
	}
	for i := 0; i+1 < len(ids); i++ {
		counts[Pair{ids[i], ids[i+1]}]++
	}
	return counts
}

// MergePair returns a new sequence with every non-overlapping left-to-right
// occurrence of pair replaced by newID. After a match the scan resumes two
// positions later, so (a,a) in "a a a" merges exactly once. The input slice
// is never modified.
func MergePair(ids []int, pair Pair, newID int) []int {
	out := make([]int, 0, len(ids))
	for i := 0; i < len(ids); {
		if i+1 < len(ids) && ids[i] == pair.A && ids[i+1] == pair.B {
			out = append(out, newID)
			i += 2
		} else {
			out = append(out, ids[i])
			i++
		}
	}
	return out
}
