package tokenizer

import (
	"github.com/gobpe/internal/utils"
)

// applyMerges rewrites ids by repeatedly applying the applicable merge with
// the lowest rank (smallest assigned ID) until none applies. Candidates live
// in a queue ordered by (rank, leftmost position); the token sequence is a
// doubly linked list over slots so a merge is O(1), with per-slot version
// counters invalidating stale queue entries. A merge can only create
// candidates of strictly higher rank, so the queue pops in the same order the
// naive recount-and-rescan formulation would select.
func (t *Tokenizer) applyMerges(ids []int) []int {
	n := len(ids)
	if n < 2 || len(t.order) == 0 || t.lookup == nil {
		return ids
	}

	tokens := append([]int(nil), ids...)

	// doubly linked-list
	prev := make([]int, n)
	next := make([]int, n)
	for i := 0; i < n; i++ {
		prev[i] = i - 1
		next[i] = i + 1
	}

	// edge elements
	prev[0] = -1
	next[n-1] = -1

	// per-slot versioning to invalidate queue entries
	liveVersion := make([]int, n)

	q := utils.NewBucketQueue(len(t.order) - 1)

	pushIfMergeable := func(i int) {
		j := next[i]
		if i == -1 || j == -1 {
			return
		}

		a := tokens[i]
		b := tokens[j]

		info, ok := t.lookup.Lookup(a, b)
		if !ok {
			return
		}

		q.Push(utils.MergeCand{
			Rank:       int(info >> 32),
			Pos:        i,
			LeftToken:  a,
			RightToken: b,
			VerL:       liveVersion[i],
			VerR:       liveVersion[j],
		})
	}

	// seed with all initial adjacent pairs
	for i := 0; i != -1 && next[i] != -1; i = next[i] {
		pushIfMergeable(i)
	}

	// leftmost index (never dies; we always merge into the left slot)
	head := 0

	for {
		c, ok := q.Pop()
		if !ok {
			break
		}

		i := c.Pos
		j := next[i]
		if j == -1 {
			continue // no right neighbor anymore
		}

		// stale entry: at least one slot changed since the push
		if liveVersion[i] != c.VerL || liveVersion[j] != c.VerR {
			continue
		}

		a := tokens[i]
		b := tokens[j]

		info, ok := t.lookup.Lookup(a, b)
		if !ok {
			continue
		}

		rankNow := int(info >> 32)
		newID := int(info & 0xFFFFFFFF)

		if rankNow != c.Rank || a != c.LeftToken || b != c.RightToken {
			continue
		}

		tokens[i] = newID // collapse into slot i

		nj := next[j]
		next[i] = nj
		if nj != -1 {
			prev[nj] = i
		}

		// mark the dead slot's pointers
		prev[j], next[j] = -1, -1

		liveVersion[i]++
		liveVersion[j]++

		// the merged token may now pair with either neighbor
		if pi := prev[i]; pi != -1 {
			pushIfMergeable(pi)
		}
		pushIfMergeable(i)
	}

	out := make([]int, 0, n)
	for i := head; i != -1; i = next[i] {
		out = append(out, tokens[i])
	}

	return out
}
