package tokenizer

// PairLookup provides fast lookup of pair info (rank and new token ID) using
// a hybrid approach:
// - 2D array for pairs where both tokens are < fastLookupSize (O(1) lookup)
// - Map fallback for larger pairs
type PairLookup struct {
	fastLookup     [][]uint64
	fastLookupSize int
	fallback       map[uint64]uint64
}

// NewPairLookup builds the lookup from the merge table. The packed value is
// rank<<32 | newID, where rank is the merge's 0-based learning index.
func NewPairLookup(merges map[Pair]int, vocabSize int) *PairLookup {
	fastLookupSize := 2048
	if vocabSize < fastLookupSize {
		fastLookupSize = vocabSize
	}

	fastLookup := make([][]uint64, fastLookupSize)
	for i := range fastLookup {
		fastLookup[i] = make([]uint64, fastLookupSize)
		for j := range fastLookup[i] {
			fastLookup[i][j] = ^uint64(0)
		}
	}

	fallback := make(map[uint64]uint64)

	for pair, newID := range merges {
		rank := newID - numByteTokens
		value := uint64(rank)<<32 | uint64(uint32(newID))

		if pair.A >= 0 && pair.A < fastLookupSize && pair.B >= 0 && pair.B < fastLookupSize {
			fastLookup[pair.A][pair.B] = value
		} else {
			fallback[packPair(pair.A, pair.B)] = value
		}
	}

	return &PairLookup{
		fastLookup:     fastLookup,
		fastLookupSize: fastLookupSize,
		fallback:       fallback,
	}
}

// Lookup returns the packed pair info (rank << 32 | newID) and whether the
// pair is a learned merge.
func (pl *PairLookup) Lookup(a, b int) (uint64, bool) {
	if a >= 0 && a < pl.fastLookupSize && b >= 0 && b < pl.fastLookupSize {
		value := pl.fastLookup[a][b]
		if value+1 != 0 {
			return value, true
		}
		return 0, false
	}

	value, ok := pl.fallback[packPair(a, b)]
	return value, ok
}

func packPair(a, b int) uint64 {
	return uint64(uint32(a))<<32 | uint64(uint32(b))
}
