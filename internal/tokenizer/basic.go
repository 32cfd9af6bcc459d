package tokenizer

import (
	"fmt"
)

// Train learns vocabSize-256 merges from text, operating on the raw byte
// stream as one flat sequence. Each iteration counts adjacent pairs, merges
// the most frequent one into the next sequential ID, and extends the
// vocabulary. Training starts from a fresh merge table.
//
// Ties on the occurrence count break toward the lexicographically smallest
// pair, so training the same text twice produces the same merge table.
func (t *Tokenizer) Train(text string, vocabSize int, verbose bool) error {
	if vocabSize < numByteTokens {
		return fmt.Errorf("vocab size %d is below the %d byte tokens", vocabSize, numByteTokens)
	}
	numMerges := vocabSize - numByteTokens
	t.resetMerges()

	ids := bytesToIDs([]byte(text))
	for step := 0; step < numMerges; step++ {
		stats := CountPairs(ids, nil)
		pair, count, ok := mostFrequentPair(stats)
		if !ok {
			break // sequence too short for further merges
		}

		newID := t.addMerge(pair)
		ids = MergePair(ids, pair, newID)

		if verbose {
			fmt.Printf("merge %d/%d: (%d, %d) -> %d (%s) had %d occurrences\n",
				step+1, numMerges, pair.A, pair.B, newID, RenderToken(t.vocab[newID]), count)
		}
	}

	t.rebuildLookup()
	return nil
}

// addMerge records pair as the next merge and extends the vocabulary with the
// concatenation of its operands. Both operands exist by construction: they
// are either bytes or earlier merges.
func (t *Tokenizer) addMerge(pair Pair) int {
	newID := numByteTokens + len(t.order)
	t.merges[pair] = newID
	t.order = append(t.order, pair)
	t.vocab = append(t.vocab, concatTokens(t.vocab[pair.A], t.vocab[pair.B]))
	return newID
}

func mostFrequentPair(stats map[Pair]int) (Pair, int, bool) {
	var best Pair
	bestCount := 0
	for pair, count := range stats {
		if count > bestCount || (count == bestCount && pairLess(pair, best)) {
			best = pair
			bestCount = count
		}
	}
	if bestCount == 0 {
		return Pair{}, 0, false
	}
	return best, bestCount, true
}

// Encode converts text to token IDs by seeding one token per byte and then
// applying learned merges, earliest-learned first.
func (t *Tokenizer) Encode(text string) []int {
	return t.EncodeBytes([]byte(text))
}

// EncodeBytes is Encode for callers that already hold raw bytes.
func (t *Tokenizer) EncodeBytes(input []byte) []int {
	return t.applyMerges(bytesToIDs(input))
}
