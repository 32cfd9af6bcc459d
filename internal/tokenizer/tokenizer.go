package tokenizer

import (
	"strings"
	"unicode/utf8"
)

const numByteTokens = 256

// Tokenizer is a byte-level BPE model trained from scratch on a corpus.
// Invariants we maintain:
//   - vocab[id] is the exact byte sequence for token ID 'id'; IDs 0..255 are
//     the single raw bytes.
//   - order[k] is the pair merged into ID 256+k, and merges[order[k]] == 256+k.
//     The index k is the merge's rank: lower rank means learned earlier and
//     applied with higher priority at encode time.
//   - vocab is always derivable from order alone (BuildVocab), so only the
//     merge list is ever persisted.
type Tokenizer struct {
	merges  map[Pair]int
	order   []Pair
	vocab   [][]byte
	pattern string

	// derived state, rebuilt whenever the merge table changes wholesale
	lookup          *PairLookup
	maxTokenByteLen int
}

// New returns an untrained tokenizer: no merges, a vocabulary of the 256
// single-byte tokens, and no split pattern.
func New() *Tokenizer {
	t := &Tokenizer{}
	t.resetMerges()
	return t
}

func (t *Tokenizer) resetMerges() {
	t.merges = make(map[Pair]int)
	t.order = nil
	t.vocab, _ = BuildVocab(nil) // cannot fail with no merges
	t.lookup = nil
	t.maxTokenByteLen = 1
}

func (t *Tokenizer) rebuildLookup() {
	t.lookup = NewPairLookup(t.merges, len(t.vocab))

	max := 1
	for _, token := range t.vocab {
		if len(token) > max {
			max = len(token)
		}
	}
	t.maxTokenByteLen = max
}

// Pattern returns the split pattern recorded in the model, empty in basic mode.
func (t *Tokenizer) Pattern() string {
	return t.pattern
}

// VocabSize returns the number of vocabulary entries (256 + learned merges).
func (t *Tokenizer) VocabSize() int {
	return len(t.vocab)
}

// MergeCount returns the number of learned merges.
func (t *Tokenizer) MergeCount() int {
	return len(t.order)
}

// MergeList returns the learned merges in rank order. The caller owns the copy.
func (t *Tokenizer) MergeList() []Pair {
	return append([]Pair(nil), t.order...)
}

// TokenBytes returns the byte sequence for one token ID.
func (t *Tokenizer) TokenBytes(id int) ([]byte, bool) {
	if id < 0 || id >= len(t.vocab) {
		return nil, false
	}
	return append([]byte(nil), t.vocab[id]...), true
}

// DecodeBytes expands token IDs to their raw byte sequences. IDs outside the
// vocabulary contribute no bytes, so partial or stale ID sequences still decode.
func (t *Tokenizer) DecodeBytes(ids []int) []byte {
	var out []byte
	for _, id := range ids {
		if id < 0 || id >= len(t.vocab) {
			continue
		}
		out = append(out, t.vocab[id]...)
	}
	return out
}

// Decode expands token IDs to text. Byte content that is not valid UTF-8 is
// rendered best-effort with U+FFFD replacements rather than failing the decode.
func (t *Tokenizer) Decode(ids []int) string {
	out := t.DecodeBytes(ids)
	if !utf8.Valid(out) {
		return strings.ToValidUTF8(string(out), "�")
	}
	return string(out)
}

func bytesToIDs(b []byte) []int {
	ids := make([]int, len(b))
	for i, c := range b {
		ids[i] = int(c)
	}
	return ids
}
