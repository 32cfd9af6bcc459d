package tokenizer

import (
	"fmt"
	"strings"
)

// BuildVocab derives the vocabulary from the merge list. IDs 0..255 map to
// single bytes; merge k defines ID 256+k as the concatenation of its two
// operands' byte sequences, which therefore must already exist. An operand
// outside the vocabulary built so far means the merge table is corrupt or out
// of order and the build fails rather than dropping the entry.
func BuildVocab(order []Pair) ([][]byte, error) {
	vocab := make([][]byte, numByteTokens, numByteTokens+len(order))
	for i := range vocab {
		vocab[i] = []byte{byte(i)}
	}

	for k, pair := range order {
		if pair.A < 0 || pair.A >= len(vocab) || pair.B < 0 || pair.B >= len(vocab) {
			return nil, fmt.Errorf("merge %d references id outside vocabulary: (%d, %d)", k, pair.A, pair.B)
		}
		vocab = append(vocab, concatTokens(vocab[pair.A], vocab[pair.B]))
	}

	return vocab, nil
}

func concatTokens(a, b []byte) []byte {
	out := make([]byte, len(a)+len(b))
	copy(out, a)
	copy(out[len(a):], b)
	return out
}

// RenderToken formats a token's bytes for the .vocab file: control bytes
// (0x00-0x1F, 0x7F) become \xHH escapes, everything else its character.
func RenderToken(token []byte) string {
	var sb strings.Builder
	for _, b := range token {
		if b <= 0x1F || b == 0x7F {
			fmt.Fprintf(&sb, `\x%02x`, b)
		} else {
			sb.WriteRune(rune(b))
		}
	}
	return sb.String()
}
