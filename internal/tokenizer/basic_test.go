package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrainConcreteScenario(t *testing.T) {
	tok := New()
	require.NoError(t, tok.Train("aaabdaaabac", 258, false))

	merges := tok.MergeList()
	require.Len(t, merges, 2)
	require.Equal(t, Pair{97, 97}, merges[0], "most frequent adjacent-byte pair is (a,a)")
	require.Equal(t, Pair{97, 98}, merges[1], "tie between (256,97) and (97,98) breaks to the smaller pair")

	ids := tok.Encode("aaabdaaabac")
	require.Equal(t, []int{256, 257, 100, 256, 257, 97, 99}, ids)
	require.Equal(t, "aaabdaaabac", tok.Decode(ids))
}

func TestTrainVocabSizeInvariant(t *testing.T) {
	tok := New()
	require.NoError(t, tok.Train("aaabdaaabac", 300, false))

	m := tok.MergeCount()
	require.LessOrEqual(t, m, 300-256, "never more merges than requested")
	require.Equal(t, 256+m, tok.VocabSize())
	require.Greater(t, m, 0, "non-trivial corpus must learn at least one merge")
}

func TestTrainStopsWhenNoPairsRemain(t *testing.T) {
	tok := New()
	require.NoError(t, tok.Train("ab", 300, false))

	// one merge collapses the text to a single symbol, then training stops
	require.Equal(t, 1, tok.MergeCount())
	require.Equal(t, []int{256}, tok.Encode("ab"))
}

func TestTrainRejectsSmallVocab(t *testing.T) {
	tok := New()
	require.Error(t, tok.Train("whatever", 255, false))
	require.Zero(t, tok.MergeCount())
}

func TestTrainDeterminism(t *testing.T) {
	text := "the quick brown fox jumps over the lazy dog, the quick brown fox"

	a := New()
	b := New()
	require.NoError(t, a.Train(text, 280, false))
	require.NoError(t, b.Train(text, 280, false))

	require.Equal(t, a.MergeList(), b.MergeList())
	require.Equal(t, a.VocabSize(), b.VocabSize())
	require.Equal(t, a.Encode(text), b.Encode(text))
}

func TestTrainVocabEntriesConcatOperands(t *testing.T) {
	tok := New()
	require.NoError(t, tok.Train("banana bandana banana", 270, false))

	// ID 256+k is always operand-A bytes followed by operand-B bytes
	for k, pair := range tok.MergeList() {
		left, ok := tok.TokenBytes(pair.A)
		require.True(t, ok)
		right, ok := tok.TokenBytes(pair.B)
		require.True(t, ok)

		merged, ok := tok.TokenBytes(256 + k)
		require.True(t, ok)
		require.Equal(t, append(left, right...), merged)
	}
}

func TestEncodeUntrained(t *testing.T) {
	tok := New()

	require.Equal(t, []int{104, 105}, tok.Encode("hi"))
	require.Empty(t, tok.Encode(""))
}

func TestRoundTrip(t *testing.T) {
	cases := []string{
		"",
		"?",
		"a",
		"hello world!!!? (안녕하세요!) lol123 😉",
		"tabs\tnewlines\n\r",
		"aaabdaaabac",
	}

	trained := New()
	require.NoError(t, trained.Train("hello hello world world!!! how low can a vocab go", 290, false))

	for _, tok := range []*Tokenizer{New(), trained} {
		for _, text := range cases {
			ids := tok.Encode(text)
			require.Equal(t, text, tok.Decode(ids), "round trip of %q", text)
		}
	}
}

func TestDecodeSkipsUnknownIDs(t *testing.T) {
	tok := New()
	require.Equal(t, "Hi", tok.Decode([]int{72, 9999, -1, 105}))
}

func TestDecodeInvalidBytes(t *testing.T) {
	tok := New()
	// 0xFF alone is not valid UTF-8; decode degrades instead of failing
	require.Equal(t, "�", tok.Decode([]int{0xFF}))
}

func TestDecodeBytesRaw(t *testing.T) {
	tok := New()
	require.Equal(t, []byte{0xFF, 0x00}, tok.DecodeBytes([]int{0xFF, 0x00}))
}
