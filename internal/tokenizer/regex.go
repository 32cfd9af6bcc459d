package tokenizer

import (
	"errors"
	"fmt"

	"github.com/dlclark/regexp2"
	lru "github.com/hashicorp/golang-lru"
)

// GPT4SplitPattern pre-segments text the way GPT-4's tokenizer does:
// contractions, letter runs (with one optional leading non-letter such as a
// space), digit runs of 1-3, punctuation runs, and whitespace. regexp2 has no
// possessive quantifiers, so atomic groups (?>...) stand in for them, and the
// \s+(?!\S) alternative keeps trailing whitespace in one chunk.
const GPT4SplitPattern = `'(?i:[sdmt]|ll|ve|re)|(?>[^\r\n\p{L}\p{N}]?)\p{L}+|\p{N}{1,3}| ?(?>[^\s\p{L}\p{N}]+)[\r\n]*|\s*[\r\n]|\s+(?!\S)|\s+`

// chunk -> token IDs; most text re-uses a small working set of chunks
const encodeCacheSize = 8192

// RegexTokenizer wraps the basic merge/vocab state but splits text into
// chunks before training and encoding, so no merge ever bridges a chunk
// boundary. Decoding and persistence are the wrapped state's.
type RegexTokenizer struct {
	*Tokenizer
	compiled *regexp2.Regexp
	cache    *lru.Cache
}

// NewRegex returns an untrained regex tokenizer with the GPT-4 split pattern.
func NewRegex() *RegexTokenizer {
	r, err := NewRegexWithPattern(GPT4SplitPattern)
	if err != nil {
		panic(err) // the built-in pattern always compiles
	}
	return r
}

// NewRegexWithPattern returns an untrained regex tokenizer with a custom
// split pattern. The same pattern is applied during training and encoding;
// it is persisted in the model file so a loaded model keeps segmenting text
// the way it was trained.
func NewRegexWithPattern(pattern string) (*RegexTokenizer, error) {
	if pattern == "" {
		return nil, errors.New("empty split pattern")
	}
	compiled, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("compile split pattern: %w", err)
	}

	t := New()
	t.pattern = pattern

	cache, err := lru.New(encodeCacheSize)
	if err != nil {
		return nil, err
	}

	return &RegexTokenizer{
		Tokenizer: t,
		compiled:  compiled,
		cache:     cache,
	}, nil
}

// splitChunks partitions text into the pattern's matches, in order.
func (r *RegexTokenizer) splitChunks(text string) []string {
	var chunks []string
	m, err := r.compiled.FindStringMatch(text)
	for err == nil && m != nil {
		chunks = append(chunks, m.String())
		m, err = r.compiled.FindNextMatch(m)
	}
	// regexp2 match errors only arise from timeouts, which we never configure
	return chunks
}

// Train learns vocabSize-256 merges from text. One symbol sequence is kept
// per chunk; pair statistics sum across chunks each iteration and the chosen
// merge is applied to every chunk, so counts and merges behave exactly as in
// basic training except that pairs never span a chunk boundary.
func (r *RegexTokenizer) Train(text string, vocabSize int, verbose bool) error {
	if vocabSize < numByteTokens {
		return fmt.Errorf("vocab size %d is below the %d byte tokens", vocabSize, numByteTokens)
	}
	numMerges := vocabSize - numByteTokens
	r.resetMerges()
	r.cache.Purge()

	chunks := r.splitChunks(text)
	ids := make([][]int, len(chunks))
	for i, chunk := range chunks {
		ids[i] = bytesToIDs([]byte(chunk))
	}

	for step := 0; step < numMerges; step++ {
		stats := make(map[Pair]int)
		for _, chunkIDs := range ids {
			CountPairs(chunkIDs, stats)
		}

		pair, count, ok := mostFrequentPair(stats)
		if !ok {
			break // every chunk is down to a single symbol
		}

		newID := r.addMerge(pair)
		for i, chunkIDs := range ids {
			ids[i] = MergePair(chunkIDs, pair, newID)
		}

		if verbose {
			fmt.Printf("merge %d/%d: (%d, %d) -> %d (%s) had %d occurrences\n",
				step+1, numMerges, pair.A, pair.B, newID, RenderToken(r.vocab[newID]), count)
		}
	}

	r.rebuildLookup()
	return nil
}

// Encode splits text into chunks, encodes each independently, and
// concatenates the results in order.
func (r *RegexTokenizer) Encode(text string) []int {
	var out []int
	for _, chunk := range r.splitChunks(text) {
		out = append(out, r.encodeChunk(chunk)...)
	}
	return out
}

func (r *RegexTokenizer) encodeChunk(chunk string) []int {
	if cached, ok := r.cache.Get(chunk); ok {
		return cached.([]int)
	}

	ids := r.applyMerges(bytesToIDs([]byte(chunk)))
	r.cache.Add(chunk, ids)
	return ids
}

// Load replaces the merge state from a model file and recompiles the split
// pattern recorded there.
func (r *RegexTokenizer) Load(modelFile string) error {
	if err := r.Tokenizer.Load(modelFile); err != nil {
		return err
	}
	if r.pattern == "" {
		return fmt.Errorf("model %s has no split pattern; load it with a basic tokenizer", modelFile)
	}

	compiled, err := regexp2.Compile(r.pattern, regexp2.None)
	if err != nil {
		return fmt.Errorf("compile split pattern from %s: %w", modelFile, err)
	}
	r.compiled = compiled
	r.cache.Purge()
	return nil
}
