// Package gobpe trains and applies byte-pair-encoding tokenizers. Two
// variants share the same merge/vocabulary state: the basic tokenizer runs
// over the raw byte stream, the regex tokenizer pre-splits text into chunks
// so merges never cross a chunk boundary.
package gobpe

import (
	"github.com/gobpe/internal/tokenizer"
)

// Tokenizer is the capability both variants implement.
type Tokenizer interface {
	// Train learns vocabSize-256 merges from text. vocabSize below 256 is an
	// error; training may learn fewer merges when the corpus runs out of pairs.
	Train(text string, vocabSize int, verbose bool) error

	// Encode converts text to token IDs, applying earlier-learned merges first.
	Encode(text string) []int

	// Decode converts token IDs back to text. Unknown IDs are skipped and
	// invalid byte content is rendered best-effort, never a panic.
	Decode(ids []int) string

	// Save writes filePrefix.model (pattern + merges, reloadable) and
	// filePrefix.vocab (human-readable, diagnostic only).
	Save(filePrefix string) error

	// Load replaces the tokenizer state from a .model file.
	Load(modelFile string) error
}

// NewBasic returns an untrained tokenizer over the raw byte stream.
func NewBasic() Tokenizer {
	return tokenizer.New()
}

// NewRegex returns an untrained tokenizer with the GPT-4 split pattern.
func NewRegex() Tokenizer {
	return tokenizer.NewRegex()
}

// NewRegexWithPattern returns an untrained regex tokenizer with a custom
// split pattern.
func NewRegexWithPattern(pattern string) (Tokenizer, error) {
	r, err := tokenizer.NewRegexWithPattern(pattern)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Load reads a .model file and constructs the matching variant: an empty
// pattern line means basic mode, anything else regex mode.
func Load(modelFile string) (Tokenizer, error) {
	t := tokenizer.New()
	if err := t.Load(modelFile); err != nil {
		return nil, err
	}
	if t.Pattern() == "" {
		return t, nil
	}

	r, err := tokenizer.NewRegexWithPattern(t.Pattern())
	if err != nil {
		return nil, err
	}
	if err := r.Load(modelFile); err != nil {
		return nil, err
	}
	return r, nil
}
