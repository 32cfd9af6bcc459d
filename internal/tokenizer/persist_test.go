package tokenizer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "basic")

	orig := New()
	require.NoError(t, orig.Train("aaabdaaabac aaabdaaabac", 262, false))
	require.NoError(t, orig.Save(prefix))

	loaded := New()
	require.NoError(t, loaded.Load(prefix+".model"))

	require.Equal(t, orig.MergeList(), loaded.MergeList())
	require.Equal(t, orig.VocabSize(), loaded.VocabSize())
	require.Equal(t, "", loaded.Pattern())

	text := "aaab dac abba"
	require.Equal(t, orig.Encode(text), loaded.Encode(text))
	require.Equal(t, text, loaded.Decode(loaded.Encode(text)))
}

func TestSaveLoadRegexKeepsPattern(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "regex")

	orig := NewRegex()
	require.NoError(t, orig.Train("hello world hello world!!!", 270, false))
	require.NoError(t, orig.Save(prefix))

	loaded := NewRegex()
	require.NoError(t, loaded.Load(prefix+".model"))

	require.Equal(t, GPT4SplitPattern, loaded.Pattern())
	require.Equal(t, orig.MergeList(), loaded.MergeList())

	text := "hello there, world"
	require.Equal(t, orig.Encode(text), loaded.Encode(text))
}

func TestLoadSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "damaged.model")
	content := "\n" + // empty pattern line: basic mode
		"97 97\n" +
		"not a merge line\n" +
		"98 x\n" +
		"12\n" +
		"97 256\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	tok := New()
	require.NoError(t, tok.Load(path))

	require.Equal(t, []Pair{{97, 97}, {97, 256}}, tok.MergeList())

	// IDs are reassigned by file position: 256 then 257
	token, ok := tok.TokenBytes(257)
	require.True(t, ok)
	require.Equal(t, []byte("aaa"), token)
}

func TestLoadRejectsCorruptMergeTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.model")
	require.NoError(t, os.WriteFile(path, []byte("\n700 701\n"), 0o644))

	tok := New()
	require.Error(t, tok.Load(path), "merge operands outside the vocabulary are a data-integrity error")
}

func TestLoadRejectsEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.model")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	tok := New()
	require.Error(t, tok.Load(path))
}

func TestLoadMissingFile(t *testing.T) {
	tok := New()
	require.Error(t, tok.Load(filepath.Join(t.TempDir(), "nope.model")))
}

func TestVocabFileRendering(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "render")

	tok := New()
	require.NoError(t, tok.Train("aa aa", 257, false))
	require.NoError(t, tok.Save(prefix))

	data, err := os.ReadFile(prefix + ".vocab")
	require.NoError(t, err)
	text := string(data)

	require.Contains(t, text, "97 [a]")
	require.Contains(t, text, `10 [\x0a]`, "control bytes render as hex escapes")
	require.Contains(t, text, `127 [\x7f]`)
	require.Contains(t, text, "256 [aa]")
}

func TestVocabFileNeverLoaded(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "diag")

	orig := New()
	require.NoError(t, orig.Train("abcabcabc", 260, false))
	require.NoError(t, orig.Save(prefix))

	// scribbling over the .vocab file must not affect a reload
	require.NoError(t, os.WriteFile(prefix+".vocab", []byte("garbage"), 0o644))

	loaded := New()
	require.NoError(t, loaded.Load(prefix+".model"))
	require.Equal(t, orig.MergeList(), loaded.MergeList())
}

func TestModelFileFormat(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "fmt")

	tok := New()
	require.NoError(t, tok.Train("aaabdaaabac", 258, false))
	require.NoError(t, tok.Save(prefix))

	data, err := os.ReadFile(prefix + ".model")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Equal(t, []string{"", "97 97", "97 98"}, lines)
}
