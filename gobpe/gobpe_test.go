package gobpe_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gobpe/gobpe"
)

func TestLoadPicksVariantFromPatternLine(t *testing.T) {
	dir := t.TempDir()
	corpus := "hello hello world world, low lower lowest!"

	basic := gobpe.NewBasic()
	require.NoError(t, basic.Train(corpus, 280, false))
	require.NoError(t, basic.Save(filepath.Join(dir, "basic")))

	regex := gobpe.NewRegex()
	require.NoError(t, regex.Train(corpus, 280, false))
	require.NoError(t, regex.Save(filepath.Join(dir, "regex")))

	for name, orig := range map[string]gobpe.Tokenizer{"basic": basic, "regex": regex} {
		loaded, err := gobpe.Load(filepath.Join(dir, name+".model"))
		require.NoError(t, err)

		text := "hello lower world"
		require.Equal(t, orig.Encode(text), loaded.Encode(text), "%s variant", name)
		require.Equal(t, text, loaded.Decode(loaded.Encode(text)))
	}
}

func TestLoadMissingModel(t *testing.T) {
	_, err := gobpe.Load(filepath.Join(t.TempDir(), "absent.model"))
	require.Error(t, err)
}

func TestNewRegexWithPatternValidation(t *testing.T) {
	_, err := gobpe.NewRegexWithPattern("[")
	require.Error(t, err)

	tok, err := gobpe.NewRegexWithPattern(`\S+|\s+`)
	require.NoError(t, err)

	require.NoError(t, tok.Train("go go go gophers", 270, false))
	ids := tok.Encode("go gophers go")
	require.Equal(t, "go gophers go", tok.Decode(ids))
}

func TestFacadeRoundTripUntrained(t *testing.T) {
	for name, tok := range map[string]gobpe.Tokenizer{
		"basic": gobpe.NewBasic(),
		"regex": gobpe.NewRegex(),
	} {
		for _, text := range []string{"", "x", "mixed 텍스트 and 😀"} {
			require.Equal(t, text, tok.Decode(tok.Encode(text)), "%s: %q", name, text)
		}
	}
}
