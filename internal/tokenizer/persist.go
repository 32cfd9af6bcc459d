package tokenizer

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Save writes filePrefix.model and filePrefix.vocab. The model file carries
// the split pattern line and the merges in learned order; it is everything a
// load needs, since the vocabulary is rebuilt from the merges. The vocab file
// is a human-readable rendering for inspection only and is never read back.
func (t *Tokenizer) Save(filePrefix string) error {
	if err := t.saveModel(filePrefix + ".model"); err != nil {
		return err
	}
	return t.saveVocab(filePrefix + ".vocab")
}

func (t *Tokenizer) saveModel(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, t.pattern)
	for _, pair := range t.order {
		fmt.Fprintf(w, "%d %d\n", pair.A, pair.B)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func (t *Tokenizer) saveVocab(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for id, token := range t.vocab {
		fmt.Fprintf(w, "%d [%s]\n", id, RenderToken(token))
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Load replaces the tokenizer state with the contents of a .model file. IDs
// are reassigned sequentially from 256 in file order; the recorded operand
// IDs are taken verbatim. Lines that are not exactly two unsigned integers
// are skipped so one corrupt line does not abort the load, but a merge whose
// operands cannot be resolved fails the vocabulary rebuild and the load.
func (t *Tokenizer) Load(modelFile string) error {
	f, err := os.Open(modelFile)
	if err != nil {
		return fmt.Errorf("open %s: %w", modelFile, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024) // pattern lines can be long

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("read %s: %w", modelFile, err)
		}
		return fmt.Errorf("model file %s is empty", modelFile)
	}
	pattern := strings.TrimSpace(scanner.Text())

	var order []Pair
	merges := make(map[Pair]int)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) != 2 {
			continue
		}
		a, errA := strconv.Atoi(fields[0])
		b, errB := strconv.Atoi(fields[1])
		if errA != nil || errB != nil || a < 0 || b < 0 {
			continue
		}

		pair := Pair{a, b}
		merges[pair] = numByteTokens + len(order)
		order = append(order, pair)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", modelFile, err)
	}

	vocab, err := BuildVocab(order)
	if err != nil {
		return fmt.Errorf("model file %s: %w", modelFile, err)
	}

	t.pattern = pattern
	t.merges = merges
	t.order = order
	t.vocab = vocab
	t.rebuildLookup()
	return nil
}
