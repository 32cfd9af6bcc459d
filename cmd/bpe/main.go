package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gobpe/gobpe"
	"github.com/gobpe/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	var (
		variant   = flag.String("tokenizer", "regex", "tokenizer variant: basic or regex")
		corpus    = flag.String("corpus", cfg.CorpusPath, "training corpus file")
		vocabSize = flag.Int("vocab-size", cfg.VocabSize, "target vocabulary size (>= 256)")
		verbose   = flag.Bool("verbose", false, "log every merge during training")
		outDir    = flag.String("out", cfg.ModelDir, "output directory for model files")
		model     = flag.String("model", "", "use an existing .model file instead of training")
		encode    = flag.String("encode", "", "text to encode (requires -model)")
		decode    = flag.String("decode", "", "comma-separated token IDs to decode (requires -model)")
	)
	flag.Parse()

	if *model != "" {
		if err := runWithModel(*model, *encode, *decode); err != nil {
			log.Fatal(err)
		}
		return
	}

	if err := runTrain(*variant, *corpus, *vocabSize, *verbose, *outDir); err != nil {
		log.Fatal(err)
	}
}

func runTrain(variant, corpus string, vocabSize int, verbose bool, outDir string) error {
	var tok gobpe.Tokenizer
	switch variant {
	case "basic":
		tok = gobpe.NewBasic()
	case "regex":
		tok = gobpe.NewRegex()
	default:
		return fmt.Errorf("unknown tokenizer %q (want basic or regex)", variant)
	}

	text, err := os.ReadFile(corpus)
	if err != nil {
		return fmt.Errorf("read corpus: %w", err)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", outDir, err)
	}

	start := time.Now()
	if err := tok.Train(string(text), vocabSize, verbose); err != nil {
		return err
	}

	prefix := filepath.Join(outDir, variant)
	if err := tok.Save(prefix); err != nil {
		return err
	}

	log.Printf("trained on %d bytes in %.2fs, model saved to %s.model",
		len(text), time.Since(start).Seconds(), prefix)
	return nil
}

func runWithModel(modelFile, encodeText, decodeIDs string) error {
	if encodeText == "" && decodeIDs == "" {
		return errors.New("nothing to do: pass -encode or -decode with -model")
	}

	tok, err := gobpe.Load(modelFile)
	if err != nil {
		return err
	}

	if encodeText != "" {
		ids := tok.Encode(encodeText)
		parts := make([]string, len(ids))
		for i, id := range ids {
			parts[i] = strconv.Itoa(id)
		}
		fmt.Println(strings.Join(parts, " "))
	}

	if decodeIDs != "" {
		var ids []int
		for _, field := range strings.Split(decodeIDs, ",") {
			id, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return fmt.Errorf("bad token id %q: %w", field, err)
			}
			ids = append(ids, id)
		}
		fmt.Println(tok.Decode(ids))
	}

	return nil
}
