// Command tikbench compares a trained model's compression against a tiktoken
// reference encoding on the same corpus.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gobpe/gobpe"
	"github.com/gobpe/internal/config"
	"github.com/gobpe/internal/reference"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	var (
		model    = flag.String("model", "models/regex.model", "trained .model file")
		corpus   = flag.String("corpus", cfg.CorpusPath, "text file to measure on")
		encoding = flag.String("encoding", cfg.Encoding, "tiktoken encoding name")
	)
	flag.Parse()

	tok, err := gobpe.Load(*model)
	if err != nil {
		log.Fatalf("load model: %v", err)
	}

	ref, err := reference.New(*encoding)
	if err != nil {
		log.Fatalf("load reference encoding: %v", err)
	}

	data, err := os.ReadFile(*corpus)
	if err != nil {
		log.Fatalf("read corpus: %v", err)
	}
	text := string(data)

	ours := len(tok.Encode(text))
	theirs := ref.Count(text)

	fmt.Printf("corpus: %d bytes\n", len(data))
	fmt.Printf("%-12s %8d tokens  %.2f bytes/token\n", *model, ours, ratio(len(data), ours))
	fmt.Printf("%-12s %8d tokens  %.2f bytes/token\n", *encoding, theirs, ratio(len(data), theirs))
}

func ratio(bytes, tokens int) float64 {
	if tokens == 0 {
		return 0
	}
	return float64(bytes) / float64(tokens)
}
