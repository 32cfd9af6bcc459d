package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the CLI defaults. Every field can still be overridden by a
// command-line flag; the environment (optionally via a .env file) only moves
// the baseline.
type Config struct {
	CorpusPath string // BPE_CORPUS
	ModelDir   string // BPE_MODEL_DIR
	VocabSize  int    // BPE_VOCAB_SIZE
	Encoding   string // BPE_REFERENCE_ENCODING, tiktoken encoding name
}

// Load reads the configuration from environment variables, first loading a
// .env file if one exists in the current or a parent directory.
func Load() (*Config, error) {
	_ = loadEnvFile()

	cfg := &Config{
		CorpusPath: envOr("BPE_CORPUS", filepath.Join("data", "corpus.txt")),
		ModelDir:   envOr("BPE_MODEL_DIR", "models"),
		VocabSize:  512,
		Encoding:   envOr("BPE_REFERENCE_ENCODING", "cl100k_base"),
	}

	if v := os.Getenv("BPE_VOCAB_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("BPE_VOCAB_SIZE=%q: %w", v, err)
		}
		cfg.VocabSize = n
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// loadEnvFile looks upward from the working directory until it finds a .env file.
func loadEnvFile() error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}

	for i := 0; i < 5; i++ {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			return godotenv.Load(envPath)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return nil
}
