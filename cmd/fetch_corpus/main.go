package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

const defaultCorpusURL = "https://raw.githubusercontent.com/karpathy/minbpe/master/tests/taylorswift.txt"

func download(url, destPath string) error {
	// 1. GET
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: unexpected status %s", url, resp.Status)
	}

	// 2. create dest file
	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", destPath, err)
	}
	defer out.Close()

	// 3. copy body -> file
	n, err := io.Copy(out, resp.Body)
	if err != nil {
		return fmt.Errorf("write %s: %w", destPath, err)
	}
	if n == 0 {
		return fmt.Errorf("download %s: got 0 bytes", url)
	}

	return nil
}

func main() {
	url := flag.String("url", defaultCorpusURL, "corpus URL to download")
	dest := flag.String("out", filepath.Join("data", "corpus.txt"), "destination file")
	flag.Parse()

	if err := os.MkdirAll(filepath.Dir(*dest), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "mkdir %s: %v\n", filepath.Dir(*dest), err)
		os.Exit(1)
	}

	fmt.Printf("-> downloading %s\n", *url)
	if err := download(*url, *dest); err != nil {
		fmt.Fprintf(os.Stderr, "error downloading corpus: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("done. corpus at %s\n", *dest)
}
