// Package dictionary loads newline-delimited word lists into a
// core.Dictionary.
package dictionary

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/wordchain/core"
)

// Read parses one word per line. Lines are trimmed and lowercased; blank
// lines are skipped.
func Read(r io.Reader) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.ToLower(strings.TrimSpace(sc.Text()))
		if w == "" {
			continue
		}
		words = append(words, w)
	}

	return words, sc.Err()
}

// ReadFile reads the word list at path.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f)
}

// Load reads every path concurrently and merges the words into one
// Dictionary. A path that cannot be read is logged and contributes no
// words, so Load never fails; a cancelled ctx stops the remaining reads.
func Load(ctx context.Context, logger *slog.Logger, paths ...string) *core.Dictionary {
	lists := make([][]string, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			words, err := ReadFile(path)
			if err != nil {
				logger.Error("Error during reading file line by line", "path", path, "error", err)
				return nil
			}
			logger.Debug("word list read", "path", path, "words", len(words))
			lists[i] = words
			return nil
		})
	}
	_ = g.Wait() // workers only report through the logger

	dict := core.NewDictionary()
	for _, words := range lists {
		for _, w := range words {
			dict.Add(w)
		}
	}
	logger.Info("dictionary loaded", "files", len(paths), "words", dict.Len())

	return dict
}
