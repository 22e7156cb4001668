// Package lexicon parses pre-tagged word lists from disk, so mnemo runs
// without a network or a tagging provider.
//
// File format: one "word:pos" pair per line, "!" starts a comment line.
package lexicon

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/majorsys/mnemo/internal/domain"
)

// Load reads a tagged lexicon file. Malformed lines are skipped with a
// warning; an entirely unusable file fails with domain.ErrEmptyWordList.
func Load(path string, logger *zap.Logger) ([]domain.Word, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open lexicon %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var words []domain.Word
	skipped := 0

	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "!") {
			continue
		}

		name, tag, ok := strings.Cut(text, ":")
		if !ok {
			skipped++
			continue
		}
		pos, err := domain.ParsePartOfSpeech(strings.TrimSpace(tag))
		if err != nil {
			skipped++
			continue
		}
		w := domain.Word{Text: strings.ToLower(strings.TrimSpace(name)), POS: pos}
		if !w.Valid() {
			skipped++
			continue
		}
		words = append(words, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read lexicon %s: %w", path, err)
	}

	if skipped > 0 {
		logger.Warn("Skipped malformed lexicon lines",
			zap.String("path", path), zap.Int("skipped", skipped))
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: lexicon %s has no usable entries", domain.ErrEmptyWordList, path)
	}

	logger.Info("Loaded lexicon", zap.String("path", path), zap.Int("words", len(words)))
	return words, nil
}
