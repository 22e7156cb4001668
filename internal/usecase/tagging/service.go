// Package tagging turns a raw word list into tagged Words by batching it
// through a part-of-speech provider.
package tagging

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/majorsys/mnemo/internal/domain"
)

// DefaultBatchSize bounds how many words go into one provider request.
const DefaultBatchSize = 100

// Service orchestrates tagging of a word list.
type Service struct {
	tagger    domain.Tagger
	batchSize int
	logger    *zap.Logger
}

// New creates a tagging service.
func New(tagger domain.Tagger, logger *zap.Logger) *Service {
	return &Service{
		tagger:    tagger,
		batchSize: DefaultBatchSize,
		logger:    logger,
	}
}

// WithBatchSize overrides the provider batch size (minimum 1).
func (s *Service) WithBatchSize(n int) *Service {
	if n >= 1 {
		s.batchSize = n
	}
	return s
}

// TagWords tags the given words, preserving input order. Words the
// provider cannot classify are dropped, matching how unencodable words
// are dropped from the index.
func (s *Service) TagWords(ctx context.Context, words []string) ([]domain.Word, error) {
	tags := make(map[string]domain.PartOfSpeech, len(words))

	for start := 0; start < len(words); start += s.batchSize {
		end := min(start+s.batchSize, len(words))
		batch := words[start:end]

		got, err := s.tagger.Tag(ctx, batch)
		if err != nil {
			return nil, fmt.Errorf("tag batch %d-%d: %w", start, end, err)
		}
		for w, pos := range got {
			tags[w] = pos
		}
	}

	tagged := make([]domain.Word, 0, len(tags))
	for _, w := range words {
		pos, ok := tags[w]
		if !ok {
			continue
		}
		tagged = append(tagged, domain.Word{Text: w, POS: pos})
	}

	s.logger.Info("Tagged word list",
		zap.Int("words", len(words)),
		zap.Int("tagged", len(tagged)),
		zap.Int("untagged", len(words)-len(tagged)),
	)

	if len(tagged) == 0 {
		return nil, domain.ErrEmptyWordList
	}
	return tagged, nil
}
