package wordlist

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/majorsys/mnemo/internal/domain"
)

// Loader combines the file cache and the HTTP fetcher: cache first, then
// fetch and fill the cache.
type Loader struct {
	cache   *FileCache
	fetcher *Fetcher
	logger  *zap.Logger
}

// NewLoader creates a loader. cache may be nil to always fetch.
func NewLoader(cache *FileCache, fetcher *Fetcher, logger *zap.Logger) *Loader {
	return &Loader{cache: cache, fetcher: fetcher, logger: logger}
}

// Load returns the raw word list. A cache write failure is logged, not
// fatal: the list is already in hand.
func (l *Loader) Load(ctx context.Context) ([]string, error) {
	if l.cache != nil {
		words, err := l.cache.Load()
		if err != nil {
			return nil, err
		}
		if len(words) > 0 {
			return words, nil
		}
	}

	words, err := l.fetcher.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: source returned no usable words", domain.ErrEmptyWordList)
	}

	if l.cache != nil {
		if err := l.cache.Save(words); err != nil {
			l.logger.Warn("Failed to save word cache", zap.Error(err))
		}
	}
	return words, nil
}
