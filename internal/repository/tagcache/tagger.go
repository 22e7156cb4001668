// Package tagcache caches part-of-speech tags in a key-value store so a
// word list is only sent to the tagging provider once.
package tagcache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/majorsys/mnemo/internal/db"
	"github.com/majorsys/mnemo/internal/domain"
)

var cacheKeyPrefix = domain.KeyPrefix + "tag_cache:"

// noTag marks words the provider could not classify, so they are not
// re-sent on every run.
const noTag = "-"

// store is the consumer interface for the tag cache (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// CachedTagger decorates a tagger with a KV-store cache. Store failures
// degrade to pass-through: tagging still works, it just costs a request.
type CachedTagger struct {
	inner      domain.Tagger
	store      store
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

// New creates a caching decorator.
// cacheTotal is a counter vec with label "result" ("hit"/"miss"), passed explicitly.
func New(
	inner domain.Tagger,
	s store,
	cacheTotal *prometheus.CounterVec,
	logger *zap.Logger,
) *CachedTagger {
	return &CachedTagger{
		inner:      inner,
		store:      s,
		cacheTotal: cacheTotal,
		logger:     logger,
	}
}

// WithTTL makes cached tags expire after d. Zero or negative keeps them
// forever.
func (c *CachedTagger) WithTTL(d time.Duration) *CachedTagger {
	if d > 0 {
		c.ttl = d
	}
	return c
}

// Tag returns cached tags where available and asks the inner tagger only
// for the misses.
func (c *CachedTagger) Tag(ctx context.Context, words []string) (map[string]domain.PartOfSpeech, error) {
	tags := make(map[string]domain.PartOfSpeech, len(words))
	var misses []string

	for _, w := range words {
		pos, found := c.getFromCache(ctx, w)
		if !found {
			c.incCache("miss")
			misses = append(misses, w)
			continue
		}
		c.incCache("hit")
		if pos != "" {
			tags[w] = pos
		}
	}

	if len(misses) == 0 {
		return tags, nil
	}

	fresh, err := c.inner.Tag(ctx, misses)
	if err != nil {
		return nil, err
	}

	for _, w := range misses {
		pos, ok := fresh[w]
		if ok {
			tags[w] = pos
			c.putToCache(ctx, w, string(pos))
		} else {
			// remember the negative result too
			c.putToCache(ctx, w, noTag)
		}
	}
	return tags, nil
}

// HealthCheck delegates to the inner tagger when it supports checks.
func (c *CachedTagger) HealthCheck(ctx context.Context) error {
	if hc, ok := c.inner.(domain.HealthChecker); ok {
		return hc.HealthCheck(ctx)
	}
	return nil
}

func (c *CachedTagger) incCache(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}

func (c *CachedTagger) cacheKey(word string) string {
	h := sha256.Sum256([]byte(word))
	return cacheKeyPrefix + hex.EncodeToString(h[:])
}

// getFromCache returns the cached part of speech for a word. An empty
// PartOfSpeech with found=true means a cached negative result.
func (c *CachedTagger) getFromCache(ctx context.Context, word string) (domain.PartOfSpeech, bool) {
	data, err := c.store.Get(ctx, c.cacheKey(word))
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			c.logger.Warn("Failed to get cached tag", zap.String("word", word), zap.Error(err))
		}
		return "", false
	}
	if len(data) == 0 {
		return "", false
	}
	if string(data) == noTag {
		return "", true
	}
	pos, err := domain.ParsePartOfSpeech(string(data))
	if err != nil {
		c.logger.Warn("Corrupt cached tag", zap.String("word", word), zap.Error(err))
		return "", false
	}
	return pos, true
}

func (c *CachedTagger) putToCache(ctx context.Context, word, value string) {
	var err error
	if c.ttl > 0 {
		err = c.store.SetWithTTL(ctx, c.cacheKey(word), []byte(value), c.ttl)
	} else {
		err = c.store.Set(ctx, c.cacheKey(word), []byte(value))
	}
	if err != nil {
		c.logger.Warn("Failed to cache tag", zap.String("word", word), zap.Error(err))
	}
}
