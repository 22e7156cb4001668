package tagcache

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/majorsys/mnemo/internal/db"
	"github.com/majorsys/mnemo/internal/domain"
)

type mockTagger struct {
	tags  map[string]domain.PartOfSpeech
	err   error
	calls [][]string
}

func (m *mockTagger) Tag(_ context.Context, words []string) (map[string]domain.PartOfSpeech, error) {
	m.calls = append(m.calls, words)
	if m.err != nil {
		return nil, m.err
	}
	out := make(map[string]domain.PartOfSpeech)
	for _, w := range words {
		if pos, ok := m.tags[w]; ok {
			out[w] = pos
		}
	}
	return out, nil
}

// mockKVStore implements the consumer interface for tests.
type mockKVStore struct {
	data  map[string][]byte
	ttls  map[string]time.Duration
	getFn func(ctx context.Context, key string) ([]byte, error)
	setFn func(ctx context.Context, key string, value []byte) error
}

func newMockKVStore() *mockKVStore {
	return &mockKVStore{
		data: make(map[string][]byte),
		ttls: make(map[string]time.Duration),
	}
}

func (m *mockKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFn != nil {
		return m.getFn(ctx, key)
	}
	if v, ok := m.data[key]; ok {
		return v, nil
	}
	return nil, db.ErrKeyNotFound
}

func (m *mockKVStore) Set(ctx context.Context, key string, value []byte) error {
	if m.setFn != nil {
		return m.setFn(ctx, key, value)
	}
	m.data[key] = value
	return nil
}

func (m *mockKVStore) SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := m.Set(ctx, key, value); err != nil {
		return err
	}
	m.ttls[key] = ttl
	return nil
}

func newTestCachedTagger(t *testing.T, inner *mockTagger) (*CachedTagger, *mockKVStore) {
	t.Helper()
	ms := newMockKVStore()
	return New(inner, ms, nil, zap.NewNop()), ms
}
