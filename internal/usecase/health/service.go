// Package health aggregates readiness checks for the service.
package health

import (
	"context"
	"fmt"

	"github.com/majorsys/mnemo/internal/db"
	"github.com/majorsys/mnemo/internal/domain"
)

// IndexReader reports how many words the index carries.
type IndexReader interface {
	Size() int
}

// Service reports service readiness.
type Service struct {
	index  IndexReader
	store  db.Pinger            // optional
	tagger domain.HealthChecker // optional
}

// New creates a health service. store and tagger may be nil when no cache
// or tagging provider is wired.
func New(index IndexReader, store db.Pinger, tagger domain.HealthChecker) *Service {
	return &Service{index: index, store: store, tagger: tagger}
}

// Check returns nil when the service can answer phrase requests.
func (s *Service) Check(ctx context.Context) error {
	if s.index == nil || s.index.Size() == 0 {
		return fmt.Errorf("word index is empty")
	}
	if s.store != nil {
		if err := s.store.Ping(ctx); err != nil {
			return fmt.Errorf("cache store: %w", err)
		}
	}
	if s.tagger != nil {
		if err := s.tagger.HealthCheck(ctx); err != nil {
			return fmt.Errorf("tagging provider: %w", err)
		}
	}
	return nil
}
