package domain

import "context"

// Tagger assigns a part of speech to each word it recognizes.
// Words the provider cannot classify are simply absent from the result;
// callers drop them the way unencodable words are dropped.
type Tagger interface {
	Tag(ctx context.Context, words []string) (map[string]PartOfSpeech, error)
}

// HealthChecker is implemented by taggers that can verify provider
// availability.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
