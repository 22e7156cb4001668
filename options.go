package mnemo

import "go.uber.org/zap"

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	words       []Word
	lexiconPath string
	maxGroupLen int
	logger      *zap.Logger
}

// WithWords supplies the tagged word list directly. Takes precedence over
// WithLexiconFile.
func WithWords(words []Word) Option {
	return optionFunc(func(c *clientConfig) {
		c.words = words
	})
}

// WithLexiconFile loads the tagged word list from a "word:pos" file.
func WithLexiconFile(path string) Option {
	return optionFunc(func(c *clientConfig) {
		c.lexiconPath = path
	})
}

// WithMaxGroupLen sets how many digits one word may absorb. Default: 3.
func WithMaxGroupLen(n int) Option {
	return optionFunc(func(c *clientConfig) {
		c.maxGroupLen = n
	})
}

// WithLogger enables structured logging for client operations.
// Pass nil to disable (default).
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}
