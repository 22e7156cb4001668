// Package wordlist loads the raw common-words list: over HTTP with a
// local file cache in front, so the network is hit at most once.
package wordlist

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultURL is the historical source of the word list.
const DefaultURL = "https://raw.githubusercontent.com/first20hours/google-10000-english/master/google-10000-english-usa-no-swears.txt"

// DefaultMaxWords caps how much of the list is used.
const DefaultMaxWords = 1000

const fetchTimeout = 10 * time.Second

// Fetcher downloads a newline-separated word list.
type Fetcher struct {
	url      string
	maxWords int
	client   *http.Client
	logger   *zap.Logger
}

// NewFetcher creates a fetcher for the given URL. Empty url and
// non-positive maxWords fall back to the defaults.
func NewFetcher(url string, maxWords int, logger *zap.Logger) *Fetcher {
	if url == "" {
		url = DefaultURL
	}
	if maxWords <= 0 {
		maxWords = DefaultMaxWords
	}
	return &Fetcher{
		url:      url,
		maxWords: maxWords,
		client:   &http.Client{Timeout: fetchTimeout},
		logger:   logger,
	}
}

// Fetch downloads the list and returns up to maxWords lowercase
// alphabetic words, in source order.
func (f *Fetcher) Fetch(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch word list: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("fetch word list: status %d: %s", resp.StatusCode, string(body))
	}

	var words []string
	sc := bufio.NewScanner(resp.Body)
	for sc.Scan() && len(words) < f.maxWords {
		w := strings.ToLower(strings.TrimSpace(sc.Text()))
		if w == "" || !alphabetic(w) {
			continue
		}
		words = append(words, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}

	f.logger.Info("Fetched word list", zap.String("url", f.url), zap.Int("words", len(words)))
	return words, nil
}

func alphabetic(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
