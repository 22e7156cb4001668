package wordlist

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// FileCache persists the fetched word list next to the process so later
// runs skip the network entirely.
type FileCache struct {
	path   string
	logger *zap.Logger
}

// NewFileCache creates a cache at path.
func NewFileCache(path string, logger *zap.Logger) *FileCache {
	return &FileCache{path: path, logger: logger}
}

// Load reads the cached list. A missing file returns (nil, nil): the
// caller falls through to fetching.
func (c *FileCache) Load() ([]string, error) {
	data, err := os.ReadFile(filepath.Clean(c.path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read word cache %s: %w", c.path, err)
	}

	var words []string
	for _, line := range strings.Split(string(data), "\n") {
		w := strings.TrimSpace(line)
		if w != "" {
			words = append(words, w)
		}
	}
	c.logger.Info("Loaded cached word list", zap.String("path", c.path), zap.Int("words", len(words)))
	return words, nil
}

// Save writes the list to the cache file.
func (c *FileCache) Save(words []string) error {
	data := strings.Join(words, "\n") + "\n"
	if err := os.WriteFile(c.path, []byte(data), 0o600); err != nil {
		return fmt.Errorf("write word cache %s: %w", c.path, err)
	}
	c.logger.Info("Saved word list", zap.String("path", c.path), zap.Int("words", len(words)))
	return nil
}
