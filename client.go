// Package mnemo generates mnemonic phrases for numbers using the Major
// System: digits map to consonant sounds, and words whose consonant
// skeletons encode the digits are arranged into short phrases.
package mnemo

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/majorsys/mnemo/internal/cipher"
	"github.com/majorsys/mnemo/internal/domain"
	"github.com/majorsys/mnemo/internal/index"
	lexiconrepo "github.com/majorsys/mnemo/internal/repository/lexicon"
	phraseuc "github.com/majorsys/mnemo/internal/usecase/phrase"
	statsuc "github.com/majorsys/mnemo/internal/usecase/stats"
)

// PartOfSpeech is the grammatical category a word is filed under.
type PartOfSpeech string

// Parts of speech accepted in a word list. Fillers (articles,
// prepositions) only pad phrases and never encode digits.
const (
	Adjective PartOfSpeech = "adjective"
	Noun      PartOfSpeech = "noun"
	Verb      PartOfSpeech = "verb"
	Filler    PartOfSpeech = "filler"
)

// Word is a lowercase alphabetic word with its part-of-speech tag.
type Word struct {
	Text string
	POS  PartOfSpeech
}

// Stats summarizes the indexed word list.
type Stats struct {
	Words           int
	Dropped         int
	WordLengths     map[int]int
	SkeletonLengths map[int]int
}

// Sentinel errors returned by the client. Test with errors.Is.
var (
	ErrInvalidInput = domain.ErrInvalidInput
	ErrNoEncoding   = domain.ErrNoEncoding
)

// Client is the mnemo SDK entry point. Safe for concurrent use: the word
// index is built once in New and read-only thereafter.
type Client struct {
	index     *index.Index
	phraseSvc *phraseuc.Service
	statsSvc  *statsuc.Service
}

// New creates a Client over a tagged word list, supplied either directly
// (WithWords) or as a lexicon file (WithLexiconFile).
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}

	logger := cfg.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	words := make([]domain.Word, 0, len(cfg.words))
	for _, w := range cfg.words {
		words = append(words, domain.Word{Text: w.Text, POS: domain.PartOfSpeech(w.POS)})
	}

	if len(words) == 0 {
		if cfg.lexiconPath == "" {
			return nil, errors.New("mnemo: word list required (use WithWords or WithLexiconFile)")
		}
		loaded, err := lexiconrepo.Load(cfg.lexiconPath, logger)
		if err != nil {
			return nil, fmt.Errorf("mnemo: %w", err)
		}
		words = loaded
	}

	ix := index.Build(words)
	if ix.Size() == 0 {
		return nil, fmt.Errorf("mnemo: %w: no usable content words", domain.ErrEmptyWordList)
	}

	phraseSvc := phraseuc.New(ix)
	if cfg.maxGroupLen > 0 {
		phraseSvc = phraseSvc.WithMaxGroupLen(cfg.maxGroupLen)
	}

	return &Client{
		index:     ix,
		phraseSvc: phraseSvc,
		statsSvc:  statsuc.New(ix),
	}, nil
}

// GeneratePhrase converts a digit string into a memorable phrase.
// Digit groups no word encodes appear as raw digits in the output.
func (c *Client) GeneratePhrase(number string) (string, error) {
	phrase, err := c.phraseSvc.Assemble(number)
	if err != nil {
		return "", fmt.Errorf("mnemo: %w", err)
	}
	return phrase, nil
}

// Encode returns the digit sequence a word encodes under the Major System.
func (c *Client) Encode(word string) (string, error) {
	enc, err := cipher.Encode(word)
	if err != nil {
		return "", fmt.Errorf("mnemo: %w", err)
	}
	return enc, nil
}

// Stats reports how the word list was indexed.
func (c *Client) Stats() Stats {
	report := c.statsSvc.Report()
	return Stats{
		Words:           report.Words,
		Dropped:         report.Dropped,
		WordLengths:     report.WordLengths,
		SkeletonLengths: report.SkeletonLengths,
	}
}
