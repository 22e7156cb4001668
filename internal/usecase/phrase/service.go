// Package phrase assembles memorable phrases from digit strings: it
// partitions the input into groups, resolves each group against the word
// index and orders the results into article-adjective-noun-verb slots.
package phrase

import (
	"fmt"
	"strings"

	"github.com/majorsys/mnemo/internal/domain"
	"github.com/majorsys/mnemo/internal/metrics"
)

// DefaultMaxGroupLen bounds how many digits one word may absorb.
const DefaultMaxGroupLen = 3

// preferredArticle leads every phrase unless the word list supplies a
// different filler.
const preferredArticle = "the"

// Service turns digit strings into phrases. Stateless across calls: each
// Assemble invocation is a pure function of the input and the lexicon.
type Service struct {
	lex         Lexicon
	maxGroupLen int
	article     string
}

// New creates a phrase service over the given lexicon.
func New(lex Lexicon) *Service {
	return &Service{
		lex:         lex,
		maxGroupLen: DefaultMaxGroupLen,
		article:     pickArticle(lex.Fillers()),
	}
}

// WithMaxGroupLen overrides the maximum digits per group (minimum 1).
func (s *Service) WithMaxGroupLen(n int) *Service {
	if n >= 1 {
		s.maxGroupLen = n
	}
	return s
}

// pickArticle chooses the leading article: "the" when available, otherwise
// the lexicographically smallest filler, otherwise "the" as the default.
// Every phrase carries an article even when the word list has no fillers.
func pickArticle(fillers []string) string {
	for _, f := range fillers {
		if f == preferredArticle {
			return f
		}
	}
	if len(fillers) > 0 {
		return fillers[0] // fillers arrive sorted
	}
	return preferredArticle
}

// Assemble converts a digit string into a phrase. Fails with
// domain.ErrInvalidInput for empty or non-digit input; any other outcome
// produces a phrase, substituting the raw digits for unmatched groups.
func (s *Service) Assemble(digits string) (string, error) {
	if err := validate(digits); err != nil {
		return "", err
	}

	groups := s.partition(digits)
	slots := slotParts(len(groups))

	words := make([]string, 0, len(groups)+1)
	words = append(words, s.article)
	for i, g := range groups {
		words = append(words, s.resolve(g, slots[i]))
	}
	return strings.Join(words, " "), nil
}

func validate(digits string) error {
	if digits == "" {
		return fmt.Errorf("%w: empty digit string", domain.ErrInvalidInput)
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return fmt.Errorf("%w: %q is not a digit string", domain.ErrInvalidInput, digits)
		}
	}
	return nil
}

// partition splits digits into contiguous groups, greedily taking the
// longest prefix (up to maxGroupLen) that some content part of speech can
// match. When no length matches, a single digit becomes its own group and
// resolves to a placeholder later.
func (s *Service) partition(digits string) []string {
	var groups []string
	for pos := 0; pos < len(digits); {
		take := 1
		for l := min(s.maxGroupLen, len(digits)-pos); l >= 1; l-- {
			if s.anyMatch(digits[pos : pos+l]) {
				take = l
				break
			}
		}
		groups = append(groups, digits[pos:pos+take])
		pos += take
	}
	return groups
}

func (s *Service) anyMatch(group string) bool {
	for _, pos := range domain.ContentParts {
		if len(s.lex.Lookup(pos, group)) > 0 {
			return true
		}
	}
	return false
}

// slotParts assigns a part of speech to each group position:
// one group is a bare noun, two make adjective+noun, three make
// adjective+noun+verb, and further groups chain noun/verb pairs.
func slotParts(n int) []domain.PartOfSpeech {
	if n == 1 {
		return []domain.PartOfSpeech{domain.Noun}
	}
	slots := make([]domain.PartOfSpeech, n)
	slots[0] = domain.Adjective
	for i := 1; i < n; i++ {
		if (i-1)%2 == 0 {
			slots[i] = domain.Noun
		} else {
			slots[i] = domain.Verb
		}
	}
	return slots
}

// resolve picks the word for a group: the slot's part of speech first,
// then the remaining content parts in priority order, then the digits
// themselves as a placeholder. Ties break to the lexicographically
// smallest word so output is reproducible.
func (s *Service) resolve(group string, slot domain.PartOfSpeech) string {
	if words := s.lex.Lookup(slot, group); len(words) > 0 {
		return words[0]
	}
	for _, pos := range domain.ContentParts {
		if pos == slot {
			continue
		}
		if words := s.lex.Lookup(pos, group); len(words) > 0 {
			return words[0]
		}
	}
	metrics.PhrasePlaceholdersTotal.Inc()
	return group
}
