// Package domain holds the core types shared across mnemo layers.
package domain

import "fmt"

// PartOfSpeech is the grammatical category a word is filed under.
type PartOfSpeech string

// Parts of speech known to the word index. Filler words (articles,
// prepositions) are not tied to any digit group; they only pad phrases.
const (
	Adjective PartOfSpeech = "adjective"
	Noun      PartOfSpeech = "noun"
	Verb      PartOfSpeech = "verb"
	Filler    PartOfSpeech = "filler"
)

// ContentParts lists the parts of speech that occupy phrase slots, in
// lookup priority order.
var ContentParts = []PartOfSpeech{Noun, Adjective, Verb}

// ParsePartOfSpeech normalizes a tag string to a PartOfSpeech.
// Accepts the short WordNet-style tags ("adj", "n", "v") alongside the
// full names.
func ParsePartOfSpeech(s string) (PartOfSpeech, error) {
	switch s {
	case "adjective", "adj", "a":
		return Adjective, nil
	case "noun", "n":
		return Noun, nil
	case "verb", "v":
		return Verb, nil
	case "filler", "article", "preposition":
		return Filler, nil
	default:
		return "", fmt.Errorf("unknown part of speech %q", s)
	}
}

// Word is a lowercase alphabetic word with its part-of-speech tag.
// Immutable once loaded.
type Word struct {
	Text string
	POS  PartOfSpeech
}

// Valid reports whether the word is non-empty, lowercase and alphabetic
// with a known part of speech.
func (w Word) Valid() bool {
	if w.Text == "" {
		return false
	}
	for i := 0; i < len(w.Text); i++ {
		c := w.Text[i]
		if c < 'a' || c > 'z' {
			return false
		}
	}
	switch w.POS {
	case Adjective, Noun, Verb, Filler:
		return true
	default:
		return false
	}
}
