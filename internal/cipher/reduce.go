package cipher

import (
	"fmt"
	"strings"

	"github.com/majorsys/mnemo/internal/domain"
)

// Skeleton is the ordered consonant-sound sequence extracted from a word
// after vowels and unmapped letters are discarded.
type Skeleton []Sound

// Letters returns the skeleton's consonant letters concatenated
// (the "no vowels" rendering of the word).
func (sk Skeleton) Letters() string {
	var b strings.Builder
	for _, s := range sk {
		b.WriteString(s.Letters)
	}
	return b.String()
}

func (sk Skeleton) String() string {
	parts := make([]string, len(sk))
	for i, s := range sk {
		parts[i] = s.String()
	}
	return strings.Join(parts, " ")
}

// multiLetter are the sounds spanning two letters. They must match before
// single letters so that e.g. "th" is never read as "t" plus a skipped "h".
var multiLetter = []string{"sh", "ch", "th", "qu"}

// softContext reports whether the letter following c/g makes it soft.
func softContext(next byte, atEnd bool) bool {
	if atEnd {
		return false
	}
	return next == 'e' || next == 'i' || next == 'y'
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

// Reduce scans word left to right with greedy longest-match against the
// sound table, skipping vowels and letters outside the cipher, and
// returns the resulting skeleton. Fails with domain.ErrNoEncoding when
// nothing maps (pure-vowel words).
func Reduce(word string) (Skeleton, error) {
	w := strings.ToLower(word)
	var sk Skeleton

	for i := 0; i < len(w); i++ {
		if i+1 < len(w) {
			pair := w[i : i+2]
			if matched := matchPair(pair); matched != nil {
				sk = append(sk, *matched)
				i++
				continue
			}
		}

		c := w[i]
		switch {
		case isVowel(c):
			// vowels carry no digit
		case c == 'c' || c == 'g':
			s := hard(string(c))
			if softContext(byteAt(w, i+1), i+1 >= len(w)) {
				s = soft(string(c))
			}
			sk = append(sk, s)
		default:
			s := snd(string(c))
			if _, ok := digitBySound[s]; ok {
				sk = append(sk, s)
			}
			// letters outside the table (h, w, x, y, ...) are skipped
		}
	}

	if len(sk) == 0 {
		return nil, fmt.Errorf("%w: %q has no mappable consonants", domain.ErrNoEncoding, word)
	}
	return sk, nil
}

func matchPair(pair string) *Sound {
	for _, m := range multiLetter {
		if pair == m {
			s := snd(m)
			return &s
		}
	}
	return nil
}

func byteAt(s string, i int) byte {
	if i >= len(s) {
		return 0
	}
	return s[i]
}

// Encode reduces a word and maps each skeleton sound to its digit,
// producing the word's digit encoding. Deterministic for a given word.
func Encode(word string) (string, error) {
	sk, err := Reduce(word)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.Grow(len(sk))
	for _, s := range sk {
		d, err := DigitFor(s)
		if err != nil {
			// unreachable with the fixed table; surfaced for invariant checks
			return "", err
		}
		b.WriteByte(d)
	}
	return b.String(), nil
}
