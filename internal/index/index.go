// Package index builds the read-only word index: words grouped by part of
// speech and by the digit sequence each word encodes.
package index

import (
	"sort"

	"github.com/majorsys/mnemo/internal/cipher"
	"github.com/majorsys/mnemo/internal/domain"
)

// Entry is one processed word as it sits in the index. The slice of all
// entries is the data behind stats and CSV export.
type Entry struct {
	Word        string
	POS         domain.PartOfSpeech
	Skeleton    string
	Encoding    string
	Length      int
	SkeletonLen int
}

// Index maps (part of speech, digit encoding) to the words encoding that
// sequence. Built once per word list; read-only thereafter, so it is safe
// to share across concurrent callers without locking.
type Index struct {
	byPOS   map[domain.PartOfSpeech]map[string][]string
	fillers []string
	entries []Entry
	dropped int
}

// Build indexes the supplied word list in one pass, computing each word's
// encoding via the cipher reducer. Invalid, duplicate, and unencodable
// words are silently dropped; Dropped reports how many.
func Build(words []domain.Word) *Index {
	ix := &Index{
		byPOS: make(map[domain.PartOfSpeech]map[string][]string),
	}

	seen := make(map[domain.Word]bool, len(words))
	for _, w := range words {
		if !w.Valid() || seen[w] {
			ix.dropped++
			continue
		}
		seen[w] = true

		if w.POS == domain.Filler {
			ix.fillers = append(ix.fillers, w.Text)
			continue
		}

		sk, err := cipher.Reduce(w.Text)
		if err != nil {
			ix.dropped++
			continue
		}
		enc, err := cipher.Encode(w.Text)
		if err != nil {
			ix.dropped++
			continue
		}

		bucket := ix.byPOS[w.POS]
		if bucket == nil {
			bucket = make(map[string][]string)
			ix.byPOS[w.POS] = bucket
		}
		bucket[enc] = append(bucket[enc], w.Text)

		ix.entries = append(ix.entries, Entry{
			Word:        w.Text,
			POS:         w.POS,
			Skeleton:    sk.Letters(),
			Encoding:    enc,
			Length:      len(w.Text),
			SkeletonLen: len(sk.Letters()),
		})
	}

	// Deterministic lookup order: every bucket sorted lexicographically.
	for _, bucket := range ix.byPOS {
		for _, list := range bucket {
			sort.Strings(list)
		}
	}
	sort.Strings(ix.fillers)
	sort.Slice(ix.entries, func(i, j int) bool {
		if ix.entries[i].Word != ix.entries[j].Word {
			return ix.entries[i].Word < ix.entries[j].Word
		}
		return ix.entries[i].POS < ix.entries[j].POS
	})

	return ix
}

// Lookup returns all words of the given part of speech encoding digits,
// sorted lexicographically. An empty result is a normal outcome, not an
// error.
func (ix *Index) Lookup(pos domain.PartOfSpeech, digits string) []string {
	bucket := ix.byPOS[pos]
	if bucket == nil {
		return nil
	}
	return bucket[digits]
}

// Fillers returns the sorted filler words supplied with the word list.
func (ix *Index) Fillers() []string {
	return ix.fillers
}

// Size returns the number of indexed content words.
func (ix *Index) Size() int {
	return len(ix.entries)
}

// Dropped returns how many supplied words were excluded (invalid,
// duplicate, or unencodable). Diagnostic only.
func (ix *Index) Dropped() int {
	return ix.dropped
}

// Entries returns the processed word table, sorted by word.
func (ix *Index) Entries() []Entry {
	return ix.entries
}

// LengthDistribution returns word-length counts for original words and
// for their consonant skeletons.
func (ix *Index) LengthDistribution() (words, skeletons map[int]int) {
	words = make(map[int]int)
	skeletons = make(map[int]int)
	for _, e := range ix.entries {
		words[e.Length]++
		skeletons[e.SkeletonLen]++
	}
	return words, skeletons
}
