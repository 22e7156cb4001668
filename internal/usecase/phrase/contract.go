package phrase

import "github.com/majorsys/mnemo/internal/domain"

// Lexicon is the consumer contract for the word index. The assembler
// only queries it; the index stays read-only.
type Lexicon interface {
	Lookup(pos domain.PartOfSpeech, digits string) []string
	Fillers() []string
}
