// Package cipher implements the Major System consonant cipher: the fixed
// digit/sound table and the reduction of words to digit encodings.
package cipher

import (
	"fmt"

	"github.com/majorsys/mnemo/internal/domain"
)

// Variant disambiguates letters whose sound depends on context.
// Soft c/g occurs before e, i, y; hard occurs elsewhere.
type Variant uint8

// Sound variants.
const (
	VariantNone Variant = iota
	VariantSoft
	VariantHard
)

// Sound is one consonant sound of the cipher. Soft and hard c/g are
// distinct Sound values, so each sound maps to exactly one digit.
type Sound struct {
	// Letters are the letters the sound consumes from a word ("th", "qu", "c").
	Letters string
	Variant Variant
}

func (s Sound) String() string {
	switch s.Variant {
	case VariantSoft:
		return s.Letters + "(soft)"
	case VariantHard:
		return s.Letters + "(hard)"
	default:
		return s.Letters
	}
}

func snd(letters string) Sound  { return Sound{Letters: letters} }
func soft(letters string) Sound { return Sound{Letters: letters, Variant: VariantSoft} }
func hard(letters string) Sound { return Sound{Letters: letters, Variant: VariantHard} }

// table is the fixed Major System reference. Order within a digit follows
// the classical presentation; it carries no semantic weight.
var table = [10][]Sound{
	0: {snd("z"), snd("s"), soft("c")},
	1: {snd("d"), snd("t")},
	2: {snd("n")},
	3: {snd("m")},
	4: {snd("r")},
	5: {snd("l")},
	6: {snd("j"), snd("sh"), snd("ch"), soft("g")},
	7: {snd("k"), hard("c"), hard("g"), snd("q"), snd("qu")},
	8: {snd("f"), snd("v"), snd("th")},
	9: {snd("b"), snd("p")},
}

// digitBySound is the reverse mapping. Built once; every sound maps to
// exactly one digit.
var digitBySound = func() map[Sound]byte {
	m := make(map[Sound]byte)
	for d, sounds := range table {
		for _, s := range sounds {
			if prev, ok := m[s]; ok {
				panic(fmt.Sprintf("cipher: sound %s maps to both %d and %d", s, prev, d))
			}
			m[s] = byte('0' + d)
		}
	}
	return m
}()

// SoundsFor returns the consonant sounds that may represent digit d
// ('0' to '9'). Unknown digits yield nil.
func SoundsFor(d byte) []Sound {
	if d < '0' || d > '9' {
		return nil
	}
	sounds := table[d-'0']
	out := make([]Sound, len(sounds))
	copy(out, sounds)
	return out
}

// DigitFor returns the digit character a sound encodes.
// Fails with domain.ErrUnknownSound for unregistered sounds.
func DigitFor(s Sound) (byte, error) {
	d, ok := digitBySound[s]
	if !ok {
		return 0, fmt.Errorf("%w: %s", domain.ErrUnknownSound, s)
	}
	return d, nil
}
