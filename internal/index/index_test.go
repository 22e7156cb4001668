package index

import (
	"testing"

	"github.com/majorsys/mnemo/internal/domain"
)

func sampleWords() []domain.Word {
	return []domain.Word{
		{Text: "big", POS: domain.Adjective},
		{Text: "dog", POS: domain.Noun},
		{Text: "run", POS: domain.Verb},
		{Text: "red", POS: domain.Adjective},
		{Text: "cat", POS: domain.Noun},
		{Text: "jump", POS: domain.Verb},
		{Text: "the", POS: domain.Filler},
		{Text: "a", POS: domain.Filler},
	}
}

func TestBuild_Lookup(t *testing.T) {
	ix := Build(sampleWords())

	if got := ix.Lookup(domain.Noun, "17"); len(got) != 1 || got[0] != "dog" {
		t.Errorf(`Lookup(noun, "17") = %v, want [dog]`, got)
	}
	if got := ix.Lookup(domain.Adjective, "97"); len(got) != 1 || got[0] != "big" {
		t.Errorf(`Lookup(adjective, "97") = %v, want [big]`, got)
	}
	if got := ix.Lookup(domain.Verb, "42"); len(got) != 1 || got[0] != "run" {
		t.Errorf(`Lookup(verb, "42") = %v, want [run]`, got)
	}
}

func TestBuild_LookupMiss(t *testing.T) {
	ix := Build(sampleWords())
	if got := ix.Lookup(domain.Noun, "999"); got != nil {
		t.Errorf("miss should return empty, got %v", got)
	}
	if got := ix.Lookup(domain.PartOfSpeech("adverb"), "17"); got != nil {
		t.Errorf("unknown pos should return empty, got %v", got)
	}
}

func TestBuild_EmptyList(t *testing.T) {
	ix := Build(nil)
	if got := ix.Lookup(domain.Noun, "17"); got != nil {
		t.Errorf("empty index lookup = %v, want empty", got)
	}
	if ix.Size() != 0 || ix.Dropped() != 0 {
		t.Errorf("empty index: size=%d dropped=%d", ix.Size(), ix.Dropped())
	}
}

func TestBuild_DropsUnencodable(t *testing.T) {
	words := []domain.Word{
		{Text: "eye", POS: domain.Noun},  // pure vowel skeleton
		{Text: "Dog", POS: domain.Noun},  // not lowercase
		{Text: "d0g", POS: domain.Noun},  // not alphabetic
		{Text: "dog", POS: "adverb"},     // unknown pos
		{Text: "dog", POS: domain.Noun},  // the only survivor
	}
	ix := Build(words)
	if ix.Size() != 1 {
		t.Fatalf("Size = %d, want 1", ix.Size())
	}
	if ix.Dropped() != 4 {
		t.Errorf("Dropped = %d, want 4", ix.Dropped())
	}
}

func TestBuild_DeduplicatesAndSorts(t *testing.T) {
	words := []domain.Word{
		{Text: "toad", POS: domain.Noun}, // encodes "11"
		{Text: "dad", POS: domain.Noun},  // encodes "11"
		{Text: "dad", POS: domain.Noun},
	}
	ix := Build(words)
	got := ix.Lookup(domain.Noun, "11")
	if len(got) != 2 || got[0] != "dad" || got[1] != "toad" {
		t.Fatalf(`Lookup(noun, "11") = %v, want [dad toad]`, got)
	}
	// the duplicate counts as a dropped word
	if ix.Dropped() != 1 {
		t.Errorf("Dropped = %d, want 1", ix.Dropped())
	}
}

func TestFillers(t *testing.T) {
	ix := Build(sampleWords())
	got := ix.Fillers()
	if len(got) != 2 || got[0] != "a" || got[1] != "the" {
		t.Fatalf("Fillers() = %v, want [a the]", got)
	}
}

func TestLengthDistribution(t *testing.T) {
	ix := Build(sampleWords())
	words, skeletons := ix.LengthDistribution()
	// big dog run red cat jump: all length 3 except jump (4)
	if words[3] != 5 || words[4] != 1 {
		t.Errorf("word lengths = %v", words)
	}
	// skeletons: bg dg rn rd ct jmp
	if skeletons[2] != 5 || skeletons[3] != 1 {
		t.Errorf("skeleton lengths = %v", skeletons)
	}
}
