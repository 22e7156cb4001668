package phrase

import (
	"errors"
	"testing"

	"github.com/majorsys/mnemo/internal/domain"
	"github.com/majorsys/mnemo/internal/index"
)

func testLexicon(t *testing.T) *index.Index {
	t.Helper()
	return index.Build([]domain.Word{
		{Text: "big", POS: domain.Adjective},  // 97
		{Text: "red", POS: domain.Adjective},  // 41
		{Text: "dog", POS: domain.Noun},       // 17
		{Text: "cat", POS: domain.Noun},       // 71
		{Text: "moon", POS: domain.Noun},      // 32
		{Text: "run", POS: domain.Verb},       // 42
		{Text: "jump", POS: domain.Verb},      // 639
		{Text: "the", POS: domain.Filler},
		{Text: "a", POS: domain.Filler},
	})
}

func TestAssemble_AdjectiveNoun(t *testing.T) {
	s := New(testLexicon(t))
	got, err := s.Assemble("9717")
	if err != nil {
		t.Fatal(err)
	}
	if got != "the big dog" {
		t.Fatalf(`Assemble("9717") = %q, want "the big dog"`, got)
	}
}

func TestAssemble_FullPhrase(t *testing.T) {
	s := New(testLexicon(t))
	got, err := s.Assemble("971742")
	if err != nil {
		t.Fatal(err)
	}
	if got != "the big dog run" {
		t.Fatalf(`Assemble("971742") = %q, want "the big dog run"`, got)
	}
}

func TestAssemble_SingleGroup(t *testing.T) {
	s := New(testLexicon(t))
	got, err := s.Assemble("17")
	if err != nil {
		t.Fatal(err)
	}
	// one group resolves as a bare noun behind the article
	if got != "the dog" {
		t.Fatalf(`Assemble("17") = %q, want "the dog"`, got)
	}
}

func TestAssemble_InvalidInput(t *testing.T) {
	s := New(testLexicon(t))
	for _, in := range []string{"", "abc", "12a3", "12 3", "-12"} {
		t.Run("in="+in, func(t *testing.T) {
			if _, err := s.Assemble(in); !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("Assemble(%q) error = %v, want ErrInvalidInput", in, err)
			}
		})
	}
}

func TestAssemble_PlaceholderForUnmatched(t *testing.T) {
	s := New(testLexicon(t))
	// no word encodes 8 or 88; partial success is preferred over failure
	got, err := s.Assemble("8817")
	if err != nil {
		t.Fatal(err)
	}
	if got != "the 8 8 dog" {
		t.Fatalf(`Assemble("8817") = %q, want "the 8 8 dog"`, got)
	}
}

func TestAssemble_SlotFallback(t *testing.T) {
	s := New(testLexicon(t))
	// "32" only matches a noun; in the adjective slot it falls back to it.
	got, err := s.Assemble("3217")
	if err != nil {
		t.Fatal(err)
	}
	if got != "the moon dog" {
		t.Fatalf(`Assemble("3217") = %q, want "the moon dog"`, got)
	}
}

func TestAssemble_Idempotent(t *testing.T) {
	s := New(testLexicon(t))
	first, err := s.Assemble("971742")
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		again, err := s.Assemble("971742")
		if err != nil {
			t.Fatal(err)
		}
		if again != first {
			t.Fatalf("output changed between calls: %q then %q", first, again)
		}
	}
}

func TestAssemble_LexicographicTieBreak(t *testing.T) {
	ix := index.Build([]domain.Word{
		{Text: "toad", POS: domain.Noun}, // 11
		{Text: "dad", POS: domain.Noun},  // 11
		{Text: "the", POS: domain.Filler},
	})
	s := New(ix)
	got, err := s.Assemble("11")
	if err != nil {
		t.Fatal(err)
	}
	if got != "the dad" {
		t.Fatalf(`Assemble("11") = %q, want "the dad"`, got)
	}
}

func TestAssemble_DefaultArticleWithoutFillers(t *testing.T) {
	// A word list with no fillers still yields an article.
	ix := index.Build([]domain.Word{
		{Text: "big", POS: domain.Adjective}, // 97
		{Text: "dog", POS: domain.Noun},      // 17
	})
	s := New(ix)
	got, err := s.Assemble("9717")
	if err != nil {
		t.Fatal(err)
	}
	if got != "the big dog" {
		t.Fatalf(`Assemble("9717") = %q, want "the big dog"`, got)
	}
}

func TestAssemble_SmallestFillerArticle(t *testing.T) {
	// Without "the" among the fillers, the smallest filler leads.
	ix := index.Build([]domain.Word{
		{Text: "dog", POS: domain.Noun}, // 17
		{Text: "of", POS: domain.Filler},
		{Text: "an", POS: domain.Filler},
	})
	s := New(ix)
	got, err := s.Assemble("17")
	if err != nil {
		t.Fatal(err)
	}
	if got != "an dog" {
		t.Fatalf(`Assemble("17") = %q, want "an dog"`, got)
	}
}

func TestAssemble_ChainsExtraGroups(t *testing.T) {
	s := New(testLexicon(t))
	// four groups: adjective noun verb noun
	got, err := s.Assemble("97174232")
	if err != nil {
		t.Fatal(err)
	}
	if got != "the big dog run moon" {
		t.Fatalf(`Assemble("97174232") = %q, want "the big dog run moon"`, got)
	}
}

func TestWithMaxGroupLen(t *testing.T) {
	s := New(testLexicon(t)).WithMaxGroupLen(2)
	// "639" (jump) no longer fits in one group
	got, err := s.Assemble("639")
	if err != nil {
		t.Fatal(err)
	}
	if got == "the jump" {
		t.Fatalf("max group length not honored: %q", got)
	}
}
