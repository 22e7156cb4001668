package mnemo

import (
	"errors"
	"path/filepath"
	"testing"
)

func testWords() []Word {
	return []Word{
		{Text: "big", POS: Adjective},
		{Text: "red", POS: Adjective},
		{Text: "dog", POS: Noun},
		{Text: "moon", POS: Noun},
		{Text: "run", POS: Verb},
		{Text: "the", POS: Filler},
		{Text: "a", POS: Filler},
	}
}

func TestNew_NoWordList(t *testing.T) {
	if _, err := New(); err == nil {
		t.Fatal("expected error without a word list")
	}
}

func TestNew_OnlyFillers(t *testing.T) {
	_, err := New(WithWords([]Word{{Text: "the", POS: Filler}}))
	if err == nil {
		t.Fatal("expected error for a word list with no content words")
	}
}

func TestGeneratePhrase(t *testing.T) {
	c, err := New(WithWords(testWords()))
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		number string
		want   string
	}{
		{"9717", "the big dog"},
		{"971742", "the big dog run"},
		{"17", "the dog"},
		{"32", "the moon"},
	}
	for _, tc := range cases {
		t.Run(tc.number, func(t *testing.T) {
			got, err := c.GeneratePhrase(tc.number)
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Errorf("GeneratePhrase(%q) = %q, want %q", tc.number, got, tc.want)
			}
		})
	}
}

func TestGeneratePhrase_InvalidInput(t *testing.T) {
	c, err := New(WithWords(testWords()))
	if err != nil {
		t.Fatal(err)
	}

	for _, number := range []string{"", "12a", "1 2"} {
		if _, err := c.GeneratePhrase(number); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("GeneratePhrase(%q): err = %v, want ErrInvalidInput", number, err)
		}
	}
}

func TestEncode(t *testing.T) {
	c, err := New(WithWords(testWords()))
	if err != nil {
		t.Fatal(err)
	}

	got, err := c.Encode("this")
	if err != nil {
		t.Fatal(err)
	}
	if got != "80" {
		t.Errorf("Encode(this) = %q, want 80", got)
	}

	if _, err := c.Encode("eye"); !errors.Is(err, ErrNoEncoding) {
		t.Errorf("Encode(eye): err = %v, want ErrNoEncoding", err)
	}
}

func TestWithLexiconFile(t *testing.T) {
	path := filepath.Join("data", "lexicon.txt")
	c, err := New(WithLexiconFile(path))
	if err != nil {
		t.Fatal(err)
	}

	got, err := c.GeneratePhrase("9717")
	if err != nil {
		t.Fatal(err)
	}
	if got != "the big dog" {
		t.Errorf("GeneratePhrase(9717) = %q, want %q", got, "the big dog")
	}
}

func TestStats(t *testing.T) {
	c, err := New(WithWords(testWords()))
	if err != nil {
		t.Fatal(err)
	}

	stats := c.Stats()
	if stats.Words != 5 {
		t.Errorf("Words = %d, want 5", stats.Words)
	}
	if stats.Dropped != 0 {
		t.Errorf("Dropped = %d, want 0", stats.Dropped)
	}
	if stats.WordLengths[3] != 4 {
		t.Errorf("WordLengths[3] = %d, want 4", stats.WordLengths[3])
	}
	if stats.WordLengths[4] != 1 {
		t.Errorf("WordLengths[4] = %d, want 1", stats.WordLengths[4])
	}
}
