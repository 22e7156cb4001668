// Package stats derives word-list statistics from the built index:
// length distributions and the processed word table export.
package stats

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/majorsys/mnemo/internal/index"
)

// Source is the consumer contract for the word index.
type Source interface {
	Size() int
	Dropped() int
	Entries() []index.Entry
	LengthDistribution() (words, skeletons map[int]int)
}

// Report summarizes the indexed word list.
type Report struct {
	Words           int         `json:"words"`
	Dropped         int         `json:"dropped"`
	WordLengths     map[int]int `json:"word_lengths"`
	SkeletonLengths map[int]int `json:"skeleton_lengths"`
}

// Service produces reports and exports over one index.
type Service struct {
	src Source
}

// New creates a stats service.
func New(src Source) *Service {
	return &Service{src: src}
}

// Report builds the length-distribution report.
func (s *Service) Report() Report {
	words, skeletons := s.src.LengthDistribution()
	return Report{
		Words:           s.src.Size(),
		Dropped:         s.src.Dropped(),
		WordLengths:     words,
		SkeletonLengths: skeletons,
	}
}

// csvHeader matches the historical processed-word table layout.
var csvHeader = []string{"word", "no_vowels", "number_sequence", "word_length", "no_vowels_length", "pos"}

// WriteCSV writes the processed word table (one row per indexed word,
// sorted by word) to w.
func (s *Service) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, e := range s.src.Entries() {
		row := []string{
			e.Word,
			e.Skeleton,
			e.Encoding,
			strconv.Itoa(e.Length),
			strconv.Itoa(e.SkeletonLen),
			string(e.POS),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row for %q: %w", e.Word, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// FormatDistribution renders a length distribution as aligned text lines,
// smallest length first. Used by the CLI stats command.
func FormatDistribution(dist map[int]int) []string {
	lengths := make([]int, 0, len(dist))
	for l := range dist {
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)
	lines := make([]string, 0, len(lengths))
	for _, l := range lengths {
		lines = append(lines, fmt.Sprintf("%2d: %d", l, dist[l]))
	}
	return lines
}
