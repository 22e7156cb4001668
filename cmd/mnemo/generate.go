package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/majorsys/mnemo/internal/index"
	logpkg "github.com/majorsys/mnemo/internal/logger"
	lexiconrepo "github.com/majorsys/mnemo/internal/repository/lexicon"
	phraseuc "github.com/majorsys/mnemo/internal/usecase/phrase"
)

const defaultLexiconPath = "data/lexicon.txt"

func generateCmd() *cobra.Command {
	var (
		lexiconPath string
		maxGroupLen int
	)

	cmd := &cobra.Command{
		Use:   "generate NUMBER...",
		Short: "Generate a mnemonic phrase for each number",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ix, err := loadOfflineIndex(lexiconPath)
			if err != nil {
				return err
			}
			svc := phraseuc.New(ix).WithMaxGroupLen(maxGroupLen)

			for _, number := range args {
				phrase, err := svc.Assemble(number)
				if err != nil {
					return err
				}
				fmt.Printf("%s: %s\n", number, phrase)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&lexiconPath, "lexicon", defaultLexiconPath, "Pre-tagged lexicon file")
	cmd.Flags().IntVar(&maxGroupLen, "max-group-len", phraseuc.DefaultMaxGroupLen, "Maximum digits per word")

	return cmd
}

// loadOfflineIndex builds the word index from a lexicon file for the CLI
// commands that run without a server or a tagging provider.
func loadOfflineIndex(path string) (*index.Index, error) {
	logger, err := logpkg.New("local", "warn")
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	words, err := lexiconrepo.Load(path, logger)
	if err != nil {
		return nil, err
	}
	return index.Build(words), nil
}
