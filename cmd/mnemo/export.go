package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	statsuc "github.com/majorsys/mnemo/internal/usecase/stats"
)

func exportCmd() *cobra.Command {
	var (
		lexiconPath string
		outPath     string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the processed word table as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			ix, err := loadOfflineIndex(lexiconPath)
			if err != nil {
				return err
			}
			svc := statsuc.New(ix)

			out := os.Stdout
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("create %s: %w", outPath, err)
				}
				defer func() { _ = f.Close() }()
				out = f
			}
			return svc.WriteCSV(out)
		},
	}

	cmd.Flags().StringVar(&lexiconPath, "lexicon", defaultLexiconPath, "Pre-tagged lexicon file")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default: stdout)")

	return cmd
}
