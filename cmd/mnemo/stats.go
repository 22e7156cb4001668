package main

import (
	"fmt"

	"github.com/spf13/cobra"

	statsuc "github.com/majorsys/mnemo/internal/usecase/stats"
)

func statsCmd() *cobra.Command {
	var lexiconPath string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print word list statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			ix, err := loadOfflineIndex(lexiconPath)
			if err != nil {
				return err
			}
			report := statsuc.New(ix).Report()

			fmt.Printf("words:   %d\n", report.Words)
			fmt.Printf("fillers: %d\n", len(ix.Fillers()))
			fmt.Printf("dropped: %d\n", report.Dropped)

			fmt.Println("\nword lengths:")
			for _, line := range statsuc.FormatDistribution(report.WordLengths) {
				fmt.Println("  " + line)
			}
			fmt.Println("\nskeleton lengths:")
			for _, line := range statsuc.FormatDistribution(report.SkeletonLengths) {
				fmt.Println("  " + line)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&lexiconPath, "lexicon", defaultLexiconPath, "Pre-tagged lexicon file")

	return cmd
}
