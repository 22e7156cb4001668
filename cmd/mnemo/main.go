// Package main provides the mnemo binary entry point: an HTTP service and
// CLI for turning numbers into mnemonic phrases.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/majorsys/mnemo/internal/version"
)

const appName = "mnemo"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   appName,
		Short: "Mnemonic phrase generator for numbers",
		Long: `Mnemo converts digit strings into memorable phrases using the Major
System: each digit maps to consonant sounds, and words whose consonant
skeletons encode the digits are arranged into article-adjective-noun-verb
phrases.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(serveCmd())
	cmd.AddCommand(generateCmd())
	cmd.AddCommand(exportCmd())
	cmd.AddCommand(statsCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (commit: %s, built: %s)\n",
				appName, version.Version, version.Commit, version.Date)
		},
	})

	return cmd
}
