// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rustedbytes-pages",
	Short: "A CLI tool to generate a static listing page for rustedbytes projects.",
	Long: `rustedbytes-pages generates a static listing page (Jekyll markdown or HTML)
for a GitHub user's repositories matching a name prefix, enriched with each
repository's latest release and its published crates.io version.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Add a persistent flag for verbose output, available to all commands.
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
}
