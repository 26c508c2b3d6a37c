// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/mad4j/rustedbytes-pages/internal/config"
	"github.com/mad4j/rustedbytes-pages/internal/gateway"
	"github.com/mad4j/rustedbytes-pages/internal/output"
	"github.com/mad4j/rustedbytes-pages/internal/render"
	"github.com/mad4j/rustedbytes-pages/internal/usecase"
)

// Default output paths per format.
const (
	defaultMarkdownOutput = "index.md"
	defaultHTMLOutput     = "docs/index.html"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generates the project listing page",
	Long: `Fetches all repositories of the configured user matching the name prefix,
enriches them with the latest GitHub release and crates.io version, and writes
the rendered page to disk.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		// Get the verbose flag from the root command to set up the logger.
		verbose, _ := cmd.InheritedFlags().GetBool("verbose")
		logger := log.New(io.Discard, "", log.LstdFlags) // Default: discard all logs.
		if verbose {
			logger.SetOutput(os.Stderr) // If verbose, log to standard error.
		}
		ui := output.New()

		user, _ := cmd.Flags().GetString("user")
		prefix, _ := cmd.Flags().GetString("prefix")
		format, _ := cmd.Flags().GetString("format")
		outPath, _ := cmd.Flags().GetString("output")
		cfgPath, _ := cmd.Flags().GetString("config")

		if format != "markdown" && format != "html" {
			ui.Errorf("Invalid --format %q. Use \"markdown\" or \"html\".", format)
			os.Exit(1)
		}
		if outPath == "" {
			outPath = defaultMarkdownOutput
			if format == "html" {
				outPath = defaultHTMLOutput
			}
		}

		// The token is optional; without it the lower unauthenticated rate
		// limit applies. It is only sent to GitHub, never to crates.io.
		token := os.Getenv("GITHUB_TOKEN")
		if token == "" {
			ui.Warnf("No GITHUB_TOKEN found. API rate limits may apply.")
		}

		cfg, err := config.Resolve(cfgPath)
		if err != nil {
			ui.Warnf("Ignoring malformed config file %s: %v", cfgPath, err)
		}

		githubGateway, err := gateway.NewGitHubGateway(token, logger)
		if err != nil {
			ui.Errorf("Failed to create GitHub gateway: %v", err)
			os.Exit(1)
		}
		cratesGateway := gateway.NewCratesGateway(gateway.CratesAPIBase, nil, logger)
		builder := usecase.NewBuilder(githubGateway, cratesGateway, logger)

		ui.Infof("Fetching repositories for user %q with prefix %q...", user, prefix)
		projects, err := builder.Build(ctx, user, prefix)
		if err != nil {
			ui.Errorf("Failed to fetch repositories: %v", err)
			os.Exit(1)
		}
		ui.Infof("Found %d repositories", len(projects))

		var doc string
		now := time.Now()
		switch format {
		case "markdown":
			doc, err = render.Markdown(projects, cfg, now)
		case "html":
			doc, err = render.HTML(projects, cfg, user, now)
		}
		if err != nil {
			ui.Errorf("Failed to render page: %v", err)
			os.Exit(1)
		}

		if err := writeDocument(outPath, doc); err != nil {
			ui.Errorf("Failed to write %s: %v", outPath, err)
			os.Exit(1)
		}
		ui.Successf("Page generated successfully: %s", outPath)
		ui.Infof("Total projects: %d", len(projects))
	},
}

// writeDocument writes the rendered document to path, creating the
// destination directory if needed and fully overwriting prior content.
func writeDocument(path, doc string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringP("user", "u", "mad4j", "GitHub user whose repositories are listed")
	generateCmd.Flags().StringP("prefix", "p", "rustedbytes", "Repository name prefix to match")
	generateCmd.Flags().StringP("format", "f", "markdown", "Output format: markdown or html")
	generateCmd.Flags().StringP("output", "o", "", "Output file path (defaults per format)")
	generateCmd.Flags().StringP("config", "c", config.DefaultConfigFile, "Page configuration file")
}
