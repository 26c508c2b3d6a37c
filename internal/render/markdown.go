package render

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mad4j/rustedbytes-pages/internal/domain"
)

// frontMatter is the Jekyll front matter emitted at the top of the
// markdown document.
type frontMatter struct {
	Layout      string `yaml:"layout"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Markdown renders the project table as a Jekyll markdown document with
// YAML front matter. The project list is expected to be sorted by name.
func Markdown(projects []*domain.Project, cfg domain.PageConfig, generatedAt time.Time) (string, error) {
	var fm bytes.Buffer
	enc := yaml.NewEncoder(&fm)
	enc.SetIndent(2)
	if err := enc.Encode(frontMatter{
		Layout:      cfg.Layout,
		Title:       cfg.Title,
		Description: cfg.Description,
	}); err != nil {
		return "", fmt.Errorf("failed to encode front matter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("failed to encode front matter: %w", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(fm.Bytes())
	b.WriteString("---\n\n")

	heading := cfg.Title
	if cfg.HeaderEmoji != "" {
		heading = cfg.HeaderEmoji + " " + cfg.Title
	}
	fmt.Fprintf(&b, "# %s\n\n", heading)
	if cfg.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", cfg.Description)
	}

	b.WriteString("| Project | Description | Latest Release | Crates.io |\n")
	b.WriteString("|---------|-------------|----------------|-----------|\n")
	for _, p := range projects {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			markdownNameCell(p), markdownDescriptionCell(p),
			markdownReleaseCell(p), markdownCrateCell(p))
	}

	fmt.Fprintf(&b, "\n_Last updated: %s UTC_\n", generatedAt.UTC().Format(timestampLayout))
	return b.String(), nil
}

func markdownNameCell(p *domain.Project) string {
	return fmt.Sprintf("[**%s**](%s)", p.Name, p.HTMLURL)
}

// markdownDescriptionCell escapes literal pipes so a description can
// never add columns to the table.
func markdownDescriptionCell(p *domain.Project) string {
	desc := p.Description
	if desc == "" {
		desc = noDescription
	}
	return strings.ReplaceAll(desc, "|", `\|`)
}

func markdownReleaseCell(p *domain.Project) string {
	if p.Release == nil {
		return "*" + noReleases + "*"
	}
	return fmt.Sprintf("[%s](%s) (%s)", p.Release.TagName, p.Release.HTMLURL, formatDate(p.Release.PublishedAt))
}

func markdownCrateCell(p *domain.Project) string {
	if p.Crate == nil {
		return "*" + notPublished + "*"
	}
	return fmt.Sprintf("[%s](%s)", p.Crate.NewestVersion, crateURL(p.Crate.Name))
}
