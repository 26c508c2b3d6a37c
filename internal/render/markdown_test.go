package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mad4j/rustedbytes-pages/internal/domain"
)

var testConfig = domain.PageConfig{
	Layout:      "default",
	Theme:       "minima",
	Title:       "Rustedbytes Projects",
	Description: "A collection of Rust-based projects",
	HeaderEmoji: "🦀",
}

var testTime = time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC)

func project(name string) *domain.Project {
	return &domain.Project{
		Repository: domain.Repository{
			Name:        name,
			Description: "A sample project",
			HTMLURL:     "https://github.com/mad4j/" + name,
		},
	}
}

// tableRows returns the table body lines of the rendered document.
func tableRows(doc string) []string {
	var rows []string
	for _, line := range strings.Split(doc, "\n") {
		if strings.HasPrefix(line, "| [") {
			rows = append(rows, line)
		}
	}
	return rows
}

func TestMarkdown_FrontMatterAndHeading(t *testing.T) {
	doc, err := Markdown(nil, testConfig, testTime)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(doc, "---\n"), "document must start with front matter")
	assert.Contains(t, doc, "layout: default\n")
	assert.Contains(t, doc, "title: Rustedbytes Projects\n")
	assert.Contains(t, doc, "description: A collection of Rust-based projects\n")
	assert.Contains(t, doc, "# 🦀 Rustedbytes Projects\n")
	assert.Contains(t, doc, "_Last updated: 2024-03-01 12:30:45 UTC_")
}

func TestMarkdown_EmptyGlyphIsOmittedFromHeading(t *testing.T) {
	cfg := testConfig
	cfg.HeaderEmoji = ""

	doc, err := Markdown(nil, cfg, testTime)
	require.NoError(t, err)

	assert.Contains(t, doc, "# Rustedbytes Projects\n")
	assert.NotContains(t, doc, "#  Rustedbytes Projects")
}

func TestMarkdown_ProjectRowWithFullEnrichment(t *testing.T) {
	p := project("rustedbytes-alpha")
	p.Release = &domain.ReleaseInfo{
		TagName:     "v1.2.0",
		PublishedAt: "2024-01-15T10:30:00Z",
		HTMLURL:     "https://github.com/mad4j/rustedbytes-alpha/releases/tag/v1.2.0",
	}
	p.Crate = &domain.CrateInfo{Name: "rustedbytes-alpha", NewestVersion: "1.2.0"}

	doc, err := Markdown([]*domain.Project{p}, testConfig, testTime)
	require.NoError(t, err)

	rows := tableRows(doc)
	require.Len(t, rows, 1)
	assert.Contains(t, rows[0], "[**rustedbytes-alpha**](https://github.com/mad4j/rustedbytes-alpha)")
	assert.Contains(t, rows[0], "[v1.2.0](https://github.com/mad4j/rustedbytes-alpha/releases/tag/v1.2.0) (2024-01-15)")
	assert.Contains(t, rows[0], "[1.2.0](https://crates.io/crates/rustedbytes-alpha)")
}

func TestMarkdown_PlaceholdersForMissingData(t *testing.T) {
	p := project("rustedbytes-alpha")
	p.Description = ""

	doc, err := Markdown([]*domain.Project{p}, testConfig, testTime)
	require.NoError(t, err)

	rows := tableRows(doc)
	require.Len(t, rows, 1)

	cells := strings.Split(strings.Trim(rows[0], "| "), " | ")
	require.Len(t, cells, 4)
	assert.Equal(t, "No description available", cells[1])
	// Placeholders are italic text, never links.
	assert.Equal(t, "*No releases*", cells[2])
	assert.Equal(t, "*Not published*", cells[3])
}

func TestMarkdown_UnparseableDateRendersVerbatim(t *testing.T) {
	p := project("rustedbytes-alpha")
	p.Release = &domain.ReleaseInfo{
		TagName:     "v0.1.0",
		PublishedAt: "sometime in 2024",
		HTMLURL:     "https://example.com",
	}

	doc, err := Markdown([]*domain.Project{p}, testConfig, testTime)
	require.NoError(t, err)
	assert.Contains(t, doc, "[v0.1.0](https://example.com) (sometime in 2024)")
}

func TestMarkdown_PipesInDescriptionAreEscaped(t *testing.T) {
	p := project("rustedbytes-alpha")
	p.Description = "parses a | b expressions"

	doc, err := Markdown([]*domain.Project{p}, testConfig, testTime)
	require.NoError(t, err)

	rows := tableRows(doc)
	require.Len(t, rows, 1)
	assert.Contains(t, rows[0], `parses a \| b expressions`)

	// Only the 5 structural pipes of a 4-column row remain unescaped.
	unescaped := strings.Count(rows[0], "|") - strings.Count(rows[0], `\|`)
	assert.Equal(t, 5, unescaped)
}

func TestMarkdown_IsDeterministic(t *testing.T) {
	projects := []*domain.Project{project("rustedbytes-alpha"), project("rustedbytes-zeta")}

	first, err := Markdown(projects, testConfig, testTime)
	require.NoError(t, err)
	second, err := Markdown(projects, testConfig, testTime)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
