// Package render turns an enriched project list and an effective page
// configuration into a document: a Jekyll markdown page or a standalone
// HTML page. Both renderers are pure functions of their inputs plus the
// generation timestamp passed in by the caller.
package render

import "time"

const (
	noDescription = "No description available"
	noReleases    = "No releases"
	notPublished  = "Not published"

	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02 15:04:05"
)

// cratesWebBase is the public crate page root; the API base differs.
const cratesWebBase = "https://crates.io/crates"

// formatDate reformats an ISO-8601 timestamp to YYYY-MM-DD. A value that
// does not parse is returned unchanged so it is still visible on the page.
func formatDate(raw string) string {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}
	return t.Format(dateLayout)
}

func crateURL(name string) string {
	return cratesWebBase + "/" + name
}
