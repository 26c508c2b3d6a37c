// Package domain contains the core data structures for the page generator.
package domain

// Repository describes a single GitHub repository as returned by the
// listing endpoint. Created by the gateway and read-only afterwards.
type Repository struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	HTMLURL     string `json:"html_url"`
}

// ReleaseInfo holds the latest published release of a repository.
// The publish timestamp is kept as the raw ISO-8601 string so that an
// unparseable value can still be shown verbatim on the page.
type ReleaseInfo struct {
	TagName     string `json:"tag_name"`
	PublishedAt string `json:"published_at"`
	HTMLURL     string `json:"html_url"`
}

// CrateInfo holds the crates.io metadata we care about: the registry
// name of the package and its newest published version.
type CrateInfo struct {
	Name          string `json:"name"`
	NewestVersion string `json:"newest_version"`
}

// Project is the output unit of the pipeline: a repository plus its
// optional release and crates.io enrichment. A nil Release means the
// repository has no published releases; a nil Crate means no package
// with that name exists on crates.io. Both are common, valid states.
type Project struct {
	Repository
	Release *ReleaseInfo `json:"latest_release,omitempty"`
	Crate   *CrateInfo   `json:"crates_info,omitempty"`
}

// PageConfig is the effective page configuration after layering
// built-in defaults, the optional on-disk file, and environment
// overrides. It is built once per run and never mutated.
type PageConfig struct {
	Layout      string
	Theme       string
	Title       string
	Description string
	HeaderEmoji string
}
