// Package config resolves the effective page configuration from three
// layered sources: built-in defaults, an optional YAML file, and
// environment variables. Later layers win field by field.
package config

import (
	"errors"
	"io/fs"

	"github.com/spf13/viper"

	"github.com/mad4j/rustedbytes-pages/internal/domain"
)

// DefaultConfigFile is the conventional on-disk configuration name.
const DefaultConfigFile = "page_config.yml"

// Resolve builds the effective PageConfig. A missing file is an empty
// override layer; a malformed file is reported through the returned error
// but resolution still succeeds with defaults for the file layer and
// environment overrides applied on top. The returned config is always
// usable.
//
// Each call works on a fresh viper instance so no state leaks between
// resolutions.
func Resolve(path string) (domain.PageConfig, error) {
	v := viper.New()

	v.SetDefault("layout", "default")
	v.SetDefault("theme", "minima")
	v.SetDefault("styling.page_title", "Rustedbytes Projects")
	v.SetDefault("styling.page_description", "A collection of Rust-based projects")
	v.SetDefault("styling.header_emoji", "🦀")

	v.BindEnv("layout", "PAGE_LAYOUT")
	v.BindEnv("theme", "PAGE_THEME")
	v.BindEnv("styling.page_title", "PAGE_TITLE")

	var readErr error
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			readErr = err
		}
	}

	cfg := domain.PageConfig{
		Layout:      v.GetString("layout"),
		Theme:       v.GetString("theme"),
		Title:       v.GetString("styling.page_title"),
		Description: v.GetString("styling.page_description"),
		HeaderEmoji: v.GetString("styling.header_emoji"),
	}
	return cfg, readErr
}
