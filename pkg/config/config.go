// Package config defines the configuration types for doxymd.
// These are pure data structures; loading and merging live in
// internal/configloader.
package config

// Config is the root configuration for a conversion run.
type Config struct {
	// LangDetect annotates code fences that carried no @code{.lang} hint
	// with a language detected from the code content.
	LangDetect bool `yaml:"lang_detect"`

	// Verify parses each emitted Markdown document and reports its
	// structure in the run summary.
	Verify bool `yaml:"verify"`

	// Group places XML-derived outputs in per-namespace subdirectories.
	Group *bool `yaml:"group"`

	// OutDir is the output directory for directory conversion mode.
	OutDir string `yaml:"outdir"`

	// Extensions lists input file extensions (lowercase, with leading
	// dot) considered documentation sources.
	Extensions []string `yaml:"extensions"`

	// Ignore contains glob patterns for files and directories to skip.
	Ignore []string `yaml:"ignore"`

	// Jobs is the number of parallel workers. 0 means one per CPU.
	Jobs int `yaml:"jobs"`
}

// DefaultOutDir is used in directory mode when no output directory is given.
const DefaultOutDir = "doxymd_output"

// New returns a Config populated with defaults.
func New() *Config {
	group := true
	return &Config{
		Group:      &group,
		OutDir:     DefaultOutDir,
		Extensions: DefaultExtensions(),
	}
}

// DefaultExtensions returns the default input file extensions.
func DefaultExtensions() []string {
	return []string{".xml", ".dox", ".txt"}
}

// GroupEnabled reports whether namespace grouping is on, defaulting to true.
func (c *Config) GroupEnabled() bool {
	if c == nil || c.Group == nil {
		return true
	}
	return *c.Group
}

// EffectiveExtensions returns the configured extensions, defaulting if empty.
func (c *Config) EffectiveExtensions() []string {
	if c == nil || len(c.Extensions) == 0 {
		return DefaultExtensions()
	}
	return c.Extensions
}
