package types

import "time"

// HTTPConfig holds shared HTTP settings for requests to the AUR.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "aurman/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// AURConfig holds settings for the RPC client.
type AURConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the AUR web root (default https://aur.archlinux.org).
	BaseURL string `json:"base_url" yaml:"base_url"`
}

// WorkspaceConfig holds settings for local working copies.
type WorkspaceConfig struct {
	// DataDir contains one git working copy per package (default ~/.aurman).
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// GitBaseURL is the root that package clone URLs are built from.
	GitBaseURL string `json:"git_base_url" yaml:"git_base_url"`

	// Git is the git binary name or path.
	Git string `json:"git" yaml:"git"`

	// Makepkg is the makepkg binary name or path.
	Makepkg string `json:"makepkg" yaml:"makepkg"`

	// MakepkgFlags are passed to makepkg on install (default ["-si"]).
	MakepkgFlags []string `json:"makepkg_flags" yaml:"makepkg_flags"`
}

// JournalConfig holds settings for the operation journal.
type JournalConfig struct {
	// Enabled turns journaling on or off.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Path is the SQLite database file.
	Path string `json:"path" yaml:"path"`

	// HistoryLimit is the number of entries printed by --history (default 20).
	HistoryLimit int `json:"history_limit" yaml:"history_limit"`
}

// OutputFormat selects how search and info reports are rendered.
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

// Valid reports whether f is a known output format.
func (f OutputFormat) Valid() bool {
	switch f {
	case OutputText, OutputJSON, OutputYAML:
		return true
	}
	return false
}

// Config groups all aurman settings.
type Config struct {
	AUR       AURConfig       `json:"aur" yaml:"aur"`
	Workspace WorkspaceConfig `json:"workspace" yaml:"workspace"`
	Journal   JournalConfig   `json:"journal" yaml:"journal"`
	Format    OutputFormat    `json:"format" yaml:"format"`
}
