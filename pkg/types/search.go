// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for aurman: remote search and
// info records, journal entries, and configuration.
package types

// SearchResult is one package entry returned by an AUR search query.
// Records are never mutated after decoding; ranking reorders indices only.
type SearchResult struct {
	// Maintainer is the AUR account maintaining the package. Orphaned
	// packages have no maintainer and carry the empty string.
	Maintainer string `json:"maintainer,omitempty" yaml:"maintainer,omitempty"`

	// Name is the package base name.
	Name string `json:"name" yaml:"name"`

	// Version is the full pkgver-pkgrel string (e.g. "1.2.3-1").
	Version string `json:"version" yaml:"version"`

	// Description is the package description, empty when the API sends null.
	Description string `json:"description" yaml:"description"`

	// Popularity is the AUR popularity score used for ranking.
	Popularity float64 `json:"popularity" yaml:"popularity"`
}

// PackageInfo is the detailed record returned by an AUR info query.
type PackageInfo struct {
	SearchResult `yaml:",inline"`

	// URL is the upstream project URL, empty when the API sends null.
	URL string `json:"url" yaml:"url"`

	// NumVotes is the number of user votes for the package.
	NumVotes int `json:"num_votes" yaml:"num_votes"`
}
