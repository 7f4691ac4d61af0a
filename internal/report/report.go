// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders search results, package info and journal history
// for the terminal. Every function is pure: callers choose the writer.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/aurman/pkg/types"
)

// labelWidth fits the longest info label ("Description").
const labelWidth = 11

const notFound = "Package not found\n"

// FormatSearchLine renders one search result as
// "<maintainer>/<name> <version>" followed by the indented description.
func FormatSearchLine(r types.SearchResult) string {
	var b strings.Builder
	b.WriteString(r.Maintainer)
	b.WriteByte('/')
	b.WriteString(r.Name)
	b.WriteByte(' ')
	b.WriteString(r.Version)
	b.WriteString("\n    ")
	b.WriteString(r.Description)
	b.WriteByte('\n')
	return b.String()
}

// FormatInfoBlock renders the seven-field info report with aligned labels.
// Popularity keeps full precision.
func FormatInfoBlock(p types.PackageInfo) string {
	fields := []struct{ label, value string }{
		{"Maintainer", p.Maintainer},
		{"Name", p.Name},
		{"Version", p.Version},
		{"Description", p.Description},
		{"URL", p.URL},
		{"Popularity", strconv.FormatFloat(p.Popularity, 'f', -1, 64)},
		{"Votes", strconv.Itoa(p.NumVotes)},
	}
	var b strings.Builder
	for _, f := range fields {
		fmt.Fprintf(&b, "%-*s : %s\n", labelWidth, f.label, f.value)
	}
	return b.String()
}

// FormatNotFound is printed when an info lookup does not yield exactly one
// package.
func FormatNotFound() string {
	return notFound
}

// WriteSearchText writes results in ranked order using FormatSearchLine.
func WriteSearchText(w io.Writer, results []types.SearchResult, order []int) error {
	for _, idx := range order {
		if _, err := io.WriteString(w, FormatSearchLine(results[idx])); err != nil {
			return err
		}
	}
	return nil
}

// WriteSearchJSON writes results in ranked order as an indented JSON array.
func WriteSearchJSON(w io.Writer, results []types.SearchResult, order []int) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(inOrder(results, order))
}

// WriteSearchYAML writes results in ranked order as a YAML list.
func WriteSearchYAML(w io.Writer, results []types.SearchResult, order []int) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(inOrder(results, order))
}

// WriteInfoJSON writes a single package as indented JSON.
func WriteInfoJSON(w io.Writer, p types.PackageInfo) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

// WriteInfoYAML writes a single package as YAML.
func WriteInfoYAML(w io.Writer, p types.PackageInfo) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(p)
}

func inOrder(results []types.SearchResult, order []int) []types.SearchResult {
	out := make([]types.SearchResult, len(order))
	for i, idx := range order {
		out[i] = results[idx]
	}
	return out
}
