// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/aurman/pkg/types"
)

// FormatHistory renders journal entries as a table, newest first as given.
func FormatHistory(entries []types.JournalEntry) string {
	if len(entries) == 0 {
		return "No operations recorded.\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-19s  %-14s  %-7s  %-30s  %s\n", "Time", "Operation", "Outcome", "Packages", "Detail")
	b.WriteString(strings.Repeat("-", 90))
	b.WriteByte('\n')

	for _, e := range entries {
		fmt.Fprintf(&b, "%-19s  %-14s  %-7s  %-30s  %s\n",
			e.Time.Local().Format("2006-01-02 15:04:05"),
			e.Operation,
			e.Outcome,
			truncate(strings.Join(e.Packages, " "), 30),
			e.Detail)
	}
	return b.String()
}

// truncate shortens s to at most max runes, cutting on a rune boundary.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	cut, n := 0, 0
	for n < max-3 {
		_, size := utf8.DecodeRuneInString(s[cut:])
		cut += size
		n++
	}
	return s[:cut] + "..."
}
