// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Outcome is the result recorded for a dispatched operation.
type Outcome string

const (
	OutcomeOK      Outcome = "ok"
	OutcomePartial Outcome = "partial"
	OutcomeFailed  Outcome = "failed"
)

// JournalEntry records one dispatched operation.
type JournalEntry struct {
	// ID uniquely identifies the invocation.
	ID string `json:"id" yaml:"id"`

	// Time is when the operation finished.
	Time time.Time `json:"time" yaml:"time"`

	// Operation names the intent (e.g. "search", "source+install").
	Operation string `json:"operation" yaml:"operation"`

	// Packages holds the query or package names the operation received.
	Packages []string `json:"packages" yaml:"packages"`

	Outcome Outcome `json:"outcome" yaml:"outcome"`

	// Detail is a short human-readable note, such as an error message or
	// "3 results".
	Detail string `json:"detail,omitempty" yaml:"detail,omitempty"`
}
