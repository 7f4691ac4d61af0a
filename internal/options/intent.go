// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package options turns command-line arguments into a validated Intent.
//
// Parse splits argv into operation switches, modifiers, unknown flag tokens
// and positional arguments. Validate applies the precedence rules and
// returns exactly one Intent or a *ValidationError. Neither function
// performs I/O.
package options

// Op is the operation an invocation resolves to.
type Op int

const (
	OpHelp Op = iota + 1
	OpSearch
	OpInfo
	OpSource
	OpInstall
	OpSourceInstall
	OpRemove
	OpHistory
)

func (o Op) String() string {
	switch o {
	case OpHelp:
		return "help"
	case OpSearch:
		return "search"
	case OpInfo:
		return "info"
	case OpSource:
		return "source"
	case OpInstall:
		return "install"
	case OpSourceInstall:
		return "source+install"
	case OpRemove:
		return "remove"
	case OpHistory:
		return "history"
	default:
		return "unknown"
	}
}

// Syncs reports whether the operation fetches working copies.
func (o Op) Syncs() bool { return o == OpSource || o == OpSourceInstall }

// Builds reports whether the operation runs the build tool.
func (o Op) Builds() bool { return o == OpInstall || o == OpSourceInstall }

// Intent is the single validated operation of one invocation. Query is set
// for OpSearch and OpInfo; Packages is set for source, install and remove.
type Intent struct {
	Op       Op
	Query    string
	Packages []string
}

// Args returns the query or package names carried by the intent.
func (i Intent) Args() []string {
	if i.Query != "" {
		return []string{i.Query}
	}
	return append([]string(nil), i.Packages...)
}
