// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package options

import (
	"strings"
	"unicode/utf8"
)

// MinQueryLength is the shortest query the AUR accepts for search and info.
const MinQueryLength = 3

// Switches holds the recognized operation switches.
type Switches struct {
	Help    bool
	Search  bool
	Info    bool
	Source  bool
	Install bool
	Remove  bool
	History bool
}

// count returns the number of operation switches set, help excluded.
func (s Switches) count() int {
	n := 0
	for _, set := range []bool{s.Search, s.Info, s.Source, s.Install, s.Remove, s.History} {
		if set {
			n++
		}
	}
	return n
}

// Input is the parsed command line handed to Validate.
type Input struct {
	Switches Switches

	// Unknown lists flag tokens that matched no switch or modifier.
	Unknown []string

	// Args are the positional arguments (query or package names).
	Args []string
}

// Validate resolves in to an Intent. Rules apply in a fixed order and the
// first failing rule is returned.
func Validate(in Input) (Intent, error) {
	sw := in.Switches

	if sw.Help {
		return Intent{Op: OpHelp}, nil
	}
	if sw.count() == 0 {
		return Intent{}, newError(NoOperationSelected, "no options selected")
	}
	if len(in.Unknown) > 0 {
		return Intent{}, newError(UnknownSwitch, "unknown option: %s", strings.Join(in.Unknown, ", "))
	}
	if err := checkExclusive(sw); err != nil {
		return Intent{}, err
	}

	if sw.History {
		if len(in.Args) > 0 {
			return Intent{}, newError(TooManyArguments, "history takes no package arguments")
		}
		return Intent{Op: OpHistory}, nil
	}

	if len(in.Args) == 0 {
		return Intent{}, newError(MissingPackageArgument, "package(s) not mentioned")
	}

	if sw.Search || sw.Info {
		verb := "search"
		op := OpSearch
		if sw.Info {
			verb = "info"
			op = OpInfo
		}
		if len(in.Args) > 1 {
			return Intent{}, newError(TooManyArguments, "%s requires exactly 1 package", verb)
		}
		query := in.Args[0]
		if utf8.RuneCountInString(query) < MinQueryLength {
			return Intent{}, newError(QueryTooShort, "packages to %s must have at least %d characters", verb, MinQueryLength)
		}
		return Intent{Op: op, Query: query}, nil
	}

	names := append([]string(nil), in.Args...)
	switch {
	case sw.Remove:
		return Intent{Op: OpRemove, Packages: names}, nil
	case sw.Source && sw.Install:
		return Intent{Op: OpSourceInstall, Packages: names}, nil
	case sw.Source:
		return Intent{Op: OpSource, Packages: names}, nil
	default:
		return Intent{Op: OpInstall, Packages: names}, nil
	}
}

// checkExclusive rejects a single-purpose switch combined with any other.
func checkExclusive(sw Switches) error {
	if sw.count() < 2 {
		return nil
	}
	switch {
	case sw.Search:
		return newError(ConflictingOperations, "cannot search and perform other functions in the same command")
	case sw.Info:
		return newError(ConflictingOperations, "cannot get information and perform other functions in the same command")
	case sw.Remove:
		return newError(ConflictingOperations, "cannot remove source(s) and perform other functions in the same command")
	case sw.History:
		return newError(ConflictingOperations, "cannot show history and perform other functions in the same command")
	}
	return nil
}
