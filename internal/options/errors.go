// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package options

import "fmt"

// ErrorKind classifies a validation failure.
type ErrorKind int

const (
	NoOperationSelected ErrorKind = iota + 1
	UnknownSwitch
	ConflictingOperations
	MissingPackageArgument
	TooManyArguments
	QueryTooShort
)

func (k ErrorKind) String() string {
	switch k {
	case NoOperationSelected:
		return "no operation selected"
	case UnknownSwitch:
		return "unknown switch"
	case ConflictingOperations:
		return "conflicting operations"
	case MissingPackageArgument:
		return "missing package argument"
	case TooManyArguments:
		return "too many arguments"
	case QueryTooShort:
		return "query too short"
	default:
		return "unknown"
	}
}

// ExitCode returns the process exit status for the kind.
func (k ErrorKind) ExitCode() int {
	switch k {
	case ConflictingOperations:
		return 2
	case MissingPackageArgument, TooManyArguments:
		return 3
	case QueryTooShort:
		return 4
	default:
		return 1
	}
}

// ValidationError reports why command-line input did not resolve to an
// Intent. Msg is the one-line message shown to the user.
type ValidationError struct {
	Kind ErrorKind
	Msg  string
}

func (e *ValidationError) Error() string { return e.Msg }

// ExitCode returns the process exit status for the error.
func (e *ValidationError) ExitCode() int { return e.Kind.ExitCode() }

func newError(kind ErrorKind, format string, args ...any) *ValidationError {
	return &ValidationError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
