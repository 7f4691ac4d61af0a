// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package options

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/spf13/pflag"
)

// Modifiers are flags that change how an intent runs without selecting an
// operation.
type Modifiers struct {
	Verbose bool
	Config  string
	Format  string
}

// newFlagSet binds every recognized flag to in and mods. Only boolean flags
// carry a shorthand.
func newFlagSet(in *Input, mods *Modifiers) *pflag.FlagSet {
	fs := pflag.NewFlagSet("aurman", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	sw := &in.Switches
	fs.BoolVarP(&sw.Help, "help", "h", false, "print this message")
	fs.BoolVarP(&sw.Search, "search", "S", false, "search for given package")
	fs.BoolVarP(&sw.Info, "info", "I", false, "get info for given package")
	fs.BoolVarP(&sw.Source, "source", "s", false, "source git files for given package(s)")
	fs.BoolVarP(&sw.Install, "install", "i", false, "build and install given package(s)")
	fs.BoolVarP(&sw.Remove, "remove", "r", false, "remove git files for given package(s)")
	fs.BoolVarP(&sw.History, "history", "H", false, "show recent operations")

	fs.BoolVarP(&mods.Verbose, "verbose", "v", false, "enable debug logging")
	fs.StringVar(&mods.Config, "config", "", "config file")
	fs.StringVar(&mods.Format, "format", "", "output format: text, json or yaml")
	return fs
}

// Parse splits argv (without the program name) into switches, modifiers,
// unknown flag tokens and positional arguments. Flags may appear anywhere;
// "--" ends flag parsing. Unknown flags are collected rather than rejected
// so Validate can rank them against --help. A help switch anywhere before
// "--" also outranks a modifier with a missing value.
func Parse(argv []string) (Input, Modifiers, error) {
	var (
		in   Input
		mods Modifiers
	)
	fs := newFlagSet(&in, &mods)

	known, unknown, missing := splitUnknown(fs, argv)
	if err := fs.Parse(known); err != nil {
		if hasHelp(fs, argv) {
			return Input{Switches: Switches{Help: true}}, mods, nil
		}
		return in, mods, newError(UnknownSwitch, "%v", err)
	}
	in.Unknown = unknown
	in.Args = fs.Args()
	if len(missing) > 0 && !in.Switches.Help {
		return in, mods, newError(UnknownSwitch, "flag needs an argument: %s", missing[0])
	}
	return in, mods, nil
}

// splitUnknown removes flag tokens fs does not define. Combined shorthand
// clusters such as "-Sx" keep their known letters. A value-taking long flag
// whose value is absent, or would be another flag, goes to missing instead.
func splitUnknown(fs *pflag.FlagSet, argv []string) (known, unknown, missing []string) {
	for i := 0; i < len(argv); i++ {
		tok := argv[i]
		switch {
		case tok == "--":
			return append(known, argv[i:]...), unknown, missing

		case strings.HasPrefix(tok, "--"):
			name, _, hasValue := strings.Cut(tok[2:], "=")
			f := fs.Lookup(name)
			if f == nil {
				unknown = append(unknown, tok)
				continue
			}
			if hasValue || f.NoOptDefVal != "" {
				known = append(known, tok)
				continue
			}
			if i+1 >= len(argv) || isFlag(argv[i+1]) {
				missing = append(missing, tok)
				continue
			}
			i++
			known = append(known, tok, argv[i])

		case isFlag(tok):
			var kept strings.Builder
			for _, r := range tok[1:] {
				if utf8.RuneLen(r) != 1 || fs.ShorthandLookup(string(r)) == nil {
					unknown = append(unknown, "-"+string(r))
					continue
				}
				kept.WriteRune(r)
			}
			if kept.Len() > 0 {
				known = append(known, "-"+kept.String())
			}

		default:
			known = append(known, tok)
		}
	}
	return known, unknown, missing
}

func isFlag(tok string) bool {
	return len(tok) > 1 && tok[0] == '-'
}

// hasHelp reports whether argv carries --help or an h in a shorthand
// cluster before "--".
func hasHelp(fs *pflag.FlagSet, argv []string) bool {
	help := fs.Lookup("help")
	for _, tok := range argv {
		switch {
		case tok == "--":
			return false
		case strings.HasPrefix(tok, "--"):
			if tok == "--"+help.Name {
				return true
			}
		case isFlag(tok):
			if strings.Contains(tok[1:], help.Shorthand) {
				return true
			}
		}
	}
	return false
}
