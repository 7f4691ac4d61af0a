// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dispatch

// Usage is the help document printed for -h/--help.
const Usage = `Usage: aurman [--options] [...]
Options:
[-h / --help]
    Print this message
[-S / --search] <package>
    Search for given package
[-I / --info] <package>
    Get info for given package
[-s / --source] <package(s)>
    Source git files for given package(s)
[-i / --install] <package(s)>
    Build and install given package(s)
[-r / --remove] <package(s)>
    Remove git files for given package(s)
[-H / --history]
    Show recently performed operations
Modifiers:
[-v / --verbose]
    Enable debug logging
[--format text|json|yaml]
    Output format for search and info
[--config <file>]
    Read settings from file
`
