// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		argv        []string
		wantSw      Switches
		wantArgs    []string
		wantUnknown []string
		wantMods    Modifiers
	}{
		{
			name:     "long search",
			argv:     []string{"--search", "yay"},
			wantSw:   Switches{Search: true},
			wantArgs: []string{"yay"},
		},
		{
			name:     "short flags after positional",
			argv:     []string{"yay", "paru", "-s"},
			wantSw:   Switches{Source: true},
			wantArgs: []string{"yay", "paru"},
		},
		{
			name:     "combined shorthand",
			argv:     []string{"-si", "yay"},
			wantSw:   Switches{Source: true, Install: true},
			wantArgs: []string{"yay"},
		},
		{
			name:   "help and history shorthands are distinct",
			argv:   []string{"-h", "-H"},
			wantSw: Switches{Help: true, History: true},
		},
		{
			name:        "unknown long flag is collected",
			argv:        []string{"--frobnicate", "-S", "yay"},
			wantSw:      Switches{Search: true},
			wantArgs:    []string{"yay"},
			wantUnknown: []string{"--frobnicate"},
		},
		{
			name:        "unknown letter in a cluster keeps the known ones",
			argv:        []string{"-Sx", "yay"},
			wantSw:      Switches{Search: true},
			wantArgs:    []string{"yay"},
			wantUnknown: []string{"-x"},
		},
		{
			name:        "help still parsed after unknown flag",
			argv:        []string{"--bogus", "--help"},
			wantSw:      Switches{Help: true},
			wantUnknown: []string{"--bogus"},
		},
		{
			name:     "modifiers",
			argv:     []string{"-v", "--format", "json", "--config=/tmp/a.yaml", "-I", "yay"},
			wantSw:   Switches{Info: true},
			wantArgs: []string{"yay"},
			wantMods: Modifiers{Verbose: true, Format: "json", Config: "/tmp/a.yaml"},
		},
		{
			name:     "double dash ends flags",
			argv:     []string{"-r", "--", "-weird"},
			wantSw:   Switches{Remove: true},
			wantArgs: []string{"-weird"},
		},
		{
			name:     "single dash is positional",
			argv:     []string{"-s", "-"},
			wantSw:   Switches{Source: true},
			wantArgs: []string{"-"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, mods, err := Parse(tt.argv)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSw, in.Switches)
			assert.ElementsMatch(t, tt.wantArgs, in.Args)
			assert.Equal(t, tt.wantUnknown, in.Unknown)
			assert.Equal(t, tt.wantMods, mods)
		})
	}
}

func TestParseMissingModifierValue(t *testing.T) {
	tests := []struct {
		name string
		argv []string
	}{
		{"at end", []string{"-S", "yay", "--format"}},
		{"followed by a switch", []string{"--format", "-I", "yay"}},
		{"followed by a long flag", []string{"--config", "--search", "yay"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Parse(tt.argv)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Equal(t, UnknownSwitch, verr.Kind)
			assert.Contains(t, verr.Msg, "flag needs an argument")
		})
	}
}

func TestParseHelpOutranksModifierErrors(t *testing.T) {
	tests := []struct {
		name string
		argv []string
	}{
		{"help then bare format", []string{"--help", "--format"}},
		{"bare config after help", []string{"-S", "yay", "--help", "--config"}},
		{"format would swallow help", []string{"--format", "--help"}},
		{"config would swallow short help", []string{"--config", "-h", "-S", "ab"}},
		{"help inside a cluster", []string{"--format", "-Sh"}},
		{"invalid bool value", []string{"--verbose=maybe", "-h"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, _, err := Parse(tt.argv)
			require.NoError(t, err)
			assert.True(t, in.Switches.Help)

			intent, err := Validate(in)
			require.NoError(t, err)
			assert.Equal(t, OpHelp, intent.Op)
		})
	}
}

func TestParseHelpAfterDoubleDashIsPositional(t *testing.T) {
	_, _, err := Parse([]string{"-S", "--format", "--", "--help"})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "got %v", err)
	assert.Equal(t, UnknownSwitch, verr.Kind)
}

func TestParseThenValidate(t *testing.T) {
	tests := []struct {
		name     string
		argv     []string
		wantKind ErrorKind
		wantOp   Op
	}{
		{"search foo install bar", []string{"--search", "foo", "--install", "bar"}, ConflictingOperations, 0},
		{"search ab", []string{"--search", "ab"}, QueryTooShort, 0},
		{"search alone", []string{"--search"}, MissingPackageArgument, 0},
		{"nothing", nil, NoOperationSelected, 0},
		{"unknown with source", []string{"-s", "--nope", "yay"}, UnknownSwitch, 0},
		{"help with garbage", []string{"-x", "-SIr", "--help", "a"}, 0, OpHelp},
		{"help before bare format", []string{"--help", "--format"}, 0, OpHelp},
		{"help before bare config", []string{"-S", "yay", "--help", "--config"}, 0, OpHelp},
		{"format followed by help", []string{"--format", "--help"}, 0, OpHelp},
		{"config followed by short help", []string{"--config", "-h", "-S", "ab"}, 0, OpHelp},
		{"source install", []string{"-s", "-i", "yay", "paru"}, 0, OpSourceInstall},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, _, err := Parse(tt.argv)
			require.NoError(t, err)

			intent, err := Validate(in)
			if tt.wantKind != 0 {
				var verr *ValidationError
				require.True(t, errors.As(err, &verr), "got %v", err)
				assert.Equal(t, tt.wantKind, verr.Kind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOp, intent.Op)
		})
	}
}
