// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		in       Input
		want     Intent
		wantKind ErrorKind
	}{
		{
			name: "help alone",
			in:   Input{Switches: Switches{Help: true}},
			want: Intent{Op: OpHelp},
		},
		{
			name: "help wins over conflicts and unknown switches",
			in: Input{
				Switches: Switches{Help: true, Search: true, Remove: true, Install: true},
				Unknown:  []string{"--bogus"},
			},
			want: Intent{Op: OpHelp},
		},
		{
			name: "help wins over a short query",
			in:   Input{Switches: Switches{Help: true, Search: true}, Args: []string{"ab"}},
			want: Intent{Op: OpHelp},
		},
		{
			name:     "no switches",
			in:       Input{Args: []string{"yay"}},
			wantKind: NoOperationSelected,
		},
		{
			name:     "no switches beats unknown switch",
			in:       Input{Unknown: []string{"-x"}},
			wantKind: NoOperationSelected,
		},
		{
			name:     "unknown switch",
			in:       Input{Switches: Switches{Source: true}, Unknown: []string{"--frobnicate"}, Args: []string{"yay"}},
			wantKind: UnknownSwitch,
		},
		{
			name:     "unknown switch beats conflict",
			in:       Input{Switches: Switches{Search: true, Info: true}, Unknown: []string{"-x"}},
			wantKind: UnknownSwitch,
		},
		{
			name:     "search with install conflicts before argument checks",
			in:       Input{Switches: Switches{Search: true, Install: true}, Args: []string{"foo", "bar"}},
			wantKind: ConflictingOperations,
		},
		{
			name:     "search with install and no args still conflicts",
			in:       Input{Switches: Switches{Search: true, Install: true}},
			wantKind: ConflictingOperations,
		},
		{
			name:     "search with info",
			in:       Input{Switches: Switches{Search: true, Info: true}, Args: []string{"foo"}},
			wantKind: ConflictingOperations,
		},
		{
			name:     "info with source",
			in:       Input{Switches: Switches{Info: true, Source: true}, Args: []string{"foo"}},
			wantKind: ConflictingOperations,
		},
		{
			name:     "remove with install",
			in:       Input{Switches: Switches{Remove: true, Install: true}, Args: []string{"foo"}},
			wantKind: ConflictingOperations,
		},
		{
			name:     "history with source",
			in:       Input{Switches: Switches{History: true, Source: true}},
			wantKind: ConflictingOperations,
		},
		{
			name:     "search without query",
			in:       Input{Switches: Switches{Search: true}},
			wantKind: MissingPackageArgument,
		},
		{
			name:     "install without packages",
			in:       Input{Switches: Switches{Install: true}},
			wantKind: MissingPackageArgument,
		},
		{
			name:     "search with two queries",
			in:       Input{Switches: Switches{Search: true}, Args: []string{"foo", "bar"}},
			wantKind: TooManyArguments,
		},
		{
			name:     "info with two names",
			in:       Input{Switches: Switches{Info: true}, Args: []string{"a", "b"}},
			wantKind: TooManyArguments,
		},
		{
			name:     "search query of two characters",
			in:       Input{Switches: Switches{Search: true}, Args: []string{"ab"}},
			wantKind: QueryTooShort,
		},
		{
			name:     "info query of two characters",
			in:       Input{Switches: Switches{Info: true}, Args: []string{"ab"}},
			wantKind: QueryTooShort,
		},
		{
			name:     "history with arguments",
			in:       Input{Switches: Switches{History: true}, Args: []string{"yay"}},
			wantKind: TooManyArguments,
		},
		{
			name: "search",
			in:   Input{Switches: Switches{Search: true}, Args: []string{"yay"}},
			want: Intent{Op: OpSearch, Query: "yay"},
		},
		{
			name: "multibyte query counts characters",
			in:   Input{Switches: Switches{Search: true}, Args: []string{"ñöü"}},
			want: Intent{Op: OpSearch, Query: "ñöü"},
		},
		{
			name: "info",
			in:   Input{Switches: Switches{Info: true}, Args: []string{"paru"}},
			want: Intent{Op: OpInfo, Query: "paru"},
		},
		{
			name: "source several",
			in:   Input{Switches: Switches{Source: true}, Args: []string{"yay", "paru"}},
			want: Intent{Op: OpSource, Packages: []string{"yay", "paru"}},
		},
		{
			name: "install short name is fine",
			in:   Input{Switches: Switches{Install: true}, Args: []string{"xy"}},
			want: Intent{Op: OpInstall, Packages: []string{"xy"}},
		},
		{
			name: "source and install combine",
			in:   Input{Switches: Switches{Source: true, Install: true}, Args: []string{"yay"}},
			want: Intent{Op: OpSourceInstall, Packages: []string{"yay"}},
		},
		{
			name: "remove",
			in:   Input{Switches: Switches{Remove: true}, Args: []string{"yay", "paru"}},
			want: Intent{Op: OpRemove, Packages: []string{"yay", "paru"}},
		},
		{
			name: "history",
			in:   Input{Switches: Switches{History: true}},
			want: Intent{Op: OpHistory},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Validate(tt.in)
			if tt.wantKind != 0 {
				var verr *ValidationError
				require.True(t, errors.As(err, &verr), "want *ValidationError, got %v", err)
				assert.Equal(t, tt.wantKind, verr.Kind, "message: %s", verr.Msg)
				assert.Equal(t, Intent{}, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateCopiesPackages(t *testing.T) {
	args := []string{"yay", "paru"}
	intent, err := Validate(Input{Switches: Switches{Source: true}, Args: args})
	require.NoError(t, err)

	args[0] = "changed"
	assert.Equal(t, []string{"yay", "paru"}, intent.Packages)
}

func TestExitCodes(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want int
	}{
		{NoOperationSelected, 1},
		{UnknownSwitch, 1},
		{ConflictingOperations, 2},
		{MissingPackageArgument, 3},
		{TooManyArguments, 3},
		{QueryTooShort, 4},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			err := &ValidationError{Kind: tt.kind}
			assert.Equal(t, tt.want, err.ExitCode())
		})
	}
}

func TestOpPredicates(t *testing.T) {
	assert.True(t, OpSource.Syncs())
	assert.True(t, OpSourceInstall.Syncs())
	assert.False(t, OpInstall.Syncs())
	assert.True(t, OpInstall.Builds())
	assert.True(t, OpSourceInstall.Builds())
	assert.False(t, OpRemove.Builds())
	assert.Equal(t, "source+install", OpSourceInstall.String())
}
