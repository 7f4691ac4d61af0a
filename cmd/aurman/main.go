// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the aurman CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/pdiddy/aurman/internal/aur"
	"github.com/pdiddy/aurman/internal/dispatch"
	"github.com/pdiddy/aurman/internal/journal"
	"github.com/pdiddy/aurman/internal/options"
	"github.com/pdiddy/aurman/internal/workspace"
)

// version is set at build time via ldflags.
var version = "dev"

// Exit statuses beyond the validation codes in package options.
const (
	exitFailure   = 1
	exitNetwork   = 5
	exitMalformed = 6
)

// newRootCmd builds the aurman command. Flag parsing is left to package
// options so pacman-style switches, unknown-flag precedence and exit codes
// stay under our control.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aurman [--options] [package(s)]",
		Short: "Search the AUR and build packages from it",
		Long: `aurman queries the Arch User Repository RPC interface and manages local
git working copies of AUR packages. Search results are ranked by popularity.
Working copies live in one directory per package under ~/.aurman and are
built with makepkg.

Run "aurman --help" for the list of operations.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE:               run,
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	in, mods, err := options.Parse(args)
	if err != nil {
		return err
	}
	intent, err := options.Validate(in)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if intent.Op == options.OpHelp {
		return (&dispatch.Dispatcher{Out: cmd.OutOrStdout()}).Run(ctx, intent)
	}

	logger := newLogger(cmd.ErrOrStderr(), mods.Verbose)
	cfg, err := loadConfig(mods, logger)
	if err != nil {
		return err
	}
	logger.Debug("starting", "version", version, "operation", intent.Op, "args", intent.Args())

	d := &dispatch.Dispatcher{
		Remote:    aur.NewClient(cfg.AUR),
		Workspace: workspace.New(cfg.Workspace, logger),
		Format:    cfg.Format,
		Out:       cmd.OutOrStdout(),
		Logger:    logger,
	}

	if cfg.Journal.Enabled {
		store, err := journal.Open(cfg.Journal)
		if err != nil {
			logger.Warn("journal unavailable", "path", cfg.Journal.Path, "err", err)
		} else {
			defer store.Close()
			d.Journal = store
		}
	}

	return d.Run(ctx, intent)
}

// reportError prints err as a single line. Validation errors get a hint
// pointing at --help.
func reportError(w io.Writer, err error) {
	prefix := color.Red.Sprint("Error:")
	var verr *options.ValidationError
	if errors.As(err, &verr) {
		fmt.Fprintf(w, "%s %s\n(Type [-h / --help] for options)\n", prefix, verr.Msg)
		return
	}
	fmt.Fprintf(w, "%s %v\n", prefix, err)
}

// exitCode maps err to the process exit status.
func exitCode(err error) int {
	var verr *options.ValidationError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &verr):
		return verr.ExitCode()
	case errors.Is(err, aur.ErrNetwork):
		return exitNetwork
	case errors.Is(err, aur.ErrMalformedResponse), errors.Is(err, aur.ErrRemote):
		return exitMalformed
	default:
		return exitFailure
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		reportError(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}
