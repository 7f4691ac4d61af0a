// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dispatch runs one validated Intent to completion.
//
// Search and info fetch a single RPC response, rank and render it. Source
// and install walk the package list sequentially and keep going when one
// package fails. Remove hands the whole list to the workspace at once.
package dispatch

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/pdiddy/aurman/internal/aur"
	"github.com/pdiddy/aurman/internal/options"
	"github.com/pdiddy/aurman/internal/rank"
	"github.com/pdiddy/aurman/internal/report"
	"github.com/pdiddy/aurman/pkg/types"
)

const removedMessage = "Files removed!\nNote: Package must be uninstalled via pacman\n"

// Fetcher performs one RPC request and returns the raw body.
type Fetcher interface {
	Fetch(ctx context.Context, kind aur.Kind, query string) ([]byte, error)
}

// Workspace manages local working copies.
type Workspace interface {
	Sync(ctx context.Context, name string) error
	Build(ctx context.Context, name string) error
	Remove(ctx context.Context, names []string) error
}

// Journal records operations and lists recent ones.
type Journal interface {
	Record(ctx context.Context, e types.JournalEntry) error
	Recent(ctx context.Context, limit int) ([]types.JournalEntry, error)
}

// Dispatcher maps an Intent to its flow. Journal may be nil.
type Dispatcher struct {
	Remote    Fetcher
	Workspace Workspace
	Journal   Journal
	Format    types.OutputFormat
	Out       io.Writer
	Logger    *log.Logger
}

// Run executes intent. Per-package sync and build failures are logged and
// do not produce an error; network and decoding failures do.
func (d *Dispatcher) Run(ctx context.Context, intent options.Intent) error {

	var (
		detail string
		status = types.OutcomeOK
		err    error
	)

	switch intent.Op {
	case options.OpHelp:
		_, err := io.WriteString(d.Out, Usage)
		return err
	case options.OpHistory:
		return d.history(ctx)
	case options.OpSearch:
		detail, err = d.search(ctx, intent.Query)
	case options.OpInfo:
		detail, err = d.info(ctx, intent.Query)
	case options.OpSource, options.OpInstall, options.OpSourceInstall:
		status, detail, err = d.syncAndBuild(ctx, intent)
	case options.OpRemove:
		status, detail, err = d.remove(ctx, intent.Packages)
	default:
		return fmt.Errorf("unsupported operation %v", intent.Op)
	}

	if err != nil {
		status = types.OutcomeFailed
		detail = err.Error()
	}
	d.record(ctx, intent, status, detail)
	return err
}

func (d *Dispatcher) search(ctx context.Context, query string) (string, error) {
	body, err := d.Remote.Fetch(ctx, aur.KindSearch, query)
	if err != nil {
		return "", err
	}
	results, err := aur.DecodeSearch(body)
	if err != nil {
		return "", err
	}

	popularity := make([]float64, len(results))
	for i, r := range results {
		popularity[i] = r.Popularity
	}
	order := rank.Order(popularity)
	d.logger().Debug("ranked search results", "query", query, "count", len(results))

	switch d.Format {
	case types.OutputJSON:
		err = report.WriteSearchJSON(d.Out, results, order)
	case types.OutputYAML:
		err = report.WriteSearchYAML(d.Out, results, order)
	default:
		err = report.WriteSearchText(d.Out, results, order)
	}
	if err != nil {
		return "", fmt.Errorf("writing search results: %w", err)
	}
	return fmt.Sprintf("%d results", len(results)), nil
}

func (d *Dispatcher) info(ctx context.Context, query string) (string, error) {
	body, err := d.Remote.Fetch(ctx, aur.KindInfo, query)
	if err != nil {
		return "", err
	}
	infos, err := aur.DecodeInfo(body)
	if err != nil {
		return "", err
	}

	// Several records for one exact name is treated like none.
	if len(infos) != 1 {
		d.logger().Debug("info lookup did not yield one package", "query", query, "count", len(infos))
		if _, err := io.WriteString(d.Out, report.FormatNotFound()); err != nil {
			return "", err
		}
		return "not found", nil
	}

	switch d.Format {
	case types.OutputJSON:
		err = report.WriteInfoJSON(d.Out, infos[0])
	case types.OutputYAML:
		err = report.WriteInfoYAML(d.Out, infos[0])
	default:
		_, err = io.WriteString(d.Out, report.FormatInfoBlock(infos[0]))
	}
	if err != nil {
		return "", fmt.Errorf("writing package info: %w", err)
	}
	return infos[0].Name + " " + infos[0].Version, nil
}

// syncAndBuild syncs every package, then builds every package. A failing
// package is logged and skipped; only cancellation stops the loop.
func (d *Dispatcher) syncAndBuild(ctx context.Context, intent options.Intent) (types.Outcome, string, error) {
	type step struct {
		verb string
		run  func(context.Context, string) error
	}
	var steps []step
	if intent.Op.Syncs() {
		steps = append(steps, step{"source", d.Workspace.Sync})
	}
	if intent.Op.Builds() {
		steps = append(steps, step{"install", d.Workspace.Build})
	}

	total, failed := 0, 0
	for _, s := range steps {
		for _, name := range intent.Packages {
			if err := ctx.Err(); err != nil {
				return types.OutcomeFailed, "", err
			}
			total++
			if err := s.run(ctx, name); err != nil {
				failed++
				d.logger().Warn(s.verb+" failed", "package", name, "err", err)
				continue
			}
			d.logger().Info(s.verb+" done", "package", name)
		}
	}

	return outcome(failed, total), fmt.Sprintf("%d of %d steps failed", failed, total), nil
}

func (d *Dispatcher) remove(ctx context.Context, names []string) (types.Outcome, string, error) {
	status, detail := types.OutcomeOK, ""
	if err := d.Workspace.Remove(ctx, names); err != nil {
		d.logger().Warn("removal incomplete", "err", err)
		status, detail = types.OutcomePartial, err.Error()
	}
	if _, err := io.WriteString(d.Out, removedMessage); err != nil {
		return types.OutcomeFailed, "", err
	}
	return status, detail, nil
}

func (d *Dispatcher) history(ctx context.Context) error {
	if d.Journal == nil {
		return fmt.Errorf("journal is disabled (set journal.enabled in the config)")
	}
	entries, err := d.Journal.Recent(ctx, 0)
	if err != nil {
		return err
	}
	_, err = io.WriteString(d.Out, report.FormatHistory(entries))
	return err
}

func (d *Dispatcher) record(ctx context.Context, intent options.Intent, status types.Outcome, detail string) {
	if d.Journal == nil {
		return
	}
	// Interrupted operations are still recorded.
	err := d.Journal.Record(context.WithoutCancel(ctx), types.JournalEntry{
		Time:      time.Now(),
		Operation: intent.Op.String(),
		Packages:  intent.Args(),
		Outcome:   status,
		Detail:    detail,
	})
	if err != nil {
		d.logger().Debug("journal write failed", "err", err)
	}
}

var discardLogger = log.New(io.Discard)

// logger returns d.Logger, or a discarding logger when it is nil.
func (d *Dispatcher) logger() *log.Logger {
	if d.Logger == nil {
		return discardLogger
	}
	return d.Logger
}

func outcome(failed, total int) types.Outcome {
	switch {
	case failed == 0:
		return types.OutcomeOK
	case failed == total:
		return types.OutcomeFailed
	default:
		return types.OutcomePartial
	}
}
