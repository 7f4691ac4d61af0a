// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package workspace manages per-package git working copies under the data
// directory and runs makepkg inside them.
//
// Package names are validated before they touch the filesystem or a
// command line, so a name can never resolve outside the data directory.
// External tools are started with an argument vector; no shell is involved.
package workspace

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/pdiddy/aurman/pkg/types"
)

const (
	DefaultGitBaseURL = "https://aur.archlinux.org"
	defaultGit        = "git"
	defaultMakepkg    = "makepkg"
)

// DefaultMakepkgFlags builds, resolves dependencies and installs.
var DefaultMakepkgFlags = []string{"-si"}

// ErrInvalidName reports a package name that is not a valid AUR name.
var ErrInvalidName = errors.New("invalid package name")

var namePattern = regexp.MustCompile(`^[a-z0-9@_+][a-z0-9@._+-]*$`)

// ValidName reports whether name is a valid AUR package name.
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

// Workspace syncs, builds and removes working copies.
type Workspace struct {
	cfg    types.WorkspaceConfig
	fs     afero.Fs
	exec   executor
	logger *log.Logger
}

// New returns a Workspace on the real filesystem whose child processes
// share the current terminal.
func New(cfg types.WorkspaceConfig, logger *log.Logger) *Workspace {
	exec := &osExecutor{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
	return newWorkspace(cfg, afero.NewOsFs(), exec, logger)
}

func newWorkspace(cfg types.WorkspaceConfig, fs afero.Fs, exec executor, logger *log.Logger) *Workspace {
	if cfg.GitBaseURL == "" {
		cfg.GitBaseURL = DefaultGitBaseURL
	}
	if cfg.Git == "" {
		cfg.Git = defaultGit
	}
	if cfg.Makepkg == "" {
		cfg.Makepkg = defaultMakepkg
	}
	if cfg.MakepkgFlags == nil {
		cfg.MakepkgFlags = DefaultMakepkgFlags
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Workspace{cfg: cfg, fs: fs, exec: exec, logger: logger}
}

// Dir returns the working copy path for name.
func (w *Workspace) Dir(name string) (string, error) {
	if !ValidName(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if w.cfg.DataDir == "" {
		return "", fmt.Errorf("workspace data directory is not configured")
	}
	return filepath.Join(w.cfg.DataDir, name), nil
}

// CloneURL returns the git URL for name.
func (w *Workspace) CloneURL(name string) string {
	return w.cfg.GitBaseURL + "/" + name + ".git"
}

// Sync makes sure a working copy of name exists: it pulls when the
// directory is present and clones otherwise.
func (w *Workspace) Sync(ctx context.Context, name string) error {
	dir, err := w.Dir(name)
	if err != nil {
		return err
	}
	if _, err := w.exec.LookPath(w.cfg.Git); err != nil {
		return fmt.Errorf("%s not found: %w", w.cfg.Git, err)
	}

	exists, err := afero.DirExists(w.fs, dir)
	if err != nil {
		return fmt.Errorf("checking %s: %w", dir, err)
	}

	if exists {
		w.logger.Debug("pulling", "package", name, "dir", dir)
		if err := w.exec.Run(ctx, "", w.cfg.Git, "-C", dir, "pull"); err != nil {
			return fmt.Errorf("git pull %s: %w", name, err)
		}
		return nil
	}

	if err := w.fs.MkdirAll(w.cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", w.cfg.DataDir, err)
	}
	url := w.CloneURL(name)
	w.logger.Debug("cloning", "package", name, "url", url, "dir", dir)
	if err := w.exec.Run(ctx, "", w.cfg.Git, "clone", "--", url, dir); err != nil {
		return fmt.Errorf("git clone %s: %w", name, err)
	}
	return nil
}

// Build runs makepkg inside the working copy of name.
func (w *Workspace) Build(ctx context.Context, name string) error {
	dir, err := w.Dir(name)
	if err != nil {
		return err
	}
	exists, err := afero.DirExists(w.fs, dir)
	if err != nil {
		return fmt.Errorf("checking %s: %w", dir, err)
	}
	if !exists {
		return fmt.Errorf("no working copy for %s in %s (run --source first)", name, w.cfg.DataDir)
	}
	if _, err := w.exec.LookPath(w.cfg.Makepkg); err != nil {
		return fmt.Errorf("%s not found: %w", w.cfg.Makepkg, err)
	}

	w.logger.Debug("building", "package", name, "dir", dir, "flags", w.cfg.MakepkgFlags)
	if err := w.exec.Run(ctx, dir, w.cfg.Makepkg, w.cfg.MakepkgFlags...); err != nil {
		return fmt.Errorf("makepkg %s: %w", name, err)
	}
	return nil
}

// Remove deletes the working copies of names in one call. Invalid names
// are skipped; all failures are joined into the returned error.
func (w *Workspace) Remove(ctx context.Context, names []string) error {
	var errs []error
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return errors.Join(append(errs, err)...)
		}
		dir, err := w.Dir(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		w.logger.Debug("removing", "package", name, "dir", dir)
		if err := w.fs.RemoveAll(dir); err != nil {
			errs = append(errs, fmt.Errorf("removing %s: %w", dir, err))
		}
	}
	return errors.Join(errs...)
}
