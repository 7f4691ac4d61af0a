// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"

	"github.com/pdiddy/aurman/internal/aur"
	"github.com/pdiddy/aurman/internal/options"
	"github.com/pdiddy/aurman/internal/workspace"
	"github.com/pdiddy/aurman/pkg/types"
)

const defaultTimeout = 30 * time.Second

// newViper returns a viper instance with aurman's defaults and environment
// binding (AURMAN_AUR_BASE_URL, AURMAN_WORKSPACE_DATA_DIR, ...).
func newViper(home string) *viper.Viper {
	v := viper.New()

	v.SetDefault("aur.base_url", aur.DefaultBaseURL)
	v.SetDefault("aur.timeout", defaultTimeout)
	v.SetDefault("aur.user_agent", "aurman/"+version)

	v.SetDefault("workspace.data_dir", filepath.Join(home, ".aurman"))
	v.SetDefault("workspace.git_base_url", workspace.DefaultGitBaseURL)
	v.SetDefault("workspace.git", "git")
	v.SetDefault("workspace.makepkg", "makepkg")
	v.SetDefault("workspace.makepkg_flags", workspace.DefaultMakepkgFlags)

	v.SetDefault("journal.enabled", true)
	v.SetDefault("journal.path", filepath.Join(stateDir(home), "aurman", "journal.db"))
	v.SetDefault("journal.history_limit", 20)

	v.SetDefault("format", string(types.OutputText))

	v.SetEnvPrefix("AURMAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// loadConfig reads the config file (mods.Config, or aurman.yaml in the
// working directory or ~/.config/aurman/) and applies modifier overrides.
func loadConfig(mods options.Modifiers, logger *log.Logger) (types.Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return types.Config{}, fmt.Errorf("locating home directory: %w", err)
	}

	v := newViper(home)
	if mods.Config != "" {
		v.SetConfigFile(mods.Config)
	} else {
		v.SetConfigName("aurman")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(filepath.Join(home, ".config", "aurman"))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if mods.Config != "" || !errors.As(err, &notFound) {
			return types.Config{}, fmt.Errorf("reading config: %w", err)
		}
	} else {
		logger.Debug("using config file", "path", v.ConfigFileUsed())
	}

	cfg := configFrom(v, home)
	if mods.Format != "" {
		cfg.Format = types.OutputFormat(mods.Format)
	}
	if !cfg.Format.Valid() {
		return types.Config{}, fmt.Errorf("unsupported format %q: use text, json or yaml", cfg.Format)
	}
	return cfg, nil
}

func configFrom(v *viper.Viper, home string) types.Config {
	return types.Config{
		AUR: types.AURConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   v.GetDuration("aur.timeout"),
				UserAgent: v.GetString("aur.user_agent"),
			},
			BaseURL: v.GetString("aur.base_url"),
		},
		Workspace: types.WorkspaceConfig{
			DataDir:      expandHome(v.GetString("workspace.data_dir"), home),
			GitBaseURL:   strings.TrimRight(v.GetString("workspace.git_base_url"), "/"),
			Git:          v.GetString("workspace.git"),
			Makepkg:      v.GetString("workspace.makepkg"),
			MakepkgFlags: v.GetStringSlice("workspace.makepkg_flags"),
		},
		Journal: types.JournalConfig{
			Enabled:      v.GetBool("journal.enabled"),
			Path:         expandHome(v.GetString("journal.path"), home),
			HistoryLimit: v.GetInt("journal.history_limit"),
		},
		Format: types.OutputFormat(v.GetString("format")),
	}
}

// stateDir follows the XDG base directory spec for state files.
func stateDir(home string) string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return dir
	}
	return filepath.Join(home, ".local", "state")
}

func expandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
