/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package sync provides the sync command for tokensync.
package sync

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"bennypowers.dev/tokensync/cmd/project"
	"bennypowers.dev/tokensync/fs"
	"bennypowers.dev/tokensync/generate"
	"bennypowers.dev/tokensync/internal/logger"
)

// Cmd is the sync cobra command.
var Cmd = &cobra.Command{
	Use:   "sync",
	Short: "Generate every output listed in the project config",
	Long: `Generate every output listed in .config/tokensync.yaml.

Example config:
  base: [figma/base.json]
  light: [figma/light.json]
  dark: [figma/dark.json]
  outputs:
    - kind: base
      format: ts
      path: theme/generated/tokens.ts
      declaration: tokens
    - kind: semantic
      format: ts
      path: theme/generated/semantic-tokens.ts
      declaration: semanticTokens

A failing output does not stop the others. With --watch, outputs are
regenerated whenever the config or a local variables file changes.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("strict", false, "Fail when a semantic token is missing in either mode")
	Cmd.Flags().BoolP("watch", "w", false, "Regenerate outputs when inputs change")
	Cmd.Flags().Duration("debounce", generate.DefaultDebounce, "Delay before regenerating after a change")
}

func run(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")
	watch, _ := cmd.Flags().GetBool("watch")
	debounce, _ := cmd.Flags().GetDuration("debounce")

	ctx := cmd.Context()
	filesystem := fs.NewOSFileSystem()
	p, err := project.Load(filesystem)
	if err != nil {
		return err
	}
	err = syncProject(ctx, p, strict)
	if !watch {
		return err
	}
	if err != nil {
		logger.Warn("%v", err)
	}
	return watchProject(ctx, filesystem, p, strict, debounce)
}

// watchProject re-syncs on every debounced change until ctx is done.
// The config is reloaded each time so edits to it take effect.
func watchProject(ctx context.Context, filesystem fs.FileSystem, p *generate.Project, strict bool, debounce time.Duration) error {
	w, err := generate.NewWatcher(debounce)
	if err != nil {
		return err
	}
	defer w.Close()

	watchInputs(w, p)
	logger.Info("Watching %d director(ies) for changes", len(w.Dirs()))
	return w.Run(ctx, func() {
		next, err := project.Load(filesystem)
		if err != nil {
			logger.Warn("%v", err)
			return
		}
		watchInputs(w, next)
		if err := syncProject(ctx, next, strict); err != nil {
			logger.Warn("%v", err)
		}
	})
}

func watchInputs(w *generate.Watcher, p *generate.Project) {
	dirs, trees := p.WatchDirs()
	w.Add(dirs...)
	w.AddRecursive(trees...)
	w.Ignore(p.OutputPaths()...)
}

func syncProject(ctx context.Context, p *generate.Project, strict bool) error {
	report, err := p.Sync(ctx)
	if err != nil {
		if report != nil {
			project.ReportDiagnostics(report.Diagnostics)
		}
		return err
	}
	return project.CheckDiagnostics(report.Diagnostics, strict)
}
