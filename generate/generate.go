/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package generate loads a project's variable files, builds its token trees
// and writes the configured outputs.
package generate

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"bennypowers.dev/tokensync/config"
	tsfs "bennypowers.dev/tokensync/fs"
	"bennypowers.dev/tokensync/internal/logger"
	"bennypowers.dev/tokensync/serialize"
	"bennypowers.dev/tokensync/transform"
	"bennypowers.dev/tokensync/tree"
	"bennypowers.dev/tokensync/variables"
)

// ErrNoInputs indicates that no variable files were given or configured.
var ErrNoInputs = errors.New("no variable files given or configured")

// Project builds token trees for one project root. Trees built from the
// configured files are cached, so outputs sharing a kind are built once.
// A Project is not safe for concurrent use.
type Project struct {
	fs     tsfs.FileSystem
	root   string
	config *config.Config
	opts   transform.Options

	base     *tree.Node
	semantic *transform.Result
}

// New returns a project rooted at rootDir. A nil cfg means defaults.
func New(filesystem tsfs.FileSystem, rootDir string, cfg *config.Config) (*Project, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	opts, err := cfg.TransformOptions()
	if err != nil {
		return nil, err
	}
	return &Project{fs: filesystem, root: rootDir, config: cfg, opts: opts}, nil
}

// Config returns the project's config.
func (p *Project) Config() *config.Config {
	return p.config
}

// Options returns the transform options derived from the config.
func (p *Project) Options() transform.Options {
	return p.opts
}

// Path resolves a config-relative path against the project root.
func (p *Project) Path(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(p.root, path)
}

// Base builds base tokens from patterns, or from the configured base files
// when patterns is empty. ctx cancels remote fetches.
func (p *Project) Base(ctx context.Context, patterns ...string) (*tree.Node, error) {
	fromConfig := len(patterns) == 0
	if fromConfig {
		if p.base != nil {
			return p.base, nil
		}
		patterns = p.config.Base
	}
	if len(patterns) == 0 {
		return nil, fmt.Errorf("%w: base", ErrNoInputs)
	}

	vars, err := variables.Load(ctx, p.fs, p.root, patterns...)
	if err != nil {
		return nil, err
	}
	root, err := transform.BuildBase(vars, p.opts)
	if err != nil {
		return nil, err
	}
	if fromConfig {
		p.base = root
	}
	return root, nil
}

// Semantic builds semantic tokens from the light and dark patterns. Either
// side falls back to the configured files when empty.
func (p *Project) Semantic(ctx context.Context, light, dark []string) (*transform.Result, error) {
	fromConfig := len(light) == 0 && len(dark) == 0
	if fromConfig && p.semantic != nil {
		return p.semantic, nil
	}
	if len(light) == 0 {
		light = p.config.Light
	}
	if len(dark) == 0 {
		dark = p.config.Dark
	}
	if len(light) == 0 || len(dark) == 0 {
		return nil, fmt.Errorf("%w: light and dark", ErrNoInputs)
	}

	lightVars, err := variables.Load(ctx, p.fs, p.root, light...)
	if err != nil {
		return nil, err
	}
	darkVars, err := variables.Load(ctx, p.fs, p.root, dark...)
	if err != nil {
		return nil, err
	}
	result, err := transform.BuildSemantic(lightVars, darkVars, p.opts)
	if err != nil {
		return nil, err
	}
	if fromConfig {
		p.semantic = result
	}
	return result, nil
}

// Render serializes tree in the given format, ending with a newline.
func Render(root *tree.Node, format serialize.Format, opts serialize.Options) ([]byte, error) {
	out, err := serialize.Marshal(root, format, opts)
	if err != nil {
		return nil, err
	}
	if len(out) > 0 && out[len(out)-1] != '\n' {
		out = append(out, '\n')
	}
	return out, nil
}

// Output renders one configured output from the configured files.
func (p *Project) Output(ctx context.Context, out config.OutputSpec) ([]byte, error) {
	format, err := serialize.ParseFormat(out.Format)
	if err != nil {
		return nil, err
	}

	var root *tree.Node
	switch out.Kind {
	case config.KindBase:
		root, err = p.Base(ctx)
	case config.KindSemantic:
		var result *transform.Result
		result, err = p.Semantic(ctx, nil, nil)
		if result != nil {
			root = result.Tree
		}
	default:
		return nil, fmt.Errorf("unknown output kind: %s", out.Kind)
	}
	if err != nil {
		return nil, err
	}

	return Render(root, format, out.SerializeOptions())
}

// Report summarizes a Sync run.
type Report struct {
	// Written lists the output paths written, as configured.
	Written []string

	// Diagnostics are the semantic build diagnostics, reported once per run.
	Diagnostics []transform.Diagnostic
}

// Sync writes every configured output. A failing output does not stop the
// others; the error reports how many failed.
func (p *Project) Sync(ctx context.Context) (*Report, error) {
	if len(p.config.Outputs) == 0 {
		return nil, errors.New("no outputs configured")
	}

	report := &Report{}
	var failures int
	for _, out := range p.config.Outputs {
		data, err := p.Output(ctx, out)
		if err != nil {
			logger.Warn("error generating %s: %v", out.Path, err)
			failures++
			continue
		}

		target := p.Path(out.Path)
		if err := p.fs.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			logger.Warn("error creating directory for %s: %v", out.Path, err)
			failures++
			continue
		}
		if err := p.fs.WriteFile(target, data, 0o644); err != nil {
			logger.Warn("error writing to %s: %v", out.Path, err)
			failures++
			continue
		}

		logger.Info("Wrote %s", out.Path)
		report.Written = append(report.Written, out.Path)
	}

	if p.semantic != nil {
		report.Diagnostics = p.semantic.Diagnostics
	}

	if failures > 0 {
		return report, fmt.Errorf("failed to generate %d output(s)", failures)
	}
	return report, nil
}
