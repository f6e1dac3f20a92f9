/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package project loads the project shared by CLI commands, applying the
// persistent --root and --on-conflict flags.
package project

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tokensync/config"
	"bennypowers.dev/tokensync/fs"
	"bennypowers.dev/tokensync/generate"
	"bennypowers.dev/tokensync/internal/logger"
	"bennypowers.dev/tokensync/serialize"
	"bennypowers.dev/tokensync/transform"
	"bennypowers.dev/tokensync/tree"
)

// Root returns the project root from --root or TOKENSYNC_ROOT.
func Root() string {
	if root := viper.GetString("root"); root != "" {
		return root
	}
	return "."
}

// Load reads the project config under Root and applies flag overrides.
func Load(filesystem fs.FileSystem) (*generate.Project, error) {
	root := Root()
	cfg, err := config.LoadOrDefault(filesystem, root)
	if err != nil {
		return nil, err
	}

	// Get policy from viper (CLI flag or environment)
	if policy := viper.GetString("on-conflict"); policy != "" {
		if _, err := tree.ParsePolicy(policy); err != nil {
			return nil, err
		}
		cfg.OnConflict = policy
	}

	logger.Debug("project root %s, conflict policy %q", root, cfg.OnConflict)
	return generate.New(filesystem, root, cfg)
}

// OutputFlags are the flags shared by commands that print a token tree.
type OutputFlags struct {
	Format      string
	Output      string
	Declaration string
	Indent      int
}

// AddOutputFlags registers the output flags on cmd.
func AddOutputFlags(cmd *cobra.Command, defaultFormat string) {
	cmd.Flags().StringP("format", "f", defaultFormat, "Output format: "+strings.Join(serialize.ValidFormats(), ", "))
	cmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
	cmd.Flags().String("declaration", "", "Wrap ts output in an exported const with this name")
	cmd.Flags().Int("indent", serialize.DefaultIndent, "Indentation width for ts output")
}

// ReadOutputFlags collects OutputFlags from cmd.
func ReadOutputFlags(cmd *cobra.Command) OutputFlags {
	var o OutputFlags
	o.Format, _ = cmd.Flags().GetString("format")
	o.Output, _ = cmd.Flags().GetString("output")
	o.Declaration, _ = cmd.Flags().GetString("declaration")
	o.Indent, _ = cmd.Flags().GetInt("indent")
	return o
}

// Emit renders root and writes it to the output file, or to w when no
// output file is set.
func Emit(w io.Writer, filesystem fs.FileSystem, root *tree.Node, o OutputFlags) error {
	format, err := serialize.ParseFormat(o.Format)
	if err != nil {
		return err
	}
	data, err := generate.Render(root, format, serialize.Options{
		Indent:      o.Indent,
		Step:        o.Indent,
		Declaration: o.Declaration,
	})
	if err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}

	if o.Output == "" {
		_, err := w.Write(data)
		return err
	}

	if dir := filepath.Dir(o.Output); dir != "." {
		if err := filesystem.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating directory for %s: %w", o.Output, err)
		}
	}
	if err := filesystem.WriteFile(o.Output, data, 0o644); err != nil {
		return fmt.Errorf("error writing to %s: %w", o.Output, err)
	}
	logger.Info("Wrote %s", o.Output)
	return nil
}

// CheckDiagnostics reports diags and, in strict mode, turns any diagnostic
// into an error wrapping transform.ErrMissingModes.
func CheckDiagnostics(diags []transform.Diagnostic, strict bool) error {
	if n := ReportDiagnostics(diags); n > 0 && strict {
		return fmt.Errorf("%w: %d token(s)", transform.ErrMissingModes, n)
	}
	return nil
}

// ReportDiagnostics logs each diagnostic as a warning and returns how many
// there were.
func ReportDiagnostics(diags []transform.Diagnostic) int {
	for _, d := range diags {
		logger.Warn("%s", d)
	}
	return len(diags)
}
