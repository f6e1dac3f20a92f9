/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config loads the tokensync project configuration.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"bennypowers.dev/tokensync/naming"
	"bennypowers.dev/tokensync/serialize"
	"bennypowers.dev/tokensync/transform"
	"bennypowers.dev/tokensync/tree"
)

// ErrInvalidConfig indicates a config that failed validation.
var ErrInvalidConfig = errors.New("invalid config")

// Kind selects which token tree an output is generated from.
type Kind string

const (
	// KindBase generates base tokens from the base variables.
	KindBase Kind = "base"

	// KindSemantic generates semantic tokens from the light and dark variables.
	KindSemantic Kind = "semantic"
)

// Config represents the tokensync configuration.
type Config struct {
	// OnConflict is the structural conflict policy: "fail" (default) or
	// "overwrite". Accepts anything tree.ParsePolicy does.
	OnConflict string `yaml:"onConflict" json:"onConflict" validate:"omitempty,policy"`

	// Aliases replaces the default namespace alias table (external -> internal).
	Aliases map[string]string `yaml:"aliases" json:"aliases"`

	// Defaultable replaces the root names that regain a "default" segment.
	Defaultable []string `yaml:"defaultable" json:"defaultable"`

	// KeepLiterals disables palette reference resolution in semantic tokens.
	KeepLiterals bool `yaml:"keepLiterals" json:"keepLiterals"`

	// Base lists base variable files (paths or globs).
	Base []string `yaml:"base" json:"base"`

	// Light lists light mode variable files.
	Light []string `yaml:"light" json:"light"`

	// Dark lists dark mode variable files.
	Dark []string `yaml:"dark" json:"dark"`

	// Outputs lists the files generated by the sync command.
	Outputs []OutputSpec `yaml:"outputs" json:"outputs" validate:"dive"`
}

// OutputSpec describes one generated file.
type OutputSpec struct {
	// Kind is "base" or "semantic".
	Kind Kind `yaml:"kind" json:"kind" validate:"required,oneof=base semantic"`

	// Format is the output format (ts, json, yaml). Accepts anything
	// serialize.ParseFormat does.
	Format string `yaml:"format" json:"format" validate:"required,format"`

	// Path is the file to write, relative to the project root.
	Path string `yaml:"path" json:"path" validate:"required"`

	// Declaration wraps ts output in an exported const.
	Declaration string `yaml:"declaration" json:"declaration"`

	// Indent is the ts indentation width.
	Indent int `yaml:"indent" json:"indent" validate:"gte=0,lte=8"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{OnConflict: string(tree.PolicyFail)}
}

var validate = newValidator()

// newValidator registers the policy and format tags, which defer to the same
// parsers the CLI flags go through.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("policy", func(fl validator.FieldLevel) bool {
		_, err := tree.ParsePolicy(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("format", func(fl validator.FieldLevel) bool {
		_, err := serialize.ParseFormat(fl.Field().String())
		return err == nil
	})
	return v
}

// Validate checks field values and cross-field requirements.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var ves validator.ValidationErrors
		if errors.As(err, &ves) {
			fe := ves[0]
			return fmt.Errorf("%w: %s failed validation for tag '%s'", ErrInvalidConfig, yamlishFieldName(fe), fe.Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	for i, out := range c.Outputs {
		switch out.Kind {
		case KindBase:
			if len(c.Base) == 0 {
				return fmt.Errorf("%w: outputs[%d] needs base files", ErrInvalidConfig, i)
			}
		case KindSemantic:
			if len(c.Light) == 0 || len(c.Dark) == 0 {
				return fmt.Errorf("%w: outputs[%d] needs light and dark files", ErrInvalidConfig, i)
			}
		}
	}

	if _, err := c.Converter(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// yamlishFieldName turns a validator namespace like Config.Outputs[0].Kind
// into outputs[0].kind.
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part[:1]) + part[1:]
	}
	return strings.Join(parts, ".")
}

// Converter returns the name converter for the configured aliases.
func (c *Config) Converter() (*naming.Converter, error) {
	if len(c.Aliases) == 0 && len(c.Defaultable) == 0 {
		return naming.Default(), nil
	}
	aliases := naming.DefaultAliases
	if len(c.Aliases) > 0 {
		aliases = naming.AliasesFromMap(c.Aliases)
	}
	roots := naming.DefaultRoots
	if len(c.Defaultable) > 0 {
		roots = c.Defaultable
	}
	return naming.New(aliases, roots)
}

// TransformOptions returns transform.Options for this config.
func (c *Config) TransformOptions() (transform.Options, error) {
	policy, err := tree.ParsePolicy(c.OnConflict)
	if err != nil {
		return transform.Options{}, err
	}
	conv, err := c.Converter()
	if err != nil {
		return transform.Options{}, err
	}
	return transform.Options{
		Converter:    conv,
		OnConflict:   policy,
		KeepLiterals: c.KeepLiterals,
	}, nil
}

// SerializeOptions returns serialize.Options for an output.
func (o OutputSpec) SerializeOptions() serialize.Options {
	return serialize.Options{
		Indent:      o.Indent,
		Step:        o.Indent,
		Declaration: o.Declaration,
	}
}
