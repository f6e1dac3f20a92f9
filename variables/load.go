/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package variables

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	tsfs "bennypowers.dev/tokensync/fs"
)

// ErrNoFiles indicates that no pattern matched any file.
var ErrNoFiles = errors.New("no variable files matched")

// LoadFile reads and parses a single variables file.
func LoadFile(filesystem tsfs.FileSystem, path string) (List, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	list, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return list, nil
}

// Load expands patterns relative to rootDir and merges every matched file in
// order. Later files override values of earlier ones. http(s) patterns are
// fetched with DefaultRemote and cancelled with ctx.
func Load(ctx context.Context, filesystem tsfs.FileSystem, rootDir string, patterns ...string) (List, error) {
	var lists []List
	for _, pattern := range patterns {
		if IsURL(pattern) {
			list, err := DefaultRemote.Load(ctx, pattern)
			if err != nil {
				return nil, err
			}
			lists = append(lists, list)
			continue
		}
		paths, err := Expand(filesystem, rootDir, pattern)
		if err != nil {
			return nil, err
		}
		for _, path := range paths {
			list, err := LoadFile(filesystem, path)
			if err != nil {
				return nil, err
			}
			lists = append(lists, list)
		}
	}
	if len(lists) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoFiles, strings.Join(patterns, ", "))
	}
	return Merge(lists...), nil
}

// Expand resolves a path or glob pattern relative to rootDir.
// A plain path is returned as is, even if it does not exist.
func Expand(filesystem tsfs.FileSystem, rootDir, pattern string) ([]string, error) {
	if !filepath.IsAbs(pattern) && rootDir != "" {
		pattern = filepath.Join(rootDir, pattern)
	}

	if !containsGlob(pattern) {
		return []string{pattern}, nil
	}

	return expandGlob(filesystem, pattern)
}

func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// expandGlob walks the non-glob prefix of pattern and matches the rest with doublestar.
func expandGlob(filesystem tsfs.FileSystem, pattern string) ([]string, error) {
	baseDir := pattern
	for containsGlob(baseDir) {
		baseDir = filepath.Dir(baseDir)
	}

	relPattern := strings.TrimPrefix(pattern, baseDir)
	relPattern = strings.TrimPrefix(relPattern, string(filepath.Separator))

	var matches []string
	err := fs.WalkDir(filesystem, baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		relPath := strings.TrimPrefix(path, baseDir)
		relPath = strings.TrimPrefix(relPath, string(filepath.Separator))

		if matched, _ := doublestar.Match(relPattern, filepath.ToSlash(relPath)); matched {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return matches, nil
}
