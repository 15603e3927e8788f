// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package resolve expands file globs into the ordered list of files a bump
// run operates on.
package resolve

import (
	"context"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// DefaultFiles is used when no glob is configured
const DefaultFiles = "src/**/*.{ts,tsx,js,jsx}"

// maxConcurrentGlobs bounds the number of globs expanded at once
const maxConcurrentGlobs = 4

// ErrInvalidGlob is returned for glob patterns with bad syntax
var ErrInvalidGlob = errors.Base("invalid glob")

// 🗂️ Resolver turns glob patterns into absolute file paths
type Resolver struct {
	fs   afero.Fs
	root string
}

// New creates a resolver over fsys. Relative globs are resolved against root.
func New(fsys afero.Fs, root string) *Resolver {
	return &Resolver{
		fs:   fsys,
		root: filepath.Clean(root),
	}
}

// Resolve expands patterns in order and returns the matching regular files
// as absolute paths. Files matching any of excludes are dropped. Each path
// appears once, at the position of its first match.
func (r *Resolver) Resolve(ctx context.Context, patterns []string, excludes []string) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	for _, ex := range excludes {
		if !doublestar.ValidatePattern(filepath.ToSlash(ex)) {
			return nil, errors.Errorf("%w: exclude %q", ErrInvalidGlob, ex)
		}
	}

	matches := make([][]string, len(patterns))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentGlobs)
	for i, pattern := range patterns {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			found, err := r.expand(pattern)
			if err != nil {
				return err
			}
			matches[i] = found
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	var paths []string
	for i, found := range matches {
		for _, p := range found {
			if seen[p] {
				continue
			}
			seen[p] = true

			if pattern, ok := r.excluded(p, excludes); ok {
				logger.Debug().Str("path", p).Str("exclude", pattern).Msg("file excluded")
				continue
			}
			paths = append(paths, p)
		}
		logger.Debug().Str("glob", patterns[i]).Int("matches", len(found)).Msg("glob expanded")
	}

	return paths, nil
}

// expand resolves a single glob to absolute file paths in lexical order.
// The root is never part of the pattern, so glob metacharacters in its path
// are matched literally.
func (r *Resolver) expand(pattern string) ([]string, error) {
	glob := filepath.ToSlash(pattern)
	if !doublestar.ValidatePattern(glob) {
		return nil, errors.Errorf("%w: %q", ErrInvalidGlob, pattern)
	}

	base, rel := doublestar.SplitPattern(glob)
	dir := filepath.FromSlash(base)
	if !filepath.IsAbs(dir) && !path.IsAbs(base) {
		dir = filepath.Join(r.root, dir)
	}

	exists, err := afero.DirExists(r.fs, dir)
	if err != nil {
		return nil, errors.Errorf("checking glob base %q: %w", dir, err)
	}
	if !exists {
		return nil, nil
	}

	fsys := afero.NewIOFS(afero.NewBasePathFs(r.fs, dir))
	found, err := doublestar.Glob(fsys, rel, doublestar.WithFilesOnly())
	if err != nil {
		return nil, errors.Errorf("expanding %q: %w", pattern, err)
	}

	out := make([]string, 0, len(found))
	for _, f := range found {
		out = append(out, filepath.Join(dir, filepath.FromSlash(f)))
	}
	return out, nil
}

// excluded reports the first exclude pattern that matches p
func (r *Resolver) excluded(p string, excludes []string) (string, bool) {
	if len(excludes) == 0 {
		return "", false
	}

	abs := filepath.ToSlash(p)
	rel := abs
	if rp, err := filepath.Rel(r.root, p); err == nil && !strings.HasPrefix(rp, "..") {
		rel = filepath.ToSlash(rp)
	}

	for _, ex := range excludes {
		ex = filepath.ToSlash(ex)
		if doublestar.MatchUnvalidated(ex, rel) || doublestar.MatchUnvalidated(ex, abs) {
			return ex, true
		}
	}
	return "", false
}
