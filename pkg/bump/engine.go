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

package bump

import (
	"context"
	"path/filepath"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
)

// ErrInvalidEncoding is recorded for files that are not valid UTF-8 text
var ErrInvalidEncoding = errors.Base("file is not valid UTF-8 text")

// ErrIsDirectory is recorded for paths that name a directory
var ErrIsDirectory = errors.Base("path is a directory")

// 🏭 Engine rewrites version markers across a list of files
type Engine struct {
	fs afero.Fs
}

// NewEngine creates an engine operating on fs
func NewEngine(fs afero.Fs) *Engine {
	return &Engine{fs: fs}
}

// Run processes paths in order. Per-file failures are collected in
// Result.Failures and never stop the batch. The returned error is non-nil
// only for an unusable pattern or a cancelled context; in the latter case
// the partial result is returned alongside it.
func (e *Engine) Run(ctx context.Context, paths []string, pattern *Pattern, mode Mode) (*Result, error) {
	if pattern == nil {
		return nil, errors.Errorf("%w: pattern is required", ErrInvalidPattern)
	}

	result := newResult(mode)
	logger := zerolog.Ctx(ctx).With().
		Str("run_id", result.RunID).
		Str("mode", mode.String()).
		Logger()

	if mode == ModeNoOp {
		logger.Debug().Msg("no bump requested, skipping scan")
		return result, nil
	}

	logger.Debug().
		Int("files", len(paths)).
		Str("pattern", pattern.String()).
		Msg("starting scan")

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return result, errors.Errorf("run interrupted after %d files: %w", result.Scanned+len(result.Failures), err)
		}
		e.processFile(&logger, result, path, pattern, mode)
	}

	logger.Debug().
		Int("scanned", result.Scanned).
		Int("changed", result.Changed).
		Int("failed", len(result.Failures)).
		Msg("scan complete")

	return result, nil
}

// processFile handles a single path, recording its outcome in result
func (e *Engine) processFile(logger *zerolog.Logger, result *Result, path string, pattern *Pattern, mode Mode) {
	fail := func(op Op, err error) {
		logger.Warn().Err(err).Str("path", path).Str("op", string(op)).Msg("skipping file")
		result.Failures = append(result.Failures, &FileError{Path: path, Op: op, Err: err})
	}

	info, err := e.fs.Stat(path)
	if err != nil {
		fail(OpRead, errors.Errorf("stat: %w", err))
		return
	}
	if info.IsDir() {
		fail(OpRead, ErrIsDirectory)
		return
	}

	data, err := afero.ReadFile(e.fs, path)
	if err != nil {
		fail(OpRead, errors.Errorf("reading file: %w", err))
		return
	}
	if !utf8.Valid(data) {
		fail(OpRead, ErrInvalidEncoding)
		return
	}
	result.Scanned++

	name := filepath.Base(path)
	rewritten := Rewrite(string(data), pattern, mode)

	for _, s := range rewritten.Skipped {
		s.Path = path
		logger.Warn().Str("path", path).Str("match", s.Text).Msg(s.Reason)
		result.Skipped = append(result.Skipped, s)
	}

	if !rewritten.WasModified() {
		logger.Trace().Str("path", path).Msg("no version changes")
		return
	}

	if err := afero.WriteFile(e.fs, path, []byte(rewritten.Content), info.Mode().Perm()); err != nil {
		fail(OpWrite, errors.Errorf("writing file: %w", err))
		return
	}

	for _, c := range rewritten.Changes {
		c.File = name
		c.Path = path
		logger.Debug().Str("path", path).Str("old", c.Old).Str("new", c.New).Msg("version updated")
		result.Changes = append(result.Changes, c)
	}
	result.Changed++
	result.ChangedFiles = append(result.ChangedFiles, path)
}
