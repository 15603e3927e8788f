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

// Package hook connects bump runs to their callers: the standalone command,
// build pipelines and wrapped build tools all go through RunPass.
package hook

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/walteh/vbump/pkg/bump"
	"github.com/walteh/vbump/pkg/config"
	"github.com/walteh/vbump/pkg/log"
	"github.com/walteh/vbump/pkg/resolve"
	"gitlab.com/tozd/go/errors"
)

// Env is what a pass needs from its surroundings
type Env struct {
	Fs     afero.Fs    // Filesystem to resolve and rewrite files on
	Root   string      // Directory relative globs are resolved against
	Logger *log.Logger // Console reporter
}

// RunPass executes one bump run for settings. Configuration problems (a bad
// pattern or glob) are returned before any file is read. Per-file problems
// end up in the result and are reported, not returned.
func RunPass(ctx context.Context, env Env, settings *config.Settings) (*bump.Result, error) {
	logger := zerolog.Ctx(ctx)

	pattern, err := settings.Pattern()
	if err != nil {
		return nil, err
	}

	mode, conflict := settings.Mode()
	if conflict {
		env.Logger.Warning("both bump and fresh were requested, resetting versions to 1")
	}
	logger.Debug().
		Str("mode", mode.String()).
		Strs("requested_by", settings.ModeSources()).
		Str("pattern", pattern.String()).
		Msg("settings resolved")

	engine := bump.NewEngine(env.Fs)

	if mode == bump.ModeNoOp {
		result, err := engine.Run(ctx, nil, pattern, mode)
		if err != nil {
			return nil, err
		}
		env.Logger.Report(result)
		return result, nil
	}

	paths, err := resolve.New(env.Fs, env.Root).Resolve(ctx, settings.Files(), settings.Exclude())
	if err != nil {
		return nil, errors.Errorf("resolving files: %w", err)
	}

	env.Logger.Header(fmt.Sprintf("%s • %d files • %s", mode, len(paths), pattern))

	result, err := engine.Run(ctx, paths, pattern, mode)
	if result != nil {
		env.Logger.Report(result)
	}
	return result, err
}
