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

package hook

import (
	"context"
	"os"

	"github.com/spf13/afero"
	"github.com/walteh/vbump/pkg/bump"
	"github.com/walteh/vbump/pkg/config"
	"github.com/walteh/vbump/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options are the call-site options of a pipeline hook. They take
// priority over every other settings layer.
type Options struct {
	Files     []string
	Exclude   []string
	Pattern   string
	Increment bool
	Reset     bool
}

// 🪝 Hook runs a bump pass at the start of a build
type Hook struct {
	opts   Options
	env    Env
	layers []config.Layer
}

// New creates a hook. Lower-priority layers (usually the environment and
// the config file) are consulted after opts.
func New(opts Options, env Env, lower ...config.Layer) *Hook {
	return &Hook{
		opts:   opts,
		env:    env,
		layers: lower,
	}
}

// NewDefault creates a hook for the current directory that reads BUMP and
// FRESH from the environment and .vbumprc from the working directory.
func NewDefault(ctx context.Context, opts Options, logger *log.Logger) (*Hook, error) {
	root, err := os.Getwd()
	if err != nil {
		return nil, errors.Errorf("getting working directory: %w", err)
	}

	return NewFromEnv(ctx, opts, Env{Fs: afero.NewOsFs(), Root: root, Logger: logger})
}

// NewFromEnv is NewDefault for an explicit filesystem and root. The config
// file is discovered on env.Fs in env.Root.
func NewFromEnv(ctx context.Context, opts Options, env Env) (*Hook, error) {
	layers := []config.Layer{config.EnvLayer()}

	cfg, err := config.Discover(ctx, env.Fs, env.Root)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}
	if cfg != nil {
		layers = append(layers, cfg.Layer())
	}

	return New(opts, env, layers...), nil
}

// Layer returns the call-site options as a settings layer
func (h *Hook) Layer() config.Layer {
	return config.Layer{
		Name:      "call-site",
		Increment: h.opts.Increment,
		Reset:     h.opts.Reset,
		Files:     h.opts.Files,
		Exclude:   h.opts.Exclude,
		Pattern:   h.opts.Pattern,
	}
}

// BuildStart runs the pass. Nothing is touched unless some layer asked for
// a bump or a reset.
func (h *Hook) BuildStart(ctx context.Context) (*bump.Result, error) {
	layers := append([]config.Layer{h.Layer()}, h.layers...)
	return RunPass(ctx, h.env, config.Resolve(layers...))
}
