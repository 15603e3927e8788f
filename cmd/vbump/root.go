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

package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/walteh/vbump/cmd/vbump/opts"
	"github.com/walteh/vbump/pkg/config"
	"github.com/walteh/vbump/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// initRootOpts fills o with initialized dependencies once flags are parsed.
// The returned context carries the console logger.
func initRootOpts(ctx context.Context, o *opts.RootOpts, stdout, stderr io.Writer) (context.Context, error) {
	o.UserLogger = log.NewUserLoggerTo(ctx, stderr)
	ctx = log.NewContext(ctx, log.New(stdout, *zerolog.Ctx(ctx)))

	root := o.Dir
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, errors.Errorf("getting working directory: %w", err)
		}
		root = wd
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Errorf("resolving %s: %w", o.Dir, err)
	}
	o.Root = root

	if o.Fs == nil {
		o.Fs = afero.NewOsFs()
	}

	// Load config
	if o.ConfigFile != "" {
		path := o.ConfigFile
		if !filepath.IsAbs(path) {
			path = filepath.Join(root, path)
		}
		cfg, err := config.LoadConfig(ctx, o.Fs, path)
		if err != nil {
			return nil, errors.Errorf("loading config: %w", err)
		}
		o.Config = cfg
	} else {
		cfg, err := config.Discover(ctx, o.Fs, root)
		if err != nil {
			return nil, errors.Errorf("loading config: %w", err)
		}
		o.Config = cfg
	}

	if o.Config != nil {
		zerolog.Ctx(ctx).Debug().Stringer("settings", o.Config).Msg("config loaded")
		o.UserLogger.LogStateChange("config loaded from " + o.Config.Location())
	}

	return ctx, nil
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, o *opts.RootOpts) {
	cmd.PersistentFlags().StringVarP(&o.ConfigFile, "config", "c", "", "config file path (default: first of "+strings.Join(config.DefaultNames, ", ")+")")
	cmd.PersistentFlags().StringVarP(&o.Dir, "dir", "C", "", "run as if vbump was started in this directory")
	cmd.PersistentFlags().BoolVarP(&o.Debug, "debug", "d", false, "enable debug logging")
	cmd.SetGlobalNormalizationFunc(normalizeFlagName)
}

// normalizeFlagName maps the long-form aliases onto their flags
func normalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	switch name {
	case "increase":
		name = "bump"
	case "reset":
		name = "fresh"
	}
	return pflag.NormalizedName(name)
}

// setupLogging configures zerolog based on flags
func setupLogging(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
