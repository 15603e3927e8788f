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

package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/walteh/vbump/cmd/vbump/opts"
	"github.com/walteh/vbump/pkg/config"
	"github.com/walteh/vbump/pkg/hook"
	"github.com/walteh/vbump/pkg/resolve"
)

// BumpFlags are the run flags of the standalone command
type BumpFlags struct {
	Increment bool
	Reset     bool
	Files     []string
	Exclude   []string
	Pattern   string
}

// AddBumpFlags registers the run flags on cmd. --increase and --reset are
// normalized to --bump and --fresh by the root command.
func AddBumpFlags(cmd *cobra.Command, flags *BumpFlags) {
	cmd.Flags().BoolVar(&flags.Increment, "bump", false, "increment every version marker")
	cmd.Flags().BoolVar(&flags.Reset, "fresh", false, "reset every version marker to 1 (wins over --bump)")
	// StringArray so that globs like *.{ts,tsx} are not split on commas
	cmd.Flags().StringArrayVar(&flags.Files, "files", nil, fmt.Sprintf("glob of files to scan, repeatable (default %q)", resolve.DefaultFiles))
	cmd.Flags().StringArrayVar(&flags.Exclude, "exclude", nil, "glob of files to skip, repeatable")
	cmd.Flags().StringVar(&flags.Pattern, "pattern", "", "version marker regex with prefix and version groups")
}

func (f *BumpFlags) Layer() config.Layer {
	return config.Layer{
		Name:      "flags",
		Increment: f.Increment,
		Reset:     f.Reset,
		Files:     f.Files,
		Exclude:   f.Exclude,
		Pattern:   f.Pattern,
	}
}

// RunBump performs one standalone run: flags > env > config file
func RunBump(ctx context.Context, o *opts.RootOpts, flags *BumpFlags) error {
	layers := append([]config.Layer{flags.Layer()}, o.Layers()...)
	_, err := hook.RunPass(ctx, o.HookEnv(ctx), config.Resolve(layers...))
	return err
}
