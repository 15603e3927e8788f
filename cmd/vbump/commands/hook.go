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
	"github.com/spf13/cobra"
	"github.com/walteh/vbump/cmd/vbump/opts"
	"github.com/walteh/vbump/pkg/config"
	"github.com/walteh/vbump/pkg/hook"
)

// NewHookCmd creates the hook command
func NewHookCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hook",
		Short: "Bump version markers as a build step",
		Long: `Hook is meant to be called from a build script. It takes no run flags:
BUMP=true or FRESH=true in the environment decide what happens, the config
file decides which files are scanned. With neither variable set it does
nothing and exits 0.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			_, err := hook.RunPass(ctx, o.HookEnv(ctx), config.Resolve(o.Layers()...))
			return err
		},
	}

	return cmd
}
