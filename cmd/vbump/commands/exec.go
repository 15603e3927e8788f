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
	"fmt"

	"github.com/spf13/cobra"
	"github.com/walteh/vbump/cmd/vbump/opts"
	"github.com/walteh/vbump/pkg/hook"
	"gitlab.com/tozd/go/errors"
)

// ExitCodeError carries a wrapped build tool's non-zero exit code up to main
type ExitCodeError struct {
	Code int
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// NewExecCmd creates the exec command
func NewExecCmd(o *opts.RootOpts) *cobra.Command {
	var increment, reset bool

	cmd := &cobra.Command{
		Use:   "exec [--bump] [--fresh] [-- command [args...]]",
		Short: "Run a build tool with BUMP/FRESH set",
		Long: `Exec runs a build tool with BUMP=true and/or FRESH=true added to its
environment so that a 'vbump hook' step inside the build picks them up.
Without a command the build block of the config file is used. The build
tool's exit code becomes vbump's exit code.`,
		Example: `  vbump exec --bump -- npm run build
  vbump exec --fresh`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			w := &hook.Wrapper{
				Increment: increment,
				Reset:     reset,
				Stdin:     cmd.InOrStdin(),
				Stdout:    cmd.OutOrStdout(),
				Stderr:    cmd.ErrOrStderr(),
			}

			switch {
			case len(args) > 0:
				w.Command, w.Args = args[0], args[1:]
			case o.Config != nil && o.Config.Build != nil:
				w.Command, w.Args = o.Config.Build.Command, o.Config.Build.Args
			default:
				return errors.Errorf("no build command given and no build block in config")
			}

			code, err := w.Run(ctx)
			o.UserLogger.LogProcess(w.String(), code, err)
			if err != nil {
				return errors.Errorf("running build tool: %w", err)
			}
			if code != 0 {
				return &ExitCodeError{Code: code}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&increment, "bump", false, "set BUMP=true for the build tool")
	cmd.Flags().BoolVar(&reset, "fresh", false, "set FRESH=true for the build tool")
	// everything after the command name belongs to the build tool
	cmd.Flags().SetInterspersed(false)

	return cmd
}
