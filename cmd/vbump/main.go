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

	"github.com/spf13/cobra"
	"github.com/walteh/vbump/cmd/vbump/commands"
	"github.com/walteh/vbump/cmd/vbump/opts"
	"github.com/walteh/vbump/pkg/log"
	"gitlab.com/tozd/go/errors"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	o := &opts.RootOpts{}

	rootCmd := newRootCmd(o, stdout, stderr)
	rootCmd.SetArgs(args)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		var exitErr *commands.ExitCodeError
		if errors.As(err, &exitErr) {
			return exitErr.Code
		}

		userLogger := o.UserLogger
		if userLogger == nil {
			// flag errors happen before the root options exist
			userLogger = log.NewUserLoggerTo(ctx, stderr)
		}
		userLogger.LogValidation(false, "Command failed", err)
		return 1
	}

	return 0
}

func newRootCmd(o *opts.RootOpts, stdout, stderr io.Writer) *cobra.Command {
	var flags commands.BumpFlags

	rootCmd := &cobra.Command{
		Use:   "vbump",
		Short: "Bump version markers like logo_v4 in source files",
		Long: `vbump scans files for version markers (by default _v followed by digits,
as in logo_v4.svg) and rewrites them in place: --bump increments every
marker, --fresh resets every marker to 1. Without either flag, and without
BUMP=true or FRESH=true in the environment, nothing is touched.`,
		Example: `  vbump --bump
  vbump --fresh --files 'assets/**/*.css' --exclude 'assets/vendor/**'
  BUMP=true vbump hook`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			zlog := setupLogging(stderr, o.Debug)
			ctx := zlog.WithContext(cmd.Context())

			ctx, err := initRootOpts(ctx, o, stdout, stderr)
			if err != nil {
				return err
			}

			cmd.SetContext(ctx)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunBump(cmd.Context(), o, &flags)
		},
	}

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	// Add shared flags
	addRootFlags(rootCmd, o)
	commands.AddBumpFlags(rootCmd, &flags)

	// Add commands
	rootCmd.AddCommand(
		commands.NewHookCmd(o),
		commands.NewExecCmd(o),
		newVersionCmd(),
	)

	return rootCmd
}
