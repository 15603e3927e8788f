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
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🚀 Wrapper runs a build tool with BUMP and FRESH set in its environment so
// that a hook inside the build picks them up
type Wrapper struct {
	Command   string
	Args      []string
	Increment bool
	Reset     bool

	// Environ is the base environment; os.Environ() when nil
	Environ []string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Env returns the environment handed to the build tool
func (w *Wrapper) Env() []string {
	base := w.Environ
	if base == nil {
		base = os.Environ()
	}

	env := make([]string, 0, len(base)+2)
	for _, kv := range base {
		if w.Increment && strings.HasPrefix(kv, "BUMP=") {
			continue
		}
		if w.Reset && strings.HasPrefix(kv, "FRESH=") {
			continue
		}
		env = append(env, kv)
	}
	if w.Increment {
		env = append(env, "BUMP=true")
	}
	if w.Reset {
		env = append(env, "FRESH=true")
	}
	return env
}

// String returns the command line
func (w *Wrapper) String() string {
	return strings.TrimSpace(w.Command + " " + strings.Join(w.Args, " "))
}

// Run starts the build tool and waits for it. The returned code is the
// tool's exit code; err is only set when the tool could not be run at all.
func (w *Wrapper) Run(ctx context.Context) (int, error) {
	if w.Command == "" {
		return -1, errors.Errorf("no build command given")
	}

	cmd := exec.CommandContext(ctx, w.Command, w.Args...)
	cmd.Env = w.Env()
	cmd.Stdin = w.Stdin
	cmd.Stdout = w.Stdout
	cmd.Stderr = w.Stderr

	zerolog.Ctx(ctx).Debug().
		Str("command", w.String()).
		Bool("bump", w.Increment).
		Bool("fresh", w.Reset).
		Msg("starting build tool")

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, errors.Errorf("running %s: %w", w.Command, err)
	}

	return 0, nil
}
