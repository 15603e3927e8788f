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

package opts

import (
	"context"

	"github.com/spf13/afero"
	"github.com/walteh/vbump/pkg/config"
	"github.com/walteh/vbump/pkg/hook"
	"github.com/walteh/vbump/pkg/log"
)

// RootOpts holds the shared state for all commands. It is filled in by the
// root command once flags are parsed.
type RootOpts struct {
	// Flags
	ConfigFile string
	Dir        string
	Debug      bool

	Root       string         // absolute working directory
	Fs         afero.Fs       // filesystem used for globbing and rewriting
	Config     *config.Config // nil when no config file was found
	UserLogger *log.UserLogger
}

// Layers returns the environment and config file layers, highest priority
// first. Command specific layers go in front of these.
func (o *RootOpts) Layers() []config.Layer {
	layers := []config.Layer{config.EnvLayer()}
	if o.Config != nil {
		layers = append(layers, o.Config.Layer())
	}
	return layers
}

// HookEnv builds the pass environment. ctx must carry the console logger.
func (o *RootOpts) HookEnv(ctx context.Context) hook.Env {
	return hook.Env{
		Fs:     o.Fs,
		Root:   o.Root,
		Logger: log.FromContext(ctx),
	}
}
