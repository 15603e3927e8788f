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

package config

import (
	"github.com/spf13/viper"
	"github.com/walteh/vbump/pkg/bump"
	"github.com/walteh/vbump/pkg/resolve"
	"gitlab.com/tozd/go/errors"
)

// 🧅 Layer is one source of settings: call-site options, CLI flags, the
// environment or a config file
type Layer struct {
	Name      string
	Increment bool
	Reset     bool
	Files     []string
	Exclude   []string
	Pattern   string
}

// ⚙️ Settings is the merged, immutable view of all layers
type Settings struct {
	increment     bool
	reset         bool
	files         []string
	exclude       []string
	patternSource string
	modeSources   []string
}

// Resolve merges layers given from highest to lowest priority. The
// increment and reset switches are OR-combined across every layer; files,
// exclude and pattern come from the first layer that sets them.
func Resolve(layers ...Layer) *Settings {
	s := &Settings{}

	for _, l := range layers {
		if l.Increment || l.Reset {
			s.modeSources = append(s.modeSources, l.Name)
		}
		s.increment = s.increment || l.Increment
		s.reset = s.reset || l.Reset

		if len(s.files) == 0 && len(l.Files) > 0 {
			s.files = append([]string(nil), l.Files...)
		}
		if len(s.exclude) == 0 && len(l.Exclude) > 0 {
			s.exclude = append([]string(nil), l.Exclude...)
		}
		if s.patternSource == "" && l.Pattern != "" {
			s.patternSource = l.Pattern
		}
	}

	if len(s.files) == 0 {
		s.files = []string{resolve.DefaultFiles}
	}
	if s.patternSource == "" {
		s.patternSource = bump.DefaultPattern
	}

	return s
}

// Mode returns the bump mode. conflict is true when both increment and
// reset were requested; reset wins.
func (s *Settings) Mode() (mode bump.Mode, conflict bool) {
	return bump.ModeFrom(s.increment, s.reset)
}

// Pattern compiles the configured pattern
func (s *Settings) Pattern() (*bump.Pattern, error) {
	p, err := bump.CompilePattern(s.patternSource)
	if err != nil {
		return nil, errors.Errorf("compiling pattern: %w", err)
	}
	return p, nil
}

// Files returns the globs to resolve
func (s *Settings) Files() []string {
	return append([]string(nil), s.files...)
}

// Exclude returns the globs of files to skip
func (s *Settings) Exclude() []string {
	return append([]string(nil), s.exclude...)
}

// ModeSources names the layers that requested a bump or reset
func (s *Settings) ModeSources() []string {
	return append([]string(nil), s.modeSources...)
}

// EnvLayer reads BUMP and FRESH from the environment. Values are parsed as
// booleans, so "true" and "1" both enable them.
func EnvLayer() Layer {
	v := viper.New()
	_ = v.BindEnv("bump", "BUMP")
	_ = v.BindEnv("fresh", "FRESH")

	return Layer{
		Name:      "env",
		Increment: v.GetBool("bump"),
		Reset:     v.GetBool("fresh"),
	}
}
