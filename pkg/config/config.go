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
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/walteh/vbump/pkg/bump"
	"gitlab.com/tozd/go/errors"
)

// 🏗️ BuildArgs describes the build tool wrapped by "vbump exec"
type BuildArgs struct {
	Command string   `json:"command" yaml:"command" hcl:"command"`
	Args    []string `json:"args,omitempty" yaml:"args,omitempty" hcl:"args,optional"`
}

// 📚 Config is the content of a .vbumprc file
type Config struct {
	Files   []string   `json:"files,omitempty" yaml:"files,omitempty" hcl:"files,optional"`
	Exclude []string   `json:"exclude,omitempty" yaml:"exclude,omitempty" hcl:"exclude,optional"`
	Pattern string     `json:"pattern,omitempty" yaml:"pattern,omitempty" hcl:"pattern,optional"`
	Bump    bool       `json:"bump,omitempty" yaml:"bump,omitempty" hcl:"bump,optional"`
	Fresh   bool       `json:"fresh,omitempty" yaml:"fresh,omitempty" hcl:"fresh,optional"`
	Build   *BuildArgs `json:"build,omitempty" yaml:"build,omitempty" hcl:"build,block"`

	location string
}

// Location returns the path the config was loaded from
func (c *Config) Location() string {
	return c.location
}

// 🔍 Validate checks globs and the pattern so that bad configuration fails
// before any file is touched
func (c *Config) Validate() error {
	for i, f := range c.Files {
		if strings.TrimSpace(f) == "" {
			return errors.Errorf("files[%d] is empty", i)
		}
		if !doublestar.ValidatePattern(filepath.ToSlash(f)) {
			return errors.Errorf("files[%d]: invalid glob %q", i, f)
		}
	}

	for i, f := range c.Exclude {
		if !doublestar.ValidatePattern(filepath.ToSlash(f)) {
			return errors.Errorf("exclude[%d]: invalid glob %q", i, f)
		}
	}

	if c.Pattern != "" {
		if _, err := bump.CompilePattern(c.Pattern); err != nil {
			return errors.Errorf("pattern: %w", err)
		}
	}

	if c.Build != nil && strings.TrimSpace(c.Build.Command) == "" {
		return errors.Errorf("build.command is required")
	}

	return nil
}

// Layer exposes the config as the lowest-priority settings layer
func (c *Config) Layer() Layer {
	name := "config"
	if c.location != "" {
		name = "config:" + filepath.Base(c.location)
	}
	return Layer{
		Name:      name,
		Increment: c.Bump,
		Reset:     c.Fresh,
		Files:     c.Files,
		Exclude:   c.Exclude,
		Pattern:   c.Pattern,
	}
}

// 📝 String returns a short description of the config
func (c *Config) String() string {
	files := c.Files
	if len(files) == 0 {
		files = []string{"(default)"}
	}
	pattern := c.Pattern
	if pattern == "" {
		pattern = "(default)"
	}
	return fmt.Sprintf("files=%s pattern=%s", strings.Join(files, ","), pattern)
}
