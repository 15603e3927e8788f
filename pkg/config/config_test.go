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
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		config      string
		wantErr     bool
		errContains string
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name:     "yaml_config",
			filename: ".vbumprc.yaml",
			config: `
files:
  - "src/**/*.ts"
  - "index.html"
exclude:
  - "src/gen/**"
pattern: "(-rev)(\\d+)"
bump: true
build:
  command: npx
  args: [vite, build]
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []string{"src/**/*.ts", "index.html"}, cfg.Files, "files should match")
				assert.Equal(t, []string{"src/gen/**"}, cfg.Exclude, "exclude should match")
				assert.Equal(t, `(-rev)(\d+)`, cfg.Pattern, "pattern should match")
				assert.True(t, cfg.Bump, "bump should be true")
				assert.False(t, cfg.Fresh, "fresh should be false")
				require.NotNil(t, cfg.Build, "build should not be nil")
				assert.Equal(t, "npx", cfg.Build.Command)
				assert.Equal(t, []string{"vite", "build"}, cfg.Build.Args)
			},
		},
		{
			name:     "hcl_config",
			filename: ".vbumprc.hcl",
			config: `
files   = ["src/**/*.{ts,tsx}"]
pattern = "(_v)(\\d+)"
fresh   = true

build {
  command = "npm"
  args    = ["run", "build"]
}
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []string{"src/**/*.{ts,tsx}"}, cfg.Files)
				assert.Equal(t, `(_v)(\d+)`, cfg.Pattern)
				assert.True(t, cfg.Fresh)
				require.NotNil(t, cfg.Build)
				assert.Equal(t, "npm", cfg.Build.Command)
				assert.Equal(t, []string{"run", "build"}, cfg.Build.Args)
			},
		},
		{
			name:     "hcl_env_reference",
			filename: "vbump.hcl",
			config:   `files = [env.VBUMP_TEST_GLOB]`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []string{"web/**/*.js"}, cfg.Files)
			},
		},
		{
			name:     "json_config",
			filename: ".vbumprc.json",
			config:   `{"files": ["lib/*.js"], "bump": true}`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []string{"lib/*.js"}, cfg.Files)
				assert.True(t, cfg.Bump)
				assert.Nil(t, cfg.Build)
			},
		},
		{
			name:     "empty_yaml",
			filename: ".vbumprc.yml",
			config:   "",
			check: func(t *testing.T, cfg *Config) {
				assert.Empty(t, cfg.Files)
				assert.Empty(t, cfg.Pattern)
			},
		},
		{
			name:        "unknown_yaml_field",
			filename:    ".vbumprc.yaml",
			config:      "destination: /tmp\n",
			wantErr:     true,
			errContains: "parsing YAML",
		},
		{
			name:        "unknown_json_field",
			filename:    ".vbumprc.json",
			config:      `{"provider": {}}`,
			wantErr:     true,
			errContains: "parsing JSON",
		},
		{
			name:        "invalid_hcl",
			filename:    ".vbumprc.hcl",
			config:      `files = [`,
			wantErr:     true,
			errContains: "parsing HCL",
		},
		{
			name:        "invalid_pattern",
			filename:    ".vbumprc.yaml",
			config:      "pattern: \"(_v\"\n",
			wantErr:     true,
			errContains: "invalid pattern",
		},
		{
			name:        "pattern_with_one_group",
			filename:    ".vbumprc.yaml",
			config:      "pattern: \"_v(\\\\d+)\"\n",
			wantErr:     true,
			errContains: "capture groups",
		},
		{
			name:        "invalid_glob",
			filename:    ".vbumprc.json",
			config:      `{"files": ["src/{a,b"]}`,
			wantErr:     true,
			errContains: "invalid glob",
		},
		{
			name:        "build_without_command",
			filename:    ".vbumprc.yaml",
			config:      "build:\n  args: [x]\n",
			wantErr:     true,
			errContains: "build.command is required",
		},
		{
			name:        "unsupported_extension",
			filename:    "vbump.toml",
			config:      "files = []",
			wantErr:     true,
			errContains: "unsupported file extension",
		},
	}

	t.Setenv("VBUMP_TEST_GLOB", "web/**/*.js")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			path := filepath.Join("/proj", tt.filename)
			require.NoError(t, afero.WriteFile(fs, path, []byte(tt.config), 0644), "writing config file")

			cfg, err := LoadConfig(context.Background(), fs, path)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)
			assert.Equal(t, path, cfg.Location())
			tt.check(t, cfg)
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(context.Background(), afero.NewMemMapFs(), "/proj/.vbumprc.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestDiscover(t *testing.T) {
	t.Run("none_found", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, fs.MkdirAll("/proj", 0755))

		cfg, err := Discover(context.Background(), fs, "/proj")
		require.NoError(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("hcl_preferred", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/proj/.vbumprc.yaml", []byte("files: [a.js]\n"), 0644))
		require.NoError(t, afero.WriteFile(fs, "/proj/.vbumprc.hcl", []byte(`files = ["b.js"]`), 0644))

		cfg, err := Discover(context.Background(), fs, "/proj")
		require.NoError(t, err)
		require.NotNil(t, cfg)
		assert.Equal(t, []string{"b.js"}, cfg.Files)
		assert.Equal(t, filepath.Join("/proj", ".vbumprc.hcl"), cfg.Location())
	})

	t.Run("only_in_memory", func(t *testing.T) {
		// nothing exists on disk at this path, so the config can only come from fs
		fs := afero.NewMemMapFs()
		dir := filepath.Join(t.TempDir(), "virtual")
		require.NoError(t, afero.WriteFile(fs, filepath.Join(dir, ".vbumprc.json"), []byte(`{"bump": true}`), 0644))

		cfg, err := Discover(context.Background(), fs, dir)
		require.NoError(t, err)
		require.NotNil(t, cfg)
		assert.True(t, cfg.Bump)
	})

	t.Run("os_fs", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".vbumprc.yml"), []byte("fresh: true\n"), 0644))

		cfg, err := Discover(context.Background(), afero.NewOsFs(), dir)
		require.NoError(t, err)
		require.NotNil(t, cfg)
		assert.True(t, cfg.Fresh)
	})

	t.Run("invalid_file_is_an_error", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/proj/.vbumprc.json", []byte("{"), 0644))

		_, err := Discover(context.Background(), fs, "/proj")
		require.Error(t, err)
	})
}

// The package documentation shows this file; keep it loadable.
func TestLoadConfig_DocExample(t *testing.T) {
	fs := afero.NewMemMapFs()
	doc := `files   = ["src/**/*.{ts,tsx}", "public/index.html"]
exclude = ["src/generated/**"]
pattern = "(_v)(\\d+)"

build {
  command = "npx"
  args    = ["vite", "build"]
}
`
	require.NoError(t, afero.WriteFile(fs, "/proj/.vbumprc.hcl", []byte(doc), 0644))

	cfg, err := LoadConfig(context.Background(), fs, "/proj/.vbumprc.hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{"src/**/*.{ts,tsx}", "public/index.html"}, cfg.Files)
	assert.Equal(t, `(_v)(\d+)`, cfg.Pattern)
	require.NotNil(t, cfg.Build)
	assert.Equal(t, "npx", cfg.Build.Command)
}

func TestConfig_Layer(t *testing.T) {
	cfg := &Config{
		Files:    []string{"a/*.js"},
		Pattern:  `(v)(\d+)`,
		Fresh:    true,
		location: "/proj/.vbumprc.yaml",
	}

	l := cfg.Layer()
	assert.Equal(t, "config:.vbumprc.yaml", l.Name)
	assert.Equal(t, []string{"a/*.js"}, l.Files)
	assert.Equal(t, `(v)(\d+)`, l.Pattern)
	assert.True(t, l.Reset)
	assert.False(t, l.Increment)

	assert.Equal(t, `files=a/*.js pattern=(v)(\d+)`, cfg.String())
	assert.Equal(t, "files=(default) pattern=(default)", (&Config{}).String())
}
