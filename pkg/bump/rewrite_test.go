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

package bump

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRewrite(t *testing.T) {
	tests := []struct {
		name        string
		pattern     string
		content     string
		mode        Mode
		want        string
		wantChanges []Change
		wantSkipped int
	}{
		{
			name:    "increment_single",
			content: `import App from "./App_v5";`,
			mode:    ModeIncrement,
			want:    `import App from "./App_v6";`,
			wantChanges: []Change{
				{Old: "_v5", New: "_v6", Offset: 22},
			},
		},
		{
			name:    "prefix_preserved_across_occurrences",
			content: "name_v3_other_v3",
			mode:    ModeIncrement,
			want:    "name_v4_other_v4",
			wantChanges: []Change{
				{Old: "_v3", New: "_v4", Offset: 4},
				{Old: "_v3", New: "_v4", Offset: 13},
			},
		},
		{
			name:    "reset_partial_delta",
			content: "a_v1 b_v7",
			mode:    ModeReset,
			want:    "a_v1 b_v1",
			wantChanges: []Change{
				{Old: "_v7", New: "_v1", Offset: 6},
			},
		},
		{
			name:    "reset_from_zero",
			content: "x_v0",
			mode:    ModeReset,
			want:    "x_v1",
			wantChanges: []Change{
				{Old: "_v0", New: "_v1", Offset: 1},
			},
		},
		{
			name:    "reset_already_one",
			content: "x_v1",
			mode:    ModeReset,
			want:    "x_v1",
		},
		{
			name:    "noop_never_changes",
			content: "x_v4 y_v9",
			mode:    ModeNoOp,
			want:    "x_v4 y_v9",
		},
		{
			name:    "no_match",
			content: "nothing to see here",
			mode:    ModeIncrement,
			want:    "nothing to see here",
		},
		{
			name:    "empty_content",
			content: "",
			mode:    ModeIncrement,
			want:    "",
		},
		{
			name:    "leading_zeros_dropped",
			content: "x_v007",
			mode:    ModeIncrement,
			want:    "x_v8",
			wantChanges: []Change{
				{Old: "_v007", New: "_v8", Offset: 1},
			},
		},
		{
			name:    "leading_zeros_kept_when_value_unchanged",
			content: "x_v01",
			mode:    ModeReset,
			want:    "x_v01",
		},
		{
			name:    "line_endings_preserved",
			content: "a_v1\r\nb_v2\r\n",
			mode:    ModeIncrement,
			want:    "a_v2\r\nb_v3\r\n",
			wantChanges: []Change{
				{Old: "_v1", New: "_v2", Offset: 1},
				{Old: "_v2", New: "_v3", Offset: 7},
			},
		},
		{
			name:    "beyond_uint64",
			content: "_v99999999999999999999",
			mode:    ModeIncrement,
			want:    "_v100000000000000000000",
			wantChanges: []Change{
				{Old: "_v99999999999999999999", New: "_v100000000000000000000", Offset: 0},
			},
		},
		{
			name:    "custom_pattern",
			pattern: `(build-)(\d+)`,
			content: "release build-41 and build-9",
			mode:    ModeIncrement,
			want:    "release build-42 and build-10",
			wantChanges: []Change{
				{Old: "build-41", New: "build-42", Offset: 8},
				{Old: "build-9", New: "build-10", Offset: 21},
			},
		},
		{
			name:    "named_groups",
			pattern: `(?P<version>\d+)(?P<prefix>@rev)`,
			content: "12@rev",
			mode:    ModeIncrement,
			want:    "@rev13",
			wantChanges: []Change{
				{Old: "12@rev", New: "@rev13", Offset: 0},
			},
		},
		{
			name:        "non_numeric_version_skipped",
			pattern:     `(_v)(\w+)`,
			content:     "a_vX b_v2",
			mode:        ModeIncrement,
			want:        "a_vX b_v3",
			wantSkipped: 1,
			wantChanges: []Change{
				{Old: "_v2", New: "_v3", Offset: 6},
			},
		},
		{
			name:        "optional_version_group_skipped",
			pattern:     `(_v)(\d+)?`,
			content:     "a_v b_v2",
			mode:        ModeIncrement,
			want:        "a_v b_v3",
			wantSkipped: 1,
			wantChanges: []Change{
				{Old: "_v2", New: "_v3", Offset: 5},
			},
		},
		{
			name:    "empty_matches_ignored",
			pattern: `()(\d*)`,
			content: "ab 12 c",
			mode:    ModeIncrement,
			want:    "ab 13 c",
			wantChanges: []Change{
				{Old: "12", New: "13", Offset: 3},
			},
		},
		{
			name:    "empty_matches_only",
			pattern: `(x?)(\d*)`,
			content: "no digits",
			mode:    ModeReset,
			want:    "no digits",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := tt.pattern
			if src == "" {
				src = DefaultPattern
			}
			pattern, err := CompilePattern(src)
			require.NoError(t, err)

			got := Rewrite(tt.content, pattern, tt.mode)
			require.NotNil(t, got)

			assert.Equal(t, tt.want, got.Content)
			assert.Equal(t, tt.wantChanges, got.Changes)
			assert.Equal(t, len(tt.wantChanges) > 0, got.WasModified())
			assert.Len(t, got.Skipped, tt.wantSkipped)
		})
	}
}

func TestRewrite_IncrementIsMonotonic(t *testing.T) {
	pattern := MustCompilePattern(DefaultPattern)

	content := "const asset = 'logo_v5.png'"
	for i := 0; i < 7; i++ {
		content = Rewrite(content, pattern, ModeIncrement).Content
	}

	assert.Equal(t, "const asset = 'logo_v12.png'", content)
}

func TestRewrite_ResetConverges(t *testing.T) {
	pattern := MustCompilePattern(DefaultPattern)

	first := Rewrite("a_v3 b_v40 c_v1", pattern, ModeReset)
	require.True(t, first.WasModified())
	assert.Equal(t, "a_v1 b_v1 c_v1", first.Content)
	assert.Len(t, first.Changes, 2)

	second := Rewrite(first.Content, pattern, ModeReset)
	assert.False(t, second.WasModified())
	assert.Equal(t, first.Content, second.Content)
}
