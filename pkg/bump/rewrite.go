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
	"math/big"
	"strings"
)

// 📝 Rewritten is the outcome of rewriting a single text
type Rewritten struct {
	// Content is the text after substitution. It is the input itself when
	// nothing changed.
	Content string

	// Changes holds one entry per match whose version differed, in match order
	Changes []Change

	// Skipped holds matches whose version group was not a decimal integer
	Skipped []SkippedMatch
}

// WasModified reports whether any match was substituted
func (r *Rewritten) WasModified() bool {
	return len(r.Changes) > 0
}

// Rewrite substitutes every match of pattern in content whose version
// changes under mode. A substituted match becomes prefix+newVersion; matches
// whose version stays the same are kept verbatim. Empty matches are ignored.
func Rewrite(content string, pattern *Pattern, mode Mode) *Rewritten {
	result := &Rewritten{Content: content}

	var out strings.Builder
	last := 0

	for _, loc := range pattern.re.FindAllStringSubmatchIndex(content, -1) {
		start, end := loc[0], loc[1]
		if start == end {
			continue
		}
		match := content[start:end]
		versionText := submatch(content, loc, pattern.version)

		current, ok := parseVersion(versionText)
		if !ok {
			result.Skipped = append(result.Skipped, SkippedMatch{
				Text:   match,
				Offset: start,
				Reason: "version " + quoteOrEmpty(versionText) + " is not a decimal integer",
			})
			continue
		}

		next := mode.next(current)
		if next.Cmp(current) == 0 {
			continue
		}

		replacement := submatch(content, loc, pattern.prefix) + next.String()
		out.WriteString(content[last:start])
		out.WriteString(replacement)
		last = end

		result.Changes = append(result.Changes, Change{
			Old:    match,
			New:    replacement,
			Offset: start,
		})
	}

	if !result.WasModified() {
		return result
	}

	out.WriteString(content[last:])
	result.Content = out.String()
	return result
}

// submatch returns group i of a match, or "" when the group did not participate
func submatch(content string, loc []int, i int) string {
	if 2*i+1 >= len(loc) || loc[2*i] < 0 {
		return ""
	}
	return content[loc[2*i]:loc[2*i+1]]
}

// parseVersion parses an unsigned base-10 integer of any length
func parseVersion(s string) (*big.Int, bool) {
	if s == "" {
		return nil, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return nil, false
		}
	}
	return new(big.Int).SetString(s, 10)
}

func quoteOrEmpty(s string) string {
	if s == "" {
		return "(empty)"
	}
	return `"` + s + `"`
}
