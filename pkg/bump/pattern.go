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
	"regexp"

	"gitlab.com/tozd/go/errors"
)

// DefaultPattern matches markers like "_v3": a literal "_v" prefix and a
// decimal version.
const DefaultPattern = `(_v)(\d+)`

// ErrInvalidPattern is returned for pattern sources that cannot be used
var ErrInvalidPattern = errors.Base("invalid pattern")

// 🔍 Pattern is a compiled version marker pattern with a prefix group and a
// version group
type Pattern struct {
	re      *regexp.Regexp
	prefix  int // submatch index of the prefix group
	version int // submatch index of the version group
}

// CompilePattern compiles src into a Pattern. Groups named "prefix" and
// "version" are used when present, otherwise the first two groups are.
func CompilePattern(src string) (*Pattern, error) {
	re, err := regexp.Compile(src)
	if err != nil {
		return nil, errors.Errorf("%w: %q: %s", ErrInvalidPattern, src, err.Error())
	}

	if re.NumSubexp() < 2 {
		return nil, errors.Errorf("%w: %q has %d capture groups, need 2 (prefix, version)", ErrInvalidPattern, src, re.NumSubexp())
	}

	p := &Pattern{re: re, prefix: 1, version: 2}

	named := map[string]int{}
	for i, name := range re.SubexpNames() {
		if name != "" {
			named[name] = i
		}
	}

	_, hasPrefix := named["prefix"]
	_, hasVersion := named["version"]
	switch {
	case hasPrefix && hasVersion:
		p.prefix, p.version = named["prefix"], named["version"]
	case hasPrefix || hasVersion:
		return nil, errors.Errorf("%w: %q names only one of the prefix and version groups", ErrInvalidPattern, src)
	}

	return p, nil
}

// MustCompilePattern is like CompilePattern but panics on error
func MustCompilePattern(src string) *Pattern {
	p, err := CompilePattern(src)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the pattern source
func (p *Pattern) String() string {
	return p.re.String()
}
