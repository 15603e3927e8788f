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

// Package config loads .vbumprc files and merges every settings source into
// one immutable view.
//
//	+-----------+   +-----------+   +-----------+   +-----------+
//	| call-site | > | CLI flags | > |    env    | > |  .vbumprc |
//	+-----+-----+   +-----+-----+   +-----+-----+   +-----+-----+
//	      |               |               |               |
//	      +---------------+-------+-------+---------------+
//	                              |
//	                       +------+------+
//	                       |  Settings   |
//	                       +-------------+
//
// 🎯 Purpose:
// - Reads .vbumprc.hcl, .vbumprc.yaml/.yml or .vbumprc.json
// - Validates globs and the version pattern before any file is touched
// - Merges layers: the bump and fresh switches are OR-ed, everything else is
//   taken from the highest-priority layer that sets it
//
// 🔍 Example (.vbumprc.hcl):
//
//	files   = ["src/**/*.{ts,tsx}", "public/index.html"]
//	exclude = ["src/generated/**"]
//	pattern = "(_v)(\\d+)"
//
//	build {
//	  command = "npx"
//	  args    = ["vite", "build"]
//	}
package config
