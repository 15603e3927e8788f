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
	"fmt"

	"github.com/google/uuid"
)

// Op names the file operation that failed
type Op string

const (
	OpRead  Op = "read"
	OpWrite Op = "write"
)

// 🔄 Change is a single rewritten version marker
type Change struct {
	File   string // Base name of the file
	Path   string // Absolute path of the file
	Old    string // Matched text before the rewrite
	New    string // Text that replaced it
	Offset int    // Byte offset of the match in the original content
}

// String returns the change as "file: old -> new"
func (c Change) String() string {
	return fmt.Sprintf("%s: %s -> %s", c.File, c.Old, c.New)
}

// ⏭️ SkippedMatch is a match that was left untouched because its version
// group could not be parsed
type SkippedMatch struct {
	Path   string
	Text   string
	Offset int
	Reason string
}

// ❌ FileError records a file that could not be processed
type FileError struct {
	Path string
	Op   Op
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// 📊 Result aggregates the outcome of one run
type Result struct {
	RunID        string         // Identifies the run in logs
	Mode         Mode           // Mode the run was executed with
	Scanned      int            // Files read successfully
	Changed      int            // Files rewritten
	ChangedFiles []string       // Paths of rewritten files, in processing order
	Changes      []Change       // One entry per rewritten match
	Skipped      []SkippedMatch // Matches with an unparsable version
	Failures     []*FileError   // Files that could not be read or written
}

func newResult(mode Mode) *Result {
	return &Result{
		RunID: uuid.NewString(),
		Mode:  mode,
	}
}

// HasChanges reports whether at least one file was rewritten
func (r *Result) HasChanges() bool {
	return r.Changed > 0
}

// HasFailures reports whether any file failed
func (r *Result) HasFailures() bool {
	return len(r.Failures) > 0
}

// Summary returns a one-line description of the run
func (r *Result) Summary() string {
	switch {
	case r.Mode == ModeNoOp:
		return "no bump requested"
	case r.Changed == 1:
		return "1 file updated"
	case r.Changed > 1:
		return fmt.Sprintf("%d files updated", r.Changed)
	default:
		return "no matching version markers found"
	}
}
