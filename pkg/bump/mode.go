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
)

// 🎚️ Mode selects how matched versions are rewritten
type Mode int

const (
	ModeNoOp      Mode = iota // Nothing is rewritten
	ModeIncrement             // Version becomes version+1
	ModeReset                 // Version becomes 1
)

// ModeFrom builds a Mode from the two user-facing switches. Reset wins over
// increment; conflict reports that both were requested.
func ModeFrom(increment, reset bool) (mode Mode, conflict bool) {
	switch {
	case reset:
		return ModeReset, increment
	case increment:
		return ModeIncrement, false
	default:
		return ModeNoOp, false
	}
}

// String returns a string representation of Mode
func (m Mode) String() string {
	switch m {
	case ModeIncrement:
		return "increment"
	case ModeReset:
		return "reset"
	default:
		return "noop"
	}
}

// next computes the version that replaces current under this mode
func (m Mode) next(current *big.Int) *big.Int {
	switch m {
	case ModeReset:
		return big.NewInt(1)
	case ModeIncrement:
		return new(big.Int).Add(current, big.NewInt(1))
	default:
		return new(big.Int).Set(current)
	}
}
