// Copyright (c) 2026, NVIDIA CORPORATION.  All rights reserved.
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

package level

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/NVIDIA/logq/pkg/errors"
)

// Level is the severity of a log entry. Levels are totally ordered:
// Low < Medium < High.
type Level uint8

const (
	// Low is the least severe level.
	Low Level = iota
	// Medium is the default threshold.
	Medium
	// High is the most severe level.
	High
)

// ErrInvalidLevel is the sentinel wrapped by every parse or validation failure.
var ErrInvalidLevel = stderrors.New("invalid level")

var names = [...]string{"LOW", "MEDIUM", "HIGH"}

// String returns the canonical token for the level, or "UNKNOWN".
func (l Level) String() string {
	if l.Valid() {
		return names[l]
	}
	return "UNKNOWN"
}

// Valid reports whether l is one of Low, Medium or High.
func (l Level) Valid() bool {
	return l <= High
}

// AtLeast reports whether l passes the threshold t.
func (l Level) AtLeast(t Level) bool {
	return l >= t
}

// Parse maps the exact, case-sensitive tokens LOW, MEDIUM and HIGH to their
// level. Any other token yields an INVALID_LEVEL error; it is never coerced.
func Parse(token string) (Level, error) {
	for i, n := range names {
		if token == n {
			return Level(i), nil
		}
	}
	return Low, errors.WrapWithContext(errors.ErrCodeInvalidLevel,
		fmt.Sprintf("unknown level %q, use %s", token, strings.Join(Names(), ", ")),
		ErrInvalidLevel, map[string]any{"token": token})
}

// MustParse is like Parse but panics on error.
func MustParse(token string) Level {
	l, err := Parse(token)
	if err != nil {
		panic(err)
	}
	return l
}

// Names returns the valid level tokens in ascending order.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names[:])
	return out
}

// Validate returns an INVALID_LEVEL error if l is out of range.
func Validate(l Level) error {
	if l.Valid() {
		return nil
	}
	return errors.WrapWithContext(errors.ErrCodeInvalidLevel,
		"level out of range", ErrInvalidLevel, map[string]any{"value": uint8(l)})
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	if err := Validate(l); err != nil {
		return nil, err
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
