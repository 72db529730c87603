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

package dispatcher

import (
	"strings"

	"github.com/NVIDIA/logq/pkg/level"
)

const (
	// ExitCommand on a line by itself ends input.
	ExitCommand = "exit"
	// SetLevelCommand changes the running threshold: SET_LEVEL <LEVEL>.
	SetLevelCommand = "SET_LEVEL"
)

// Kind identifies what an input line asks for.
type Kind int

const (
	// KindLog enqueues Message at Level.
	KindLog Kind = iota
	// KindSetLevel changes the threshold to Level.
	KindSetLevel
	// KindExit ends input.
	KindExit
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindLog:
		return "log"
	case KindSetLevel:
		return "set-level"
	case KindExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Command is a parsed input line.
type Command struct {
	Kind    Kind
	Message string
	Level   level.Level
}

// ParseLine interprets one input line:
//
//	exit                 -> KindExit
//	SET_LEVEL <LEVEL>    -> KindSetLevel, or an INVALID_LEVEL error
//	<LEVEL> <message>    -> KindLog at LEVEL, message after one separating space
//	anything else        -> KindLog at def, the whole line as message
func ParseLine(line string, def level.Level) (Command, error) {
	if line == ExitCommand {
		return Command{Kind: KindExit}, nil
	}

	fields := strings.FieldsFunc(line, isSpace)
	if len(fields) == 0 {
		return Command{Kind: KindLog, Message: line, Level: def}, nil
	}

	first := fields[0]
	if first == SetLevelCommand {
		var token string
		if len(fields) > 1 {
			token = fields[1]
		}
		l, err := level.Parse(token)
		if err != nil {
			return Command{Kind: KindSetLevel}, err
		}
		return Command{Kind: KindSetLevel, Level: l}, nil
	}

	if l, err := level.Parse(first); err == nil {
		rest := strings.TrimLeftFunc(line, isSpace)[len(first):]
		rest = strings.TrimPrefix(rest, " ")
		return Command{Kind: KindLog, Message: rest, Level: l}, nil
	}

	return Command{Kind: KindLog, Message: line, Level: def}, nil
}

// isSpace matches only ASCII whitespace; other Unicode spaces are part of
// a word, so a line such as "\u00a0HIGH x" is not level-prefixed.
func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
