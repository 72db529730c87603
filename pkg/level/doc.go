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

// Package level defines the closed, ordered set of severities used to filter
// log writes: LOW < MEDIUM < HIGH.
//
// Parsing is exact and case-sensitive. Unknown tokens are reported to the
// caller as INVALID_LEVEL errors wrapping ErrInvalidLevel, so the caller
// decides whether to reject a command or fall back to a default:
//
//	l, err := level.Parse("VERBOSE")
//	if errors.Is(err, level.ErrInvalidLevel) {
//	    // reject
//	}
//
// Level implements encoding.TextMarshaler and encoding.TextUnmarshaler, so it
// round-trips through JSON request bodies and YAML configuration as its token.
package level
