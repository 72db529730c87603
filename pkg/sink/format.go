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

package sink

import (
	"strings"
	"time"

	"github.com/NVIDIA/logq/pkg/defaults"
	"github.com/NVIDIA/logq/pkg/level"
)

// FormatLine renders the persisted line format:
//
//	[YYYY-MM-DD HH:MM:SS][LEVEL]: message\n
//
// The timestamp is local time at second resolution.
func FormatLine(t time.Time, l level.Level, message string) string {
	var b strings.Builder
	b.Grow(len(defaults.TimestampLayout) + len(message) + 16)
	b.WriteByte('[')
	b.WriteString(t.Local().Format(defaults.TimestampLayout))
	b.WriteString("][")
	b.WriteString(l.String())
	b.WriteString("]: ")
	b.WriteString(message)
	b.WriteByte('\n')
	return b.String()
}
