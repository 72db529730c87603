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

package queue

import "github.com/NVIDIA/logq/pkg/level"

// Entry is one pending (message, level) unit of work. It is passed by value
// and never modified after creation.
type Entry struct {
	Message string
	Level   level.Level
}

// NewEntry returns an Entry for message at l.
func NewEntry(message string, l level.Level) Entry {
	return Entry{Message: message, Level: l}
}
