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

// Package dispatcher implements the interactive line protocol that feeds
// the log pipeline from a reader, typically stdin.
//
//	SET_LEVEL HIGH        change the running threshold
//	HIGH disk almost full log "disk almost full" at HIGH
//	cache warmed          log the whole line at the default level
//	exit                  stop reading
//
// An invalid SET_LEVEL argument prints a local error on the console error
// stream and leaves the threshold unchanged. Level tokens are exact and
// case-sensitive; a line starting with an unknown token is logged as-is at
// the default level.
package dispatcher
