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

// Package defaults holds the named default values shared across logq:
// log file mode and line timestamp layout, queue capacity and overflow
// policy, dispatcher line limits, and HTTP server timeouts and limits.
//
// Keeping them in one place lets tests assert their relationships and lets
// configuration fall back to a single source of truth.
package defaults
