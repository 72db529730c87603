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

// Package sink implements the level-filtered, append-only log writer.
//
// A Sink owns one output handle, the current threshold and a lock that
// serializes every write and threshold change. Each accepted message becomes
// exactly one line, written in a single call:
//
//	[2025-01-15 10:30:00][HIGH]: boot ok
//
// Prefer an explicit handle:
//
//	s, err := sink.Open("app.log", level.Medium)
//	if err != nil {
//	    return err // IO_FAILURE
//	}
//	defer s.Close()
//
// For programs that want a single process-wide sink, Init opens it once and
// is a no-op on later calls; Default, Log and SetThreshold return an
// UNINITIALIZED error until Init has succeeded.
package sink
