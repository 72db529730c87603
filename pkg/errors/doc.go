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

// Package errors provides structured error types for better observability
// and programmatic error handling across logq.
//
// Codes mirror the failure taxonomy of the logging pipeline: IO_FAILURE for
// open and write failures, INVALID_LEVEL for unknown severity tokens and
// UNINITIALIZED for use of the process-wide sink before Init.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeIOFailure,
//	    "failed to open log file",
//	    err,
//	    map[string]any{
//	        "path": path,
//	    },
//	)
package errors
