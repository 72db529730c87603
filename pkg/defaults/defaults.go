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

package defaults

import (
	"os"
	"time"
)

// Log file settings.
const (
	// LogFileMode is the permission used when the sink creates the log file.
	LogFileMode os.FileMode = 0o644

	// LogFileFlags opens the log file for append-only writing, creating it if needed.
	LogFileFlags = os.O_APPEND | os.O_CREATE | os.O_WRONLY

	// TimestampLayout is the local-time, second-resolution prefix of every line.
	TimestampLayout = "2006-01-02 15:04:05"
)

// Queue settings.
const (
	// QueueCapacity of zero means the queue is unbounded.
	QueueCapacity = 0

	// QueueOverflow is the policy applied when a bounded queue is full.
	QueueOverflow = "block"
)

// Dispatcher settings.
const (
	// MaxLineBytes is the longest input line the dispatcher accepts.
	MaxLineBytes = 1024 * 1024
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// Server request limits.
const (
	// ServerRateLimit is the sustained request rate per second.
	ServerRateLimit = 100

	// ServerRateLimitBurst is the token bucket size.
	ServerRateLimitBurst = 200

	// ServerMaxBodyBytes bounds an ingestion request body.
	ServerMaxBodyBytes = 64 * 1024
)
