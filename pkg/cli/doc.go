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

// Package cli implements the logq command.
//
// logq reads the interactive line protocol from standard input and appends
// each accepted line to a log file through the asynchronous pipeline:
//
//	logq [flags] <log_filename> <DEFAULT_LEVEL>
//
// Flags can also come from the environment (LOGQ_CONFIG, LOG_LEVEL,
// LOGQ_QUEUE_CAPACITY, LOGQ_OVERFLOW, LOGQ_LISTEN) or from a YAML/JSON
// config file. Explicitly set flags win over the file, and the file wins
// over the built-in defaults.
//
// The command exits 1 on bad arguments or when the log file cannot be
// opened. "exit", end of input, SIGINT and SIGTERM all stop the producers,
// drain the queue, join the worker and exit 0. Under systemd the process
// reports READY=1 once the worker runs and STOPPING=1 when shutdown begins.
package cli
