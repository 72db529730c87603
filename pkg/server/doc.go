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

// Package server exposes the log pipeline over HTTP.
//
// A Server always serves the system endpoints:
//
//   - GET /health   liveness probe
//   - GET /ready    readiness probe, 503 until Run starts listening
//   - GET /metrics  Prometheus metrics
//
// When configured WithTarget it also serves the ingestion API:
//
//   - POST /v1/entries    enqueue one entry: {"message": "...", "level": "HIGH"}
//   - GET  /v1/threshold  report the active threshold
//   - PUT  /v1/threshold  change it: {"level": "LOW"}
//
// API routes pass through the middleware chain: metrics, request ID,
// panic recovery, rate limiting and request logging. Errors are returned
// as ErrorResponse JSON carrying the structured error code.
//
// Usage:
//
//	s := server.New(
//		server.WithName("logq"),
//		server.WithAddress(":8080"),
//		server.WithTarget(p, level.Medium),
//	)
//	if err := s.Run(ctx); err != nil {
//		return err
//	}
package server
