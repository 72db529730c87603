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

// Package config loads logq's optional configuration file.
//
// The file is YAML (or JSON, by extension) and every key is optional:
//
//	queue:
//	  capacity: 0          # 0 = unbounded
//	  overflow: block      # block | reject | drop-oldest
//	server:
//	  listen: ":8080"      # empty disables the HTTP surface
//	  rateLimit: 100
//	  rateLimitBurst: 200
//	  shutdownTimeout: 30s
//	logLevel: info
//
// Command-line flags that are explicitly set take precedence over the file.
package config
