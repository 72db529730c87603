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

// Package serializer provides the structured encodings logq reads and writes
// outside of its log file: YAML or JSON configuration documents, and JSON
// HTTP responses.
//
//	r, err := serializer.NewFileReaderAuto("logq.yaml")
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//
//	var cfg config.Config
//	if err := r.Deserialize(&cfg); err != nil {
//	    return err
//	}
package serializer
