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

// Package pipeline wires a sink, its queue and the worker into the three
// calls producers use: Log, SetThreshold and Shutdown.
//
//	s, err := sink.Open("app.log", level.Medium)
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	p := pipeline.New(s)
//	p.Start(ctx)
//	_ = p.Log(ctx, "boot ok", level.High)
//	_ = p.Shutdown(context.Background()) // drains, then joins the worker
package pipeline
