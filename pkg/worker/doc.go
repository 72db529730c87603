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

// Package worker runs the single background consumer of the log queue.
//
// The worker moves through IDLE → RUNNING → DRAINING → STOPPED. It waits only
// inside the queue's Dequeue, releases the queue lock before writing, and
// stops only when Dequeue reports shutdown with nothing left, so every entry
// enqueued before shutdown reaches the writer.
//
// A failed write is logged, counted and skipped; the loop continues with the
// next entry.
//
//	w := worker.New(q, s)
//	w.Start(ctx)
//	...
//	q.Shutdown()
//	_ = w.Wait()
package worker
