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

// Package queue provides the FIFO that connects log producers to the single
// worker that writes to the sink.
//
// # Semantics
//
//   - Enqueue appends at the tail and wakes the consumer. An unbounded queue
//     (the default) never blocks the producer.
//   - Dequeue blocks until an entry is available. After Shutdown, pending
//     entries are still delivered in order; only an empty queue returns
//     ErrShutdown (drain-before-stop).
//   - Shutdown is idempotent and the flag is never cleared. Enqueue after
//     Shutdown fails with ErrClosed.
//
// # Bounded queues
//
// WithCapacity bounds the queue and WithOverflow picks what happens when it
// is full:
//
//	block        wait for room (or shutdown, or ctx end)
//	reject       return ErrFull
//	drop-oldest  evict the head entry
//
// Example:
//
//	q := queue.New(queue.WithCapacity(1024), queue.WithOverflow(queue.OverflowReject))
//	if err := q.Enqueue(ctx, queue.NewEntry("boot ok", level.High)); err != nil {
//	    // QUEUE_FULL or SERVICE_UNAVAILABLE
//	}
package queue
