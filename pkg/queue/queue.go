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

package queue

import (
	"context"
	stderrors "errors"
	"sync"

	"github.com/NVIDIA/logq/pkg/defaults"
	"github.com/NVIDIA/logq/pkg/errors"
)

var (
	// ErrShutdown is returned by Dequeue once shutdown was requested and the
	// queue is empty. It is a normal termination value.
	ErrShutdown = stderrors.New("queue shut down")

	// ErrClosed is wrapped by Enqueue after shutdown was requested.
	ErrClosed = stderrors.New("queue closed")

	// ErrFull is wrapped by Enqueue on a full queue with OverflowReject.
	ErrFull = stderrors.New("queue full")
)

// Queue is a FIFO of entries shared by any number of producers and a single
// consumer. The entries and the shutdown flag are guarded by one mutex;
// wakeups travel over channels so waits can also observe a context.
type Queue struct {
	mu       sync.Mutex
	items    []Entry
	head     int
	closed   bool
	capacity int
	overflow Overflow

	ready    chan struct{} // entry available; capacity 1
	space    chan struct{} // room freed in a bounded queue; capacity 1
	done     chan struct{} // closed by Shutdown
	shutOnce sync.Once
}

// New returns an empty queue. By default it is unbounded and Enqueue never
// blocks.
func New(opts ...Option) *Queue {
	q := &Queue{
		capacity: defaults.QueueCapacity,
		overflow: Overflow(defaults.QueueOverflow),
		ready:    make(chan struct{}, 1),
		space:    make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Enqueue appends e at the tail and wakes the consumer. On a full bounded
// queue the overflow policy applies. After Shutdown it returns an
// UNAVAILABLE error wrapping ErrClosed.
func (q *Queue) Enqueue(ctx context.Context, e Entry) error {
	for {
		q.mu.Lock()
		if q.closed {
			q.mu.Unlock()
			queueRejected.WithLabelValues("closed").Inc()
			return errors.Wrap(errors.ErrCodeUnavailable, "queue is shutting down", ErrClosed)
		}

		if q.capacity == 0 || q.lenLocked() < q.capacity {
			q.pushLocked(e)
			room := q.capacity > 0 && q.lenLocked() < q.capacity
			q.mu.Unlock()
			q.signal(q.ready)
			if room {
				// pass the wakeup on to the next blocked producer
				q.signal(q.space)
			}
			return nil
		}

		switch q.overflow {
		case OverflowReject:
			q.mu.Unlock()
			queueRejected.WithLabelValues("full").Inc()
			return errors.WrapWithContext(errors.ErrCodeQueueFull, "queue is full", ErrFull,
				map[string]any{"capacity": q.capacity})
		case OverflowDropOldest:
			q.popLocked()
			q.pushLocked(e)
			q.mu.Unlock()
			queueDropped.Inc()
			q.signal(q.ready)
			return nil
		default:
			q.mu.Unlock()
		}

		select {
		case <-q.space:
		case <-q.done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Dequeue blocks until an entry is available and returns it. Once shutdown
// has been requested, pending entries are still returned in order; only an
// empty queue yields ErrShutdown. If ctx ends first, ctx.Err() is returned.
func (q *Queue) Dequeue(ctx context.Context) (Entry, error) {
	for {
		q.mu.Lock()
		if q.lenLocked() > 0 {
			e := q.popLocked()
			q.mu.Unlock()
			if q.capacity > 0 {
				q.signal(q.space)
			}
			return e, nil
		}
		if q.closed {
			q.mu.Unlock()
			return Entry{}, ErrShutdown
		}
		q.mu.Unlock()

		select {
		case <-q.ready:
		case <-q.done:
		case <-ctx.Done():
			return Entry{}, ctx.Err()
		}
	}
}

// Shutdown sets the shutdown flag and wakes any waiter. The flag is never
// cleared; repeated calls have no effect.
func (q *Queue) Shutdown() {
	q.shutOnce.Do(func() {
		q.mu.Lock()
		q.closed = true
		q.mu.Unlock()
		close(q.done)
	})
}

// Closed reports whether Shutdown has been called.
func (q *Queue) Closed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed
}

// Len returns the number of pending entries.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.lenLocked()
}

// Capacity returns the bound, or 0 for an unbounded queue.
func (q *Queue) Capacity() int {
	return q.capacity
}

func (q *Queue) lenLocked() int {
	return len(q.items) - q.head
}

func (q *Queue) pushLocked(e Entry) {
	q.items = append(q.items, e)
	queueEnqueued.Inc()
	queueDepth.Inc()
}

func (q *Queue) popLocked() Entry {
	e := q.items[q.head]
	q.items[q.head] = Entry{}
	q.head++
	// reclaim the consumed prefix once it dominates the backing array
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	} else if q.head > 64 && q.head*2 > len(q.items) {
		n := copy(q.items, q.items[q.head:])
		clear(q.items[n:])
		q.items = q.items[:n]
		q.head = 0
	}
	queueDepth.Dec()
	return e
}

func (q *Queue) signal(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}
