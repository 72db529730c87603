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

package worker

import (
	"context"
	stderrors "errors"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/NVIDIA/logq/pkg/level"
	"github.com/NVIDIA/logq/pkg/queue"
)

// State is the lifecycle phase of a Worker.
type State int32

const (
	// StateIdle is a constructed worker that has not started.
	StateIdle State = iota
	// StateRunning consumes entries as they arrive.
	StateRunning
	// StateDraining consumes the entries left after shutdown was requested.
	StateDraining
	// StateStopped is terminal.
	StateStopped
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateRunning:
		return "RUNNING"
	case StateDraining:
		return "DRAINING"
	case StateStopped:
		return "STOPPED"
	default:
		return "UNKNOWN"
	}
}

// Source is the consumer side of the queue.
type Source interface {
	Dequeue(ctx context.Context) (queue.Entry, error)
	Closed() bool
}

// Writer receives every dequeued entry.
type Writer interface {
	Write(message string, l level.Level) error
}

// Option configures a Worker.
type Option func(*Worker)

// WithErrorHandler is called for every failed write, after it is logged.
func WithErrorHandler(fn func(queue.Entry, error)) Option {
	return func(w *Worker) {
		w.onError = fn
	}
}

// Worker is the single consumer that moves entries from a Source to a
// Writer. A write failure is logged and counted; the loop keeps going.
type Worker struct {
	src     Source
	dst     Writer
	onError func(queue.Entry, error)

	state     atomic.Int32
	processed atomic.Uint64
	failed    atomic.Uint64

	startOnce sync.Once
	done      chan struct{}
	err       error
}

// New returns an idle worker.
func New(src Source, dst Writer, opts ...Option) *Worker {
	w := &Worker{
		src:  src,
		dst:  dst,
		done: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start runs the loop on its own goroutine. Calls after the first are no-ops.
func (w *Worker) Start(ctx context.Context) {
	w.startOnce.Do(func() {
		w.state.Store(int32(StateRunning))
		go func() {
			defer close(w.done)
			w.err = w.loop(ctx)
		}()
	})
}

// Run executes the loop on the calling goroutine and returns when the
// worker stops. It returns nil after a drained shutdown and ctx.Err() if
// ctx ended first. Run and Start are mutually exclusive.
func (w *Worker) Run(ctx context.Context) error {
	ran := false
	w.startOnce.Do(func() {
		ran = true
		w.state.Store(int32(StateRunning))
		defer close(w.done)
		w.err = w.loop(ctx)
	})
	if !ran {
		<-w.done
	}
	return w.err
}

// Wait blocks until the loop has stopped and returns its result.
func (w *Worker) Wait() error {
	<-w.done
	return w.err
}

// Done is closed when the loop has stopped.
func (w *Worker) Done() <-chan struct{} {
	return w.done
}

// State returns the current lifecycle phase.
func (w *Worker) State() State {
	return State(w.state.Load())
}

// Processed returns the number of entries handed to the writer.
func (w *Worker) Processed() uint64 {
	return w.processed.Load()
}

// Failed returns the number of entries whose write failed.
func (w *Worker) Failed() uint64 {
	return w.failed.Load()
}

func (w *Worker) loop(ctx context.Context) error {
	workerState.Set(float64(StateRunning))
	slog.Debug("worker started")

	for {
		e, err := w.src.Dequeue(ctx)
		if err != nil {
			w.state.Store(int32(StateStopped))
			workerState.Set(float64(StateStopped))
			if stderrors.Is(err, queue.ErrShutdown) {
				slog.Debug("worker stopped",
					"processed", w.Processed(),
					"failed", w.Failed())
				return nil
			}
			slog.Warn("worker aborted", "error", err, "processed", w.Processed())
			return err
		}

		if w.src.Closed() && w.state.CompareAndSwap(int32(StateRunning), int32(StateDraining)) {
			workerState.Set(float64(StateDraining))
			slog.Debug("worker draining")
		}

		w.handle(e)
	}
}

func (w *Worker) handle(e queue.Entry) {
	w.processed.Add(1)
	workerProcessed.Inc()

	if err := w.dst.Write(e.Message, e.Level); err != nil {
		w.failed.Add(1)
		workerWriteFailures.Inc()
		slog.Error("failed to write log entry",
			"error", err,
			"level", e.Level.String())
		if w.onError != nil {
			w.onError(e, err)
		}
		return
	}

	slog.Debug("logged message", "level", e.Level.String(), "message", e.Message)
}
