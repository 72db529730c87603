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

package pipeline

import (
	"context"
	"log/slog"

	"github.com/NVIDIA/logq/pkg/level"
	"github.com/NVIDIA/logq/pkg/queue"
	"github.com/NVIDIA/logq/pkg/sink"
	"github.com/NVIDIA/logq/pkg/worker"
)

// Option configures a Pipeline.
type Option func(*options)

type options struct {
	queueOpts  []queue.Option
	workerOpts []worker.Option
}

// WithQueueOptions passes options to the underlying queue.
func WithQueueOptions(opts ...queue.Option) Option {
	return func(o *options) {
		o.queueOpts = append(o.queueOpts, opts...)
	}
}

// WithWorkerOptions passes options to the underlying worker.
func WithWorkerOptions(opts ...worker.Option) Option {
	return func(o *options) {
		o.workerOpts = append(o.workerOpts, opts...)
	}
}

// Pipeline binds a sink, the queue feeding it and the worker draining it.
type Pipeline struct {
	sink   *sink.Sink
	queue  *queue.Queue
	worker *worker.Worker
}

// New returns a pipeline writing to s. Call Start before logging.
func New(s *sink.Sink, opts ...Option) *Pipeline {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	q := queue.New(o.queueOpts...)
	return &Pipeline{
		sink:   s,
		queue:  q,
		worker: worker.New(q, s, o.workerOpts...),
	}
}

// Start launches the worker. ctx cancellation aborts the worker without
// draining; use Shutdown for an orderly stop.
func (p *Pipeline) Start(ctx context.Context) {
	p.worker.Start(ctx)
	slog.Info("log pipeline started",
		"path", p.sink.Path(),
		"threshold", p.sink.Threshold().String(),
		"capacity", p.queue.Capacity())
}

// Log enqueues message at l. The write happens later on the worker.
func (p *Pipeline) Log(ctx context.Context, message string, l level.Level) error {
	if err := level.Validate(l); err != nil {
		return err
	}
	return p.queue.Enqueue(ctx, queue.NewEntry(message, l))
}

// SetThreshold changes the sink threshold for every write that starts
// after it returns.
func (p *Pipeline) SetThreshold(l level.Level) error {
	return p.sink.SetThreshold(l)
}

// Threshold returns the current sink threshold.
func (p *Pipeline) Threshold() level.Level {
	return p.sink.Threshold()
}

// Pending returns the number of queued entries not yet written.
func (p *Pipeline) Pending() int {
	return p.queue.Len()
}

// State returns the worker state.
func (p *Pipeline) State() worker.State {
	return p.worker.State()
}

// Shutdown stops accepting entries, lets the worker drain the queue and
// waits for it to stop. ctx bounds only the wait: if it ends first,
// ctx.Err() is returned and the worker keeps draining.
func (p *Pipeline) Shutdown(ctx context.Context) error {
	slog.Info("log pipeline shutting down", "pending", p.queue.Len())
	p.queue.Shutdown()

	select {
	case <-p.worker.Done():
	case <-ctx.Done():
		return ctx.Err()
	}

	if err := p.worker.Wait(); err != nil {
		return err
	}

	slog.Info("log pipeline stopped",
		"processed", p.worker.Processed(),
		"failed", p.worker.Failed())
	return nil
}
