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

package sink

import (
	stderrors "errors"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/NVIDIA/logq/pkg/defaults"
	"github.com/NVIDIA/logq/pkg/errors"
	"github.com/NVIDIA/logq/pkg/level"
)

// ErrClosed is wrapped by writes issued after Close.
var ErrClosed = stderrors.New("sink closed")

// Option configures a Sink.
type Option func(*Sink)

// WithClock overrides the time source used for line timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Sink) {
		if now != nil {
			s.now = now
		}
	}
}

// Sink is a level-filtered, append-only line writer. All writes and
// threshold changes are serialized by a single lock, so concurrent callers
// observe a total order of whole lines.
type Sink struct {
	mu        sync.Mutex
	w         io.Writer
	closer    io.Closer
	path      string
	threshold level.Level
	closed    bool
	now       func() time.Time
}

// Open opens (or creates) path for appending and returns a sink filtering
// at threshold. Open never terminates the process: failures are returned as
// IO_FAILURE errors.
func Open(path string, threshold level.Level, opts ...Option) (*Sink, error) {
	if err := level.Validate(threshold); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, defaults.LogFileFlags, defaults.LogFileMode)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeIOFailure,
			"failed to open log file", err, map[string]any{"path": path})
	}

	s, err := New(f, threshold, opts...)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	s.path = path
	s.closer = f

	slog.Debug("log sink opened", "path", path, "threshold", threshold.String())
	return s, nil
}

// New returns a sink writing to w. The sink does not own w and Close does
// not close it.
func New(w io.Writer, threshold level.Level, opts ...Option) (*Sink, error) {
	if w == nil {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "sink writer is nil")
	}
	if err := level.Validate(threshold); err != nil {
		return nil, err
	}

	s := &Sink{
		w:         w,
		threshold: threshold,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	sinkThreshold.Set(float64(threshold))
	return s, nil
}

// Write appends one line for message if l is at or above the current
// threshold. Suppressed messages return nil.
func (s *Sink) Write(message string, l level.Level) error {
	if err := level.Validate(l); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		sinkWriteFailures.WithLabelValues(l.String()).Inc()
		return errors.WrapWithContext(errors.ErrCodeIOFailure,
			"write to closed sink", ErrClosed, map[string]any{"path": s.path})
	}

	if !l.AtLeast(s.threshold) {
		sinkLinesSuppressed.WithLabelValues(l.String()).Inc()
		return nil
	}

	if _, err := io.WriteString(s.w, FormatLine(s.now(), l, message)); err != nil {
		sinkWriteFailures.WithLabelValues(l.String()).Inc()
		return errors.WrapWithContext(errors.ErrCodeIOFailure,
			"failed to write log line", err, map[string]any{"path": s.path})
	}

	if f, ok := s.w.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			sinkWriteFailures.WithLabelValues(l.String()).Inc()
			return errors.WrapWithContext(errors.ErrCodeIOFailure,
				"failed to flush log line", err, map[string]any{"path": s.path})
		}
	}

	sinkLinesWritten.WithLabelValues(l.String()).Inc()
	return nil
}

// Enabled reports whether a write at l would currently be accepted.
func (s *Sink) Enabled(l level.Level) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return l.Valid() && l.AtLeast(s.threshold)
}

// SetThreshold replaces the threshold. It applies to every write that
// starts after it returns.
func (s *Sink) SetThreshold(l level.Level) error {
	if err := level.Validate(l); err != nil {
		return err
	}

	s.mu.Lock()
	prev := s.threshold
	s.threshold = l
	s.mu.Unlock()

	sinkThreshold.Set(float64(l))
	slog.Debug("log threshold changed", "from", prev.String(), "to", l.String())
	return nil
}

// Threshold returns the current threshold.
func (s *Sink) Threshold() level.Level {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.threshold
}

// Path returns the file path for sinks created by Open, or "".
func (s *Sink) Path() string {
	return s.path
}

// Close closes the underlying file if the sink owns it. It is safe to call
// more than once.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	if s.closer == nil {
		return nil
	}
	if err := s.closer.Close(); err != nil {
		return errors.WrapWithContext(errors.ErrCodeIOFailure,
			"failed to close log file", err, map[string]any{"path": s.path})
	}
	return nil
}
