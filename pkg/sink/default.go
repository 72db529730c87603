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
	"log/slog"
	"sync"

	"github.com/NVIDIA/logq/pkg/errors"
	"github.com/NVIDIA/logq/pkg/level"
)

// DefaultThreshold is used by callers that do not pick a threshold.
const DefaultThreshold = level.Medium

// ErrUninitialized is wrapped by process-wide calls made before Init.
var ErrUninitialized = stderrors.New("sink not initialized")

var (
	defaultMu   sync.Mutex
	defaultSink *Sink
)

// Init opens the process-wide sink. Only the first successful call opens a
// file; later calls return nil and leave the existing sink untouched,
// whatever their arguments.
func Init(path string, threshold level.Level) error {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultSink != nil {
		slog.Debug("log sink already initialized",
			"path", defaultSink.Path(),
			"requested", path)
		return nil
	}

	s, err := Open(path, threshold)
	if err != nil {
		return err
	}
	defaultSink = s
	return nil
}

// Default returns the process-wide sink, or an UNINITIALIZED error.
func Default() (*Sink, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultSink == nil {
		return nil, errors.Wrap(errors.ErrCodeUninitialized,
			"call sink.Init before using the default sink", ErrUninitialized)
	}
	return defaultSink, nil
}

// Log writes through the process-wide sink.
func Log(message string, l level.Level) error {
	s, err := Default()
	if err != nil {
		return err
	}
	return s.Write(message, l)
}

// SetThreshold changes the threshold of the process-wide sink.
func SetThreshold(l level.Level) error {
	s, err := Default()
	if err != nil {
		return err
	}
	return s.SetThreshold(l)
}

// CloseDefault closes the process-wide sink at process exit. The instance
// stays registered so Init remains a no-op afterwards.
func CloseDefault() error {
	s, err := Default()
	if err != nil {
		return err
	}
	return s.Close()
}
