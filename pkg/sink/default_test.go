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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/logq/pkg/errors"
	"github.com/NVIDIA/logq/pkg/level"
)

func resetDefault(t *testing.T) {
	t.Helper()
	defaultMu.Lock()
	prev := defaultSink
	defaultSink = nil
	defaultMu.Unlock()

	t.Cleanup(func() {
		defaultMu.Lock()
		if defaultSink != nil {
			_ = defaultSink.Close()
		}
		defaultSink = prev
		defaultMu.Unlock()
	})
}

func TestDefaultUninitialized(t *testing.T) {
	resetDefault(t)

	_, err := Default()
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, ErrUninitialized))
	assert.Equal(t, errors.ErrCodeUninitialized, errors.CodeOf(err))

	assert.True(t, stderrors.Is(Log("x", level.High), ErrUninitialized))
	assert.True(t, stderrors.Is(SetThreshold(level.High), ErrUninitialized))
	assert.True(t, stderrors.Is(CloseDefault(), ErrUninitialized))
}

func TestInitIsIdempotent(t *testing.T) {
	resetDefault(t)
	dir := t.TempDir()
	first := filepath.Join(dir, "first.log")
	second := filepath.Join(dir, "second.log")

	require.NoError(t, Init(first, level.Medium))
	require.NoError(t, Init(second, level.Low))
	require.NoError(t, Init(first, level.High))

	s, err := Default()
	require.NoError(t, err)
	assert.Equal(t, first, s.Path())
	assert.Equal(t, level.Medium, s.Threshold(), "later Init calls must not change the threshold")

	_, statErr := os.Stat(second)
	assert.True(t, os.IsNotExist(statErr), "second Init must not open a file")

	require.NoError(t, Log("debug detail", level.Low))
	require.NoError(t, Log("cache miss", level.Medium))
	require.NoError(t, CloseDefault())

	lines := readLines(t, first)
	require.Len(t, lines, 1)
	assert.Regexp(t, lineRe, lines[0])
	assert.Contains(t, lines[0], "[MEDIUM]: cache miss")

	require.NoError(t, Init(second, level.Low), "Init after close remains a no-op")
}

func TestInitFailureLeavesUninitialized(t *testing.T) {
	resetDefault(t)

	err := Init(filepath.Join(t.TempDir(), "nope", "x.log"), level.Medium)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeIOFailure, errors.CodeOf(err))

	_, err = Default()
	assert.True(t, stderrors.Is(err, ErrUninitialized))

	good := filepath.Join(t.TempDir(), "ok.log")
	require.NoError(t, Init(good, level.Medium))
	s, err := Default()
	require.NoError(t, err)
	assert.Equal(t, good, s.Path())
}

func TestDefaultSetThreshold(t *testing.T) {
	resetDefault(t)
	path := filepath.Join(t.TempDir(), "t.log")
	require.NoError(t, Init(path, DefaultThreshold))

	require.NoError(t, SetThreshold(level.High))
	require.NoError(t, Log("medium", level.Medium))
	require.NoError(t, Log("high", level.High))
	require.NoError(t, CloseDefault())

	lines := readLines(t, path)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "[HIGH]: high")
}
