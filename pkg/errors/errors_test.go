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

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidLevel, "unknown level")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Code != ErrCodeInvalidLevel {
		t.Errorf("expected code %s, got %s", ErrCodeInvalidLevel, err.Code)
	}
	if err.Message != "unknown level" {
		t.Errorf("expected message 'unknown level', got %s", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("permission denied")
	err := Wrap(ErrCodeIOFailure, "open failed", cause)

	if err.Code != ErrCodeIOFailure {
		t.Errorf("expected code %s, got %s", ErrCodeIOFailure, err.Code)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped")
	}
}

func TestWrapWithContext(t *testing.T) {
	cause := errors.New("no space left on device")
	ctx := map[string]any{
		"path":  "/var/log/app.log",
		"level": "HIGH",
	}

	err := WrapWithContext(ErrCodeIOFailure, "write failed", cause, ctx)

	if err.Code != ErrCodeIOFailure {
		t.Errorf("expected code %s, got %s", ErrCodeIOFailure, err.Code)
	}
	if err.Context == nil {
		t.Fatal("expected context to be set")
	}
	if err.Context["path"] != "/var/log/app.log" {
		t.Errorf("expected path to be /var/log/app.log")
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuredError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeUninitialized, "sink not initialized"),
			expected: "[UNINITIALIZED] sink not initialized",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeIOFailure, "failed", errors.New("root cause")),
			expected: "[IO_FAILURE] failed: root cause",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(ErrCodeInternal, "wrapped", cause)

	unwrapped := err.Unwrap()
	if !errors.Is(unwrapped, cause) {
		t.Errorf("expected unwrapped error to be original cause")
	}

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is should work with Unwrap")
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"nil", nil, ErrCodeInternal},
		{"plain error", errors.New("x"), ErrCodeInternal},
		{"structured", New(ErrCodeQueueFull, "full"), ErrCodeQueueFull},
		{"wrapped with fmt", fmt.Errorf("enqueue: %w", New(ErrCodeUnavailable, "closed")), ErrCodeUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestHasCode(t *testing.T) {
	inner := New(ErrCodeInvalidLevel, "bad token")
	outer := Wrap(ErrCodeInvalidRequest, "bad request", inner)

	if !HasCode(outer, ErrCodeInvalidRequest) {
		t.Error("expected outer code to match")
	}
	if !HasCode(outer, ErrCodeInvalidLevel) {
		t.Error("expected nested code to match")
	}
	if HasCode(outer, ErrCodeIOFailure) {
		t.Error("unexpected match for IO_FAILURE")
	}
	if HasCode(nil, ErrCodeInternal) {
		t.Error("nil error should not carry a code")
	}
}

func TestHasCodeMultiWrap(t *testing.T) {
	full := New(ErrCodeQueueFull, "queue is full")
	ioErr := Wrap(ErrCodeIOFailure, "write failed", errors.New("disk full"))

	tests := []struct {
		name string
		err  error
		code ErrorCode
		want bool
	}{
		{"joined first", errors.Join(full, ioErr), ErrCodeQueueFull, true},
		{"joined second", errors.Join(full, ioErr), ErrCodeIOFailure, true},
		{"joined missing", errors.Join(full, ioErr), ErrCodeUninitialized, false},
		{"multi %w", fmt.Errorf("shutdown: %w; %w", errors.New("plain"), ioErr), ErrCodeIOFailure, true},
		{"join under structured", Wrap(ErrCodeInternal, "stop", errors.Join(errors.New("x"), full)), ErrCodeQueueFull, true},
		{"plain error", errors.New("plain"), ErrCodeInternal, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasCode(tt.err, tt.code); got != tt.want {
				t.Errorf("HasCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStructuredErrorIsKeepsIdentity(t *testing.T) {
	a := New(ErrCodeQueueFull, "a")
	b := New(ErrCodeQueueFull, "b")

	if !errors.Is(a, a) {
		t.Error("error should match itself")
	}
	if errors.Is(a, b) {
		t.Error("distinct errors with the same code should not match")
	}
}

func TestErrorCodes(t *testing.T) {
	codes := []ErrorCode{
		ErrCodeIOFailure,
		ErrCodeInvalidLevel,
		ErrCodeUninitialized,
		ErrCodeQueueFull,
		ErrCodeInternal,
		ErrCodeInvalidRequest,
		ErrCodeUnavailable,
	}

	for _, code := range codes {
		if string(code) == "" {
			t.Errorf("error code should not be empty: %v", code)
		}
	}
}
