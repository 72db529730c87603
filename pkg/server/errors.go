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

package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	errs "github.com/NVIDIA/logq/pkg/errors"
	"github.com/NVIDIA/logq/pkg/serializer"
)

// ErrorResponse is the JSON body of every non-2xx API response.
type ErrorResponse struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"requestId"`
	Timestamp time.Time      `json:"timestamp"`
	Retryable bool           `json:"retryable"`
}

// WriteError writes a standardized error response.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code errs.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID := requestIDFrom(r.Context())
	if requestID == "" {
		requestID = uuid.New().String()
	}

	serializer.RespondJSON(w, statusCode, ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	})
}

// WriteErrorFromErr maps a structured error onto an HTTP status.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error, message string) {
	code := errs.CodeOf(err)
	status, retryable := statusFor(code)
	WriteError(w, r, status, code, message, retryable, map[string]any{"error": err.Error()})
}

func statusFor(code errs.ErrorCode) (int, bool) {
	switch code {
	case errs.ErrCodeInvalidLevel, errs.ErrCodeInvalidRequest:
		return http.StatusBadRequest, false
	case errs.ErrCodeQueueFull, errs.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests, true
	case errs.ErrCodeUnavailable:
		return http.StatusServiceUnavailable, false
	case errs.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed, false
	case errs.ErrCodeNotFound:
		return http.StatusNotFound, false
	default:
		return http.StatusInternalServerError, true
	}
}
