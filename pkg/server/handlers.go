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
	"log/slog"
	"net/http"
	"strings"

	errs "github.com/NVIDIA/logq/pkg/errors"
	"github.com/NVIDIA/logq/pkg/level"
	"github.com/NVIDIA/logq/pkg/serializer"
)

// EntryRequest is the body of POST /v1/entries.
type EntryRequest struct {
	Message string `json:"message"`
	Level   string `json:"level,omitempty"`
}

// EntryResponse acknowledges an accepted entry.
type EntryResponse struct {
	Accepted bool        `json:"accepted"`
	Level    level.Level `json:"level"`
	Pending  int         `json:"pending"`
}

// ThresholdRequest is the body of PUT /v1/threshold.
type ThresholdRequest struct {
	Level string `json:"level"`
}

// ThresholdResponse reports the active threshold.
type ThresholdResponse struct {
	Level level.Level `json:"level"`
}

func (s *Server) handleEntries(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		WriteError(w, r, http.StatusMethodNotAllowed, errs.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{"method": r.Method})
		return
	}

	var req EntryRequest
	if err := s.decode(w, r, &req); err != nil {
		WriteError(w, r, http.StatusBadRequest, errs.ErrCodeInvalidRequest,
			"Invalid request body", false, map[string]any{"error": err.Error()})
		return
	}

	if strings.ContainsAny(req.Message, "\r\n") {
		WriteError(w, r, http.StatusBadRequest, errs.ErrCodeInvalidRequest,
			"Message must be a single line", false, nil)
		return
	}

	l := s.config.DefaultLevel
	if req.Level != "" {
		parsed, err := level.Parse(req.Level)
		if err != nil {
			WriteError(w, r, http.StatusBadRequest, errs.ErrCodeInvalidLevel,
				"Invalid level", false, map[string]any{
					"level":   req.Level,
					"allowed": level.Names(),
				})
			return
		}
		l = parsed
	}

	if err := s.target.Log(r.Context(), req.Message, l); err != nil {
		slog.Warn("entry rejected",
			"requestID", requestIDFrom(r.Context()),
			"level", l.String(),
			"error", err)
		WriteErrorFromErr(w, r, err, "Entry not accepted")
		return
	}
	entriesAccepted.WithLabelValues(l.String()).Inc()

	serializer.RespondJSON(w, http.StatusAccepted, EntryResponse{
		Accepted: true,
		Level:    l,
		Pending:  s.target.Pending(),
	})
}

func (s *Server) handleThreshold(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		serializer.RespondJSON(w, http.StatusOK, ThresholdResponse{Level: s.target.Threshold()})
	case http.MethodPut:
		var req ThresholdRequest
		if err := s.decode(w, r, &req); err != nil {
			WriteError(w, r, http.StatusBadRequest, errs.ErrCodeInvalidRequest,
				"Invalid request body", false, map[string]any{"error": err.Error()})
			return
		}
		l, err := level.Parse(req.Level)
		if err != nil {
			WriteError(w, r, http.StatusBadRequest, errs.ErrCodeInvalidLevel,
				"Invalid level", false, map[string]any{
					"level":   req.Level,
					"allowed": level.Names(),
				})
			return
		}
		if err := s.target.SetThreshold(l); err != nil {
			WriteErrorFromErr(w, r, err, "Threshold not changed")
			return
		}
		slog.Info("threshold changed",
			"requestID", requestIDFrom(r.Context()),
			"level", l.String())
		serializer.RespondJSON(w, http.StatusOK, ThresholdResponse{Level: l})
	default:
		w.Header().Set("Allow", http.MethodGet+", "+http.MethodPut)
		WriteError(w, r, http.StatusMethodNotAllowed, errs.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{"method": r.Method})
	}
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) error {
	body := http.MaxBytesReader(w, r.Body, s.config.MaxBodyBytes)
	reader, err := serializer.NewReader(serializer.FormatJSON, body)
	if err != nil {
		return err
	}
	defer reader.Close()
	return reader.Deserialize(v)
}
