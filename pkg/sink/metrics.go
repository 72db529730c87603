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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sinkLinesWritten = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "logq_sink_lines_written_total",
			Help: "Total number of lines appended to the log file",
		},
		[]string{"level"},
	)

	sinkLinesSuppressed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "logq_sink_lines_suppressed_total",
			Help: "Total number of messages below the threshold",
		},
		[]string{"level"},
	)

	sinkWriteFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "logq_sink_write_failures_total",
			Help: "Total number of failed line writes",
		},
		[]string{"level"},
	)

	sinkThreshold = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "logq_sink_threshold",
			Help: "Threshold of the most recently created or changed sink (0=LOW, 1=MEDIUM, 2=HIGH)",
		},
	)
)
