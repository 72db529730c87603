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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	workerProcessed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "logq_worker_entries_processed_total",
			Help: "Total number of entries taken off the queue by the worker",
		},
	)

	workerWriteFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "logq_worker_write_failures_total",
			Help: "Total number of entries the worker failed to write",
		},
	)

	workerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "logq_worker_state",
			Help: "Worker lifecycle state (0=IDLE, 1=RUNNING, 2=DRAINING, 3=STOPPED)",
		},
	)
)
