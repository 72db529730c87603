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

package queue

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	queueEnqueued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "logq_queue_enqueued_total",
			Help: "Total number of entries accepted by the queue",
		},
	)

	queueRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "logq_queue_rejected_total",
			Help: "Total number of entries refused by the queue",
		},
		[]string{"reason"}, // full or closed
	)

	queueDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "logq_queue_dropped_total",
			Help: "Total number of entries evicted by the drop-oldest policy",
		},
	)

	queueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "logq_queue_depth",
			Help: "Current number of pending entries",
		},
	)
)
