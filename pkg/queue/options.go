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
	"fmt"
	"strings"

	"github.com/NVIDIA/logq/pkg/errors"
)

// Overflow selects what a bounded queue does with an entry when it is full.
type Overflow string

const (
	// OverflowBlock makes Enqueue wait for room, shutdown or context end.
	OverflowBlock Overflow = "block"
	// OverflowReject makes Enqueue return ErrFull.
	OverflowReject Overflow = "reject"
	// OverflowDropOldest evicts the head entry to make room.
	OverflowDropOldest Overflow = "drop-oldest"
)

// SupportedOverflows returns the accepted policy names.
func SupportedOverflows() []Overflow {
	return []Overflow{OverflowBlock, OverflowReject, OverflowDropOldest}
}

// ParseOverflow converts a policy name to Overflow.
func ParseOverflow(s string) (Overflow, error) {
	o := Overflow(strings.ToLower(strings.TrimSpace(s)))
	for _, v := range SupportedOverflows() {
		if o == v {
			return o, nil
		}
	}
	return "", errors.NewWithContext(errors.ErrCodeInvalidRequest,
		fmt.Sprintf("unknown overflow policy %q", s),
		map[string]any{"supported": SupportedOverflows()})
}

// Option configures a Queue.
type Option func(*Queue)

// WithCapacity bounds the queue. Zero or negative means unbounded.
func WithCapacity(n int) Option {
	return func(q *Queue) {
		if n < 0 {
			n = 0
		}
		q.capacity = n
	}
}

// WithOverflow sets the policy applied when a bounded queue is full.
func WithOverflow(o Overflow) Option {
	return func(q *Queue) {
		q.overflow = o
	}
}
