// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package display

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK      = "ok"
	outcomeInvalid = "invalid"
	outcomeError   = "error"
)

var (
	queriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipebook_display_queries_total",
			Help: "Total number of recipe queries by outcome",
		},
		[]string{"outcome"},
	)

	resultSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recipebook_display_result_size",
			Help:    "Number of recipes returned per query",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
		},
	)

	renderDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recipebook_display_render_duration_seconds",
			Help:    "Duration of query plus markup rendering in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)

	targetWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipebook_display_target_writes_total",
			Help: "Total number of display target replacements by outcome",
		},
		[]string{"outcome"},
	)
)
