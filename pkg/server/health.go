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

package server

import (
	"net/http"

	"github.com/NVIDIA/podinfo/pkg/serializer"
	"github.com/NVIDIA/podinfo/pkg/snapshot"
)

// HealthResponse is returned by /health and /ready.
type HealthResponse struct {
	Status    string `json:"status" yaml:"status"`
	Timestamp string `json:"timestamp" yaml:"timestamp"`
	Service   string `json:"service" yaml:"service"`
	Reason    string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// handleHealth is a liveness probe; it succeeds whenever the process serves.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	serializer.RespondJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: snapshot.FormatTimestamp(s.now()),
		Service:   s.config.Name,
	})
}

// handleReady reports 503 until the listener is bound and again once
// shutdown has begun.
func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	ready := s.ready
	s.mu.RUnlock()

	if !ready {
		serializer.RespondJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "not_ready",
			Timestamp: snapshot.FormatTimestamp(s.now()),
			Service:   s.config.Name,
			Reason:    "server is not accepting traffic",
		})
		return
	}

	serializer.RespondJSON(w, http.StatusOK, HealthResponse{
		Status:    "ready",
		Timestamp: snapshot.FormatTimestamp(s.now()),
		Service:   s.config.Name,
	})
}
