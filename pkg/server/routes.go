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

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Route paths served by the sidecar.
const (
	PathPodInfo = "/pod-info"
	PathHealth  = "/health"
	PathReady   = "/ready"
	PathEnv     = "/env"
	PathMetrics = "/metrics"
)

// setupRoutes configures all HTTP routes and middleware
func (s *Server) setupRoutes() http.Handler {
	mux := http.NewServeMux()

	// Everything unmatched, including subpaths of known routes
	mux.HandleFunc("/", s.handleNotFound)

	mux.HandleFunc(PathPodInfo, s.getOnly(s.handlePodInfo))
	mux.HandleFunc(PathHealth, s.getOnly(s.handleHealth))
	mux.HandleFunc(PathReady, s.getOnly(s.handleReady))
	mux.HandleFunc(PathEnv, s.getOnly(s.handleEnv))
	mux.Handle(PathMetrics, s.getOnly(promhttp.Handler().ServeHTTP))

	return s.withMiddleware(mux)
}

// getOnly answers any method other than GET with the 404 reply.
func (s *Server) getOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			s.handleNotFound(w, r)
			return
		}
		next(w, r)
	}
}

// routeLabel bounds metric label cardinality to the known routes.
func routeLabel(path string) string {
	switch path {
	case PathPodInfo, PathHealth, PathReady, PathEnv, PathMetrics:
		return path
	default:
		return "other"
	}
}

// isProbe reports whether path is a kubelet probe endpoint.
func isProbe(path string) bool {
	return path == PathHealth || path == PathReady
}
