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

// Package server implements the podinfo metadata sidecar HTTP service.
//
// # Architecture
//
// The server is stateless apart from its readiness flag. Every request to
// /pod-info runs a fresh snapshot collection. Around the routes sits a
// middleware chain:
//
//   - CORS headers on every response, OPTIONS answered with an empty 200
//   - Request ID tracking via X-Request-Id (UUID)
//   - Panic recovery returning the 500 error payload
//   - Rate limiting using token bucket algorithm (golang.org/x/time/rate)
//   - Request logging and Prometheus metrics
//
// # Usage
//
//	s := server.New(
//	    server.WithName("pod-info-sidecar"),
//	    server.WithVersion(version),
//	)
//	if err := s.Run(ctx); err != nil {
//	    os.Exit(1)
//	}
//
// Run binds the listener synchronously, so an address already in use is
// returned as an error before any request is served.
//
// # API Endpoints
//
//	GET /pod-info          current snapshot, indented JSON
//	GET /health            {"status":"healthy","timestamp":...,"service":...}
//	GET /ready             200 while serving, 503 before bind and during shutdown
//	GET /env?var=NAME      {"variable":NAME,"value":string|null,"timestamp":...}
//	GET /env               full environment, only when SIDECAR_ENABLE_ENV_DUMP=true
//	GET /metrics           Prometheus exposition
//
// Anything else, including non-GET methods on known paths, receives 404
// with the list of available routes.
//
// # Configuration
//
//	SIDECAR_PORT              listen port (default 8080)
//	SHUTDOWN_TIMEOUT_SECONDS  graceful drain limit (default 30)
//	SIDECAR_ENABLE_ENV_DUMP   allow GET /env without var (default false)
//
// # Graceful Shutdown
//
// On SIGINT or SIGTERM the server marks itself not ready, notifies systemd
// when NOTIFY_SOCKET is set, stops accepting connections and waits for
// in-flight requests up to the shutdown timeout.
package server
