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

package defaults

import "time"

// Collector timeouts for local introspection.
const (
	// CollectorTimeout bounds a single Collect call. Sub-sources that exceed it
	// are replaced with their documented defaults.
	CollectorTimeout = 2 * time.Second
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	// Stuck connections are closed forcibly once it elapses.
	ServerShutdownTimeout = 30 * time.Second
)

// Snapshot client timeouts for the consumer side.
const (
	// SnapshotFetchTimeout is the hard limit for one /pod-info call,
	// connection setup included. There is no retry.
	SnapshotFetchTimeout = 5000 * time.Millisecond

	// HTTPConnectTimeout is the timeout for establishing connections.
	HTTPConnectTimeout = 2 * time.Second

	// HTTPKeepAlive is the keep-alive duration for connections.
	HTTPKeepAlive = 30 * time.Second

	// HTTPIdleConnTimeout is the timeout for idle connections in the pool.
	HTTPIdleConnTimeout = 90 * time.Second
)

// Sidecar defaults.
const (
	// ServerPort is the listener port used when SIDECAR_PORT is not set.
	ServerPort = 8080

	// SidecarURL is the service URL used by the client when SIDECAR_URL is not set.
	SidecarURL = "http://127.0.0.1:8080"

	// ServiceName is reported by GET /health.
	ServiceName = "pod-info-sidecar"
)
