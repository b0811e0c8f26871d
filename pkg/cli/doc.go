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

// Package cli implements the podinfo command-line interface.
//
// # Commands
//
// serve - Run the metadata sidecar:
//
//	podinfo serve [--port 8080] [--enable-env-dump]
//
// Serves /pod-info, /health, /ready, /env and /metrics until SIGINT or
// SIGTERM. Flags override SIDECAR_PORT and SIDECAR_ENABLE_ENV_DUMP.
//
// collect - Print a snapshot of the local pod:
//
//	podinfo collect [--format yaml] [--output snapshot.yaml]
//
// Runs the same collection as GET /pod-info without starting a server.
//
// fetch - Retrieve a snapshot from a running sidecar:
//
//	podinfo fetch [--url http://127.0.0.1:8080] [--timeout 5s] [--fail-on-fallback]
//
// Never fails on an unreachable sidecar; a fallback snapshot carrying the
// error details is printed instead. With --fail-on-fallback the command
// prints the fallback and then exits non-zero.
//
// # Global Flags
//
//	--log-level    debug, info, warn, error (default: info, env LOG_LEVEL)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Output Formats
//
//	--format json   indented JSON (default)
//	--format yaml   YAML
//	--format table  flattened FIELD/VALUE rows
//
// Logs are written to stderr as JSON, so stdout carries only the snapshot.
package cli
